// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-axios-re/internal/app"
)

var (
	ErrNotLoggedIn       = errors.New(app.MsgLoginRequired)
	ErrUnsupportedAction = errors.New(app.MsgUnsupportedAction)

	ErrLoginFailed       = errors.New("login failed")
	ErrSessionRejected   = errors.New("session rejected by vendor")
	ErrVendorUnavailable = errors.New("vendor unavailable")
	ErrReplyRejected     = errors.New("reply rejected by vendor")

	// ErrEmptyResponse is returned when a list the records live in has no
	// first element.
	ErrEmptyResponse = errors.New("no records in vendor response")

	// ErrUnexpectedResponse is returned when the vendor reply does not have
	// the shape the action expects.
	ErrUnexpectedResponse = errors.New("unexpected vendor response")
)
