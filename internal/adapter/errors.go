// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")

	// ErrVendor wraps failures reported inside a well-formed vendor reply.
	ErrVendor = errors.New("vendor responded with an error")

	ErrNoSessionCookie = errors.New("no session cookie in response")
	ErrEmptyResponse   = errors.New("empty vendor response")
)
