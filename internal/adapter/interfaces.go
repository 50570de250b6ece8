// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// Axios vendor web service.
//
// The primary abstraction is [VendorAdapter], which hides the envelope codec,
// the vendor endpoints and the web portal cookie exchange from the service
// layer. The package ships a single HTTP implementation
// ([NewHTTPVendorAdapter]) built on resty.
//
// HTTP status codes are mapped by mapHTTPError and vendor-reported failures
// are wrapped in [ErrVendor], so callers can use [errors.Is] without knowing
// about the wire format.
package adapter

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-axios-re/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vendor_adapter_mock.go -package=mock

// VendorAdapter defines communication with the Axios web service.
type VendorAdapter interface {
	// Login sends creds to Login2 and returns the decoded "response" object.
	// A non-empty vendor errormessage is returned as [ErrVendor].
	Login(ctx context.Context, creds models.Credentials) (json.RawMessage, error)

	// Retrieve runs a read-only vendor action through
	// RetrieveDataInformation and returns the decoded "response" value.
	// Returns [ErrVendor] when the vendor flags the request as failed.
	Retrieve(ctx context.Context, info models.StudentInfo, cmd models.Command) (json.RawMessage, error)

	// Execute posts cmd to ExecuteCommand and returns the whole decoded
	// reply. Vendor failures are left for the caller to interpret.
	Execute(ctx context.Context, info models.StudentInfo, cmd models.Command) (models.VendorResponse, error)

	// WebSession converts the app session in info into an ASP.NET session
	// cookie for the school web portal. Returns [ErrNoSessionCookie] if
	// either hop of the exchange answers without the cookie.
	WebSession(ctx context.Context, info models.StudentInfo) (string, error)
}
