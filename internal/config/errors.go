// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid vendor endpoint settings
	// (for example, a missing address or a non-positive request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates missing or malformed vendor secrets
	// (for example, an empty vendor token or an oversized cipher key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAccountConfigs indicates incomplete login credentials.
	ErrInvalidAccountConfigs = errors.New("invalid account configuration")
	// ErrInvalidQueryConfigs indicates that nothing to fetch was selected or
	// that the timeline date or the command data is malformed.
	ErrInvalidQueryConfigs = errors.New("invalid query configuration")
)
