// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"time"
)

// timelineDateLayout is the dd/mm/yyyy day format the vendor expects.
const timelineDateLayout = "02/01/2006"

// maxCipherKeyLength is the longest key the envelope cipher accepts.
const maxCipherKeyLength = 256

// validate checks that the final merged [StructuredConfig] is internally
// consistent. Presence of secrets and credentials is checked by the client
// view, so a partially filled config can still be inspected.
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if n := len(cfg.App.CipherKey); n == 0 || n > maxCipherKeyLength {
		return fmt.Errorf("%w: cipher key must be 1..%d bytes", ErrInvalidAppConfigs, maxCipherKeyLength)
	}

	if cfg.App.VendorToken == "" || cfg.App.Name == "" {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.WebAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Account.SchoolCode == "" || cfg.Account.UserCode == "" || cfg.Account.Password == "" {
		return ErrInvalidAccountConfigs
	}

	if cfg.Query.Action == "" && cfg.Query.Date == "" {
		return fmt.Errorf("%w: either an action or a date is required", ErrInvalidQueryConfigs)
	}

	if cfg.Query.Date != "" {
		if _, err := time.Parse(timelineDateLayout, cfg.Query.Date); err != nil {
			return fmt.Errorf("%w: date must be dd/mm/yyyy: %w", ErrInvalidQueryConfigs, err)
		}
	}

	if cfg.Query.Data != "" && !json.Valid([]byte(cfg.Query.Data)) {
		return fmt.Errorf("%w: data must be a json document", ErrInvalidQueryConfigs)
	}

	return nil
}
