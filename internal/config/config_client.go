// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds the vendor secrets derived from the shared structured
// config.
type ClientApp struct {
	// CipherKey is the envelope cipher key.
	CipherKey []byte
	// VendorToken is sent with every vendor request.
	VendorToken string
	// Name is the app name sent at login.
	Name string
}

// ClientAdapter holds network settings used by the vendor transport layer.
type ClientAdapter struct {
	// HTTPAddress is the vendor web service base URL.
	HTTPAddress string
	// WebAddress is the family web portal base URL.
	WebAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the vendor secrets.
	App ClientApp
	// Adapter contains vendor addresses and timeouts.
	Adapter ClientAdapter
	// Account contains the login credentials.
	Account Account
	// Query selects what the CLI prints.
	Query Query
	// Log contains logging output settings.
	Log Log
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			CipherKey:   []byte(cfg.App.CipherKey),
			VendorToken: cfg.App.VendorToken,
			Name:        cfg.App.Name,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			WebAddress:     cfg.Adapter.WebAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Account: cfg.Account,
		Query:   cfg.Query,
		Log:     cfg.Log,
	}
}
