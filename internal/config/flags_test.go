// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestURLAddress_Set tests the Set method of URLAddress
func TestURLAddress_Set(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    string
	}{
		{
			name:     "https with path",
			input:    "https://wsalu.axioscloud.it/webservice/AxiosCloud_Ws_Rest.svc",
			expected: "https://wsalu.axioscloud.it/webservice/AxiosCloud_Ws_Rest.svc",
		},
		{
			name:     "trailing slash trimmed",
			input:    "http://localhost:8080/",
			expected: "http://localhost:8080",
		},
		{
			name:     "surrounding spaces trimmed",
			input:    "  https://example.com  ",
			expected: "https://example.com",
		},
		{
			name:        "missing scheme",
			input:       "example.com",
			expectError: true,
		},
		{
			name:        "unsupported scheme",
			input:       "ftp://example.com",
			expectError: true,
		},
		{
			name:        "missing host",
			input:       "https://",
			expectError: true,
		},
		{
			name:        "unparsable",
			input:       "http://[::1",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr := &URLAddress{}
			err := addr.Set(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.Empty(t, addr.String())
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, addr.String())
		})
	}
}

// TestParseFlags tests the ParseFlags function
func TestParseFlags(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "all flags set",
			args: []string{
				"-a", "https://ws.example.com/svc",
				"-web-address", "https://web.example.com/",
				"-request-timeout", "30s",
				"-cipher-key", "secret",
				"-vendor-token", "vendor-token",
				"-app-name", "ALU_APP",
				"-school-code", "91000000000",
				"-user-code", "user",
				"-password", "pass",
				"-action", "voti",
				"-date", "20/01/2026",
				"-data", `{"idComunicazione":"42"}`,
				"-log-file", "/tmp/axios.log",
				"-c", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://ws.example.com/svc", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "https://web.example.com", cfg.Adapter.WebAddress)
				assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
				assert.Equal(t, "secret", cfg.App.CipherKey)
				assert.Equal(t, "vendor-token", cfg.App.VendorToken)
				assert.Equal(t, "ALU_APP", cfg.App.Name)
				assert.Equal(t, "91000000000", cfg.Account.SchoolCode)
				assert.Equal(t, "user", cfg.Account.UserCode)
				assert.Equal(t, "pass", cfg.Account.Password)
				assert.Equal(t, "voti", cfg.Query.Action)
				assert.Equal(t, "20/01/2026", cfg.Query.Date)
				assert.Equal(t, `{"idComunicazione":"42"}`, cfg.Query.Data)
				assert.Equal(t, "/tmp/axios.log", cfg.Log.File)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "aliases",
			args: []string{
				"-address", "https://alias.example.com",
				"-config", "/path/to/config.json",
			},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "https://alias.example.com", cfg.Adapter.HTTPAddress)
				assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
			},
		},
		{
			name: "no flags",
			args: []string{},
			validate: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.NoError(t, err)
			require.NotNil(t, cfg)
			tt.validate(t, cfg)
		})
	}
}

// TestParseFlags_Invalid tests ParseFlags with malformed values
func TestParseFlags_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "invalid address", args: []string{"-a", "not-a-url"}},
		{name: "invalid web address", args: []string{"-web-address", "ftp://x"}},
		{name: "invalid duration", args: []string{"-request-timeout", "soon"}},
		{name: "unknown flag", args: []string{"-nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseFlags(tt.args)
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
