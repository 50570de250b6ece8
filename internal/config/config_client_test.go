// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStructuredConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.CipherKey = "secret"
	cfg.App.VendorToken = "vendor-token"
	cfg.Account = Account{SchoolCode: "91000000000", UserCode: "user", Password: "pass"}
	cfg.Query = Query{Action: "voti"}
	return cfg
}

func TestNewClientConfig_MapsFields(t *testing.T) {
	cfg := validStructuredConfig()
	cfg.Log.File = "/tmp/axios.log"

	clientCfg := newClientConfig(cfg)

	assert.Equal(t, []byte("secret"), clientCfg.App.CipherKey)
	assert.Equal(t, "vendor-token", clientCfg.App.VendorToken)
	assert.Equal(t, DefaultAppName, clientCfg.App.Name)
	assert.Equal(t, DefaultHTTPAddress, clientCfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultWebAddress, clientCfg.Adapter.WebAddress)
	assert.Equal(t, DefaultRequestTimeout, clientCfg.Adapter.RequestTimeout)
	assert.Equal(t, cfg.Account, clientCfg.Account)
	assert.Equal(t, cfg.Query, clientCfg.Query)
	assert.Equal(t, "/tmp/axios.log", clientCfg.Log.File)

	require.NoError(t, clientCfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "empty cipher key", mutate: func(c *StructuredConfig) { c.App.CipherKey = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "oversized cipher key", mutate: func(c *StructuredConfig) { c.App.CipherKey = strings.Repeat("k", 257) }, wantErr: ErrInvalidAppConfigs},
		{name: "missing vendor token", mutate: func(c *StructuredConfig) { c.App.VendorToken = "" }, wantErr: ErrInvalidAppConfigs},
		{name: "missing address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "zero timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = 0 }, wantErr: ErrInvalidAdapterConfigs},
		{name: "missing password", mutate: func(c *StructuredConfig) { c.Account.Password = "" }, wantErr: ErrInvalidAccountConfigs},
		{name: "nothing to fetch", mutate: func(c *StructuredConfig) { c.Query = Query{} }, wantErr: ErrInvalidQueryConfigs},
		{name: "malformed date", mutate: func(c *StructuredConfig) { c.Query.Date = "2026-01-20" }, wantErr: ErrInvalidQueryConfigs},
		{name: "malformed data", mutate: func(c *StructuredConfig) { c.Query = Query{Action: "leggi", Data: "{id:1"} }, wantErr: ErrInvalidQueryConfigs},
		{name: "command data", mutate: func(c *StructuredConfig) { c.Query = Query{Action: "leggi", Data: `{"idComunicazione":"42"}`} }},
		{name: "date only", mutate: func(c *StructuredConfig) { c.Query = Query{Date: "20/01/2026"} }},
		{name: "max cipher key", mutate: func(c *StructuredConfig) { c.App.CipherKey = strings.Repeat("k", 256) }},
		{name: "short timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = time.Millisecond }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validStructuredConfig()
			tt.mutate(cfg)

			err := newClientConfig(cfg).validate()
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
