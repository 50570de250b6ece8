// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk shape of the optional JSON
// configuration file.
type StructuredJSONConfig struct {
	App struct {
		CipherKey   string `json:"cipher_key"`
		VendorToken string `json:"vendor_token"`
		Name        string `json:"name"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		WebAddress     string   `json:"web_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Account struct {
		SchoolCode string `json:"school_code"`
		UserCode   string `json:"user_code"`
		Password   string `json:"password"`
	} `json:"account,omitempty"`

	Query struct {
		Action string `json:"action"`
		Date   string `json:"date"`
		Data   string `json:"data"`
	} `json:"query,omitempty"`

	Log struct {
		File string `json:"file"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			CipherKey:   jsonCfg.App.CipherKey,
			VendorToken: jsonCfg.App.VendorToken,
			Name:        jsonCfg.App.Name,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			WebAddress:     jsonCfg.Adapter.WebAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Account: Account{
			SchoolCode: jsonCfg.Account.SchoolCode,
			UserCode:   jsonCfg.Account.UserCode,
			Password:   jsonCfg.Account.Password,
		},
		Query: Query{
			Action: jsonCfg.Query.Action,
			Date:   jsonCfg.Query.Date,
			Data:   jsonCfg.Query.Data,
		},
		Log:          Log{File: jsonCfg.Log.File},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
