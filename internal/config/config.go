// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-axios-re client. It aggregates all sub-configurations and is populated
// by merging built-in defaults with values from environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the vendor-issued secrets shared by every installation of
	// the family app.
	App App `envPrefix:"APP_"`

	// Adapter holds the vendor endpoints and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Account holds the family account credentials used to log in.
	Account Account `envPrefix:"ACCOUNT_"`

	// Query selects what the CLI fetches after logging in.
	Query Query `envPrefix:"QUERY_"`

	// Log holds logging output settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values required to talk to the vendor.
type App struct {
	// CipherKey is the stream-cipher key used to build request envelopes.
	// Must be 1 to 256 bytes long.
	// Env: APP_CIPHER_KEY
	CipherKey string `env:"CIPHER_KEY"`

	// VendorToken identifies the app to the vendor on every request.
	// Env: APP_VENDOR_TOKEN
	VendorToken string `env:"VENDOR_TOKEN"`

	// Name is the app name sent with the login credentials.
	// Env: APP_NAME
	Name string `env:"NAME"`
}

// Adapter holds the vendor endpoints.
type Adapter struct {
	// HTTPAddress is the base URL of the vendor REST web service
	// (RetrieveDataInformation, ExecuteCommand, Login2).
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// WebAddress is the base URL of the family web portal used for the
	// single sign-on into the school portal.
	// Env: ADAPTER_WEB_ADDRESS
	WebAddress string `env:"WEB_ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Account holds the family account credentials.
type Account struct {
	// SchoolCode is the school's tax code (codice fiscale).
	// Env: ACCOUNT_SCHOOL_CODE
	SchoolCode string `env:"SCHOOL_CODE"`

	// UserCode is the family user code.
	// Env: ACCOUNT_USER_CODE
	UserCode string `env:"USER_CODE"`

	// Password is the family account password.
	// Env: ACCOUNT_PASSWORD
	Password string `env:"PASSWORD"`
}

// Query selects the records the CLI prints.
type Query struct {
	// Action is a record action name such as "voti" or "assenze".
	// Env: QUERY_ACTION
	Action string `env:"ACTION"`

	// Date selects the timeline day, formatted dd/mm/yyyy. When set, the
	// timeline is fetched instead of Action.
	// Env: QUERY_DATE
	Date string `env:"DATE"`

	// Data is the JSON payload sent with a command action ("leggi",
	// "rispondi"), for example {"idComunicazione":"123"}.
	// Env: QUERY_DATA
	Data string `env:"DATA"`
}

// Log holds logging output settings.
type Log struct {
	// File is the path of the log file. Empty means a file next to the
	// executable.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Default vendor endpoints and limits applied before any other source.
const (
	DefaultHTTPAddress    = "https://wsalu.axioscloud.it/webservice/AxiosCloud_Ws_Rest.svc"
	DefaultWebAddress     = "https://registrofamiglie.axioscloud.it"
	DefaultRequestTimeout = 30 * time.Second
	DefaultAppName        = "ALU_APP"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Name: DefaultAppName,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			WebAddress:     DefaultWebAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (later sources override non-zero fields of earlier ones):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
