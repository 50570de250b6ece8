// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"
)

// URLAddress holds an absolute http(s) base URL.
// It implements the flag.Value interface.
type URLAddress struct {
	URL string
}

// ParseFlags parses the command-line configuration flags in args (without
// the program name).
//
// Flags:
//
//	-a/-address vendor web service base URL
//	-web-address family web portal base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-cipher-key envelope cipher key
//	-vendor-token vendor token
//	-app-name app name sent at login
//	-school-code school tax code
//	-user-code family user code
//	-password family account password
//	-action record action to print (e.g., "voti")
//	-date timeline day in dd/mm/yyyy format
//	-data json payload for a command action
//	-log-file log file path
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var httpAddress, webAddress URLAddress
	var requestTimeout time.Duration
	var cipherKey, vendorToken, appName string
	var schoolCode, userCode, password string
	var action, date, data string
	var logFile string
	var jsonConfigPath string

	fs := flag.NewFlagSet("axios-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&httpAddress, "a", "Vendor web service base URL")
	fs.Var(&httpAddress, "address", "Vendor web service base URL (alias)")
	fs.Var(&webAddress, "web-address", "Family web portal base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&cipherKey, "cipher-key", "", "Envelope cipher key")
	fs.StringVar(&vendorToken, "vendor-token", "", "Vendor token")
	fs.StringVar(&appName, "app-name", "", "App name sent at login")
	fs.StringVar(&schoolCode, "school-code", "", "School tax code")
	fs.StringVar(&userCode, "user-code", "", "Family user code")
	fs.StringVar(&password, "password", "", "Family account password")
	fs.StringVar(&action, "action", "", "Record action to print (e.g., voti, assenze)")
	fs.StringVar(&date, "date", "", "Timeline day (dd/mm/yyyy)")
	fs.StringVar(&data, "data", "", "JSON payload for a command action (leggi, rispondi)")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			CipherKey:   cipherKey,
			VendorToken: vendorToken,
			Name:        appName,
		},
		Adapter: Adapter{
			HTTPAddress:    httpAddress.String(),
			WebAddress:     webAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Account: Account{
			SchoolCode: schoolCode,
			UserCode:   userCode,
			Password:   password,
		},
		Query: Query{
			Action: action,
			Date:   date,
			Data:   data,
		},
		Log:          Log{File: logFile},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns the URL without a trailing slash.
func (a *URLAddress) String() string {
	return a.URL
}

// Set parses s as an absolute http or https URL and stores it without a
// trailing slash.
func (a *URLAddress) Set(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil {
		return err
	}

	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("need an address in a form `http(s)://host[/path]`")
	}
	if u.Host == "" {
		return errors.New("address must include a host")
	}

	a.URL = strings.TrimRight(u.String(), "/")
	return nil
}
