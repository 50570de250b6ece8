// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawLogin is the response of Login2. Names arrive upper-case.
type RawLogin struct {
	UserSession Scalar `json:"usersession"`
	FirstName   string `json:"nome"`
	LastName    string `json:"cognome"`
	BirthDate   string `json:"dataNascita"`
	QRCode      string `json:"sQR"`
	StudentID   Scalar `json:"idAlunno"`
	PinSD       Scalar `json:"userPinSd"`
	PinRE       Scalar `json:"userPinRe"`
	Active      Scalar `json:"utenteAttivo"`
}

// LoginResult is the normalized login outcome.
type LoginResult struct {
	UserSession string       `json:"usersession"`
	Student     LoginStudent `json:"studente"`
	Active      Scalar       `json:"attivo"`
}

// LoginStudent is the student summary returned at login.
type LoginStudent struct {
	FirstName string   `json:"nome"`
	LastName  string   `json:"cognome"`
	BirthDate string   `json:"dataNascita"`
	QRCode    string   `json:"QRCode"`
	StudentID Scalar   `json:"idAlunno"`
	Pin       LoginPin `json:"pin"`
}

// LoginPin holds the two app PINs.
type LoginPin struct {
	SD Scalar `json:"SD"`
	RE Scalar `json:"RE"`
}
