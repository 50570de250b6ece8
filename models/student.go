// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawStudent is response[0] of GET_STUDENTI. Flags are "S"/"N".
type RawStudent struct {
	StudentID           Scalar `json:"idAlunno"`
	UserID              Scalar `json:"userId"`
	LastName            string `json:"cognome"`
	FirstName           string `json:"nome"`
	Sex                 string `json:"sesso"`
	BirthDate           string `json:"dataNascita"`
	Avatar              string `json:"avatar"`
	SchoolCode          string `json:"idPlesso"`
	Security            Scalar `json:"security"`
	FlagJustify         Scalar `json:"flagGiustifica"`
	FlagInvalsi         Scalar `json:"flagInvalsi"`
	FlagDocuments       Scalar `json:"flagDocumenti"`
	FlagPagoScuola      Scalar `json:"flagPagoScuola"`
	FlagGuidanceCouncil Scalar `json:"flagConsiglioOrientamento"`
}

// Student is the normalized student profile.
type Student struct {
	StudentID           Scalar `json:"idAlunno"`
	UserID              Scalar `json:"id"`
	LastName            string `json:"cognome"`
	FirstName           string `json:"nome"`
	Sex                 string `json:"sesso"`
	BirthDate           string `json:"dataNascita"`
	Avatar              string `json:"avatar"`
	SchoolCode          string `json:"idPlesso"`
	Security            Scalar `json:"security"`
	FlagJustify         bool   `json:"flagGiustifica"`
	FlagInvalsi         bool   `json:"flagInvalsi"`
	FlagDocuments       bool   `json:"flagDocumenti"`
	FlagPagoScuola      bool   `json:"flagPagoScuola"`
	FlagGuidanceCouncil bool   `json:"flagConsiglioOrientamento"`
}
