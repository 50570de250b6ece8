// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// TestNoteType is the tipo_nota value of the first test in a
// GET_COMPITI_MASTER list; every record from there on is a test.
const TestNoteType = "6"

// RawHomework is one record of GET_COMPITI_MASTER (response[0].compiti).
// Homework and tests share the list: homework first, then tests.
type RawHomework struct {
	ID              Scalar `json:"idCompito"`
	Subject         string `json:"descMat"`
	Description     string `json:"descCompiti"`
	Date            string `json:"data"`
	PublicationDate string `json:"data_pubblicazione"`
	NoteType        Scalar `json:"tipo_nota"`
}

// Homework is a normalized homework assignment.
type Homework struct {
	ID          Scalar       `json:"id"`
	Subject     string       `json:"materia"`
	Description string       `json:"compito"`
	DueDate     string       `json:"perGiorno"`
	Published   DateTimePair `json:"pubblicato"`
}

// Test is a normalized scheduled test.
type Test struct {
	Subject     string       `json:"materia"`
	Description string       `json:"verifica"`
	Date        string       `json:"perGiorno"`
	Published   DateTimePair `json:"pubblicato"`
}
