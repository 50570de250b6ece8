// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawCurriculumEntry is one school year of GET_CURRICULUM_MASTER
// (response[0].curriculum).
type RawCurriculumEntry struct {
	SchoolCode string `json:"idPlesso"`
	School     string `json:"descScuola"`
	Course     string `json:"descCorso"`
	SchoolYear string `json:"annoScolastico"` // "2024/2025"
	Class      Scalar `json:"classe"`
	Section    string `json:"sezione"`
	Outcome    string `json:"descEsito"`
	Credits    Scalar `json:"credito"`
}

// CurriculumEntry is a normalized school year.
type CurriculumEntry struct {
	SchoolCode string   `json:"codiceMeccanografico"`
	School     string   `json:"scuola"`
	Course     string   `json:"indirizzo"`
	SchoolYear []string `json:"annoScolastico"`
	Class      string   `json:"classe"`
	Section    string   `json:"sezione"`
	Outcome    string   `json:"esito"`
	Credits    Number   `json:"crediti"`
}
