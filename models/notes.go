// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawNotePeriod is one term of GET_NOTE_MASTER.
type RawNotePeriod struct {
	Period string    `json:"descFrazione"`
	Notes  []RawNote `json:"note"`
}

// RawNote is a disciplinary note. descNota is HTML of the form
//
//	<span><b>Nota disciplinare</b></span>&nbsp; text of the note
//
// tipo is C (class) or S (student); isLetta is "True"/"False".
type RawNote struct {
	Date     string `json:"data"`
	Type     string `json:"tipo"`
	Body     string `json:"descNota"`
	Teacher  string `json:"descDoc"`
	Read     Scalar `json:"isLetta"`
	ReadBy   string `json:"vistatoUtente"`
	ReadDate string `json:"vistatoData"`
}

// NotePeriod groups the notes of one term.
type NotePeriod struct {
	Period string `json:"quadrimestre"`
	Notes  []Note `json:"note"`
}

// Note is a normalized disciplinary note.
type Note struct {
	Date     string   `json:"data"`
	Type     string   `json:"tipo"`
	Kind     string   `json:"tipoNota"`
	Teacher  string   `json:"docente"`
	Text     string   `json:"nota"`
	Read     bool     `json:"letta"`
	ReadBy   string   `json:"lettaDa"`
	ReadDate []string `json:"lettaIl"`
}
