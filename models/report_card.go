// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// RawReportCardPeriod is one term of GET_PAGELLA_MASTER.
type RawReportCardPeriod struct {
	Period    string                 `json:"descFrazione"`
	Subjects  []RawReportCardSubject `json:"materie"`
	Outcome   string                 `json:"esito"`
	Judgement string                 `json:"giudizio"` // HTML
	URL       string                 `json:"URL"`
	Read      Scalar                 `json:"letta"`    // "S"/"N"
	Visible   Scalar                 `json:"visibile"` // "true"/"false"
	ShownDate string                 `json:"dataVisualizzazione"`
}

// RawReportCardSubject is a subject line of a report card. mediaVoti is the
// final mark, not an average.
type RawReportCardSubject struct {
	Subject   string        `json:"descMat"`
	Mark      Scalar        `json:"mediaVoti"`
	Judgement string        `json:"giudizio"`
	Absences  Scalar        `json:"assenze"`
	Debt      *RawDebtSheet `json:"schedaCarenza"`
}

// RawDebtSheet describes a failed subject and how to recover it.
type RawDebtSheet struct {
	Reason        string `json:"motivo"`
	Topics        string `json:"rilevate"`
	RecoveryMode  string `json:"modalitaRecupero"`
	TestType      string `json:"verifica"`
	TestDate      string `json:"dataVerifica"`
	TestTopics    string `json:"verificaArgomenti"`
	TestJudgement string `json:"verificaGiudizio"`
}

// ReportCardPeriod is a normalized report card for one term.
type ReportCardPeriod struct {
	Period    string          `json:"quadrimestre"`
	Average   Number          `json:"media"`
	Outcome   string          `json:"esito"`
	Judgement string          `json:"giudizio"`
	Subjects  []SubjectReport `json:"materie"`
	ShownDate string          `json:"dataVisualizzazione"`
	URL       string          `json:"URL"`
	Read      bool            `json:"letta"`
	Visible   bool            `json:"visibile"`
}

// SubjectReport is a normalized report card line.
type SubjectReport struct {
	Subject   string `json:"materia"`
	Mark      Scalar `json:"voto"`
	Debt      Debt   `json:"debito"`
	Judgement string `json:"giudizio"`
	Absences  Number `json:"assenze"`
}

// Debt is the recovery plan of a failed subject. When the subject has no
// debt Present is false and the value marshals as an empty object.
type Debt struct {
	Present       bool   `json:"-"`
	Reason        string `json:"motivo"`
	Topics        string `json:"argomenti"`
	RecoveryMode  string `json:"modRecupero"`
	TestType      string `json:"tipoVerifica"`
	TestDate      string `json:"dataVerifica"`
	TestTopics    string `json:"argVerifica"`
	TestJudgement string `json:"giudizioVerifica"`
}

// MarshalJSON implements json.Marshaler.
func (d Debt) MarshalJSON() ([]byte, error) {
	if !d.Present {
		return []byte("{}"), nil
	}

	type plain Debt
	return json.Marshal(plain(d))
}
