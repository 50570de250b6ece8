// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawGradePeriod is one term of GET_VOTI_LIST_DETAIL.
type RawGradePeriod struct {
	Period string     `json:"descFrazione"`
	Grades []RawGrade `json:"voti"`
}

// RawGrade is a single mark. tipo is T (all), S (written), G (graphic),
// O (oral), P (practical) or A (single).
type RawGrade struct {
	ID      Scalar `json:"idVoto"`
	Subject string `json:"descMat"`
	Type    string `json:"tipo"`
	Mark    Scalar `json:"voto"`
	Weight  Scalar `json:"peso"`
	Date    string `json:"data"`
	Comment string `json:"commento"`
	Teacher string `json:"docente"`
}

// Grade is a normalized mark. Grades are returned as one flat list; the
// term they belong to is not kept.
type Grade struct {
	ID      Scalar `json:"id"`
	Subject string `json:"materia"`
	Type    string `json:"tipo"`
	Mark    Scalar `json:"voto"`
	Weight  Scalar `json:"peso"`
	Date    string `json:"data"`
	Comment string `json:"commento"`
	Teacher string `json:"professore"`
}
