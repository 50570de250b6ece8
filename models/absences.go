// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawAbsencePeriod is one term of GET_ASSENZE_MASTER.
type RawAbsencePeriod struct {
	Period   string       `json:"descFrazione"`
	Absences []RawAbsence `json:"assenze"`
}

// RawAbsence is a single absence, late entry or early exit.
//
// Code alphabets:
//   - tipo: T (all), A (absence), U (early exit), R (late entry), E (re-entry)
//   - tipogiust: 0 (not justified), 1 (parent/guardian), 2 (teacher)
//   - calcolata, giustificabile: "1"/"0"
type RawAbsence struct {
	ID            Scalar `json:"id"`
	Date          string `json:"data"`
	Type          string `json:"tipo"`
	LessonHour    Scalar `json:"oralez"`
	Time          Scalar `json:"ora"`
	Reason        string `json:"motivo"`
	Counted       Scalar `json:"calcolata"`
	Justifiable   Scalar `json:"giustificabile"`
	JustifiedBy   Scalar `json:"tipogiust"`
	JustifiedDate string `json:"datagiust"`
}

// AbsencePeriod groups the absences of one term.
type AbsencePeriod struct {
	Period   string    `json:"quadrimestre"`
	Absences []Absence `json:"assenze"`
}

// Absence is a normalized absence record. LessonHour and Time are empty
// for whole-day absences.
type Absence struct {
	ID            Scalar `json:"id"`
	Date          string `json:"data"`
	Type          string `json:"tipo"`
	LessonHour    Scalar `json:"ora"`
	Time          string `json:"orario"`
	Reason        string `json:"motivo"`
	Counted       bool   `json:"calcolata"`
	Justifiable   bool   `json:"giustificabile"`
	Justified     bool   `json:"giustificata"`
	JustifiedBy   string `json:"giustificataDa"`
	JustifiedDate string `json:"giustficataData"`
}
