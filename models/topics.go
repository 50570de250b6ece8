// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawTopic is one lesson topic as returned by GET_ARGOMENTI_MASTER
// (response[0].argomenti). Records arrive sorted by day with no explicit
// group boundary.
type RawTopic struct {
	ID              Scalar `json:"idArgomento"`
	Subject         string `json:"descMat"`
	Description     string `json:"descArgomenti"`
	LessonHours     string `json:"oreLezione"` // "4" or "4-5"
	Date            string `json:"data"`       // "27/11/2025 00:00:00"
	PublicationDate string `json:"data_pubblicazione"`
}

// Topic is a normalized lesson topic. Topics are returned grouped by day.
type Topic struct {
	ID          Scalar       `json:"id"`
	Subject     string       `json:"materia"`
	Description string       `json:"argomento"`
	Hours       []string     `json:"ore"`
	Day         string       `json:"giorno"`
	Published   DateTimePair `json:"pubblicato"`
}

// DateTimePair is a vendor datetime split into its date and time parts.
// The time part is empty when the vendor value had no time.
type DateTimePair [2]string
