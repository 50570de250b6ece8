// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawTimetableDay is one weekday of GET_ORARIO_MASTER (response[0].orario).
// giorno is G1 (Monday) … G6 (Saturday).
type RawTimetableDay struct {
	Day     string      `json:"giorno"`
	Lessons []RawLesson `json:"materie"`
}

// RawLesson is one hour of a timetable day.
type RawLesson struct {
	Hour    Scalar `json:"ora"`
	From    string `json:"da"`
	To      string `json:"a"`
	Subject string `json:"descMat"`
	Teacher string `json:"descDoc"`
}

// TimetableDay is a normalized weekday.
type TimetableDay struct {
	Day     string   `json:"giorno"`
	Lessons []Lesson `json:"orario"`
}

// Lesson is a normalized timetable hour; Duration holds start and end.
type Lesson struct {
	Hour     Scalar    `json:"ora"`
	Duration [2]string `json:"durata"`
	Subject  string    `json:"materia"`
	Teacher  string    `json:"docente"`
}
