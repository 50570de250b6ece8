// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RawTimeline is response[0] of GET_TIMELINE for a single day.
type RawTimeline struct {
	Today   []RawTimelineEvent `json:"today"`
	Average Scalar             `json:"media_a"`
	Totals  RawTimelineTotals  `json:"totali"`
}

// RawTimelineEvent is one event of the day.
//
// type is C (communication), L (lesson topic), M (homework), N (note),
// A (absence) or V (grade). subType uses the absence alphabet for A, the
// grade alphabet for V and the note alphabet for N. For notes,
// desc.subtitle carries the same bold-label markup as descNota.
type RawTimelineEvent struct {
	Date       string               `json:"data"`
	Type       string               `json:"type"`
	SubType    string               `json:"subType"`
	ID         Scalar               `json:"id"`
	LessonHour Scalar               `json:"oralez"`
	Time       Scalar               `json:"ora"`
	Desc       RawTimelineEventDesc `json:"desc"`
}

// RawTimelineEventDesc holds the display texts of an event.
type RawTimelineEventDesc struct {
	Notes    string `json:"notes"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// RawTimelineTotals holds absence counters for the school year.
type RawTimelineTotals struct {
	Absences          Scalar `json:"assenze_totali"`
	AbsencesToJustify Scalar `json:"assenze_da_giust"`
	Lates             Scalar `json:"ritardi_totali"`
	LatesToJustify    Scalar `json:"ritardi_da_giust"`
	Exits             Scalar `json:"uscite_totali"`
	ExitsToJustify    Scalar `json:"uscite_da_giust"`
}

// Timeline is the normalized day view.
type Timeline struct {
	Today []TimelineEvent `json:"oggi"`
	Stats TimelineStats   `json:"dati"`
}

// TimelineEvent is a normalized timeline event. Hour holds the lesson hour
// and the clock time.
type TimelineEvent struct {
	Date        string    `json:"data"`
	Type        string    `json:"tipo"`
	SubType     string    `json:"subTipo"`
	ID          Scalar    `json:"id"`
	Hour        [2]Scalar `json:"ora"`
	Title       string    `json:"titolo"`
	Subtitle    string    `json:"sottoTitolo"`
	Description string    `json:"descrizione"`
}

// TimelineStats are the general counters shown with the timeline.
type TimelineStats struct {
	Average           Scalar `json:"media"`
	Absences          Scalar `json:"assenzeTot"`
	AbsencesToJustify Scalar `json:"assenzeDaGiust"`
	Lates             Scalar `json:"ritardiTot"`
	LatesToJustify    Scalar `json:"ritardiDaGiust"`
	Exits             Scalar `json:"usciteTot"`
	ExitsToJustify    Scalar `json:"usciteDaGiust"`
}
