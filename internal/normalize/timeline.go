// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-axios-re/models"
)

// testLabelRe marks homework timeline events that are actually tests.
var testLabelRe = regexp.MustCompile(`<b>Verifica</b>`)

const testSubType = "Verifica"

// Timeline normalizes the events of one day and the year counters.
func Timeline(raw models.RawTimeline) (models.Timeline, error) {
	events := make([]models.TimelineEvent, 0, len(raw.Today))

	for i, item := range raw.Today {
		event, err := timelineEvent(item)
		if err != nil {
			return models.Timeline{}, fmt.Errorf("timeline event %d: %w", i, err)
		}
		events = append(events, event)
	}

	return models.Timeline{
		Today: events,
		Stats: models.TimelineStats{
			Average:           raw.Average,
			Absences:          raw.Totals.Absences,
			AbsencesToJustify: raw.Totals.AbsencesToJustify,
			Lates:             raw.Totals.Lates,
			LatesToJustify:    raw.Totals.LatesToJustify,
			Exits:             raw.Totals.Exits,
			ExitsToJustify:    raw.Totals.ExitsToJustify,
		},
	}, nil
}

func timelineEvent(item models.RawTimelineEvent) (models.TimelineEvent, error) {
	var subType string
	description := item.Desc.Notes
	title := item.Desc.Title
	subtitle := item.Desc.Subtitle

	switch item.Type {
	case "A":
		subType = absenceTypes.Convert(item.SubType)
	case "V":
		subType = gradeTypes.Convert(item.SubType)
	case "N":
		subType = noteTypes.Convert(item.SubType)

		var err error
		if title, err = ExtractBold(item.Desc.Subtitle); err != nil {
			return models.TimelineEvent{}, err
		}
		if subtitle, err = TextAfter(item.Desc.Subtitle, noteSeparator); err != nil {
			return models.TimelineEvent{}, err
		}
	case "M":
		if loc := testLabelRe.FindStringIndex(item.Desc.Notes); loc != nil {
			subType = testSubType
			description = strings.TrimSpace(item.Desc.Notes[:loc[0]] + item.Desc.Notes[loc[1]:])
		}
	}

	return models.TimelineEvent{
		Date:        item.Date,
		Type:        timelineTypes.Convert(item.Type),
		SubType:     subType,
		ID:          item.ID,
		Hour:        [2]models.Scalar{item.LessonHour, item.Time},
		Title:       title,
		Subtitle:    subtitle,
		Description: description,
	}, nil
}
