// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"fmt"

	"github.com/MKhiriev/go-axios-re/models"
)

// Notes normalizes disciplinary notes, keeping the per-term grouping. The
// note kind is the bold label of descNota and the text is what follows the
// closing span.
func Notes(raw []models.RawNotePeriod) ([]models.NotePeriod, error) {
	result := make([]models.NotePeriod, 0, len(raw))

	for _, period := range raw {
		notes := make([]models.Note, 0, len(period.Notes))

		for i, item := range period.Notes {
			kind, err := ExtractBold(item.Body)
			if err != nil {
				return nil, fmt.Errorf("note %d of %q: %w", i, period.Period, err)
			}
			text, err := TextAfter(item.Body, noteSeparator)
			if err != nil {
				return nil, fmt.Errorf("note %d of %q: %w", i, period.Period, err)
			}

			notes = append(notes, models.Note{
				Date:     item.Date,
				Type:     noteTypes.Convert(item.Type),
				Kind:     kind,
				Teacher:  item.Teacher,
				Text:     text,
				Read:     ToBool(item.Read, "True"),
				ReadBy:   item.ReadBy,
				ReadDate: SplitDateTime(item.ReadDate),
			})
		}

		result = append(result, models.NotePeriod{
			Period: period.Period,
			Notes:  notes,
		})
	}

	return result, nil
}
