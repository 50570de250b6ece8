// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

func isTest(r models.RawHomework) bool {
	return r.NoteType == models.TestNoteType
}

// Homework normalizes the homework part of a GET_COMPITI_MASTER list: every
// record before the first test.
func Homework(raw []models.RawHomework) []models.Homework {
	homework, _ := SplitAtFirst(raw, isTest)

	result := make([]models.Homework, 0, len(homework))
	for _, item := range homework {
		result = append(result, models.Homework{
			ID:          item.ID,
			Subject:     item.Subject,
			Description: item.Description,
			DueDate:     datePart(item.Date),
			Published:   splitDatePair(item.PublicationDate),
		})
	}

	return result
}

// Tests normalizes the test part of a GET_COMPITI_MASTER list: the first
// test and everything after it. The description is the text following the
// bold "Verifica" label.
func Tests(raw []models.RawHomework) ([]models.Test, error) {
	_, tests := SplitAtFirst(raw, isTest)

	result := make([]models.Test, 0, len(tests))
	for _, item := range tests {
		description, err := TextAfter(item.Description, boldClose)
		if err != nil {
			return nil, err
		}

		result = append(result, models.Test{
			Subject:     item.Subject,
			Description: description,
			Date:        datePart(item.Date),
			Published:   splitDatePair(item.PublicationDate),
		})
	}

	return result, nil
}
