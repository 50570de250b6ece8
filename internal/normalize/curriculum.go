// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"strings"

	"github.com/MKhiriev/go-axios-re/models"
)

// Curriculum normalizes the student's school history. Missing credits
// count as 0.
func Curriculum(raw []models.RawCurriculumEntry) []models.CurriculumEntry {
	result := make([]models.CurriculumEntry, 0, len(raw))

	for _, item := range raw {
		result = append(result, models.CurriculumEntry{
			SchoolCode: item.SchoolCode,
			School:     item.School,
			Course:     item.Course,
			SchoolYear: strings.Split(item.SchoolYear, "/"),
			Class:      item.Class.String(),
			Section:    item.Section,
			Outcome:    item.Outcome,
			Credits:    models.Number(ToNumber(item.Credits)),
		})
	}

	return result
}
