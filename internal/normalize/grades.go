// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

// Grades normalizes marks into one flat list. Unlike the other per-term
// endpoints the term label is dropped.
func Grades(raw []models.RawGradePeriod) []models.Grade {
	result := make([]models.Grade, 0)

	for _, period := range raw {
		for _, item := range period.Grades {
			result = append(result, models.Grade{
				ID:      item.ID,
				Subject: item.Subject,
				Type:    gradeTypes.Convert(item.Type),
				Mark:    item.Mark,
				Weight:  item.Weight,
				Date:    item.Date,
				Comment: item.Comment,
				Teacher: item.Teacher,
			})
		}
	}

	return result
}
