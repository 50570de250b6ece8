// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

// Timetable normalizes the weekly timetable.
func Timetable(raw []models.RawTimetableDay) []models.TimetableDay {
	result := make([]models.TimetableDay, 0, len(raw))

	for _, day := range raw {
		lessons := make([]models.Lesson, 0, len(day.Lessons))
		for _, l := range day.Lessons {
			lessons = append(lessons, models.Lesson{
				Hour:     l.Hour,
				Duration: [2]string{l.From, l.To},
				Subject:  l.Subject,
				Teacher:  l.Teacher,
			})
		}

		result = append(result, models.TimetableDay{
			Day:     weekdays.Convert(day.Day),
			Lessons: lessons,
		})
	}

	return result
}
