// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

// Absences normalizes absences, keeping the per-term grouping.
func Absences(raw []models.RawAbsencePeriod) []models.AbsencePeriod {
	result := make([]models.AbsencePeriod, 0, len(raw))

	for _, period := range raw {
		absences := make([]models.Absence, 0, len(period.Absences))

		for _, a := range period.Absences {
			var clock string
			if t := orEmpty(a.Time); t != "" {
				clock = RemoveSeconds(string(t))
			}

			absences = append(absences, models.Absence{
				ID:            a.ID,
				Date:          a.Date,
				Type:          absenceTypes.Convert(a.Type),
				LessonHour:    orEmpty(a.LessonHour),
				Time:          clock,
				Reason:        a.Reason,
				Counted:       ToBool(a.Counted, "1"),
				Justifiable:   ToBool(a.Justifiable, "1"),
				Justified:     !ToBool(a.JustifiedBy, "0"),
				JustifiedBy:   justifiedBy.Convert(string(a.JustifiedBy)),
				JustifiedDate: a.JustifiedDate,
			})
		}

		result = append(result, models.AbsencePeriod{
			Period:   period.Period,
			Absences: absences,
		})
	}

	return result
}
