// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

// ReportCards normalizes report cards, keeping the per-term grouping. The
// term average is the mean of the subject marks floored to two decimals;
// a term without subjects has no average (NaN).
func ReportCards(raw []models.RawReportCardPeriod) []models.ReportCardPeriod {
	result := make([]models.ReportCardPeriod, 0, len(raw))

	for _, period := range raw {
		subjects := make([]models.SubjectReport, 0, len(period.Subjects))
		marks := make([]float64, 0, len(period.Subjects))

		for _, s := range period.Subjects {
			subjects = append(subjects, models.SubjectReport{
				Subject:   s.Subject,
				Mark:      s.Mark,
				Debt:      debt(s.Debt),
				Judgement: s.Judgement,
				Absences:  models.Number(ToNumber(s.Absences)),
			})
			marks = append(marks, ToNumber(s.Mark))
		}

		result = append(result, models.ReportCardPeriod{
			Period:    period.Period,
			Average:   Average(marks),
			Outcome:   period.Outcome,
			Judgement: RemoveHTMLTags(period.Judgement),
			Subjects:  subjects,
			ShownDate: period.ShownDate,
			URL:       period.URL,
			Read:      ToBool(period.Read, "S"),
			Visible:   ToBool(period.Visible, "true"),
		})
	}

	return result
}

func debt(sheet *models.RawDebtSheet) models.Debt {
	if sheet == nil {
		return models.Debt{}
	}

	return models.Debt{
		Present:       true,
		Reason:        sheet.Reason,
		Topics:        sheet.Topics,
		RecoveryMode:  sheet.RecoveryMode,
		TestType:      sheet.TestType,
		TestDate:      sheet.TestDate,
		TestTopics:    sheet.TestTopics,
		TestJudgement: sheet.TestJudgement,
	}
}
