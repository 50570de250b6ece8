// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

// Student normalizes the student profile.
func Student(raw models.RawStudent) models.Student {
	return models.Student{
		StudentID:           raw.StudentID,
		UserID:              raw.UserID,
		LastName:            raw.LastName,
		FirstName:           raw.FirstName,
		Sex:                 raw.Sex,
		BirthDate:           raw.BirthDate,
		Avatar:              raw.Avatar,
		SchoolCode:          raw.SchoolCode,
		Security:            raw.Security,
		FlagJustify:         ToBool(raw.FlagJustify, "S"),
		FlagInvalsi:         ToBool(raw.FlagInvalsi, "S"),
		FlagDocuments:       ToBool(raw.FlagDocuments, "S"),
		FlagPagoScuola:      ToBool(raw.FlagPagoScuola, "S"),
		FlagGuidanceCouncil: ToBool(raw.FlagGuidanceCouncil, "S"),
	}
}
