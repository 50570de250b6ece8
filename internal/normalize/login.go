// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import "github.com/MKhiriev/go-axios-re/models"

// Login normalizes a Login2 response. Names are title-cased.
func Login(raw models.RawLogin) models.LoginResult {
	return models.LoginResult{
		UserSession: raw.UserSession.String(),
		Student: models.LoginStudent{
			FirstName: ToTitleCase(raw.FirstName),
			LastName:  ToTitleCase(raw.LastName),
			BirthDate: raw.BirthDate,
			QRCode:    raw.QRCode,
			StudentID: raw.StudentID,
			Pin: models.LoginPin{
				SD: raw.PinSD,
				RE: raw.PinRE,
			},
		},
		Active: raw.Active,
	}
}
