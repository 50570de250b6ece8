// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"strings"

	"github.com/MKhiriev/go-axios-re/models"
)

// Communications normalizes school notices. studentID is copied into every
// record because marking a notice as read or replying to it requires it.
func Communications(raw []models.RawCommunication, studentID models.Scalar) []models.Communication {
	result := make([]models.Communication, 0, len(raw))

	for _, item := range raw {
		attachments := make([]models.Attachment, 0, len(item.Attachments))
		for _, a := range item.Attachments {
			attachments = append(attachments, models.Attachment{
				Name:         a.SourceName,
				Description:  a.Description,
				DownloadLink: a.URL,
			})
		}

		result = append(result, models.Communication{
			Date:          item.Date,
			Title:         item.Title,
			Text:          RemoveHTMLTags(item.Body),
			ID:            item.ID,
			StudentID:     studentID,
			Type:          communicationTypes.Convert(string(item.Type)),
			Read:          ToBool(item.Read, "S"),
			Attachments:   attachments,
			ReplyExpected: item.ReplyType != "0",
			ReplyOptions:  strings.Split(item.Options, "|"),
		})
	}

	return result
}
