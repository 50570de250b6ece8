// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"strings"

	"github.com/MKhiriev/go-axios-re/models"
)

// Topics normalizes lesson topics and groups them by day. The vendor sends
// one flat list sorted by day; a new group starts whenever the day changes
// from one record to the next.
func Topics(raw []models.RawTopic) [][]models.Topic {
	topics := make([]models.Topic, 0, len(raw))
	for _, item := range raw {
		topics = append(topics, models.Topic{
			ID:          item.ID,
			Subject:     item.Subject,
			Description: item.Description,
			Hours:       strings.Split(item.LessonHours, "-"),
			Day:         datePart(item.Date),
			Published:   splitDatePair(item.PublicationDate),
		})
	}

	return GroupAdjacent(topics, func(t models.Topic) string { return t.Day })
}
