// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertLookup(t *testing.T) {
	codes := []string{"T", "A", "U"}
	labels := []string{"Tutte", "Assenza", "Uscita anticipata"}

	tests := []struct {
		name   string
		code   string
		codes  []string
		labels []string
		want   string
	}{
		{name: "known code", code: "A", codes: codes, labels: labels, want: "Assenza"},
		{name: "unknown code passes through", code: "Z", codes: codes, labels: labels, want: "Z"},
		{name: "empty code passes through", code: "", codes: codes, labels: labels, want: ""},
		{name: "first duplicate wins", code: "A", codes: []string{"A", "A"}, labels: []string{"first", "second"}, want: "first"},
		{name: "label missing for matched code", code: "B", codes: []string{"A", "B"}, labels: []string{"only"}, want: ""},
		{name: "empty tables", code: "A", want: "A"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertLookup(tt.code, tt.codes, tt.labels))
		})
	}
}

func TestLookupTables(t *testing.T) {
	assert.Equal(t, "Ritardo", absenceTypes.Convert("R"))
	assert.Equal(t, "Docente", justifiedBy.Convert("2"))
	assert.Equal(t, "Circolare", communicationTypes.Convert("1"))
	assert.Equal(t, "Classe", noteTypes.Convert("C"))
	assert.Equal(t, "Sabato", weekdays.Convert("G6"))
	assert.Equal(t, "Entrata Posticipata", permissionTypes.Convert("E"))
	assert.Equal(t, "Orale", gradeTypes.Convert("O"))
	assert.Equal(t, "Voto", timelineTypes.Convert("V"))
}
