// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"math"
	"testing"

	"github.com/MKhiriev/go-axios-re/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemoveSeconds(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"08:15:45", "08:15"},
		{"08:15", "08:15"},
		{"08:15:45:00", "08:15:45:00"},
		{"", ""},
		{"0815", "0815"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, RemoveSeconds(tt.in))
		})
	}
}

func TestToBool(t *testing.T) {
	assert.True(t, ToBool("1", "1"))
	assert.False(t, ToBool("0", "1"))
	assert.False(t, ToBool("", "1"))

	assert.True(t, ToBool("True", "True"))
	assert.False(t, ToBool("true", "True"), "sentinel comparison is case sensitive")
	assert.False(t, ToBool("S ", "S"))
}

func TestToBool_DecodedNumber(t *testing.T) {
	var v models.Scalar
	require.NoError(t, v.UnmarshalJSON([]byte("1")))
	assert.True(t, ToBool(v, "1"))
}

func TestToBool_JSONBoolean(t *testing.T) {
	var yes, no models.Scalar
	require.NoError(t, yes.UnmarshalJSON([]byte("true")))
	require.NoError(t, no.UnmarshalJSON([]byte("false")))

	assert.True(t, ToBool(yes, "1"))
	assert.False(t, ToBool(no, "1"))
	assert.True(t, ToBool(no, "0"), "false matches a zero sentinel")
	assert.False(t, ToBool(yes, "S"))
}

func TestOrEmpty(t *testing.T) {
	assert.Equal(t, models.Scalar(""), orEmpty("0"))
	assert.Equal(t, models.Scalar(""), orEmpty("false"))
	assert.Equal(t, models.Scalar(""), orEmpty(""))
	assert.Equal(t, models.Scalar("2"), orEmpty("2"))
	assert.Equal(t, models.Scalar("08:55:00"), orEmpty("08:55:00"))
}

func TestSplitDateTime(t *testing.T) {
	assert.Equal(t, []string{"27/11/2025", "00:00:00"}, SplitDateTime("27/11/2025 00:00:00"))
	assert.Equal(t, []string{"27/11/2025"}, SplitDateTime("27/11/2025"))
	assert.Equal(t, []string{""}, SplitDateTime(""))
	assert.Equal(t, []string{"a", "b c"}, SplitDateTime("a b c"))
}

func TestSplitDatePair(t *testing.T) {
	assert.Equal(t, models.DateTimePair{"18/01/2026", "14:30:00"}, splitDatePair("18/01/2026 14:30:00"))
	assert.Equal(t, models.DateTimePair{"18/01/2026", ""}, splitDatePair("18/01/2026"))
}

func TestRemoveHTMLTags(t *testing.T) {
	assert.Equal(t, "Buon rendimento generale.", RemoveHTMLTags("<p>Buon rendimento <b>generale</b>.</p>"))
	assert.Equal(t, "a&nbsp;b", RemoveHTMLTags("a<br/>&nbsp;b"))
	assert.Equal(t, "<p\nclass='x'>ok", RemoveHTMLTags("<p\nclass='x'>ok"))
	assert.Equal(t, "plain", RemoveHTMLTags("plain"))
}

func TestExtractBold(t *testing.T) {
	got, err := ExtractBold("<span><b>Nota disciplinare</b></span>&nbsp; Disturba la lezione")
	require.NoError(t, err)
	assert.Equal(t, "Nota disciplinare", got)

	got, err = ExtractBold("<b>first</b> and <b>second</b>")
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	_, err = ExtractBold("no label here")
	require.ErrorIs(t, err, ErrMalformedVendorData)
}

func TestTextAfter(t *testing.T) {
	got, err := TextAfter("<span><b>Nota</b></span>&nbsp;  testo  ", noteSeparator)
	require.NoError(t, err)
	assert.Equal(t, "testo", got)

	got, err = TextAfter("a|b|c", "|")
	require.NoError(t, err)
	assert.Equal(t, "b", got)

	_, err = TextAfter("<span>Nota</span> testo", noteSeparator)
	require.ErrorIs(t, err, ErrMalformedVendorData)
}

func TestToTitleCase(t *testing.T) {
	assert.Equal(t, "Mario Rossi", ToTitleCase("MARIO ROSSI"))
	assert.Equal(t, "Anna Maria", ToTitleCase("anna maria"))
	assert.Equal(t, "", ToTitleCase(""))
}

func TestToNumber(t *testing.T) {
	assert.Equal(t, 7.5, ToNumber("7.5"))
	assert.Equal(t, 8.0, ToNumber(" 8 "))
	assert.Equal(t, 0.0, ToNumber(""))
	assert.True(t, math.IsNaN(ToNumber("n.d.")))
}

func TestAverage(t *testing.T) {
	assert.InDelta(t, 4.5, float64(Average([]float64{3, 3, 6, 6})), 1e-9)
	assert.InDelta(t, 6.66, float64(Average([]float64{7, 8, 5})), 1e-9)
	assert.InDelta(t, 6.87, float64(Average([]float64{6.5, 7.25})), 1e-9)

	empty := Average(nil)
	assert.False(t, empty.Valid())

	withNaN := Average([]float64{6, math.NaN()})
	assert.False(t, withNaN.Valid())
}
