// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package normalize

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-axios-re/models"
)

// Markup the vendor embeds in free-text fields.
const (
	noteSeparator = "</span>&nbsp;"
	boldClose     = "</b>"
)

var (
	htmlTagRe   = regexp.MustCompile(`<.*?>`)
	boldRe      = regexp.MustCompile(`<b>(.*?)</b>`)
	titleWordRe = regexp.MustCompile(`\w\S*`)
)

// ToBool reports whether value equals the field's true-sentinel. The
// comparison is case sensitive and numeric values compare by their text
// form. Against a numeric sentinel a JSON boolean counts as 1 or 0.
func ToBool(value models.Scalar, trueSentinel string) bool {
	if _, err := strconv.ParseFloat(trueSentinel, 64); err == nil {
		switch value {
		case "true":
			value = "1"
		case "false":
			value = "0"
		}
	}
	return string(value) == trueSentinel
}

// orEmpty returns value, or "" when it is a zero number or false.
func orEmpty(value models.Scalar) models.Scalar {
	switch value {
	case "0", "false":
		return ""
	}
	return value
}

// SplitDateTime splits a "dd/mm/yyyy hh:mm:ss" value on its first space.
// A value without a space yields a single element.
func SplitDateTime(s string) []string {
	return strings.SplitN(s, " ", 2)
}

// splitDatePair is SplitDateTime padded to exactly two parts.
func splitDatePair(s string) models.DateTimePair {
	var pair models.DateTimePair
	copy(pair[:], SplitDateTime(s))
	return pair
}

// datePart returns the date of a combined datetime value.
func datePart(s string) string {
	return SplitDateTime(s)[0]
}

// RemoveSeconds reduces "HH:MM:SS" to "HH:MM". Any other shape is returned
// unchanged.
func RemoveSeconds(s string) string {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return s
	}
	return parts[0] + ":" + parts[1]
}

// RemoveHTMLTags strips every <...> on a single line. Entities and inner
// text are kept; tags spanning a newline are left alone.
func RemoveHTMLTags(s string) string {
	return htmlTagRe.ReplaceAllString(s, "")
}

// ExtractBold returns the text inside the first <b>…</b> pair of s.
func ExtractBold(s string) (string, error) {
	m := boldRe.FindStringSubmatch(s)
	if m == nil {
		return "", fmt.Errorf("%w: no <b> label in %q", ErrMalformedVendorData, s)
	}
	return m[1], nil
}

// TextAfter returns the trimmed text between the first and the second
// occurrence of sep, or up to the end of s when sep occurs once.
func TextAfter(s, sep string) (string, error) {
	parts := strings.Split(s, sep)
	if len(parts) < 2 {
		return "", fmt.Errorf("%w: separator %q not found in %q", ErrMalformedVendorData, sep, s)
	}
	return strings.TrimSpace(parts[1]), nil
}

// ToTitleCase capitalises the first letter of every word and lower-cases
// the rest.
func ToTitleCase(s string) string {
	return titleWordRe.ReplaceAllStringFunc(s, func(w string) string {
		return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	})
}

// ToNumber converts vendor text to a number: blank text is 0, anything
// unparsable is NaN.
func ToNumber(s models.Scalar) float64 {
	text := strings.TrimSpace(string(s))
	if text == "" {
		return 0
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}

// Average returns the mean of values floored to two decimals, or NaN for
// an empty slice.
func Average(values []float64) models.Number {
	if len(values) == 0 {
		return models.NaN()
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return models.Number(math.Floor(sum/float64(len(values))*100) / 100)
}
