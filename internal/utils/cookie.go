// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/url"
	"regexp"
)

// ExtractCookie returns the value of the cookie called name from a list of
// Set-Cookie header values. The name is matched case-insensitively; when it
// is set more than once the last value wins. Values are URL-unescaped when
// possible. An empty string means the cookie was not found.
func ExtractCookie(headers []string, name string) string {
	re := regexp.MustCompile(`(?i)(?:^|[;,\s])` + regexp.QuoteMeta(name) + `=([^;]+)`)

	var value string
	for _, header := range headers {
		for _, m := range re.FindAllStringSubmatch(header, -1) {
			value = m[1]
		}
	}

	if unescaped, err := url.PathUnescape(value); err == nil {
		return unescaped
	}
	return value
}
