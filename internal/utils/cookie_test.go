// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "testing"

func TestExtractCookie(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		cookie  string
		want    string
	}{
		{
			name:    "single header",
			headers: []string{"ASP.NET_SessionId=abc123; path=/; HttpOnly"},
			cookie:  "ASP.NET_SessionId",
			want:    "abc123",
		},
		{
			name:    "case insensitive name",
			headers: []string{"asp.net_sessionid=abc123; path=/"},
			cookie:  "ASP.NET_SessionId",
			want:    "abc123",
		},
		{
			name:    "last occurrence wins",
			headers: []string{"ASP.NET_SessionId=first; path=/", "other=1", "ASP.NET_SessionId=second; path=/"},
			cookie:  "ASP.NET_SessionId",
			want:    "second",
		},
		{
			name:    "url escaped value",
			headers: []string{"token=a%2Fb%3Dc; path=/"},
			cookie:  "token",
			want:    "a/b=c",
		},
		{
			name:    "prefix of another cookie is not a match",
			headers: []string{"XASP.NET_SessionId=nope; path=/"},
			cookie:  "ASP.NET_SessionId",
			want:    "",
		},
		{
			name:    "folded header",
			headers: []string{"a=1; path=/, ASP.NET_SessionId=folded; path=/"},
			cookie:  "ASP.NET_SessionId",
			want:    "folded",
		},
		{
			name:    "invalid escape kept as is",
			headers: []string{"token=100%zz"},
			cookie:  "token",
			want:    "100%zz",
		},
		{
			name:   "no headers",
			cookie: "ASP.NET_SessionId",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractCookie(tt.headers, tt.cookie); got != tt.want {
				t.Fatalf("ExtractCookie() = %q, want %q", got, tt.want)
			}
		})
	}
}
