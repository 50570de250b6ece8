// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"

	"github.com/MKhiriev/go-axios-re/models"
)

// Session is the login state shared by the services. It is safe for
// concurrent use.
type Session struct {
	mu sync.RWMutex

	schoolCode  string
	userSession string
	vendorToken string
}

// NewSession returns an empty session for the deployment's vendor token.
func NewSession(vendorToken string) *Session {
	return &Session{vendorToken: vendorToken}
}

func (s *Session) set(schoolCode, userSession string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.schoolCode = schoolCode
	s.userSession = userSession
}

// LoggedIn reports whether both the school code and the session are known.
func (s *Session) LoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.schoolCode != "" && s.userSession != ""
}

// StudentInfo returns the request identification, or [ErrNotLoggedIn].
func (s *Session) StudentInfo() (models.StudentInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.schoolCode == "" || s.userSession == "" {
		return models.StudentInfo{}, ErrNotLoggedIn
	}

	return models.StudentInfo{
		CodiceFiscale: s.schoolCode,
		SessionGUID:   s.userSession,
		VendorToken:   s.vendorToken,
	}, nil
}
