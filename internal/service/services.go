// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-axios-re/internal/adapter"
	"github.com/MKhiriev/go-axios-re/internal/config"
	"github.com/MKhiriev/go-axios-re/internal/logger"
)

type Services struct {
	Session        *Session
	AuthService    AuthService
	RecordsService RecordsService
	CommandService CommandService
}

func NewServices(vendorAdapter adapter.VendorAdapter, appCfg config.ClientApp, logger *logger.Logger) *Services {
	session := NewSession(appCfg.VendorToken)

	return &Services{
		Session:        session,
		AuthService:    NewAuthService(vendorAdapter, session, appCfg, logger),
		RecordsService: NewRecordsService(vendorAdapter, session, logger),
		CommandService: NewCommandService(vendorAdapter, session, logger),
	}
}
