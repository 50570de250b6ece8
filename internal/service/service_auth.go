// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-axios-re/internal/adapter"
	"github.com/MKhiriev/go-axios-re/internal/config"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/normalize"
	"github.com/MKhiriev/go-axios-re/models"
)

type authService struct {
	adapter adapter.VendorAdapter
	session *Session

	appName     string
	vendorToken string

	logger *logger.Logger
}

// NewAuthService creates an [AuthService] that stores its state in session.
func NewAuthService(vendorAdapter adapter.VendorAdapter, session *Session, appCfg config.ClientApp, logger *logger.Logger) AuthService {
	appName := appCfg.Name
	if appName == "" {
		appName = models.ApplicationStudentApp
	}

	return &authService{
		adapter:     vendorAdapter,
		session:     session,
		appName:     appName,
		vendorToken: appCfg.VendorToken,
		logger:      logger,
	}
}

func (a *authService) Login(ctx context.Context, schoolCode, userCode, password string) (models.LoginResult, error) {
	creds := models.Credentials{
		CodiceFiscale: schoolCode,
		UserName:      userCode,
		Password:      password,
		AppName:       a.appName,
		VendorToken:   a.vendorToken,
	}

	raw, err := a.adapter.Login(ctx, creds)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w", ErrLoginFailed, mapAdapterError(err))
	}

	var rawLogin models.RawLogin
	if err = json.Unmarshal(raw, &rawLogin); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: %w: %v", ErrLoginFailed, ErrUnexpectedResponse, err)
	}

	result := normalize.Login(rawLogin)
	if result.UserSession == "" {
		return models.LoginResult{}, fmt.Errorf("%w: %w: no usersession", ErrLoginFailed, ErrUnexpectedResponse)
	}

	a.session.set(schoolCode, result.UserSession)
	a.logger.Info().Str("school_code", schoolCode).Msg("logged in")

	return result, nil
}

func (a *authService) IsLoggedIn() bool {
	return a.session.LoggedIn()
}

func (a *authService) StudentInfo() (models.StudentInfo, error) {
	return a.session.StudentInfo()
}

func (a *authService) WebSession(ctx context.Context) (string, error) {
	info, err := a.session.StudentInfo()
	if err != nil {
		return "", err
	}

	cookie, err := a.adapter.WebSession(ctx, info)
	if err != nil {
		return "", fmt.Errorf("web session: %w", mapAdapterError(err))
	}

	return cookie, nil
}
