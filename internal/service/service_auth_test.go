// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-axios-re/internal/adapter"
	"github.com/MKhiriev/go-axios-re/internal/config"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/mock"
	"github.com/MKhiriev/go-axios-re/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testSchoolCode  = "80012345678"
	testUserCode    = "0001112223"
	testPassword    = "segreta"
	testVendorToken = "vendor-token"
	testUserSession = "b7f1-session"
)

var testAppCfg = config.ClientApp{VendorToken: testVendorToken, Name: "ALU_APP"}

var loginResponse = json.RawMessage(`{
	"usersession": "b7f1-session", "nome": "LUCA", "cognome": "ROSSI", "dataNascita": "01/02/2010",
	"sQR": "QR-1", "idAlunno": 4242, "userPinSd": "1234", "userPinRe": "5678", "utenteAttivo": "S"
}`)

// newTestAuthSvc creates an authService with a mocked adapter and an empty
// session.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockVendorAdapter) {
	t.Helper()
	mockAdapter := mock.NewMockVendorAdapter(ctrl)

	svc := NewAuthService(mockAdapter, NewSession(testVendorToken), testAppCfg, logger.Nop()).(*authService)
	return svc, mockAdapter
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().Login(ctx, models.Credentials{
		CodiceFiscale: testSchoolCode,
		UserName:      testUserCode,
		Password:      testPassword,
		AppName:       "ALU_APP",
		VendorToken:   testVendorToken,
	}).Return(loginResponse, nil)

	assert.False(t, svc.IsLoggedIn())

	got, err := svc.Login(ctx, testSchoolCode, testUserCode, testPassword)
	require.NoError(t, err)

	assert.Equal(t, testUserSession, got.UserSession)
	assert.Equal(t, "Luca", got.Student.FirstName)
	assert.Equal(t, "Rossi", got.Student.LastName)
	assert.Equal(t, models.Scalar("4242"), got.Student.StudentID)
	assert.True(t, svc.IsLoggedIn())

	info, err := svc.StudentInfo()
	require.NoError(t, err)
	assert.Equal(t, models.StudentInfo{
		CodiceFiscale: testSchoolCode,
		SessionGUID:   testUserSession,
		VendorToken:   testVendorToken,
	}, info)
}

func TestAuthService_Login_DefaultAppName(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockVendorAdapter(ctrl)
	svc := NewAuthService(mockAdapter, NewSession(""), config.ClientApp{}, logger.Nop())

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, creds models.Credentials) (json.RawMessage, error) {
			assert.Equal(t, models.ApplicationStudentApp, creds.AppName)
			return loginResponse, nil
		},
	)

	_, err := svc.Login(context.Background(), testSchoolCode, testUserCode, testPassword)
	require.NoError(t, err)
}

func TestAuthService_Login_VendorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: Credenziali errate", adapter.ErrVendor))

	_, err := svc.Login(context.Background(), testSchoolCode, testUserCode, "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, adapter.ErrVendor)
	assert.False(t, svc.IsLoggedIn())
}

func TestAuthService_Login_VendorDown(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl)

	mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: upstream", adapter.ErrBadGateway))

	_, err := svc.Login(context.Background(), testSchoolCode, testUserCode, testPassword)

	assert.ErrorIs(t, err, ErrLoginFailed)
	assert.ErrorIs(t, err, ErrVendorUnavailable)
}

func TestAuthService_Login_UnexpectedShape(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "array", raw: `[1, 2]`},
		{name: "no session", raw: `{"nome": "LUCA"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, mockAdapter := newTestAuthSvc(t, ctrl)

			mockAdapter.EXPECT().Login(gomock.Any(), gomock.Any()).Return(json.RawMessage(tt.raw), nil)

			_, err := svc.Login(context.Background(), testSchoolCode, testUserCode, testPassword)

			assert.ErrorIs(t, err, ErrUnexpectedResponse)
			assert.False(t, svc.IsLoggedIn())
		})
	}
}

// ── StudentInfo / WebSession ─────────────────────────────────────────────────

func TestAuthService_StudentInfo_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.StudentInfo()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthService_WebSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	svc.session.set(testSchoolCode, testUserSession)

	mockAdapter.EXPECT().WebSession(gomock.Any(), models.StudentInfo{
		CodiceFiscale: testSchoolCode,
		SessionGUID:   testUserSession,
		VendorToken:   testVendorToken,
	}).Return("sdcookie", nil)

	cookie, err := svc.WebSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sdcookie", cookie)
}

func TestAuthService_WebSession_NotLoggedIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.WebSession(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

func TestAuthService_WebSession_NoCookie(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestAuthSvc(t, ctrl)
	svc.session.set(testSchoolCode, testUserSession)

	mockAdapter.EXPECT().WebSession(gomock.Any(), gomock.Any()).Return("", adapter.ErrNoSessionCookie)

	_, err := svc.WebSession(context.Background())
	assert.ErrorIs(t, err, adapter.ErrNoSessionCookie)
}

// ── Session ──────────────────────────────────────────────────────────────────

func TestSession_ConcurrentAccess(t *testing.T) {
	session := NewSession(testVendorToken)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			session.set(testSchoolCode, testUserSession)
		}()
		go func() {
			defer wg.Done()
			_, _ = session.StudentInfo()
			_ = session.LoggedIn()
		}()
	}
	wg.Wait()

	assert.True(t, session.LoggedIn())
}

func TestSession_PartialState(t *testing.T) {
	session := NewSession(testVendorToken)
	session.set(testSchoolCode, "")

	assert.False(t, session.LoggedIn())
	_, err := session.StudentInfo()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
}

// ── mapAdapterError ──────────────────────────────────────────────────────────

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: ErrSessionRejected},
		{name: "forbidden", err: adapter.ErrForbidden, want: ErrSessionRejected},
		{name: "bad gateway", err: adapter.ErrBadGateway, want: ErrVendorUnavailable},
		{name: "internal", err: adapter.ErrInternalServerError, want: ErrVendorUnavailable},
		{name: "vendor", err: adapter.ErrVendor, want: adapter.ErrVendor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapAdapterError(fmt.Errorf("wrapped: %w", tt.err))
			assert.ErrorIs(t, got, tt.want)
			assert.ErrorIs(t, got, tt.err)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}
