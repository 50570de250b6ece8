// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/MKhiriev/go-axios-re/internal/app"
	"github.com/MKhiriev/go-axios-re/internal/config"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/mock"
	"github.com/MKhiriev/go-axios-re/internal/service"
	"github.com/MKhiriev/go-axios-re/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testAccount = config.Account{SchoolCode: "80012345678", UserCode: "0001112223", Password: "segreta"}

var testLogin = models.LoginResult{
	UserSession: "b7f1-session",
	Student:     models.LoginStudent{FirstName: "Luca", LastName: "Rossi"},
	Active:      "S",
}

type testApp struct {
	app     *App
	auth    *mock.MockAuthService
	records *mock.MockRecordsService
	command *mock.MockCommandService
	out     *bytes.Buffer
	info    *bytes.Buffer
}

func newTestApp(t *testing.T, query config.Query) testApp {
	t.Helper()
	ctrl := gomock.NewController(t)

	auth := mock.NewMockAuthService(ctrl)
	records := mock.NewMockRecordsService(ctrl)
	command := mock.NewMockCommandService(ctrl)
	services := &service.Services{
		AuthService:    auth,
		RecordsService: records,
		CommandService: command,
	}

	cfg := &config.ClientConfig{Account: testAccount, Query: query}
	out, info := &bytes.Buffer{}, &bytes.Buffer{}

	a, err := NewApp(services, cfg, models.NewAppBuildInfo("v1.2.0", "", "abc123"), out, info, logger.Nop())
	require.NoError(t, err)

	return testApp{app: a, auth: auth, records: records, command: command, out: out, info: info}
}

func (ta testApp) expectLogin() {
	ta.auth.EXPECT().
		Login(gomock.Any(), testAccount.SchoolCode, testAccount.UserCode, testAccount.Password).
		Return(testLogin, nil)
}

// ── NewApp ───────────────────────────────────────────────────────────────────

func TestNewApp_MissingServices(t *testing.T) {
	_, err := NewApp(nil, &config.ClientConfig{}, models.AppBuildInfo{}, &bytes.Buffer{}, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingServices)

	_, err = NewApp(&service.Services{}, &config.ClientConfig{}, models.AppBuildInfo{}, &bytes.Buffer{}, &bytes.Buffer{}, logger.Nop())
	assert.ErrorIs(t, err, ErrMissingServices)
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestRun_Action(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "Voti"})
	ta.expectLogin()
	ta.records.EXPECT().Get(gomock.Any(), "Voti").Return([]models.Grade{
		{ID: "1", Subject: "FISICA", Type: "Orale", Mark: "7"},
	}, nil)

	require.NoError(t, ta.app.Run(context.Background()))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "FISICA", got[0]["materia"])

	assert.Contains(t, ta.info.String(), "Build version: v1.2.0")
	assert.Contains(t, ta.info.String(), "Build date: N/A")
	assert.Contains(t, ta.info.String(), "Build commit: abc123")
	assert.Contains(t, ta.out.String(), "\n  ")
}

func TestRun_Timeline(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "voti", Date: "20/01/2026"})
	ta.expectLogin()
	ta.records.EXPECT().Timeline(gomock.Any(), "20/01/2026").Return(models.Timeline{
		Today: []models.TimelineEvent{{Type: "Voto", Title: "<b>MATEMATICA</b>"}},
	}, nil)

	require.NoError(t, ta.app.Run(context.Background()))

	assert.Contains(t, ta.out.String(), `"oggi"`)
	assert.Contains(t, ta.out.String(), "<b>MATEMATICA</b>")
}

func TestRun_LoginAction(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: " LOGIN "})
	ta.expectLogin()

	require.NoError(t, ta.app.Run(context.Background()))

	var got models.LoginResult
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &got))
	assert.Equal(t, testLogin, got)
}

func TestRun_WebSession(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "websession"})
	ta.expectLogin()
	ta.auth.EXPECT().WebSession(gomock.Any()).Return("sdcookie", nil)

	require.NoError(t, ta.app.Run(context.Background()))
	assert.JSONEq(t, `{"ASP.NET_SessionId": "sdcookie"}`, ta.out.String())
}

func TestRun_LoginFails(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "voti"})
	ta.auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.LoginResult{}, service.ErrLoginFailed)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrLoginFailed)
	assert.Empty(t, ta.out.String())
}

func TestRun_UnsupportedAction(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "pagamenti"})
	ta.expectLogin()
	ta.records.EXPECT().Get(gomock.Any(), "pagamenti").Return(nil, service.ErrUnsupportedAction)

	err := ta.app.Run(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrUnsupportedAction)
	assert.Contains(t, err.Error(), "voti")
	assert.Contains(t, err.Error(), ActionWebSession)
}

func TestRun_RecordsError(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "note"})
	ta.expectLogin()
	boom := errors.New("boom")
	ta.records.EXPECT().Get(gomock.Any(), "note").Return(nil, boom)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "action note")
}

// ── Command actions ──────────────────────────────────────────────────────────

func TestRun_MarkRead(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "Leggi", Data: `{"idComunicazione":"42"}`})
	ta.expectLogin()
	ta.command.EXPECT().MarkCommunicationRead(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, data any) (models.CommandResult, error) {
			raw, ok := data.(json.RawMessage)
			require.True(t, ok)
			assert.JSONEq(t, `{"idComunicazione":"42"}`, string(raw))
			return models.CommandResult{Status: app.MsgCommunicationMarkedRead, Response: json.RawMessage(`{"ok":1}`)}, nil
		})

	require.NoError(t, ta.app.Run(context.Background()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(ta.out.Bytes(), &got))
	assert.Equal(t, app.MsgCommunicationMarkedRead, got["status"])
}

func TestRun_Reply(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "rispondi", Data: `{"idComunicazione":"42","testo":"ok"}`})
	ta.expectLogin()
	ta.command.EXPECT().ReplyCommunication(gomock.Any(), json.RawMessage(`{"idComunicazione":"42","testo":"ok"}`)).
		Return(models.CommandResult{Status: app.MsgReplySent}, nil)

	require.NoError(t, ta.app.Run(context.Background()))
	assert.Contains(t, ta.out.String(), app.MsgReplySent)
}

func TestRun_ReplyRejected(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "rispondi", Data: `{}`})
	ta.expectLogin()
	ta.command.EXPECT().ReplyCommunication(gomock.Any(), gomock.Any()).
		Return(models.CommandResult{}, service.ErrReplyRejected)

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, service.ErrReplyRejected)
	assert.Contains(t, err.Error(), "action rispondi")
	assert.Empty(t, ta.out.String())
}

func TestRun_CommandWithoutData(t *testing.T) {
	ta := newTestApp(t, config.Query{Action: "leggi"})
	ta.expectLogin()

	err := ta.app.Run(context.Background())

	assert.ErrorIs(t, err, ErrMissingCommandData)
	assert.Empty(t, ta.out.String())
}
