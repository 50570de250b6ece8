// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-axios-re/internal/adapter"
	"github.com/MKhiriev/go-axios-re/internal/config"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/service"
	"github.com/MKhiriev/go-axios-re/models"
)

// Query actions handled by the client itself rather than by
// [service.RecordsService.Get]. The command actions send the query data to
// [service.CommandService].
const (
	ActionLogin      = "login"
	ActionWebSession = "websession"
	ActionMarkRead   = "leggi"
	ActionReply      = "rispondi"
)

var (
	// ErrMissingServices is returned by NewApp when a required service is nil.
	ErrMissingServices = errors.New("client services are not initialised")
	// ErrMissingCommandData is returned when a command action runs without
	// query data.
	ErrMissingCommandData = errors.New("command action requires query data")
)

type App struct {
	services  *service.Services
	account   config.Account
	query     config.Query
	buildInfo models.AppBuildInfo

	out  io.Writer
	info io.Writer

	logger *logger.Logger
}

// NewApp creates the client runtime. Records are written to out; build
// information goes to info so that out stays valid JSON.
func NewApp(services *service.Services, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, out, info io.Writer, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil || services.RecordsService == nil || services.CommandService == nil {
		return nil, ErrMissingServices
	}

	return &App{
		services:  services,
		account:   cfg.Account,
		query:     cfg.Query,
		buildInfo: buildInfo,
		out:       out,
		info:      info,
		logger:    logger,
	}, nil
}

// Run implements [Client]. It logs in, runs the query and prints the result.
func (a *App) Run(ctx context.Context) error {
	a.printBuildInfo()

	login, err := a.services.AuthService.Login(ctx, a.account.SchoolCode, a.account.UserCode, a.account.Password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	result, err := a.runQuery(ctx, login)
	if err != nil {
		return err
	}

	return a.print(result)
}

func (a *App) runQuery(ctx context.Context, login models.LoginResult) (any, error) {
	if a.query.Date != "" {
		a.logger.Debug().Str("date", a.query.Date).Msg("fetching timeline")
		timeline, err := a.services.RecordsService.Timeline(ctx, a.query.Date)
		if err != nil {
			return nil, fmt.Errorf("timeline %s: %w", a.query.Date, err)
		}
		return timeline, nil
	}

	switch service.NormalizeAction(a.query.Action) {
	case ActionLogin:
		return login, nil

	case ActionWebSession:
		cookie, err := a.services.AuthService.WebSession(ctx)
		if err != nil {
			return nil, err
		}
		return map[string]string{adapter.SessionCookieName: cookie}, nil

	case ActionMarkRead:
		return a.runCommand(ctx, a.services.CommandService.MarkCommunicationRead)

	case ActionReply:
		return a.runCommand(ctx, a.services.CommandService.ReplyCommunication)
	}

	a.logger.Debug().Str("action", a.query.Action).Msg("fetching records")
	records, err := a.services.RecordsService.Get(ctx, a.query.Action)
	if errors.Is(err, service.ErrUnsupportedAction) {
		return nil, fmt.Errorf("%w (supported: %v, %s, %s, %s, %s)", err,
			service.SupportedActions(), ActionLogin, ActionWebSession, ActionMarkRead, ActionReply)
	}
	if err != nil {
		return nil, fmt.Errorf("action %s: %w", a.query.Action, err)
	}

	return records, nil
}

func (a *App) runCommand(ctx context.Context, command func(context.Context, any) (models.CommandResult, error)) (models.CommandResult, error) {
	if a.query.Data == "" {
		return models.CommandResult{}, fmt.Errorf("%s: %w", a.query.Action, ErrMissingCommandData)
	}

	a.logger.Debug().Str("action", a.query.Action).Msg("sending command")
	result, err := command(ctx, json.RawMessage(a.query.Data))
	if err != nil {
		return models.CommandResult{}, fmt.Errorf("action %s: %w", a.query.Action, err)
	}

	return result, nil
}

func (a *App) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

func (a *App) printBuildInfo() {
	version, date, commit := a.buildInfo.BuildVersion(), a.buildInfo.BuildDate(), a.buildInfo.BuildCommit()
	if version == "" {
		version = "N/A"
	}
	if date == "" {
		date = "N/A"
	}
	if commit == "" {
		commit = "N/A"
	}

	fmt.Fprintf(a.info, "Build version: %s\n", version)
	fmt.Fprintf(a.info, "Build date: %s\n", date)
	fmt.Fprintf(a.info, "Build commit: %s\n", commit)
}
