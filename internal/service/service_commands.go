// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-axios-re/internal/adapter"
	"github.com/MKhiriev/go-axios-re/internal/app"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/models"
)

const (
	serviceProcessQueue = "APP_PROCESS_QUEUE"

	moduleCommunicationRead  = "COMUNICAZIONI_READ"
	moduleCommunicationReply = "COMUNICAZIONI_RISPOSTA"
)

type commandService struct {
	adapter adapter.VendorAdapter
	session *Session
	logger  *logger.Logger
}

// NewCommandService creates a [CommandService] acting with the credentials
// stored in session.
func NewCommandService(vendorAdapter adapter.VendorAdapter, session *Session, logger *logger.Logger) CommandService {
	return &commandService{adapter: vendorAdapter, session: session, logger: logger}
}

func (c *commandService) MarkCommunicationRead(ctx context.Context, data any) (models.CommandResult, error) {
	vr, err := c.execute(ctx, moduleCommunicationRead, data)
	if err != nil {
		return models.CommandResult{}, err
	}

	if isNullResponse(vr.Response) {
		return models.CommandResult{Status: app.MsgCommunicationAlreadyRead}, nil
	}

	return models.CommandResult{Status: app.MsgCommunicationMarkedRead, Response: vr.Response}, nil
}

func (c *commandService) ReplyCommunication(ctx context.Context, data any) (models.CommandResult, error) {
	vr, err := c.execute(ctx, moduleCommunicationReply, data)
	if err != nil {
		return models.CommandResult{}, err
	}

	if vr.Failed() {
		c.logger.Warn().Str("errormessage", vr.ErrorMessage).Msg("reply rejected")
		return models.CommandResult{}, fmt.Errorf("%w: %w: %s", ErrReplyRejected, adapter.ErrVendor, vr.ErrorMessage)
	}

	result := models.CommandResult{Status: app.MsgReplySent}
	if !isNullResponse(vr.Response) {
		result.Response = vr.Response
	}
	return result, nil
}

func (c *commandService) execute(ctx context.Context, module string, data any) (models.VendorResponse, error) {
	info, err := c.session.StudentInfo()
	if err != nil {
		return models.VendorResponse{}, err
	}

	vr, err := c.adapter.Execute(ctx, info, models.Command{
		Application: models.ApplicationFamily,
		Service:     serviceProcessQueue,
		Module:      module,
		Data:        data,
	})
	if err != nil {
		return models.VendorResponse{}, fmt.Errorf("%s: %w", module, mapAdapterError(err))
	}

	return vr, nil
}

func isNullResponse(raw []byte) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}
