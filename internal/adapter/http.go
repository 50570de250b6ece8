// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-axios-re/internal/codec"
	"github.com/MKhiriev/go-axios-re/internal/config"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/utils"
	"github.com/MKhiriev/go-axios-re/models"
	"github.com/go-resty/resty/v2"
)

// Vendor web service endpoints, relative to the configured base URL.
const (
	loginPath    = "/Login2"
	retrievePath = "/RetrieveDataInformation"
	executePath  = "/ExecuteCommand"
)

// Number of percent-encoding layers each endpoint expects.
const (
	loginLayers    = 2
	retrieveLayers = 1
	executeLayers  = 0
)

const (
	headerRequestedWith = "X-Requested-With"
	appRequestedWith    = "com.axiositalia.re.students"
)

type httpVendorAdapter struct {
	client *utils.HTTPClient
	web    *utils.HTTPClient

	webAddress string

	codec  codec.Codec
	logger *logger.Logger
}

// NewHTTPVendorAdapter constructs an HTTP implementation of [VendorAdapter].
// It normalises and validates both adapterCfg addresses, configures a client
// for the vendor web service and a second, non-redirecting client for the
// web portal cookie exchange.
//
// Returns an error if either address is empty or cannot be parsed.
func NewHTTPVendorAdapter(adapterCfg config.ClientAdapter, c codec.Codec, logger *logger.Logger) (VendorAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}
	webAddress, err := normalizeBaseURL(adapterCfg.WebAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter web address: %w", err)
	}

	client := utils.NewHTTPClient(
		utils.WithBaseURL(baseURL),
		utils.WithTimeout(adapterCfg.RequestTimeout),
	)
	web := utils.NewHTTPClient(
		utils.WithTimeout(adapterCfg.RequestTimeout),
		utils.WithoutRedirects(),
	)

	return &httpVendorAdapter{
		client:     client,
		web:        web,
		webAddress: webAddress,
		codec:      c,
		logger:     logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [VendorAdapter]. It GETs /Login2 with creds encoded in a
// double-escaped envelope and returns the "response" object of the reply.
func (h *httpVendorAdapter) Login(ctx context.Context, creds models.Credentials) (json.RawMessage, error) {
	ctx, _ = h.logger.WithTraceID(ctx)
	log := logger.FromContext(ctx)

	envelope, err := h.codec.Encode(creds, loginLayers)
	if err != nil {
		return nil, fmt.Errorf("encode login request: %w", err)
	}

	log.Debug().Str("school_code", creds.CodiceFiscale).Msg("vendor login")

	vr, err := h.getEnvelope(ctx, loginPath, envelope)
	if err != nil {
		log.Err(err).Msg("vendor login failed")
		return nil, fmt.Errorf("login request: %w", err)
	}
	if vr.ErrorMessage != "" {
		log.Error().Str("errormessage", vr.ErrorMessage).Msg("vendor rejected login")
		return nil, fmt.Errorf("%w: %s", ErrVendor, vr.ErrorMessage)
	}
	if isEmptyJSON(vr.Response) {
		return nil, fmt.Errorf("login request: %w", ErrEmptyResponse)
	}

	return vr.Response, nil
}

// Retrieve implements [VendorAdapter]. It GETs /RetrieveDataInformation with
// the request envelope in the json query parameter.
func (h *httpVendorAdapter) Retrieve(ctx context.Context, info models.StudentInfo, cmd models.Command) (json.RawMessage, error) {
	ctx, _ = h.logger.WithTraceID(ctx)
	log := logger.FromContext(ctx)

	envelope, err := h.codec.Encode(models.NewVendorRequest(info, cmd), retrieveLayers)
	if err != nil {
		return nil, fmt.Errorf("encode %s request: %w", cmd.Service, err)
	}

	log.Debug().Str("service", cmd.Service).Msg("vendor retrieve")

	vr, err := h.getEnvelope(ctx, retrievePath, envelope)
	if err != nil {
		log.Err(err).Str("service", cmd.Service).Msg("vendor retrieve failed")
		return nil, fmt.Errorf("%s request: %w", cmd.Service, err)
	}
	if vr.Failed() {
		log.Error().Str("service", cmd.Service).Str("errormessage", vr.ErrorMessage).Msg("vendor rejected request")
		return nil, fmt.Errorf("%w: %s", ErrVendor, vr.ErrorMessage)
	}

	return vr.Response, nil
}

// Execute implements [VendorAdapter]. It POSTs {"JsonRequest": envelope} to
// /ExecuteCommand. The envelope is sent without percent-encoding because it
// travels in a JSON body.
func (h *httpVendorAdapter) Execute(ctx context.Context, info models.StudentInfo, cmd models.Command) (models.VendorResponse, error) {
	ctx, _ = h.logger.WithTraceID(ctx)
	log := logger.FromContext(ctx)

	envelope, err := h.codec.Encode(models.NewVendorRequest(info, cmd), executeLayers)
	if err != nil {
		return models.VendorResponse{}, fmt.Errorf("encode %s request: %w", cmd.Module, err)
	}

	log.Debug().Str("service", cmd.Service).Str("module", cmd.Module).Msg("vendor execute")

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ExecuteRequest{JSONRequest: envelope}).
		Post(executePath)
	if err != nil {
		return models.VendorResponse{}, fmt.Errorf("%s request: %w", cmd.Module, err)
	}
	if err = mapHTTPError(resp, false); err != nil {
		log.Err(err).Str("module", cmd.Module).Msg("vendor execute failed")
		return models.VendorResponse{}, err
	}

	var vr models.VendorResponse
	if err = h.codec.Decode(string(resp.Body()), true, &vr); err != nil {
		return models.VendorResponse{}, fmt.Errorf("decode %s response: %w", cmd.Module, err)
	}

	return vr, nil
}

// getEnvelope GETs path with envelope as the json query parameter and decodes
// the reply. The envelope is already escaped, so it is appended verbatim.
func (h *httpVendorAdapter) getEnvelope(ctx context.Context, path, envelope string) (models.VendorResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader(headerRequestedWith, appRequestedWith).
		Get(path + "?json=" + envelope)
	if err != nil {
		return models.VendorResponse{}, err
	}
	if err = mapHTTPError(resp, false); err != nil {
		return models.VendorResponse{}, err
	}

	var vr models.VendorResponse
	if err = h.codec.Decode(string(resp.Body()), true, &vr); err != nil {
		return models.VendorResponse{}, fmt.Errorf("decode response: %w", err)
	}

	return vr, nil
}

func isEmptyJSON(raw json.RawMessage) bool {
	trimmed := strings.TrimSpace(string(raw))
	return trimmed == "" || trimmed == "null"
}

func (h *httpVendorAdapter) formRequest(ctx context.Context, params models.WebLoginParams) *resty.Request {
	return h.web.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"parameters": params.Parameters,
			"action":     params.Action,
		})
}
