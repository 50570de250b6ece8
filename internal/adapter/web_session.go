// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/utils"
	"github.com/MKhiriev/go-axios-re/models"
)

// SessionCookieName is the cookie issued by both web portals.
const SessionCookieName = "ASP.NET_SessionId"

const (
	serviceWebURL = "GET_URL_WEB"

	ssoPath              = "/Pages/SD/SD_Ajax_Post.aspx?Action=SSO&Others=undefined&App=SD"
	schoolPortalLoginURL = "https://scuoladigitale.axioscloud.it/Pages/SD/SD_Login.aspx"

	familyPortalUserAgent = "Mozilla/5.0 (Linux; Android 7.1.1; ONEPLUS A5000 Build/NMF26X; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/119.0.6045.193 Safari/537.36"
	schoolPortalUserAgent = "Mozilla/5.0 (Linux; Android 13; 2201117SY Build/TP1A.220624.014; wv) AppleWebKit/537.36 (KHTML, like Gecko) Version/4.0 Chrome/127.0.6533.64 Mobile Safari/537.36"
)

type ssoRequest struct {
	AppURL string `json:"appurl"`
}

// WebSession implements [VendorAdapter].
//
// The exchange has two hops. GET_URL_WEB yields a login form for the family
// portal; posting it answers with a first session cookie. That cookie
// authorises an SSO call which yields a second form, and posting that one
// answers with the school portal cookie that is returned.
func (h *httpVendorAdapter) WebSession(ctx context.Context, info models.StudentInfo) (string, error) {
	raw, err := h.Retrieve(ctx, info, models.Command{
		Application: models.ApplicationFamily,
		Service:     serviceWebURL,
	})
	if err != nil {
		return "", fmt.Errorf("web session parameters: %w", err)
	}

	var familyParams models.WebLoginParams
	if err = json.Unmarshal(raw, &familyParams); err != nil {
		return "", fmt.Errorf("decode web session parameters: %w", err)
	}

	ctx, _ = h.logger.WithTraceID(ctx)
	log := logger.FromContext(ctx)

	familyCookie, err := h.postLoginForm(ctx, familyParams, map[string]string{
		"User-Agent": familyPortalUserAgent,
	})
	if err != nil {
		log.Err(err).Msg("family portal login failed")
		return "", fmt.Errorf("family portal session: %w", err)
	}

	schoolParams, err := h.singleSignOn(ctx, familyCookie)
	if err != nil {
		log.Err(err).Msg("single sign-on failed")
		return "", fmt.Errorf("single sign-on: %w", err)
	}

	schoolCookie, err := h.postLoginForm(ctx, schoolParams, map[string]string{
		"Origin":     h.webAddress,
		"Referer":    h.webAddress + "/",
		"User-Agent": schoolPortalUserAgent,
	})
	if err != nil {
		log.Err(err).Msg("school portal login failed")
		return "", fmt.Errorf("school portal session: %w", err)
	}

	log.Debug().Msg("web session established")
	return schoolCookie, nil
}

// postLoginForm posts params as a form without following the redirect and
// returns the session cookie set on the reply.
func (h *httpVendorAdapter) postLoginForm(ctx context.Context, params models.WebLoginParams, headers map[string]string) (string, error) {
	if params.URL == "" {
		return "", fmt.Errorf("%w: missing login form url", ErrEmptyResponse)
	}

	resp, err := h.formRequest(ctx, params).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetHeader(headerRequestedWith, appRequestedWith).
		SetHeaders(headers).
		Post(params.URL)
	if err != nil {
		return "", err
	}
	if err = mapHTTPError(resp, true); err != nil {
		return "", err
	}

	cookie := utils.ExtractCookie(resp.Header().Values("Set-Cookie"), SessionCookieName)
	if cookie == "" {
		return "", ErrNoSessionCookie
	}

	return cookie, nil
}

func (h *httpVendorAdapter) singleSignOn(ctx context.Context, familyCookie string) (models.WebLoginParams, error) {
	var params models.WebLoginParams

	resp, err := h.web.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json; charset=UTF-8").
		SetHeader(headerRequestedWith, "XMLHttpRequest").
		SetHeader("Origin", h.webAddress).
		SetHeader("Cookie", SessionCookieName+"="+familyCookie).
		SetBody(ssoRequest{AppURL: schoolPortalLoginURL}).
		Post(h.webAddress + ssoPath)
	if err != nil {
		return params, err
	}
	if err = mapHTTPError(resp, false); err != nil {
		return params, err
	}

	if err = json.Unmarshal(resp.Body(), &params); err != nil {
		return params, fmt.Errorf("decode sso response: %w", err)
	}

	return params, nil
}
