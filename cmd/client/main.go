// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-axios-re/internal/adapter"
	"github.com/MKhiriev/go-axios-re/internal/client"
	"github.com/MKhiriev/go-axios-re/internal/codec"
	"github.com/MKhiriev/go-axios-re/internal/config"
	"github.com/MKhiriev/go-axios-re/internal/logger"
	"github.com/MKhiriev/go-axios-re/internal/service"
	"github.com/MKhiriev/go-axios-re/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig()
	if err != nil {
		fail(logger.NewClientLogger("axios-client", ""), err, "error getting configs")
	}

	log := logger.NewClientLogger("axios-client", cfg.Log.File)

	envelopeCodec, err := codec.NewEnvelopeCodec(cfg.App.CipherKey)
	if err != nil {
		fail(log, err, "create envelope codec")
	}

	vendorAdapter, err := adapter.NewHTTPVendorAdapter(cfg.Adapter, envelopeCodec, log)
	if err != nil {
		fail(log, err, "create vendor adapter")
	}

	services := service.NewServices(vendorAdapter, cfg.App, log)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	app, err := client.NewApp(services, cfg, buildInfo, os.Stdout, os.Stderr, log)
	if err != nil {
		fail(log, err, "init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		stop()
		fail(log, err, "client run error")
	}
}

// fail reports err on stderr and exits through the logger.
func fail(log *logger.Logger, err error, msg string) {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	log.Fatal().Err(err).Msg(msg)
}
