// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package handler assembles the transport handlers of the server.
package handler

import (
	"github.com/MKhiriev/item-keeper/internal/config"
	"github.com/MKhiriev/item-keeper/internal/handler/http"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/service"
	"github.com/MKhiriev/item-keeper/models"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers creates the HTTP handler. pinger backs the readiness probe.
func NewHandlers(
	services *service.Services,
	pinger http.Pinger,
	buildInfo models.AppBuildInfo,
	cfg config.Server,
	logger *logger.Logger,
) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, pinger, buildInfo, cfg, logger),
	}, nil
}
