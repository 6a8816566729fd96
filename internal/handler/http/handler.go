// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"

	"github.com/MKhiriev/item-keeper/internal/config"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/service"
	"github.com/MKhiriev/item-keeper/models"
)

// Pinger reports whether the backing store is reachable. It serves /healthz.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	services  *service.Services
	pinger    Pinger
	buildInfo models.AppBuildInfo
	cfg       config.Server
	metrics   *metrics

	logger *logger.Logger
}

func NewHandler(
	services *service.Services,
	pinger Pinger,
	buildInfo models.AppBuildInfo,
	cfg config.Server,
	logger *logger.Logger,
) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		pinger:    pinger,
		buildInfo: buildInfo,
		cfg:       cfg,
		metrics:   newMetrics(),
		logger:    logger,
	}
}
