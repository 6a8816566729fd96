// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/item-keeper/internal/config"
	"github.com/MKhiriev/item-keeper/internal/crypto"
	"github.com/MKhiriev/item-keeper/internal/handler"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/server"
	"github.com/MKhiriev/item-keeper/internal/service"
	"github.com/MKhiriev/item-keeper/internal/store"
	"github.com/MKhiriev/item-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	if err := run(buildInfo); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(buildInfo models.AppBuildInfo) error {
	log := logger.NewLogger("item-keeper-server")

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Err(err).Msg("error getting configs")
		return err
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Err(err).Msg("error creating storages")
		return err
	}
	defer storages.Close()

	codec, err := crypto.NewJWTCodec(cfg.App.Algorithm, cfg.App.SecretKey, cfg.App.TokenIssuer)
	if err != nil {
		log.Err(err).Msg("error creating token codec")
		return err
	}
	hasher := crypto.NewBcryptHasher(cfg.App.BcryptCost)

	services := service.NewServices(storages, hasher, codec, cfg.App, log)

	handlers, err := handler.NewHandlers(services, storages, buildInfo, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return err
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return err
	}

	return srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion)
	fmt.Printf("Build date: %s\n", info.BuildDate)
	fmt.Printf("Build commit: %s\n", info.BuildCommit)
}
