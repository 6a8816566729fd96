// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/item-keeper/internal/adapter"
	"github.com/MKhiriev/item-keeper/internal/client"
	"github.com/MKhiriev/item-keeper/internal/config"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
		fmt.Printf("Build version: %s\nBuild date: %s\nBuild commit: %s\n", info.BuildVersion, info.BuildDate, info.BuildCommit)
		return
	}

	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	// stdout carries command output, so logs go to stderr.
	log := logger.New(os.Stderr, "item-keeper-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		return err
	}

	api, err := adapter.NewHTTPServerAdapter(adapter.Config{Address: cfg.Address, Timeout: cfg.Timeout}, log)
	if err != nil {
		return err
	}
	api.SetToken(cfg.Token)

	app, err := client.NewApp(api, os.Stdout, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return app.Run(ctx, args)
}
