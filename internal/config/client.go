// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Client holds the settings of the item-keeper command-line client.
// Every field is read from an ITEM_KEEPER_ prefixed environment variable.
type Client struct {
	// Address is the server address. Env: ITEM_KEEPER_ADDRESS
	Address string `env:"ADDRESS" envDefault:"localhost:8080"`

	// Token is the bearer token used for item commands. Env: ITEM_KEEPER_TOKEN
	Token string `env:"TOKEN"`

	// Timeout bounds every request. Env: ITEM_KEEPER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

// GetClientConfig reads the client configuration from the environment.
func GetClientConfig() (*Client, error) {
	cfg, err := env.ParseAsWithOptions[Client](env.Options{Prefix: "ITEM_KEEPER_"})
	if err != nil {
		return nil, fmt.Errorf("error getting client env configs: %w", err)
	}
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("%w: client timeout must be positive", ErrInvalidClientConfigs)
	}

	return &cfg, nil
}
