// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clientEnvKeys = []string{"ITEM_KEEPER_ADDRESS", "ITEM_KEEPER_TOKEN", "ITEM_KEEPER_TIMEOUT"}

func unsetClientEnv(t *testing.T) {
	t.Helper()
	for _, k := range clientEnvKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	unsetClientEnv(t)

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Address)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
}

func TestGetClientConfig_FromEnv(t *testing.T) {
	unsetClientEnv(t)
	t.Setenv("ITEM_KEEPER_ADDRESS", "https://items.example.com")
	t.Setenv("ITEM_KEEPER_TOKEN", "a.b.c")
	t.Setenv("ITEM_KEEPER_TIMEOUT", "3s")

	cfg, err := GetClientConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://items.example.com", cfg.Address)
	assert.Equal(t, "a.b.c", cfg.Token)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
}

func TestGetClientConfig_InvalidTimeout(t *testing.T) {
	unsetClientEnv(t)
	t.Setenv("ITEM_KEEPER_TIMEOUT", "-1s")

	_, err := GetClientConfig()

	require.ErrorIs(t, err, ErrInvalidClientConfigs)
}

func TestGetClientConfig_MalformedTimeout(t *testing.T) {
	unsetClientEnv(t)
	t.Setenv("ITEM_KEEPER_TIMEOUT", "soon")

	_, err := GetClientConfig()

	require.Error(t, err)
}
