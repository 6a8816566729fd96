// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{"defaults are valid", func(*StructuredConfig) {}, nil},
		{"empty secret", func(c *StructuredConfig) { c.App.SecretKey = "" }, ErrInvalidAppConfigs},
		{"unsupported algorithm", func(c *StructuredConfig) { c.App.Algorithm = "RS256" }, ErrInvalidAppConfigs},
		{"none algorithm", func(c *StructuredConfig) { c.App.Algorithm = "none" }, ErrInvalidAppConfigs},
		{"zero token lifetime", func(c *StructuredConfig) { c.App.AccessTokenExpireMinutes = 0 }, ErrInvalidAppConfigs},
		{"empty dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrInvalidStorageConfigs},
		{"empty address", func(c *StructuredConfig) { c.Server.HTTPAddress = "" }, ErrInvalidServerConfigs},
		{"negative timeout", func(c *StructuredConfig) { c.Server.RequestTimeout = -time.Second }, ErrInvalidServerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
