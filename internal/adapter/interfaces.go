// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the item-keeper HTTP API.
//
// [ServerAdapter] hides the REST details: the password-grant form of /token,
// bearer header management and JSON error bodies. Non-2xx responses are
// mapped by mapHTTPError to the sentinel errors in errors.go, so callers can
// use [errors.Is] (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/item-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the item-keeper server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to all subsequent item
	// requests. Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none has been set.
	Token() string

	// Register creates an account and returns its public summary.
	Register(ctx context.Context, request models.RegisterRequest) (models.AccountSummary, error)

	// Login exchanges credentials for a bearer token through the OAuth2
	// password-grant form and stores the token via SetToken.
	Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error)

	CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)

	// ListItems returns one page. An empty page is [ErrNotFound].
	ListItems(ctx context.Context, request models.ListItemsRequest) ([]models.Item, error)

	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) (models.Item, error)

	// Health reports whether the server and its database are ready.
	Health(ctx context.Context) error
}
