// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of item-keeper: account
// registration, login and token authentication, and item CRUD.
//
// Services depend on store repositories and crypto primitives through
// interfaces and return the sentinel errors from errors.go.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/item-keeper/models"
)

// AccountService registers accounts, exchanges credentials for tokens and
// resolves tokens back to accounts.
type AccountService interface {
	// Register creates an account and returns its public summary.
	// Returns ErrInvalidDataProvided or ErrAccountAlreadyExists.
	Register(ctx context.Context, request models.RegisterRequest) (models.AccountSummary, error)

	// Login verifies the credentials and issues a bearer token.
	// An unknown user and a wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, request models.LoginRequest) (models.Token, error)

	// Authenticate validates tokenString and returns the account named by its
	// subject. Every failure is ErrUnauthenticated wrapping the cause.
	Authenticate(ctx context.Context, tokenString string) (models.Account, error)
}

// ItemService manages inventory items.
type ItemService interface {
	Create(ctx context.Context, item models.ItemCreate) (models.Item, error)
	Get(ctx context.Context, id int64) (models.Item, error)
	// List returns ErrItemsNotFound for an empty page.
	List(ctx context.Context, request models.ListItemsRequest) ([]models.Item, error)
	Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)
	Delete(ctx context.Context, id int64) (models.Item, error)
}

// AccountServiceWrapper decorates an AccountService, e.g. with validation.
type AccountServiceWrapper interface {
	Wrap(AccountService) AccountService
}

// ItemServiceWrapper decorates an ItemService, e.g. with validation.
type ItemServiceWrapper interface {
	Wrap(ItemService) ItemService
}
