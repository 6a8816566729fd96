// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/item-keeper/models"
)

// AccountRepository persists accounts in the "users" table.
type AccountRepository interface {
	// CreateAccount inserts account and returns it with the assigned id.
	// The existence check and the insert run in one transaction; a taken
	// name or email yields [ErrAccountAlreadyExists].
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)

	// FindAccountByNameOrEmail returns the account whose name or email
	// equals identifier, or [ErrAccountNotFound]. A name match is preferred
	// over an email match.
	FindAccountByNameOrEmail(ctx context.Context, identifier string) (models.Account, error)
}

// ItemRepository persists items in the "items" table.
type ItemRepository interface {
	CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	// ListItems returns a page ordered by id. An empty page is not an error.
	ListItems(ctx context.Context, req models.ListItemsRequest) ([]models.Item, error)
	// UpdateItem writes only the non-nil fields of update. An empty update
	// returns the stored item unchanged.
	UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error)
	// DeleteItem removes the item and returns its last state.
	DeleteItem(ctx context.Context, id int64) (models.Item, error)
}

// ErrorClassificator decides whether a database error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DBTX is the subset of database/sql used by the repositories.
// Both *sql.DB and *sql.Tx satisfy it.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
