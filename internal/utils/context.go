// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the HTTP layer and the
// services: typed context keys, JSON response writers and trace ids.
package utils

import (
	"context"

	"github.com/MKhiriev/item-keeper/models"
)

// contextKey is a private type for context keys, so keys from other
// packages cannot collide with ours.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// AccountCtxKey is the context key under which the auth middleware stores
// the authenticated account.
var AccountCtxKey = contextKey("account")

// WithAccount returns a copy of ctx carrying account.
func WithAccount(ctx context.Context, account models.Account) context.Context {
	return context.WithValue(ctx, AccountCtxKey, account)
}

// GetAccountFromContext retrieves the authenticated account from ctx.
//
// ok is false when no account is stored or the value has an unexpected type.
//
//	account, ok := utils.GetAccountFromContext(r.Context())
//	if !ok {
//	    // request did not pass the auth middleware
//	}
func GetAccountFromContext(ctx context.Context) (models.Account, bool) {
	account, ok := ctx.Value(AccountCtxKey).(models.Account)
	return account, ok
}
