// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

// Validation.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
)

// Conflicts. Reported to clients as 400, like validation failures.
var (
	ErrAccountAlreadyExists = errors.New("account already exists")
	ErrItemAlreadyExists    = errors.New("item already exists")
)

// Authentication. Login failures never say which field was wrong.
var (
	ErrInvalidCredentials  = errors.New("incorrect username or password")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrTokenCreationFailed = errors.New("token creation failed")
)

// Lookups.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrItemsNotFound    = errors.New("items not found")
	ErrStoreUnavailable = errors.New("store is unavailable")
)
