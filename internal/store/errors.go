// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods. Callers match them with
// [errors.Is].
var (
	// ErrAccountAlreadyExists is returned when the name or email of a new
	// account is already taken.
	ErrAccountAlreadyExists = errors.New("account already exists")

	// ErrAccountNotFound is returned when no account matches the identifier.
	ErrAccountNotFound = errors.New("account was not found")

	// ErrItemAlreadyExists is returned when an item name is already taken.
	ErrItemAlreadyExists = errors.New("item already exists")

	// ErrItemNotFound is returned when no item has the requested id.
	ErrItemNotFound = errors.New("item was not found")

	// ErrStoreUnavailable marks transient connectivity failures of the
	// database. It is joined with the driver error, so both remain matchable.
	ErrStoreUnavailable = errors.New("store is unavailable")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when a commit fails. The
	// transaction is rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
