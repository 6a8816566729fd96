// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the PostgreSQL-backed implementation of
// [AccountRepository].
//
// Methods log through the request-scoped logger from [logger.FromContext].
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by db.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// CreateAccount runs the existence check and the insert in one transaction.
//
// Error handling:
//   - name or email already present → [ErrAccountAlreadyExists], no insert;
//   - unique_violation (23505) from a concurrent insert → [ErrAccountAlreadyExists];
//   - anything else → wrapped driver error.
func (r *accountRepository) CreateAccount(ctx context.Context, account models.Account) (models.Account, error) {
	log := logger.FromContext(ctx)

	err := r.db.WithTx(ctx, func(ctx context.Context, tx DBTX) error {
		var exists bool
		if err := tx.QueryRowContext(ctx, accountExists, account.Name, account.Email).Scan(&exists); err != nil {
			return r.db.wrapError(ErrExecutingQuery, err)
		}
		if exists {
			return ErrAccountAlreadyExists
		}

		// create account in db
		err := tx.QueryRowContext(ctx, createAccount, account.Name, account.Email, account.HashedPassword).
			Scan(&account.AccountID)
		if err != nil {
			if postgresError(err) == pgerrcode.UniqueViolation {
				return ErrAccountAlreadyExists
			}
			return r.db.wrapError(ErrExecutingQuery, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrAccountAlreadyExists) {
			log.Err(err).Str("func", "*accountRepository.CreateAccount").Msg("error creating account")
		}
		return models.Account{}, err
	}

	return account, nil
}

// FindAccountByNameOrEmail looks the account up by name or email in a
// single query.
func (r *accountRepository) FindAccountByNameOrEmail(ctx context.Context, identifier string) (models.Account, error) {
	log := logger.FromContext(ctx)

	var found models.Account
	err := r.db.QueryRowContext(ctx, findAccountByNameOrEmail, identifier).
		Scan(&found.AccountID, &found.Name, &found.Email, &found.HashedPassword)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Account{}, ErrAccountNotFound
		}
		log.Err(err).Str("func", "*accountRepository.FindAccountByNameOrEmail").Msg("error finding account")
		return models.Account{}, r.db.wrapError(ErrScanningRow, err)
	}

	return found, nil
}
