// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/item-keeper/internal/config"
	"github.com/MKhiriev/item-keeper/internal/crypto"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/store"
	"github.com/MKhiriev/item-keeper/models"
)

// dummyPassword is hashed once at construction. Logins for unknown accounts
// are verified against its digest so they cost as much as a real check.
const dummyPassword = "item-keeper-timing-equaliser"

// accountService is the concrete implementation of AccountService.
// All state is read-only after construction, so it is safe for concurrent use.
type accountService struct {
	accountRepository store.AccountRepository
	hasher            crypto.PasswordHasher
	codec             crypto.TokenCodec

	// tokenTTL is the lifetime of every issued token.
	tokenTTL time.Duration

	// dummyHash is a digest of dummyPassword made with the configured hasher.
	dummyHash string

	logger *logger.Logger
}

// NewAccountService constructs an AccountService. Input is assumed to be
// validated already; see NewAccountValidationService.
func NewAccountService(
	accountRepository store.AccountRepository,
	hasher crypto.PasswordHasher,
	codec crypto.TokenCodec,
	cfg config.App,
	logger *logger.Logger,
) AccountService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Err(err).Msg("error preparing dummy password hash")
	}

	return &accountService{
		accountRepository: accountRepository,
		hasher:            hasher,
		codec:             codec,
		tokenTTL:          cfg.TokenTTL(),
		dummyHash:         dummyHash,
		logger:            logger,
	}
}

// Register hashes the password and stores the account.
//
// Returns the public summary or:
//   - ErrAccountAlreadyExists if the name or email is taken; nothing is written.
//   - ErrStoreUnavailable if the database cannot be reached.
func (a *accountService) Register(ctx context.Context, request models.RegisterRequest) (models.AccountSummary, error) {
	log := logger.FromContext(ctx)

	hashed, err := a.hasher.Hash(request.Password)
	if err != nil {
		log.Err(err).Str("name", request.Name).Msg("error hashing password")
		return models.AccountSummary{}, fmt.Errorf("error hashing password: %w", err)
	}

	account, err := a.accountRepository.CreateAccount(ctx, models.Account{
		Name:           request.Name,
		Email:          request.Email,
		HashedPassword: hashed,
	})
	if err != nil {
		log.Err(err).Str("name", request.Name).Str("email", request.Email).Msg("account creation ended with error")
		return models.AccountSummary{}, mapStoreError("account creation ended with error", err)
	}

	log.Info().Int64("account_id", account.AccountID).Str("name", account.Name).Msg("account registered")
	return account.Summary(), nil
}

// Login looks the account up by name or email, verifies the password and
// issues a token whose subject is the account name.
func (a *accountService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	account, err := a.accountRepository.FindAccountByNameOrEmail(ctx, request.Username)
	if err != nil {
		if errors.Is(err, store.ErrAccountNotFound) {
			a.hasher.Verify(request.Password, a.dummyHash)
			log.Info().Str("username", request.Username).Msg("login for unknown account")
			return models.Token{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", request.Username).Msg("account search failed")
		return models.Token{}, mapStoreError("account search failed", err)
	}

	if !a.hasher.Verify(request.Password, account.HashedPassword) {
		log.Info().Int64("account_id", account.AccountID).Msg("wrong password")
		return models.Token{}, ErrInvalidCredentials
	}

	token, err := a.codec.Issue(account.Name, a.tokenTTL)
	if err != nil {
		log.Err(err).Int64("account_id", account.AccountID).Msg("error issuing token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Authenticate validates the token and resolves its subject to an account.
// Token errors and unknown subjects are both ErrUnauthenticated; the cause
// stays in the chain for server-side logs.
func (a *accountService) Authenticate(ctx context.Context, tokenString string) (models.Account, error) {
	claims, err := a.codec.Validate(tokenString)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	account, err := a.accountRepository.FindAccountByNameOrEmail(ctx, claims.Subject)
	if err != nil {
		return models.Account{}, fmt.Errorf("%w: subject %q: %w", ErrUnauthenticated, claims.Subject, err)
	}

	return account, nil
}
