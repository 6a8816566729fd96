// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/validators"
	"github.com/MKhiriev/item-keeper/models"
)

// AccountValidationService validates input before delegating to the wrapped
// AccountService.
type AccountValidationService struct {
	inner     AccountService
	validator validators.Validator
}

func NewAccountValidationService() AccountServiceWrapper {
	return &AccountValidationService{
		validator: validators.NewAccountValidator(),
	}
}

func (v *AccountValidationService) Register(ctx context.Context, request models.RegisterRequest) (models.AccountSummary, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Info().Err(err).Str("name", request.Name).Msg("invalid registration data")
		return models.AccountSummary{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Register(ctx, request)
}

// Login rejects incomplete credentials the same way as wrong ones.
func (v *AccountValidationService) Login(ctx context.Context, request models.LoginRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		logger.FromContext(ctx).Info().Err(err).Msg("incomplete credentials")
		return models.Token{}, ErrInvalidCredentials
	}

	return v.inner.Login(ctx, request)
}

func (v *AccountValidationService) Authenticate(ctx context.Context, tokenString string) (models.Account, error) {
	if tokenString == "" {
		return models.Account{}, fmt.Errorf("%w: empty token", ErrUnauthenticated)
	}

	return v.inner.Authenticate(ctx, tokenString)
}

func (v *AccountValidationService) Wrap(wrapped AccountService) AccountService {
	v.inner = wrapped
	return v
}
