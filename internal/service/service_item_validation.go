// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/item-keeper/internal/validators"
	"github.com/MKhiriev/item-keeper/models"
)

// ItemValidationService validates input before delegating to the wrapped
// ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewItemValidator(),
	}
}

func (v *ItemValidationService) Create(ctx context.Context, item models.ItemCreate) (models.Item, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Create(ctx, item)
}

func (v *ItemValidationService) Get(ctx context.Context, id int64) (models.Item, error) {
	return v.inner.Get(ctx, id)
}

func (v *ItemValidationService) List(ctx context.Context, request models.ListItemsRequest) ([]models.Item, error) {
	if err := v.validator.Validate(ctx, request); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.List(ctx, request)
}

func (v *ItemValidationService) Update(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Item{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return v.inner.Update(ctx, id, update)
}

func (v *ItemValidationService) Delete(ctx context.Context, id int64) (models.Item, error) {
	return v.inner.Delete(ctx, id)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}
