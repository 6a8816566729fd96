// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/item-keeper/models"
)

// Field names accepted by [ItemValidator].
const (
	FieldItemName = "name"
	FieldCategory = "category"
	FieldQuantity = "quantity"
	FieldPrice    = "price"
	FieldLimit    = "limit"
	FieldOffset   = "offset"
)

// MaxCategoryLength matches the items.category column, in characters.
const MaxCategoryLength = 255

// Page size bounds for item listing.
const (
	MinListLimit = 1
	MaxListLimit = 1000
)

// ItemValidator checks item payloads and list requests.
type ItemValidator struct{}

func NewItemValidator() Validator {
	return &ItemValidator{}
}

// Validate accepts [models.ItemCreate], [models.ItemUpdate] and
// [models.ListItemsRequest] (or pointers to them).
func (v *ItemValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemCreate:
		return v.validateItemCreate(value, fields...)
	case *models.ItemCreate:
		return v.validateItemCreate(*value, fields...)

	case models.ItemUpdate:
		return v.validateItemUpdate(value, fields...)
	case *models.ItemUpdate:
		return v.validateItemUpdate(*value, fields...)

	case models.ListItemsRequest:
		return v.validateListRequest(value, fields...)
	case *models.ListItemsRequest:
		return v.validateListRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ItemValidator) validateItemCreate(item models.ItemCreate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemName, FieldCategory, FieldQuantity, FieldPrice}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldItemName:
			err = checkItemName(item.Name)
		case FieldCategory:
			err = checkCategory(item.Category)
		case FieldQuantity:
			err = checkQuantity(item.Quantity)
		case FieldPrice:
			err = checkPrice(item.Price)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

// validateItemUpdate checks only the fields present in the update.
func (v *ItemValidator) validateItemUpdate(update models.ItemUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemName, FieldCategory, FieldQuantity, FieldPrice}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldItemName:
			if update.Name != nil {
				err = checkItemName(*update.Name)
			}
		case FieldCategory:
			if update.Category != nil {
				err = checkCategory(*update.Category)
			}
		case FieldQuantity:
			if update.Quantity != nil {
				err = checkQuantity(*update.Quantity)
			}
		case FieldPrice:
			if update.Price != nil {
				err = checkPrice(*update.Price)
			}
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *ItemValidator) validateListRequest(request models.ListItemsRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLimit, FieldOffset}
	}

	for _, f := range fields {
		switch f {
		case FieldLimit:
			if request.Limit < MinListLimit || request.Limit > MaxListLimit {
				return ErrInvalidLimit
			}
		case FieldOffset:
			if request.Offset > math.MaxInt64 {
				return ErrInvalidOffset
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyItemName
	}
	return nil
}

func checkCategory(category string) error {
	if strings.TrimSpace(category) == "" {
		return ErrEmptyCategory
	}
	if utf8.RuneCountInString(category) > MaxCategoryLength {
		return ErrCategoryTooLong
	}
	return nil
}

// checkQuantity keeps quantity within the INTEGER column.
func checkQuantity(quantity int) error {
	if quantity < 0 || quantity > math.MaxInt32 {
		return ErrInvalidQuantity
	}
	return nil
}

func checkPrice(price float64) error {
	if price < 0 || math.IsNaN(price) || math.IsInf(price, 0) {
		return ErrInvalidPrice
	}
	return nil
}
