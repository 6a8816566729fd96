// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName       = errors.New("name is required")
	ErrEmptyEmail      = errors.New("email is required")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrEmptyPassword   = errors.New("password is required")
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
	ErrEmptyUsername   = errors.New("username is required")
	ErrInvalidQuantity = errors.New("quantity must be between 0 and 2147483647")
	ErrInvalidPrice    = errors.New("price must be a non-negative number")
	ErrInvalidLimit    = errors.New("limit must be between 1 and 1000")
	ErrInvalidOffset   = errors.New("offset is out of range")
	ErrEmptyItemName   = errors.New("item name is required")
	ErrEmptyCategory   = errors.New("category is required")
	ErrCategoryTooLong = errors.New("category is longer than 255 characters")
)

// rules are the errors that describe a broken input rule. Their text is safe
// to show to clients.
var rules = []error{
	ErrEmptyName, ErrEmptyEmail, ErrInvalidEmail, ErrEmptyPassword, ErrPasswordTooLong, ErrEmptyUsername,
	ErrInvalidQuantity, ErrInvalidPrice, ErrInvalidLimit, ErrInvalidOffset, ErrEmptyItemName, ErrEmptyCategory,
	ErrCategoryTooLong,
}

// BrokenRule returns the first validation rule found in err's chain.
func BrokenRule(err error) (error, bool) {
	for _, rule := range rules {
		if errors.Is(err, rule) {
			return rule, true
		}
	}
	return nil, false
}
