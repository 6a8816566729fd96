// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var (
	ErrNilServerAdapter = errors.New("nil server adapter")
	ErrNoCommand        = errors.New("no command given")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMissingItemID    = errors.New("item id argument is required")
	ErrInvalidItemID    = errors.New("item id must be a positive integer")
	ErrEmptyUpdate      = errors.New("update needs at least one field flag")
)
