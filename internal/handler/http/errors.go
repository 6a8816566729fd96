// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/item-keeper/internal/app"
)

// Sentinel errors produced while reading a request. Callers can match
// against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "<scheme> <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrUnsupportedAuthScheme is returned when the scheme is not Bearer.
	ErrUnsupportedAuthScheme = errors.New("unsupported authorization scheme")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

var (
	ErrInvalidJSON       = errors.New(app.MsgInvalidJSON)
	ErrInvalidForm       = errors.New(app.MsgInvalidForm)
	ErrInvalidItemID     = errors.New("item id must be a positive integer")
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
