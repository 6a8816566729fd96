// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto holds the credential primitives of the service: one-way
// password hashing and signed, time-bound bearer tokens.
//
// Both are pure: they keep no per-request state and are safe for concurrent use.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

import (
	"time"

	"github.com/MKhiriev/item-keeper/models"
)

// PasswordHasher turns a plaintext password into a salted one-way digest
// and checks a candidate password against a stored digest.
type PasswordHasher interface {
	// Hash returns a salted digest of password. Two calls with the same
	// input return different digests because the salt is embedded.
	Hash(password string) (string, error)

	// Verify reports whether password matches the stored digest.
	// A malformed digest is a mismatch, never an error.
	Verify(password, hashed string) bool
}

// TokenCodec issues and validates signed bearer tokens.
type TokenCodec interface {
	// Issue signs a token for subject that expires after ttl.
	Issue(subject string, ttl time.Duration) (models.Token, error)

	// Validate checks the signature and expiry of tokenString and returns its claims.
	// Errors are one of [ErrTokenMalformed], [ErrTokenBadSignature] or [ErrTokenExpired].
	Validate(tokenString string) (models.Claims, error)
}
