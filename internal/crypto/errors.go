// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

// Token validation errors. Callers match them with [errors.Is].
var (
	// ErrTokenMalformed means the token cannot be parsed or lacks required claims.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenBadSignature means the signature does not verify under the
	// configured secret and algorithm.
	ErrTokenBadSignature = errors.New("token signature is invalid")

	// ErrTokenExpired means the current time is at or past the token's expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// Construction errors.
var (
	ErrUnsupportedAlgorithm = errors.New("unsupported token signing algorithm")
	ErrEmptySecret          = errors.New("token secret is empty")
	ErrEmptySubject         = errors.New("token subject is empty")
	ErrInvalidTTL           = errors.New("token ttl must be positive")
)
