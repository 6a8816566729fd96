// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/item-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// JWTCodec implements [TokenCodec] with HMAC-signed JWTs.
//
// The signing method, secret and issuer are fixed at construction. Tokens
// whose "alg" header names any other method are rejected, which rules out
// algorithm confusion ("none", RS256 with the secret as a public key, ...).
type JWTCodec struct {
	method *jwt.SigningMethodHMAC
	secret []byte
	issuer string

	now func() time.Time
}

var _ TokenCodec = (*JWTCodec)(nil)

// NewJWTCodec builds a codec for the named HMAC algorithm (HS256, HS384 or HS512).
//
// Returns [ErrUnsupportedAlgorithm] for any other name and [ErrEmptySecret]
// when secret is empty.
func NewJWTCodec(algorithm, secret, issuer string) (*JWTCodec, error) {
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	if secret == "" {
		return nil, ErrEmptySecret
	}

	return &JWTCodec{
		method: method,
		secret: []byte(secret),
		issuer: issuer,
		now:    time.Now,
	}, nil
}

// WithClock replaces the codec's time source. Used by tests.
func (c *JWTCodec) WithClock(now func() time.Time) *JWTCodec {
	c.now = now
	return c
}

// Algorithm returns the name of the configured signing method.
func (c *JWTCodec) Algorithm() string {
	return c.method.Alg()
}

// Issue creates a token for subject with the standard claims:
//   - Subject   (sub): the account name
//   - Issuer    (iss): the configured issuer, when set
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus ttl
func (c *JWTCodec) Issue(subject string, ttl time.Duration) (models.Token, error) {
	if subject == "" {
		return models.Token{}, ErrEmptySubject
	}
	if ttl <= 0 {
		return models.Token{}, ErrInvalidTTL
	}

	now := c.now()
	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	token := jwt.NewWithClaims(c.method, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{
		Token:        token,
		SignedString: signed,
		ExpiresAt:    claims.ExpiresAt.Time,
	}, nil
}

// Validate parses tokenString, verifies its signature, then its claims.
//
// The signature is checked first, so a forged token reports
// [ErrTokenBadSignature] even when it is also expired.
func (c *JWTCodec) Validate(tokenString string) (models.Claims, error) {
	claims := &jwt.RegisteredClaims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.issuer))
	}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return models.Claims{}, classifyJWTError(err)
	}

	if claims.Subject == "" {
		return models.Claims{}, fmt.Errorf("%w: empty subject", ErrTokenMalformed)
	}

	return models.Claims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// classifyJWTError folds the jwt library errors into the three codec errors.
// Claim errors other than expiry (wrong issuer, missing exp) count as malformed.
func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid),
		errors.Is(err, jwt.ErrTokenUnverifiable):
		return fmt.Errorf("%w: %w", ErrTokenBadSignature, err)
	case errors.Is(err, jwt.ErrTokenExpired):
		return fmt.Errorf("%w: %w", ErrTokenExpired, err)
	default:
		return fmt.Errorf("%w: %w", ErrTokenMalformed, err)
	}
}
