// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSecret = "secret-key"
	testIssuer = "item-keeper-test"
)

// fakeClock is a settable time source.
type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func newTestCodec(t *testing.T, clock *fakeClock) *JWTCodec {
	t.Helper()
	codec, err := NewJWTCodec("HS256", testSecret, testIssuer)
	require.NoError(t, err)
	return codec.WithClock(clock.Now)
}

func TestNewJWTCodec(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		secret    string
		wantErr   error
	}{
		{name: "HS256", algorithm: "HS256", secret: "k"},
		{name: "HS384", algorithm: "HS384", secret: "k"},
		{name: "HS512", algorithm: "HS512", secret: "k"},
		{name: "unknown algorithm", algorithm: "HS1024", secret: "k", wantErr: ErrUnsupportedAlgorithm},
		{name: "asymmetric algorithm", algorithm: "RS256", secret: "k", wantErr: ErrUnsupportedAlgorithm},
		{name: "none algorithm", algorithm: "none", secret: "k", wantErr: ErrUnsupportedAlgorithm},
		{name: "empty secret", algorithm: "HS256", secret: "", wantErr: ErrEmptySecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := NewJWTCodec(tt.algorithm, tt.secret, testIssuer)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, codec)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.algorithm, codec.Algorithm())
		})
	}
}

func TestJWTCodec_IssueThenValidate(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	for _, subject := range []string{"alice", "a@x.com", "user with spaces"} {
		token, err := codec.Issue(subject, 30*time.Minute)
		require.NoError(t, err)
		require.NotEmpty(t, token.SignedString)
		assert.True(t, clock.t.Add(30*time.Minute).Equal(token.ExpiresAt))

		clock.t = clock.t.Add(29 * time.Minute)
		claims, err := codec.Validate(token.SignedString)
		require.NoError(t, err)
		assert.Equal(t, subject, claims.Subject)
		assert.True(t, token.ExpiresAt.Equal(claims.ExpiresAt))
		clock.t = clock.t.Add(-29 * time.Minute)
	}
}

func TestJWTCodec_IssueProducesURLSafeText(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{t: time.Now()})

	token, err := codec.Issue("alice", time.Hour)
	require.NoError(t, err)
	assert.NotContains(t, token.SignedString, "+")
	assert.NotContains(t, token.SignedString, "/")
	assert.NotContains(t, token.SignedString, "=")
	assert.Equal(t, token.SignedString, token.String())
}

func TestJWTCodec_IssueInvalidParams(t *testing.T) {
	codec := newTestCodec(t, &fakeClock{t: time.Now()})

	_, err := codec.Issue("", time.Hour)
	assert.ErrorIs(t, err, ErrEmptySubject)

	_, err = codec.Issue("alice", 0)
	assert.ErrorIs(t, err, ErrInvalidTTL)

	_, err = codec.Issue("alice", -time.Second)
	assert.ErrorIs(t, err, ErrInvalidTTL)
}

func TestJWTCodec_WrongSecret(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	issuer := newTestCodec(t, clock)

	other, err := NewJWTCodec("HS256", "another-secret", testIssuer)
	require.NoError(t, err)
	other.WithClock(clock.Now)

	token, err := issuer.Issue("alice", time.Hour)
	require.NoError(t, err)

	_, err = other.Validate(token.SignedString)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
}

func TestJWTCodec_Expired(t *testing.T) {
	clock := &fakeClock{t: time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)}
	codec := newTestCodec(t, clock)

	token, err := codec.Issue("alice", time.Minute)
	require.NoError(t, err)

	// exactly at the expiry instant the token is already invalid
	clock.t = token.ExpiresAt
	_, err = codec.Validate(token.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)

	clock.t = token.ExpiresAt.Add(time.Hour)
	_, err = codec.Validate(token.SignedString)
	assert.ErrorIs(t, err, ErrTokenExpired)

	clock.t = token.ExpiresAt.Add(-time.Second)
	_, err = codec.Validate(token.SignedString)
	assert.NoError(t, err)
}

func TestJWTCodec_ForgedAndExpiredReportsSignature(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	codec := newTestCodec(t, clock)

	forger, err := NewJWTCodec("HS256", "forger", testIssuer)
	require.NoError(t, err)
	forger.WithClock(clock.Now)

	token, err := forger.Issue("alice", time.Minute)
	require.NoError(t, err)

	clock.t = clock.t.Add(time.Hour)
	_, err = codec.Validate(token.SignedString)
	assert.ErrorIs(t, err, ErrTokenBadSignature)
	assert.NotErrorIs(t, err, ErrTokenExpired)
}

func TestJWTCodec_RejectsOtherAlgorithms(t *testing.T) {
	now := time.Now()
	codec := newTestCodec(t, &fakeClock{t: now})

	claims := &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}

	hs512, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"same secret, different HMAC", hs512},
		{"alg none", none},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Validate(tt.token)
			assert.ErrorIs(t, err, ErrTokenBadSignature)
		})
	}
}

func TestJWTCodec_Malformed(t *testing.T) {
	now := time.Now()
	codec := newTestCodec(t, &fakeClock{t: now})

	noExp, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:  testIssuer,
		Subject: "alice",
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    testIssuer,
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	wrongIssuer, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Issuer:    "someone-else",
		Subject:   "alice",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not-a-token"},
		{"two segments", "abc.def"},
		{"bad base64", "!!!.???.***"},
		{"missing exp", noExp},
		{"missing subject", noSubject},
		{"wrong issuer", wrongIssuer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := codec.Validate(tt.token)
			assert.ErrorIs(t, err, ErrTokenMalformed)
		})
	}
}
