// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasher() *BcryptHasher {
	return NewBcryptHasher(bcrypt.MinCost)
}

func TestBcryptHasher_HashThenVerify(t *testing.T) {
	h := newTestHasher()

	for _, password := range []string{"pw123", "correct horse battery staple", "пароль", " ", strings.Repeat("x", MaxPasswordLength)} {
		hashed, err := h.Hash(password)
		require.NoError(t, err)
		assert.NotEqual(t, password, hashed)
		assert.True(t, h.Verify(password, hashed), "password %q must verify against its own hash", password)
	}
}

func TestBcryptHasher_SaltedOutput(t *testing.T) {
	h := newTestHasher()

	first, err := h.Hash("pw123")
	require.NoError(t, err)
	second, err := h.Hash("pw123")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same input must produce different digests")
	assert.True(t, h.Verify("pw123", first))
	assert.True(t, h.Verify("pw123", second))
}

func TestBcryptHasher_WrongPassword(t *testing.T) {
	h := newTestHasher()

	hashed, err := h.Hash("pw123")
	require.NoError(t, err)

	assert.False(t, h.Verify("pw1234", hashed))
	assert.False(t, h.Verify("PW123", hashed))
	assert.False(t, h.Verify("", hashed))
}

func TestBcryptHasher_MalformedStoredValue(t *testing.T) {
	h := newTestHasher()

	tests := []struct {
		name   string
		stored string
	}{
		{"empty", ""},
		{"plaintext", "pw123"},
		{"truncated bcrypt", "$2a$10$abc"},
		{"garbage prefix", "$argon2id$v=19$m=65536,t=1,p=4$c2FsdA$aGFzaA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, h.Verify("pw123", tt.stored))
			})
		})
	}
}

func TestBcryptHasher_TooLongPassword(t *testing.T) {
	h := newTestHasher()

	_, err := h.Hash(strings.Repeat("x", MaxPasswordLength+1))
	require.Error(t, err)
	assert.ErrorIs(t, err, bcrypt.ErrPasswordTooLong)
}

func TestBcryptHasher_VerifyRejectsLongerPassword(t *testing.T) {
	h := newTestHasher()
	password := strings.Repeat("p", MaxPasswordLength)

	hashed, err := h.Hash(password)
	require.NoError(t, err)

	assert.True(t, h.Verify(password, hashed))
	assert.False(t, h.Verify(password+"EXTRA", hashed))
	assert.False(t, h.Verify(password+"p", hashed))
}

func TestNewBcryptHasher_CostFallback(t *testing.T) {
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(bcrypt.MaxCost+1).cost)
	assert.Equal(t, 12, NewBcryptHasher(12).cost)
}

func TestBcryptHasher_CostIsEmbedded(t *testing.T) {
	hashed, err := NewBcryptHasher(bcrypt.MinCost + 1).Hash("pw123")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)

	// a hasher configured with another cost still verifies the digest
	assert.True(t, newTestHasher().Verify("pw123", hashed))
}
