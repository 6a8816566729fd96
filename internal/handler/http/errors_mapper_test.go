// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/item-keeper/internal/service"
	"github.com/MKhiriev/item-keeper/internal/store"
	"github.com/MKhiriev/item-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "validation exposes cause",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrEmptyName),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid data provided: name is required",
		},
		{
			name:       "validation hides internal causes",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, errors.New("error hashing password: bcrypt: cost out of range")),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid data provided",
		},
		{
			name:       "validation wrapped twice keeps only the rule",
			err:        fmt.Errorf("create item: %w", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrCategoryTooLong)),
			wantStatus: http.StatusBadRequest,
			wantDetail: "invalid data provided: category is longer than 255 characters",
		},
		{
			name:       "account conflict",
			err:        fmt.Errorf("%w: %w", service.ErrAccountAlreadyExists, store.ErrAccountAlreadyExists),
			wantStatus: http.StatusBadRequest,
			wantDetail: "Account with this name or email already exists",
		},
		{
			name:       "invalid credentials",
			err:        service.ErrInvalidCredentials,
			wantStatus: http.StatusUnauthorized,
			wantDetail: "Incorrect email or password",
		},
		{
			name:       "item not found hides store error",
			err:        fmt.Errorf("%w: %w", service.ErrItemNotFound, store.ErrItemNotFound),
			wantStatus: http.StatusNotFound,
			wantDetail: "Item not found",
		},
		{
			name:       "store unavailable",
			err:        fmt.Errorf("%w: %w", service.ErrStoreUnavailable, errors.New("dial tcp: connection refused")),
			wantStatus: http.StatusServiceUnavailable,
			wantDetail: "Service temporarily unavailable",
		},
		{
			name:       "unclassified",
			err:        errors.New("pq: relation items does not exist"),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, resp.status)
			assert.Equal(t, tt.wantDetail, resp.detail)
		})
	}
}

func TestWriteServiceError(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items/1", nil)

	writeServiceError(rr, req, service.ErrItemNotFound, "item search failed")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"detail":"Item not found"}`, rr.Body.String())
	assert.Empty(t, rr.Header().Get("WWW-Authenticate"))
}
