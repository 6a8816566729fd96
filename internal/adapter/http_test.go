// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/item-keeper/internal/app"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter returns an adapter pointed at a test server running handler.
func newTestAdapter(t *testing.T, handler http.HandlerFunc) *httpServerAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(Config{Address: srv.URL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: "https://items.example.com/", want: "https://items.example.com"},
		{raw: "  http://127.0.0.1:9000  ", want: "http://127.0.0.1:9000"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_EmptyAddress(t *testing.T) {
	a, err := NewHTTPServerAdapter(Config{}, logger.Nop())

	require.ErrorIs(t, err, ErrEmptyAddress)
	assert.Nil(t, a)
}

func TestRegister(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/account_register", r.URL.Path)

			var req models.RegisterRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "alice", req.Name)

			writeJSON(t, w, http.StatusOK, models.AccountSummary{Name: req.Name, Email: req.Email})
		})

		got, err := a.Register(context.Background(), models.RegisterRequest{Name: "alice", Email: "a@example.com", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, models.AccountSummary{Name: "alice", Email: "a@example.com"}, got)
	})

	t.Run("duplicate", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusBadRequest, models.ErrorResponse{Detail: app.MsgAccountAlreadyExists})
		})

		_, err := a.Register(context.Background(), models.RegisterRequest{Name: "alice"})

		require.ErrorIs(t, err, ErrBadRequest)
		assert.Contains(t, err.Error(), app.MsgAccountAlreadyExists)
	})
}

func TestLogin(t *testing.T) {
	t.Run("stores token", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/token", r.URL.Path)
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "password", r.PostForm.Get("grant_type"))
			assert.Equal(t, "alice", r.PostForm.Get("username"))
			assert.Equal(t, "pw", r.PostForm.Get("password"))

			writeJSON(t, w, http.StatusOK, models.LoginResponse{AccessToken: "a.b.c", TokenType: models.TokenTypeBearer})
		})

		got, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "pw"})

		require.NoError(t, err)
		assert.Equal(t, "a.b.c", got.AccessToken)
		assert.Equal(t, "a.b.c", a.Token())
	})

	t.Run("invalid credentials keep old token", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			writeJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{Detail: app.MsgInvalidCredentials})
		})
		a.SetToken("old")

		_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "nope"})

		require.ErrorIs(t, err, ErrUnauthorized)
		assert.Equal(t, "old", a.Token())
	})
}

func TestItemRequestsCarryBearerToken(t *testing.T) {
	widget := models.Item{ItemID: 4, Name: "Widget", Category: "tools"}

	a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/items":
			writeJSON(t, w, http.StatusCreated, widget)
		case r.Method == http.MethodGet && r.URL.Path == "/items":
			assert.Equal(t, "5", r.URL.Query().Get("limit"))
			assert.Equal(t, "10", r.URL.Query().Get("offset"))
			writeJSON(t, w, http.StatusOK, []models.Item{widget})
		case r.URL.Path == "/items/4":
			writeJSON(t, w, http.StatusOK, widget)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	})
	a.SetToken(" tok ")
	ctx := context.Background()

	created, err := a.CreateItem(ctx, models.ItemCreate{Name: "Widget", Category: "tools"})
	require.NoError(t, err)
	assert.Equal(t, widget, created)

	items, err := a.ListItems(ctx, models.ListItemsRequest{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, []models.Item{widget}, items)

	got, err := a.GetItem(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, widget, got)

	qty := 1
	got, err = a.UpdateItem(ctx, 4, models.ItemUpdate{Quantity: &qty})
	require.NoError(t, err)
	assert.Equal(t, widget, got)

	got, err = a.DeleteItem(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, widget, got)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		body   string
		want   error
		detail string
	}{
		{http.StatusBadRequest, `{"detail":"bad name"}`, ErrBadRequest, "bad name"},
		{http.StatusUnauthorized, `{"detail":"unauthenticated"}`, ErrUnauthorized, "unauthenticated"},
		{http.StatusNotFound, `{"detail":"Item not found"}`, ErrNotFound, "Item not found"},
		{http.StatusServiceUnavailable, "", ErrServiceUnavailable, "Service Unavailable"},
		{http.StatusInternalServerError, "boom", ErrInternalServerError, "boom"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := a.GetItem(context.Background(), 1)

			require.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}

	t.Run("unmapped status", func(t *testing.T) {
		a := newTestAdapter(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		err := a.Health(context.Background())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "http 418")
	})
}
