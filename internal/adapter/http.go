// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/models"
	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Config holds the client settings.
type Config struct {
	// Address is the server address, with or without a scheme
	// ("localhost:8080" means "http://localhost:8080").
	Address string

	// Timeout bounds every request. Zero means 15s.
	Timeout time.Duration

	// Transport replaces the default HTTP transport when set.
	Transport http.RoundTripper
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It returns an error if cfg.Address is empty or not a valid URL.
func NewHTTPServerAdapter(cfg Config, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")
	if cfg.Transport != nil {
		client.SetTransport(cfg.Transport)
	}

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, request models.RegisterRequest) (models.AccountSummary, error) {
	var summary models.AccountSummary
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(request).
		SetResult(&summary).
		Post("/account_register")
	if err != nil {
		return models.AccountSummary{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountSummary{}, err
	}

	return summary, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	var login models.LoginResponse
	resp, err := h.client.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"grant_type": "password",
			"username":   request.Username,
			"password":   request.Password,
		}).
		SetResult(&login).
		Post("/token")
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(login.AccessToken)
	h.logger.Debug().Str("username", request.Username).Msg("logged in")
	return login, nil
}

func (h *httpServerAdapter) CreateItem(ctx context.Context, item models.ItemCreate) (models.Item, error) {
	var created models.Item
	resp, err := h.authedRequest(ctx).
		SetBody(item).
		SetResult(&created).
		Post("/items")
	if err != nil {
		return models.Item{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return created, nil
}

func (h *httpServerAdapter) GetItem(ctx context.Context, id int64) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodGet, id, nil)
}

func (h *httpServerAdapter) ListItems(ctx context.Context, request models.ListItemsRequest) ([]models.Item, error) {
	req := h.authedRequest(ctx).
		SetQueryParam("offset", strconv.FormatUint(request.Offset, 10))
	if request.Limit > 0 {
		req.SetQueryParam("limit", strconv.FormatUint(request.Limit, 10))
	}

	var items []models.Item
	resp, err := req.SetResult(&items).Get("/items")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return items, nil
}

func (h *httpServerAdapter) UpdateItem(ctx context.Context, id int64, update models.ItemUpdate) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodPut, id, update)
}

func (h *httpServerAdapter) DeleteItem(ctx context.Context, id int64) (models.Item, error) {
	return h.itemRequest(ctx, http.MethodDelete, id, nil)
}

func (h *httpServerAdapter) Health(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/healthz")
	if err != nil {
		return fmt.Errorf("health request: %w", err)
	}
	return mapHTTPError(resp)
}

// itemRequest sends method to /items/{id} and decodes the returned item.
func (h *httpServerAdapter) itemRequest(ctx context.Context, method string, id int64, body any) (models.Item, error) {
	var item models.Item
	req := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&item)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, "/items/{id}")
	if err != nil {
		return models.Item{}, fmt.Errorf("%s item %d request: %w", strings.ToLower(method), id, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Item{}, err
	}

	return item, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
