// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/utils"
	"github.com/MKhiriev/item-keeper/models"
)

const (
	contentTypeForm      = "application/x-www-form-urlencoded"
	contentTypeMultipart = "multipart/form-data"

	maxFormMemory = 1 << 20
)

// register creates an account. The JSON body is preferred; a request
// without a body may pass name, email and password as query parameters.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		if !errors.Is(err, io.EOF) {
			log.Info().Err(err).Msg("invalid JSON was passed")
			utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
			return
		}
		query := r.URL.Query()
		request = models.RegisterRequest{
			Name:     query.Get("name"),
			Email:    query.Get("email"),
			Password: query.Get("password"),
		}
	}

	summary, err := h.services.AccountService.Register(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "account registration failed")
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

// token exchanges credentials for a bearer token. It reads the OAuth2
// password-grant form and falls back to a JSON body.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	request, err := readLoginRequest(r)
	if err != nil {
		log.Info().Err(err).Msg("unreadable login request")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := h.services.AccountService.Login(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "login failed")
		return
	}

	utils.WriteJSON(w, models.LoginResponse{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func readLoginRequest(r *http.Request) (models.LoginRequest, error) {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case contentTypeForm, contentTypeMultipart:
		var err error
		if mediaType == contentTypeMultipart {
			err = r.ParseMultipartForm(maxFormMemory)
		} else {
			err = r.ParseForm()
		}
		if err != nil {
			return models.LoginRequest{}, ErrInvalidForm
		}
		return models.LoginRequest{
			Username: r.PostForm.Get("username"),
			Password: r.PostForm.Get("password"),
		}, nil
	}

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		return models.LoginRequest{}, ErrInvalidJSON
	}
	return request, nil
}
