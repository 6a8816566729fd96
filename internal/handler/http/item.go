// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/utils"
	"github.com/MKhiriev/item-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var item models.ItemCreate
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		log.Info().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.services.ItemService.Create(r.Context(), item)
	if err != nil {
		writeServiceError(w, r, err, "item creation failed")
		return
	}
	logItemChange(r, "item created", created)

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	request, err := parseListItemsRequest(r)
	if err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("invalid paging parameters")
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	items, err := h.services.ItemService.List(r.Context(), request)
	if err != nil {
		writeServiceError(w, r, err, "item listing failed")
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "item search failed")
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(w, r)
	if !ok {
		return
	}

	var update models.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Info().Err(err).Msg("invalid JSON was passed")
		utils.WriteError(w, ErrInvalidJSON.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.services.ItemService.Update(r.Context(), id, update)
	if err != nil {
		writeServiceError(w, r, err, "item update failed")
		return
	}
	logItemChange(r, "item updated", item)

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := itemIDFromRequest(w, r)
	if !ok {
		return
	}

	item, err := h.services.ItemService.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "item deletion failed")
		return
	}
	logItemChange(r, "item deleted", item)

	utils.WriteJSON(w, item, http.StatusOK)
}

// logItemChange records which account changed which item.
func logItemChange(r *http.Request, msg string, item models.Item) {
	event := logger.FromRequest(r).Info().Int64("item_id", item.ItemID)
	if account, ok := utils.GetAccountFromContext(r.Context()); ok {
		event = event.Int64("account_id", account.AccountID)
	}
	event.Msg(msg)
}

// itemIDFromRequest parses the {id} URL parameter. On failure it writes a
// 400 response and returns false.
func itemIDFromRequest(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		logger.FromRequest(r).Info().Str("id", raw).Msg("invalid item id")
		utils.WriteError(w, ErrInvalidItemID.Error(), http.StatusBadRequest)
		return 0, false
	}

	return id, true
}

// parseListItemsRequest reads limit and offset. An absent limit means
// [models.DefaultListLimit]; range checks are left to the validators.
func parseListItemsRequest(r *http.Request) (models.ListItemsRequest, error) {
	request := models.ListItemsRequest{Limit: models.DefaultListLimit}
	query := r.URL.Query()

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return models.ListItemsRequest{}, fmt.Errorf("%w: limit %q", ErrInvalidQueryParam, raw)
		}
		request.Limit = limit
	}

	if raw := query.Get("offset"); raw != "" {
		// offset is bound to a BIGINT parameter
		offset, err := strconv.ParseUint(raw, 10, 63)
		if err != nil {
			return models.ListItemsRequest{}, fmt.Errorf("%w: offset %q", ErrInvalidQueryParam, raw)
		}
		request.Offset = offset
	}

	return request, nil
}
