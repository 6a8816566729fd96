// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/item-keeper/internal/app"
	"github.com/MKhiriev/item-keeper/internal/logger"
	"github.com/MKhiriev/item-keeper/internal/service"
	"github.com/MKhiriev/item-keeper/internal/utils"
	"github.com/MKhiriev/item-keeper/internal/validators"
)

// errorResponse is the status and public detail of a service error.
// An empty detail means the detail names the broken validation rule.
type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:  {http.StatusBadRequest, ""},
	service.ErrAccountAlreadyExists: {http.StatusBadRequest, app.MsgAccountAlreadyExists},
	service.ErrItemAlreadyExists:    {http.StatusBadRequest, app.MsgItemAlreadyExists},

	service.ErrInvalidCredentials: {http.StatusUnauthorized, app.MsgInvalidCredentials},
	service.ErrUnauthenticated:    {http.StatusUnauthorized, app.MsgUnauthenticated},

	service.ErrItemNotFound:  {http.StatusNotFound, app.MsgItemNotFound},
	service.ErrItemsNotFound: {http.StatusNotFound, app.MsgItemsNotFound},

	service.ErrStoreUnavailable: {http.StatusServiceUnavailable, app.MsgServiceUnavailable},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			if resp.detail == "" {
				resp.detail = validationDetail(err)
			}
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, app.MsgInternalServerError}
}

// validationDetail names the broken validation rule without the rest of
// the error chain.
func validationDetail(err error) string {
	if rule, ok := validators.BrokenRule(err); ok {
		return service.ErrInvalidDataProvided.Error() + ": " + rule.Error()
	}
	return service.ErrInvalidDataProvided.Error()
}

// writeServiceError logs err with msg and writes the mapped status and detail.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", resp.status).Msg(msg)
	} else {
		log.Info().Err(err).Int("status", resp.status).Msg(msg)
	}

	if resp.status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteError(w, resp.detail, resp.status)
}
