// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Item routes sit behind the bearer gate; the
// account, health, version and metrics routes are public.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.StripSlashes)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)

	// promhttp negotiates its own compression
	router.Method(http.MethodGet, "/metrics", h.metrics.handler())

	router.Group(func(api chi.Router) {
		api.Use(withGZip)
		if h.cfg.RequestTimeout > 0 {
			api.Use(middleware.Timeout(h.cfg.RequestTimeout))
		}

		// routes without authorization
		api.Post("/account_register", h.register)
		api.Post("/token", h.token)
		api.Get("/healthz", h.healthz)
		api.Get("/version", h.getServerVersion)

		api.Route("/items", func(items chi.Router) {
			// inline group: the gate runs after routing, so unknown
			// methods still get 405
			items.Group(func(r chi.Router) {
				r.Use(h.auth)

				r.Post("/", h.createItem)
				r.Get("/", h.listItems)
				r.Get("/{id}", h.getItem)
				r.Put("/{id}", h.updateItem)
				r.Delete("/{id}", h.deleteItem)
			})
		})
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
