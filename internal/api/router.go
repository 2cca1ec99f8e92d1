// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package api serves QR symbols over HTTP.
package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"

	"github.com/unixdj/qrsym/coding"
	"github.com/unixdj/qrsym/internal/store"
)

// Handler holds the state shared by the handlers.
type Handler struct {
	store *store.Store
	log   *log.Logger
	level coding.Level // default error correction level
	mode  string       // default mode
}

// New returns a Handler serving symbols from s.  Requests without a
// level or mode use the given defaults; an empty mode is auto.
func New(s *store.Store, logger *log.Logger, level coding.Level, mode string) *Handler {
	if mode == "" {
		mode = "auto"
	}
	return &Handler{store: s, log: logger, level: level, mode: mode}
}

// NewRouter returns the router for h.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.Use(h.logRequests)
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "OK")
	}).Methods("GET")
	r.HandleFunc("/symbols", h.ListSymbols).Methods("GET")
	r.HandleFunc("/symbols", h.CreateSymbol).Methods("POST")
	r.HandleFunc("/symbols/{id}", h.GetSymbol).Methods("GET")
	r.HandleFunc("/symbols/{id}", h.DeleteSymbol).Methods("DELETE")
	r.HandleFunc("/symbols/{id}/modules/{row:-?[0-9]+}/{col:-?[0-9]+}",
		h.GetModule).Methods("GET")
	return r
}

// statusWriter records the response status.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)
		h.log.Debug("request", "method", r.Method, "path", r.URL.Path,
			"status", sw.status, "duration", time.Since(start))
	})
}
