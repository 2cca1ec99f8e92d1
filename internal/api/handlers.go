// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	qr "github.com/unixdj/qrsym"
	"github.com/unixdj/qrsym/coding"
	"github.com/unixdj/qrsym/internal/store"
)

// SymbolRequest is the body of a symbol creation request.  Mode is
// auto, numeric, alphanumeric or byte; Version 0 selects the lowest
// version that fits.
type SymbolRequest struct {
	Text    string `json:"text"`
	Mode    string `json:"mode,omitempty"`
	Level   string `json:"level,omitempty"`
	Version int    `json:"version,omitempty"`
}

// SymbolResponse describes an encoded symbol.  Rows hold '1' for dark
// and '0' for light modules.
type SymbolResponse struct {
	ID      string   `json:"id"`
	Version int      `json:"version"`
	Level   string   `json:"level"`
	Mask    int      `json:"mask"`
	Size    int      `json:"size"`
	Rows    []string `json:"rows"`
}

// ModuleResponse reports the colour of one module.
type ModuleResponse struct {
	Dark bool `json:"dark"`
}

// encode builds the symbol described by sym.  An empty mode is auto.
func encode(sym store.Symbol) (*qr.Code, error) {
	level, err := coding.ParseLevel(sym.Level)
	if err != nil {
		return nil, err
	}
	if sym.Mode == "auto" || sym.Mode == "" {
		if sym.Version != 0 {
			segs, _, err := qr.Split(sym.Text, level)
			if err != nil {
				return nil, err
			}
			return qr.EncodeSegments(level, qr.Version(sym.Version), segs...)
		}
		return qr.EncodeText(sym.Text, level)
	}
	mode, err := coding.ParseMode(sym.Mode)
	if err != nil {
		return nil, err
	}
	return qr.Encode(sym.Text, mode, level, qr.Version(sym.Version))
}

// status returns the HTTP status for an encoding error.
func status(err error) int {
	var (
		se *coding.SegmentError
		ce *coding.CapacityError
		re *coding.RangeError
		me coding.ModeError
		ne coding.ModeNameError
		ke coding.MaskError
	)
	switch {
	case errors.As(err, &se), errors.As(err, &ce), errors.As(err, &re),
		errors.As(err, &me), errors.As(err, &ne), errors.As(err, &ke),
		errors.Is(err, coding.ErrNoVersion), errors.Is(err, coding.ErrLevel),
		errors.Is(err, coding.ErrVersion):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func (h *Handler) fail(w http.ResponseWriter, err error) {
	code := status(err)
	if code == http.StatusInternalServerError {
		h.log.Error("request failed", "err", err)
	}
	http.Error(w, err.Error(), code)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func response(id string, c *qr.Code) SymbolResponse {
	return SymbolResponse{
		ID:      id,
		Version: int(c.Version()),
		Level:   c.Level().String(),
		Mask:    int(c.Mask()),
		Size:    c.Size(),
		Rows:    c.Rows(),
	}
}

// CreateSymbol encodes a symbol, stores the request and returns the
// symbol.
func (h *Handler) CreateSymbol(w http.ResponseWriter, r *http.Request) {
	var req SymbolRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	sym := store.Symbol{
		Text:    req.Text,
		Mode:    req.Mode,
		Level:   req.Level,
		Version: req.Version,
	}
	if sym.Mode == "" {
		sym.Mode = h.mode
	}
	if sym.Level == "" {
		sym.Level = h.level.String()
	}
	c, err := encode(sym)
	if err != nil {
		h.fail(w, err)
		return
	}
	if sym, err = h.store.Add(sym); err != nil {
		h.fail(w, err)
		return
	}
	h.log.Info("symbol created", "id", sym.ID, "version", c.Version(),
		"level", c.Level(), "mask", c.Mask())
	writeJSON(w, http.StatusCreated, response(sym.ID, c))
}

// ListSymbols returns the stored requests.
func (h *Handler) ListSymbols(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

// symbol rebuilds the symbol named in the request path.
func (h *Handler) symbol(r *http.Request) (string, *qr.Code, error) {
	id := mux.Vars(r)["id"]
	sym, err := h.store.Get(id)
	if err != nil {
		return id, nil, err
	}
	c, err := encode(sym)
	return id, c, err
}

// GetSymbol returns a stored symbol.
func (h *Handler) GetSymbol(w http.ResponseWriter, r *http.Request) {
	id, c, err := h.symbol(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response(id, c))
}

// GetModule reports whether a module of a stored symbol is dark.
func (h *Handler) GetModule(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	row, err := strconv.Atoi(vars["row"])
	if err != nil {
		http.Error(w, "bad row", http.StatusBadRequest)
		return
	}
	col, err := strconv.Atoi(vars["col"])
	if err != nil {
		http.Error(w, "bad column", http.StatusBadRequest)
		return
	}
	_, c, err := h.symbol(r)
	if err != nil {
		h.fail(w, err)
		return
	}
	dark, err := c.IsDark(row, col)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ModuleResponse{Dark: dark})
}

// DeleteSymbol removes a stored symbol.
func (h *Handler) DeleteSymbol(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.store.Delete(id); err != nil {
		h.fail(w, err)
		return
	}
	h.log.Info("symbol deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}
