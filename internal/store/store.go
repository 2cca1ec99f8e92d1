// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store keeps symbol requests by ID, optionally persisted to
// a JSON file.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("store: symbol not found")

// Symbol is a stored encoding request.  The symbol itself is rebuilt
// from it on demand.
type Symbol struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Mode      string    `json:"mode"`
	Level     string    `json:"level"`
	Version   int       `json:"version"`
	CreatedAt time.Time `json:"created_at"`
}

// Store is a set of symbols safe for concurrent use.
type Store struct {
	filePath string // empty for memory only
	mu       sync.RWMutex
	m        map[string]Symbol
}

// New returns a Store persisted to the file at path, loading any
// symbols it holds.  An empty path keeps the symbols in memory.
func New(path string) (*Store, error) {
	s := &Store{filePath: path, m: make(map[string]Symbol)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Add stores sym under a new ID and returns it with ID and CreatedAt
// set.
func (s *Store) Add(sym Symbol) (Symbol, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sym.ID = uuid.NewString()
	sym.CreatedAt = time.Now().UTC()
	s.m[sym.ID] = sym
	if err := s.save(); err != nil {
		delete(s.m, sym.ID)
		return Symbol{}, err
	}
	return sym, nil
}

// Get returns the symbol with the given ID.
func (s *Store) Get(id string) (Symbol, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sym, ok := s.m[id]
	if !ok {
		return Symbol{}, ErrNotFound
	}
	return sym, nil
}

// Delete removes the symbol with the given ID.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sym, ok := s.m[id]
	if !ok {
		return ErrNotFound
	}
	delete(s.m, id)
	if err := s.save(); err != nil {
		s.m[id] = sym
		return err
	}
	return nil
}

// List returns all symbols, oldest first.
func (s *Store) List() []Symbol {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sorted()
}

func (s *Store) sorted() []Symbol {
	list := make([]Symbol, 0, len(s.m))
	for _, sym := range s.m {
		list = append(list, sym)
	}
	slices.SortFunc(list, func(a, b Symbol) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return list
}

// load reads the symbols from the file.  A missing file is empty.
func (s *Store) load() error {
	if s.filePath == "" {
		return nil
	}
	data, err := os.ReadFile(s.filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	} else if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	var list []Symbol
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("store: %s: %w", s.filePath, err)
	}
	for _, sym := range list {
		s.m[sym.ID] = sym
	}
	return nil
}

// save writes the symbols to a temporary file and renames it over the
// store file.  s.mu must be held.
func (s *Store) save() error {
	if s.filePath == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.sorted(), "", "  ")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	f, err := os.CreateTemp(filepath.Dir(s.filePath), ".qrd-*.json")
	if err != nil {
		return fmt.Errorf("store: %w", err)
	}
	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err == nil {
		err = os.Rename(f.Name(), s.filePath)
	}
	if err != nil {
		os.Remove(f.Name())
		return fmt.Errorf("store: %w", err)
	}
	return nil
}
