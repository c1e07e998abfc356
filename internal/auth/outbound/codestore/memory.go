// Package codestore holds pending verification codes keyed by identifier.
//
// Entries are short-lived and replaced on re-issuance. Implementations
// return goerror.ErrNotFound for identifiers without a pending code.
package codestore

import (
	"context"
	"sync"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
)

// Memory is an in-process code store. It serves single-instance deployments
// and tests; codes are lost on restart.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]entity.CodeEntry
}

// NewMemory builds an empty in-process code store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]entity.CodeEntry)}
}

// Get returns the pending code entry for the identifier.
func (m *Memory) Get(_ context.Context, identifier string) (*entity.CodeEntry, error) {
	m.mu.RLock()
	entry, ok := m.entries[identifier]
	m.mu.RUnlock()

	if !ok {
		return nil, goerror.ErrNotFound
	}

	return &entry, nil
}

// Put stores the entry for the identifier, replacing any pending code.
func (m *Memory) Put(_ context.Context, identifier string, entry entity.CodeEntry) error {
	m.mu.Lock()
	m.entries[identifier] = entry
	m.mu.Unlock()

	return nil
}

// Delete removes the pending code for the identifier, if any.
func (m *Memory) Delete(_ context.Context, identifier string) error {
	m.mu.Lock()
	delete(m.entries, identifier)
	m.mu.Unlock()

	return nil
}
