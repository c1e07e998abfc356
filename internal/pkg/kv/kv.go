// Package kv abstracts a durable key-value store with string values.
//
// Values are the caller's chosen serialization (typically a JSON document).
// Implementations must return ErrKeyNotFound for missing keys and surface
// every other backend failure to the caller.
package kv

import (
	"context"
	"errors"
	"io"
)

// ErrKeyNotFound indicates the key has no value in the store.
var ErrKeyNotFound = errors.New("kv: key not found")

// Store defines durable key-value operations.
type Store interface {
	io.Closer

	// Get returns the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
