// Package store persists account credentials and the current session in a
// key-value backend using a flat JSON layout: the full credential list lives
// under one key and the active session under another.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
	"github.com/cemtras/authgate/internal/pkg/instrument"
	"github.com/cemtras/authgate/internal/pkg/kv"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	// DefaultAccountsKey stores the JSON array of credential records.
	DefaultAccountsKey = "cemtras_users"
	// DefaultSessionKey stores the JSON object of the active session user.
	DefaultSessionKey = "cemtras_current_user"
)

// Store is the durable account and session repository. It also keeps an
// in-memory lookup index keyed by email and mobile; the index is merged from
// the key-value backend on every identifier lookup so registrations made by
// other instances are honored.
type Store struct {
	kv          kv.Store
	ins         instrument.Instrumentation
	accountsKey string
	sessionKey  string

	mu    sync.Mutex
	index map[string]entity.Credential
}

// NewStore builds a Store over the given key-value backend. Empty key names
// fall back to the defaults.
func NewStore(kvs kv.Store, ins instrument.Instrumentation, accountsKey, sessionKey string) *Store {
	if accountsKey == "" {
		accountsKey = DefaultAccountsKey
	}
	if sessionKey == "" {
		sessionKey = DefaultSessionKey
	}

	return &Store{
		kv:          kvs,
		ins:         ins,
		accountsKey: accountsKey,
		sessionKey:  sessionKey,
		index:       make(map[string]entity.Credential),
	}
}

func (s *Store) mapError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, kv.ErrKeyNotFound) {
		return goerror.ErrNotFound
	}

	return err
}

func (s *Store) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("auth.outbound.store").Start(ctx, name)
}

func (s *Store) endSpan(span trace.Span, err error) {
	if err != nil && !errors.Is(err, goerror.ErrNotFound) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
