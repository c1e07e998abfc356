package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/kv"
)

// GetSession returns the active session user, or goerror.ErrNotFound when no
// session record exists.
func (s *Store) GetSession(ctx context.Context) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetSession")
	defer func() { s.endSpan(span, err) }()

	raw, err := s.kv.Get(ctx, s.sessionKey)
	if err != nil {
		return nil, s.mapError(err)
	}

	var user entity.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return nil, fmt.Errorf("decode session record: %w", err)
	}

	return &user, nil
}

// SaveSession persists the user as the active session, replacing any
// previous session record.
func (s *Store) SaveSession(ctx context.Context, user entity.User) (err error) {
	ctx, span := s.startSpan(ctx, "SaveSession")
	defer func() { s.endSpan(span, err) }()

	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session record: %w", err)
	}

	return s.kv.Set(ctx, s.sessionKey, string(raw))
}

// DeleteSession removes the active session record. Clearing an absent
// session is not an error.
func (s *Store) DeleteSession(ctx context.Context) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteSession")
	defer func() { s.endSpan(span, err) }()

	if err := s.kv.Delete(ctx, s.sessionKey); err != nil && !errors.Is(err, kv.ErrKeyNotFound) {
		return err
	}

	return nil
}
