package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
	"github.com/cemtras/authgate/internal/pkg/kv"
	"github.com/samber/lo"
)

func (s *Store) loadCredentials(ctx context.Context) ([]entity.Credential, error) {
	raw, err := s.kv.Get(ctx, s.accountsKey)
	if errors.Is(err, kv.ErrKeyNotFound) {
		return []entity.Credential{}, nil
	}
	if err != nil {
		return nil, err
	}

	var creds []entity.Credential
	if err := json.Unmarshal([]byte(raw), &creds); err != nil {
		return nil, fmt.Errorf("decode account records: %w", err)
	}

	return creds, nil
}

// CreateAccount appends the credential record to the durable account list and
// registers it in the lookup index under both the email and mobile keys.
// Existing records for the same identifiers are kept; the newest record wins
// on lookup.
func (s *Store) CreateAccount(ctx context.Context, cred entity.Credential) (err error) {
	ctx, span := s.startSpan(ctx, "CreateAccount")
	defer func() { s.endSpan(span, err) }()

	creds, err := s.loadCredentials(ctx)
	if err != nil {
		return err
	}

	creds = append(creds, cred)

	raw, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("encode account records: %w", err)
	}

	if err := s.kv.Set(ctx, s.accountsKey, string(raw)); err != nil {
		return err
	}

	s.mu.Lock()
	s.index[cred.Email] = cred
	s.index[cred.Mobile] = cred
	s.mu.Unlock()

	return nil
}

// FindByIdentifier reloads all persisted credential records into the lookup
// index and resolves the identifier against either email or mobile. Later
// records override earlier ones for the same identifier.
func (s *Store) FindByIdentifier(ctx context.Context, identifier string) (_ *entity.Credential, err error) {
	ctx, span := s.startSpan(ctx, "FindByIdentifier")
	defer func() { s.endSpan(span, err) }()

	creds, err := s.loadCredentials(ctx)
	if err != nil {
		return nil, err
	}

	byEmail := lo.Associate(creds, func(c entity.Credential) (string, entity.Credential) {
		return c.Email, c
	})
	byMobile := lo.Associate(creds, func(c entity.Credential) (string, entity.Credential) {
		return c.Mobile, c
	})

	s.mu.Lock()
	s.index = lo.Assign(s.index, byEmail, byMobile)
	cred, ok := s.index[identifier]
	s.mu.Unlock()

	if !ok {
		return nil, goerror.ErrNotFound
	}

	return &cred, nil
}
