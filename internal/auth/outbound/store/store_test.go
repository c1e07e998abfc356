package store

import (
	"errors"
	"testing"
	"time"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
	"github.com/cemtras/authgate/internal/pkg/instrument"
	"github.com/cemtras/authgate/internal/pkg/kv"
)

func newCredential(id, name, email, mobile, password string) entity.Credential {
	return entity.Credential{
		User: entity.User{
			ID:               id,
			FullName:         name,
			Email:            email,
			Mobile:           mobile,
			IsAuthenticated:  true,
			RegistrationDate: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		Password: password,
	}
}

func TestStoreAccounts(t *testing.T) {
	t.Run("created account is found by email and mobile", func(t *testing.T) {
		// Arrange
		s := NewStore(kv.NewMemory(), instrument.NewNoop(), "", "")
		cred := newCredential("u1", "Alice Smith", "a@x.com", "111", "secret")
		if err := s.CreateAccount(t.Context(), cred); err != nil {
			t.Fatalf("create account: %v", err)
		}

		// Act
		byEmail, errEmail := s.FindByIdentifier(t.Context(), "a@x.com")
		byMobile, errMobile := s.FindByIdentifier(t.Context(), "111")

		// Assert
		if errEmail != nil || errMobile != nil {
			t.Fatalf("find: %v / %v", errEmail, errMobile)
		}
		if byEmail.ID != "u1" || byMobile.ID != "u1" {
			t.Fatalf("expected same account via both identifiers, got %q and %q", byEmail.ID, byMobile.ID)
		}
	})

	t.Run("unknown identifier returns not found", func(t *testing.T) {
		// Arrange
		s := NewStore(kv.NewMemory(), instrument.NewNoop(), "", "")

		// Act
		_, err := s.FindByIdentifier(t.Context(), "nobody@x.com")

		// Assert
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("accounts registered through another instance are visible", func(t *testing.T) {
		// Arrange
		backend := kv.NewMemory()
		writer := NewStore(backend, instrument.NewNoop(), "", "")
		reader := NewStore(backend, instrument.NewNoop(), "", "")
		if err := writer.CreateAccount(t.Context(), newCredential("u1", "Alice Smith", "a@x.com", "111", "secret")); err != nil {
			t.Fatalf("create account: %v", err)
		}

		// Act
		cred, err := reader.FindByIdentifier(t.Context(), "a@x.com")

		// Assert
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if cred.ID != "u1" {
			t.Fatalf("expected u1, got %q", cred.ID)
		}
	})

	t.Run("newest record wins for a duplicated identifier", func(t *testing.T) {
		// Arrange
		s := NewStore(kv.NewMemory(), instrument.NewNoop(), "", "")
		if err := s.CreateAccount(t.Context(), newCredential("u1", "Alice Smith", "a@x.com", "111", "old")); err != nil {
			t.Fatalf("create account: %v", err)
		}
		if err := s.CreateAccount(t.Context(), newCredential("u2", "Alice Smith", "a@x.com", "222", "new")); err != nil {
			t.Fatalf("create account: %v", err)
		}

		// Act
		cred, err := s.FindByIdentifier(t.Context(), "a@x.com")

		// Assert
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if cred.ID != "u2" || cred.Password != "new" {
			t.Fatalf("expected newest record, got id=%q password=%q", cred.ID, cred.Password)
		}
	})

	t.Run("distinct accounts resolve independently", func(t *testing.T) {
		// Arrange
		s := NewStore(kv.NewMemory(), instrument.NewNoop(), "", "")
		if err := s.CreateAccount(t.Context(), newCredential("u1", "Alice Smith", "a@x.com", "111", "pa")); err != nil {
			t.Fatalf("create account: %v", err)
		}
		if err := s.CreateAccount(t.Context(), newCredential("u2", "Bob Jones", "b@x.com", "222", "pb")); err != nil {
			t.Fatalf("create account: %v", err)
		}

		// Act
		first, errFirst := s.FindByIdentifier(t.Context(), "a@x.com")
		second, errSecond := s.FindByIdentifier(t.Context(), "222")

		// Assert
		if errFirst != nil || errSecond != nil {
			t.Fatalf("find: %v / %v", errFirst, errSecond)
		}
		if first.ID != "u1" || second.ID != "u2" {
			t.Fatalf("expected independent accounts, got %q and %q", first.ID, second.ID)
		}
	})

	t.Run("corrupt account payload surfaces an error", func(t *testing.T) {
		// Arrange
		backend := kv.NewMemory()
		if err := backend.Set(t.Context(), DefaultAccountsKey, "{not json"); err != nil {
			t.Fatalf("seed: %v", err)
		}
		s := NewStore(backend, instrument.NewNoop(), "", "")

		// Act
		_, err := s.FindByIdentifier(t.Context(), "a@x.com")

		// Assert
		if err == nil {
			t.Fatal("expected decode error, got nil")
		}
	})
}

func TestStoreSession(t *testing.T) {
	t.Run("get without session returns not found", func(t *testing.T) {
		// Arrange
		s := NewStore(kv.NewMemory(), instrument.NewNoop(), "", "")

		// Act
		_, err := s.GetSession(t.Context())

		// Assert
		if !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("save then get round-trips the user", func(t *testing.T) {
		// Arrange
		s := NewStore(kv.NewMemory(), instrument.NewNoop(), "", "")
		user := newCredential("u1", "Alice Smith", "a@x.com", "111", "").User

		// Act
		if err := s.SaveSession(t.Context(), user); err != nil {
			t.Fatalf("save session: %v", err)
		}
		got, err := s.GetSession(t.Context())

		// Assert
		if err != nil {
			t.Fatalf("get session: %v", err)
		}
		if *got != user {
			t.Fatalf("expected %+v, got %+v", user, *got)
		}
	})

	t.Run("delete clears the session and is idempotent", func(t *testing.T) {
		// Arrange
		s := NewStore(kv.NewMemory(), instrument.NewNoop(), "", "")
		if err := s.SaveSession(t.Context(), newCredential("u1", "Alice Smith", "a@x.com", "111", "").User); err != nil {
			t.Fatalf("save session: %v", err)
		}

		// Act
		if err := s.DeleteSession(t.Context()); err != nil {
			t.Fatalf("delete session: %v", err)
		}
		if err := s.DeleteSession(t.Context()); err != nil {
			t.Fatalf("second delete session: %v", err)
		}

		// Assert
		if _, err := s.GetSession(t.Context()); !errors.Is(err, goerror.ErrNotFound) {
			t.Fatalf("expected ErrNotFound after delete, got %v", err)
		}
	})

	t.Run("corrupt session payload surfaces an error", func(t *testing.T) {
		// Arrange
		backend := kv.NewMemory()
		if err := backend.Set(t.Context(), DefaultSessionKey, "{not json"); err != nil {
			t.Fatalf("seed: %v", err)
		}
		s := NewStore(backend, instrument.NewNoop(), "", "")

		// Act
		_, err := s.GetSession(t.Context())

		// Assert
		if err == nil {
			t.Fatal("expected decode error, got nil")
		}
	})
}
