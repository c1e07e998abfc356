package usecase

import (
	"errors"
	"testing"

	"github.com/cemtras/authgate/internal/pkg/goerror"
)

func validRegisterInput() RegisterInput {
	return RegisterInput{
		FullName: "Alice Smith",
		Email:    "Alice@X.com",
		Mobile:   "+6281234567890",
		Password: "supersecret",
	}
}

func TestRegister(t *testing.T) {
	t.Run("creates an authenticated account", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")

		// Act
		out, err := uc.Register(t.Context(), validRegisterInput())

		// Assert
		if err != nil {
			t.Fatalf("register: %v", err)
		}
		if out.User.ID != "user-1" {
			t.Fatalf("expected generated id, got %q", out.User.ID)
		}
		if out.User.Email != "alice@x.com" {
			t.Fatalf("expected normalized email, got %q", out.User.Email)
		}
		if !out.User.IsAuthenticated {
			t.Fatal("expected account to be authenticated on registration")
		}
		if !out.User.RegistrationDate.Equal(testNow) {
			t.Fatalf("unexpected registration date %v", out.User.RegistrationDate)
		}

		if len(deps.store.created) != 1 {
			t.Fatalf("expected one persisted record, got %d", len(deps.store.created))
		}
		if deps.store.created[0].Password != "supersecret" {
			t.Fatalf("expected password stored with credential record")
		}
	})

	t.Run("duplicate registrations are allowed", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		if _, err := uc.Register(t.Context(), validRegisterInput()); err != nil {
			t.Fatalf("first register: %v", err)
		}

		// Act
		_, err := uc.Register(t.Context(), validRegisterInput())

		// Assert
		if err != nil {
			t.Fatalf("second register: %v", err)
		}
		if len(deps.store.created) != 2 {
			t.Fatalf("expected two persisted records, got %d", len(deps.store.created))
		}
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		tests := map[string]func(*RegisterInput){
			"short full name":  func(in *RegisterInput) { in.FullName = "Al" },
			"bad email":        func(in *RegisterInput) { in.Email = "not-an-email" },
			"bad mobile":       func(in *RegisterInput) { in.Mobile = "abc" },
			"short password":   func(in *RegisterInput) { in.Password = "short" },
			"missing password": func(in *RegisterInput) { in.Password = "" },
		}

		for name, mutate := range tests {
			t.Run(name, func(t *testing.T) {
				// Arrange
				uc, _ := newTestUsecase(t, "")
				in := validRegisterInput()
				mutate(&in)

				// Act
				_, err := uc.Register(t.Context(), in)

				// Assert
				assertGoError(t, err, goerror.CodeInvalidInput)
			})
		}
	})

	t.Run("store failure is surfaced", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.store.createErr = errors.New("backend down")

		// Act
		_, err := uc.Register(t.Context(), validRegisterInput())

		// Assert
		assertGoError(t, err, goerror.CodeInternal)
	})
}
