package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
)

type LoginInput struct {
	Identifier string `validate:"required"`
	Password   string `validate:"required"`
}

type LoginOutput struct {
	User entity.User
}

// Login resolves the identifier against either email or mobile and compares
// the stored password with the supplied one. The caller cannot distinguish a
// missing account from a wrong password; both fail the same way.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	// Emails are stored lowercased; lowering is a no-op for mobile numbers.
	in.Identifier = strings.ToLower(strings.TrimSpace(in.Identifier))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	cred, err := s.store.FindByIdentifier(ctx, in.Identifier)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "account not found", "identifier", in.Identifier)
		return nil, goerror.NewBusiness("invalid identifier or password", goerror.CodeUnauthorized)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo find account by identifier", "identifier", in.Identifier, "error", err)
		return nil, goerror.NewServer(err)
	}

	if cred.Password != in.Password {
		slog.WarnContext(ctx, "password account not match", "user_id", cred.ID)
		return nil, goerror.NewBusiness("invalid identifier or password", goerror.CodeUnauthorized)
	}

	user := cred.User
	user.IsAuthenticated = true

	return &LoginOutput{User: user}, nil
}
