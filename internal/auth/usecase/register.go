package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
)

type RegisterInput struct {
	FullName string `validate:"required,min=3,max=100,alphaspace"`
	Email    string `validate:"required,email"`
	Mobile   string `validate:"required,mobile"`
	Password string `validate:"required,password"`
}

type RegisterOutput struct {
	User entity.User
}

// Register creates a new account and returns its public projection. The
// account is immediately authenticated; registering an email or mobile that
// already exists adds a new record, and the newest record wins on login.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) (*RegisterOutput, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = strings.TrimSpace(strings.ToLower(in.Email))
	in.Mobile = strings.TrimSpace(in.Mobile)

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	user := entity.User{
		ID:               s.uuid.Generate(),
		FullName:         in.FullName,
		Email:            in.Email,
		Mobile:           in.Mobile,
		IsAuthenticated:  true,
		RegistrationDate: s.clock.Now(),
	}

	if err := s.store.CreateAccount(ctx, entity.Credential{User: user, Password: in.Password}); err != nil {
		slog.ErrorContext(ctx, "failed to repo create account", "email", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &RegisterOutput{User: user}, nil
}
