package usecase

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
)

type SaveSessionInput struct {
	ID               string `validate:"required"`
	FullName         string `validate:"required"`
	Email            string `validate:"required,email"`
	Mobile           string `validate:"required"`
	IsAuthenticated  bool
	RegistrationDate time.Time
}

// SaveSession persists the given user as the active session, replacing any
// previous one.
func (s *Usecase) SaveSession(ctx context.Context, in SaveSessionInput) error {
	ctx, span := s.startSpan(ctx, "SaveSession")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	user := entity.User{
		ID:               in.ID,
		FullName:         in.FullName,
		Email:            in.Email,
		Mobile:           in.Mobile,
		IsAuthenticated:  in.IsAuthenticated,
		RegistrationDate: in.RegistrationDate,
	}

	if err := s.store.SaveSession(ctx, user); err != nil {
		slog.ErrorContext(ctx, "failed to repo save session", "user_id", in.ID, "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
