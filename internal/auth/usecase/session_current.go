package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
)

type SessionOutput struct {
	User entity.User
}

// CurrentSession returns the persisted session user, if any.
func (s *Usecase) CurrentSession(ctx context.Context) (*SessionOutput, error) {
	ctx, span := s.startSpan(ctx, "CurrentSession")
	defer span.End()

	user, err := s.store.GetSession(ctx)
	if errors.Is(err, goerror.ErrNotFound) {
		return nil, goerror.NewBusiness("no active session", goerror.CodeNotFound)
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get session", "error", err)
		return nil, goerror.NewServer(err)
	}

	return &SessionOutput{User: *user}, nil
}
