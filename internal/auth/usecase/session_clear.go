package usecase

import (
	"context"
	"log/slog"

	"github.com/cemtras/authgate/internal/pkg/goerror"
)

// ClearSession removes the active session record. Clearing when no session
// exists succeeds.
func (s *Usecase) ClearSession(ctx context.Context) error {
	ctx, span := s.startSpan(ctx, "ClearSession")
	defer span.End()

	if err := s.store.DeleteSession(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete session", "error", err)
		return goerror.NewServer(err)
	}

	return nil
}
