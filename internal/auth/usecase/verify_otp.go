package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/cemtras/authgate/internal/pkg/goerror"
)

type VerifyOTPInput struct {
	Email string `validate:"required,email"`
	Code  string `validate:"required"`
}

type VerifyOTPOutput struct {
	Verified bool
}

// VerifyOTP checks the submitted code against the pending entry for the
// email address. A matching code is consumed and cannot be used again; an
// expired entry is removed on sight; a mismatched code leaves the pending
// entry in place so the user can retry.
func (s *Usecase) VerifyOTP(ctx context.Context, in VerifyOTPInput) (*VerifyOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "VerifyOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	entry, err := s.codes.Get(ctx, in.Email)
	if errors.Is(err, goerror.ErrNotFound) {
		slog.WarnContext(ctx, "no pending verification code", "sent_to", in.Email)
		return &VerifyOTPOutput{Verified: false}, nil
	}
	if err != nil {
		slog.ErrorContext(ctx, "failed to repo get verification code", "sent_to", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	if entry.Expired(s.clock.Now()) {
		if err := s.codes.Delete(ctx, in.Email); err != nil {
			slog.ErrorContext(ctx, "failed to repo delete expired verification code", "sent_to", in.Email, "error", err)
			return nil, goerror.NewServer(err)
		}

		slog.WarnContext(ctx, "verification code expired", "sent_to", in.Email)
		return &VerifyOTPOutput{Verified: false}, nil
	}

	if entry.Code != in.Code {
		slog.WarnContext(ctx, "verification code mismatch", "sent_to", in.Email)
		return &VerifyOTPOutput{Verified: false}, nil
	}

	if err := s.codes.Delete(ctx, in.Email); err != nil {
		slog.ErrorContext(ctx, "failed to repo delete used verification code", "sent_to", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	return &VerifyOTPOutput{Verified: true}, nil
}
