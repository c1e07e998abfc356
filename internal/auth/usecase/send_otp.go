package usecase

import (
	"context"
	"crypto/rand"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
)

type SendOTPInput struct {
	Email string `validate:"required,email"`
}

type SendOTPOutput struct {
	Success bool
	Message string
	OTPSent bool
	// Code is only populated when demo code exposure is enabled.
	Code   string
	SentTo string
}

// SendOTP issues a fresh six-digit verification code for the email address.
// Any pending code for the same address is replaced and its remaining
// lifetime discarded.
func (s *Usecase) SendOTP(ctx context.Context, in SendOTPInput) (*SendOTPOutput, error) {
	ctx, span := s.startSpan(ctx, "SendOTP")
	defer span.End()

	in.Email = strings.TrimSpace(strings.ToLower(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return nil, goerror.NewInvalidInput(err)
	}

	code, err := generateCode()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate verification code", "error", err)
		return nil, goerror.NewServer(err)
	}

	ttl := s.cfg.GetSecond("modules.auth.otp_ttl_seconds")
	if ttl <= 0 {
		ttl = time.Minute
	}

	entry := entity.CodeEntry{
		Code:      code,
		ExpiresAt: s.clock.Now().Add(ttl),
	}

	if err := s.codes.Put(ctx, in.Email, entry); err != nil {
		slog.ErrorContext(ctx, "failed to repo put verification code", "sent_to", in.Email, "error", err)
		return nil, goerror.NewServer(err)
	}

	email := in.Email
	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.delivery.Send(ctx, email, code); err != nil {
			slog.ErrorContext(ctx, "failed to deliver verification code", "sent_to", email, "error", err)
		}
		return nil
	})

	out := &SendOTPOutput{
		Success: true,
		Message: "Verification code sent to " + in.Email,
		OTPSent: true,
		SentTo:  in.Email,
	}
	if s.cfg.GetBool("modules.auth.expose_otp_code") {
		out.Code = code
	}

	return out, nil
}

// generateCode draws a uniformly random code in [100000, 999999].
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+100000, 10), nil
}
