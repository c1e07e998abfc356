package usecase

import (
	"errors"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/cemtras/authgate/internal/pkg/goerror"
)

var sixDigits = regexp.MustCompile(`^[0-9]{6}$`)

func TestSendOTP(t *testing.T) {
	t.Run("issues a six digit code with configured expiry", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")

		// Act
		out, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "User@X.com"})

		// Assert
		if err != nil {
			t.Fatalf("send otp: %v", err)
		}
		if !out.Success || !out.OTPSent {
			t.Fatalf("expected success, got %+v", out)
		}
		if out.SentTo != "user@x.com" {
			t.Fatalf("expected normalized recipient, got %q", out.SentTo)
		}
		if !sixDigits.MatchString(out.Code) {
			t.Fatalf("expected six digit code, got %q", out.Code)
		}
		n, _ := strconv.Atoi(out.Code)
		if n < 100000 || n > 999999 {
			t.Fatalf("code out of range: %d", n)
		}

		entry, err := deps.codes.Get(t.Context(), "user@x.com")
		if err != nil {
			t.Fatalf("expected stored entry: %v", err)
		}
		if entry.Code != out.Code {
			t.Fatalf("stored code %q differs from returned %q", entry.Code, out.Code)
		}
		if !entry.ExpiresAt.Equal(testNow.Add(60 * time.Second)) {
			t.Fatalf("unexpected expiry %v", entry.ExpiresAt)
		}
	})

	t.Run("re-issuing replaces the pending code", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		if _, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "a@x.com"}); err != nil {
			t.Fatalf("first send: %v", err)
		}

		// Act
		out, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "a@x.com"})

		// Assert
		if err != nil {
			t.Fatalf("second send: %v", err)
		}
		entry, err := deps.codes.Get(t.Context(), "a@x.com")
		if err != nil {
			t.Fatalf("expected stored entry: %v", err)
		}
		if entry.Code != out.Code {
			t.Fatalf("expected the latest code to be pending")
		}
	})

	t.Run("code is delivered to the recipient", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")

		// Act
		out, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "a@x.com"})
		if err != nil {
			t.Fatalf("send otp: %v", err)
		}
		if err := deps.goroutine.Wait(); err != nil {
			t.Fatalf("wait: %v", err)
		}

		// Assert
		sent := deps.delivery.all()
		if len(sent) != 1 {
			t.Fatalf("expected one delivery, got %d", len(sent))
		}
		if sent[0].identifier != "a@x.com" || sent[0].code != out.Code {
			t.Fatalf("unexpected delivery %+v", sent[0])
		}
	})

	t.Run("delivery failure does not fail the request", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.delivery.sendErr = errors.New("smtp down")

		// Act
		out, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "a@x.com"})

		// Assert
		if err != nil {
			t.Fatalf("send otp: %v", err)
		}
		if !out.Success {
			t.Fatalf("expected success despite delivery failure")
		}
	})

	t.Run("code is hidden when exposure is disabled", func(t *testing.T) {
		// Arrange
		uc, _ := newTestUsecase(t, `
modules:
  auth:
    otp_ttl_seconds: 60
    expose_otp_code: false
`)

		// Act
		out, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "a@x.com"})

		// Assert
		if err != nil {
			t.Fatalf("send otp: %v", err)
		}
		if out.Code != "" {
			t.Fatalf("expected code to be hidden, got %q", out.Code)
		}
	})

	t.Run("invalid email is rejected", func(t *testing.T) {
		// Arrange
		uc, _ := newTestUsecase(t, "")

		// Act
		_, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "not-an-email"})

		// Assert
		assertGoError(t, err, goerror.CodeInvalidInput)
	})

	t.Run("code store failure is surfaced", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.codes.putErr = errors.New("backend down")

		// Act
		_, err := uc.SendOTP(t.Context(), SendOTPInput{Email: "a@x.com"})

		// Assert
		assertGoError(t, err, goerror.CodeInternal)
	})
}
