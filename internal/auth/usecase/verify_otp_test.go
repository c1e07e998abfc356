package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/cemtras/authgate/internal/auth/entity"
	"github.com/cemtras/authgate/internal/pkg/goerror"
)

func TestVerifyOTP(t *testing.T) {
	pending := entity.CodeEntry{Code: "123456", ExpiresAt: testNow.Add(time.Minute)}

	t.Run("no pending code fails verification", func(t *testing.T) {
		// Arrange
		uc, _ := newTestUsecase(t, "")

		// Act
		out, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "123456"})

		// Assert
		if err != nil {
			t.Fatalf("verify otp: %v", err)
		}
		if out.Verified {
			t.Fatal("expected verification to fail")
		}
	})

	t.Run("matching code verifies exactly once", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.codes.entries["a@x.com"] = pending

		// Act
		first, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "123456"})
		if err != nil {
			t.Fatalf("first verify: %v", err)
		}
		second, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "123456"})
		if err != nil {
			t.Fatalf("second verify: %v", err)
		}

		// Assert
		if !first.Verified {
			t.Fatal("expected first verification to succeed")
		}
		if second.Verified {
			t.Fatal("expected code to be consumed after first use")
		}
	})

	t.Run("mismatched code keeps the pending entry", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.codes.entries["a@x.com"] = pending

		// Act
		wrong, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "000000"})
		if err != nil {
			t.Fatalf("wrong verify: %v", err)
		}
		right, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "123456"})
		if err != nil {
			t.Fatalf("right verify: %v", err)
		}

		// Assert
		if wrong.Verified {
			t.Fatal("expected mismatch to fail")
		}
		if !right.Verified {
			t.Fatal("expected retry with the correct code to succeed")
		}
	})

	t.Run("expired code fails and is removed", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.codes.entries["a@x.com"] = entity.CodeEntry{Code: "123456", ExpiresAt: testNow.Add(-time.Second)}

		// Act
		out, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "123456"})

		// Assert
		if err != nil {
			t.Fatalf("verify otp: %v", err)
		}
		if out.Verified {
			t.Fatal("expected expired code to fail")
		}
		if _, ok := deps.codes.entries["a@x.com"]; ok {
			t.Fatal("expected expired entry to be removed")
		}
	})

	t.Run("code is still valid exactly at its expiry instant", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.codes.entries["a@x.com"] = entity.CodeEntry{Code: "123456", ExpiresAt: testNow}

		// Act
		out, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "123456"})

		// Assert
		if err != nil {
			t.Fatalf("verify otp: %v", err)
		}
		if !out.Verified {
			t.Fatal("expected code at the expiry boundary to still verify")
		}
	})

	t.Run("code store failure is surfaced", func(t *testing.T) {
		// Arrange
		uc, deps := newTestUsecase(t, "")
		deps.codes.getErr = errors.New("backend down")

		// Act
		_, err := uc.VerifyOTP(t.Context(), VerifyOTPInput{Email: "a@x.com", Code: "123456"})

		// Assert
		assertGoError(t, err, goerror.CodeInternal)
	})
}
