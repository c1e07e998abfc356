package inbound

import (
	"context"

	"github.com/cemtras/authgate/internal/auth/usecase"
	"github.com/cemtras/authgate/internal/pkg/router"
)

type uc interface {
	SendOTP(ctx context.Context, in usecase.SendOTPInput) (*usecase.SendOTPOutput, error)
	VerifyOTP(ctx context.Context, in usecase.VerifyOTPInput) (*usecase.VerifyOTPOutput, error)

	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.RegisterOutput, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.LoginOutput, error)

	CurrentSession(ctx context.Context) (*usecase.SessionOutput, error)
	SaveSession(ctx context.Context, in usecase.SaveSessionInput) error
	ClearSession(ctx context.Context) error
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// OTP verification
	r.POST("/api/v1/auth/otp/send", end.SendOTP)
	r.POST("/api/v1/auth/otp/verify", end.VerifyOTP)

	// Accounts
	r.POST("/api/v1/auth/register", end.Register)
	r.POST("/api/v1/auth/login", end.Login)

	// Session persistence
	r.GET("/api/v1/auth/session", end.CurrentSession)
	r.PUT("/api/v1/auth/session", end.SaveSession)
	r.DELETE("/api/v1/auth/session", end.ClearSession)
}
