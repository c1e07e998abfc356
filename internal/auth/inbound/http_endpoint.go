package inbound

import (
	"github.com/cemtras/authgate/internal/auth/usecase"
	"github.com/cemtras/authgate/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for OTP verification, account and
// session workflows.
type HTTPEndpoint struct {
	uc uc
}

// SendOTP issues a verification code for an email address.
func (h *HTTPEndpoint) SendOTP(r *router.Request) (any, error) {
	var req SendOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.SendOTP(r.Context(), usecase.SendOTPInput{Email: req.Email})
	if err != nil {
		return nil, err
	}

	return SendOTPResponse{
		Success: resp.Success,
		Message: resp.Message,
		OTPSent: resp.OTPSent,
		OTP:     resp.Code,
		SentTo:  resp.SentTo,
	}, nil
}

// VerifyOTP checks a submitted verification code. A wrong or expired code is
// a normal negative result, not an error.
func (h *HTTPEndpoint) VerifyOTP(r *router.Request) (any, error) {
	var req VerifyOTPRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.VerifyOTP(r.Context(), usecase.VerifyOTPInput{
		Email: req.Email,
		Code:  req.OTP,
	})
	if err != nil {
		return nil, err
	}

	return VerifyOTPResponse{Verified: resp.Verified}, nil
}

// Register creates a new account.
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	var req RegisterRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Register(r.Context(), usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Mobile:   req.Mobile,
		Password: req.Password,
	})
	if err != nil {
		return nil, err
	}

	return newUserResponse(resp.User), nil
}

// Login authenticates by email or mobile plus password.
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	var req LoginRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Identifier: req.Identifier,
		Password:   req.Password,
	})
	if err != nil {
		return nil, err
	}

	return newUserResponse(resp.User), nil
}

// CurrentSession returns the persisted session user.
func (h *HTTPEndpoint) CurrentSession(r *router.Request) (any, error) {
	resp, err := h.uc.CurrentSession(r.Context())
	if err != nil {
		return nil, err
	}

	return newUserResponse(resp.User), nil
}

// SaveSession stores the supplied user as the active session.
func (h *HTTPEndpoint) SaveSession(r *router.Request) (any, error) {
	var req SaveSessionRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	if err := h.uc.SaveSession(r.Context(), usecase.SaveSessionInput{
		ID:               req.ID,
		FullName:         req.FullName,
		Email:            req.Email,
		Mobile:           req.Mobile,
		IsAuthenticated:  req.IsAuthenticated,
		RegistrationDate: req.RegistrationDate,
	}); err != nil {
		return nil, err
	}

	return nil, nil
}

// ClearSession removes the active session.
func (h *HTTPEndpoint) ClearSession(r *router.Request) (any, error) {
	if err := h.uc.ClearSession(r.Context()); err != nil {
		return nil, err
	}

	return nil, nil
}
