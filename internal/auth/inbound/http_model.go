package inbound

import (
	"time"

	"github.com/cemtras/authgate/internal/auth/entity"
)

type SendOTPRequest struct {
	Email string `json:"email"`
}

type SendOTPResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OTPSent bool   `json:"otp_sent"`
	OTP     string `json:"otp,omitempty"`
	SentTo  string `json:"sent_to"`
}

type VerifyOTPRequest struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type VerifyOTPResponse struct {
	Verified bool `json:"verified"`
}

type RegisterRequest struct {
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Mobile   string `json:"mobile"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Identifier string `json:"identifier"`
	Password   string `json:"password"`
}

type UserResponse struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Mobile           string    `json:"mobile"`
	IsAuthenticated  bool      `json:"is_authenticated"`
	RegistrationDate time.Time `json:"registration_date"`
}

func newUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		FullName:         user.FullName,
		Email:            user.Email,
		Mobile:           user.Mobile,
		IsAuthenticated:  user.IsAuthenticated,
		RegistrationDate: user.RegistrationDate,
	}
}

type SaveSessionRequest struct {
	ID               string    `json:"id"`
	FullName         string    `json:"full_name"`
	Email            string    `json:"email"`
	Mobile           string    `json:"mobile"`
	IsAuthenticated  bool      `json:"is_authenticated"`
	RegistrationDate time.Time `json:"registration_date"`
}
