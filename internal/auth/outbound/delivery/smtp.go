package delivery

import (
	"context"
	"fmt"

	"github.com/cemtras/authgate/internal/pkg/mail"
)

// SMTP sends verification codes by email.
type SMTP struct {
	mailer mail.Mail
}

// NewSMTP builds the email delivery channel over the given mailer.
func NewSMTP(mailer mail.Mail) *SMTP {
	return &SMTP{mailer: mailer}
}

// Send emails the code to the identifier, which must be an email address.
func (s *SMTP) Send(ctx context.Context, identifier, code string) error {
	return s.mailer.Send(ctx, mail.Message{
		To:       []string{identifier},
		Subject:  "Your verification code",
		TextBody: fmt.Sprintf("Your verification code is %s. It expires shortly, use it right away.", code),
		HTMLBody: fmt.Sprintf("<p>Your verification code is <strong>%s</strong>.</p><p>It expires shortly, use it right away.</p>", code),
	})
}
