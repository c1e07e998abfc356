// Package delivery sends verification codes to users. The log channel prints
// the code to the application log for demo use; the smtp channel sends a real
// email.
package delivery

import (
	"context"
	"log/slog"
)

// Log writes issued codes to the application log instead of sending them.
type Log struct{}

// NewLog builds the demo log delivery channel.
func NewLog() *Log {
	return &Log{}
}

// Send logs the code for the identifier and always succeeds.
func (l *Log) Send(ctx context.Context, identifier, code string) error {
	slog.InfoContext(ctx, "verification code issued", "sent_to", identifier, "code", code)
	return nil
}
