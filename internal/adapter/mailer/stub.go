package mailer

import (
	"context"
	"log/slog"
)

// Stub logs messages instead of delivering them. Used in development and
// whenever notification delivery is disabled.
type Stub struct {
	log *slog.Logger
}

// NewStub creates a logging stub sender.
func NewStub(log *slog.Logger) *Stub {
	return &Stub{log: log.With("mailer", "stub")}
}

// Send logs the message and reports success.
func (s *Stub) Send(ctx context.Context, to, subject, body string) error {
	s.log.InfoContext(ctx, "mail suppressed",
		"to", to,
		"subject", subject,
		"body_len", len(body),
	)
	return nil
}
