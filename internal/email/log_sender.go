package email

import (
	"context"

	"github.com/rs/zerolog/log"
)

// LogSender writes emails to the log instead of delivering them.
// It is used when SES is not configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, recipient, subject, body string) error {
	log.Ctx(ctx).Info().
		Str("recipient", recipient).
		Str("subject", subject).
		Str("body", body).
		Msg("Email delivery disabled, logging message")
	return nil
}
