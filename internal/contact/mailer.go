package contact

import (
	"context"
	"strings"

	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

// MailerFunc adapts a function into an interfaces.Mailer.
type MailerFunc func(ctx context.Context, msg interfaces.MailMessage) error

// Send implements interfaces.Mailer.
func (f MailerFunc) Send(ctx context.Context, msg interfaces.MailMessage) error {
	return f(ctx, msg)
}

// LogMailer records outbound messages in the log instead of delivering them.
// It is the default when the host wires no transport.
type LogMailer struct {
	Logger interfaces.Logger
}

// Send implements interfaces.Mailer.
func (m LogMailer) Send(ctx context.Context, msg interfaces.MailMessage) error {
	logger := logging.Ensure(m.Logger).WithContext(ctx)
	logger.Info("contact.mail.logged",
		"from", msg.From,
		"to", strings.Join(msg.To, ","),
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"bytes", len(msg.Text),
	)
	return nil
}
