package interfaces

import "context"

// MailMessage is a plain-text message handed to a Mailer.
type MailMessage struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
}

// Mailer delivers outbound mail. Delivery mechanics live with the host.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
