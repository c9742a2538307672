package contactcmd

import (
	"github.com/goliatone/go-artia/internal/contact"
)

const submitMessageType = "artia.contact.submit"

// SubmitContactCommand carries one contact form submission.
type SubmitContactCommand struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	// OnSubmitted receives the stored submission after a successful send.
	OnSubmitted func(*contact.Submission) `json:"-"`
}

// Type implements command.Message.
func (SubmitContactCommand) Type() string { return submitMessageType }

// Validate reports the first failing form field in form order.
func (cmd SubmitContactCommand) Validate() error {
	return cmd.Input().Validate()
}

// Input converts the command into the contact service payload.
func (cmd SubmitContactCommand) Input() contact.Input {
	return contact.Input{
		Name:    cmd.Name,
		Email:   cmd.Email,
		Subject: cmd.Subject,
		Message: cmd.Message,
	}
}
