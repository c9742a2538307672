package contact

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// Submission states.
const (
	StatusPending = "pending"
	StatusSent    = "sent"
	StatusFailed  = "failed"
)

// Submission is a stored contact form message.
type Submission struct {
	bun.BaseModel `bun:"table:contact_submissions,alias:cs"`

	ID        uuid.UUID  `bun:",pk,type:uuid"                                 json:"id"`
	Name      string     `bun:"name,notnull"                                  json:"name"`
	Email     string     `bun:"email,notnull"                                 json:"email"`
	Subject   string     `bun:"subject,notnull"                               json:"subject"`
	Message   string     `bun:"message,notnull"                               json:"message"`
	Status    string     `bun:"status,notnull"                                json:"status"`
	Error     string     `bun:"error"                                         json:"error,omitempty"`
	CreatedAt time.Time  `bun:"created_at,nullzero,notnull,default:current_timestamp" json:"created_at"`
	SentAt    *time.Time `bun:"sent_at,nullzero"                              json:"sent_at,omitempty"`
}

// Input is the form payload as received from a reader.
type Input struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func cloneSubmission(src *Submission) *Submission {
	if src == nil {
		return nil
	}
	copied := *src
	if src.SentAt != nil {
		sentAt := *src.SentAt
		copied.SentAt = &sentAt
	}
	return &copied
}
