package contact

import (
	"context"

	"github.com/google/uuid"
)

// Repository stores contact submissions.
type Repository interface {
	Create(ctx context.Context, record *Submission) (*Submission, error)
	Update(ctx context.Context, record *Submission) (*Submission, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Submission, error)
	// List returns the newest submissions first. A non-positive limit returns all.
	List(ctx context.Context, limit int) ([]*Submission, error)
}
