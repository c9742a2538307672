package contact

import (
	"context"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-repository-cache/cache"
	repositorycache "github.com/goliatone/go-repository-cache/repositorycache"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewSubmissionRepository builds the generic bun repository for submissions.
func NewSubmissionRepository(db *bun.DB) repository.Repository[*Submission] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Submission]{
		NewRecord: func() *Submission { return &Submission{} },
		GetID: func(s *Submission) uuid.UUID {
			return s.ID
		},
		SetID: func(s *Submission, id uuid.UUID) {
			s.ID = id
		},
		GetIdentifier: func() string {
			return "id"
		},
		GetIdentifierValue: func(s *Submission) string {
			return s.ID.String()
		},
	})
}

// BunRepository persists submissions with bun.
type BunRepository struct {
	repo repository.Repository[*Submission]
}

// NewBunRepository constructs a Repository backed by db.
func NewBunRepository(db *bun.DB) *BunRepository {
	return NewBunRepositoryWithCache(db, nil, nil)
}

// NewBunRepositoryWithCache wraps the bun repository with go-repository-cache
// when both cacheService and keySerializer are set.
func NewBunRepositoryWithCache(db *bun.DB, cacheService cache.CacheService, keySerializer cache.KeySerializer) *BunRepository {
	base := NewSubmissionRepository(db)
	if cacheService != nil && keySerializer != nil {
		return &BunRepository{repo: repositorycache.New(base, cacheService, keySerializer)}
	}
	return &BunRepository{repo: base}
}

// Create inserts record.
func (r *BunRepository) Create(ctx context.Context, record *Submission) (*Submission, error) {
	created, err := r.repo.Create(ctx, record)
	if err != nil {
		return nil, mapRepositoryError(err, record.ID.String())
	}
	return created, nil
}

// Update writes the delivery outcome of record.
func (r *BunRepository) Update(ctx context.Context, record *Submission) (*Submission, error) {
	updated, err := r.repo.Update(ctx, record,
		repository.UpdateByID(record.ID.String()),
		repository.UpdateColumns("status", "error", "sent_at"),
	)
	if err != nil {
		return nil, mapRepositoryError(err, record.ID.String())
	}
	return updated, nil
}

// GetByID fetches a submission by id.
func (r *BunRepository) GetByID(ctx context.Context, id uuid.UUID) (*Submission, error) {
	record, err := r.repo.GetByID(ctx, id.String())
	if err != nil {
		return nil, mapRepositoryError(err, id.String())
	}
	return record, nil
}

// List returns submissions newest first.
func (r *BunRepository) List(ctx context.Context, limit int) ([]*Submission, error) {
	order := repository.SelectRawProcessor(func(q *bun.SelectQuery) *bun.SelectQuery {
		return q.OrderExpr("?TableAlias.created_at DESC").OrderExpr("?TableAlias.id ASC")
	})
	var (
		records []*Submission
		err     error
	)
	if limit > 0 {
		records, _, err = r.repo.List(ctx, order, repository.SelectPaginate(limit, 0))
	} else {
		records, _, err = r.repo.List(ctx, order)
	}
	if err != nil {
		return nil, mapRepositoryError(err, "")
	}
	return records, nil
}

func mapRepositoryError(err error, key string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsCategory(err, repository.CategoryDatabaseNotFound) {
		return &NotFoundError{Key: key}
	}
	return fmt.Errorf("contact repository error: %w", err)
}
