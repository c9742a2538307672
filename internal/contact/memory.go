package contact

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryRepository keeps submissions in process memory.
type MemoryRepository struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*Submission
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{records: make(map[uuid.UUID]*Submission)}
}

// Create stores a copy of record.
func (m *MemoryRepository) Create(_ context.Context, record *Submission) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	copied := cloneSubmission(record)
	m.records[copied.ID] = copied
	return cloneSubmission(copied), nil
}

// Update replaces the stored submission with the same ID.
func (m *MemoryRepository) Update(_ context.Context, record *Submission) (*Submission, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[record.ID]; !ok {
		return nil, &NotFoundError{Key: record.ID.String()}
	}
	copied := cloneSubmission(record)
	m.records[copied.ID] = copied
	return cloneSubmission(copied), nil
}

// GetByID returns the submission with id.
func (m *MemoryRepository) GetByID(_ context.Context, id uuid.UUID) (*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, &NotFoundError{Key: id.String()}
	}
	return cloneSubmission(rec), nil
}

// List returns submissions newest first.
func (m *MemoryRepository) List(_ context.Context, limit int) ([]*Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]*Submission, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, cloneSubmission(rec))
	}
	slices.SortFunc(out, func(a, b *Submission) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
