package content

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// DocumentSource supplies the parsed markdown documents the tree is built from.
type DocumentSource interface {
	LoadDocuments(ctx context.Context) ([]*interfaces.Document, error)
}

// DocumentSourceFunc adapts a function to DocumentSource.
type DocumentSourceFunc func(ctx context.Context) ([]*interfaces.Document, error)

// LoadDocuments calls f.
func (f DocumentSourceFunc) LoadDocuments(ctx context.Context) ([]*interfaces.Document, error) {
	return f(ctx)
}

// Service exposes read access to the content tree.
type Service interface {
	Reload(ctx context.Context) error
	Tree(ctx context.Context, root string, opts SortOptions) ([]*Item, error)
	Get(ctx context.Context, path string) (*Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Item, error)
	Lookup(ctx context.Context, path string) (*Item, error)
	Recent(ctx context.Context, limit int) ([]*Item, error)
	Featured(ctx context.Context, codes []string) ([]*Item, error)
}

// ServiceOption configures the service at construction time.
type ServiceOption func(*service)

// WithLogger overrides the logger used by the service.
func WithLogger(logger interfaces.Logger) ServiceOption {
	return func(s *service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithDrafts includes draft documents in the tree.
func WithDrafts(enabled bool) ServiceOption {
	return func(s *service) {
		s.includeDrafts = enabled
	}
}

// WithLocale sets the collation locale used when Tree is called without one.
func WithLocale(tag language.Tag) ServiceOption {
	return func(s *service) {
		s.locale = tag
	}
}

// WithClock overrides the clock used to stamp reloads.
func WithClock(clock func() time.Time) ServiceOption {
	return func(s *service) {
		if clock != nil {
			s.now = clock
		}
	}
}

type service struct {
	source        DocumentSource
	logger        interfaces.Logger
	locale        language.Tag
	includeDrafts bool
	now           func() time.Time

	mu       sync.RWMutex
	current  *tree
	byID     map[uuid.UUID]*Item
	loadedAt time.Time
}

// NewService constructs a content service over source. The tree is loaded
// lazily on first use; call Reload to pick up changes.
func NewService(source DocumentSource, opts ...ServiceOption) Service {
	s := &service{
		source: source,
		logger: logging.NoOp(),
		locale: language.Und,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Reload rebuilds the tree from the document source.
func (s *service) Reload(ctx context.Context) error {
	if s.source == nil {
		return ErrSourceRequired
	}
	docs, err := s.source.LoadDocuments(ctx)
	if err != nil {
		s.logger.Error("content.reload.failed", "error", err)
		return err
	}

	builder := newTreeBuilder(s.includeDrafts)
	for _, doc := range orderedDocuments(docs) {
		builder.add(doc)
	}
	for _, duplicate := range builder.duplicates {
		s.logger.Warn("content.reload.duplicate_path", "path", duplicate)
	}

	built := builder.build()
	byID := make(map[uuid.UUID]*Item, len(built.byPath))
	for _, item := range built.byPath {
		byID[item.ID] = item
	}

	s.mu.Lock()
	s.current = built
	s.byID = byID
	s.loadedAt = s.now()
	s.mu.Unlock()

	s.logger.Info("content.reload.completed",
		"items", len(built.byPath),
		"drafts_skipped", builder.skippedDrafts,
	)
	return nil
}

func (s *service) snapshot(ctx context.Context) (*tree, map[uuid.UUID]*Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	s.mu.RLock()
	current, byID := s.current, s.byID
	s.mu.RUnlock()
	if current != nil {
		return current, byID, nil
	}
	if err := s.Reload(ctx); err != nil {
		return nil, nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.byID, nil
}

// Tree returns the sorted children of root.
func (s *service) Tree(ctx context.Context, root string, opts SortOptions) ([]*Item, error) {
	current, _, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	key := NormalizePath(root)
	node, ok := current.byPath[key]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: key}
	}
	if opts.Locale == language.Und {
		opts.Locale = s.locale
	}
	return SortItems(cloneItems(node.Children), opts), nil
}

// Get returns a copy of the item stored at path.
func (s *service) Get(ctx context.Context, path string) (*Item, error) {
	current, _, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	key := NormalizePath(path)
	item, ok := current.byPath[key]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: key}
	}
	return item.cloneTree(), nil
}

// GetByID returns a copy of the item with the given identifier.
func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	_, byID, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	item, ok := byID[id]
	if !ok {
		return nil, &NotFoundError{Resource: "content", Key: id.String()}
	}
	return item.cloneTree(), nil
}

// Lookup resolves a reader-facing path. It tries the exact path, then the
// path without a trailing /index, then the last segment as an item ID.
func (s *service) Lookup(ctx context.Context, path string) (*Item, error) {
	key := NormalizePath(path)
	item, err := s.Get(ctx, key)
	if err == nil || !IsNotFound(err) {
		return item, err
	}

	if trimmed, ok := strings.CutSuffix(key, "/"+indexName); ok {
		if item, err := s.Get(ctx, trimmed); err == nil {
			return item, nil
		}
	}

	last := key[strings.LastIndex(key, "/")+1:]
	if id, parseErr := uuid.Parse(last); parseErr == nil {
		if item, err := s.GetByID(ctx, id); err == nil {
			return item, nil
		}
	}
	return nil, &NotFoundError{Resource: "content", Key: key}
}

// Recent returns dated pages, newest first. A non-positive limit returns all.
func (s *service) Recent(ctx context.Context, limit int) ([]*Item, error) {
	current, _, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	var pages []*Item
	for _, item := range current.byPath {
		if item.Type != TypePage || item.Date.IsZero() {
			continue
		}
		pages = append(pages, item)
	}
	slices.SortFunc(pages, func(a, b *Item) int {
		if c := b.Date.Compare(a.Date); c != 0 {
			return c
		}
		return strings.Compare(a.Path, b.Path)
	})
	if limit > 0 && len(pages) > limit {
		pages = pages[:limit]
	}
	return cloneItems(pages), nil
}

// Featured returns the books whose code is listed, in the listed order.
// Unknown codes are skipped.
func (s *service) Featured(ctx context.Context, codes []string) ([]*Item, error) {
	current, _, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	books := make(map[string]*Item)
	for _, item := range current.byPath {
		if item.Type == TypeBook && item.Code != "" {
			if existing, ok := books[item.Code]; !ok || item.Path < existing.Path {
				books[item.Code] = item
			}
		}
	}

	out := make([]*Item, 0, len(codes))
	seen := make(map[string]struct{}, len(codes))
	for _, code := range codes {
		code = strings.TrimSpace(code)
		if _, dup := seen[code]; dup || code == "" {
			continue
		}
		seen[code] = struct{}{}
		if book, ok := books[code]; ok {
			out = append(out, book.cloneTree())
		}
	}
	return out, nil
}
