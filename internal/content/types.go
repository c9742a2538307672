package content

import (
	"maps"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Item types with special meaning for ordering and tree building.
const (
	TypePage   = "page"
	TypeFolder = "folder"
	TypeBook   = "book"
)

// Item is a node of the content tree. A nil SortAnchor means the item has no
// anchor; a non-nil empty slice is an anchor with no elements. A nil Children
// slice means the item is a leaf.
type Item struct {
	ID           uuid.UUID      `json:"id"`
	Path         string         `json:"path"`
	Title        string         `json:"title,omitempty"`
	Type         string         `json:"type,omitempty"`
	SortAnchor   []float64      `json:"sortAnchor"`
	Children     []*Item        `json:"children,omitempty"`
	Summary      string         `json:"summary,omitempty"`
	Code         string         `json:"code,omitempty"`
	Author       string         `json:"author,omitempty"`
	Tags         []string       `json:"tags,omitempty"`
	Draft        bool           `json:"draft,omitempty"`
	PasswordHash string         `json:"-"`
	Date         time.Time      `json:"date,omitzero"`
	Body         string         `json:"body,omitempty"`
	BodyHTML     string         `json:"bodyHtml,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	SourcePath   string         `json:"file,omitempty"`
}

// IsContainer reports whether the item groups other items (folder or book).
func (i *Item) IsContainer() bool {
	return i != nil && (i.Type == TypeFolder || i.Type == TypeBook)
}

// IsProtected reports whether the item requires a password to read its body.
func (i *Item) IsProtected() bool {
	return i != nil && i.PasswordHash != ""
}

// clone copies the item and its own slices. Children keep pointing at the
// original child items.
func (i *Item) clone() *Item {
	if i == nil {
		return nil
	}
	copied := *i
	copied.SortAnchor = slices.Clone(i.SortAnchor)
	copied.Children = slices.Clone(i.Children)
	copied.Tags = slices.Clone(i.Tags)
	copied.Metadata = maps.Clone(i.Metadata)
	return &copied
}

// cloneTree copies the item and every descendant.
func (i *Item) cloneTree() *Item {
	copied := i.clone()
	if copied == nil || copied.Children == nil {
		return copied
	}
	for idx, child := range copied.Children {
		copied.Children[idx] = child.cloneTree()
	}
	return copied
}

func cloneItems(items []*Item) []*Item {
	if items == nil {
		return nil
	}
	out := make([]*Item, len(items))
	for idx, item := range items {
		out[idx] = item.cloneTree()
	}
	return out
}
