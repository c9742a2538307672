package content

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortOptions controls SortItems. The zero value sorts a single level with no
// filtering, using root-locale collation for titles.
type SortOptions struct {
	// PrioritizeFolders places folders and books before every other item.
	PrioritizeFolders bool
	// Recursive sorts every children sequence with the same options.
	Recursive bool
	// FilterPages keeps only items with a sort anchor or of type page.
	FilterPages bool
	// Locale selects the collation used for titles.
	Locale language.Tag
}

// SortItems returns a new ordered slice of items. The input slice and the
// items it points to are not modified; with Recursive set, items that have
// children are copied so their sorted children can be attached. A children
// sequence that sorts to nothing becomes nil on the copy.
//
// Ordering applies, in turn: container weight (when PrioritizeFolders), sort
// anchor, title and path. Sibling paths are expected to be unique.
func SortItems(items []*Item, opts SortOptions) []*Item {
	s := &sorter{
		opts:     opts,
		collator: collate.New(opts.Locale),
	}
	return s.sort(items)
}

// CompareAnchors compares two sort anchors element by element. Missing
// elements count as zero, so [1] and [1, 0] are equal.
func CompareAnchors(a, b []float64) int {
	n := max(len(a), len(b))
	for i := 0; i < n; i++ {
		var av, bv float64
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		if av != bv {
			return cmp.Compare(av, bv)
		}
	}
	return 0
}

// sorter is single use. collate.Collator keeps internal buffers and must not
// be shared between goroutines.
type sorter struct {
	opts     SortOptions
	collator *collate.Collator
}

func (s *sorter) sort(items []*Item) []*Item {
	out := make([]*Item, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		if s.opts.FilterPages && item.SortAnchor == nil && item.Type != TypePage {
			continue
		}
		out = append(out, item)
	}

	slices.SortStableFunc(out, s.compare)

	if !s.opts.Recursive {
		return out
	}
	for idx, item := range out {
		if item.Children == nil {
			continue
		}
		copied := item.clone()
		copied.Children = s.sort(item.Children)
		if len(copied.Children) == 0 {
			copied.Children = nil
		}
		out[idx] = copied
	}
	return out
}

func (s *sorter) compare(a, b *Item) int {
	if s.opts.PrioritizeFolders {
		if diff := typeWeight(a) - typeWeight(b); diff != 0 {
			return diff
		}
	}
	if diff := CompareAnchors(a.SortAnchor, b.SortAnchor); diff != 0 {
		return diff
	}
	switch {
	case a.Title != "" && b.Title != "":
		if diff := s.collator.CompareString(a.Title, b.Title); diff != 0 {
			return diff
		}
	case a.Title != "":
		return -1
	case b.Title != "":
		return 1
	}
	return cmp.Compare(a.Path, b.Path)
}

func typeWeight(item *Item) int {
	if item.IsContainer() {
		return 0
	}
	return 1
}
