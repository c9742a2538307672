package content

import (
	"maps"
	"path"
	"regexp"
	"sort"
	"strings"

	"github.com/goliatone/go-artia/internal/identity"
	"github.com/goliatone/go-artia/pkg/interfaces"
	"github.com/goliatone/go-slug"
)

var orderPrefixPattern = regexp.MustCompile(`^\d+\.`)

const indexName = "index"

// tree is an immutable snapshot of the content hierarchy with lookup indexes.
type tree struct {
	root   *Item
	byPath map[string]*Item
}

// treeBuilder assembles items from documents. Directories become folder items
// (or books when their index declares type: book) and files become items of
// their front-matter type, page by default.
type treeBuilder struct {
	includeDrafts bool
	root          *Item
	byPath        map[string]*Item
	duplicates    []string
	skippedDrafts int
}

func newTreeBuilder(includeDrafts bool) *treeBuilder {
	root := &Item{
		ID:       identity.ContentUUID("/"),
		Path:     "/",
		Type:     TypeFolder,
		Children: []*Item{},
	}
	return &treeBuilder{
		includeDrafts: includeDrafts,
		root:          root,
		byPath:        map[string]*Item{"/": root},
	}
}

// add places doc in the tree. Documents must be added in a stable order so
// duplicate paths resolve the same way on every load.
func (b *treeBuilder) add(doc *interfaces.Document) {
	if doc == nil {
		return
	}
	if doc.FrontMatter.Draft && !b.includeDrafts {
		b.skippedDrafts++
		return
	}

	dirs, name := splitSourcePath(doc.FilePath)
	parent := b.ensureDir(dirs)

	if name == indexName {
		b.applyIndex(parent, doc)
		return
	}

	segment := name
	if override := normalizeSlug(doc.FrontMatter.Slug); override != "" {
		segment = override
	}
	itemPath := joinPath(parent.Path, segment)
	if _, exists := b.byPath[itemPath]; exists {
		b.duplicates = append(b.duplicates, itemPath)
		return
	}

	item := itemFromDocument(itemPath, doc)
	if item.Type == "" {
		item.Type = TypePage
	}
	parent.Children = append(parent.Children, item)
	b.byPath[itemPath] = item
}

func (b *treeBuilder) ensureDir(dirs []string) *Item {
	current := b.root
	for _, dir := range dirs {
		dirPath := joinPath(current.Path, dir)
		existing, ok := b.byPath[dirPath]
		if ok && existing.IsContainer() {
			current = existing
			continue
		}
		folder := &Item{
			ID:       identity.ContentUUID(dirPath),
			Path:     dirPath,
			Title:    dir,
			Type:     TypeFolder,
			Children: []*Item{},
		}
		if ok {
			// A file and a directory share the path: the directory wins.
			b.duplicates = append(b.duplicates, dirPath)
			replaceChild(current, existing, folder)
		} else {
			current.Children = append(current.Children, folder)
		}
		b.byPath[dirPath] = folder
		current = folder
	}
	return current
}

func replaceChild(parent, old, replacement *Item) {
	for i, child := range parent.Children {
		if child == old {
			parent.Children[i] = replacement
			return
		}
	}
	parent.Children = append(parent.Children, replacement)
}

// applyIndex merges an index document into its directory item. The directory
// keeps its path and children.
func (b *treeBuilder) applyIndex(dir *Item, doc *interfaces.Document) {
	merged := itemFromDocument(dir.Path, doc)
	merged.Children = dir.Children
	if merged.Title == "" {
		merged.Title = dir.Title
	}
	if strings.EqualFold(merged.Type, TypeBook) {
		merged.Type = TypeBook
	} else {
		merged.Type = TypeFolder
	}
	*dir = *merged
}

func (b *treeBuilder) build() *tree {
	return &tree{root: b.root, byPath: b.byPath}
}

func itemFromDocument(itemPath string, doc *interfaces.Document) *Item {
	fm := doc.FrontMatter
	item := &Item{
		ID:           identity.ContentUUID(itemPath),
		Path:         itemPath,
		Title:        strings.TrimSpace(fm.Title),
		Type:         strings.ToLower(strings.TrimSpace(fm.Type)),
		SortAnchor:   fm.SortAnchor,
		Summary:      fm.Summary,
		Code:         strings.TrimSpace(fm.Code),
		Author:       fm.Author,
		Tags:         fm.Tags,
		Draft:        fm.Draft,
		PasswordHash: strings.TrimSpace(fm.PasswordHash),
		Date:         fm.Date,
		Body:         string(doc.Body),
		BodyHTML:     string(doc.BodyHTML),
		SourcePath:   doc.FilePath,
	}
	if len(fm.Custom) > 0 {
		item.Metadata = maps.Clone(fm.Custom)
	}
	return item
}

// splitSourcePath turns "1.books/02.dune/3.intro.md" into the cleaned
// directory segments ["books", "dune"] and the file segment "intro".
func splitSourcePath(filePath string) ([]string, string) {
	cleaned := path.Clean("/" + strings.ReplaceAll(filePath, "\\", "/"))
	dir, file := path.Split(cleaned)

	var dirs []string
	for _, segment := range strings.Split(strings.Trim(dir, "/"), "/") {
		if segment == "" {
			continue
		}
		dirs = append(dirs, cleanSegment(segment))
	}

	file = strings.TrimSuffix(file, path.Ext(file))
	return dirs, cleanSegment(file)
}

func cleanSegment(segment string) string {
	stripped := orderPrefixPattern.ReplaceAllString(segment, "")
	if stripped == "" {
		return segment
	}
	return stripped
}

func normalizeSlug(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	normalized, err := slug.Normalize(value)
	if err != nil {
		return ""
	}
	return normalized
}

func joinPath(parent, segment string) string {
	if parent == "/" {
		return "/" + segment
	}
	return parent + "/" + segment
}

// NormalizePath converts caller input such as "books/dune/" into the
// canonical "/books/dune" form. An empty path is the root.
func NormalizePath(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "/"
	}
	cleaned := path.Clean("/" + value)
	return cleaned
}

// orderedDocuments drops nil entries and orders the rest by file path.
func orderedDocuments(docs []*interfaces.Document) []*interfaces.Document {
	out := make([]*interfaces.Document, 0, len(docs))
	for _, doc := range docs {
		if doc != nil {
			out = append(out, doc)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].FilePath < out[j].FilePath
	})
	return out
}
