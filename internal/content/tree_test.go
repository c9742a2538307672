package content

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-artia/pkg/interfaces"
)

func TestTreeBuilder_DirectoryWinsOverSameNamedFile(t *testing.T) {
	page := doc("notes.md", interfaces.FrontMatter{Title: "Notes page"}, "page body")
	child := doc("notes/first.md", interfaces.FrontMatter{Title: "First"}, "first body")

	cases := []struct {
		name string
		docs []*interfaces.Document
	}{
		{name: "file before directory", docs: []*interfaces.Document{page, child}},
		{name: "directory before file", docs: []*interfaces.Document{child, page}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			builder := newTreeBuilder(false)
			for _, d := range tc.docs {
				builder.add(d)
			}
			built := builder.build()

			notes := built.byPath["/notes"]
			if notes == nil {
				t.Fatalf("expected /notes in the index")
			}
			if notes.Type != TypeFolder || notes.Body != "" {
				t.Fatalf("expected /notes to be a folder without body, got type=%q body=%q", notes.Type, notes.Body)
			}
			if want := []string{"/notes/first"}; !reflect.DeepEqual(paths(notes.Children), want) {
				t.Fatalf("expected folder children %v, got %v", want, paths(notes.Children))
			}
			if want := []string{"/notes"}; !reflect.DeepEqual(paths(built.root.Children), want) {
				t.Fatalf("expected a single /notes entry at the root, got %v", paths(built.root.Children))
			}
			if want := []string{"/notes"}; !reflect.DeepEqual(builder.duplicates, want) {
				t.Fatalf("expected the collision to be reported, got %v", builder.duplicates)
			}
		})
	}
}

func TestTreeBuilder_IndexKeepsDirectoryContainer(t *testing.T) {
	builder := newTreeBuilder(false)
	builder.add(doc("shelf/index.md", interfaces.FrontMatter{Title: "Shelf", Type: "book", Code: "SH"}, ""))
	builder.add(doc("shelf/a.md", interfaces.FrontMatter{Title: "A"}, ""))
	builder.add(doc("shelf/sub/b.md", interfaces.FrontMatter{Title: "B"}, ""))

	shelf := builder.build().byPath["/shelf"]
	if shelf.Type != TypeBook || len(shelf.Children) != 2 {
		t.Fatalf("expected book with two children, got type=%q children=%v", shelf.Type, paths(shelf.Children))
	}
	if len(builder.duplicates) != 0 {
		t.Fatalf("expected no collisions, got %v", builder.duplicates)
	}
}
