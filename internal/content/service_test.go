package content

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/goliatone/go-artia/internal/identity"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

func doc(path string, fm interfaces.FrontMatter, body string) *interfaces.Document {
	return &interfaces.Document{FilePath: path, FrontMatter: fm, Body: []byte(body)}
}

func fixtureDocuments() []*interfaces.Document {
	day := func(d int) time.Time { return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC) }
	return []*interfaces.Document{
		doc("index.md", interfaces.FrontMatter{Title: "Home"}, "welcome"),
		doc("2.books/index.md", interfaces.FrontMatter{Title: "Library"}, ""),
		doc("2.books/1.dune/index.md", interfaces.FrontMatter{Title: "Dune", Type: "book", Code: "DUNE", SortAnchor: []float64{2}}, ""),
		doc("2.books/1.dune/2.second.md", interfaces.FrontMatter{Title: "Second", SortAnchor: []float64{2}, Date: day(2)}, "two"),
		doc("2.books/1.dune/1.first.md", interfaces.FrontMatter{Title: "First", SortAnchor: []float64{1}, Date: day(1)}, "one"),
		doc("2.books/3.hyperion/index.md", interfaces.FrontMatter{Title: "Hyperion", Type: "book", Code: "HYP", SortAnchor: []float64{1}}, ""),
		doc("2.books/3.hyperion/notes.md", interfaces.FrontMatter{Title: "Notes", Type: "note"}, ""),
		doc("journal/entry.md", interfaces.FrontMatter{Title: "Entry", Slug: "My First Entry", Date: day(5), PasswordHash: Digest("secret")}, "hidden"),
		doc("journal/draft.md", interfaces.FrontMatter{Title: "Draft", Draft: true, Date: day(9)}, ""),
	}
}

func newFixtureService(t *testing.T, opts ...ServiceOption) Service {
	t.Helper()
	source := DocumentSourceFunc(func(context.Context) ([]*interfaces.Document, error) {
		return fixtureDocuments(), nil
	})
	return NewService(source, opts...)
}

func TestService_TreeBuildsFoldersAndBooks(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	top, err := svc.Tree(ctx, "/", SortOptions{PrioritizeFolders: true})
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if want := []string{"/journal", "/books"}; !reflect.DeepEqual(paths(top), want) {
		t.Fatalf("expected %v, got %v", want, paths(top))
	}

	books, err := svc.Tree(ctx, "books", SortOptions{Recursive: true})
	if err != nil {
		t.Fatalf("Tree(books): %v", err)
	}
	if want := []string{"/books/hyperion", "/books/dune"}; !reflect.DeepEqual(paths(books), want) {
		t.Fatalf("expected %v, got %v", want, paths(books))
	}
	if books[1].Type != TypeBook || books[1].Code != "DUNE" {
		t.Fatalf("expected dune to be a book, got %+v", books[1])
	}
	if want := []string{"/books/dune/first", "/books/dune/second"}; !reflect.DeepEqual(paths(books[1].Children), want) {
		t.Fatalf("expected chapters in anchor order, got %v", paths(books[1].Children))
	}
	if books[0].Children[0].Type != "note" {
		t.Fatalf("expected front-matter type to be kept, got %q", books[0].Children[0].Type)
	}
}

func TestService_TreeFilterPagesDropsEmptyChildren(t *testing.T) {
	svc := newFixtureService(t)
	books, err := svc.Tree(context.Background(), "/books", SortOptions{Recursive: true, FilterPages: true})
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	for _, book := range books {
		if book.Path == "/books/hyperion" && book.Children != nil {
			t.Fatalf("expected hyperion children to be absent, got %v", paths(book.Children))
		}
	}
}

func TestService_GetAndSlugOverride(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	item, err := svc.Get(ctx, "/journal/my-first-entry")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if item.Type != TypePage || item.ID != identity.ContentUUID("/journal/my-first-entry") {
		t.Fatalf("unexpected item %+v", item)
	}

	if _, err := svc.Get(ctx, "/journal/entry"); !IsNotFound(err) {
		t.Fatalf("expected slug to replace file name, got %v", err)
	}
	if _, err := svc.Get(ctx, "/journal/draft"); !IsNotFound(err) {
		t.Fatalf("expected drafts to be skipped, got %v", err)
	}

	root, err := svc.Get(ctx, "")
	if err != nil || root.Title != "Home" || root.Body != "welcome" {
		t.Fatalf("expected root index to populate the root item, got %+v %v", root, err)
	}
}

func TestService_GetReturnsCopies(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	item, err := svc.Get(ctx, "/books/dune")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	item.Title = "changed"
	item.Children[0].Title = "changed"

	again, _ := svc.Get(ctx, "/books/dune")
	if again.Title != "Dune" {
		t.Fatalf("expected stored item to be isolated")
	}
	for _, child := range again.Children {
		if child.Title == "changed" {
			t.Fatalf("expected stored children to be isolated")
		}
	}
}

func TestService_Lookup(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	if item, err := svc.Lookup(ctx, "/index"); err != nil || item.Path != "/" {
		t.Fatalf("expected /index to resolve to root, got %v %v", item, err)
	}
	if item, err := svc.Lookup(ctx, "/books/dune/index"); err != nil || item.Path != "/books/dune" {
		t.Fatalf("expected index suffix lookup, got %v %v", item, err)
	}

	id := identity.ContentUUID("/books/dune/first")
	item, err := svc.Lookup(ctx, "/anything/"+id.String())
	if err != nil || item.Path != "/books/dune/first" {
		t.Fatalf("expected id lookup, got %v %v", item, err)
	}

	_, err = svc.Lookup(ctx, "/missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) || notFound.Key != "/missing" {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestService_RecentAndFeatured(t *testing.T) {
	svc := newFixtureService(t)
	ctx := context.Background()

	recent, err := svc.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if want := []string{"/journal/my-first-entry", "/books/dune/second"}; !reflect.DeepEqual(paths(recent), want) {
		t.Fatalf("expected %v, got %v", want, paths(recent))
	}

	featured, err := svc.Featured(ctx, []string{"HYP", "missing", "DUNE", "HYP"})
	if err != nil {
		t.Fatalf("Featured: %v", err)
	}
	if want := []string{"/books/hyperion", "/books/dune"}; !reflect.DeepEqual(paths(featured), want) {
		t.Fatalf("expected %v, got %v", want, paths(featured))
	}
}

func TestService_WithDrafts(t *testing.T) {
	svc := newFixtureService(t, WithDrafts(true))
	if _, err := svc.Get(context.Background(), "/journal/draft"); err != nil {
		t.Fatalf("expected draft to be included, got %v", err)
	}
}

func TestService_ReloadErrors(t *testing.T) {
	boom := errors.New("boom")
	svc := NewService(DocumentSourceFunc(func(context.Context) ([]*interfaces.Document, error) {
		return nil, boom
	}))
	if _, err := svc.Get(context.Background(), "/"); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
	if err := NewService(nil).Reload(context.Background()); !errors.Is(err, ErrSourceRequired) {
		t.Fatalf("expected ErrSourceRequired, got %v", err)
	}
}

func TestService_ProtectedItemThroughGate(t *testing.T) {
	svc := newFixtureService(t)
	item, err := svc.Lookup(context.Background(), "/journal/my-first-entry")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	view, err := Access(item, nil)
	if err != nil || view.Body != "" || !view.PasswordRequired {
		t.Fatalf("expected redacted view, got %+v %v", view, err)
	}
}
