package markdown

import (
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-artia/pkg/interfaces"
	"github.com/goliatone/go-artia/pkg/testsupport"
)

func TestParseFrontMatter(t *testing.T) {
	data := testsupport.MustLoadFixture(t, "testdata/basic.md")

	fm, body, err := ParseFrontMatter(data)
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}

	if fm.Title != "Sample Document" || fm.Slug != "sample-document" {
		t.Fatalf("unexpected title/slug %q %q", fm.Title, fm.Slug)
	}
	if fm.Type != "page" {
		t.Fatalf("expected type page, got %q", fm.Type)
	}
	if len(fm.SortAnchor) != 2 || fm.SortAnchor[0] != 2 || fm.SortAnchor[1] != 1 {
		t.Fatalf("unexpected sort anchor %#v", fm.SortAnchor)
	}
	if fm.PasswordHash == "" {
		t.Fatalf("expected password hash to be parsed")
	}
	if len(fm.Tags) != 2 || fm.Tags[0] != "writing" {
		t.Fatalf("FrontMatter Tags mismatch: %#v", fm.Tags)
	}
	if fm.Custom["custom_flag"] != true {
		t.Fatalf("FrontMatter Custom flag missing: %#v", fm.Custom)
	}
	if fm.Raw["summary"] != "Sample summary goes here" {
		t.Fatalf("FrontMatter Raw summary missing: %#v", fm.Raw)
	}
	if !strings.Contains(string(body), "# Sample Document") {
		t.Fatalf("Markdown body not returned correctly: %q", string(body))
	}
}

func TestParseFrontMatter_NoAnchor(t *testing.T) {
	fm, _, err := ParseFrontMatter([]byte("---\ntitle: x\n---\nbody"))
	if err != nil {
		t.Fatalf("ParseFrontMatter: %v", err)
	}
	if fm.SortAnchor != nil {
		t.Fatalf("expected absent sort anchor to stay nil, got %#v", fm.SortAnchor)
	}
}

func TestBuildDocument(t *testing.T) {
	data := testsupport.MustLoadFixture(t, "testdata/basic.md")
	modified := time.Now().UTC()

	doc, err := BuildDocument("testdata/basic.md", data, modified)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.FilePath != "testdata/basic.md" {
		t.Fatalf("expected FilePath to be set, got %q", doc.FilePath)
	}
	if !doc.LastModified.Equal(modified) {
		t.Fatalf("expected LastModified to equal the provided timestamp")
	}
	if len(doc.Body) == 0 {
		t.Fatalf("expected Body to contain markdown content")
	}
}

func TestGoldmarkParser_Parse(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte("# Heading\n\nHello **world**"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	got := string(html)
	if !strings.Contains(got, "<h1") || !strings.Contains(got, "Heading</h1>") {
		t.Fatalf("expected rendered HTML to include <h1>Heading</h1>, got %q", got)
	}
	if !strings.Contains(got, "<strong>world</strong>") {
		t.Fatalf("expected rendered HTML to include <strong>, got %q", got)
	}
}

func TestGoldmarkParser_KeepsPreprocessedMarkup(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.Parse([]byte(Preprocess("a\n\nb")))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := string(html)
	if !strings.Contains(got, "a<br>") || !strings.Contains(got, "<br>b") {
		t.Fatalf("expected raw line breaks in output, got %q", got)
	}
	if strings.Count(got, "<p>") != 1 {
		t.Fatalf("expected a single paragraph, got %q", got)
	}
}

func TestGoldmarkParser_SafeModeDropsRawHTML(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("a<br>b"), interfaces.ParseOptions{SafeMode: true})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}
	if strings.Contains(string(html), "<br>") {
		t.Fatalf("expected raw HTML to be omitted in safe mode, got %q", html)
	}
}

func TestGoldmarkParser_ParseWithOptions(t *testing.T) {
	parser := NewGoldmarkParser(interfaces.ParseOptions{})

	html, err := parser.ParseWithOptions([]byte("line one\nline two"), interfaces.ParseOptions{
		HardWraps: true,
	})
	if err != nil {
		t.Fatalf("ParseWithOptions: %v", err)
	}

	if !strings.Contains(string(html), "line one<br") {
		t.Fatalf("expected hard wraps in HTML output, got %q", string(html))
	}
}

