package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/goliatone/go-artia/internal/markdown"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

type previewOptions struct {
	ContentDir string
	Pattern    string
	File       string
	TabWidth   int
	Preserve   bool
	RenderHTML bool
	SourceOnly bool
}

func main() {
	var opts previewOptions
	flag.StringVar(&opts.ContentDir, "content-dir", "content", "Path to the markdown content root")
	flag.StringVar(&opts.Pattern, "pattern", "*.md", "Glob pattern applied when discovering markdown files")
	flag.StringVar(&opts.File, "file", "", "Markdown file to preview (relative to the content root)")
	flag.IntVar(&opts.TabWidth, "tab-width", markdown.DefaultTabWidth, "Columns per tab when expanding leading indentation")
	flag.BoolVar(&opts.Preserve, "preserve-whitespace", true, "Apply the whitespace preprocessor before parsing")
	flag.BoolVar(&opts.RenderHTML, "render-html", true, "Print the rendered HTML instead of the markdown body")
	flag.BoolVar(&opts.SourceOnly, "source-only", false, "Print the preprocessed source file and exit")
	flag.Parse()

	if opts.File == "" {
		log.Fatalf("--file is required")
	}

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		log.Fatalf("preview: %v", err)
	}
}

func run(ctx context.Context, opts previewOptions, out io.Writer) error {
	service, err := markdown.NewService(markdown.Config{
		BasePath:           opts.ContentDir,
		Pattern:            opts.Pattern,
		Recursive:          true,
		PreserveWhitespace: opts.Preserve,
		TabWidth:           opts.TabWidth,
	})
	if err != nil {
		return err
	}
	return preview(ctx, service, opts, out)
}

type previewService interface {
	Load(ctx context.Context, path string) (*interfaces.Document, error)
	PreprocessSource(source string) string
}

func preview(ctx context.Context, service previewService, opts previewOptions, out io.Writer) error {
	if opts.SourceOnly {
		raw, err := os.ReadFile(filepath.Join(opts.ContentDir, opts.File))
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		_, err = fmt.Fprint(out, service.PreprocessSource(string(raw)))
		return err
	}

	doc, err := service.Load(ctx, opts.File)
	if err != nil {
		return fmt.Errorf("load markdown document: %w", err)
	}

	fmt.Fprintf(out, "Path: %s\nChecksum: %x\n\n", doc.FilePath, doc.Checksum)

	if doc.FrontMatter.Raw != nil {
		frontmatter, err := json.MarshalIndent(doc.FrontMatter.Raw, "", "  ")
		if err == nil {
			fmt.Fprintf(out, "Frontmatter:\n%s\n\n", frontmatter)
		}
	}

	if opts.RenderHTML {
		fmt.Fprintf(out, "Rendered HTML:\n%s\n", string(doc.BodyHTML))
	} else {
		fmt.Fprintf(out, "Markdown Body:\n%s\n", string(doc.Body))
	}
	return nil
}
