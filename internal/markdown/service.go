package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

// ErrNilDocument is returned when rendering a nil document.
var ErrNilDocument = errors.New("markdown service: document is nil")

// Config controls how the Markdown service discovers and parses files.
type Config struct {
	BasePath  string
	Pattern   string
	Recursive bool
	Parser    interfaces.ParseOptions
	// PreserveWhitespace runs the Preprocessor over every .md file before
	// front matter is parsed.
	PreserveWhitespace bool
	// TabWidth is passed to the Preprocessor.
	TabWidth int
}

// Option customises a Service.
type Option func(*Service)

// WithParser replaces the goldmark parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(s *Service) {
		if parser != nil {
			s.parser = parser
		}
	}
}

// WithFS reads documents from filesystem instead of BasePath on disk.
func WithFS(filesystem fs.FS) Option {
	return func(s *Service) {
		s.fs = filesystem
	}
}

// WithPreprocessor overrides the preprocessor used when PreserveWhitespace is set.
func WithPreprocessor(pre interfaces.SourcePreprocessor) Option {
	return func(s *Service) {
		s.preprocessor = pre
	}
}

// WithLogger sets the logger used for load diagnostics.
func WithLogger(logger interfaces.Logger) Option {
	return func(s *Service) {
		s.logger = logging.Ensure(logger)
	}
}

// Service loads, preprocesses and renders filesystem-backed documents.
type Service struct {
	cfg          Config
	fs           fs.FS
	parser       interfaces.MarkdownParser
	preprocessor interfaces.SourcePreprocessor
	logger       interfaces.Logger
	loader       *Loader
}

// NewService constructs a Markdown service. Without WithFS the documents are
// read from cfg.BasePath, which must exist.
func NewService(cfg Config, opts ...Option) (*Service, error) {
	s := &Service{
		cfg:          cfg,
		parser:       NewGoldmarkParser(cfg.Parser),
		preprocessor: Preprocessor{TabWidth: cfg.TabWidth},
		logger:       logging.NoOp(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.fs == nil {
		filesystem, err := prepareFilesystem(cfg.BasePath)
		if err != nil {
			return nil, err
		}
		s.fs = filesystem
	}

	loaderCfg := LoaderConfig{
		BasePath:  cfg.BasePath,
		Pattern:   cfg.Pattern,
		Recursive: cfg.Recursive,
	}
	if cfg.PreserveWhitespace {
		loaderCfg.Preprocessor = s.preprocessor
	}
	s.loader = NewLoader(s.fs, loaderCfg)

	return s, nil
}

// Load reads and renders a single document relative to the base path.
func (s *Service) Load(ctx context.Context, path string) (*interfaces.Document, error) {
	result, err := s.loader.LoadFile(ctx, normalisePath(path))
	if err != nil {
		return nil, err
	}
	if err := s.renderDocument(ctx, result.Document); err != nil {
		return nil, err
	}
	return result.Document, nil
}

// LoadDirectory reads and renders every matching document within dir.
func (s *Service) LoadDirectory(ctx context.Context, dir string, params LoadParams) ([]*interfaces.Document, error) {
	results, err := s.loader.LoadDirectory(ctx, normalisePath(dir), params)
	if err != nil {
		s.logger.Error("markdown.load_directory.failed", "dir", dir, "error", err)
		return nil, err
	}

	docs := make([]*interfaces.Document, 0, len(results))
	for _, result := range results {
		if err := s.renderDocument(ctx, result.Document); err != nil {
			return nil, err
		}
		docs = append(docs, result.Document)
	}
	s.logger.Debug("markdown.load_directory.completed", "dir", dir, "documents", len(docs))
	return docs, nil
}

// LoadDocuments loads the whole base path. It lets the service act as the
// document source of the content tree.
func (s *Service) LoadDocuments(ctx context.Context) ([]*interfaces.Document, error) {
	return s.LoadDirectory(ctx, ".", LoadParams{})
}

// Render parses Markdown bytes into HTML using the configured parser.
func (s *Service) Render(ctx context.Context, markdown []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.parser.Parse(markdown)
}

// RenderDocument renders doc.Body and stores the result on doc.BodyHTML.
func (s *Service) RenderDocument(ctx context.Context, doc *interfaces.Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if err := s.renderDocument(ctx, doc); err != nil {
		return nil, err
	}
	return doc.BodyHTML, nil
}

// PreprocessSource applies the configured preprocessor to a raw document,
// regardless of PreserveWhitespace.
func (s *Service) PreprocessSource(source string) string {
	if s.preprocessor == nil {
		return source
	}
	return s.preprocessor.Preprocess(source)
}

func (s *Service) renderDocument(ctx context.Context, doc *interfaces.Document) error {
	html, err := s.Render(ctx, doc.Body)
	if err != nil {
		return fmt.Errorf("markdown render document %s: %w", doc.FilePath, err)
	}
	doc.BodyHTML = html
	return nil
}

func normalisePath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "."
	}
	return path
}

func prepareFilesystem(basePath string) (fs.FS, error) {
	if strings.TrimSpace(basePath) == "" {
		basePath = "."
	}
	if _, err := os.Stat(basePath); err != nil {
		return nil, fmt.Errorf("markdown service: stat base path %s: %w", basePath, err)
	}
	return os.DirFS(basePath), nil
}
