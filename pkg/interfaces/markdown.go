package interfaces

import "time"

// MarkdownParser converts raw Markdown bytes into HTML.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// SourcePreprocessor rewrites a raw document before front matter extraction
// and rendering. Implementations must leave front matter intact.
type SourcePreprocessor interface {
	Preprocess(document string) string
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// Document represents a Markdown file with parsed metadata and content.
type Document struct {
	FilePath     string
	FrontMatter  FrontMatter
	Body         []byte
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores the SHA-256 digest of the file as read from disk, before
	// any preprocessing.
	Checksum []byte
}

// FrontMatter models the metadata block at the top of a content file. Known
// keys are lifted into fields; everything else lands in Custom.
type FrontMatter struct {
	Title        string         `yaml:"title" json:"title"`
	Slug         string         `yaml:"slug" json:"slug"`
	Summary      string         `yaml:"summary" json:"summary"`
	Type         string         `yaml:"type" json:"type"`
	Code         string         `yaml:"code" json:"code"`
	SortAnchor   []float64      `yaml:"sortAnchor" json:"sortAnchor"`
	PasswordHash string         `yaml:"passwordHash" json:"-"`
	Tags         []string       `yaml:"tags" json:"tags"`
	Author       string         `yaml:"author" json:"author"`
	Date         time.Time      `yaml:"date" json:"date"`
	Draft        bool           `yaml:"draft" json:"draft"`
	Custom       map[string]any `yaml:",inline" json:"custom"`
	Raw          map[string]any `yaml:"-" json:"raw"`
}
