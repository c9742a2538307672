package markdown

import (
	"bytes"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-artia/pkg/interfaces"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured front matter, the Markdown
// body without delimiters, and any error encountered.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles a document from a file path, source bytes and
// modification time. BodyHTML is left empty for the caller to render.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	fm, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, err
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  fm,
		Body:         body,
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title        string         `yaml:"title"`
	Slug         string         `yaml:"slug"`
	Summary      string         `yaml:"summary"`
	Type         string         `yaml:"type"`
	Code         string         `yaml:"code"`
	SortAnchor   []float64      `yaml:"sortAnchor"`
	PasswordHash string         `yaml:"passwordHash"`
	Tags         []string       `yaml:"tags"`
	Author       string         `yaml:"author"`
	Date         time.Time      `yaml:"date"`
	Draft        bool           `yaml:"draft"`
	Custom       map[string]any `yaml:",inline"`
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	custom := maps.Clone(env.Custom)
	if custom == nil {
		custom = map[string]any{}
	}

	raw := make(map[string]any, len(custom)+10)
	maps.Copy(raw, custom)

	set := func(key, value string) {
		if value != "" {
			raw[key] = value
		}
	}
	set("title", env.Title)
	set("slug", env.Slug)
	set("summary", env.Summary)
	set("type", env.Type)
	set("code", env.Code)
	set("author", env.Author)
	if env.SortAnchor != nil {
		raw["sortAnchor"] = slices.Clone(env.SortAnchor)
	}
	if len(env.Tags) > 0 {
		raw["tags"] = slices.Clone(env.Tags)
	}
	if !env.Date.IsZero() {
		raw["date"] = env.Date
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:        env.Title,
		Slug:         env.Slug,
		Summary:      env.Summary,
		Type:         env.Type,
		Code:         env.Code,
		SortAnchor:   slices.Clone(env.SortAnchor),
		PasswordHash: env.PasswordHash,
		Tags:         slices.Clone(env.Tags),
		Author:       env.Author,
		Date:         env.Date,
		Draft:        env.Draft,
		Custom:       custom,
		Raw:          raw,
	}
}
