package themes

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
	gotheme "github.com/goliatone/go-theme"
)

// ErrThemeRequired is returned when neither a name nor a default theme is set.
var ErrThemeRequired = errors.New("themes: theme name required")

// ManifestLoader reads the go-theme manifest stored in a theme directory.
type ManifestLoader interface {
	Load(themePath string) (*gotheme.Manifest, error)
}

// FSManifestLoader loads manifests from the local filesystem.
type FSManifestLoader struct{}

// Load reads the manifest at the root of themePath.
func (FSManifestLoader) Load(themePath string) (*gotheme.Manifest, error) {
	cleaned := strings.TrimSpace(themePath)
	if cleaned == "" {
		return nil, fmt.Errorf("theme path required")
	}
	return gotheme.LoadDir(os.DirFS(filepath.Clean(cleaned)), ".")
}

// SelectorConfig configures a Selector.
type SelectorConfig struct {
	// BasePath holds one directory per theme. Empty disables manifest loading.
	BasePath       string
	DefaultTheme   string
	DefaultVariant string
	// CSSPrefix is prepended to CSS variable names.
	CSSPrefix string
	// ClassPrefix is the first segment of generated class names.
	ClassPrefix string
}

// Theme is the resolved theme handed to renderers.
type Theme struct {
	Name         string            `json:"name"`
	Variant      string            `json:"variant,omitempty"`
	Tokens       map[string]string `json:"tokens"`
	CSSVariables map[string]string `json:"css_variables"`
	// Manifest reports whether tokens came from a go-theme manifest.
	Manifest bool `json:"manifest"`

	namer     ClassNamer
	selection *gotheme.Selection
}

// Classes returns the class namer bound to the theme.
func (t *Theme) Classes() ClassNamer {
	return t.namer
}

// AssetURL resolves an asset key declared in the manifest, or "".
func (t *Theme) AssetURL(key string) string {
	if t == nil || t.selection == nil {
		return ""
	}
	url, _ := t.selection.Asset(key)
	return url
}

// Selector resolves themes by name. Manifests are loaded once per theme and
// cached; a theme without a readable manifest still yields class names.
type Selector struct {
	cfg      SelectorConfig
	loader   ManifestLoader
	logger   interfaces.Logger
	registry *gotheme.MemoryRegistry

	mu      sync.Mutex
	loaded  map[string]bool
	missing map[string]error
}

// SelectorOption customises a Selector.
type SelectorOption func(*Selector)

// WithManifestLoader replaces the filesystem manifest loader.
func WithManifestLoader(loader ManifestLoader) SelectorOption {
	return func(s *Selector) {
		if loader != nil {
			s.loader = loader
		}
	}
}

// WithLogger sets the logger used to report missing manifests.
func WithLogger(logger interfaces.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = logging.Ensure(logger)
	}
}

// NewSelector builds a Selector.
func NewSelector(cfg SelectorConfig, opts ...SelectorOption) *Selector {
	if strings.TrimSpace(cfg.DefaultTheme) == "" {
		cfg.DefaultTheme = DefaultTheme
	}
	s := &Selector{
		cfg:      cfg,
		loader:   FSManifestLoader{},
		logger:   logging.NoOp(),
		registry: gotheme.NewRegistry(),
		loaded:   map[string]bool{},
		missing:  map[string]error{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultTheme returns the configured default theme name.
func (s *Selector) DefaultTheme() string {
	return s.cfg.DefaultTheme
}

// Select resolves name (or the default theme) and variant.
func (s *Selector) Select(name, variant string) (*Theme, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = strings.TrimSpace(s.cfg.DefaultTheme)
	}
	if name == "" {
		return nil, ErrThemeRequired
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = strings.TrimSpace(s.cfg.DefaultVariant)
	}

	theme := &Theme{
		Name:         name,
		Variant:      variant,
		Tokens:       map[string]string{},
		CSSVariables: map[string]string{},
		namer:        ClassNamer{Prefix: s.cfg.ClassPrefix, Theme: name},
	}

	if !s.ensureManifest(name) {
		return theme, nil
	}

	selector := gotheme.Selector{
		Registry:       s.registry,
		DefaultTheme:   s.cfg.DefaultTheme,
		DefaultVariant: s.cfg.DefaultVariant,
	}
	selection, err := selector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("select theme %s: %w", name, err)
	}

	theme.Variant = selection.Variant
	if tokens := selection.Tokens(); tokens != nil {
		theme.Tokens = tokens
	}
	if vars := selection.CSSVariables(s.cfg.CSSPrefix); vars != nil {
		theme.CSSVariables = vars
	}
	theme.Manifest = true
	theme.selection = selection
	return theme, nil
}

// ensureManifest registers the manifest of name once. It reports whether a
// manifest is available.
func (s *Selector) ensureManifest(name string) bool {
	if strings.TrimSpace(s.cfg.BasePath) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded[name] {
		return true
	}
	if _, failed := s.missing[name]; failed {
		return false
	}

	themePath := filepath.Join(s.cfg.BasePath, name)
	manifest, err := s.loader.Load(themePath)
	if err == nil {
		normalized := *manifest
		normalized.Name = name
		if strings.TrimSpace(normalized.Version) == "" {
			normalized.Version = "0.0.0"
		}
		err = s.registry.Register(&normalized)
	}
	if err != nil {
		s.missing[name] = err
		s.logger.Warn("themes.manifest.unavailable", "theme", name, "path", themePath, "error", err)
		return false
	}

	s.loaded[name] = true
	return true
}
