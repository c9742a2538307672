package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrThemesFeatureRequired             = errors.New("artia config: themes feature must be enabled to load theme manifests")
	ErrAdvancedCacheRequiresEnabledCache = errors.New("artia config: advanced cache feature requires cache to be enabled")
	ErrMarkdownContentDirRequired        = errors.New("artia config: markdown content directory is required")
	ErrMarkdownTabWidthInvalid           = errors.New("artia config: markdown tab width must be zero or positive")
	ErrRecentLimitInvalid                = errors.New("artia config: recent limit must be zero or positive")
	ErrContactRecipientRequired          = errors.New("artia config: contact form requires at least one mail recipient")
	ErrMailPortInvalid                   = errors.New("artia config: mail smtp port is invalid")
	ErrStorageDriverUnknown              = errors.New("artia config: storage driver is invalid")
	ErrStorageDSNRequired                = errors.New("artia config: storage dsn is required for sql drivers")
	ErrLoggingProviderRequired           = errors.New("artia config: logging provider is required when logging feature is enabled")
	ErrLoggingProviderUnknown            = errors.New("artia config: logging provider is invalid")
	ErrLoggingLevelInvalid               = errors.New("artia config: logging level is invalid")
	ErrLoggingFormatInvalid              = errors.New("artia config: logging format is invalid")
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config aggregates everything the site runtime reads at start-up. Values are
// plain strings and numbers so they map one to one onto environment keys.
type Config struct {
	Site     SiteConfig     `mapstructure:"site"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Layout   LayoutConfig   `mapstructure:"layout"`
	Hero     HeroConfig     `mapstructure:"hero"`
	Author   AuthorConfig   `mapstructure:"author"`
	Featured FeaturedConfig `mapstructure:"featured"`
	Recent   RecentConfig   `mapstructure:"recent"`
	Contact  ContactConfig  `mapstructure:"contact"`
	Mail     MailConfig     `mapstructure:"mail"`
	Markdown MarkdownConfig `mapstructure:"markdown"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Features Features       `mapstructure:"features"`
}

// SiteConfig carries global site metadata.
type SiteConfig struct {
	Name          string `mapstructure:"name"`
	Slogan        string `mapstructure:"slogan"`
	Description   string `mapstructure:"description"`
	URL           string `mapstructure:"url"`
	DefaultLocale string `mapstructure:"default_locale"`
	Copyright     string `mapstructure:"copyright"`
}

// HTTPConfig controls the JSON API listener.
type HTTPConfig struct {
	Addr     string `mapstructure:"addr"`
	BasePath string `mapstructure:"base_path"`
}

// ThemeConfig selects the active theme and where manifests live.
type ThemeConfig struct {
	Name      string `mapstructure:"name"`
	Variant   string `mapstructure:"variant"`
	BasePath  string `mapstructure:"base_path"`
	CSSPrefix string `mapstructure:"css_prefix"`
}

// LayoutConfig holds the raw slot strings, e.g. "navigation,author".
type LayoutConfig struct {
	Mode string `mapstructure:"mode"`

	HomeTop    string `mapstructure:"home_top"`
	HomeLeft   string `mapstructure:"home_left"`
	HomeCenter string `mapstructure:"home_center"`
	HomeRight  string `mapstructure:"home_right"`
	HomeBottom string `mapstructure:"home_bottom"`

	ReadTop    string `mapstructure:"read_top"`
	ReadLeft   string `mapstructure:"read_left"`
	ReadCenter string `mapstructure:"read_center"`
	ReadRight  string `mapstructure:"read_right"`
	ReadBottom string `mapstructure:"read_bottom"`
}

type HeroConfig struct {
	Title        string `mapstructure:"title"`
	Description  string `mapstructure:"description"`
	CTAPrimary   string `mapstructure:"cta_primary"`
	CTASecondary string `mapstructure:"cta_secondary"`
}

type AuthorConfig struct {
	Name   string `mapstructure:"name"`
	Bio    string `mapstructure:"bio"`
	Avatar string `mapstructure:"avatar"`
}

// FeaturedConfig lists the book codes shown in the featured section.
type FeaturedConfig struct {
	Section   string   `mapstructure:"section"`
	BookCodes []string `mapstructure:"book_codes"`
}

type RecentConfig struct {
	Limit int `mapstructure:"limit"`
}

type ContactConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// MailConfig addresses contact form mail. SMTP settings are handed to the
// host mailer untouched.
type MailConfig struct {
	To            []string   `mapstructure:"to"`
	FromName      string     `mapstructure:"from_name"`
	FromEmail     string     `mapstructure:"from_email"`
	SubjectPrefix string     `mapstructure:"subject_prefix"`
	SMTP          SMTPConfig `mapstructure:"smtp"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
}

// MarkdownConfig captures content discovery and rendering behaviour.
type MarkdownConfig struct {
	ContentDir         string               `mapstructure:"content_dir"`
	Pattern            string               `mapstructure:"pattern"`
	Recursive          bool                 `mapstructure:"recursive"`
	PreserveWhitespace bool                 `mapstructure:"preserve_whitespace"`
	TabWidth           int                  `mapstructure:"tab_width"`
	IncludeDrafts      bool                 `mapstructure:"include_drafts"`
	Parser             MarkdownParserConfig `mapstructure:"parser"`
}

// MarkdownParserConfig mirrors interfaces.ParseOptions.
type MarkdownParserConfig struct {
	Extensions []string `mapstructure:"extensions"`
	Sanitize   bool     `mapstructure:"sanitize"`
	HardWraps  bool     `mapstructure:"hard_wraps"`
	SafeMode   bool     `mapstructure:"safe_mode"`
}

// StorageConfig selects where contact submissions are persisted.
type StorageConfig struct {
	Driver string `mapstructure:"driver"`
	DSN    string `mapstructure:"dsn"`
}

type CacheConfig struct {
	Enabled    bool          `mapstructure:"enabled"`
	DefaultTTL time.Duration `mapstructure:"default_ttl"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string   `mapstructure:"provider"`
	Level     string   `mapstructure:"level"`
	Format    string   `mapstructure:"format"`
	AddSource bool     `mapstructure:"add_source"`
	Focus     []string `mapstructure:"focus"`
}

// Features toggles optional modules.
type Features struct {
	Themes        bool `mapstructure:"themes"`
	AdvancedCache bool `mapstructure:"advanced_cache"`
	Logger        bool `mapstructure:"logger"`
}

// DefaultConfig returns the defaults used when no environment is provided.
func DefaultConfig() Config {
	return Config{
		Site: SiteConfig{
			Name:          "Artia",
			DefaultLocale: "zh-TW",
		},
		HTTP: HTTPConfig{
			Addr:     ":8080",
			BasePath: "/api",
		},
		Theme: ThemeConfig{
			Name:      "classic",
			CSSPrefix: "artia",
		},
		Layout: LayoutConfig{
			Mode: "content",
		},
		Recent: RecentConfig{Limit: 5},
		Mail: MailConfig{
			FromName:      "Contact Form",
			SubjectPrefix: "[Contact]",
			SMTP: SMTPConfig{
				Host: "smtp.gmail.com",
				Port: 587,
			},
		},
		Markdown: MarkdownConfig{
			ContentDir:         "content",
			Pattern:            "*.md",
			Recursive:          true,
			PreserveWhitespace: true,
			TabWidth:           4,
		},
		Storage: StorageConfig{Driver: DriverMemory},
		Cache: CacheConfig{
			DefaultTTL: time.Minute,
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs cross-section consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Theme.BasePath) != "" && !cfg.Features.Themes {
		return ErrThemesFeatureRequired
	}
	if cfg.Features.AdvancedCache && !cfg.Cache.Enabled {
		return ErrAdvancedCacheRequiresEnabledCache
	}
	if strings.TrimSpace(cfg.Markdown.ContentDir) == "" {
		return ErrMarkdownContentDirRequired
	}
	if cfg.Markdown.TabWidth < 0 {
		return ErrMarkdownTabWidthInvalid
	}
	if cfg.Recent.Limit < 0 {
		return ErrRecentLimitInvalid
	}
	if cfg.Contact.Enabled && !hasRecipient(cfg.Mail.To) {
		return ErrContactRecipientRequired
	}
	if cfg.Mail.SMTP.Port < 0 || cfg.Mail.SMTP.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrMailPortInvalid, cfg.Mail.SMTP.Port)
	}

	switch driver := NormalizeDriver(cfg.Storage.Driver); driver {
	case DriverMemory:
	case DriverSQLite, DriverPostgres:
		if strings.TrimSpace(cfg.Storage.DSN) == "" {
			return fmt.Errorf("%w: %s", ErrStorageDSNRequired, driver)
		}
	default:
		return fmt.Errorf("%w: %s", ErrStorageDriverUnknown, driver)
	}

	if cfg.Features.Logger {
		provider := normalizeProvider(cfg.Logging.Provider)
		if provider == "" {
			return ErrLoggingProviderRequired
		}
		if !isSupportedProvider(provider) {
			return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
		}
		if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
			return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
		}
		if provider == "gologger" {
			if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
				return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
			}
		}
	}
	return nil
}

// NormalizeDriver lowercases the driver name and maps aliases. Empty means memory.
func NormalizeDriver(driver string) string {
	switch d := strings.ToLower(strings.TrimSpace(driver)); d {
	case "":
		return DriverMemory
	case "sqlite3":
		return DriverSQLite
	case "pg", "postgresql":
		return DriverPostgres
	default:
		return d
	}
}

func hasRecipient(to []string) bool {
	for _, addr := range to {
		if strings.TrimSpace(addr) != "" {
			return true
		}
	}
	return false
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
