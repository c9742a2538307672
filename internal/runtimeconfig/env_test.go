package runtimeconfig_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-artia/internal/runtimeconfig"
)

func TestFromEnvAppliesKeys(t *testing.T) {
	env := map[string]string{
		"ARTIA_SITE_NAME":                    "  Ink & Paper ",
		"ARTIA_LAYOUT_HOME_LEFT":             "navigation,author",
		"ARTIA_LAYOUT_MODE":                  "app",
		"ARTIA_FEATURED_BOOK_CODES":          "dune, ,foundation",
		"ARTIA_RECENT_LIMIT":                 "3",
		"ARTIA_CONTACT_ENABLED":              "true",
		"ARTIA_MAIL_TO":                      "a@example.com,b@example.com",
		"ARTIA_MAIL_SMTP_PORT":               "2525",
		"ARTIA_MARKDOWN_PRESERVE_WHITESPACE": "false",
		"ARTIA_CACHE_TTL":                    "90s",
		"ARTIA_STORAGE_DRIVER":               "sqlite",
		"ARTIA_STORAGE_DSN":                  "file:artia.db",
	}

	cfg, err := runtimeconfig.FromEnv(runtimeconfig.MapLookup(env))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Site.Name != "Ink & Paper" {
		t.Fatalf("unexpected site name %q", cfg.Site.Name)
	}
	if cfg.Layout.HomeLeft != "navigation,author" || cfg.Layout.Mode != "app" {
		t.Fatalf("unexpected layout %+v", cfg.Layout)
	}
	if len(cfg.Featured.BookCodes) != 2 || cfg.Featured.BookCodes[1] != "foundation" {
		t.Fatalf("unexpected book codes %v", cfg.Featured.BookCodes)
	}
	if cfg.Recent.Limit != 3 || !cfg.Contact.Enabled || len(cfg.Mail.To) != 2 {
		t.Fatalf("unexpected recent/contact/mail %+v %+v %+v", cfg.Recent, cfg.Contact, cfg.Mail)
	}
	if cfg.Mail.SMTP.Port != 2525 || cfg.Mail.SMTP.Host != "smtp.gmail.com" {
		t.Fatalf("unexpected smtp %+v", cfg.Mail.SMTP)
	}
	if cfg.Markdown.PreserveWhitespace {
		t.Fatalf("expected whitespace preservation disabled")
	}
	if cfg.Cache.DefaultTTL != 90*time.Second {
		t.Fatalf("unexpected ttl %s", cfg.Cache.DefaultTTL)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected env config to validate, got %v", err)
	}
}

func TestFromEnvReportsMalformedValues(t *testing.T) {
	env := map[string]string{
		"ARTIA_RECENT_LIMIT":    "many",
		"ARTIA_CONTACT_ENABLED": "yes please",
	}
	cfg, err := runtimeconfig.FromEnv(runtimeconfig.MapLookup(env))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	for _, key := range []string{"ARTIA_RECENT_LIMIT", "ARTIA_CONTACT_ENABLED"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected error to name %s, got %v", key, err)
		}
	}
	if cfg.Recent.Limit != 5 {
		t.Fatalf("expected default recent limit to survive, got %d", cfg.Recent.Limit)
	}
}

func TestFromEnvKeyNames(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value string
		check func(runtimeconfig.Config) bool
	}{
		{"derived nested key", "ARTIA_MARKDOWN_TAB_WIDTH", "2", func(c runtimeconfig.Config) bool { return c.Markdown.TabWidth == 2 }},
		{"explicit locale key", "ARTIA_DEFAULT_LOCALE", " en ", func(c runtimeconfig.Config) bool { return c.Site.DefaultLocale == "en" }},
		{"explicit parser key", "ARTIA_MARKDOWN_SANITIZE", "true", func(c runtimeconfig.Config) bool { return c.Markdown.Parser.Sanitize }},
		{"explicit ttl key", "ARTIA_CACHE_TTL", "2m", func(c runtimeconfig.Config) bool { return c.Cache.DefaultTTL == 2*time.Minute }},
		{"raw slot keeps spaces", "ARTIA_LAYOUT_READ_LEFT", " toc ", func(c runtimeconfig.Config) bool { return c.Layout.ReadLeft == " toc " }},
		{"log focus list", "ARTIA_LOG_FOCUS", "content, http", func(c runtimeconfig.Config) bool {
			return strings.Join(c.Logging.Focus, "|") == "content|http"
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := runtimeconfig.FromEnv(runtimeconfig.MapLookup(map[string]string{tc.key: tc.value}))
			if err != nil {
				t.Fatalf("FromEnv: %v", err)
			}
			if !tc.check(cfg) {
				t.Fatalf("%s=%q was not applied: %+v", tc.key, tc.value, cfg)
			}
		})
	}
}

func TestFromEnvReadsProcessEnvironment(t *testing.T) {
	t.Setenv("ARTIA_SITE_NAME", "Process Site")
	t.Setenv("ARTIA_THEME", "dark")
	t.Setenv("ARTIA_MAIL_SMTP_PORT", "2526")
	t.Setenv("ARTIA_FEATURE_THEMES", "true")

	cfg, err := runtimeconfig.FromEnv(nil)
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Site.Name != "Process Site" || cfg.Theme.Name != "dark" {
		t.Fatalf("unexpected site/theme %q %q", cfg.Site.Name, cfg.Theme.Name)
	}
	if cfg.Mail.SMTP.Port != 2526 || !cfg.Features.Themes {
		t.Fatalf("unexpected smtp/features %+v %+v", cfg.Mail.SMTP, cfg.Features)
	}
	if cfg.Site.DefaultLocale != "zh-TW" {
		t.Fatalf("expected default locale to survive, got %q", cfg.Site.DefaultLocale)
	}
}

func TestFromEnvAppliesGoodKeysAlongsideBadOnes(t *testing.T) {
	env := map[string]string{
		"ARTIA_CACHE_TTL":    "soon",
		"ARTIA_SITE_NAME":    "Still Applied",
		"ARTIA_TAB_WIDTH":    "ignored",
		"ARTIA_RECENT_LIMIT": "7",
	}
	cfg, err := runtimeconfig.FromEnv(runtimeconfig.MapLookup(env))
	if err == nil || !strings.Contains(err.Error(), "ARTIA_CACHE_TTL") {
		t.Fatalf("expected ttl error, got %v", err)
	}
	if cfg.Site.Name != "Still Applied" || cfg.Recent.Limit != 7 {
		t.Fatalf("expected good keys applied, got %q %d", cfg.Site.Name, cfg.Recent.Limit)
	}
	if cfg.Cache.DefaultTTL != runtimeconfig.DefaultConfig().Cache.DefaultTTL {
		t.Fatalf("expected default ttl to survive, got %s", cfg.Cache.DefaultTTL)
	}
}

func TestReadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("ARTIA_THEME=dark\nARTIA_RECENT_LIMIT=8\n"), 0o600); err != nil {
		t.Fatalf("write env: %v", err)
	}

	values, err := runtimeconfig.ReadDotEnv(path, filepath.Join(dir, "missing.env"))
	if err != nil {
		t.Fatalf("ReadDotEnv: %v", err)
	}
	cfg, err := runtimeconfig.FromEnv(runtimeconfig.MapLookup(values))
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.Theme.Name != "dark" || cfg.Recent.Limit != 8 {
		t.Fatalf("unexpected config from dotenv: theme=%q limit=%d", cfg.Theme.Name, cfg.Recent.Limit)
	}
}

func TestLoadDotEnvSkipsMissingFiles(t *testing.T) {
	if err := runtimeconfig.LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected missing file to be skipped, got %v", err)
	}
}

func TestSplitList(t *testing.T) {
	if got := runtimeconfig.SplitList(" , "); got != nil {
		t.Fatalf("expected nil for blank list, got %v", got)
	}
	got := runtimeconfig.SplitList("a, b,,c ")
	if strings.Join(got, "|") != "a|b|c" {
		t.Fatalf("unexpected split %v", got)
	}
}
