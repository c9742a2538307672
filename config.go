package artia

import "github.com/goliatone/go-artia/internal/runtimeconfig"

var (
	ErrThemesFeatureRequired             = runtimeconfig.ErrThemesFeatureRequired
	ErrAdvancedCacheRequiresEnabledCache = runtimeconfig.ErrAdvancedCacheRequiresEnabledCache
	ErrMarkdownContentDirRequired        = runtimeconfig.ErrMarkdownContentDirRequired
	ErrMarkdownTabWidthInvalid           = runtimeconfig.ErrMarkdownTabWidthInvalid
	ErrRecentLimitInvalid                = runtimeconfig.ErrRecentLimitInvalid
	ErrContactRecipientRequired          = runtimeconfig.ErrContactRecipientRequired
	ErrMailPortInvalid                   = runtimeconfig.ErrMailPortInvalid
	ErrStorageDriverUnknown              = runtimeconfig.ErrStorageDriverUnknown
	ErrStorageDSNRequired                = runtimeconfig.ErrStorageDSNRequired
	ErrLoggingProviderRequired           = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown            = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid               = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid              = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	SiteConfig           = runtimeconfig.SiteConfig
	HTTPConfig           = runtimeconfig.HTTPConfig
	ThemeConfig          = runtimeconfig.ThemeConfig
	LayoutConfig         = runtimeconfig.LayoutConfig
	HeroConfig           = runtimeconfig.HeroConfig
	AuthorConfig         = runtimeconfig.AuthorConfig
	FeaturedConfig       = runtimeconfig.FeaturedConfig
	RecentConfig         = runtimeconfig.RecentConfig
	ContactConfig        = runtimeconfig.ContactConfig
	MailConfig           = runtimeconfig.MailConfig
	SMTPConfig           = runtimeconfig.SMTPConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	StorageConfig        = runtimeconfig.StorageConfig
	CacheConfig          = runtimeconfig.CacheConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
	Features             = runtimeconfig.Features
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// ConfigFromEnv reads ARTIA_* variables from the process environment.
func ConfigFromEnv() (Config, error) {
	return runtimeconfig.FromEnv(nil)
}

// LoadDotEnv loads .env files into the process environment. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	return runtimeconfig.LoadDotEnv(paths...)
}
