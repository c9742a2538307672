package runtimeconfig

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment key read by FromEnv.
const EnvPrefix = "ARTIA_"

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envKey binds a config path to its environment variable. Keys without an
// explicit name use the path upper-cased with dots turned into underscores.
type envKey struct {
	path string
	name string
	// raw keeps surrounding whitespace, used for slot values that are
	// trimmed later by the layout parser.
	raw bool
}

func (k envKey) envName() string {
	if k.name != "" {
		return EnvPrefix + k.name
	}
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(k.path, ".", "_"))
}

var envKeys = []envKey{
	{path: "site.name"},
	{path: "site.slogan"},
	{path: "site.description"},
	{path: "site.url"},
	{path: "site.default_locale", name: "DEFAULT_LOCALE"},
	{path: "site.copyright", name: "COPYRIGHT"},

	{path: "http.addr"},
	{path: "http.base_path"},

	{path: "theme.name", name: "THEME"},
	{path: "theme.variant"},
	{path: "theme.base_path", name: "THEME_PATH"},
	{path: "theme.css_prefix"},

	{path: "layout.mode"},
	{path: "layout.home_top", raw: true},
	{path: "layout.home_left", raw: true},
	{path: "layout.home_center", raw: true},
	{path: "layout.home_right", raw: true},
	{path: "layout.home_bottom", raw: true},
	{path: "layout.read_top", raw: true},
	{path: "layout.read_left", raw: true},
	{path: "layout.read_center", raw: true},
	{path: "layout.read_right", raw: true},
	{path: "layout.read_bottom", raw: true},

	{path: "hero.title"},
	{path: "hero.description"},
	{path: "hero.cta_primary"},
	{path: "hero.cta_secondary"},

	{path: "author.name"},
	{path: "author.bio"},
	{path: "author.avatar"},

	{path: "featured.section", name: "SECTION_FEATURED"},
	{path: "featured.book_codes"},
	{path: "recent.limit"},

	{path: "contact.enabled"},
	{path: "mail.to"},
	{path: "mail.from_name"},
	{path: "mail.from_email"},
	{path: "mail.subject_prefix"},
	{path: "mail.smtp.host"},
	{path: "mail.smtp.port"},
	{path: "mail.smtp.user"},
	{path: "mail.smtp.password", name: "MAIL_SMTP_PASS", raw: true},

	{path: "markdown.content_dir"},
	{path: "markdown.pattern"},
	{path: "markdown.recursive"},
	{path: "markdown.preserve_whitespace"},
	{path: "markdown.tab_width"},
	{path: "markdown.include_drafts"},
	{path: "markdown.parser.extensions", name: "MARKDOWN_EXTENSIONS"},
	{path: "markdown.parser.sanitize", name: "MARKDOWN_SANITIZE"},
	{path: "markdown.parser.hard_wraps", name: "MARKDOWN_HARD_WRAPS"},
	{path: "markdown.parser.safe_mode", name: "MARKDOWN_SAFE_MODE"},

	{path: "storage.driver"},
	{path: "storage.dsn"},
	{path: "cache.enabled"},
	{path: "cache.default_ttl", name: "CACHE_TTL"},

	{path: "logging.provider", name: "LOG_PROVIDER"},
	{path: "logging.level", name: "LOG_LEVEL"},
	{path: "logging.format", name: "LOG_FORMAT"},
	{path: "logging.focus", name: "LOG_FOCUS"},
	{path: "logging.add_source", name: "LOG_ADD_SOURCE"},

	{path: "features.themes", name: "FEATURE_THEMES"},
	{path: "features.advanced_cache", name: "FEATURE_ADVANCED_CACHE"},
	{path: "features.logger", name: "FEATURE_LOGGER"},
}

// FromEnv starts from DefaultConfig and applies every ARTIA_* key. A nil
// lookup reads the process environment. Unset keys keep their defaults.
// Malformed numbers, booleans and durations are collected into one error
// naming each key, and the remaining keys are still applied.
func FromEnv(lookup LookupFunc) (Config, error) {
	source := newEnvViper(lookup)
	clean := viper.New()

	var errs []error
	for _, key := range envKeys {
		if !source.IsSet(key.path) {
			continue
		}
		value := source.GetString(key.path)
		if !key.raw {
			value = strings.TrimSpace(value)
		}
		if err := checkValue(key.path, value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", key.envName(), err))
			continue
		}
		clean.Set(key.path, value)
	}

	cfg := DefaultConfig()
	if err := clean.Unmarshal(&cfg, viper.DecodeHook(decodeHook())); err != nil {
		errs = append(errs, err)
	}
	return cfg, errors.Join(errs...)
}

func newEnvViper(lookup LookupFunc) *viper.Viper {
	v := viper.New()
	if lookup != nil {
		for _, key := range envKeys {
			if value, ok := lookup(key.envName()); ok {
				v.Set(key.path, value)
			}
		}
		return v
	}

	v.SetEnvPrefix(strings.TrimSuffix(EnvPrefix, "_"))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AllowEmptyEnv(true)
	for _, key := range envKeys {
		if key.name == "" {
			_ = v.BindEnv(key.path)
			continue
		}
		_ = v.BindEnv(key.path, key.envName())
	}
	return v
}

// checkValue decodes a single value into a scratch config so a bad key can
// be reported and skipped without losing the others.
func checkValue(path, value string) error {
	var scratch Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decodeHook(),
		WeaklyTypedInput: true,
		Result:           &scratch,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(nestValue(path, value))
}

func nestValue(path, value string) map[string]any {
	parts := strings.Split(path, ".")
	var node any = value
	for i := len(parts) - 1; i >= 0; i-- {
		node = map[string]any{parts[i]: node}
	}
	return node.(map[string]any)
}

func decodeHook() mapstructure.DecodeHookFunc {
	return mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		stringToListHook,
	)
}

var stringSliceType = reflect.TypeOf([]string(nil))

func stringToListHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to != stringSliceType {
		return data, nil
	}
	if list := SplitList(data.(string)); list != nil {
		return list, nil
	}
	return []string{}, nil
}

// MapLookup adapts a map, such as the result of ReadDotEnv, to LookupFunc.
func MapLookup(values map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		value, ok := values[key]
		return value, ok
	}
}

// LoadDotEnv loads the given .env files into the process environment without
// overriding variables that are already set. Missing files are skipped. With
// no paths it loads ".env" from the working directory.
func LoadDotEnv(paths ...string) error {
	existing := existingFiles(paths)
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// ReadDotEnv parses .env files without touching the process environment.
func ReadDotEnv(paths ...string) (map[string]string, error) {
	existing := existingFiles(paths)
	if len(existing) == 0 {
		return map[string]string{}, nil
	}
	return godotenv.Read(existing...)
}

func existingFiles(paths []string) []string {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			out = append(out, path)
		}
	}
	return out
}

// SplitList splits a comma separated value, dropping blank entries.
func SplitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
