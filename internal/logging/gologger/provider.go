package gologger

import (
	"context"
	"fmt"
	"maps"
	"strings"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

// ModuleRoot prefixes every module logger name handed out by the site.
const ModuleRoot = "artia"

// Config selects the go-logger backend settings.
type Config struct {
	Level     string
	Format    string
	AddSource bool
	// Focus limits output to the listed modules. Short names such as
	// "content" are expanded to "artia.content".
	Focus []string
	// Site is attached as the "site" field on every logger when set.
	Site string
}

// Provider hands out go-logger child loggers adapted to interfaces.Logger.
type Provider struct {
	root   *glog.BaseLogger
	fields map[string]any
}

// NewProvider builds a go-logger root logger from cfg. Format defaults to JSON.
func NewProvider(cfg Config) (*Provider, error) {
	options, err := loggerOptions(cfg)
	if err != nil {
		return nil, err
	}

	root := glog.NewLogger(options...)
	if focus := FocusModules(cfg.Focus); len(focus) > 0 {
		root.Focus(focus...)
	}

	provider := &Provider{root: root}
	if site := strings.TrimSpace(cfg.Site); site != "" {
		provider.fields = map[string]any{"site": site}
	}
	return provider, nil
}

func loggerOptions(cfg Config) ([]glog.Option, error) {
	var options []glog.Option
	if level := normalizeLevel(cfg.Level); level != "" {
		options = append(options, glog.WithLevel(level))
	}

	switch format := strings.ToLower(strings.TrimSpace(cfg.Format)); format {
	case "", "json":
		options = append(options, glog.WithLoggerTypeJSON())
	case "console":
		options = append(options, glog.WithLoggerTypeConsole())
	case "pretty":
		options = append(options, glog.WithLoggerTypePretty())
	default:
		return nil, fmt.Errorf("logging: unsupported go-logger format %q", cfg.Format)
	}

	if cfg.AddSource {
		options = append(options, glog.WithAddSource(true))
	}
	return options, nil
}

// GetLogger returns the named child logger, or the root logger for "".
func (p *Provider) GetLogger(name string) interfaces.Logger {
	if p == nil || p.root == nil {
		return logging.NoOp()
	}

	var logger interfaces.Logger
	if name = strings.TrimSpace(name); name == "" {
		logger = wrap(p.root)
	} else {
		logger = wrap(p.root.GetLogger(name))
	}
	if len(p.fields) > 0 {
		logger = logging.WithFields(logger, p.fields)
	}
	return logger
}

// FocusModules expands short module names to their logger names and drops
// blanks and duplicates.
func FocusModules(names []string) []string {
	out := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if name != ModuleRoot && !strings.HasPrefix(name, ModuleRoot+".") {
			name = ModuleRoot + "." + name
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func wrap(inner glog.Logger) interfaces.Logger {
	if inner == nil {
		return logging.NoOp()
	}
	return &adapter{inner: inner}
}

type adapter struct {
	inner glog.Logger
}

var (
	_ interfaces.Logger       = (*adapter)(nil)
	_ interfaces.FieldsLogger = (*adapter)(nil)
)

func (l *adapter) Trace(msg string, args ...any) { l.inner.Trace(msg, args...) }
func (l *adapter) Debug(msg string, args ...any) { l.inner.Debug(msg, args...) }
func (l *adapter) Info(msg string, args ...any)  { l.inner.Info(msg, args...) }
func (l *adapter) Warn(msg string, args ...any)  { l.inner.Warn(msg, args...) }
func (l *adapter) Error(msg string, args ...any) { l.inner.Error(msg, args...) }
func (l *adapter) Fatal(msg string, args ...any) { l.inner.Fatal(msg, args...) }

// WithFields forwards to glog.FieldsLogger. Loggers without field support
// are returned unchanged.
func (l *adapter) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	if with, ok := l.inner.(glog.FieldsLogger); ok {
		return wrap(with.WithFields(maps.Clone(fields)))
	}
	return l
}

func (l *adapter) WithContext(ctx context.Context) interfaces.Logger {
	if ctx == nil {
		return l
	}
	return wrap(l.inner.WithContext(ctx))
}

func normalizeLevel(level string) string {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return glog.Trace
	case "debug":
		return glog.Debug
	case "info":
		return glog.Info
	case "warn", "warning":
		return glog.Warn
	case "error":
		return glog.Error
	case "fatal":
		return glog.Fatal
	default:
		return ""
	}
}
