package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-artia/pkg/interfaces"
)

const (
	rootModule     = "artia"
	layoutModule   = "artia.layout"
	contentModule  = "artia.content"
	markdownModule = "artia.markdown"
	contactModule  = "artia.contact"
	themesModule   = "artia.themes"
	httpModule     = "artia.http"
)

const (
	fieldContentPath = "content_path"
	fieldPage        = "page"
	fieldPosition    = "position"
)

// ModuleLogger returns a logger scoped to module. A nil provider yields a
// no-op logger. The module name is attached as the "module" field.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// LayoutLogger returns the logger used by the slot resolver.
func LayoutLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, layoutModule)
}

// ContentLogger returns the logger used by the content store.
func ContentLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contentModule)
}

// MarkdownLogger returns the logger used by markdown loading and rendering.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// ContactLogger returns the logger used by the contact form workflow.
func ContactLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, contactModule)
}

// ThemesLogger returns the logger used by theme selection.
func ThemesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, themesModule)
}

// HTTPLogger returns the logger used by the HTTP adapters.
func HTTPLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, httpModule)
}

// WithContentPath tags entries with the content path being served or loaded.
func WithContentPath(logger interfaces.Logger, path string) interfaces.Logger {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return logger
	}
	return WithFields(logger, map[string]any{fieldContentPath: trimmed})
}

// WithSlot tags entries with a layout page/position pair. Empty values are ignored.
func WithSlot(logger interfaces.Logger, page, position string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(page); trimmed != "" {
		fields[fieldPage] = trimmed
	}
	if trimmed := strings.TrimSpace(position); trimmed != "" {
		fields[fieldPosition] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
