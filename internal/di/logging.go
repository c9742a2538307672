package di

import (
	"strings"

	"github.com/goliatone/go-artia/internal/logging/console"
	"github.com/goliatone/go-artia/internal/logging/gologger"
	"github.com/goliatone/go-artia/internal/runtimeconfig"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

func newLoggerProvider(cfg runtimeconfig.LoggingConfig, site string) (interfaces.LoggerProvider, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
			Focus:     cfg.Focus,
			Site:      site,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	default:
		opts := console.Options{}
		if level, ok := console.ParseLevel(cfg.Level); ok {
			opts.MinLevel = &level
		}
		return console.NewProvider(opts), nil
	}
}
