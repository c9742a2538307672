package commands

import (
	"strings"

	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
)

// CommandLogger returns the logger for the handlers of one command module.
// Loggers are named artia.commands.<module>; "contact" and "content" are the
// modules wired by the container.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	module = strings.ToLower(strings.TrimSpace(module))
	name := "artia.commands"
	if module != "" {
		name += "." + module
	}
	logger := logging.ModuleLogger(provider, name)
	if module == "" {
		return logger
	}
	return logging.WithFields(logger, map[string]any{"command_module": module})
}
