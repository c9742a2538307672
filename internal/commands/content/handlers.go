package contentcmd

import (
	"context"
	"strings"

	"github.com/goliatone/go-artia/internal/commands"
	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const (
	reloadOperation      = "content.reload"
	defaultReloadCronExp = "@every 5m"
)

var (
	_ command.Commander[ReloadContentCommand] = (*ReloadHandler)(nil)
	_ command.CronCommand                     = (*ReloadHandler)(nil)
)

// Reloader is the slice of content.Service the handler needs.
type Reloader interface {
	Reload(ctx context.Context) error
}

// ReloadOption customises the reload handler.
type ReloadOption func(*ReloadHandler)

// WithCronExpression overrides the schedule used when the handler is registered with cron.
func WithCronExpression(expression string) ReloadOption {
	return func(h *ReloadHandler) {
		if trimmed := strings.TrimSpace(expression); trimmed != "" {
			h.cronConfig.Expression = trimmed
		}
	}
}

// ReloadHandler refreshes the content tree on demand or on a schedule.
type ReloadHandler struct {
	inner      *commands.Handler[ReloadContentCommand]
	cronConfig command.HandlerConfig
}

// NewReloadHandler binds a handler to reloader.
func NewReloadHandler(reloader Reloader, logger interfaces.Logger, opts ...ReloadOption) *ReloadHandler {
	logger = logging.Ensure(logger)
	exec := func(ctx context.Context, _ ReloadContentCommand) error {
		return reloader.Reload(ctx)
	}
	h := &ReloadHandler{
		inner: commands.NewHandler(exec,
			commands.WithLogger[ReloadContentCommand](logger),
			commands.WithOperation[ReloadContentCommand](reloadOperation),
		),
		cronConfig: command.HandlerConfig{Expression: defaultReloadCronExp},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Execute satisfies command.Commander[ReloadContentCommand].
func (h *ReloadHandler) Execute(ctx context.Context, msg ReloadContentCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CronHandler satisfies command.CronCommand.
func (h *ReloadHandler) CronHandler() func() error {
	return func() error {
		return h.Execute(context.Background(), ReloadContentCommand{})
	}
}

// CronOptions satisfies command.CronCommand.
func (h *ReloadHandler) CronOptions() command.HandlerConfig {
	return h.cronConfig
}
