package commands

import (
	"context"
	"time"

	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const defaultHandlerTimeout = 15 * time.Second

// HandlerOption configures a Handler.
type HandlerOption[T command.Message] func(*Handler[T])

// ErrorClassifier lets a command module tag its own domain errors before the
// generic execution wrapper runs. Returning nil keeps the default handling.
type ErrorClassifier func(err error) error

// Handler runs a command function with message validation, a deadline,
// structured logging and go-errors categories applied around it.
type Handler[T command.Message] struct {
	exec      command.CommandFunc[T]
	logger    interfaces.Logger
	timeout   time.Duration
	operation string
	classify  ErrorClassifier
	fields    func(T) map[string]any
}

// NewHandler wraps fn. It panics when fn is nil.
func NewHandler[T command.Message](fn command.CommandFunc[T], opts ...HandlerOption[T]) *Handler[T] {
	if fn == nil {
		panic("commands: handler function cannot be nil")
	}
	h := &Handler[T]{
		exec:    fn,
		logger:  logging.NoOp(),
		timeout: defaultHandlerTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(h)
		}
	}
	return h
}

// Execute implements command.Commander[T].
func (h *Handler[T]) Execute(ctx context.Context, msg T) error {
	if err := command.ValidateMessage(msg); err != nil {
		return validationFailed(err)
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := h.deadline(ctx)
	defer cancel()
	if err := ctx.Err(); err != nil {
		return contextFailed(err)
	}

	logger := h.scopedLogger(msg).WithContext(ctx)
	logger.Debug("command.execute.start")

	if err := h.exec(ctx, msg); err != nil {
		logger.Error("command.execute.failed", "error", err)
		if h.classify != nil {
			if tagged := h.classify(err); tagged != nil {
				return tagged
			}
		}
		return executionFailed(err)
	}
	if err := ctx.Err(); err != nil {
		logger.Error("command.execute.context_error", "error", err)
		return contextFailed(err)
	}

	logger.Info("command.execute.success")
	return nil
}

func (h *Handler[T]) scopedLogger(msg T) interfaces.Logger {
	fields := map[string]any{}
	if h.fields != nil {
		for key, value := range h.fields(msg) {
			fields[key] = value
		}
	}
	fields["command"] = command.GetMessageType(msg)
	if h.operation != "" {
		fields["operation"] = h.operation
	}
	return logging.WithFields(h.logger, fields)
}

func (h *Handler[T]) deadline(ctx context.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, h.timeout)
}

// WithTimeout overrides the execution deadline. Zero or negative disables it.
func WithTimeout[T command.Message](timeout time.Duration) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.timeout = max(timeout, 0)
	}
}

// WithLogger sets the execution logger. Nil restores the no-op logger.
func WithLogger[T command.Message](logger interfaces.Logger) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.logger = logging.Ensure(logger)
	}
}

// WithOperation names the operation in every log entry.
func WithOperation[T command.Message](operation string) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.operation = operation
	}
}

// WithErrorClassifier installs a domain error classifier.
func WithErrorClassifier[T command.Message](classify ErrorClassifier) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.classify = classify
	}
}

// WithMessageFields adds per-message log fields.
func WithMessageFields[T command.Message](fn func(T) map[string]any) HandlerOption[T] {
	return func(h *Handler[T]) {
		h.fields = fn
	}
}
