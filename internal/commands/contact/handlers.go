package contactcmd

import (
	"context"
	"errors"

	"github.com/goliatone/go-artia/internal/commands"
	"github.com/goliatone/go-artia/internal/contact"
	"github.com/goliatone/go-artia/internal/logging"
	"github.com/goliatone/go-artia/pkg/interfaces"
	command "github.com/goliatone/go-command"
)

const submitOperation = "contact.submit"

var _ command.Commander[SubmitContactCommand] = (*SubmitHandler)(nil)

// SubmitHandler routes SubmitContactCommand through contact.Service.
type SubmitHandler struct {
	inner *commands.Handler[SubmitContactCommand]
}

// NewSubmitHandler binds a handler to service.
func NewSubmitHandler(service contact.Service, logger interfaces.Logger, opts ...commands.HandlerOption[SubmitContactCommand]) *SubmitHandler {
	logger = logging.Ensure(logger)

	exec := func(ctx context.Context, msg SubmitContactCommand) error {
		record, err := service.Submit(ctx, msg.Input())
		if err != nil {
			return err
		}
		if msg.OnSubmitted != nil {
			msg.OnSubmitted(record)
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[SubmitContactCommand]{
		commands.WithLogger[SubmitContactCommand](logger),
		commands.WithOperation[SubmitContactCommand](submitOperation),
		commands.WithMessageFields(func(msg SubmitContactCommand) map[string]any {
			return map[string]any{"subject_length": len(msg.Subject)}
		}),
		commands.WithErrorClassifier[SubmitContactCommand](classify),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &SubmitHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander[SubmitContactCommand].
func (h *SubmitHandler) Execute(ctx context.Context, msg SubmitContactCommand) error {
	return h.inner.Execute(ctx, msg)
}

func classify(err error) error {
	if errors.Is(err, contact.ErrInvalidSubmission) {
		return commands.RejectedInput(err, "contact submission rejected")
	}
	return nil
}
