package commands

import (
	"context"
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

const (
	codeValidation      = "COMMAND_VALIDATION_FAILED"
	codeCanceled        = "COMMAND_CONTEXT_CANCELED"
	codeTimeout         = "COMMAND_CONTEXT_TIMEOUT"
	codeContext         = "COMMAND_CONTEXT_ERROR"
	codeExecution       = "COMMAND_EXECUTION_FAILED"
	codeRejectedByRules = "COMMAND_REJECTED"
)

func validationFailed(err error) error {
	return asValidation(err, "command validation failed", codeValidation)
}

func contextFailed(err error) error {
	switch {
	case errors.Is(err, context.Canceled):
		return asCommand(err, "command execution cancelled", codeCanceled)
	case errors.Is(err, context.DeadlineExceeded):
		return asCommand(err, "command execution deadline exceeded", codeTimeout)
	default:
		return asCommand(err, "command context error", codeContext)
	}
}

func executionFailed(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return contextFailed(err)
	}
	return asCommand(err, "command execution failed", codeExecution)
}

// RejectedInput tags a domain error raised by the command body as a
// validation failure, for input the message-level Validate cannot judge.
func RejectedInput(err error, message string) error {
	if message == "" {
		message = "command input rejected"
	}
	return asValidation(err, message, codeRejectedByRules)
}

func asValidation(err error, message, code string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, message).WithTextCode(code)
}

func asCommand(err error, message, code string) error {
	if err == nil || goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, message).WithTextCode(code)
}
