package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type pingMessage struct{}

func (pingMessage) Type() string { return "artia.test.ping" }

func (pingMessage) Validate() error { return nil }

type rejectedMessage struct{}

func (rejectedMessage) Type() string { return "artia.test.rejected" }

func (rejectedMessage) Validate() error { return errors.New("invalid") }

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler(func(ctx context.Context, msg pingMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), pingMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuits(t *testing.T) {
	called := false
	h := NewHandler(func(ctx context.Context, msg rejectedMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), rejectedMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("handler must not run when validation fails")
	}
}

func TestHandlerCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := NewHandler(func(ctx context.Context, msg pingMessage) error {
		t.Fatal("handler must not run on a cancelled context")
		return nil
	})

	err := h.Execute(ctx, pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled in chain, got %v", err)
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler(func(ctx context.Context, msg pingMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if !errors.Is(err, execErr) {
		t.Fatalf("expected original error in chain, got %v", err)
	}
}

func TestHandlerErrorClassifier(t *testing.T) {
	domainErr := errors.New("bad input")
	h := NewHandler(func(ctx context.Context, msg pingMessage) error {
		return domainErr
	}, WithErrorClassifier[pingMessage](func(err error) error {
		if errors.Is(err, domainErr) {
			return RejectedInput(err, "")
		}
		return nil
	}))

	err := h.Execute(context.Background(), pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected classifier to tag validation, got %v", err)
	}
}

func TestHandlerTimeout(t *testing.T) {
	h := NewHandler(func(ctx context.Context, msg pingMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(200 * time.Millisecond):
			return nil
		}
	}, WithTimeout[pingMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), pingMessage{})
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
}
