package contentcmd

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
)

type reloaderStub struct {
	calls int
	err   error
}

func (r *reloaderStub) Reload(context.Context) error {
	r.calls++
	return r.err
}

func TestReloadHandlerCallsReloader(t *testing.T) {
	stub := &reloaderStub{}
	handler := NewReloadHandler(stub, nil)

	if err := handler.Execute(context.Background(), ReloadContentCommand{}); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("expected one reload, got %d", stub.calls)
	}
}

func TestReloadHandlerWrapsFailure(t *testing.T) {
	cause := errors.New("disk gone")
	handler := NewReloadHandler(&reloaderStub{err: cause}, nil)

	err := handler.Execute(context.Background(), ReloadContentCommand{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause, got %v", err)
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestReloadHandlerCron(t *testing.T) {
	stub := &reloaderStub{}
	handler := NewReloadHandler(stub, nil, WithCronExpression(" @hourly "))

	if got := handler.CronOptions().Expression; got != "@hourly" {
		t.Fatalf("expected @hourly, got %q", got)
	}
	if err := handler.CronHandler()(); err != nil {
		t.Fatalf("cron handler: %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("expected cron run to reload, got %d calls", stub.calls)
	}

	if got := NewReloadHandler(stub, nil).CronOptions().Expression; got != defaultReloadCronExp {
		t.Fatalf("expected default expression, got %q", got)
	}
}
