package commands

import (
	"context"
	"testing"

	contentcmd "github.com/goliatone/go-artia/internal/commands/content"
	"github.com/goliatone/go-command/dispatcher"
)

type countingReloader struct{ calls int }

func (r *countingReloader) Reload(context.Context) error {
	r.calls++
	return nil
}

func TestGlobalDispatcherRoutesReload(t *testing.T) {
	reloader := &countingReloader{}
	sub, err := GlobalDispatcher{}.RegisterCommand(contentcmd.NewReloadHandler(reloader, nil))
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	t.Cleanup(sub.Unsubscribe)

	if err := dispatcher.Dispatch(context.Background(), contentcmd.ReloadContentCommand{}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if reloader.calls != 1 {
		t.Fatalf("expected one reload, got %d", reloader.calls)
	}
}

func TestGlobalDispatcherRejectsUnknownHandler(t *testing.T) {
	if _, err := (GlobalDispatcher{}).RegisterCommand(struct{}{}); err == nil {
		t.Fatal("expected error for unsupported handler")
	}
}
