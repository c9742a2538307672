package commands

import (
	"fmt"

	contactcmd "github.com/goliatone/go-artia/internal/commands/contact"
	contentcmd "github.com/goliatone/go-artia/internal/commands/content"
	command "github.com/goliatone/go-command"
	"github.com/goliatone/go-command/dispatcher"
)

// GlobalDispatcher subscribes the known handlers on the go-command global
// dispatcher so hosts can call dispatcher.Dispatch with the message types.
type GlobalDispatcher struct{}

var _ CommandDispatcher = GlobalDispatcher{}

// RegisterCommand satisfies CommandDispatcher.
func (GlobalDispatcher) RegisterCommand(handler any) (CommandSubscription, error) {
	switch h := handler.(type) {
	case command.Commander[contactcmd.SubmitContactCommand]:
		return dispatcher.SubscribeCommand(h), nil
	case command.Commander[contentcmd.ReloadContentCommand]:
		return dispatcher.SubscribeCommand(h), nil
	default:
		return nil, fmt.Errorf("commands: unsupported handler %T", handler)
	}
}
