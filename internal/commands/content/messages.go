package contentcmd

const reloadMessageType = "artia.content.reload"

// ReloadContentCommand rebuilds the content tree from its document source.
type ReloadContentCommand struct{}

// Type implements command.Message.
func (ReloadContentCommand) Type() string { return reloadMessageType }

// Validate satisfies command.Message.
func (ReloadContentCommand) Validate() error { return nil }
