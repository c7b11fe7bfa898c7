package command

import (
	"context"
	"time"

	"github.com/slack-go/slack"
)

// Interaction is one inbound slash command invocation.
type Interaction struct {
	ID        string
	Name      string
	Args      []string
	CallerID  string
	ChannelID string
	TeamID    string
	At        time.Time

	// Set by the dispatcher once the arguments are bound.
	Subcommand string
	Options    Options
}

// Reply is what the caller sees. Ephemeral replies are visible only to the caller.
type Reply struct {
	Text      string
	Blocks    []slack.Block
	Ephemeral bool
}

// Handler implements one registered command.
type Handler interface {
	Declaration() Declaration
	Handle(ctx context.Context, in *Interaction) (*Reply, error)
}
