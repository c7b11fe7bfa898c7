package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
)

type pingCommand struct {
	slackClient contract.SlackClient
	clock       func() time.Time
}

func NewPing(slackClient contract.SlackClient) command.Handler {
	return &pingCommand{slackClient: slackClient, clock: time.Now}
}

func (c *pingCommand) Declaration() command.Declaration {
	return command.Declaration{
		Name:        domain.CommandPing,
		Description: "Checks how long a round trip to the Slack API takes.",
	}
}

// Handle times an auth.test call.
func (c *pingCommand) Handle(ctx context.Context, _ *command.Interaction) (*command.Reply, error) {
	start := c.clock()
	if _, err := c.slackClient.AuthTestContext(ctx); err != nil {
		return nil, domain.Transport(err, "Could not reach the Slack API.")
	}
	elapsed := c.clock().Sub(start)

	return &command.Reply{
		Text:      fmt.Sprintf("Pong! Slack API round trip: %d ms.", elapsed.Milliseconds()),
		Ephemeral: true,
	}, nil
}
