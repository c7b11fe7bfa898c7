package commands

import (
	"context"
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	slackcmd "github.com/diegoclair/birthday-bot/internal/domain/slack"
)

type carCommand struct {
	svc contract.CarService
}

func NewCar(svc contract.CarService) command.Handler {
	return &carCommand{svc: svc}
}

func (c *carCommand) Declaration() command.Declaration {
	return command.Declaration{
		Name:        domain.CommandCar,
		Description: "Displays and manages car information.",
		Subcommands: []command.Subcommand{
			{
				Name:        "display",
				Description: "Displays a list of all car information or car information about a specific user.",
				Options: []command.Option{
					{Name: "user", Description: "If specified, displays whether this person owns a car.", Type: command.OptionUser},
				},
			},
			{
				Name:        "list",
				Description: "Lists everyone who shared whether they own a car.",
			},
			{
				Name:        "set",
				Description: "Sets whether you have a car or not.",
				Options: []command.Option{
					{Name: "value", Description: "Whether you have a car or not.", Type: command.OptionBoolean, Required: true},
				},
			},
			{
				Name:        "suggest",
				Description: "Suggests if another user has a car or not.",
				Options: []command.Option{
					{Name: "value", Description: "Whether this person has a car or not.", Type: command.OptionBoolean, Required: true},
					{Name: "user", Description: "The user to suggest a value for.", Type: command.OptionUser, Required: true},
				},
			},
			{
				Name:        "remove",
				Description: "Removes this from your userdata.",
				Options: []command.Option{
					{Name: "user", Description: "The user whose car information to remove. Only they can do this.", Type: command.OptionUser},
				},
			},
		},
	}
}

func (c *carCommand) Handle(ctx context.Context, in *command.Interaction) (*command.Reply, error) {
	switch in.Subcommand {
	case "display":
		if userID, ok := in.Options.User("user"); ok {
			user, err := c.svc.Get(ctx, userID)
			if err != nil {
				return nil, err
			}
			return &command.Reply{Text: slackcmd.CarStatus(user, userID)}, nil
		}
		return c.list(ctx)
	case "list":
		return c.list(ctx)
	case "set", "suggest":
		subjectID := subject(in)
		hasCar, _ := in.Options.Bool("value")
		if err := c.svc.Set(ctx, subjectID, hasCar); err != nil {
			return nil, err
		}

		whose := "your"
		if subjectID != in.CallerID {
			whose = slackcmd.Mention(subjectID) + "'s"
		}
		return &command.Reply{
			Text:      fmt.Sprintf("Set %s car ownership status to \"%s\".", whose, slackcmd.CarStatusLabel(hasCar)),
			Ephemeral: true,
		}, nil
	case "remove":
		if err := c.svc.Remove(ctx, subject(in), in.CallerID); err != nil {
			return nil, err
		}
		return &command.Reply{Text: "Successfully removed car information.", Ephemeral: true}, nil
	default:
		return command.NotImplementedReply(), nil
	}
}

func (c *carCommand) list(ctx context.Context) (*command.Reply, error) {
	users, err := c.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	text, blocks := slackcmd.CarListing(users)
	return &command.Reply{Text: text, Blocks: blocks}, nil
}
