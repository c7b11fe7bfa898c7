package commands

import (
	"context"
	"fmt"

	"github.com/diegoclair/birthday-bot/internal/domain"
	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/diegoclair/birthday-bot/internal/domain/contract"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	slackcmd "github.com/diegoclair/birthday-bot/internal/domain/slack"
)

var (
	monthOption = command.Option{Name: "month", Description: "The month of the birthday (1-12).", Type: command.OptionInteger, Required: true}
	dayOption   = command.Option{Name: "day", Description: "The day of the birthday (1-31).", Type: command.OptionInteger, Required: true}
	yearOption  = command.Option{Name: "year", Description: "The year of the birthday.", Type: command.OptionInteger}
)

type birthdayCommand struct {
	svc contract.BirthdayService
}

func NewBirthday(svc contract.BirthdayService) command.Handler {
	return &birthdayCommand{svc: svc}
}

func (c *birthdayCommand) Declaration() command.Declaration {
	return command.Declaration{
		Name:        domain.CommandBirthday,
		Description: "Displays and manages birthdays.",
		Subcommands: []command.Subcommand{
			{
				Name:        "display",
				Description: "Displays a list of all birthdays or birthday information about a specific user.",
				Options: []command.Option{
					{Name: "user", Description: "If specified, displays a specific user's birthday and age.", Type: command.OptionUser},
				},
			},
			{
				Name:        "set",
				Description: "Sets your birthday.",
				Aliases:     []string{"add"},
				Options: []command.Option{
					monthOption,
					dayOption,
					yearOption,
					{Name: "user", Description: "Whose birthday to set. Defaults to you.", Type: command.OptionUser},
				},
			},
			{
				Name:        "suggest",
				Description: "Suggests another user's birthday if they haven't set one yet.",
				Options: []command.Option{
					monthOption,
					dayOption,
					{Name: "user", Description: "The user whose birthday to suggest.", Type: command.OptionUser, Required: true},
					yearOption,
				},
			},
			{
				Name:        "remove",
				Description: "Removes your birthday, or someone else's birthday if it isn't verified.",
				Options: []command.Option{
					{Name: "user", Description: "Removes this user's birthday if it isn't verified.", Type: command.OptionUser},
				},
			},
			{
				Name:        "verify",
				Description: "Verifies a birthday someone else set for you.",
			},
		},
	}
}

func (c *birthdayCommand) Handle(ctx context.Context, in *command.Interaction) (*command.Reply, error) {
	switch in.Subcommand {
	case "display":
		return c.display(ctx, in)
	case "set", "suggest":
		return c.set(ctx, in)
	case "remove":
		return c.remove(ctx, in)
	case "verify":
		return c.verify(ctx, in)
	default:
		return command.NotImplementedReply(), nil
	}
}

func (c *birthdayCommand) display(ctx context.Context, in *command.Interaction) (*command.Reply, error) {
	if userID, ok := in.Options.User("user"); ok {
		user, err := c.svc.Get(ctx, userID)
		if err != nil {
			return nil, err
		}
		text, blocks := slackcmd.BirthdayCard(user, userID, c.svc.Now())
		return &command.Reply{Text: text, Blocks: blocks}, nil
	}

	users, err := c.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	text, blocks := slackcmd.BirthdayListing(users)
	return &command.Reply{Text: text, Blocks: blocks}, nil
}

func (c *birthdayCommand) set(ctx context.Context, in *command.Interaction) (*command.Reply, error) {
	subjectID := subject(in)
	month, _ := in.Options.Int("month")
	day, _ := in.Options.Int("day")

	user, err := c.svc.Set(ctx, subjectID, in.CallerID, month, day, in.Options.IntPtr("year"))
	if err != nil {
		return nil, err
	}

	return &command.Reply{Text: setConfirmation(user, in.CallerID), Ephemeral: true}, nil
}

func (c *birthdayCommand) remove(ctx context.Context, in *command.Interaction) (*command.Reply, error) {
	if err := c.svc.Remove(ctx, subject(in), in.CallerID); err != nil {
		return nil, err
	}
	return &command.Reply{Text: "Successfully removed birthday information.", Ephemeral: true}, nil
}

func (c *birthdayCommand) verify(ctx context.Context, in *command.Interaction) (*command.Reply, error) {
	if err := c.svc.Verify(ctx, in.CallerID); err != nil {
		return nil, err
	}
	return &command.Reply{Text: "Your birthday has been verified.", Ephemeral: true}, nil
}

func setConfirmation(user *entity.UserData, callerID string) string {
	whose := "your"
	if user.UserID != callerID {
		whose = slackcmd.Mention(user.UserID) + "'s"
	}

	date := user.Birthday()
	if date.Year != nil {
		return fmt.Sprintf("Set %s birthday to %s!", whose, date)
	}

	return fmt.Sprintf("You've set %s birthday to %s, but I noticed you *didn't include a birth year*.\n\n"+
		"You can add a birth year by re-running this command with the `year` option. "+
		"This enables ages and more personalized birthday messages, and you can update it at any time.\n\n"+
		"Otherwise, no further action is needed.", whose, date)
}

// subject is the user option when present, otherwise the caller.
func subject(in *command.Interaction) string {
	if userID, ok := in.Options.User("user"); ok {
		return userID
	}
	return in.CallerID
}
