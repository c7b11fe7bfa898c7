package slack

import (
	"strings"

	"github.com/diegoclair/birthday-bot/internal/domain/command"
	"github.com/slack-go/slack"
)

// SlashCommands converts declarations into the slash_commands section of an app manifest.
// requestURL is where Slack should POST the commands; it may be empty.
func SlashCommands(decls []command.Declaration, requestURL string) []slack.ManifestSlashCommand {
	cmds := make([]slack.ManifestSlashCommand, 0, len(decls))
	for _, d := range decls {
		cmds = append(cmds, slack.ManifestSlashCommand{
			Command:      "/" + d.Name,
			Description:  d.Description,
			UsageHint:    usageHint(d),
			Url:          requestURL,
			ShouldEscape: true,
		})
	}
	return cmds
}

// Manifest builds the parts of the app manifest this bot depends on.
func Manifest(appName string, decls []command.Declaration, baseURL string) slack.Manifest {
	var commandsURL, eventsURL string
	if baseURL != "" {
		base := strings.TrimRight(baseURL, "/")
		commandsURL = base + "/slack/commands"
		eventsURL = base + "/slack/events"
	}

	m := slack.Manifest{
		Display: slack.Display{
			Name:        appName,
			Description: "Keeps track of birthdays and announces them.",
		},
		Features: slack.Features{
			BotUser:       slack.BotUser{DisplayName: appName, AlwaysOnline: true},
			SlashCommands: SlashCommands(decls, commandsURL),
		},
		OAuthConfig: slack.OAuthConfig{
			Scopes: slack.OAuthScopes{
				Bot: []string{"app_mentions:read", "chat:write", "commands", "users:read"},
			},
		},
	}
	m.Settings.EventSubscriptions = slack.EventSubscriptions{
		RequestUrl: eventsURL,
		BotEvents:  []string{"app_mention"},
	}

	return m
}

// HelpText lists every command with its subcommands.
func HelpText(decls []command.Declaration) string {
	var b strings.Builder
	b.WriteString("*Available Commands:*\n")
	for _, d := range decls {
		b.WriteString("\n")
		b.WriteString(d.Help())
	}
	return b.String()
}

func usageHint(d command.Declaration) string {
	if len(d.Subcommands) == 0 {
		return strings.TrimSpace(strings.TrimPrefix(d.Usage(nil), "/"+d.Name))
	}
	names := make([]string, 0, len(d.Subcommands))
	for _, sc := range d.Subcommands {
		names = append(names, sc.Name)
	}
	return strings.Join(names, " | ")
}
