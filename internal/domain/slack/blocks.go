package slack

import (
	"fmt"
	"strings"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain/calendar"
	"github.com/diegoclair/birthday-bot/internal/domain/entity"
	"github.com/slack-go/slack"
)

const (
	ListingTitle = "🎂  Registered Birthdays"
	DigestTitle  = "🎂  Birthdays This Month"
	CarTitle     = "🚗  Car Ownership"

	// Slack rejects section text above 3000 characters.
	maxSectionText = 2900
)

// Mention renders a user reference.
func Mention(userID string) string {
	return "<@" + userID + ">"
}

// BirthdayLine renders "- <@u> - January 5, 1990 (suggested by <@c>)".
func BirthdayLine(u *entity.UserData) string {
	line := fmt.Sprintf("- %s - %s", Mention(u.UserID), u.Birthday().String())
	if !u.IsVerified() && u.Creator() != "" {
		line += fmt.Sprintf(" (suggested by %s)", Mention(u.Creator()))
	}
	return line
}

// BirthdayListing groups users by month under the listing header. users must be sorted.
func BirthdayListing(users []*entity.UserData) (string, []slack.Block) {
	if len(users) == 0 {
		text := "No birthdays have been registered yet. Add yours with `/birthday set`!"
		return text, []slack.Block{
			header(ListingTitle),
			section(text),
		}
	}

	blocks := []slack.Block{header(ListingTitle)}
	var (
		month int
		lines []string
	)
	flush := func() {
		if len(lines) > 0 {
			blocks = append(blocks, sections(fmt.Sprintf("*%s*", time.Month(month)), lines)...)
		}
		lines = nil
	}
	for _, u := range users {
		if *u.BirthMonth != month {
			flush()
			month = *u.BirthMonth
		}
		lines = append(lines, BirthdayLine(u))
	}
	flush()

	return fmt.Sprintf("%s: %d birthdays", ListingTitle, len(users)), blocks
}

// BirthdayCard renders the single-user view relative to now.
func BirthdayCard(u *entity.UserData, subjectID string, now time.Time) (string, []slack.Block) {
	if !u.HasBirthday() {
		text := fmt.Sprintf("%s does not have a birthday. Perhaps suggest one with `/birthday suggest`?", Mention(subjectID))
		return text, []slack.Block{section(text)}
	}

	date := u.Birthday()
	next := calendar.NextOccurrence(date.Month, date.Day, now, now.Location())
	text := fmt.Sprintf("%s's next birthday is %s on %s.",
		Mention(u.UserID), calendar.Relative(next, now), next.Format("Monday, January 2, 2006"))
	if age, ok := calendar.Age(date, now); ok {
		text += fmt.Sprintf(" They are currently %d years old!", age)
	}

	var footer string
	if u.IsVerified() {
		footer = fmt.Sprintf("Verified by %s", Mention(u.UserID))
	} else {
		footer = fmt.Sprintf("Birthday suggested by %s. %s can verify this with `/birthday verify`.",
			Mention(u.Creator()), Mention(u.UserID))
	}

	return text, []slack.Block{
		section(text),
		slack.NewContextBlock("", slack.NewTextBlockObject(slack.MarkdownType, footer, false, false)),
	}
}

// DailyAnnouncement renders one greeting line per user. Age is added when the year is known.
func DailyAnnouncement(users []*entity.UserData, today time.Time) string {
	lines := make([]string, 0, len(users))
	for _, u := range users {
		if u.BirthYear != nil {
			age := today.Year() - *u.BirthYear
			lines = append(lines, fmt.Sprintf("Happy %s birthday to %s!", calendar.Ordinal(age), Mention(u.UserID)))
			continue
		}
		lines = append(lines, fmt.Sprintf("Happy birthday to %s!", Mention(u.UserID)))
	}
	return strings.Join(lines, "\n")
}

// MonthlyDigest renders the digest for month. An empty month still gets a message.
func MonthlyDigest(month time.Month, users []*entity.UserData) (string, []slack.Block) {
	if len(users) == 0 {
		text := "Happy new month! Unfortunately, there are no known birthdays this month :confounded:.\n" +
			"Set yours with `/birthday set`, or suggest one for someone else with `/birthday suggest`."
		return text, []slack.Block{header(DigestTitle), section(text)}
	}

	lines := make([]string, 0, len(users))
	for _, u := range users {
		lines = append(lines, BirthdayLine(u))
	}

	blocks := []slack.Block{header(DigestTitle)}
	blocks = append(blocks, sections(fmt.Sprintf("*%s*", month), lines)...)

	return fmt.Sprintf("%s: %d birthdays in %s", DigestTitle, len(users), month), blocks
}

// CarStatus renders one user's car ownership.
func CarStatus(u *entity.UserData, subjectID string) string {
	if u == nil || u.HasCar == nil {
		return fmt.Sprintf("Car ownership information not found for %s. Perhaps make a suggestion with `/car suggest`?", Mention(subjectID))
	}
	if *u.HasCar {
		return fmt.Sprintf("%s owns a car.", Mention(subjectID))
	}
	return fmt.Sprintf("%s does not own a car.", Mention(subjectID))
}

// CarStatusLabel is used in confirmations: "does own a car" or "does not own a car".
func CarStatusLabel(hasCar bool) string {
	if hasCar {
		return "does own a car"
	}
	return "does not own a car"
}

// CarListing groups users into owners and non-owners.
func CarListing(users []*entity.UserData) (string, []slack.Block) {
	var with, without []string
	for _, u := range users {
		if u.HasCar == nil {
			continue
		}
		if *u.HasCar {
			with = append(with, "- "+Mention(u.UserID))
		} else {
			without = append(without, "- "+Mention(u.UserID))
		}
	}

	if len(with) == 0 && len(without) == 0 {
		text := "Nobody has shared their car ownership yet. Use `/car set` to add yours!"
		return text, []slack.Block{header(CarTitle), section(text)}
	}

	blocks := []slack.Block{header(CarTitle)}
	if len(with) > 0 {
		blocks = append(blocks, sections("*People with cars*", with)...)
	}
	if len(without) > 0 {
		blocks = append(blocks, sections("*People without cars*", without)...)
	}

	return fmt.Sprintf("%s: %d with cars, %d without", CarTitle, len(with), len(without)), blocks
}

func header(text string) slack.Block {
	return slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, text, true, false))
}

func section(text string) slack.Block {
	return slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil)
}

// sections writes title and lines into as many section blocks as the text limit requires.
func sections(title string, lines []string) []slack.Block {
	var (
		blocks []slack.Block
		b      strings.Builder
	)
	b.WriteString(title)
	for _, line := range lines {
		if b.Len()+len(line)+1 > maxSectionText {
			blocks = append(blocks, section(b.String()))
			b.Reset()
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(line)
	}
	if b.Len() > 0 {
		blocks = append(blocks, section(b.String()))
	}
	return blocks
}
