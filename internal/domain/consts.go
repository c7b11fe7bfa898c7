package domain

import "time"

// DefaultTimezone is used for "today" when TIMEZONE is not configured.
const DefaultTimezone = "America/New_York"

// Announcement firing time, local wall clock.
const (
	FireHour   = 0
	FireMinute = 0
	FireSecond = 5
)

// FireSpec is the cron expression (with seconds) for FireHour:FireMinute:FireSecond every day.
const FireSpec = "5 0 0 * * *"

// StopTimeout bounds how long the scheduler waits for an in-flight firing on stop.
const StopTimeout = 5 * time.Second

// SlackbotUserID is Slack's built-in system user; it is treated like a bot.
const SlackbotUserID = "USLACKBOT"

// Command names.
const (
	CommandBirthday = "birthday"
	CommandCar      = "car"
	CommandPing     = "ping"
)

// Reply texts shared by the dispatcher and the HTTP layer.
const (
	NotImplementedText = "This command hasn't been implemented yet :("
	UnknownErrorText   = "An unknown error occurred."
	ErrorHeading       = "Something went wrong"
)
