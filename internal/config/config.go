package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/diegoclair/birthday-bot/internal/domain"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

type Config struct {
	SlackBotToken         string
	SlackSigningSecret    string
	SlackTeamID           string
	AnnouncementChannelID string
	DatabaseDriver        string
	DatabaseURL           string
	Timezone              *time.Location
	Port                  string
	LogLevel              string
	Environment           string
}

// Load reads the process configuration from the environment. Missing required
// values are reported as configuration errors.
func Load() (*Config, error) {
	cfg := &Config{
		SlackBotToken:         getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:    getEnv("SLACK_SIGNING_SECRET", ""),
		SlackTeamID:           getEnv("SLACK_TEAM_ID", ""),
		AnnouncementChannelID: getEnv("BIRTHDAY_ANNOUNCEMENT_CHANNEL_ID", ""),
		DatabaseDriver:        strings.ToLower(getEnv("DATABASE_DRIVER", DriverSQLite)),
		Port:                  getEnv("PORT", "3000"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		Environment:           getEnv("ENVIRONMENT", "development"),
	}

	if cfg.SlackBotToken == "" {
		return nil, fmt.Errorf("%w: SLACK_BOT_TOKEN environment variable is required", domain.ErrConfiguration)
	}
	if cfg.SlackSigningSecret == "" {
		return nil, fmt.Errorf("%w: SLACK_SIGNING_SECRET environment variable is required", domain.ErrConfiguration)
	}

	switch cfg.DatabaseDriver {
	case DriverSQLite:
		cfg.DatabaseURL = getEnv("DATABASE_URL", getEnv("DATABASE_PATH", "./data/birthday_bot.db"))
	case DriverPostgres:
		cfg.DatabaseURL = getEnv("DATABASE_URL", "")
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("%w: DATABASE_URL is required when DATABASE_DRIVER is postgres", domain.ErrConfiguration)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported DATABASE_DRIVER %q", domain.ErrConfiguration, cfg.DatabaseDriver)
	}

	tzName := getEnv("TIMEZONE", domain.DefaultTimezone)
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid TIMEZONE %q: %v", domain.ErrConfiguration, tzName, err)
	}
	cfg.Timezone = loc

	return cfg, nil
}

// AnnouncementsEnabled reports whether a target channel for scheduled messages was configured.
func (c *Config) AnnouncementsEnabled() bool {
	return c.AnnouncementChannelID != ""
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
