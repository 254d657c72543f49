package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Bot Settings
	BotToken string
	BotName  string
	Version  string

	// Discord targets
	ChannelID string
	GuildID   string

	// YouTube
	YouTubeAPIKey string
	PlaylistID    string

	// Scheduling
	AnnounceSchedule string
	Timezone         string
	AnnounceTimeout  time.Duration

	// Catalog
	CatalogCacheTTL time.Duration

	// Nickname label
	NicknameMaxLength int
	NicknamePrefix    string

	// Logging
	LogLevel  string
	LogFormat string

	// Metrics (empty disables the endpoint)
	MetricsAddr string
}

// requiredVars are reported together when missing
var requiredVars = []string{
	"DISCORD_TOKEN",
	"YOUTUBE_API_KEY",
	"PLAYLIST_ID",
	"CHANNEL_ID",
	"GUILD_ID",
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	return FromEnv(os.Getenv)
}

// FromEnv builds the configuration from a lookup function
func FromEnv(getenv func(string) string) (*Config, error) {
	var missing []string
	for _, key := range requiredVars {
		if strings.TrimSpace(getenv(key)) == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	channelID := strings.TrimSpace(getenv("CHANNEL_ID"))
	if _, err := strconv.ParseUint(channelID, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid CHANNEL_ID %q: must be a numeric snowflake", channelID)
	}

	guildID := strings.TrimSpace(getenv("GUILD_ID"))
	if _, err := strconv.ParseUint(guildID, 10, 64); err != nil {
		return nil, fmt.Errorf("invalid GUILD_ID %q: must be a numeric snowflake", guildID)
	}

	env := envReader(getenv)

	cfg := &Config{
		// Bot Settings
		BotToken: strings.TrimSpace(getenv("DISCORD_TOKEN")),
		BotName:  env.stringOr("BOT_NAME", "Daily Song Bot"),
		Version:  env.stringOr("VERSION", "1.0.0"),

		// Discord targets
		ChannelID: channelID,
		GuildID:   guildID,

		// YouTube
		YouTubeAPIKey: strings.TrimSpace(getenv("YOUTUBE_API_KEY")),
		PlaylistID:    strings.TrimSpace(getenv("PLAYLIST_ID")),

		// Scheduling
		AnnounceSchedule: env.stringOr("ANNOUNCE_SCHEDULE", "0 9 * * *"),
		Timezone:         env.stringOr("TIMEZONE", "Local"),
		AnnounceTimeout:  time.Duration(env.intOr("ANNOUNCE_TIMEOUT_SECONDS", 60)) * time.Second,

		// Catalog
		CatalogCacheTTL: time.Duration(env.intOr("CATALOG_CACHE_SECONDS", 60)) * time.Second,

		// Nickname label
		NicknameMaxLength: env.intOr("NICKNAME_MAX_LENGTH", 32),
		NicknamePrefix:    env.rawOr("NICKNAME_PREFIX", "🎵 "),

		// Logging
		LogLevel:  env.stringOr("LOG_LEVEL", "info"),
		LogFormat: env.stringOr("LOG_FORMAT", "text"),

		// Metrics
		MetricsAddr: env.stringOr("METRICS_ADDR", ""),
	}

	if cfg.NicknameMaxLength <= 0 || cfg.NicknameMaxLength > 32 {
		return nil, fmt.Errorf("NICKNAME_MAX_LENGTH must be between 1 and 32, got %d", cfg.NicknameMaxLength)
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Location resolves the configured timezone
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// GetSafeToken returns a masked version of the token for logging
func (c *Config) GetSafeToken() string {
	if len(c.BotToken) < 15 {
		return "***"
	}
	return c.BotToken[:10] + "..." + c.BotToken[len(c.BotToken)-4:]
}

// Helper functions

type envReader func(string) string

func (e envReader) stringOr(key, defaultValue string) string {
	if value := strings.TrimSpace(e(key)); value != "" {
		return value
	}
	return defaultValue
}

// rawOr keeps surrounding whitespace, which matters for the nickname prefix
func (e envReader) rawOr(key, defaultValue string) string {
	if value := e(key); value != "" {
		return value
	}
	return defaultValue
}

func (e envReader) intOr(key string, defaultValue int) int {
	if value := strings.TrimSpace(e(key)); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
