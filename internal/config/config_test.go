package config

import (
	"strings"
	"testing"
	"time"
	_ "time/tzdata"
)

func envMap(values map[string]string) func(string) string {
	return func(key string) string {
		return values[key]
	}
}

func validEnv() map[string]string {
	return map[string]string{
		"DISCORD_TOKEN":   "MTIzNDU2Nzg5MDEyMzQ1Njc4.token.value",
		"YOUTUBE_API_KEY": "AIza-test",
		"PLAYLIST_ID":     "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf",
		"CHANNEL_ID":      "123456789012345678",
		"GUILD_ID":        "876543210987654321",
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envMap(validEnv()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AnnounceSchedule != "0 9 * * *" {
		t.Errorf("Expected default schedule, got %q", cfg.AnnounceSchedule)
	}
	if cfg.NicknameMaxLength != 32 {
		t.Errorf("Expected nickname length 32, got %d", cfg.NicknameMaxLength)
	}
	if cfg.NicknamePrefix != "🎵 " {
		t.Errorf("Expected music prefix, got %q", cfg.NicknamePrefix)
	}
	if cfg.CatalogCacheTTL != time.Minute {
		t.Errorf("Expected 60s cache TTL, got %v", cfg.CatalogCacheTTL)
	}
	if cfg.AnnounceTimeout != time.Minute {
		t.Errorf("Expected 60s announce timeout, got %v", cfg.AnnounceTimeout)
	}
	if cfg.MetricsAddr != "" {
		t.Errorf("Expected metrics disabled, got %q", cfg.MetricsAddr)
	}
}

func TestFromEnvReportsAllMissing(t *testing.T) {
	env := validEnv()
	delete(env, "YOUTUBE_API_KEY")
	delete(env, "GUILD_ID")

	_, err := FromEnv(envMap(env))
	if err == nil {
		t.Fatal("Expected error for missing variables")
	}
	for _, key := range []string{"YOUTUBE_API_KEY", "GUILD_ID"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("Expected %s in error %q", key, err)
		}
	}
	if strings.Contains(err.Error(), "PLAYLIST_ID") {
		t.Errorf("PLAYLIST_ID is set and should not be reported: %q", err)
	}
}

func TestFromEnvRejectsBadValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"non numeric channel", "CHANNEL_ID", "general"},
		{"non numeric guild", "GUILD_ID", "my-server"},
		{"nickname too long", "NICKNAME_MAX_LENGTH", "40"},
		{"unknown timezone", "TIMEZONE", "Mars/Olympus_Mons"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := validEnv()
			env[tt.key] = tt.value
			if _, err := FromEnv(envMap(env)); err == nil {
				t.Errorf("Expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestFromEnvOverrides(t *testing.T) {
	env := validEnv()
	env["ANNOUNCE_SCHEDULE"] = "30 8 * * 1-5"
	env["TIMEZONE"] = "Asia/Seoul"
	env["CATALOG_CACHE_SECONDS"] = "0"
	env["NICKNAME_PREFIX"] = "> "
	env["METRICS_ADDR"] = ":9090"
	env["NICKNAME_MAX_LENGTH"] = "not-a-number"

	cfg, err := FromEnv(envMap(env))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AnnounceSchedule != "30 8 * * 1-5" {
		t.Errorf("unexpected schedule %q", cfg.AnnounceSchedule)
	}
	loc, err := cfg.Location()
	if err != nil || loc.String() != "Asia/Seoul" {
		t.Errorf("unexpected location %v (%v)", loc, err)
	}
	if cfg.CatalogCacheTTL != 0 {
		t.Errorf("Expected cache disabled, got %v", cfg.CatalogCacheTTL)
	}
	if cfg.NicknamePrefix != "> " {
		t.Errorf("Expected prefix whitespace preserved, got %q", cfg.NicknamePrefix)
	}
	if cfg.NicknameMaxLength != 32 {
		t.Errorf("Expected fallback to 32 for bad integer, got %d", cfg.NicknameMaxLength)
	}
}

func TestGetSafeToken(t *testing.T) {
	cfg := &Config{BotToken: "MTIzNDU2Nzg5MDEyMzQ1Njc4.token.value"}
	if got := cfg.GetSafeToken(); got != "MTIzNDU2Nz...alue" {
		t.Errorf("unexpected masked token %q", got)
	}

	short := &Config{BotToken: "short"}
	if got := short.GetSafeToken(); got != "***" {
		t.Errorf("Expected *** for short token, got %q", got)
	}
}
