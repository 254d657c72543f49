package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/embeds"
)

// handleHelp handles the help command
func (h *Handler) handleHelp(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return respondEmbed(s, i, embeds.Help(h.config.BotName))
}

// handlePing handles the ping command
func (h *Handler) handlePing(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	return respond(s, i, "🤖 The bot is up and running!")
}

// handleStats handles the stats command
func (h *Handler) handleStats(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	catalogSize := len(h.catalog.Snapshot(ctx))
	latency := s.HeartbeatLatency().Milliseconds()

	latencyStatus := "🟢 Excellent"
	if latency > 200 {
		latencyStatus = "🔴 Poor"
	} else if latency > 100 {
		latencyStatus = "🟡 Moderate"
	}

	nextRun := "not scheduled"
	if h.schedule != nil {
		if next := h.schedule.Next(); !next.IsZero() {
			nextRun = fmt.Sprintf("<t:%d:R>", next.Unix())
		}
	}

	embed := embeds.NewEmbed().
		Title("Bot Statistics").
		Color(embeds.ColorInfo).
		Field("Playlist", fmt.Sprintf("%d songs", catalogSize), true).
		Field("History", fmt.Sprintf("%d picks", h.announcer.HistorySize()), true).
		Field("Latency", fmt.Sprintf("%dms %s", latency, latencyStatus), true).
		Field("Next Song", nextRun, true).
		Field("Uptime", time.Since(h.startedAt).Round(time.Second).String(), true).
		Footer(fmt.Sprintf("%s v%s", h.config.BotName, h.config.Version)).
		Timestamp(time.Now()).
		Build()

	return followUpEmbed(s, i, embed)
}

// handleSync handles the sync command
func (h *Handler) handleSync(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := deferEphemeral(s, i); err != nil {
		return err
	}

	if err := h.RegisterCommands(); err != nil {
		h.logger.WithError(err).Error("Failed to sync commands")
		return followUpError(s, i, "Failed to sync commands: "+err.Error())
	}

	h.catalog.Invalidate()
	h.logger.WithField("user", interactionUser(i)).Info("Commands manually synced, playlist cache cleared")

	embed := embeds.NewEmbed().
		Title("✅ Commands Synchronized").
		Description("All slash commands have been refreshed with Discord and the playlist will be reloaded").
		Color(embeds.ColorSuccess).
		Build()

	return followUpEmbed(s, i, embed)
}
