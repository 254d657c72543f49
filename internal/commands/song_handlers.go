package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/embeds"
)

// handleToday handles the today command
func (h *Handler) handleToday(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	if err := deferResponse(s, i); err != nil {
		return err
	}

	if err := followUp(s, i, "🎵 Looking for a new song..."); err != nil {
		h.logger.WithError(err).Warn("Failed to send progress message")
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.config.AnnounceTimeout)
	defer cancel()

	item, err := h.announcer.Announce(ctx)
	if err != nil {
		h.logger.WithError(err).Warn("Manual announcement failed")
		return followUpUserError(s, i, err)
	}

	h.logger.WithFields(map[string]interface{}{
		"title": item.Title,
		"user":  interactionUser(i),
	}).Info("Manual announcement sent")

	if i.ChannelID != h.config.ChannelID {
		return followUpEmbed(s, i, embeds.Success("Today's song was posted in <#"+h.config.ChannelID+">: **"+item.Title+"**"))
	}
	return nil
}

// handleHistory handles the history command
func (h *Handler) handleHistory(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	titles := h.announcer.RecentPicks(embeds.HistoryLength)
	if len(titles) == 0 {
		return respond(s, i, "🎵 No songs have been picked yet.")
	}

	return respondEmbed(s, i, embeds.History(titles))
}
