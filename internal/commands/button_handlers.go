package commands

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/embeds"
	"github.com/vuongmanhnghia/daily-song-bot/internal/errors"
)

// handleButtonInteraction handles pagination button clicks
func (h *Handler) handleButtonInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID

	action, current, ok := parsePageButton(customID)
	if !ok {
		h.logger.WithField("custom_id", customID).Debug("Ignoring unknown button")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	items := h.catalog.Snapshot(ctx)
	if len(items) == 0 {
		err := s.InteractionRespond(i.Interaction, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseChannelMessageWithSource,
			Data: &discordgo.InteractionResponseData{
				Content: errors.GetUserMessage(errors.ErrCatalogUnavailable),
				Flags:   discordgo.MessageFlagsEphemeral,
			},
		})
		if err != nil {
			h.logger.WithError(err).Error("Failed to report empty playlist")
		}
		return
	}

	totalPages := embeds.PageCount(len(items))
	page := targetPage(action, current, totalPages)

	embed := embeds.PlaylistPage(items, page, h.announcer.Formatter())
	if err := updateMessage(s, i, embed, createPaginationButtons(page, totalPages)); err != nil {
		h.logger.WithError(err).Error("Failed to update playlist pagination")
	}
}
