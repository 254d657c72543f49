package commands

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/embeds"
	"github.com/vuongmanhnghia/daily-song-bot/internal/errors"
	"github.com/vuongmanhnghia/daily-song-bot/internal/label"
	"github.com/vuongmanhnghia/daily-song-bot/internal/selector"
	"github.com/vuongmanhnghia/daily-song-bot/internal/validation"
)

// handlePlaylist handles the playlist command
func (h *Handler) handlePlaylist(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	page := optionInt(i.ApplicationCommandData().Options, "page", 1)

	if err := deferResponse(s, i); err != nil {
		return err
	}

	items, err := h.loadCatalog()
	if err != nil {
		return followUpUserError(s, i, err)
	}

	totalPages := embeds.PageCount(len(items))
	page = embeds.ClampPage(page, len(items))

	embed := embeds.PlaylistPage(items, page, h.announcer.Formatter())
	return followUpEmbed(s, i, embed, createPaginationButtons(page, totalPages)...)
}

// handleSearch handles the search command
func (h *Handler) handleSearch(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	query, err := validation.ValidateSearchQuery(optionString(i.ApplicationCommandData().Options, "query"))
	if err != nil {
		return respondUserError(s, i, err)
	}

	if err := deferResponse(s, i); err != nil {
		return err
	}

	items, err := h.loadCatalog()
	if err != nil {
		return followUpUserError(s, i, err)
	}

	matches := filterCatalog(items, query, h.announcer.Formatter())
	if len(matches) == 0 {
		h.logger.WithField("query", query).Debug("Search returned no results")
		return followUpUserError(s, i, errors.NewUserError(errors.ErrNoResults, fmt.Sprintf("🔍 No results for '%s'", query)))
	}

	return followUpEmbed(s, i, embeds.SearchResults(query, matches, h.announcer.Formatter()))
}

// handleRandom handles the random command
func (h *Handler) handleRandom(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	requested := optionInt(i.ApplicationCommandData().Options, "count", validation.DefaultRandomCount)
	count := validation.ClampRandomCount(requested)

	if err := deferResponse(s, i); err != nil {
		return err
	}

	items, err := h.loadCatalog()
	if err != nil {
		return followUpUserError(s, i, err)
	}

	picks := selector.Sample(items, count)
	return followUpEmbed(s, i, embeds.RandomPicks(picks, count, h.announcer.Formatter()))
}

// loadCatalog reads the playlist snapshot used by browsing commands
func (h *Handler) loadCatalog() ([]entities.CatalogItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	items := h.catalog.Snapshot(ctx)
	if len(items) == 0 {
		return nil, errors.ErrCatalogUnavailable
	}
	return items, nil
}

// filterCatalog keeps items whose title or cleaned artist contains query
func filterCatalog(items []entities.CatalogItem, query string, f *label.Formatter) []entities.CatalogItem {
	var matches []entities.CatalogItem
	for _, item := range items {
		if item.Matches(query, f.CleanArtist(item.Artist)) {
			matches = append(matches, item)
		}
	}
	return matches
}
