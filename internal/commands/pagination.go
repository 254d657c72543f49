package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bwmarrin/discordgo"
)

const playlistButtonPrefix = "playlist"

// Page navigation actions carried in button custom IDs
const (
	pageFirst   = "first"
	pagePrev    = "prev"
	pageCurrent = "current"
	pageNext    = "next"
	pageLast    = "last"
)

// pageButtonID encodes an action and the page it was pressed on
func pageButtonID(action string, page int) string {
	return fmt.Sprintf("%s:%s:%d", playlistButtonPrefix, action, page)
}

// parsePageButton decodes "playlist:<action>:<page>"
func parsePageButton(customID string) (action string, page int, ok bool) {
	parts := strings.Split(customID, ":")
	if len(parts) != 3 || parts[0] != playlistButtonPrefix {
		return "", 0, false
	}

	page, err := strconv.Atoi(parts[2])
	if err != nil || page < 1 {
		return "", 0, false
	}

	switch parts[1] {
	case pageFirst, pagePrev, pageNext, pageLast:
		return parts[1], page, true
	default:
		return "", 0, false
	}
}

// targetPage resolves a navigation action; prev and next wrap around
func targetPage(action string, current, totalPages int) int {
	if totalPages < 1 {
		return 1
	}

	switch action {
	case pageFirst:
		return 1
	case pageLast:
		return totalPages
	case pagePrev:
		if current <= 1 {
			return totalPages
		}
		return min(current-1, totalPages)
	case pageNext:
		if current >= totalPages {
			return 1
		}
		return current + 1
	default:
		return max(1, min(current, totalPages))
	}
}

// createPaginationButtons creates navigation buttons for a 1-based page
func createPaginationButtons(page, totalPages int) []discordgo.MessageComponent {
	if totalPages <= 1 {
		return nil
	}

	buttons := []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "⏮️",
			Style:    discordgo.SecondaryButton,
			CustomID: pageButtonID(pageFirst, page),
			Disabled: page == 1,
		},
		discordgo.Button{
			Label:    "◀️",
			Style:    discordgo.PrimaryButton,
			CustomID: pageButtonID(pagePrev, page),
		},
		discordgo.Button{
			Label:    fmt.Sprintf("Page %d/%d", page, totalPages),
			Style:    discordgo.SecondaryButton,
			CustomID: pageButtonID(pageCurrent, page),
			Disabled: true,
		},
		discordgo.Button{
			Label:    "▶️",
			Style:    discordgo.PrimaryButton,
			CustomID: pageButtonID(pageNext, page),
		},
		discordgo.Button{
			Label:    "⏭️",
			Style:    discordgo.SecondaryButton,
			CustomID: pageButtonID(pageLast, page),
			Disabled: page == totalPages,
		},
	}

	return []discordgo.MessageComponent{
		discordgo.ActionsRow{
			Components: buttons,
		},
	}
}
