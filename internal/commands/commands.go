package commands

import (
	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/validation"
)

// GetCommands returns all slash command definitions
func GetCommands() []*discordgo.ApplicationCommand {
	adminOnly := int64(discordgo.PermissionAdministrator)

	return []*discordgo.ApplicationCommand{
		// Recommendation commands
		{
			Name:        "today",
			Description: "Pick and announce a new song of the day",
		},
		{
			Name:        "history",
			Description: "Show recently picked songs",
		},

		// Catalog commands
		{
			Name:        "playlist",
			Description: "Browse the linked YouTube playlist",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "page",
					Description: "Page number (10 songs per page)",
					Required:    false,
					MinValue:    func() *float64 { v := 1.0; return &v }(),
				},
			},
		},
		{
			Name:        "search",
			Description: "Search the playlist by title or artist",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionString,
					Name:        "query",
					Description: "Song title or artist name",
					Required:    true,
				},
			},
		},
		{
			Name:        "random",
			Description: "Get random song recommendations",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionInteger,
					Name:        "count",
					Description: "How many songs (1-10, default 5)",
					Required:    false,
					MinValue:    func() *float64 { v := float64(validation.MinRandomCount); return &v }(),
					MaxValue:    validation.MaxRandomCount,
				},
			},
		},

		// Utility commands
		{
			Name:        "help",
			Description: "Show how to use the bot",
		},
		{
			Name:        "ping",
			Description: "Check that the bot is alive",
		},
		{
			Name:        "stats",
			Description: "Show bot statistics",
		},
		{
			Name:                     "sync",
			Description:              "[Admin] Re-register slash commands",
			DefaultMemberPermissions: &adminOnly,
		},
	}
}
