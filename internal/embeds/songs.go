package embeds

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/label"
	"github.com/vuongmanhnghia/daily-song-bot/internal/validation"
)

const (
	// ItemsPerPage is the playlist page size
	ItemsPerPage = 10
	// MaxSearchResults caps the search listing
	MaxSearchResults = 10
	// HistoryLength is how many recent picks /history shows
	HistoryLength = 10

	playlistTitleWidth = 40
	compactTitleWidth  = 35

	clickHint = "💡 Click a title to listen on YouTube!"
)

// SongOfTheDay renders the channel announcement. The title is shown in full.
func SongOfTheDay(item entities.CatalogItem, cleanedArtist string, now time.Time) *discordgo.MessageEmbed {
	return NewEmbed().
		Title("🎵 Song of the Day").
		Description(fmt.Sprintf("**%s**", item.Title)).
		Color(ColorSong).
		Field("Artist", cleanedArtist, true).
		Field("Link", fmt.Sprintf("[Listen on YouTube](%s)", item.URL), true).
		Footer("A new song every day!").
		Timestamp(now).
		Build()
}

// PageCount returns the number of playlist pages for total items
func PageCount(total int) int {
	if total <= 0 {
		return 1
	}
	return (total + ItemsPerPage - 1) / ItemsPerPage
}

// ClampPage keeps a 1-based page inside [1, PageCount(total)]
func ClampPage(page, total int) int {
	return max(1, min(page, PageCount(total)))
}

// PlaylistPage renders one page (1-based, clamped) of the catalog
func PlaylistPage(items []entities.CatalogItem, page int, f *label.Formatter) *discordgo.MessageEmbed {
	totalPages := PageCount(len(items))
	page = ClampPage(page, len(items))

	builder := NewEmbed().
		Title("📁 Linked Playlist").
		Color(ColorList).
		Footer(clickHint)

	if len(items) == 0 {
		return builder.Description("The playlist is empty").Build()
	}

	start := (page - 1) * ItemsPerPage
	end := min(start+ItemsPerPage, len(items))

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%d** songs total | Page %d/%d\n\n", len(items), page, totalPages)
	for i := start; i < end; i++ {
		sb.WriteString(songLine(fmt.Sprintf("`%2d.`", i+1), items[i], playlistTitleWidth, f))
	}

	return builder.Description(sb.String()).Build()
}

// SearchResults renders matches for query; callers handle the no-match case
func SearchResults(query string, matches []entities.CatalogItem, f *label.Formatter) *discordgo.MessageEmbed {
	shown := matches[:min(len(matches), MaxSearchResults)]

	var sb strings.Builder
	fmt.Fprintf(&sb, "Found **%d** songs.\n\n", len(matches))
	for i, item := range shown {
		sb.WriteString(songLine(fmt.Sprintf("`%2d.`", i+1), item, compactTitleWidth, f))
	}

	builder := NewEmbed().
		Title(fmt.Sprintf("🔍 Results for '%s'", query)).
		Description(sb.String()).
		Color(ColorSearch).
		Footer(clickHint)

	if extra := len(matches) - len(shown); extra > 0 {
		builder.Field("📋 Note", fmt.Sprintf("There are more results (%d more songs)", extra), false)
	}

	return builder.Build()
}

// RandomPicks renders a list of random recommendations
func RandomPicks(items []entities.CatalogItem, requested int, f *label.Formatter) *discordgo.MessageEmbed {
	var sb strings.Builder
	sb.WriteString("How about these today?\n\n")
	for i, item := range items {
		sb.WriteString(songLine(fmt.Sprintf("`%d.`", i+1), item, compactTitleWidth, f))
	}

	return NewEmbed().
		Title(fmt.Sprintf("🎲 %d Random Picks", requested)).
		Description(sb.String()).
		Color(ColorSong).
		Footer(clickHint).
		Build()
}

// History renders recently selected titles, oldest first
func History(titles []string) *discordgo.MessageEmbed {
	lines := make([]string, 0, len(titles))
	for i, title := range titles {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, title))
	}

	return NewEmbed().
		Title("📜 Recently Picked Songs").
		Description(strings.Join(lines, "\n")).
		Color(ColorHistory).
		Build()
}

// Help renders the command overview
func Help(botName string) *discordgo.MessageEmbed {
	return NewEmbed().
		Title("🎵 " + botName).
		Description("A music bot linked to a YouTube playlist!").
		Color(ColorHelp).
		Field("📋 Commands",
			"`/today` - Pick today's song\n"+
				"`/playlist [page]` - Browse the whole playlist\n"+
				"`/search <query>` - Search by title or artist\n"+
				"`/random [count]` - Random recommendations (default 5)\n"+
				"`/history` - Recently picked songs\n"+
				"`/stats` - Bot statistics\n"+
				"`/ping` - Check the bot is alive\n"+
				"`/help` - Show this message",
			false).
		Field("💡 Tips",
			"• Click a song title to play it on YouTube\n"+
				"• The bot's nickname shows the current pick",
			false).
		Footer("A new song is picked automatically every day! 🎶").
		Build()
}

func songLine(index string, item entities.CatalogItem, width int, f *label.Formatter) string {
	title := validation.TruncateString(item.Title, width)
	return fmt.Sprintf("%s [%s](%s) - **%s**\n", index, escapeLinkText(title), item.URL, f.CleanArtist(item.Artist))
}

// escapeLinkText keeps brackets in titles from breaking markdown links
func escapeLinkText(s string) string {
	return strings.NewReplacer("[", "\\[", "]", "\\]").Replace(s)
}
