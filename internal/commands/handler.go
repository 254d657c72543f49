package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/config"
	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/label"
	"github.com/vuongmanhnghia/daily-song-bot/internal/telemetry"
	"github.com/vuongmanhnghia/daily-song-bot/pkg/logger"
)

// commandTimeout bounds catalog reads made on behalf of a command
const commandTimeout = 30 * time.Second

// Announcer is the announcement service as seen by commands
type Announcer interface {
	Announce(ctx context.Context) (entities.CatalogItem, error)
	RecentPicks(n int) []string
	HistorySize() int
	Formatter() *label.Formatter
}

// CatalogBrowser serves a possibly cached copy of the playlist
type CatalogBrowser interface {
	Snapshot(ctx context.Context) []entities.CatalogItem
	Invalidate()
}

// ScheduleInfo reports the next scheduled announcement
type ScheduleInfo interface {
	Next() time.Time
}

// Handler manages all bot commands
type Handler struct {
	session   *discordgo.Session
	announcer Announcer
	catalog   CatalogBrowser
	schedule  ScheduleInfo
	logger    *logger.Logger
	config    *config.Config
	startedAt time.Time
}

// NewHandler creates a new command handler. schedule may be nil.
func NewHandler(
	session *discordgo.Session,
	announcer Announcer,
	catalog CatalogBrowser,
	schedule ScheduleInfo,
	log *logger.Logger,
	config *config.Config,
) *Handler {
	return &Handler{
		session:   session,
		announcer: announcer,
		catalog:   catalog,
		schedule:  schedule,
		logger:    log,
		config:    config,
		startedAt: time.Now(),
	}
}

// RegisterCommands registers all slash commands with Discord
func (h *Handler) RegisterCommands() error {
	commands := GetCommands()

	_, err := h.session.ApplicationCommandBulkOverwrite(h.session.State.User.ID, h.config.GuildID, commands)
	if err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	h.logger.WithField("count", len(commands)).Info("✅ All commands registered")
	return nil
}

// HandleInteraction routes incoming interactions to appropriate handlers
func (h *Handler) HandleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.WithField("panic", r).Error("Recovered from panic in command handler")
			_ = respondError(s, i, "An internal error occurred")
		}
	}()

	if i.Type == discordgo.InteractionMessageComponent {
		h.handleButtonInteraction(s, i)
		return
	}

	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	data := i.ApplicationCommandData()
	telemetry.CommandsTotal.WithLabelValues(data.Name).Inc()

	h.logger.WithFields(map[string]interface{}{
		"command": data.Name,
		"guild":   i.GuildID,
		"user":    interactionUser(i),
	}).Info("Command received")

	var err error
	switch data.Name {
	// Recommendation commands
	case "today":
		err = h.handleToday(s, i)
	case "history":
		err = h.handleHistory(s, i)

	// Catalog commands
	case "playlist":
		err = h.handlePlaylist(s, i)
	case "search":
		err = h.handleSearch(s, i)
	case "random":
		err = h.handleRandom(s, i)

	// Utility commands
	case "help":
		err = h.handleHelp(s, i)
	case "ping":
		err = h.handlePing(s, i)
	case "stats":
		err = h.handleStats(s, i)
	case "sync":
		err = h.handleSync(s, i)

	default:
		err = respondError(s, i, "Unknown command")
	}

	if err != nil {
		h.logger.WithError(err).WithField("command", data.Name).Error("Command handler failed")
	}
}

// interactionUser returns the invoking username for guild or DM interactions
func interactionUser(i *discordgo.InteractionCreate) string {
	switch {
	case i.Member != nil && i.Member.User != nil:
		return i.Member.User.Username
	case i.User != nil:
		return i.User.Username
	default:
		return ""
	}
}

// optionInt returns the named integer option, or def when absent
func optionInt(options []*discordgo.ApplicationCommandInteractionDataOption, name string, def int) int {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionInteger {
			return int(opt.IntValue())
		}
	}
	return def
}

// optionString returns the named string option, or "" when absent
func optionString(options []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range options {
		if opt.Name == name && opt.Type == discordgo.ApplicationCommandOptionString {
			return opt.StringValue()
		}
	}
	return ""
}
