package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/google/uuid"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/embeds"
	"github.com/vuongmanhnghia/daily-song-bot/internal/errors"
	"github.com/vuongmanhnghia/daily-song-bot/internal/label"
	"github.com/vuongmanhnghia/daily-song-bot/internal/selector"
	"github.com/vuongmanhnghia/daily-song-bot/internal/telemetry"
	"github.com/vuongmanhnghia/daily-song-bot/pkg/logger"
)

// CatalogFetcher returns the current playlist; empty means unavailable
type CatalogFetcher interface {
	FetchAll(ctx context.Context) []entities.CatalogItem
}

// Messenger is the slice of the Discord session used for announcements
type Messenger interface {
	ChannelMessageSendEmbed(channelID string, embed *discordgo.MessageEmbed, options ...discordgo.RequestOption) (*discordgo.Message, error)
	GuildMemberNickname(guildID, userID, nickname string, options ...discordgo.RequestOption) error
}

// AnnouncementService picks a song and publishes it to the channel and nickname
type AnnouncementService struct {
	catalog   CatalogFetcher
	selector  *selector.Selector
	formatter *label.Formatter
	messenger Messenger
	channelID string
	guildID   string
	logger    *logger.Logger
	now       func() time.Time

	// One announcement at a time keeps embed and nickname in step
	mu sync.Mutex
}

// AnnouncementConfig holds the Discord targets
type AnnouncementConfig struct {
	ChannelID string
	GuildID   string
}

// NewAnnouncementService creates a new announcement service
func NewAnnouncementService(
	catalog CatalogFetcher,
	sel *selector.Selector,
	formatter *label.Formatter,
	messenger Messenger,
	cfg AnnouncementConfig,
	log *logger.Logger,
) *AnnouncementService {
	return &AnnouncementService{
		catalog:   catalog,
		selector:  sel,
		formatter: formatter,
		messenger: messenger,
		channelID: cfg.ChannelID,
		guildID:   cfg.GuildID,
		logger:    log,
		now:       time.Now,
	}
}

// Announce fetches the playlist, selects a song, posts it to the channel and
// updates the bot nickname. A nickname failure is logged but not returned.
func (s *AnnouncementService) Announce(ctx context.Context) (entities.CatalogItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	started := s.now()
	log := s.logger.WithField("run_id", uuid.New().String())

	catalog := s.catalog.FetchAll(ctx)
	if len(catalog) == 0 {
		log.Warn("Playlist returned no songs, nothing to announce")
		telemetry.ObserveAnnouncement(telemetry.ResultEmptyCatalog, started)
		return entities.CatalogItem{}, fmt.Errorf("%w: no songs available", errors.ErrCatalogUnavailable)
	}

	item, err := s.selector.Select(catalog)
	if err != nil {
		telemetry.ObserveAnnouncement(telemetry.ResultEmptyCatalog, started)
		return entities.CatalogItem{}, err
	}

	if err := ctx.Err(); err != nil {
		telemetry.ObserveAnnouncement(telemetry.ResultSendFailed, started)
		return entities.CatalogItem{}, fmt.Errorf("announcement cancelled: %w", err)
	}

	display := s.formatter.Format(item.Title, item.Artist)
	embed := embeds.SongOfTheDay(item, display.CleanedArtist, s.now())

	if _, err := s.messenger.ChannelMessageSendEmbed(s.channelID, embed, discordgo.WithContext(ctx)); err != nil {
		log.WithError(err).WithField("channel", s.channelID).Error("Failed to send song of the day")
		telemetry.ObserveAnnouncement(telemetry.ResultSendFailed, started)
		return entities.CatalogItem{}, fmt.Errorf("%w: %v", errors.ErrChannelUnavailable, err)
	}

	log.WithFields(map[string]interface{}{
		"song":    display.AnnouncementLine(item.Title),
		"catalog": len(catalog),
		"history": s.selector.Len(),
	}).Info("✅ Song of the day sent")

	if err := s.setNickname(ctx, display.ComposedLabel); err != nil {
		log.WithError(err).Warn("Failed to update bot nickname")
	} else {
		log.WithField("nickname", display.ComposedLabel).Info("Bot nickname updated")
	}

	telemetry.ObserveAnnouncement(telemetry.ResultSuccess, started)
	return item, nil
}

func (s *AnnouncementService) setNickname(ctx context.Context, nickname string) error {
	if s.guildID == "" {
		return fmt.Errorf("%w: no guild configured", errors.ErrNicknameUpdate)
	}
	if err := s.messenger.GuildMemberNickname(s.guildID, "@me", nickname, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("%w: %v", errors.ErrNicknameUpdate, err)
	}
	return nil
}

// RecentPicks returns up to n recently announced titles, oldest first
func (s *AnnouncementService) RecentPicks(n int) []string {
	return s.selector.Recent(n)
}

// HistorySize returns how many titles are in the selection history
func (s *AnnouncementService) HistorySize() int {
	return s.selector.Len()
}

// Formatter exposes the label settings for renderers
func (s *AnnouncementService) Formatter() *label.Formatter {
	return s.formatter
}
