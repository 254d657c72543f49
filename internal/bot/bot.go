package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/vuongmanhnghia/daily-song-bot/internal/commands"
	"github.com/vuongmanhnghia/daily-song-bot/internal/config"
	"github.com/vuongmanhnghia/daily-song-bot/internal/label"
	"github.com/vuongmanhnghia/daily-song-bot/internal/scheduler"
	"github.com/vuongmanhnghia/daily-song-bot/internal/selector"
	"github.com/vuongmanhnghia/daily-song-bot/internal/services"
	"github.com/vuongmanhnghia/daily-song-bot/internal/services/youtube"
	"github.com/vuongmanhnghia/daily-song-bot/internal/telemetry"
	"github.com/vuongmanhnghia/daily-song-bot/pkg/logger"
)

const shutdownTimeout = 5 * time.Second

// DailySongBot represents the Discord daily song bot
type DailySongBot struct {
	config       *config.Config
	logger       *logger.Logger
	session      *discordgo.Session
	catalog      *youtube.CatalogSource
	announcement *services.AnnouncementService
	scheduler    *scheduler.Scheduler
	metrics      *telemetry.Server
	cmdHandler   *commands.Handler
}

// New creates a new DailySongBot instance
func New(ctx context.Context, cfg *config.Config, log *logger.Logger) (*DailySongBot, error) {
	session, err := discordgo.New("Bot " + cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Slash commands and nickname changes only need guild events
	session.Identify.Intents = discordgo.IntentsGuilds
	session.StateEnabled = true

	catalog, err := youtube.NewCatalogSource(ctx, youtube.CatalogConfig{
		APIKey:     cfg.YouTubeAPIKey,
		PlaylistID: cfg.PlaylistID,
		CacheTTL:   cfg.CatalogCacheTTL,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube catalog: %w", err)
	}

	sel := selector.New(selector.WithResetHook(func(reason selector.ResetReason) {
		telemetry.HistoryResetsTotal.WithLabelValues(string(reason)).Inc()
		log.WithField("reason", reason).Info("🔄 Song history reset")
	}))

	formatter := label.NewFormatter(cfg.NicknameMaxLength, cfg.NicknamePrefix)

	announcement := services.NewAnnouncementService(catalog, sel, formatter, session, services.AnnouncementConfig{
		ChannelID: cfg.ChannelID,
		GuildID:   cfg.GuildID,
	}, log)

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	sched, err := scheduler.New(scheduler.Config{
		Schedule: cfg.AnnounceSchedule,
		Location: loc,
		Timeout:  cfg.AnnounceTimeout,
	}, announcement, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	var metrics *telemetry.Server
	if cfg.MetricsAddr != "" {
		metrics = telemetry.NewServer(cfg.MetricsAddr)
	}

	cmdHandler := commands.NewHandler(session, announcement, catalog, sched, log, cfg)

	bot := &DailySongBot{
		config:       cfg,
		logger:       log,
		session:      session,
		catalog:      catalog,
		announcement: announcement,
		scheduler:    sched,
		metrics:      metrics,
		cmdHandler:   cmdHandler,
	}

	session.AddHandler(bot.onReady)
	session.AddHandler(cmdHandler.HandleInteraction)

	return bot, nil
}

// Start opens the gateway, registers commands and starts the schedule
func (b *DailySongBot) Start(ctx context.Context) error {
	if b.metrics != nil {
		go func() {
			b.logger.WithField("addr", b.config.MetricsAddr).Info("📈 Metrics endpoint listening")
			if err := b.metrics.ListenAndServe(); err != nil {
				b.logger.WithError(err).Error("Metrics endpoint stopped")
			}
		}()
	}

	b.logger.Info("Opening Discord connection...")
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	b.logger.Info("Registering slash commands...")
	if err := b.cmdHandler.RegisterCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	// Warm the cache so the first /playlist does not wait on YouTube
	if items := b.catalog.Snapshot(ctx); len(items) > 0 {
		b.logger.WithField("songs", len(items)).Info("📁 Playlist loaded")
	} else {
		b.logger.Warn("Playlist is empty or unavailable; will retry on demand")
	}

	b.scheduler.Start()
	return nil
}

// Stop stops the bot gracefully
func (b *DailySongBot) Stop() {
	b.logger.Info("Shutting down services...")

	b.scheduler.Stop()

	if b.metrics != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := b.metrics.Shutdown(ctx); err != nil {
			b.logger.WithError(err).Warn("Failed to stop metrics endpoint")
		}
	}

	b.logger.Info("Closing Discord connection...")
	if err := b.session.Close(); err != nil {
		b.logger.WithError(err).Error("Failed to close Discord session")
	}
}

// onReady is called when the bot is ready
func (b *DailySongBot) onReady(s *discordgo.Session, event *discordgo.Ready) {
	b.logger.Infof("✅ Bot is ready! Logged in as %s", event.User.Username)
	b.logger.Infof("📊 Connected to %d guilds", len(event.Guilds))
	b.logger.Infof("📢 Announcing to channel %s on schedule %q (%s)",
		b.config.ChannelID, b.config.AnnounceSchedule, b.config.Timezone)

	if err := s.UpdateGameStatus(0, "🎵 Daily songs - /help"); err != nil {
		b.logger.WithError(err).Warn("Failed to update status")
	}
}
