package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/vuongmanhnghia/daily-song-bot/internal/bot"
	"github.com/vuongmanhnghia/daily-song-bot/internal/config"
	"github.com/vuongmanhnghia/daily-song-bot/pkg/logger"
)

func main() {
	// Initialize logger; reconfigured once the config is loaded
	log := logger.New(logger.Config{
		Level:  "info",
		Format: "text",
	})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Configure(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	log.Infof("Starting %s v%s", cfg.BotName, cfg.Version)
	log.Infof("Discord token: %s", cfg.GetSafeToken())
	log.Infof("Playlist: %s", cfg.PlaylistID)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	// Initialize bot
	songBot, err := bot.New(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	// Start bot
	if err := songBot.Start(ctx); err != nil {
		log.Fatalf("Failed to start bot: %v", err)
	}

	log.Info("✅ Bot is now running. Press CTRL-C to exit.")

	<-ctx.Done()

	// Cleanup
	log.Info("Shutting down gracefully...")
	songBot.Stop()
	log.Info("Bot stopped successfully")
}
