package youtube

import (
	"context"
	"fmt"
	"slices"
	"time"

	"golang.org/x/sync/singleflight"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/telemetry"
	"github.com/vuongmanhnghia/daily-song-bot/internal/utils"
	"github.com/vuongmanhnghia/daily-song-bot/pkg/logger"
)

const (
	// pageSize is the API maximum for playlistItems.list
	pageSize = 50

	// Titles YouTube substitutes for entries that can no longer be played
	deletedVideoTitle = "Deleted video"
	privateVideoTitle = "Private video"

	unknownArtist = "Unknown"
	watchURL      = "https://www.youtube.com/watch?v="
)

// CatalogConfig configures the playlist source
type CatalogConfig struct {
	APIKey     string
	PlaylistID string
	// CacheTTL bounds how long Snapshot may reuse a fetch; zero disables reuse
	CacheTTL time.Duration
}

// CatalogSource reads a YouTube playlist through the Data API
type CatalogSource struct {
	svc        *yt.Service
	playlistID string
	cacheTTL   time.Duration
	cache      *utils.SmartCache[[]entities.CatalogItem]
	group      singleflight.Group
	logger     *logger.Logger
}

// NewCatalogSource creates a playlist source. Extra client options are appended
// after the API key, which lets tests point the client at a local server.
func NewCatalogSource(ctx context.Context, cfg CatalogConfig, log *logger.Logger, opts ...option.ClientOption) (*CatalogSource, error) {
	if cfg.PlaylistID == "" {
		return nil, fmt.Errorf("playlist ID is required")
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, opts...)
	svc, err := yt.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"playlist":  cfg.PlaylistID,
		"cache_ttl": cfg.CacheTTL.String(),
	}).Info("YouTube catalog source initialized")

	return &CatalogSource{
		svc:        svc,
		playlistID: cfg.PlaylistID,
		cacheTTL:   cfg.CacheTTL,
		cache:      utils.NewSmartCache[[]entities.CatalogItem](1, cfg.CacheTTL),
		logger:     log,
	}, nil
}

// FetchAll reads every page of the playlist. Failures are logged and yield an
// empty slice; callers treat empty as "nothing to announce".
func (c *CatalogSource) FetchAll(ctx context.Context) []entities.CatalogItem {
	result, _, _ := c.group.Do(c.playlistID, func() (interface{}, error) {
		items := c.fetch(ctx)
		if len(items) > 0 && c.cacheTTL > 0 {
			c.cache.Set(c.playlistID, items)
		}
		return items, nil
	})

	return slices.Clone(result.([]entities.CatalogItem))
}

// Snapshot returns a recent fetch when one is cached, otherwise fetches
func (c *CatalogSource) Snapshot(ctx context.Context) []entities.CatalogItem {
	if c.cacheTTL > 0 {
		if items, ok := c.cache.Get(c.playlistID); ok {
			c.logger.Debug("Catalog cache hit")
			return slices.Clone(items)
		}
	}
	return c.FetchAll(ctx)
}

// Invalidate drops any cached snapshot
func (c *CatalogSource) Invalidate() {
	c.cache.Delete(c.playlistID)
}

func (c *CatalogSource) fetch(ctx context.Context) []entities.CatalogItem {
	started := time.Now()
	items := make([]entities.CatalogItem, 0, pageSize)
	pages := 0

	call := c.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(c.playlistID).
		MaxResults(pageSize)

	err := call.Pages(ctx, func(resp *yt.PlaylistItemListResponse) error {
		pages++
		for _, entry := range resp.Items {
			if item, ok := toCatalogItem(entry); ok {
				items = append(items, item)
			}
		}
		return nil
	})
	if err != nil {
		c.logger.WithError(err).WithFields(map[string]interface{}{
			"playlist": c.playlistID,
			"pages":    pages,
		}).Error("YouTube playlist fetch failed")
		telemetry.ObserveFetch(telemetry.FetchError, 0)
		return []entities.CatalogItem{}
	}

	if len(items) == 0 {
		telemetry.ObserveFetch(telemetry.FetchEmpty, 0)
	} else {
		telemetry.ObserveFetch(telemetry.FetchOK, len(items))
	}

	c.logger.WithFields(map[string]interface{}{
		"playlist": c.playlistID,
		"count":    len(items),
		"pages":    pages,
		"took":     time.Since(started).Round(time.Millisecond).String(),
	}).Info("✅ Playlist fetched")

	return items
}

// toCatalogItem maps a playlist entry, dropping removed and private videos
func toCatalogItem(entry *yt.PlaylistItem) (entities.CatalogItem, bool) {
	if entry == nil || entry.Snippet == nil {
		return entities.CatalogItem{}, false
	}
	snippet := entry.Snippet

	if snippet.Title == deletedVideoTitle || snippet.Title == privateVideoTitle {
		return entities.CatalogItem{}, false
	}

	videoID := ""
	if snippet.ResourceId != nil {
		videoID = snippet.ResourceId.VideoId
	}

	artist := snippet.VideoOwnerChannelTitle
	if artist == "" {
		artist = unknownArtist
	}

	return entities.NewCatalogItem(snippet.Title, artist, watchURL+videoID), true
}
