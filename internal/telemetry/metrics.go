// Package telemetry exposes Prometheus metrics for announcements, catalog fetches and commands.
package telemetry

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// AnnouncementsTotal counts announcement runs by result
	AnnouncementsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "songbot_announcements_total",
		Help: "Number of song announcements by result",
	}, []string{"result"})

	// AnnounceDuration observes a full announcement run in seconds
	AnnounceDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "songbot_announce_duration_seconds",
		Help:    "Announcement duration seconds",
		Buckets: prometheus.DefBuckets,
	})

	// CatalogFetchesTotal counts playlist fetches by result
	CatalogFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "songbot_catalog_fetches_total",
		Help: "Number of playlist fetches by result",
	}, []string{"result"})

	// CatalogSize is the item count of the last successful fetch
	CatalogSize = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "songbot_catalog_size",
		Help: "Items in the most recently fetched playlist",
	})

	// HistoryResetsTotal counts selection history resets by reason
	HistoryResetsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "songbot_history_resets_total",
		Help: "Number of selection history resets by reason",
	}, []string{"reason"})

	// CommandsTotal counts slash command invocations
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "songbot_commands_total",
		Help: "Number of slash commands handled",
	}, []string{"command"})
)

// Announcement results
const (
	ResultSuccess      = "success"
	ResultEmptyCatalog = "empty_catalog"
	ResultSendFailed   = "send_failed"
)

// Catalog fetch results
const (
	FetchOK    = "ok"
	FetchEmpty = "empty"
	FetchError = "error"
)

// ObserveAnnouncement records the result and duration of one run
func ObserveAnnouncement(result string, started time.Time) {
	AnnouncementsTotal.WithLabelValues(result).Inc()
	AnnounceDuration.Observe(time.Since(started).Seconds())
}

// ObserveFetch records a catalog fetch outcome
func ObserveFetch(result string, size int) {
	CatalogFetchesTotal.WithLabelValues(result).Inc()
	if result == FetchOK {
		CatalogSize.Set(float64(size))
	}
}

// Server serves /metrics until Shutdown is called
type Server struct {
	srv *http.Server
}

// NewServer creates a metrics server bound to addr
func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Handler returns the underlying mux, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

// ListenAndServe blocks until the server stops; a normal shutdown returns nil
func (s *Server) ListenAndServe() error {
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
