// Package scheduler triggers the daily song announcement on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/errors"
	"github.com/vuongmanhnghia/daily-song-bot/pkg/logger"
)

// Announcer publishes one selection
type Announcer interface {
	Announce(ctx context.Context) (entities.CatalogItem, error)
}

// Config holds scheduler configuration
type Config struct {
	Schedule string
	Location *time.Location
	Timeout  time.Duration
}

// Scheduler runs the announcement job
type Scheduler struct {
	cron      *cron.Cron
	entryID   cron.EntryID
	announcer Announcer
	timeout   time.Duration
	logger    *logger.Logger

	ctx      context.Context
	cancel   context.CancelFunc
	stopOnce sync.Once
}

// New validates the schedule and registers the announcement job
func New(cfg Config, announcer Announcer, log *logger.Logger) (*Scheduler, error) {
	loc := cfg.Location
	if loc == nil {
		loc = time.Local
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	c := cron.New(
		cron.WithParser(parser),
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:      c,
		announcer: announcer,
		timeout:   timeout,
		logger:    log,
		ctx:       ctx,
		cancel:    cancel,
	}

	id, err := c.AddFunc(cfg.Schedule, s.run)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w %q: %v", errors.ErrInvalidSchedule, cfg.Schedule, err)
	}
	s.entryID = id

	return s, nil
}

// Start starts the cron loop in the background
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.WithField("next_run", s.Next().Format(time.RFC3339)).Info("⏰ Daily song schedule started")
}

// Stop stops the cron loop and waits for a running job. Safe to call multiple times.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() {
		s.cancel()
		<-s.cron.Stop().Done()
		s.logger.Info("Daily song schedule stopped")
	})
}

// Next returns the next scheduled run; zero until Start is called
func (s *Scheduler) Next() time.Time {
	return s.cron.Entry(s.entryID).Next
}

// RunNow runs the job synchronously, outside the schedule
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	s.logger.Info("⏰ Daily song time!")

	item, err := s.announcer.Announce(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Scheduled announcement failed")
		return
	}

	s.logger.WithField("title", item.Title).Info("Scheduled announcement completed")
}
