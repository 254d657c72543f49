// Package selector picks catalog items at random while avoiding recent repeats.
package selector

import (
	"math/rand/v2"
	"sync"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/errors"
)

// DefaultResetRatio is the history size, relative to the catalog, at which history is cleared
const DefaultResetRatio = 0.8

// ResetReason explains why the history was cleared
type ResetReason string

const (
	// ResetThreshold means history reached the reset ratio of the catalog
	ResetThreshold ResetReason = "threshold"
	// ResetExhausted means every catalog title was already in history
	ResetExhausted ResetReason = "exhausted"
)

// Option configures a Selector
type Option func(*Selector)

// WithRand sets the random source used for picks
func WithRand(r *rand.Rand) Option {
	return func(s *Selector) {
		s.intn = r.IntN
	}
}

// WithResetHook registers a callback invoked every time history is cleared.
// The hook runs with the selector lock held and must not call back into it.
func WithResetHook(hook func(ResetReason)) Option {
	return func(s *Selector) {
		s.onReset = hook
	}
}

// Selector owns the selection history for the lifetime of the process
type Selector struct {
	mu      sync.Mutex
	history []string
	intn    func(n int) int
	onReset func(ResetReason)
}

// New creates a selector with an empty history
func New(opts ...Option) *Selector {
	s := &Selector{
		intn: rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select picks one item from catalog, preferring titles not selected recently,
// and records the pick. It returns ErrEmptyCatalog when catalog has no items.
func (s *Selector) Select(catalog []entities.CatalogItem) (entities.CatalogItem, error) {
	if len(catalog) == 0 {
		return entities.CatalogItem{}, errors.ErrEmptyCatalog
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if float64(len(s.history)) >= DefaultResetRatio*float64(len(catalog)) {
		s.resetLocked(ResetThreshold)
	}

	seen := make(map[string]struct{}, len(s.history))
	for _, title := range s.history {
		seen[title] = struct{}{}
	}

	available := make([]entities.CatalogItem, 0, len(catalog))
	for _, item := range catalog {
		if _, ok := seen[item.Title]; !ok {
			available = append(available, item)
		}
	}

	// Small catalogs with duplicate titles can run dry before the threshold fires
	if len(available) == 0 {
		available = catalog
		s.resetLocked(ResetExhausted)
	}

	chosen := available[s.intn(len(available))]
	s.history = append(s.history, chosen.Title)

	return chosen, nil
}

// History returns a copy of the selected titles, oldest first
func (s *Selector) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// Recent returns up to n most recently selected titles, oldest first
func (s *Selector) Recent(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n <= 0 {
		return []string{}
	}
	start := len(s.history) - n
	if start < 0 {
		start = 0
	}

	out := make([]string, len(s.history)-start)
	copy(out, s.history[start:])
	return out
}

// Len returns the current history size
func (s *Selector) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.history)
}

// Reset clears the history
func (s *Selector) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = nil
}

// resetLocked clears history (must be called with lock held)
func (s *Selector) resetLocked(reason ResetReason) {
	s.history = nil
	if s.onReset != nil {
		s.onReset(reason)
	}
}
