package selector

import (
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
	"github.com/vuongmanhnghia/daily-song-bot/internal/errors"
)

func makeCatalog(n int) []entities.CatalogItem {
	items := make([]entities.CatalogItem, n)
	for i := range items {
		items[i] = entities.NewCatalogItem(
			fmt.Sprintf("Song %d", i+1),
			fmt.Sprintf("Artist %d - Topic", i+1),
			fmt.Sprintf("https://www.youtube.com/watch?v=id%d", i+1),
		)
	}
	return items
}

func seeded() Option {
	return WithRand(rand.New(rand.NewPCG(42, 7)))
}

func TestSelectEmptyCatalog(t *testing.T) {
	s := New(seeded())

	_, err := s.Select(nil)
	require.ErrorIs(t, err, errors.ErrEmptyCatalog)

	_, err = s.Select([]entities.CatalogItem{})
	require.ErrorIs(t, err, errors.ErrEmptyCatalog)

	assert.Equal(t, 0, s.Len(), "empty catalog must not touch history")
}

func TestSelectAppendsTitle(t *testing.T) {
	s := New(seeded())
	catalog := makeCatalog(10)

	item, err := s.Select(catalog)
	require.NoError(t, err)
	assert.Contains(t, catalog, item)
	assert.Equal(t, []string{item.Title}, s.History())
}

func TestSelectNeverRepeatsWithoutReset(t *testing.T) {
	var resets int
	s := New(seeded(), WithResetHook(func(ResetReason) { resets++ }))
	catalog := makeCatalog(20)

	for call := 0; call < 500; call++ {
		before := s.History()
		resetsBefore := resets

		item, err := s.Select(catalog)
		require.NoError(t, err)

		if resets == resetsBefore {
			assert.NotContains(t, before, item.Title, "call %d repeated a title without a reset", call)
		}
	}
}

func TestSelectHistoryBound(t *testing.T) {
	for _, size := range []int{1, 2, 3, 5, 7, 10, 33} {
		t.Run(fmt.Sprintf("catalog_%d", size), func(t *testing.T) {
			s := New(seeded())
			catalog := makeCatalog(size)
			limit := int(math.Ceil(DefaultResetRatio * float64(size)))

			for call := 0; call < 200; call++ {
				_, err := s.Select(catalog)
				require.NoError(t, err)
				assert.LessOrEqual(t, s.Len(), limit)
			}
		})
	}
}

func TestSelectFiveItemsResetsWithinTenCalls(t *testing.T) {
	var reasons []ResetReason
	s := New(seeded(), WithResetHook(func(r ResetReason) { reasons = append(reasons, r) }))
	catalog := makeCatalog(5)

	seen := make(map[string]int)
	reappeared := false
	for call := 1; call <= 10; call++ {
		item, err := s.Select(catalog)
		require.NoError(t, err)

		if _, ok := seen[item.Title]; ok && call < 10 {
			reappeared = true
		}
		seen[item.Title] = call
	}

	require.NotEmpty(t, reasons)
	assert.Equal(t, ResetThreshold, reasons[0])
	assert.True(t, reappeared, "an earlier title should come back before call 10")
}

func TestSelectFirstFourAreDistinct(t *testing.T) {
	s := New(seeded())
	catalog := makeCatalog(5)

	titles := make(map[string]bool)
	for i := 0; i < 4; i++ {
		item, err := s.Select(catalog)
		require.NoError(t, err)
		titles[item.Title] = true
	}

	assert.Len(t, titles, 4)
	assert.Equal(t, 4, s.Len())

	// Fifth call crosses 0.8 * 5 and starts over
	_, err := s.Select(catalog)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
}

func TestSelectExhaustedByDuplicateTitles(t *testing.T) {
	var reasons []ResetReason
	s := New(seeded(), WithResetHook(func(r ResetReason) { reasons = append(reasons, r) }))

	// Ten entries but only two distinct titles: threshold is 8, titles run out after 2
	catalog := make([]entities.CatalogItem, 0, 10)
	for i := 0; i < 10; i++ {
		title := "Same A"
		if i%2 == 1 {
			title = "Same B"
		}
		catalog = append(catalog, entities.NewCatalogItem(title, "Artist", fmt.Sprintf("https://example.com/%d", i)))
	}

	for i := 0; i < 3; i++ {
		_, err := s.Select(catalog)
		require.NoError(t, err)
	}

	require.Equal(t, []ResetReason{ResetExhausted}, reasons)
	assert.Equal(t, 1, s.Len())
}

func TestSelectToleratesStaleHistory(t *testing.T) {
	s := New(seeded())
	old := makeCatalog(10)
	for i := 0; i < 3; i++ {
		_, err := s.Select(old)
		require.NoError(t, err)
	}

	fresh := []entities.CatalogItem{
		entities.NewCatalogItem("Brand New", "Someone", "https://example.com/new"),
		entities.NewCatalogItem("Another New", "Someone", "https://example.com/new2"),
		entities.NewCatalogItem("Third New", "Someone", "https://example.com/new3"),
		entities.NewCatalogItem("Fourth New", "Someone", "https://example.com/new4"),
		entities.NewCatalogItem("Fifth New", "Someone", "https://example.com/new5"),
	}

	item, err := s.Select(fresh)
	require.NoError(t, err)
	assert.Contains(t, fresh, item)
	assert.Equal(t, 4, s.Len())
}

func TestRecent(t *testing.T) {
	s := New(seeded())
	catalog := makeCatalog(50)

	assert.Empty(t, s.Recent(10))

	for i := 0; i < 15; i++ {
		_, err := s.Select(catalog)
		require.NoError(t, err)
	}

	full := s.History()
	recent := s.Recent(10)
	require.Len(t, recent, 10)
	assert.Equal(t, full[5:], recent)
	assert.Empty(t, s.Recent(0))

	s.Reset()
	assert.Equal(t, 0, s.Len())
}

func TestSampleDistinct(t *testing.T) {
	catalog := makeCatalog(8)

	got := Sample(catalog, 5)
	require.Len(t, got, 5)

	titles := make(map[string]bool)
	for _, item := range got {
		titles[item.Title] = true
	}
	assert.Len(t, titles, 5)

	assert.Len(t, Sample(catalog, 20), 8)
	assert.Empty(t, Sample(catalog, 0))
	assert.Empty(t, Sample(nil, 3))
}

func TestSelectorSampleLeavesHistory(t *testing.T) {
	s := New(seeded())
	catalog := makeCatalog(6)

	got := s.Sample(catalog, 6)
	require.Len(t, got, 6)
	assert.ElementsMatch(t, catalog, got)
	assert.Equal(t, 0, s.Len())
}
