package selector

import (
	"math/rand/v2"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/entities"
)

// Sample returns up to n distinct items drawn uniformly from catalog.
// It does not touch any selection history.
func Sample(catalog []entities.CatalogItem, n int) []entities.CatalogItem {
	return sampleWith(catalog, n, rand.Perm)
}

// Sample draws using the selector's random source without recording history
func (s *Selector) Sample(catalog []entities.CatalogItem, n int) []entities.CatalogItem {
	s.mu.Lock()
	intn := s.intn
	s.mu.Unlock()

	return sampleWith(catalog, n, func(size int) []int {
		perm := make([]int, size)
		for i := range perm {
			j := intn(i + 1)
			perm[i] = perm[j]
			perm[j] = i
		}
		return perm
	})
}

func sampleWith(catalog []entities.CatalogItem, n int, perm func(int) []int) []entities.CatalogItem {
	if n <= 0 || len(catalog) == 0 {
		return []entities.CatalogItem{}
	}
	if n > len(catalog) {
		n = len(catalog)
	}

	out := make([]entities.CatalogItem, 0, n)
	for _, idx := range perm(len(catalog))[:n] {
		out = append(out, catalog[idx])
	}
	return out
}
