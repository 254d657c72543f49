package entities

import "strings"

// CatalogItem is a single playable entry of the remote playlist.
// Artist holds the raw channel title; use label.CleanArtist for display.
type CatalogItem struct {
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url"`
}

// NewCatalogItem creates a catalog item
func NewCatalogItem(title, artist, url string) CatalogItem {
	return CatalogItem{
		Title:  title,
		Artist: artist,
		URL:    url,
	}
}

// Matches reports whether query appears in the title or in the given
// display artist, ignoring case.
func (c CatalogItem) Matches(query, displayArtist string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(c.Title), q) ||
		strings.Contains(strings.ToLower(displayArtist), q)
}
