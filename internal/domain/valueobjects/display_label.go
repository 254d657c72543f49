package valueobjects

import "fmt"

// DisplayLabel is the derived presentation of a catalog item
type DisplayLabel struct {
	CleanedArtist string `json:"cleaned_artist"`
	ComposedLabel string `json:"composed_label"`
}

// String returns the composed label
func (l DisplayLabel) String() string {
	return l.ComposedLabel
}

// AnnouncementLine renders the untruncated "title - artist" form used in logs
func (l DisplayLabel) AnnouncementLine(title string) string {
	if l.CleanedArtist == "" {
		return title
	}
	return fmt.Sprintf("%s - %s", title, l.CleanedArtist)
}
