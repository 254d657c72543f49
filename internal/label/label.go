// Package label cleans channel names into artist names and builds the short
// "now playing" label used as the bot's nickname.
package label

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/vuongmanhnghia/daily-song-bot/internal/domain/valueobjects"
)

const (
	// DefaultMaxLength is Discord's nickname limit
	DefaultMaxLength = 32
	// DefaultPrefix precedes every composed label
	DefaultPrefix = "🎵 "

	separator = " - "
	ellipsis  = "..."
	// minTitleBudget is the title room below which the artist gets truncated too
	minTitleBudget = 5
)

// Rule is one cleanup substitution
type Rule struct {
	Pattern     *regexp.Regexp
	Replacement string
}

// DefaultRules strip channel decorations. Order matters: the broad "Official"
// rule must run after the more specific "- Topic" rule.
var DefaultRules = []Rule{
	{Pattern: regexp.MustCompile(`(?i)\s*-\s*Topic\s*$`)},
	{Pattern: regexp.MustCompile(`(?i)\s*-\s*Official.*$`)},
	{Pattern: regexp.MustCompile(`(?i)\s*Official.*$`)},
	{Pattern: regexp.MustCompile(`(?i)\s*-\s*VEVO\s*$`)},
}

// CleanArtist applies DefaultRules to a raw channel title
func CleanArtist(raw string) string {
	return applyRules(DefaultRules, raw)
}

func applyRules(rules []Rule, raw string) string {
	out := raw
	for _, r := range rules {
		out = r.Pattern.ReplaceAllString(out, r.Replacement)
	}
	return strings.TrimSpace(out)
}

// ComposeLabel builds "{prefix}{title} - {artist}" and shortens it to fit
// maxLength characters (runes, not bytes).
func ComposeLabel(title, cleanedArtist string, maxLength int, prefix string) string {
	label := prefix + title + separator + cleanedArtist
	if runeLen(label) <= maxLength {
		return label
	}

	maxSongLength := maxLength - runeLen(prefix+separator+cleanedArtist)
	if maxSongLength > minTitleBudget {
		label = prefix + truncateRunes(title, maxSongLength-len(ellipsis)) + ellipsis + separator + cleanedArtist
		return clampRunes(label, maxLength)
	}

	availableLength := maxLength - runeLen(prefix+separator+ellipsis)
	songLength := min(runeLen(title), availableLength/2)
	songLength = max(songLength, 0)
	artistLength := max(availableLength-songLength-len(ellipsis), 0)

	label = prefix + shorten(title, songLength) + separator + shorten(cleanedArtist, artistLength)
	return clampRunes(label, maxLength)
}

// shorten cuts s to n runes and marks the cut with an ellipsis
func shorten(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return truncateRunes(s, n) + ellipsis
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// clampRunes is the last guard for budgets smaller than the fixed decorations
func clampRunes(s string, n int) string {
	if runeLen(s) <= n {
		return s
	}
	return truncateRunes(s, n)
}

func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// Formatter carries the label settings used across the bot
type Formatter struct {
	MaxLength int
	Prefix    string
	Rules     []Rule
}

// NewFormatter creates a formatter; zero maxLength falls back to DefaultMaxLength
func NewFormatter(maxLength int, prefix string) *Formatter {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	return &Formatter{
		MaxLength: maxLength,
		Prefix:    prefix,
		Rules:     DefaultRules,
	}
}

// CleanArtist cleans raw with the formatter's rules
func (f *Formatter) CleanArtist(raw string) string {
	return applyRules(f.Rules, raw)
}

// Format cleans the artist and composes the nickname label
func (f *Formatter) Format(title, rawArtist string) valueobjects.DisplayLabel {
	artist := f.CleanArtist(rawArtist)
	return valueobjects.DisplayLabel{
		CleanedArtist: artist,
		ComposedLabel: ComposeLabel(title, artist, f.MaxLength, f.Prefix),
	}
}
