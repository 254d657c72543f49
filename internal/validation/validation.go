package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/vuongmanhnghia/daily-song-bot/internal/errors"
)

const (
	// MinRandomCount and MaxRandomCount bound /random
	MinRandomCount = 1
	MaxRandomCount = 10
	// DefaultRandomCount is used when /random gets no count
	DefaultRandomCount = 5

	maxQueryLength = 100
)

// SanitizeInput sanitizes user input by removing potentially dangerous characters
func SanitizeInput(input string) string {
	// Remove null bytes
	input = strings.ReplaceAll(input, "\x00", "")

	// Trim whitespace
	input = strings.TrimSpace(input)

	return input
}

// ValidateSearchQuery sanitizes and checks a search query
func ValidateSearchQuery(query string) (string, error) {
	query = SanitizeInput(query)

	if query == "" {
		return "", errors.NewUserError(errors.ErrInvalidInput, "⚠️ Please enter a song title or artist to search for")
	}

	if utf8.RuneCountInString(query) > maxQueryLength {
		return "", errors.WrapUserError(errors.ErrInvalidInput, "⚠️ Search query is too long (max %d characters)", maxQueryLength)
	}

	return query, nil
}

// ClampRandomCount keeps a requested count inside [MinRandomCount, MaxRandomCount]
func ClampRandomCount(count int) int {
	return max(MinRandomCount, min(count, MaxRandomCount))
}

// TruncateString cuts s to maxLen characters, ending in "..." when shortened
func TruncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen > 3 {
		return string(runes[:maxLen-3]) + "..."
	}

	if maxLen <= 0 {
		return ""
	}
	return string(runes[:maxLen])
}
