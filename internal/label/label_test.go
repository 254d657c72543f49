package label

import (
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestCleanArtist(t *testing.T) {
	tests := []struct {
		raw      string
		expected string
	}{
		{"Artist Name - Topic", "Artist Name"},
		{"Band - Official Music Video", "Band"},
		{"Singer - VEVO", "Singer"},
		{"IU Official", "IU"},
		{"Adele - OFFICIAL", "Adele"},
		{"aespa - topic", "aespa"},
		{"  Spaced  ", "Spaced"},
		{"BTS", "BTS"},
		{"The Weeknd - Official VEVO", "The Weeknd"},
		// Each rule runs once, in order: "- VEVO" is gone before "- Topic" is exposed
		{"Some Band - Topic - VEVO", "Some Band - Topic"},
		// "- Topic" goes first, which leaves the broad "Official" rule to eat the rest
		{"Official Hige Dandism - Topic", ""},
		{"Official Channel", ""},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanArtist(tt.raw))
		})
	}
}

func TestComposeLabel(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		artist   string
		expected string
	}{
		{
			name:     "fits untouched",
			title:    "Blueming",
			artist:   "IU",
			expected: "🎵 Blueming - IU",
		},
		{
			name:     "exactly at budget",
			title:    "Exactly",
			artist:   "XXXXXXXXXXXXXXXXXXXX",
			expected: "🎵 Exactly - XXXXXXXXXXXXXXXXXXXX",
		},
		{
			name:     "multibyte counts as one character",
			title:    "Through the Night (밤편지)",
			artist:   "IU",
			expected: "🎵 Through the Night (밤편지) - IU",
		},
		{
			name:     "tier one truncates title only",
			title:    "A Very Long Song Title Indeed",
			artist:   "Artist",
			expected: "🎵 A Very Long Song T... - Artist",
		},
		{
			name:     "tier one with hangul",
			title:    "좋은 날 (Good Day) Live Version",
			artist:   "아이유",
			expected: "🎵 좋은 날 (Good Day) Live ... - 아이유",
		},
		{
			name:     "tier one at smallest title budget",
			title:    "Hello World Song",
			artist:   "ABCDEFGHIJKLMNOPQRSTU",
			expected: "🎵 Hel... - ABCDEFGHIJKLMNOPQRSTU",
		},
		{
			name:     "tier two when title budget hits five",
			title:    "Hello World Song",
			artist:   "ABCDEFGHIJKLMNOPQRSTUV",
			expected: "🎵 Hello World ... - ABCDEFGHI...",
		},
		{
			name:     "tier two long title and artist",
			title:    "A Very Long Song Title That Exceeds Budget",
			artist:   "An Equally Long Artist Name",
			expected: "🎵 A Very Long ... - An Equall...",
		},
		{
			name:     "tier two keeps short title whole",
			title:    "Hi",
			artist:   "An Extremely Long Artist Name Here",
			expected: "🎵 Hi - An Extremely Long A...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComposeLabel(tt.title, tt.artist, DefaultMaxLength, DefaultPrefix)
			assert.Equal(t, tt.expected, got)
			assert.LessOrEqual(t, utf8.RuneCountInString(got), DefaultMaxLength)
		})
	}
}

func TestComposeLabelLongPairHasEllipsis(t *testing.T) {
	got := ComposeLabel("A Very Long Song Title That Exceeds Budget", "An Equally Long Artist Name", 32, DefaultPrefix)

	assert.LessOrEqual(t, utf8.RuneCountInString(got), 32)
	assert.Contains(t, got, "...")
}

func TestComposeLabelNeverExceedsBudget(t *testing.T) {
	titles := []string{"", "A", "Short", strings.Repeat("t", 31), strings.Repeat("가", 60)}
	artists := []string{"", "X", "Medium Artist", strings.Repeat("a", 32), strings.Repeat("a", 80)}

	for maxLength := 0; maxLength <= 40; maxLength++ {
		for _, title := range titles {
			for _, artist := range artists {
				got := ComposeLabel(title, artist, maxLength, DefaultPrefix)
				if n := utf8.RuneCountInString(got); n > maxLength {
					t.Fatalf("ComposeLabel(%q, %q, %d) = %q (%d runes)", title, artist, maxLength, got, n)
				}
				if !utf8.ValidString(got) {
					t.Fatalf("ComposeLabel(%q, %q, %d) produced invalid UTF-8", title, artist, maxLength)
				}
			}
		}
	}
}

func TestComposeLabelCustomPrefix(t *testing.T) {
	got := ComposeLabel("Song", "Artist", 32, "> ")
	assert.Equal(t, "> Song - Artist", got)
}

func TestFormatterFormat(t *testing.T) {
	f := NewFormatter(0, DefaultPrefix)
	assert.Equal(t, DefaultMaxLength, f.MaxLength)

	got := f.Format("A Very Long Song Title Indeed", "Artist - Topic")
	assert.Equal(t, "Artist", got.CleanedArtist)
	assert.Equal(t, "🎵 A Very Long Song T... - Artist", got.ComposedLabel)
	assert.Equal(t, "A Very Long Song Title Indeed - Artist", got.AnnouncementLine("A Very Long Song Title Indeed"))
}

func TestFormatterCustomRules(t *testing.T) {
	f := NewFormatter(32, DefaultPrefix)
	f.Rules = append([]Rule{}, DefaultRules...)
	f.Rules = append(f.Rules, Rule{Pattern: regexp.MustCompile(`(?i)VEVO$`)})

	assert.Equal(t, "Taylor Swift", f.CleanArtist("Taylor SwiftVEVO"))
	assert.Equal(t, "Taylor SwiftVEVO", CleanArtist("Taylor SwiftVEVO"))
}
