// Package embeds builds the Discord embeds the bot sends.
package embeds

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// Colors for embeds
const (
	ColorSong    = 0xFF6B6B // Coral, daily song and random picks
	ColorList    = 0x4ECDC4 // Teal, playlist listing
	ColorSearch  = 0xFFD93D // Yellow, search results
	ColorHistory = 0x95E1D3 // Mint, history
	ColorHelp    = 0x9B59B6 // Purple, help
	ColorSuccess = 0x57F287 // Green
	ColorError   = 0xED4245 // Red
	ColorInfo    = 0x3498DB // Blue
)

// EmbedBuilder helps build consistent embeds
type EmbedBuilder struct {
	embed *discordgo.MessageEmbed
}

// NewEmbed creates a new embed builder
func NewEmbed() *EmbedBuilder {
	return &EmbedBuilder{
		embed: &discordgo.MessageEmbed{
			Color: ColorInfo,
		},
	}
}

// Title sets the embed title
func (b *EmbedBuilder) Title(title string) *EmbedBuilder {
	b.embed.Title = title
	return b
}

// Description sets the embed description
func (b *EmbedBuilder) Description(desc string) *EmbedBuilder {
	b.embed.Description = desc
	return b
}

// Color sets the embed color
func (b *EmbedBuilder) Color(color int) *EmbedBuilder {
	b.embed.Color = color
	return b
}

// Field adds a field to the embed
func (b *EmbedBuilder) Field(name, value string, inline bool) *EmbedBuilder {
	b.embed.Fields = append(b.embed.Fields, &discordgo.MessageEmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	})
	return b
}

// Footer sets the footer text
func (b *EmbedBuilder) Footer(text string) *EmbedBuilder {
	b.embed.Footer = &discordgo.MessageEmbedFooter{Text: text}
	return b
}

// Timestamp sets the timestamp
func (b *EmbedBuilder) Timestamp(ts time.Time) *EmbedBuilder {
	b.embed.Timestamp = ts.Format(time.RFC3339)
	return b
}

// Build returns the built embed
func (b *EmbedBuilder) Build() *discordgo.MessageEmbed {
	return b.embed
}

// Error renders a red error embed
func Error(message string) *discordgo.MessageEmbed {
	return NewEmbed().Description("❌ " + message).Color(ColorError).Build()
}

// Success renders a green confirmation embed
func Success(message string) *discordgo.MessageEmbed {
	return NewEmbed().Description("✅ " + message).Color(ColorSuccess).Build()
}

// Notice renders a message that already carries its own icon
func Notice(message string, color int) *discordgo.MessageEmbed {
	return NewEmbed().Description(message).Color(color).Build()
}
