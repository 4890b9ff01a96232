// Package tui renders segmented pinyin, coloured ruby and dictionary entries in
// the terminal, and provides the interactive pinzi view.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
)

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - pinyin, subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - hanzi
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorSuccess   = lipgloss.Color("#a8e6cf") // Green - success
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorLabel     = lipgloss.Color("#a8dadc") // Label color
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBgAlt     = lipgloss.Color("#2d3436") // Alt background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
	ColorClass     = lipgloss.Color("#3b82f6") // Part-of-speech badge
	ColorExpr      = lipgloss.Color("#a855f7") // Common expressions
)

// Title styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)
)

// Dictionary entry styles
var (
	HeadwordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	TraditionalStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)

	ClassStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			Background(ColorClass).
			Padding(0, 1)

	PronunciationStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary)

	DefinitionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorLabel).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	ExamplePinyinStyle = lipgloss.NewStyle().
				Foreground(ColorSecondary).
				Italic(true)

	ExpressionPinyinStyle = lipgloss.NewStyle().
				Foreground(ColorExpr).
				Italic(true)

	RelatedWordStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary)
)

// Frequency badges, keyed by lower-cased frequency label.
var frequencyStyles = map[string]lipgloss.Style{
	"high":   lipgloss.NewStyle().Foreground(lipgloss.Color("#166534")).Background(lipgloss.Color("#dcfce7")).Padding(0, 1),
	"medium": lipgloss.NewStyle().Foreground(lipgloss.Color("#854d0e")).Background(lipgloss.Color("#fef9c3")).Padding(0, 1),
	"low":    lipgloss.NewStyle().Foreground(lipgloss.Color("#991b1b")).Background(lipgloss.Color("#fee2e2")).Padding(0, 1),
}

var frequencyAliases = map[string]string{
	"alta":  "high",
	"média": "medium",
	"media": "medium",
	"baixa": "low",
}

var defaultFrequencyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#1f2937")).
	Background(lipgloss.Color("#f3f4f6")).
	Padding(0, 1)

// FrequencyStyle returns the badge style for a frequency label.
func FrequencyStyle(frequency string) lipgloss.Style {
	key := strings.ToLower(strings.TrimSpace(frequency))
	if alias, ok := frequencyAliases[key]; ok {
		key = alias
	}
	if s, ok := frequencyStyles[key]; ok {
		return s
	}
	return defaultFrequencyStyle
}

// ToneStyle returns the foreground style for tone t. Tones without a colour
// render unstyled.
func ToneStyle(p ruby.Palette, t pinyin.Tone) lipgloss.Style {
	c := p.Color(t)
	if c == "" {
		return lipgloss.NewStyle()
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

// Box styles
var (
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)

	BigCharStyle = lipgloss.NewStyle().
			Padding(0, 2)

	SearchBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent).
			Padding(0, 1)
)

// Status styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Italic(true)

	CopiedStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	DividerStyle = lipgloss.NewStyle().
			Foreground(ColorBorder)
)
