// Package ruby pairs pinyin syllables with the characters of a word and turns
// ruby-annotated HTML into tone-coloured markup.
package ruby

import (
	"unicode"

	"github.com/pierophp/pinyin-extension/internal/pinyin"
)

// Palette maps tones to CSS colours. An empty colour means "keep the page colour".
type Palette map[pinyin.Tone]string

// DefaultPalette returns blue, purple, green and red for tones 1 to 4.
func DefaultPalette() Palette {
	return Palette{
		pinyin.ToneNeutral: "",
		pinyin.Tone1:       "#3b82f6",
		pinyin.Tone2:       "#a855f7",
		pinyin.Tone3:       "#10b981",
		pinyin.Tone4:       "#ef4444",
	}
}

// Color returns the colour for a tone, or "" when the tone has none.
func (p Palette) Color(t pinyin.Tone) string {
	return p[t]
}

// Char is one character of a word with the syllable paired to it.
type Char struct {
	Text     string
	Syllable string // Empty when the pinyin ran out before the word did
	Tone     pinyin.Tone
}

// Alignment is a word paired positionally with its segmented pinyin.
type Alignment struct {
	Chars     []Char
	Syllables []string
}

// Mismatch reports whether the syllable count differs from the character count.
func (a Alignment) Mismatch() bool {
	return len(a.Chars) != len(a.Syllables)
}

// Align segments pinyin once and pairs syllable i with character i of word.
// Whitespace in word is skipped. Extra syllables are left unpaired and extra
// characters get the neutral tone.
func Align(word, pinyinText string, delimited bool) Alignment {
	syllables := pinyin.Syllables(pinyinText, delimited)

	var chars []Char
	for _, r := range word {
		if unicode.IsSpace(r) {
			continue
		}
		c := Char{Text: string(r)}
		if i := len(chars); i < len(syllables) {
			c.Syllable = syllables[i]
			c.Tone = pinyin.ClassifyTone(c.Syllable)
		}
		chars = append(chars, c)
	}

	return Alignment{Chars: chars, Syllables: syllables}
}

// Run is a stretch of consecutive characters sharing a tone.
type Run struct {
	Text      string      `json:"text"`
	Syllables []string    `json:"syllables"`
	Tone      pinyin.Tone `json:"tone"`
	Color     string      `json:"color,omitempty"`
}

// Group merges consecutive characters of equal tone into runs.
func Group(chars []Char, p Palette) []Run {
	var runs []Run
	for _, c := range chars {
		if n := len(runs); n > 0 && runs[n-1].Tone == c.Tone {
			runs[n-1].Text += c.Text
			runs[n-1].Syllables = append(runs[n-1].Syllables, c.Syllable)
			continue
		}
		runs = append(runs, Run{
			Text:      c.Text,
			Syllables: []string{c.Syllable},
			Tone:      c.Tone,
			Color:     p.Color(c.Tone),
		})
	}
	return runs
}
