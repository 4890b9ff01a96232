// Package pinyin segments romanized Mandarin into syllables and classifies
// their tones.
package pinyin

import (
	"strings"
	"unicode"

	gopinyin "github.com/mozillazg/go-pinyin"
)

// Parser looks up pinyin readings for Han characters.
type Parser struct {
	args gopinyin.Args
}

// NewParser creates a new pinyin parser.
func NewParser() *Parser {
	args := gopinyin.NewArgs()
	args.Style = gopinyin.Tone // Returns tone marks: zhōng
	args.Heteronym = true      // Return all possible readings
	return &Parser{args: args}
}

// Reading is one pronunciation of a character.
type Reading struct {
	Full     string // Pinyin with tone mark (e.g., "hǎo")
	Numbered string // Tone-number notation (e.g., "hao3")
	Tone     Tone
}

// Readings returns all pinyin readings for a character, most common first.
func (p *Parser) Readings(char string) []string {
	result := gopinyin.Pinyin(char, p.args)
	if len(result) == 0 {
		return nil
	}
	return result[0]
}

// ParseChar returns every reading of a character with its tone.
func (p *Parser) ParseChar(char string) []Reading {
	readings := p.Readings(char)
	if readings == nil {
		return nil
	}

	results := make([]Reading, len(readings))
	for i, reading := range readings {
		results[i] = Reading{
			Full:     reading,
			Numbered: Numbered(reading),
			Tone:     ClassifyTone(reading),
		}
	}
	return results
}

// WordPinyin returns the first reading of each Han character in word, joined
// with spaces. Characters go-pinyin does not know are skipped.
func (p *Parser) WordPinyin(word string) string {
	var syllables []string
	for _, r := range word {
		if !unicode.Is(unicode.Han, r) {
			continue
		}
		if readings := p.Readings(string(r)); len(readings) > 0 {
			syllables = append(syllables, readings[0])
		}
	}
	return strings.Join(syllables, " ")
}
