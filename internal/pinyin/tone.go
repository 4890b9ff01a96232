package pinyin

import (
	"strings"
	"unicode"
)

// Tone is a Mandarin tone number. ToneNeutral covers both the neutral tone and
// syllables without a recognised tone mark.
type Tone int

const (
	ToneNeutral Tone = 0
	Tone1       Tone = 1 // High level - ˉ
	Tone2       Tone = 2 // Rising - ˊ
	Tone3       Tone = 3 // Dipping - ˇ
	Tone4       Tone = 4 // Falling - ˋ
)

// Tones lists every tone, neutral first.
var Tones = []Tone{ToneNeutral, Tone1, Tone2, Tone3, Tone4}

// toneClasses are checked in this order by ClassifyTone.
var toneClasses = []struct {
	tone  Tone
	marks string
}{
	{Tone1, "āēīōūǖ"},
	{Tone2, "áéíóúǘ"},
	{Tone3, "ǎěǐǒǔǚ"},
	{Tone4, "àèìòùǜ"},
}

// ClassifyTone returns the tone of a syllable from its diacritic.
//
// Tone classes are tested in order 1, 2, 3, 4 and the first class present
// anywhere in the input wins, so "hǎoā" is tone 1. Input without a recognised
// mark, including the empty string, is ToneNeutral.
func ClassifyTone(syllable string) Tone {
	if syllable == "" {
		return ToneNeutral
	}
	for _, class := range toneClasses {
		if strings.ContainsAny(syllable, class.marks) {
			return class.tone
		}
	}
	return ToneNeutral
}

// String returns the tone name.
func (t Tone) String() string {
	switch t {
	case Tone1:
		return "first"
	case Tone2:
		return "second"
	case Tone3:
		return "third"
	case Tone4:
		return "fourth"
	default:
		return "neutral"
	}
}

// Valid reports whether t is one of the five tones.
func (t Tone) Valid() bool {
	return t >= ToneNeutral && t <= Tone4
}

type markedVowel struct {
	base rune
	tone Tone
}

var toneMarks = map[rune]markedVowel{
	'ā': {'a', Tone1}, 'á': {'a', Tone2}, 'ǎ': {'a', Tone3}, 'à': {'a', Tone4},
	'ē': {'e', Tone1}, 'é': {'e', Tone2}, 'ě': {'e', Tone3}, 'è': {'e', Tone4},
	'ī': {'i', Tone1}, 'í': {'i', Tone2}, 'ǐ': {'i', Tone3}, 'ì': {'i', Tone4},
	'ō': {'o', Tone1}, 'ó': {'o', Tone2}, 'ǒ': {'o', Tone3}, 'ò': {'o', Tone4},
	'ū': {'u', Tone1}, 'ú': {'u', Tone2}, 'ǔ': {'u', Tone3}, 'ù': {'u', Tone4},
	'ǖ': {'ü', Tone1}, 'ǘ': {'ü', Tone2}, 'ǚ': {'ü', Tone3}, 'ǜ': {'ü', Tone4},
}

// StripTones replaces every tone-marked vowel with its plain vowel.
func StripTones(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if mark, ok := toneMarks[r]; ok {
			b.WriteRune(mark.base)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Numbered converts a diacritic syllable to tone-number notation
// ("wàng" -> "wang4"). Syllables without a mark get 5, the usual digit for the
// neutral tone; input that has no letters is returned unchanged.
func Numbered(syllable string) string {
	if strings.IndexFunc(syllable, unicode.IsLetter) < 0 {
		return syllable
	}

	tone := ClassifyTone(syllable)
	digit := "5"
	if tone != ToneNeutral {
		digit = string(rune('0' + int(tone)))
	}
	return StripTones(syllable) + digit
}
