package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyToneMarkedVowels(t *testing.T) {
	t.Parallel()

	classes := map[Tone][]string{
		Tone1: {"ā", "ē", "ī", "ō", "ū", "ǖ"},
		Tone2: {"á", "é", "í", "ó", "ú", "ǘ"},
		Tone3: {"ǎ", "ě", "ǐ", "ǒ", "ǔ", "ǚ"},
		Tone4: {"à", "è", "ì", "ò", "ù", "ǜ"},
	}
	for want, marks := range classes {
		for _, v := range marks {
			assert.Equal(t, want, ClassifyTone(v), "ClassifyTone(%q)", v)
		}
	}
}

func TestClassifyToneSyllables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Tone
	}{
		{"", ToneNeutral},
		{"ma", ToneNeutral},
		{"de", ToneNeutral},
		{"lü", ToneNeutral},
		{"mā", Tone1},
		{"má", Tone2},
		{"mǎ", Tone3},
		{"mà", Tone4},
		{"wàng", Tone4},
		{"nǚ", Tone3},
		{"lǜ", Tone4},
		{"zhuāng", Tone1},
		{"hello, world", ToneNeutral},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyTone(tt.in), "ClassifyTone(%q)", tt.in)
	}
}

// Marks from several classes resolve by class order, not by position.
func TestClassifyTonePriorityOrder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Tone1, ClassifyTone("hǎoā"))
	assert.Equal(t, Tone1, ClassifyTone("wàngxī"))
	assert.Equal(t, Tone2, ClassifyTone("ǎá"))
	assert.Equal(t, Tone3, ClassifyTone("wàngwǒ"))
}

func TestToneString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "neutral", ToneNeutral.String())
	assert.Equal(t, "third", Tone3.String())
	assert.True(t, Tone4.Valid())
	assert.False(t, Tone(5).Valid())
}

func TestStripTones(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "xi wang", StripTones("xī wàng"))
	assert.Equal(t, "nü", StripTones("nǚ"))
	assert.Equal(t, "", StripTones(""))
}

func TestNumbered(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"wàng", "wang4"},
		{"xī", "xi1"},
		{"nǚ", "nü3"},
		{"ma", "ma5"},
		{"", ""},
		{"。", "。"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Numbered(tt.in), "Numbered(%q)", tt.in)
	}
}
