package pinyin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var segmentCases = []struct {
	name string
	in   string
	want []string
}{
	{"already spaced", "wǒ xī wàng", []string{"wǒ", "xī", "wàng"}},
	{"vowel then consonant", "xīwàng", []string{"xī", "wàng"}},
	{"ng final before a vowel", "chángān", []string{"cháng", "ān"}},
	{"n final before g initial", "hánguó", []string{"hán", "guó"}},
	{"consonant initials", "nǐhǎo", []string{"nǐ", "hǎo"}},
	{"m initial", "wǒmen", []string{"wǒ", "men"}},
	{"capitalised", "Běijīng", []string{"Běi", "jīng"}},
	{"neutral second syllable", "xièxie", []string{"xiè", "xie"}},
	{"ng before y", "péngyou", []string{"péng", "you"}},
	{"double n", "diànnǎo", []string{"diàn", "nǎo"}},
	{"ng before r", "shēngrì", []string{"shēng", "rì"}},
	{"three syllables", "zhōngguórén", []string{"zhōng", "guó", "rén"}},
	{"four syllables needs refinement", "xīwàngmíngtiān", []string{"xī", "wàng", "míng", "tiān"}},
	{"surrounding whitespace", "  xīwàng ", []string{"xī", "wàng"}},
}

func TestSegment(t *testing.T) {
	t.Parallel()

	for _, tt := range segmentCases {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Segment(tt.in))
		})
	}
}

func TestSegmentEmpty(t *testing.T) {
	t.Parallel()

	got := Segment("")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSegmentDoesNotSplitNgBetweenNAndGBeforeA(t *testing.T) {
	t.Parallel()

	assert.NotEqual(t, []string{"chán", "gān"}, Segment("chángān"))
}

// Keeping -ng whole before a, o and e also claims the g of a following
// "gòng", so "míngònghé" reads as míng òng hé rather than mín gòng hé.
func TestSegmentKeepsNgBeforeOpeningVowel(t *testing.T) {
	t.Parallel()

	assert.Equal(t,
		[]string{"Zhōng", "huá", "rén", "míng", "òng", "hé", "guó"},
		Segment("Zhōnghuárénmíngònghéguó"))
	assert.Equal(t, []string{"hán", "guó"}, Segment("hánguó"))
}

func TestSegmentIsIdempotent(t *testing.T) {
	t.Parallel()

	for _, tt := range segmentCases {
		first := Segment(tt.in)
		again := Segment(strings.Join(first, " "))
		assert.Equal(t, first, again, "re-segmenting %q", tt.in)
	}
}

func TestSegmentIsLossless(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"xīwàngmíngtiān",
		"zhōngguórén",
		"Zhōnghuárénmíngònghéguó",
		"wǒ xī wàng",
		"lǜsè",
		"nǚér",
		"qwxyzbcd",
		"ā ā ā",
		"xī'ān",
	}
	for _, in := range inputs {
		got := strings.Join(Segment(in), "")
		assert.Equal(t, strings.ReplaceAll(in, " ", ""), got, "letters of %q", in)
	}
}

// Input that resists every rule still terminates and comes back in one piece.
func TestSegmentBestEffortOnUnsegmentableInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"zhuāng"}, Segment("zhuāng"))
	assert.Equal(t, []string{"bcdfhjklm"}, Segment("bcdfhjklm"))
}

func TestSegmentSyllablesAreTrimmed(t *testing.T) {
	t.Parallel()

	for _, s := range Segment("wǒ\u00a0xīwàng\tmíngtiān") {
		assert.Equal(t, strings.TrimSpace(s), s)
		assert.NotEmpty(t, s)
	}
}

func TestSplitDelimited(t *testing.T) {
	t.Parallel()

	in := "xī" + Delimiter + "wàng" + Delimiter + "míngtiān"
	assert.Equal(t, []string{"xī", "wàng", "míngtiān"}, SplitDelimited(in))
	assert.Equal(t, []string{"chángān"}, SplitDelimited("chángān"), "no heuristics in delimiter mode")
	assert.Equal(t, []string{"a b"}, SplitDelimited("a b"), "ordinary spaces are not delimiters")

	got := SplitDelimited("")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSyllablesDispatchesOnMode(t *testing.T) {
	t.Parallel()

	in := "xī" + Delimiter + "wàng"
	assert.Equal(t, SplitDelimited(in), Syllables(in, true))
	assert.Equal(t, Segment("xīwàng"), Syllables("xīwàng", false))
}

func TestSeparateRewritesOnlyFirstMatchForOneShotRules(t *testing.T) {
	t.Parallel()

	// Rule 6 separates only the first -ng final per pass.
	assert.Equal(t, "wàng míngtiān", separate("wàngmíngtiān"))
}

func TestFused(t *testing.T) {
	t.Parallel()

	assert.False(t, fused("wàng"))
	assert.False(t, fused("xi"))
	assert.True(t, fused("zhuāng"), "longer than four letters")
	assert.True(t, fused("xīà"), "two tone marks")
	assert.Equal(t, 2, toneMarkCount("xīwàng"))
}
