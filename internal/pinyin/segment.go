package pinyin

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// vowels are the plain and tone-marked vowels used as the matching alphabet.
	vowels = "aāáǎàeēéěèiīíǐìoōóǒòuūúǔùüǖǘǚǜ"

	// toneMarkVowels are the vowels that carry a tone diacritic.
	toneMarkVowels = "āáǎàēéěèīíǐìōóǒòūúǔùǖǘǚǜ"

	// space matches what a browser's \s does, NBSP included.
	space = `[\s\v\p{Zs}\p{Zl}\p{Zp}\x{FEFF}]`

	// Delimiter separates syllables that were segmented upstream.
	Delimiter = "\u00a0"

	// maxRefinePasses bounds how often a fused token is sent back through the rules.
	maxRefinePasses = 2

	// maxSyllableLen is the longest token accepted without refinement.
	maxSyllableLen = 4
)

var (
	reVowelConsonant = regexp.MustCompile(`(?i)([` + vowels + `])([^` + vowels + `nr])`)
	reDoubleInitial  = regexp.MustCompile(`(?i)(w)([csz]h)`)
	reNasal          = regexp.MustCompile(`(?i)(n)([^` + vowels + `vg])`)
	reOnset          = regexp.MustCompile(`(?i)([` + vowels + `v])([^` + vowels + `ws])([` + vowels + `v])`)
	reNasalG         = regexp.MustCompile(`(?i)([` + vowels + `v])(n)(g)([` + vowels + `v])`)
	reFinalGR        = regexp.MustCompile(`(?i)([gr])([^` + vowels + `])`)
	reSpaces         = regexp.MustCompile(space + `{2,}`)
)

// rule inserts syllable boundaries into a pinyin string.
type rule func(string) string

// rules run in order; each one relies on the boundaries the previous ones left.
var rules = []rule{
	insertAll(reVowelConsonant, "${1} ${2}"),
	insertFirst(reDoubleInitial, "${1} ${2}"),
	insertFirst(reNasal, "${1} ${2}"),
	insertFirst(reOnset, "${1} ${2}${3}"),
	splitNasalG,
	insertFirst(reFinalGR, "${1} ${2}"),
	insertAll(reSpaces, " "),
}

func insertAll(re *regexp.Regexp, template string) rule {
	return func(s string) string {
		return re.ReplaceAllString(s, template)
	}
}

func insertFirst(re *regexp.Regexp, template string) rule {
	return func(s string) string {
		loc := re.FindStringSubmatchIndex(s)
		if loc == nil {
			return s
		}
		return expandAt(re, s, template, loc)
	}
}

func expandAt(re *regexp.Regexp, s, template string, loc []int) string {
	var b strings.Builder
	b.Grow(len(s) + 1)
	b.WriteString(s[:loc[0]])
	b.Write(re.ExpandString(nil, template, s, loc))
	b.WriteString(s[loc[1]:])
	return b.String()
}

// splitNasalG resolves the first vowel-n-g-vowel sequence. A following a, o or
// e can open a syllable by itself, so the -ng final is kept whole ("cháng ān");
// i, u and ü cannot, so g starts the next syllable ("hán guó").
func splitNasalG(s string) string {
	loc := reNasalG.FindStringSubmatchIndex(s)
	if loc == nil {
		return s
	}

	next, _ := utf8.DecodeRuneInString(s[loc[8]:])
	if opensSyllable(next) {
		return expandAt(reNasalG, s, "${1}${2}${3} ${4}", loc)
	}
	return expandAt(reNasalG, s, "${1}${2} ${3}${4}", loc)
}

func opensSyllable(r rune) bool {
	r = unicode.ToLower(r)
	if mark, ok := toneMarks[r]; ok {
		r = mark.base
	}
	return r == 'a' || r == 'o' || r == 'e'
}

// separate runs the boundary rules once over s.
func separate(s string) string {
	for _, r := range rules {
		s = r(s)
	}
	return s
}

// toneMarkCount counts tone-marked vowels in s.
func toneMarkCount(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(toneMarkVowels, r) {
			n++
		}
	}
	return n
}

// fused reports whether a token still looks like more than one syllable.
func fused(token string) bool {
	return utf8.RuneCountInString(token) > maxSyllableLen || toneMarkCount(token) > 1
}

type candidate struct {
	text  string
	depth int
}

// pushCandidates splits s on spaces and pushes the pieces so that the leftmost
// one is popped first.
func pushCandidates(stack []candidate, s string, depth int) []candidate {
	parts := strings.Split(s, " ")
	for i := len(parts) - 1; i >= 0; i-- {
		stack = append(stack, candidate{text: parts[i], depth: depth})
	}
	return stack
}

// Segment splits a pinyin word into syllables, one per expected character.
//
// Boundaries are found heuristically, so the result is best effort: a token
// that is still fused after the refinement passes is returned as it is.
// Only boundaries are added, so joining the result gives back the input's letters.
func Segment(pinyin string) []string {
	syllables := []string{}
	if pinyin == "" {
		return syllables
	}

	stack := pushCandidates(nil, separate(pinyin), 0)
	for len(stack) > 0 {
		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if c.depth < maxRefinePasses && fused(c.text) {
			stack = pushCandidates(stack, separate(c.text), c.depth+1)
			continue
		}
		if s := strings.TrimSpace(c.text); s != "" {
			syllables = append(syllables, s)
		}
	}
	return syllables
}

// SplitDelimited splits pinyin that was already segmented with non-breaking
// spaces. No boundary rules are applied.
func SplitDelimited(pinyin string) []string {
	if pinyin == "" {
		return []string{}
	}
	return strings.Split(pinyin, Delimiter)
}

// Syllables segments pinyin, either heuristically or, when delimited is set,
// by splitting on non-breaking spaces.
func Syllables(pinyin string, delimited bool) []string {
	if delimited {
		return SplitDelimited(pinyin)
	}
	return Segment(pinyin)
}
