package tui

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pierophp/pinyin-extension/internal/dictionary"
	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
)

// RenderSyllables joins syllables with spaces, colouring each by its tone.
func RenderSyllables(syllables []string, p ruby.Palette) string {
	parts := make([]string, len(syllables))
	for i, syl := range syllables {
		parts[i] = ToneStyle(p, pinyin.ClassifyTone(syl)).Render(syl)
	}
	return strings.Join(parts, " ")
}

// RenderRuby renders the pinyin of word on one line and its characters on the
// next, each column padded to the wider of the two and coloured by tone.
// Syllables without a character are appended to the pinyin line.
func RenderRuby(word, pinyinText string, delimited bool, p ruby.Palette) string {
	a := ruby.Align(word, pinyinText, delimited)

	var top, bottom []string
	for _, c := range a.Chars {
		w := max(runewidth.StringWidth(c.Syllable), runewidth.StringWidth(c.Text))
		style := ToneStyle(p, c.Tone)
		top = append(top, style.Render(runewidth.FillRight(c.Syllable, w)))
		bottom = append(bottom, style.Render(runewidth.FillRight(c.Text, w)))
	}
	for _, syl := range a.Syllables[min(len(a.Chars), len(a.Syllables)):] {
		top = append(top, HelpStyle.Render(syl))
	}

	return strings.Join(top, " ") + "\n" + strings.Join(bottom, " ")
}

// RenderEntry renders a dictionary entry the way the popup lays it out:
// headword, then every meaning with its examples, related words and notes.
func RenderEntry(e *dictionary.Entry, width int, p ruby.Palette) string {
	if e == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeadwordStyle.Render(e.Simplified))
	if e.HasTraditional() {
		b.WriteString(" ")
		b.WriteString(TraditionalStyle.Render("(" + e.Traditional + ")"))
	}
	b.WriteString("\n")

	if len(e.Meanings) == 0 {
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render("No meanings found."))
		return b.String()
	}

	for i, m := range e.Meanings {
		if i > 0 {
			b.WriteString("\n")
			b.WriteString(DividerStyle.Render(strings.Repeat("─", max(width, 20))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		renderMeaning(&b, m, width, p)
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderMeaning(b *strings.Builder, m dictionary.Meaning, width int, p ruby.Palette) {
	var header []string
	if m.Class != "" {
		header = append(header, ClassStyle.Render(m.Class))
	}
	if m.Pronunciation != "" {
		header = append(header, RenderSyllables(pinyin.Segment(m.Pronunciation), p))
	}
	if m.Frequency != "" {
		header = append(header, FrequencyStyle(m.Frequency).Render(strings.ToUpper(m.Frequency)))
	}
	if len(header) > 0 {
		b.WriteString(strings.Join(header, " "))
		b.WriteString("\n")
	}

	if m.Definition != "" {
		b.WriteString(DefinitionStyle.Render(wordWrap(m.Definition, width, "")))
		b.WriteString("\n")
	}

	if m.Usage != "" {
		b.WriteString(LabelStyle.Render("Usage: "))
		b.WriteString(ValueStyle.Render(wordWrap(m.Usage, width, "")))
		b.WriteString("\n")
	}

	if len(m.Examples) > 0 {
		b.WriteString(LabelStyle.Render("Examples:"))
		b.WriteString("\n")
		for _, ex := range m.Examples {
			renderExample(b, ex, width, ExamplePinyinStyle.Render)
		}
	}

	renderRelated(b, "Synonyms:", m.Synonyms, width)
	renderRelated(b, "Antonyms:", m.Antonyms, width)
	renderRelated(b, "Classifiers:", m.Classifiers, width)

	if len(m.CommonExpressions) > 0 {
		b.WriteString(LabelStyle.Render("Common expressions:"))
		b.WriteString("\n")
		for _, ex := range m.CommonExpressions {
			renderExample(b, ex, width, ExpressionPinyinStyle.Render)
		}
	}

	if m.Notes != "" {
		b.WriteString(LabelStyle.Render("Notes: "))
		b.WriteString(ValueStyle.Render(wordWrap(m.Notes, width, "")))
		b.WriteString("\n")
	}
}

func renderExample(b *strings.Builder, ex dictionary.Example, width int, pinyinStyle func(...string) string) {
	line := "  " + ex.Simplified
	if ex.Traditional != "" && ex.Traditional != ex.Simplified {
		line += " " + TraditionalStyle.Render("("+ex.Traditional+")")
	}
	b.WriteString(ValueStyle.Render(line))
	b.WriteString("\n")
	if ex.Pinyin != "" {
		b.WriteString("  " + pinyinStyle(ex.Pinyin))
		b.WriteString("\n")
	}
	if ex.Translation != "" {
		b.WriteString(HelpStyle.Render(wordWrap(ex.Translation, width, "  ")))
		b.WriteString("\n")
	}
}

func renderRelated(b *strings.Builder, label string, words []dictionary.Word, width int) {
	if len(words) == 0 {
		return
	}

	b.WriteString(LabelStyle.Render(label))
	b.WriteString("\n")
	for _, w := range words {
		b.WriteString(fmt.Sprintf("  %s %s\n", RelatedWordStyle.Render(w.Simplified), ExamplePinyinStyle.Render(w.Pinyin)))
		if w.Usage != "" {
			b.WriteString(HelpStyle.Render(wordWrap(w.Usage, width, "    ")))
			b.WriteString("\n")
		}
	}
}

// wordWrap wraps s at width display columns, prefixing every line with indent.
func wordWrap(s string, width int, indent string) string {
	if width <= 0 {
		width = 60
	}
	width -= runewidth.StringWidth(indent)
	if width < 4 {
		width = 4
	}

	var lines []string
	var currentLine strings.Builder
	currentWidth := 0

	for _, word := range strings.Fields(s) {
		wordWidth := runewidth.StringWidth(word)
		if currentWidth+wordWidth+1 > width && currentWidth > 0 {
			lines = append(lines, indent+currentLine.String())
			currentLine.Reset()
			currentWidth = 0
		}
		if currentWidth > 0 {
			currentLine.WriteString(" ")
			currentWidth++
		}
		currentLine.WriteString(word)
		currentWidth += wordWidth
	}
	if currentLine.Len() > 0 {
		lines = append(lines, indent+currentLine.String())
	}
	return strings.Join(lines, "\n")
}
