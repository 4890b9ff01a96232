package ruby

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func annotate(t *testing.T, a *Annotator, doc string) (string, Report) {
	t.Helper()

	var out bytes.Buffer
	report, err := a.Annotate(strings.NewReader(doc), &out)
	require.NoError(t, err)
	return out.String(), report
}

func page(body string) string {
	return "<!doctype html><html><head></head><body>" + body + "</body></html>"
}

func TestAnnotateColorsCharactersByTone(t *testing.T) {
	t.Parallel()

	got, report := annotate(t, NewAnnotator(nil, nil), page(`<p><ruby><rb>希望</rb><rt>xīwàng</rt></ruby></p>`))

	assert.Contains(t, got, `<span class="pinzi-tone-1" style="color:#3b82f6">希</span>`)
	assert.Contains(t, got, `<span class="pinzi-tone-4" style="color:#ef4444">望</span>`)
	assert.Contains(t, got, `class="pinzi-clickable"`)
	assert.Contains(t, got, `data-pinzi-word="希望"`)
	assert.Contains(t, got, `<rt>xīwàng</rt>`, "pinyin is left in place")
	assert.Equal(t, Report{Rubies: 1, Annotated: 1}, report)
}

func TestAnnotateGroupsSameToneAndLeavesNeutralPlain(t *testing.T) {
	t.Parallel()

	got, _ := annotate(t, NewAnnotator(nil, nil), page(
		`<ruby><rb>天空</rb><rt>tiānkōng</rt></ruby><ruby><rb>谢谢</rb><rt>xièxie</rt></ruby>`))

	assert.Contains(t, got, `<span class="pinzi-tone-1" style="color:#3b82f6">天空</span>`)
	assert.Contains(t, got, `<span class="pinzi-tone-4" style="color:#ef4444">谢</span>谢</rb>`)
}

func TestAnnotateHidesConfiguredWords(t *testing.T) {
	t.Parallel()

	a := NewAnnotator(nil, DefaultHiddenWords)
	got, report := annotate(t, a, page(`<ruby><rb>上帝</rb><rt>shàngdì</rt></ruby>`))

	assert.Contains(t, got, `<rt></rt>`)
	assert.NotContains(t, got, "shàngdì")
	assert.NotContains(t, got, ClickableClass)
	assert.Equal(t, 1, report.Hidden)
	assert.Equal(t, 0, report.Annotated)
}

func TestAnnotateReportsMismatchedWords(t *testing.T) {
	t.Parallel()

	got, report := annotate(t, NewAnnotator(nil, nil), page(`<ruby><rb>中国人</rb><rt>zhōngguó</rt></ruby>`))

	assert.Equal(t, []string{"中国人"}, report.Mismatched)
	assert.Contains(t, got, "</span>人</rb>", "unpaired character stays uncoloured")
}

func TestAnnotateFillsMissingReading(t *testing.T) {
	t.Parallel()

	a := NewAnnotator(nil, nil)
	a.Readings = ReadingFunc(func(word string) string {
		if word == "好" {
			return "hǎo"
		}
		return ""
	})

	got, report := annotate(t, a, page(`<ruby><rb>好</rb></ruby>`))

	assert.Contains(t, got, `<rt>hǎo</rt>`)
	assert.Contains(t, got, `<span class="pinzi-tone-3" style="color:#10b981">好</span>`)
	assert.Equal(t, 1, report.Filled)
}

func TestAnnotateIsIdempotent(t *testing.T) {
	t.Parallel()

	a := NewAnnotator(nil, nil)
	first, _ := annotate(t, a, page(`<ruby><rb>希望</rb><rt>xīwàng</rt></ruby>`))
	second, report := annotate(t, a, first)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, report.Skipped)
	assert.Equal(t, 0, report.Annotated)
}

func TestAnnotateDelimitedMode(t *testing.T) {
	t.Parallel()

	a := NewAnnotator(nil, nil)
	a.Delimited = true
	got, report := annotate(t, a, page(`<ruby><rb>长安</rb><rt>cháng&nbsp;ān</rt></ruby>`))

	assert.Empty(t, report.Mismatched)
	assert.Contains(t, got, `<span class="pinzi-tone-2" style="color:#a855f7">长</span>`)
	assert.Contains(t, got, `<span class="pinzi-tone-1" style="color:#3b82f6">安</span>`)
}

func TestAnnotateDelimitedModeSegmentsFilledReading(t *testing.T) {
	t.Parallel()

	a := NewAnnotator(nil, nil)
	a.Delimited = true
	a.Readings = ReadingFunc(func(string) string { return "zhōng guó" })
	got, report := annotate(t, a, page(`<ruby><rb>中国</rb><rt></rt></ruby>`))

	assert.Empty(t, report.Mismatched)
	assert.Equal(t, 1, report.Filled)
	assert.Contains(t, got, `<span class="pinzi-tone-1" style="color:#3b82f6">中</span>`)
	assert.Contains(t, got, `<span class="pinzi-tone-2" style="color:#a855f7">国</span>`)
}

func TestAnnotateIgnoresRubyWithoutBase(t *testing.T) {
	t.Parallel()

	_, report := annotate(t, NewAnnotator(nil, nil), page(`<ruby>漢<rt>hàn</rt></ruby><p>plain</p>`))
	assert.Equal(t, Report{}, report)
}

func TestAddClassKeepsExistingClasses(t *testing.T) {
	t.Parallel()

	got, _ := annotate(t, NewAnnotator(nil, nil), page(`<ruby><rb class="word">好</rb><rt>hǎo</rt></ruby>`))
	assert.Contains(t, got, `class="word pinzi-clickable"`)
}
