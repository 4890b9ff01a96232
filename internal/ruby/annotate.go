package ruby

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/unicode/norm"
)

const (
	attrWord      = "data-pinzi-word"
	attrAnnotated = "data-pinzi-annotated"

	// ClickableClass marks the ruby bases a dictionary popup can attach to.
	ClickableClass = "pinzi-clickable"
)

// DefaultHiddenWords are words whose pinyin is removed from the page.
var DefaultHiddenWords = []string{"上帝", "最初"}

// ReadingSource supplies pinyin for a word when the markup has none.
type ReadingSource interface {
	WordPinyin(word string) string
}

// ReadingFunc adapts a function to ReadingSource.
type ReadingFunc func(word string) string

// WordPinyin calls f.
func (f ReadingFunc) WordPinyin(word string) string { return f(word) }

// Annotator colours the characters of <ruby><rb>…</rb><rt>…</rt></ruby> markup
// by the tone of their syllables.
type Annotator struct {
	Palette   Palette
	Delimited bool          // rt text is already split with non-breaking spaces
	Readings  ReadingSource // optional, fills missing rt text
	hidden    map[string]struct{}
}

// Report summarises one annotation pass.
type Report struct {
	Rubies     int      // ruby elements with an rb
	Annotated  int      // rb elements coloured in this pass
	Hidden     int      // words whose pinyin was removed
	Filled     int      // rt text generated from the reading source
	Skipped    int      // rb elements annotated by an earlier pass
	Mismatched []string // words whose syllable count differs from their length
}

// NewAnnotator creates an annotator. A nil palette uses DefaultPalette.
func NewAnnotator(p Palette, hiddenWords []string) *Annotator {
	if p == nil {
		p = DefaultPalette()
	}
	hidden := make(map[string]struct{}, len(hiddenWords))
	for _, w := range hiddenWords {
		if w = strings.TrimSpace(w); w != "" {
			hidden[w] = struct{}{}
		}
	}
	return &Annotator{Palette: p, hidden: hidden}
}

// Annotate reads an HTML document from r and writes the annotated document to w.
func (a *Annotator) Annotate(r io.Reader, w io.Writer) (Report, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return Report{}, fmt.Errorf("parse HTML: %w", err)
	}

	report := a.AnnotateNode(doc)

	if err := html.Render(w, doc); err != nil {
		return report, fmt.Errorf("render HTML: %w", err)
	}
	return report, nil
}

// AnnotateNode annotates every ruby element below root in place.
func (a *Annotator) AnnotateNode(root *html.Node) Report {
	var report Report
	for _, rubyNode := range findAll(root, atom.Ruby) {
		a.annotateRuby(rubyNode, &report)
	}
	return report
}

func (a *Annotator) annotateRuby(rubyNode *html.Node, report *Report) {
	rb := firstChild(rubyNode, atom.Rb)
	if rb == nil {
		return
	}
	report.Rubies++

	word := norm.NFC.String(strings.TrimSpace(textContent(rb)))
	if word == "" {
		return
	}

	rts := children(rubyNode, atom.Rt)
	if _, ok := a.hidden[word]; ok {
		for _, rt := range rts {
			removeChildren(rt)
		}
		report.Hidden++
		return
	}

	if v, _ := attr(rb, attrAnnotated); v == "true" {
		report.Skipped++
		return
	}

	pinyinText := ""
	if len(rts) > 0 {
		pinyinText = strings.TrimSpace(textContent(rts[0]))
	}
	delimited := a.Delimited
	if pinyinText == "" && a.Readings != nil {
		if pinyinText = a.Readings.WordPinyin(word); pinyinText != "" {
			fillReading(rubyNode, rts, pinyinText)
			report.Filled++
			// generated readings are space separated
			delimited = false
		}
	}

	alignment := Align(word, norm.NFC.String(pinyinText), delimited)
	if alignment.Mismatch() {
		report.Mismatched = append(report.Mismatched, word)
	}

	removeChildren(rb)
	for _, run := range Group(alignment.Chars, a.Palette) {
		rb.AppendChild(runNode(run))
	}
	addClass(rb, ClickableClass)
	setAttr(rb, attrWord, word)
	setAttr(rb, attrAnnotated, "true")
	report.Annotated++
}

// runNode renders a run as a coloured span, or as bare text for the neutral tone.
func runNode(run Run) *html.Node {
	text := &html.Node{Type: html.TextNode, Data: run.Text}
	if run.Color == "" {
		return text
	}

	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr: []html.Attribute{
			{Key: "class", Val: fmt.Sprintf("pinzi-tone-%d", run.Tone)},
			{Key: "style", Val: "color:" + run.Color},
		},
	}
	span.AppendChild(text)
	return span
}

func fillReading(rubyNode *html.Node, rts []*html.Node, text string) {
	var rt *html.Node
	if len(rts) > 0 {
		rt = rts[0]
		removeChildren(rt)
	} else {
		rt = &html.Node{Type: html.ElementNode, Data: "rt", DataAtom: atom.Rt}
		rubyNode.AppendChild(rt)
	}
	rt.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}

func findAll(root *html.Node, a atom.Atom) []*html.Node {
	var found []*html.Node

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == a {
			found = append(found, n)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(root)
	return found
}

func firstChild(n *html.Node, a atom.Atom) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			return c
		}
	}
	return nil
}

func children(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == a {
			out = append(out, c)
		}
	}
	return out
}

func removeChildren(n *html.Node) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		n.RemoveChild(c)
		c = next
	}
}

func textContent(node *html.Node) string {
	var b strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	walk(node)
	return b.String()
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func setAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func addClass(n *html.Node, class string) {
	current, _ := attr(n, "class")
	for _, c := range strings.Fields(current) {
		if c == class {
			return
		}
	}
	setAttr(n, "class", strings.TrimSpace(current+" "+class))
}
