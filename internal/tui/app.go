package tui

import (
	"context"
	"errors"
	"strings"
	"time"
	"unicode"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/pierophp/pinyin-extension/internal/dictionary"
	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
	"github.com/pierophp/pinyin-extension/internal/tui/bigchar"
)

const lookupTimeout = 20 * time.Second

// Dictionary resolves words to entries.
type Dictionary interface {
	Lookup(ctx context.Context, word string) (*dictionary.Entry, error)
}

// Options configures the interactive App.
type Options struct {
	Palette    ruby.Palette
	Delimited  bool              // split pinyin on U+00A0 only
	Dictionary Dictionary        // nil disables lookups
	Glyphs     *bigchar.Renderer // nil disables the big character preview
	Parser     *pinyin.Parser    // fills pinyin when only hanzi are typed
	Copy       func(string) error
}

// Message types
type lookupResultMsg struct {
	word  string
	entry *dictionary.Entry
	err   error
}

type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// App is the interactive segmentation and lookup view.
type App struct {
	input textinput.Model
	opts  Options

	word       string
	pinyinText string
	delimited  bool // pinyinText is split with U+00A0
	syllables  []string

	entry   *dictionary.Entry
	loading bool
	err     error
	copied  bool

	width  int
	height int
}

// NewApp creates the interactive view.
func NewApp(opts Options) App {
	if opts.Palette == nil {
		opts.Palette = ruby.DefaultPalette()
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Placeholder = "希望 xīwàng, or just pinyin..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 50
	ti.PromptStyle = lipgloss.NewStyle().Foreground(ColorSecondary)
	ti.TextStyle = lipgloss.NewStyle().Foreground(ColorAccent)

	return App{input: ti, opts: opts}
}

// Init initializes the model
func (m App) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m, m.lookup()
		case "ctrl+y":
			if len(m.syllables) == 0 {
				return m, nil
			}
			if err := m.opts.Copy(strings.Join(m.syllables, " ")); err != nil {
				m.err = err
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = max(msg.Width-8, 20)
		return m, nil

	case lookupResultMsg:
		if msg.word != m.word {
			return m, nil // stale
		}
		m.loading = false
		m.entry, m.err = msg.entry, msg.err
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	before := m.input.Value()
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.analyze()
	}
	return m, cmd
}

// analyze re-segments the current input.
func (m *App) analyze() {
	m.word, m.pinyinText = splitInput(m.input.Value())
	m.delimited = m.opts.Delimited
	if m.word != "" && m.pinyinText == "" && m.opts.Parser != nil {
		// generated readings are space separated
		m.pinyinText = m.opts.Parser.WordPinyin(m.word)
		m.delimited = false
	}
	m.syllables = pinyin.Syllables(m.pinyinText, m.delimited)
	m.entry = nil
	m.err = nil
	m.loading = false
}

func (m *App) lookup() tea.Cmd {
	if m.word == "" || m.loading {
		return nil
	}
	if m.opts.Dictionary == nil {
		m.err = errors.New("dictionary not configured")
		return nil
	}

	m.loading = true
	m.err = nil
	dict, word := m.opts.Dictionary, m.word
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
		defer cancel()
		entry, err := dict.Lookup(ctx, word)
		return lookupResultMsg{word: word, entry: entry, err: err}
	}
}

// splitInput separates a leading hanzi word from the pinyin that follows it.
func splitInput(s string) (word, pinyinText string) {
	s = strings.TrimSpace(s)
	first, rest, _ := strings.Cut(s, " ")
	if !hasHan(first) {
		return "", s
	}
	return first, strings.TrimSpace(rest)
}

func hasHan(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Han, r) {
			return true
		}
	}
	return false
}

// View renders the UI
func (m App) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("拼字 pinzi"))
	b.WriteString("\n\n")
	b.WriteString(SearchBoxStyle.Render(m.input.View()))
	b.WriteString("\n")

	if m.word != "" {
		b.WriteString("\n")
		b.WriteString(m.renderWord())
		b.WriteString("\n")
	} else if len(m.syllables) > 0 {
		b.WriteString("\n")
		b.WriteString(RenderSyllables(m.syllables, m.opts.Palette))
		b.WriteString("\n")
	}

	if m.loading {
		b.WriteString("\n")
		b.WriteString(LoadingStyle.Render("Looking up " + m.word + "..."))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	}

	if m.entry != nil {
		width := 60
		if m.width > 0 {
			width = min(m.width-8, 100)
		}
		b.WriteString("\n")
		b.WriteString(BoxStyle.Render(RenderEntry(m.entry, width, m.opts.Palette)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.copied {
		b.WriteString(CopiedStyle.Render("✓ Copied!"))
	} else {
		b.WriteString(HelpStyle.Render(m.helpLine()))
	}

	return b.String()
}

func (m App) renderWord() string {
	rubyView := RenderRuby(m.word, m.pinyinText, m.delimited, m.opts.Palette)

	a := ruby.Align(m.word, m.pinyinText, m.delimited)
	if a.Mismatch() {
		rubyView += "\n" + WarningStyle.Render("pinyin does not match the characters")
	}

	if m.opts.Glyphs == nil || len(a.Chars) == 0 {
		return rubyView
	}
	glyph := m.opts.Glyphs.Render(a.Chars[0].Text, 16, 8)
	if glyph == "" {
		return rubyView
	}
	glyph = BigCharStyle.Inherit(ToneStyle(m.opts.Palette, a.Chars[0].Tone)).Render(glyph)
	return lipgloss.JoinHorizontal(lipgloss.Center, glyph, rubyView)
}

func (m App) helpLine() string {
	var parts []string
	if m.word != "" && m.opts.Dictionary != nil {
		parts = append(parts, "enter: look up")
	}
	if len(m.syllables) > 0 {
		parts = append(parts, "ctrl+y: copy syllables")
	}
	parts = append(parts, "esc: quit")
	return strings.Join(parts, " • ")
}
