package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/tui"
	"github.com/pierophp/pinyin-extension/internal/tui/bigchar"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch an interactive terminal UI for exploring pinyin.

Type a word followed by its pinyin ("希望 xīwàng"), a word alone, or just
pinyin. The syllables are split and coloured by tone as you type.

Controls:
  Enter   Look the word up in the dictionary
  Ctrl+Y  Copy the syllables
  Esc     Quit`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().Bool("nbsp", false, "split pinyin on non-breaking spaces only")
}

func runInteractive(cmd *cobra.Command, args []string) error {
	delimited, _ := cmd.Flags().GetBool("nbsp")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	glyphs := bigchar.New(cfg.FontPath)
	if err := glyphs.Err(); err != nil {
		logf("big character preview disabled: %v", err)
	}

	opts := tui.Options{
		Palette:   cfg.Palette(),
		Delimited: delimited,
		Glyphs:    glyphs,
		Parser:    pinyin.NewParser(),
	}

	client, closeDict, err := newDictionary(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: dictionary disabled: %v\n", err)
	} else {
		defer closeDict()
		opts.Dictionary = client
	}

	p := tea.NewProgram(tui.NewApp(opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}
