package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
	"github.com/pierophp/pinyin-extension/internal/tui"
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <pinyin...>",
	Short: "Split pinyin into syllables",
	Long: `Split a run of pinyin with tone marks into syllables.

By default boundaries are found with spelling heuristics. With --nbsp the input
is split on non-breaking spaces (U+00A0) only, for text that already marks
syllable boundaries.

Example:
  pinzi segment xīwàng           → xī wàng
  pinzi segment --numbers chángān → chang2 an1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSegment,
}

func init() {
	rootCmd.AddCommand(segmentCmd)
	segmentCmd.Flags().Bool("nbsp", false, "split on non-breaking spaces only")
	segmentCmd.Flags().Bool("numbers", false, "print tone-number notation (wang4)")
	segmentCmd.Flags().Bool("json", false, "print JSON")
}

type segmentOutput struct {
	Syllables []string `json:"syllables"`
	Tones     []int    `json:"tones"`
	Numbered  []string `json:"numbered"`
}

func runSegment(cmd *cobra.Command, args []string) error {
	delimited, _ := cmd.Flags().GetBool("nbsp")
	numbers, _ := cmd.Flags().GetBool("numbers")
	asJSON, _ := cmd.Flags().GetBool("json")

	syllables := pinyin.Syllables(strings.Join(args, " "), delimited)
	logf("%d syllable(s)", len(syllables))

	if asJSON {
		out := segmentOutput{
			Syllables: syllables,
			Tones:     make([]int, len(syllables)),
			Numbered:  make([]string, len(syllables)),
		}
		for i, syl := range syllables {
			out.Tones[i] = int(pinyin.ClassifyTone(syl))
			out.Numbered[i] = pinyin.Numbered(syl)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(out)
	}

	if numbers {
		numbered := make([]string, len(syllables))
		for i, syl := range syllables {
			numbered[i] = pinyin.Numbered(syl)
		}
		fmt.Println(strings.Join(numbered, " "))
		return nil
	}

	fmt.Println(tui.RenderSyllables(syllables, palette()))
	return nil
}

// palette returns the configured tone palette, falling back to the default
// when the config cannot be read.
func palette() ruby.Palette {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return ruby.DefaultPalette()
	}
	return cfg.Palette()
}
