package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/tui"
	"github.com/spf13/cobra"
)

var hanziCmd = &cobra.Command{
	Use:   "hanzi <text>",
	Short: "Show pinyin for Chinese text, coloured by tone",
	Long: `Look up the most common reading of every character and print the text as
ruby: pinyin above, characters below, both coloured by tone.

Example:
  pinzi hanzi 你好
  pinzi hanzi --numbers 中国人`,
	Args: cobra.MinimumNArgs(1),
	RunE: runHanzi,
}

func init() {
	rootCmd.AddCommand(hanziCmd)
	hanziCmd.Flags().Bool("numbers", false, "also print tone-number notation")
}

func runHanzi(cmd *cobra.Command, args []string) error {
	numbers, _ := cmd.Flags().GetBool("numbers")
	parser := pinyin.NewParser()
	p := palette()

	words := strings.FieldsFunc(strings.Join(args, " "), func(r rune) bool {
		return !unicode.Is(unicode.Han, r)
	})
	if len(words) == 0 {
		return fmt.Errorf("no Chinese characters found in: %s", strings.Join(args, " "))
	}

	for i, word := range words {
		if i > 0 {
			fmt.Println()
		}
		reading := parser.WordPinyin(word)
		fmt.Println(tui.RenderRuby(word, reading, false, p))

		if numbers {
			syllables := pinyin.Segment(reading)
			for j, syl := range syllables {
				syllables[j] = pinyin.Numbered(syl)
			}
			fmt.Println(tui.HelpStyle.Render(strings.Join(syllables, " ")))
		}
	}
	return nil
}
