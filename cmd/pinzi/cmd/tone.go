package cmd

import (
	"fmt"

	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/tui"
	"github.com/spf13/cobra"
)

var toneCmd = &cobra.Command{
	Use:   "tone <syllable...>",
	Short: "Classify the tone of pinyin syllables",
	Long: `Print the tone (1-4, or 0 for neutral) of each syllable, judged by its
tone mark.

Example:
  pinzi tone wàng ma`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTone,
}

func init() {
	rootCmd.AddCommand(toneCmd)
}

func runTone(cmd *cobra.Command, args []string) error {
	p := palette()
	for _, syl := range args {
		t := pinyin.ClassifyTone(syl)
		fmt.Printf("%s\t%d\t%s\n", tui.ToneStyle(p, t).Render(syl), t, t)
	}
	return nil
}
