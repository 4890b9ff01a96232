package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <file|->",
	Short: "Colour ruby-annotated HTML by tone",
	Long: `Read an HTML document, colour the base text of every <ruby> element by the
tone of its pinyin and mark it as a dictionary lookup target.

Words listed under hidden_words in the config have their pinyin removed.
Ruby elements without pinyin get a reading from the built-in character table
unless --no-fill is given.

Example:
  pinzi annotate chapter.html -o chapter.colored.html
  curl -s https://example.org/page | pinzi annotate -`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	annotateCmd.Flags().Bool("nbsp", false, "pinyin syllables are separated by non-breaking spaces")
	annotateCmd.Flags().Bool("no-fill", false, "leave ruby elements without pinyin untouched")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	output, _ := cmd.Flags().GetString("output")
	delimited, _ := cmd.Flags().GetBool("nbsp")
	noFill, _ := cmd.Flags().GetBool("no-fill")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var in io.Reader = os.Stdin
	if args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var out io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output: %w", err)
		}
		defer f.Close()
		out = f
	}

	annotator := ruby.NewAnnotator(cfg.Palette(), cfg.HiddenWords)
	annotator.Delimited = delimited
	if !noFill {
		annotator.Readings = pinyin.NewParser()
	}

	report, err := annotator.Annotate(in, out)
	if err != nil {
		return err
	}

	if len(report.Mismatched) > 0 {
		fmt.Fprintf(os.Stderr, "Warning: pinyin does not match the characters of %d word(s): %s\n",
			len(report.Mismatched), strings.Join(report.Mismatched, ", "))
	}
	logf("ruby: %d, annotated: %d, hidden: %d, filled: %d, skipped: %d",
		report.Rubies, report.Annotated, report.Hidden, report.Filled, report.Skipped)

	return nil
}
