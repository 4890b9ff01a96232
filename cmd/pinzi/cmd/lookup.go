package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pierophp/pinyin-extension/internal/dictionary"
	"github.com/pierophp/pinyin-extension/internal/tui"
	"github.com/spf13/cobra"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <word>",
	Short: "Look up a word in the online dictionary",
	Long: `Fetch the dictionary entry for a Chinese word: meanings, pronunciation,
examples, synonyms, antonyms, classifiers and common expressions.

The API token is taken from PINZI_TOKEN, dictionary.token or
dictionary.token_file in the config, or a file named "token" in the config
directory. The token file may be a plain token or a cookies.txt export.

Example:
  pinzi lookup 希望`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	lookupCmd.Flags().Bool("json", false, "print the raw entry as JSON")
}

func runLookup(cmd *cobra.Command, args []string) error {
	asJSON, _ := cmd.Flags().GetBool("json")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, closeDict, err := newDictionary(cfg)
	if err != nil {
		return err
	}
	defer closeDict()

	entry, err := client.Lookup(cmd.Context(), args[0])
	if errors.Is(err, dictionary.ErrNoToken) {
		return fmt.Errorf("%w\nSet PINZI_TOKEN or save your token to %s", err, filepath.Join(getConfigDir(), "token"))
	}
	if err != nil {
		return fmt.Errorf("looking up %s: %w", args[0], err)
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		return enc.Encode(entry)
	}

	fmt.Println(tui.RenderEntry(entry, 80, cfg.Palette()))
	return nil
}
