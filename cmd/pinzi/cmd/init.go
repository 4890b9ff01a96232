package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pierophp/pinyin-extension/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize pinzi configuration",
	Long: `Write a default config.yaml to your config directory.

The file holds:
  - dictionary   API URL, token or token file, cache location and TTL
  - hidden_words words whose pinyin is removed when annotating
  - colors       tone colours (1-4, and 0 for neutral)
  - server       listen address for 'pinzi serve'
  - font_path    CJK font for the big character preview`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	path := filepath.Join(configDir, config.FileName)

	// Check if config already exists
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", path)
	}

	if err := config.EnsureDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	cfg := config.Default()
	cfg.Dictionary.CachePath = "cache.db"
	if err := config.Save(path, cfg); err != nil {
		return err
	}

	fmt.Printf("Created %s\n\n", path)
	fmt.Println("Next steps:")
	fmt.Printf("  1. Save your dictionary token to %s (or set PINZI_TOKEN)\n", filepath.Join(configDir, "token"))
	fmt.Println("  2. Run 'pinzi segment xīwàng' to split pinyin")
	fmt.Println("  3. Run 'pinzi lookup 希望' to test a dictionary lookup")

	return nil
}
