// Package cmd contains all CLI commands for the pinzi tool.
package cmd

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pierophp/pinyin-extension/internal/config"
	"github.com/pierophp/pinyin-extension/internal/dictionary"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pinzi",
	Short: "Split pinyin into syllables and colour Chinese text by tone",
	Long: `pinzi splits romanized Mandarin (pinyin with tone marks) into syllables,
classifies each syllable's tone and colours the matching characters.

  pinzi segment xīwàng        → xī wàng
  pinzi tone wàng             → 4
  pinzi annotate page.html    → ruby text coloured by tone
  pinzi serve                 → the same over HTTP

Running 'pinzi' without arguments launches the interactive TUI.`,
	SilenceUsage: true,
	RunE:         runInteractive,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/pinzi)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.Dir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	// PINZI_DICTIONARY_URL, PINZI_TOKEN, PINZI_VERBOSE
	viper.SetEnvPrefix("PINZI")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

func verbose() bool {
	return viper.GetBool("verbose")
}

// logf writes a note to stderr when --verbose is set.
func logf(format string, args ...any) {
	if verbose() {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// loadConfig loads the user config and applies environment overrides.
func loadConfig() (*config.Config, error) {
	dir := getConfigDir()
	cfg, err := config.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	logf("config: %s", filepath.Join(dir, config.FileName))

	if url := viper.GetString("dictionary_url"); url != "" {
		cfg.Dictionary.BaseURL = url
	}
	if token := viper.GetString("token"); token != "" {
		cfg.Dictionary.Token = token
	}
	return cfg, nil
}

// newDictionary builds a dictionary client from the config. The returned
// close function releases the on-disk cache.
func newDictionary(cfg *config.Config) (*dictionary.Client, func(), error) {
	dc := cfg.Dictionary
	ttl, err := dc.TTL()
	if err != nil {
		return nil, nil, err
	}
	timeout, err := dc.RequestTimeout()
	if err != nil {
		return nil, nil, err
	}

	var tokens dictionary.TokenSource
	switch {
	case dc.Token != "":
		tokens = dictionary.StaticToken(dc.Token)
	case dc.TokenFile != "":
		tokens = dictionary.FileToken{Path: resolvePath(dc.TokenFile)}
	default:
		tokens = dictionary.FileToken{Path: filepath.Join(getConfigDir(), "token")}
	}

	closeFn := func() {}
	var cache dictionary.Cache = dictionary.NewMemoryCache(ttl)
	if dc.CachePath != "" {
		disk, err := dictionary.OpenSQLiteCache(resolvePath(dc.CachePath), ttl)
		if err != nil {
			return nil, nil, err
		}
		cache = dictionary.Layered{cache, disk}
		closeFn = func() { disk.Close() }
		logf("dictionary cache: %s", resolvePath(dc.CachePath))
	}

	client, err := dictionary.NewClient(dictionary.Options{
		BaseURL:    dc.BaseURL,
		HTTPClient: &http.Client{Timeout: timeout},
		Tokens:     tokens,
		Cache:      cache,
		Warnings:   os.Stderr,
	})
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return client, closeFn, nil
}

// resolvePath makes relative paths relative to the config directory.
func resolvePath(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(getConfigDir(), p)
}
