package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)

	cfg := Default()
	cfg.Dictionary.Token = "abc"
	cfg.Colors = map[int]string{1: "#000000"}
	cfg.FontPath = "/tmp/font.ttf"
	require.NoError(t, Save(path, cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadKeepsDefaultsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("dictionary:\n  token: xyz\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "xyz", cfg.Dictionary.Token)
	assert.Equal(t, Default().Dictionary.BaseURL, cfg.Dictionary.BaseURL)
	assert.Equal(t, []string{"上帝", "最初"}, cfg.HiddenWords)

	ttl, err := cfg.Dictionary.TTL()
	require.NoError(t, err)
	assert.Equal(t, 168*time.Hour, ttl)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"bad ttl":     "dictionary:\n  cache_ttl: soon\n",
		"bad timeout": "dictionary:\n  timeout: 5 minutes\n",
		"bad tone":    "colors:\n  7: '#fff'\n",
		"bad yaml":    "dictionary: [\n",
	}

	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			require.NoError(t, os.WriteFile(path, []byte(content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadDirFallsBackToDefault(t *testing.T) {
	cfg, err := LoadDir(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestPaletteOverridesDefaults(t *testing.T) {
	cfg := Default()
	cfg.Colors = map[int]string{4: "crimson", 0: "gray"}

	p := cfg.Palette()
	assert.Equal(t, "crimson", p.Color(pinyin.Tone4))
	assert.Equal(t, "gray", p.Color(pinyin.ToneNeutral))
	assert.Equal(t, "#3b82f6", p.Color(pinyin.Tone1))
}
