package bigchar

import (
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestToHalfBlocks(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 4))
	img.SetGray(0, 0, color.Gray{Y: 255}) // top of cell (0,0)
	img.SetGray(1, 1, color.Gray{Y: 255}) // bottom of cell (1,0)
	img.SetGray(0, 2, color.Gray{Y: 255}) // both halves of cell (0,1)
	img.SetGray(0, 3, color.Gray{Y: 255})

	assert.Equal(t, "▀▄\n█ ", toHalfBlocks(img, 2, 2))
}

func TestScaleDownAverages(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 4, 2))
	src.SetGray(0, 0, color.Gray{Y: 200})
	src.SetGray(3, 1, color.Gray{Y: 100})

	dst := scaleDown(src, 2, 1)
	assert.Equal(t, uint8(50), dst.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(25), dst.GrayAt(1, 0).Y)
}

func TestRenderWithFace(t *testing.T) {
	r := NewWithFace(basicfont.Face7x13)
	require.True(t, r.Available())

	out := r.Render("A", 16, 8)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 8)
	for _, line := range lines {
		assert.Equal(t, 16, utf8.RuneCountInString(line))
	}

	assert.Equal(t, out, r.Render("A", 16, 8), "cached result")
	assert.Empty(t, r.Render("", 16, 8))
	assert.Empty(t, r.Render("A", 0, 8))
}

func TestRendererWithoutFont(t *testing.T) {
	r := &Renderer{paths: []string{filepath.Join(t.TempDir(), "missing.ttf")}, cache: map[cacheKey]string{}}

	assert.ErrorIs(t, r.Err(), ErrNoFont)
	assert.False(t, r.Available())
	assert.Empty(t, r.Render("字", 16, 8))
}
