// Package bigchar renders Chinese characters as large block art using half-block characters.
package bigchar

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// SystemFonts are the CJK fonts tried when no font path is configured.
var SystemFonts = []string{
	// macOS
	"/System/Library/Fonts/STHeiti Light.ttc",
	"/System/Library/Fonts/PingFang.ttc",
	"/System/Library/Fonts/Hiragino Sans GB.ttc",
	"/Library/Fonts/Arial Unicode.ttf",
	// Linux
	"/usr/share/fonts/opentype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/noto-cjk/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/noto/NotoSansCJK-Regular.ttc",
	"/usr/share/fonts/truetype/droid/DroidSansFallbackFull.ttf",
	// Windows
	"C:\\Windows\\Fonts\\msyh.ttc",
	"C:\\Windows\\Fonts\\simsun.ttc",
}

// ErrNoFont is returned when none of the candidate fonts could be loaded.
var ErrNoFont = errors.New("no CJK font found")

// threshold is the grey level above which a half cell is drawn.
const threshold = uint8(40)

// Renderer draws characters with a CJK font. The font is loaded lazily on
// first use; a Renderer without a usable font renders nothing.
type Renderer struct {
	paths []string

	once    sync.Once
	face    font.Face
	loadErr error

	mu    sync.Mutex
	cache map[cacheKey]string
}

type cacheKey struct {
	char       string
	cols, rows int
}

// New returns a renderer that tries fontPath first, then SystemFonts.
func New(fontPath string) *Renderer {
	var paths []string
	if fontPath != "" {
		paths = append(paths, fontPath)
	}
	return &Renderer{
		paths: append(paths, SystemFonts...),
		cache: make(map[cacheKey]string),
	}
}

// NewWithFace returns a renderer using an already loaded face.
func NewWithFace(face font.Face) *Renderer {
	r := &Renderer{face: face, cache: make(map[cacheKey]string)}
	r.once.Do(func() {})
	return r
}

func (r *Renderer) load() {
	r.once.Do(func() {
		for _, path := range r.paths {
			face, err := loadFace(path)
			if err == nil {
				r.face = face
				return
			}
		}
		r.loadErr = ErrNoFont
	})
}

// Err reports why no font is available, or nil.
func (r *Renderer) Err() error {
	r.load()
	return r.loadErr
}

// Available returns true if a CJK font was found.
func (r *Renderer) Available() bool {
	return r.Err() == nil
}

func loadFace(path string) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	opts := &opentype.FaceOptions{Size: 64, DPI: 72}

	// Try parsing as font collection first
	if coll, err := opentype.ParseCollection(data); err == nil && coll.NumFonts() > 0 {
		if fnt, err := coll.Font(0); err == nil {
			if face, err := opentype.NewFace(fnt, opts); err == nil {
				return face, nil
			}
		}
	}

	fnt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s: %w", path, err)
	}
	return opentype.NewFace(fnt, opts)
}

// Render returns the first character of char as cols x rows cells of
// half-block art. Results are cached.
func (r *Renderer) Render(char string, cols, rows int) string {
	if char == "" || cols <= 0 || rows <= 0 || !r.Available() {
		return ""
	}

	key := cacheKey{char: char, cols: cols, rows: rows}

	r.mu.Lock()
	defer r.mu.Unlock()

	if cached, ok := r.cache[key]; ok {
		return cached
	}
	rendered := renderBlock(r.face, []rune(char)[0], cols, rows)
	r.cache[key] = rendered
	return rendered
}

func renderBlock(face font.Face, ch rune, cols, rows int) string {
	bounds, _, ok := face.GlyphBounds(ch)
	if !ok {
		return ""
	}
	glyphWidth := (bounds.Max.X - bounds.Min.X).Ceil()
	glyphHeight := (bounds.Max.Y - bounds.Min.Y).Ceil()

	padding := 4
	srcWidth := max(glyphWidth+padding*2, 64)
	srcHeight := max(glyphHeight+padding*2, 64)

	src := image.NewGray(image.Rect(0, 0, srcWidth, srcHeight))
	draw.Draw(src, src.Bounds(), &image.Uniform{color.Black}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  src,
		Src:  image.White,
		Face: face,
		Dot:  fixed.P((srcWidth-glyphWidth)/2-bounds.Min.X.Floor(), srcHeight-padding-bounds.Max.Y.Ceil()),
	}
	d.DrawString(string(ch))

	// rows*2 because each cell holds two vertical pixels
	return toHalfBlocks(scaleDown(src, cols, rows*2), cols, rows)
}

// scaleDown scales a grayscale image using area averaging.
func scaleDown(src *image.Gray, dstWidth, dstHeight int) *image.Gray {
	srcWidth := src.Bounds().Max.X
	srcHeight := src.Bounds().Max.Y

	dst := image.NewGray(image.Rect(0, 0, dstWidth, dstHeight))

	xRatio := float64(srcWidth) / float64(dstWidth)
	yRatio := float64(srcHeight) / float64(dstHeight)

	for dy := 0; dy < dstHeight; dy++ {
		for dx := 0; dx < dstWidth; dx++ {
			sx1, sy1 := int(float64(dx)*xRatio), int(float64(dy)*yRatio)
			sx2 := min(int(float64(dx+1)*xRatio), srcWidth)
			sy2 := min(int(float64(dy+1)*yRatio), srcHeight)

			var sum, count int
			for sy := sy1; sy < sy2; sy++ {
				for sx := sx1; sx < sx2; sx++ {
					sum += int(src.GrayAt(sx, sy).Y)
					count++
				}
			}
			if count > 0 {
				dst.SetGray(dx, dy, color.Gray{Y: uint8(sum / count)})
			}
		}
	}

	return dst
}

func toHalfBlocks(img *image.Gray, cols, rows int) string {
	var out strings.Builder

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := brightness(img, col, row*2) > threshold
			bottom := brightness(img, col, row*2+1) > threshold

			switch {
			case top && bottom:
				out.WriteRune('█')
			case top:
				out.WriteRune('▀')
			case bottom:
				out.WriteRune('▄')
			default:
				out.WriteRune(' ')
			}
		}
		if row < rows-1 {
			out.WriteRune('\n')
		}
	}

	return out.String()
}

func brightness(img *image.Gray, x, y int) uint8 {
	if !(image.Point{x, y}).In(img.Bounds()) {
		return 0
	}
	return img.GrayAt(x, y).Y
}
