// Package server exposes segmentation, tone colouring, ruby annotation and
// dictionary lookups over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pierophp/pinyin-extension/internal/dictionary"
	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
)

// maxDocument caps the size of documents accepted by /api/annotate.
const maxDocument = 8 << 20

// Lookuper resolves dictionary entries.
type Lookuper interface {
	Lookup(ctx context.Context, word string) (*dictionary.Entry, error)
}

// Options configures the router.
type Options struct {
	Palette    ruby.Palette
	Annotator  *ruby.Annotator
	Dictionary Lookuper // nil disables /api/dictionary
	Logger     io.Writer
}

type server struct {
	palette   ruby.Palette
	annotator *ruby.Annotator
	dict      Lookuper
}

// New builds the HTTP handler.
func New(opts Options) *gin.Engine {
	s := &server{
		palette:   opts.Palette,
		annotator: opts.Annotator,
		dict:      opts.Dictionary,
	}
	if s.palette == nil {
		s.palette = ruby.DefaultPalette()
	}
	if s.annotator == nil {
		s.annotator = ruby.NewAnnotator(s.palette, ruby.DefaultHiddenWords)
	}

	r := gin.New()
	if opts.Logger != nil {
		r.Use(gin.LoggerWithWriter(opts.Logger))
	}
	r.Use(gin.Recovery())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().Unix()})
	})

	api := r.Group("/api")
	api.POST("/segment", s.segment)
	api.POST("/tone", s.tone)
	api.POST("/align", s.align)
	api.POST("/annotate", s.annotate)
	api.GET("/dictionary", s.lookup)

	return r
}

type segmentRequest struct {
	Pinyin    string `json:"pinyin"`
	Delimited bool   `json:"delimited"`
}

type segmentResponse struct {
	Syllables []string `json:"syllables"`
	Tones     []int    `json:"tones"`
	Numbered  []string `json:"numbered"`
}

type toneRequest struct {
	Syllable string `json:"syllable"`
}

type alignRequest struct {
	Word      string `json:"word" binding:"required"`
	Pinyin    string `json:"pinyin"`
	Delimited bool   `json:"delimited"`
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":   "invalid request",
		"details": err.Error(),
	})
}

func (s *server) segment(c *gin.Context) {
	var req segmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	syllables := pinyin.Syllables(req.Pinyin, req.Delimited)
	resp := segmentResponse{
		Syllables: syllables,
		Tones:     make([]int, len(syllables)),
		Numbered:  make([]string, len(syllables)),
	}
	for i, syl := range syllables {
		resp.Tones[i] = int(pinyin.ClassifyTone(syl))
		resp.Numbered[i] = pinyin.Numbered(syl)
	}

	c.JSON(http.StatusOK, resp)
}

func (s *server) tone(c *gin.Context) {
	var req toneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	t := pinyin.ClassifyTone(req.Syllable)
	c.JSON(http.StatusOK, gin.H{
		"tone":  int(t),
		"name":  t.String(),
		"color": s.palette.Color(t),
	})
}

func (s *server) align(c *gin.Context) {
	var req alignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	a := ruby.Align(req.Word, req.Pinyin, req.Delimited)
	c.JSON(http.StatusOK, gin.H{
		"runs":     ruby.Group(a.Chars, s.palette),
		"mismatch": a.Mismatch(),
	})
}

func (s *server) annotate(c *gin.Context) {
	var out bytes.Buffer
	report, err := s.annotator.Annotate(http.MaxBytesReader(c.Writer, c.Request.Body, maxDocument), &out)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "document too large"})
			return
		}
		badRequest(c, err)
		return
	}

	h := c.Writer.Header()
	h.Set("X-Pinzi-Rubies", strconv.Itoa(report.Rubies))
	h.Set("X-Pinzi-Annotated", strconv.Itoa(report.Annotated))
	h.Set("X-Pinzi-Hidden", strconv.Itoa(report.Hidden))
	h.Set("X-Pinzi-Filled", strconv.Itoa(report.Filled))
	h.Set("X-Pinzi-Mismatched", strconv.Itoa(len(report.Mismatched)))

	c.Data(http.StatusOK, "text/html; charset=utf-8", out.Bytes())
}

func (s *server) lookup(c *gin.Context) {
	if s.dict == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "dictionary not configured"})
		return
	}

	entry, err := s.dict.Lookup(c.Request.Context(), c.Query("word"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, entry)
	case errors.Is(err, dictionary.ErrEmptyWord):
		badRequest(c, err)
	case errors.Is(err, dictionary.ErrNoToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusBadGateway, gin.H{
			"error":   "dictionary lookup failed",
			"details": err.Error(),
		})
	}
}
