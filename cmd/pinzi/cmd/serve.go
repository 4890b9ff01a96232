package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pierophp/pinyin-extension/internal/pinyin"
	"github.com/pierophp/pinyin-extension/internal/ruby"
	"github.com/pierophp/pinyin-extension/internal/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the segmenter and annotator over HTTP",
	Long: `Start an HTTP server exposing:

  POST /api/segment     {"pinyin": "xīwàng", "delimited": false}
  POST /api/tone        {"syllable": "wàng"}
  POST /api/align       {"word": "希望", "pinyin": "xīwàng"}
  POST /api/annotate    HTML document in, annotated document out
  GET  /api/dictionary?word=希望
  GET  /healthz`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr, _ := cmd.Flags().GetString("addr")
	if addr == "" {
		addr = cfg.Server.Addr
	}

	annotator := ruby.NewAnnotator(cfg.Palette(), cfg.HiddenWords)
	annotator.Readings = pinyin.NewParser()

	opts := server.Options{
		Palette:   cfg.Palette(),
		Annotator: annotator,
	}

	client, closeDict, err := newDictionary(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: dictionary disabled: %v\n", err)
	} else {
		defer closeDict()
		opts.Dictionary = client
	}

	gin.SetMode(gin.ReleaseMode)
	if verbose() {
		opts.Logger = os.Stderr
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           server.New(opts),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	fmt.Fprintf(os.Stderr, "Listening on http://%s\n", addr)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
