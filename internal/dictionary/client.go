package dictionary

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public dictionary API.
	DefaultBaseURL = "https://editor.pinzi.org/api"

	maxErrBody = 200
)

// ErrEmptyWord is returned when Lookup is called without a word.
var ErrEmptyWord = errors.New("empty word")

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("dictionary API returned HTTP %d", e.Status)
	}
	return fmt.Sprintf("dictionary API returned HTTP %d: %s", e.Status, e.Body)
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	HTTPClient *http.Client
	Tokens     TokenSource
	Cache      Cache
	Warnings   io.Writer // receives cache write failures; nil discards them
}

// Client looks words up in the dictionary API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *CachedToken
	cache      Cache
	warnings   io.Writer
}

// NewClient creates a dictionary client.
func NewClient(opts Options) (*Client, error) {
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")
	if base == "" {
		base = DefaultBaseURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}

	tokens, ok := opts.Tokens.(*CachedToken)
	if !ok {
		tokens = NewCachedToken(opts.Tokens)
	}

	warnings := opts.Warnings
	if warnings == nil {
		warnings = io.Discard
	}

	return &Client{
		baseURL:    base,
		httpClient: httpClient,
		tokens:     tokens,
		cache:      opts.Cache,
		warnings:   warnings,
	}, nil
}

// Lookup returns the dictionary entry for word.
func (c *Client) Lookup(ctx context.Context, word string) (*Entry, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return nil, ErrEmptyWord
	}

	if c.cache != nil {
		if entry, err := c.cache.Get(ctx, word); err == nil {
			return entry, nil
		}
	}

	entry, err := c.fetch(ctx, word)
	var se *StatusError
	if errors.As(err, &se) && se.Status == http.StatusUnauthorized {
		c.tokens.Invalidate()
		entry, err = c.fetch(ctx, word)
	}
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		// A failed cache write still returns the fetched entry.
		if err := c.cache.Put(ctx, word, entry); err != nil {
			fmt.Fprintf(c.warnings, "Warning: caching %q: %v\n", word, err)
		}
	}
	return entry, nil
}

func (c *Client) fetch(ctx context.Context, word string) (*Entry, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/dictionary?word=" + url.QueryEscape(word)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: snippet(body)}
	}

	var entry Entry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("unmarshaling response: %w", err)
	}
	return &entry, nil
}

func snippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	r := []rune(s)
	if len(r) > maxErrBody {
		return string(r[:maxErrBody]) + "..."
	}
	return s
}
