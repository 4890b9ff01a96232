package dictionary

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
)

// TokenCookie is the cookie that carries the dictionary API token.
const TokenCookie = "token"

// ErrNoToken is returned when no API token is available.
var ErrNoToken = errors.New("authentication required: no dictionary token available")

// TokenSource provides the bearer token for dictionary requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// StaticToken is a fixed token, typically from configuration or the environment.
type StaticToken string

// Token returns the token, or ErrNoToken when it is blank.
func (t StaticToken) Token(context.Context) (string, error) {
	if tok := strings.TrimSpace(string(t)); tok != "" {
		return tok, nil
	}
	return "", ErrNoToken
}

// FileToken reads the token from a file. The file holds either the bare token
// or a Netscape cookies.txt export, in which case the "token" cookie is used.
type FileToken struct {
	Path string
}

// Token reads the file on every call.
func (f FileToken) Token(context.Context) (string, error) {
	file, err := os.Open(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrNoToken
		}
		return "", fmt.Errorf("opening token file: %w", err)
	}
	defer file.Close()

	var plain string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || (strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "#HttpOnly_")) {
			continue
		}

		// domain, flag, path, secure, expiry, name, value
		if fields := strings.Split(line, "\t"); len(fields) == 7 {
			if fields[5] == TokenCookie && fields[6] != "" {
				return fields[6], nil
			}
			continue
		}
		if plain == "" {
			plain = line
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}

	if plain == "" {
		return "", ErrNoToken
	}
	return plain, nil
}

// CachedToken remembers the token from its source until Invalidate is called.
type CachedToken struct {
	src TokenSource

	mu    sync.Mutex
	token string
}

// NewCachedToken wraps src.
func NewCachedToken(src TokenSource) *CachedToken {
	return &CachedToken{src: src}
}

// Token returns the cached token, fetching it from the source on first use.
func (c *CachedToken) Token(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" {
		return c.token, nil
	}
	if c.src == nil {
		return "", ErrNoToken
	}

	tok, err := c.src.Token(ctx)
	if err != nil {
		return "", err
	}
	if tok == "" {
		return "", ErrNoToken
	}
	c.token = tok
	return tok, nil
}

// Invalidate drops the cached token so the next call asks the source again.
func (c *CachedToken) Invalidate() {
	c.mu.Lock()
	c.token = ""
	c.mu.Unlock()
}
