package dictionary

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	gocache "github.com/patrickmn/go-cache"
	_ "modernc.org/sqlite"
)

// ErrCacheMiss is returned by a Cache that has no fresh entry for a word.
var ErrCacheMiss = errors.New("dictionary cache miss")

// Cache stores dictionary entries by word.
type Cache interface {
	Get(ctx context.Context, word string) (*Entry, error)
	Put(ctx context.Context, word string, entry *Entry) error
}

// MemoryCache keeps entries in process memory with a TTL.
type MemoryCache struct {
	c *gocache.Cache
}

// NewMemoryCache creates a memory cache. A ttl <= 0 keeps entries forever.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &MemoryCache{c: gocache.New(ttl, 10*time.Minute)}
}

// Get returns the entry for word.
func (m *MemoryCache) Get(_ context.Context, word string) (*Entry, error) {
	v, ok := m.c.Get(word)
	if !ok {
		return nil, ErrCacheMiss
	}
	return v.(*Entry), nil
}

// Put stores entry under word.
func (m *MemoryCache) Put(_ context.Context, word string, entry *Entry) error {
	m.c.Set(word, entry, gocache.DefaultExpiration)
	return nil
}

// SQLiteCache persists entries in a SQLite database.
type SQLiteCache struct {
	db  *sql.DB
	ttl time.Duration
	now func() time.Time
}

const schema = `CREATE TABLE IF NOT EXISTS entries (
	word       TEXT PRIMARY KEY,
	payload    TEXT NOT NULL,
	fetched_at INTEGER NOT NULL
)`

// OpenSQLiteCache opens (creating if needed) the cache database at path.
// Entries older than ttl are treated as missing; ttl <= 0 never expires.
func OpenSQLiteCache(path string, ttl time.Duration) (*SQLiteCache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}
	return &SQLiteCache{db: db, ttl: ttl, now: time.Now}, nil
}

// Get returns the stored entry for word if it has not expired.
func (s *SQLiteCache) Get(ctx context.Context, word string) (*Entry, error) {
	var payload string
	var fetchedAt int64

	row := s.db.QueryRowContext(ctx, "SELECT payload, fetched_at FROM entries WHERE word = ?", word)
	if err := row.Scan(&payload, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("reading cache entry: %w", err)
	}

	if s.ttl > 0 && s.now().Sub(time.Unix(fetchedAt, 0)) > s.ttl {
		return nil, ErrCacheMiss
	}

	var entry Entry
	if err := json.Unmarshal([]byte(payload), &entry); err != nil {
		return nil, fmt.Errorf("parsing cache entry: %w", err)
	}
	return &entry, nil
}

// Put stores entry under word, replacing any previous value.
func (s *SQLiteCache) Put(ctx context.Context, word string, entry *Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling cache entry: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO entries (word, payload, fetched_at) VALUES (?, ?, ?)
		 ON CONFLICT(word) DO UPDATE SET payload = excluded.payload, fetched_at = excluded.fetched_at`,
		word, string(payload), s.now().Unix())
	if err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Close closes the database.
func (s *SQLiteCache) Close() error {
	return s.db.Close()
}

// Layered reads through caches in order and back-fills the faster layers on a hit.
type Layered []Cache

// Get returns the first hit.
func (l Layered) Get(ctx context.Context, word string) (*Entry, error) {
	for i, c := range l {
		entry, err := c.Get(ctx, word)
		if errors.Is(err, ErrCacheMiss) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, faster := range l[:i] {
			if err := faster.Put(ctx, word, entry); err != nil {
				return entry, err
			}
		}
		return entry, nil
	}
	return nil, ErrCacheMiss
}

// Put stores entry in every layer.
func (l Layered) Put(ctx context.Context, word string, entry *Entry) error {
	var errs []error
	for _, c := range l {
		if err := c.Put(ctx, word, entry); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
