// Package testfixtures provides shared helpers for tests: a controllable
// clock, a deterministic id source, and a throwaway SQLite store.
package testfixtures

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/example/event-assistant/internal/persistence/sqlite"
)

// Clock returns a fixed time that tests can move forward explicitly.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock creates a clock pinned to the given instant.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current fixed time.
func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set pins the clock to a specific instant.
func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// IDGenerator hands out sequential string ids for deterministic assertions.
type IDGenerator struct {
	mu     sync.Mutex
	prefix string
	next   int
}

// NewIDGenerator creates a generator producing prefix-1, prefix-2, ...
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix, next: 1}
}

// Next returns the next id in sequence.
func (g *IDGenerator) Next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := fmt.Sprintf("%s-%d", g.prefix, g.next)
	g.next++
	return id
}

// NewSQLiteStore opens a migrated store backed by a file in a temporary
// directory. The store is closed when the test finishes.
func NewSQLiteStore(tb testing.TB) *sqlite.Store {
	tb.Helper()
	dsn := "file:" + filepath.Join(tb.TempDir(), "assistant.db")
	store, err := sqlite.Open(dsn)
	if err != nil {
		tb.Fatalf("failed to open sqlite store: %v", err)
	}
	tb.Cleanup(func() {
		if err := store.Close(); err != nil {
			tb.Errorf("failed to close sqlite store: %v", err)
		}
	})
	if err := store.Migrate(context.Background()); err != nil {
		tb.Fatalf("failed to migrate sqlite store: %v", err)
	}
	return store
}
