// Package server exposes the config engine as a local JSON API consumed by
// the browser UI. One server owns one editing session against one config
// file.
package server

import (
	"sync"

	"github.com/bnema/ghostconf/internal/document"
)

// Session is the single in-flight editing session: the baseline document as
// last synced with disk, the working document carrying user edits, and the
// set of keys with unsaved changes. All access goes through the mutex; the
// engine packages themselves are pure and unaware of locking.
type Session struct {
	mu       sync.RWMutex
	path     string
	baseline *document.Document
	working  *document.Document
	unsaved  map[string]bool
	stale    bool
}

// NewSession starts a session for the config file at path with its current
// parsed contents.
func NewSession(path string, doc *document.Document) *Session {
	return &Session{
		path:     path,
		baseline: doc,
		working:  doc.Clone(),
		unsaved:  make(map[string]bool),
	}
}

// Path returns the config file path this session edits.
func (s *Session) Path() string { return s.path }

// Working returns a snapshot of the working document.
func (s *Session) Working() *document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.working.Clone()
}

// Baseline returns a snapshot of the baseline document.
func (s *Session) Baseline() *document.Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.baseline.Clone()
}

// Mutate runs fn against the working document under the write lock and
// marks key as unsaved.
func (s *Session) Mutate(key string, fn func(doc *document.Document)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.working)
	s.unsaved[key] = true
}

// Replace swaps the whole working document (import).
func (s *Session) Replace(doc *document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.working = doc
	s.unsaved["import"] = true
}

// Sync resets both documents to doc after a successful save and clears
// unsaved and stale state.
func (s *Session) Sync(doc *document.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.baseline = doc
	s.working = doc.Clone()
	s.unsaved = make(map[string]bool)
	s.stale = false
}

// UnsavedCount returns how many keys carry unsaved changes.
func (s *Session) UnsavedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.unsaved)
}

// MarkStale records that the on-disk file changed outside this session.
func (s *Session) MarkStale() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = true
}

// Stale reports whether the on-disk file changed since the last sync.
func (s *Session) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}
