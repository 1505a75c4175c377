package state

import (
	"sync"
	"time"

	"github.com/five82/tailview/internal/viewer"
)

// Entry is one rendered log line.
type Entry struct {
	Text     string
	Received time.Time
}

// Store is an in-memory container holding entries newest first.
type Store struct {
	mu          sync.RWMutex
	entries     []Entry
	lastUpdated time.Time
}

// Ensure Store can be handed to a viewer.
var _ viewer.Container = (*Store)(nil)

// Prepend inserts text as the first entry. Entries are never modified once
// inserted.
func (s *Store) Prepend(text string) {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{})
	copy(s.entries[1:], s.entries)
	s.entries[0] = Entry{Text: text, Received: now}
	s.lastUpdated = now
}

// Entries returns a copy of the stored entries, newest first.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneEntries(s.entries)
}

// Len returns the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// LastUpdated returns when the newest entry was inserted, or the zero time.
func (s *Store) LastUpdated() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdated
}

func cloneEntries(entries []Entry) []Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]Entry, len(entries))
	copy(dup, entries)
	return dup
}
