// Package state provides an in-memory, thread-safe log container.
//
// # Overview
//
// Store implements viewer.Container without any rendering technology. The
// terminal UI keeps its log pane entries in a Store: the event loop writes
// through Prepend and the renderer takes copies with Entries, so a reader
// never sees a half-inserted entry.
//
//	Producer (event loop):        Consumer (renderer):
//	┌────────────────┐            ┌─────────────────┐
//	│ stream event   │            │                 │
//	│      ↓         │            │                 │
//	│ store.Prepend()│───────────→│ store.Entries() │
//	│                │  (mutex)   │                 │
//	└────────────────┘            └─────────────────┘
//
// # Ordering
//
// Entries are kept newest first. Nothing in this package edits or removes an
// entry after it has been inserted.
package state
