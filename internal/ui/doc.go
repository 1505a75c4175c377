// Package ui provides the terminal host for the log tail viewer.
//
// # Architecture Overview
//
// The UI is a single Bubble Tea program. It exposes one pane, the log pane
// (LogPaneID), through a viewer.Document. A viewer activated against that
// document runs its stream on its own goroutine and hands each payload to the
// pane, which forwards it to the program with Send. The program's event loop
// applies entries one at a time, so two insertions never interleave.
//
//	viewer goroutine            Bubble Tea event loop
//	┌─────────────────┐        ┌───────────────────────┐
//	│ stream event    │        │                       │
//	│ pane.Prepend()  │──Send─→│ entryMsg → prepend()  │
//	└─────────────────┘        │ viewport.SetContent() │
//	                           └───────────────────────┘
//
// # Layout
//
//   - Header: logo, stream endpoint, entry count, time of the newest entry
//   - Body: bubbles viewport with entries newest first
//   - Footer: short key help
//
// # Follow Mode
//
// While following, the view stays pinned to the newest entry. Scrolling away
// from the top pauses following and new entries no longer move the lines
// being read. g (or f/Space) resumes.
//
// # Preferences
//
// Theme and follow mode are written to prefs.toml whenever the user changes
// them, using config.SavePrefs. Save errors are ignored.
package ui
