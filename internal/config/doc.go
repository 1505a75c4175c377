// Package config loads tailview's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tailview/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Fields
//
//	api_bind = "127.0.0.1:21932"   # haminer web UI address (host:port or URL)
//	diag_log = "~/.local/state/tailview/tailview.log"  # "-" disables
//	verbose  = false               # trace every received payload
//
// The stream path itself (/api/log/tail) is fixed and cannot be configured.
//
// # Error Handling
//
// A missing file is not an error. Unreadable files and invalid TOML are
// returned wrapped ("open config", "read config", "parse config").
// Paths starting with ~ are expanded against the user's home directory.
package config
