// Package app is the composition root for tailview.
//
// Run wires the pieces together in this order:
//
//  1. Load ~/.config/tailview/config.toml and apply flag overrides
//  2. Load UI preferences (theme, follow mode)
//  3. Open the zap diagnostic log
//  4. Build the tail client for <api_bind>/api/log/tail
//  5. Build an idle viewer and start the TUI; the UI activates the viewer
//     against its log pane before the program starts
//
// Configuration, diagnostics and activation failures are returned. Once the
// stream is running nothing it does is fatal: if it ends, the view simply
// stops updating until the user quits.
package app
