// Package viewer renders a live log tail into a UI container.
//
// # Overview
//
// A Viewer is bound to one tail.Streamer. Activate looks up a container by
// id in a Document, opens the stream and prepends every received payload to
// the container as a new child, so the newest entry is always first:
//
//	v := viewer.New(client, logger)
//	if err := v.Activate(ctx, doc, "log"); err != nil {
//		return err
//	}
//
// The package knows nothing about the rendering technology. The terminal UI
// (internal/ui) and the browser DOM (internal/dom) both provide Documents.
//
// # States
//
// A viewer is Idle until Activate succeeds and Streaming afterwards. There is
// no way back to Idle and no Close: the stream lives until its context is
// cancelled or the server or transport ends it. When that happens updates
// silently stop. Done and Err let the host observe the end; nothing is shown
// to the user and nothing is retried.
//
// # Failure Behaviour
//
//   - Unknown container id: Activate returns ErrContainerNotFound and opens
//     no connection.
//   - Activate on a streaming viewer: ErrAlreadyActive.
//   - Empty or odd payloads: rendered as-is.
//
// # Diagnostics
//
// Each payload is also logged at debug level as "log tail event" with the raw
// text in the data field. This is an execution trace only.
package viewer
