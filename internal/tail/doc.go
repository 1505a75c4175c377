// Package tail provides the server-sent event client for the haminer log tail
// endpoint.
//
// # Overview
//
// haminer publishes every raw HAProxy log line it receives on
// GET /api/log/tail as an unnamed server-sent event whose data field carries
// the line verbatim. This package opens that stream and hands each payload to
// a callback. It does not parse, filter or buffer payloads.
//
// # Client Usage
//
//	client, err := tail.NewClient("127.0.0.1:21932")
//	if err != nil {
//		return err
//	}
//
//	err = client.Stream(ctx, func(payload string) {
//		fmt.Println(payload)
//	})
//
// # Request Handling
//
// Every stream request:
//   - Targets the fixed path /api/log/tail (not configurable)
//   - Sets Accept: text/event-stream and User-Agent: tailview/0.1
//   - Waits at most 5 seconds for response headers; the body has no deadline
//   - Is cancelled through the request context
//
// The wire decoding is done by github.com/tmaxmax/go-sse. Only events without
// an event name are delivered, matching a browser EventSource onmessage
// handler.
//
// # Connection Lifetime
//
// Stream opens exactly one connection per call. Reconnection is disabled: when
// the server closes the stream or the transport fails, Stream returns and no
// further payloads are delivered. A clean close returns nil, a cancelled
// context returns ctx.Err(), anything else is wrapped with the endpoint path.
//
// # URL Construction
//
// NewClient accepts the same bind formats as haminer's wui_address:
//
//   - "127.0.0.1:21932" → http://127.0.0.1:21932
//   - "http://logs.local:8080" → http://logs.local:8080
//   - "" → http://127.0.0.1:21932
//
// Path, query and fragment are dropped from the base URL.
package tail
