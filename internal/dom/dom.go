//go:build js && wasm

// Package dom adapts the browser DOM to the viewer's Document and Container
// interfaces.
package dom

import (
	"syscall/js"

	"github.com/five82/tailview/internal/viewer"
)

// Document wraps a browser document.
type Document struct {
	doc js.Value
}

// Ensure the DOM satisfies the viewer interfaces.
var (
	_ viewer.Document  = Document{}
	_ viewer.Container = Element{}
)

// Global returns the page's document.
func Global() Document {
	return Document{doc: js.Global().Get("document")}
}

// ElementByID implements viewer.Document using getElementById.
func (d Document) ElementByID(id string) (viewer.Container, bool) {
	el := d.doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return Element{doc: d.doc, el: el}, true
}

// Element is a DOM node that receives log entries as div children.
type Element struct {
	doc js.Value
	el  js.Value
}

// Prepend inserts a div holding text before the element's first child.
// textContent keeps the payload as plain text.
func (e Element) Prepend(text string) {
	div := e.doc.Call("createElement", "div")
	div.Set("textContent", text)
	e.el.Call("prepend", div)
}

// Origin returns location.origin, the base for same-origin requests.
func Origin() string {
	return js.Global().Get("location").Get("origin").String()
}
