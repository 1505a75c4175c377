package ui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/tailview/internal/config"
	"github.com/five82/tailview/internal/state"
	"github.com/five82/tailview/internal/viewer"
)

// LogPaneID identifies the log pane in the terminal document.
const LogPaneID = "log"

// Options configure the UI runtime.
type Options struct {
	Context   context.Context
	Endpoint  string // shown in the header
	Prefs     config.Prefs
	PrefsPath string
	// Store receives the log pane's entries. Nil uses a private store.
	Store *state.Store

	// Activate is called with the terminal document once the program exists
	// and before it starts. An error aborts Run.
	Activate func(doc viewer.Document) error
}

// Run starts the Bubble Tea program and blocks until the user quits or the
// context is cancelled.
func Run(opts Options) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))

	if opts.Activate != nil {
		if err := opts.Activate(newDocument(p)); err != nil {
			return err
		}
	}

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// sender is the part of *tea.Program a pane needs.
type sender interface {
	Send(msg tea.Msg)
}

// pane forwards insertions to the program's event loop, which applies them
// one at a time in the order they were sent.
type pane struct {
	program sender
}

func (p pane) Prepend(text string) {
	p.program.Send(entryMsg{text: text})
}

type document map[string]viewer.Container

func newDocument(program sender) document {
	return document{LogPaneID: pane{program: program}}
}

func (d document) ElementByID(id string) (viewer.Container, bool) {
	c, ok := d[id]
	return c, ok
}
