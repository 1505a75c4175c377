package viewer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/five82/tailview/internal/tail"
)

var (
	// ErrContainerNotFound is returned by Activate when the document has no
	// element with the requested id.
	ErrContainerNotFound = errors.New("container not found")
	// ErrAlreadyActive is returned by Activate on a viewer that is already
	// streaming.
	ErrAlreadyActive = errors.New("viewer already active")
)

// Container is a UI element that accepts new children at the front.
type Container interface {
	Prepend(text string)
}

// Document resolves containers by identifier.
type Document interface {
	ElementByID(id string) (Container, bool)
}

// State reports whether a viewer has opened its stream.
type State int

const (
	Idle State = iota
	Streaming
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Streaming:
		return "streaming"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Viewer renders a log tail stream into a container, newest entry first.
type Viewer struct {
	streamer tail.Streamer
	logger   *zap.Logger

	mu        sync.Mutex
	state     State
	container Container
	done      chan struct{}
	err       error
}

// New builds an idle viewer. A nil logger discards diagnostics.
func New(streamer tail.Streamer, logger *zap.Logger) *Viewer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Viewer{
		streamer: streamer,
		logger:   logger,
		done:     make(chan struct{}),
	}
}

// Activate locates the container with the given id and opens the log tail
// stream. It returns as soon as the stream goroutine is started; payloads are
// rendered asynchronously until the stream ends or ctx is cancelled.
func (v *Viewer) Activate(ctx context.Context, doc Document, containerID string) error {
	if v == nil || v.streamer == nil {
		return fmt.Errorf("viewer has no streamer")
	}
	if doc == nil {
		return fmt.Errorf("%w: %q (no document)", ErrContainerNotFound, containerID)
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != Idle {
		return ErrAlreadyActive
	}
	container, ok := doc.ElementByID(containerID)
	if !ok || container == nil {
		return fmt.Errorf("%w: %q", ErrContainerNotFound, containerID)
	}

	v.container = container
	v.state = Streaming
	v.logger.Info("log tail activated", zap.String("container", containerID))

	go v.run(ctx)
	return nil
}

func (v *Viewer) run(ctx context.Context) {
	err := v.streamer.Stream(ctx, v.handle)

	v.mu.Lock()
	v.err = err
	v.mu.Unlock()

	if err != nil {
		v.logger.Debug("log tail stream ended", zap.Error(err))
	} else {
		v.logger.Debug("log tail stream closed by server")
	}
	close(v.done)
}

// handle renders one payload. The streamer calls it sequentially, so two
// insertions never interleave.
func (v *Viewer) handle(payload string) {
	v.logger.Debug("log tail event", zap.String("data", payload))
	v.container.Prepend(payload)
}

// Done is closed once the stream has ended for any reason.
func (v *Viewer) Done() <-chan struct{} {
	return v.done
}

// Err returns why the stream ended. It is nil while streaming and after a
// clean close by the server.
func (v *Viewer) Err() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.err
}

// State returns the current viewer state. There is no transition back to
// Idle: a viewer whose stream has ended still reports Streaming.
func (v *Viewer) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}
