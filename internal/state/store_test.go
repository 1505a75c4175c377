package state

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/five82/tailview/internal/viewer"
)

func texts(s *Store) []string {
	var out []string
	for _, e := range s.Entries() {
		out = append(out, e.Text)
	}
	return out
}

func TestStore_PrependKeepsNewestFirst(t *testing.T) {
	var s Store

	before := time.Now()
	s.Prepend("build ok")
	if got := texts(&s); !reflect.DeepEqual(got, []string{"build ok"}) {
		t.Fatalf("entries = %q, want [build ok]", got)
	}

	s.Prepend("deploy ok")
	if got := texts(&s); !reflect.DeepEqual(got, []string{"deploy ok", "build ok"}) {
		t.Fatalf("entries = %q, want [deploy ok build ok]", got)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}
	if s.LastUpdated().Before(before) {
		t.Fatalf("LastUpdated = %v, want >= %v", s.LastUpdated(), before)
	}
	if s.Entries()[0].Received.Before(before) {
		t.Fatalf("Received = %v, want >= %v", s.Entries()[0].Received, before)
	}
}

func TestStore_EmptyTextIsAnEntry(t *testing.T) {
	var s Store
	s.Prepend("")
	if s.Len() != 1 {
		t.Fatalf("Len = %d, want 1", s.Len())
	}
	if got := s.Entries()[0].Text; got != "" {
		t.Fatalf("Text = %q, want empty", got)
	}
}

func TestStore_EntriesAreCopies(t *testing.T) {
	var s Store
	s.Prepend("a")

	entries := s.Entries()
	entries[0].Text = "mutated"

	if got := s.Entries()[0].Text; got != "a" {
		t.Fatalf("Entries should clone; got %q want a", got)
	}
	var empty Store
	if empty.Entries() != nil {
		t.Fatalf("empty store should return nil entries")
	}
	if !empty.LastUpdated().IsZero() {
		t.Fatalf("empty store LastUpdated = %v, want zero", empty.LastUpdated())
	}
}

func TestStore_ConcurrentPrependIsAtomic(t *testing.T) {
	var s Store
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Prepend(fmt.Sprintf("line %d", i))
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("Len = %d, want 50", s.Len())
	}
	seen := make(map[string]bool)
	for _, text := range texts(&s) {
		if seen[text] {
			t.Fatalf("duplicate entry %q", text)
		}
		seen[text] = true
	}
}

type sliceStreamer []string

func (s sliceStreamer) Stream(_ context.Context, fn func(string)) error {
	for _, p := range s {
		fn(p)
	}
	return nil
}

type singleElement map[string]*Store

func (d singleElement) ElementByID(id string) (viewer.Container, bool) {
	s, ok := d[id]
	return s, ok
}

func TestStore_WithViewer(t *testing.T) {
	store := &Store{}
	doc := singleElement{"log": store}
	v := viewer.New(sliceStreamer{"build ok", "deploy ok"}, nil)

	if err := v.Activate(context.Background(), doc, "log"); err != nil {
		t.Fatalf("Activate returned error: %v", err)
	}
	select {
	case <-v.Done():
	case <-time.After(time.Second):
		t.Fatalf("viewer did not finish")
	}
	if got := texts(store); !reflect.DeepEqual(got, []string{"deploy ok", "build ok"}) {
		t.Fatalf("entries = %q, want [deploy ok build ok]", got)
	}

	err := viewer.New(sliceStreamer{}, nil).Activate(context.Background(), doc, "other")
	if !errors.Is(err, viewer.ErrContainerNotFound) {
		t.Fatalf("Activate(other) error = %v, want ErrContainerNotFound", err)
	}
}
