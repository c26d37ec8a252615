// Package projection builds local read models from observed events.
// Does not emit events or interact with the transport directly.
package projection

import (
	"context"
	"sync"

	"counter-lab/domain"
	"counter-lab/domain/event"
)

// Entry is one observed increment.
type Entry struct {
	Room  domain.RoomID
	Value int64
}

// Feed keeps the last N increments across all rooms, newest last. It is a
// permanent sink: it sees every event the fanout delivers, which makes it the
// activity feed behind the debug page.
type Feed struct {
	mu      sync.RWMutex
	limit   int
	entries []Entry
}

func NewFeed(limit int) *Feed {
	return &Feed{limit: limit}
}

func (f *Feed) Consume(_ context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.CounterIncremented)
	if !ok {
		return nil
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, Entry{Room: evt.Room, Value: evt.Value})
	if len(f.entries) > f.limit {
		f.entries = f.entries[len(f.entries)-f.limit:]
	}
	return nil
}

// Recent returns a copy of the feed, oldest first.
func (f *Feed) Recent() []Entry {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]Entry, len(f.entries))
	copy(out, f.entries)
	return out
}
