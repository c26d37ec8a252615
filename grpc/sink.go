package grpc

import (
	"context"

	"counter-lab/domain/event"
)

// Sink bridges the fanout pipeline to one connected stream. Consume never
// blocks the fanout: a full buffer means the client is too slow and the event
// is dropped for that recipient only.
type Sink struct {
	ConnectedUserEvent chan event.DomainEvent
}

func NewSink(bufferSize int) *Sink {
	return &Sink{ConnectedUserEvent: make(chan event.DomainEvent, bufferSize)}
}

// Consume is called by the fanout worker.
// It redirects the event onto the stream's channel; the stream handler takes
// it from there.
func (s *Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.ConnectedUserEvent <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		// Backpressure: the recipient's buffer is full, drop for this recipient
		return nil
	}
}
