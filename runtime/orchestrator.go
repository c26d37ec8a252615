// Package runtime handles event production, propagation and session
// registration. It orchestrates the system without containing business logic
// or domain rules.
package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"counter-lab/contract"
	"counter-lab/domain"
	"counter-lab/domain/event"
	"counter-lab/errors"
	"counter-lab/observability"
	"counter-lab/repositories"
	"counter-lab/runtime/workers"

	"github.com/google/uuid"
)

// Orchestrator wires the registry, the counter repository and the fanout
// pipeline together. It is the single entry point the transport layer talks
// to: Join, Leave, Disconnect and Broadcast.
type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	counters       repositories.ICounterRepository
	monitoring     *observability.MonitoringManager
	permanentSinks []contract.EventSink
	domainEvents   chan event.DomainEvent
	telemetryChan  chan event.Event
	sinkTimeout    time.Duration
	started        bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	registry contract.IRegistry, counters repositories.ICounterRepository,
	monitoring *observability.MonitoringManager, telemetryChan chan event.Event,
	bufferSize int, sinkTimeout time.Duration) *Orchestrator {
	return &Orchestrator{
		log:           log,
		supervisor:    supervisor,
		registry:      registry,
		counters:      counters,
		monitoring:    monitoring,
		domainEvents:  make(chan event.DomainEvent, bufferSize),
		telemetryChan: telemetryChan,
		sinkTimeout:   sinkTimeout,
	}
}

// Add registers permanent sinks that receive every domain event regardless of
// room membership (projections, telemetry). Must be called before Start.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Join is the conflated subscribe-and-increment operation: a successful join
// subscribes the session to the counter's room AND advances the counter by
// one. The two steps are ordered so a storage failure prevents the
// registration entirely; the caller is never left subscribed-but-not-counted
// or counted-but-not-subscribed.
func (o *Orchestrator) Join(ctx context.Context, sessionID, roomID string,
	sink contract.EventSink) (int64, error) {
	if _, err := uuid.Parse(roomID); err != nil {
		return 0, fmt.Errorf("%w: %q", errors.ErrInvalidRoomID, roomID)
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	value, err := o.counters.IncrementCounter(roomID)
	if err != nil {
		return 0, err
	}

	// The increment can outlive the caller: if the session vanished while it
	// was committing, the room still hears about the new value, but the gone
	// session must not be registered.
	if err := ctx.Err(); err != nil {
		o.Emit(event.CounterIncremented{
			Room:  domain.RoomID(roomID),
			Value: value,
			At:    time.Now().UTC(),
		})
		return 0, err
	}

	o.registry.Subscribe(sessionID, domain.RoomID(roomID), sink)
	o.monitoring.IncrJoins()

	o.Emit(event.CounterIncremented{
		Room:  domain.RoomID(roomID),
		Value: value,
		At:    time.Now().UTC(),
	})
	return value, nil
}

// Leave removes the session from one room without touching the counter.
func (o *Orchestrator) Leave(sessionID string, roomID domain.RoomID) {
	o.registry.Unsubscribe(sessionID, roomID)
}

// Disconnect removes the session from every room it had joined. Invoked
// exactly once by the transport layer when the connection drops; harmless if
// the session never joined anything.
func (o *Orchestrator) Disconnect(sessionID string) {
	o.registry.UnsubscribeAll(sessionID)
}

// Broadcast is the programmatic fan-out entry point for collaborators that
// already committed an increment elsewhere: it delivers value to the room
// without touching the store.
func (o *Orchestrator) Broadcast(roomID domain.RoomID, value int64) {
	o.Emit(event.CounterIncremented{Room: roomID, Value: value, At: time.Now().UTC()})
}

// Emit pushes a domain event into the fanout pipeline. The channel send never
// blocks a caller: when the pipeline is saturated the event is dropped and
// counted, which trades delivery for liveness.
func (o *Orchestrator) Emit(e event.DomainEvent) {
	select {
	case o.domainEvents <- e:
	default:
		o.monitoring.IncrDroppedEvents()
		o.log.Warn(fmt.Sprintf("Domain event channel full for Room %s, dropping event", e.RoomID()))
	}
}

// Start prepares the fanout pipeline and launches the supervised workers.
// It returns immediately; the supervisor owns the worker goroutines until
// ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return fmt.Errorf("orchestrator already started")
	}
	o.started = true

	fanout := workers.NewFanoutWorker(o.log, o.registry, o.permanentSinks,
		o.domainEvents, o.telemetryChan, o.monitoring, o.sinkTimeout)
	o.supervisor.Add(fanout)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	go o.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown by canceling the supervision context.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
