package workers

import (
	"context"
	"log/slog"
	"time"

	"counter-lab/contract"
	"counter-lab/domain/event"
	"counter-lab/observability"
)

// FanoutWorker is the broadcast coordinator: it drains the domain event
// channel and delivers each event to the sinks of the event's room plus the
// permanent sinks (projections, storage-side observers).
//
// Delivery is best-effort with no guarantees regarding ordering across
// members, durability, or retries. A slow or gone member never stalls
// delivery to the others.
type FanoutWorker struct {
	log            *slog.Logger
	registry       contract.IRegistry
	permanentSinks []contract.EventSink
	domainEvents   chan event.DomainEvent
	telemetryChan  chan event.Event
	monitoring     *observability.MonitoringManager
	sinkTimeout    time.Duration
}

func NewFanoutWorker(log *slog.Logger, registry contract.IRegistry,
	permanentSinks []contract.EventSink, domainEvents chan event.DomainEvent,
	telemetryChan chan event.Event, monitoring *observability.MonitoringManager,
	sinkTimeout time.Duration) *FanoutWorker {
	return &FanoutWorker{
		log:            log,
		registry:       registry,
		permanentSinks: permanentSinks,
		domainEvents:   domainEvents,
		telemetryChan:  telemetryChan,
		monitoring:     monitoring,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *FanoutWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return nil
		case evt, ok := <-w.domainEvents:
			if !ok {
				return nil
			}
			w.Fanout(ctx, evt)
			w.reportCapacity()
		}
	}
}

// Fanout delivers one event to the members of its room at this instant, then
// to every permanent sink. A failing recipient is skipped, never fatal: a
// session that disconnected between the snapshot and the send is simply gone.
func (w *FanoutWorker) Fanout(ctx context.Context, evt event.DomainEvent) {
	sinks := w.registry.GetSinksForRoom(evt.RoomID())
	for _, sink := range sinks {
		w.consume(ctx, sink, evt)
	}
	for _, sink := range w.permanentSinks {
		w.consume(ctx, sink, evt)
	}
	if _, ok := evt.(event.CounterIncremented); ok {
		w.monitoring.IncrBroadcasts()
	}
}

func (w *FanoutWorker) consume(ctx context.Context, sink contract.EventSink, evt event.DomainEvent) {
	sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
	defer cancel()
	if err := sink.Consume(sinkCtx, evt); err != nil {
		w.monitoring.IncrDroppedEvents()
		w.log.Debug("sink did not accept event", "room_id", evt.RoomID(), "error", err)
	}
}

// reportCapacity feeds backpressure telemetry about the event channel.
func (w *FanoutWorker) reportCapacity() {
	if w.telemetryChan == nil {
		return
	}
	select {
	case w.telemetryChan <- event.Event{
		Type: event.ChannelCapacityType,
		Payload: event.ChannelCapacity{
			ChannelName: "domain_events",
			Capacity:    cap(w.domainEvents),
			Length:      len(w.domainEvents),
		},
		At: time.Now().UTC(),
	}:
	default:
		// Telemetry is droppable by definition
	}
}
