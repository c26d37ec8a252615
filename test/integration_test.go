package test

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"

	"counter-lab/domain"
	"counter-lab/domain/event"
	"counter-lab/errors"
	grpc2 "counter-lab/grpc"
	"counter-lab/observability"
	"counter-lab/projection"
	"counter-lab/repositories"
	"counter-lab/runtime"
	"counter-lab/runtime/workers"
)

type engine struct {
	orchestrator *runtime.Orchestrator
	registry     *runtime.Registry
	counters     repositories.ICounterRepository
	feed         *projection.Feed
}

// recvIncrement waits for the next broadcast increment on a session's sink.
func recvIncrement(t *testing.T, sink *grpc2.Sink) int64 {
	t.Helper()
	select {
	case e := <-sink.ConnectedUserEvent:
		evt, ok := e.(event.CounterIncremented)
		require.True(t, ok)
		return evt.Value
	case <-time.After(2 * time.Second):
		require.Fail(t, "Timeout: increment never reached the sink")
		return 0
	}
}

func startEngine(t *testing.T, ctx context.Context) *engine {
	t.Helper()
	req := require.New(t)

	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	telemetryChan := make(chan event.Event, 100)
	supervisor := workers.NewSupervisor(log, telemetryChan, 200*time.Millisecond)
	registry := runtime.NewRegistry()
	monitoring := observability.NewMonitoringManager(log)
	counterRepository := repositories.NewCounterRepository(db, log)
	feed := projection.NewFeed(100)

	orchestrator := runtime.NewOrchestrator(
		log, supervisor, registry, counterRepository,
		monitoring, telemetryChan, 1000, 3*time.Second,
	)
	orchestrator.Add(feed)
	req.NoError(orchestrator.Start(ctx))

	// Clean everything at the end of the test
	t.Cleanup(func() {
		orchestrator.Stop()
		db.Close()
	})

	return &engine{orchestrator: orchestrator, registry: registry, counters: counterRepository, feed: feed}
}

func Test_Scenario_Two_Sessions_Join_The_Same_Counter(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	eng := startEngine(t, ctx)

	// Given a counter already at 3
	counter, err := eng.counters.CreateCounter(uuid.NewString(), "daily steps", 1)
	req.NoError(err)
	for i := 0; i < 3; i++ {
		_, err = eng.counters.IncrementCounter(counter.ID)
		req.NoError(err)
	}

	sinkA := grpc2.NewSink(16)
	sinkB := grpc2.NewSink(16)

	// When session A joins
	value, err := eng.orchestrator.Join(ctx, uuid.NewString(), counter.ID, sinkA)
	req.NoError(err)
	req.Equal(int64(4), value)

	// Then A receives the broadcast for its own join
	req.Equal(int64(4), recvIncrement(t, sinkA))

	// And when session B joins the same counter
	value, err = eng.orchestrator.Join(ctx, uuid.NewString(), counter.ID, sinkB)
	req.NoError(err)
	req.Equal(int64(5), value)

	// Then both members observe B's increment
	req.Equal(int64(5), recvIncrement(t, sinkA))
	req.Equal(int64(5), recvIncrement(t, sinkB))

	// And the value survived in the store
	stored, err := eng.counters.GetCounter(counter.ID)
	req.NoError(err)
	req.Equal(int64(5), stored.Value)

	// And the activity feed projected the increments
	req.Eventually(func() bool { return len(eng.feed.Recent()) == 2 }, time.Second, 10*time.Millisecond)
}

func Test_Scenario_Join_Unknown_Counter_Fails(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	eng := startEngine(t, ctx)

	sink := grpc2.NewSink(16)

	// When a session joins a room no counter backs
	_, err := eng.orchestrator.Join(ctx, uuid.NewString(), uuid.NewString(), sink)

	// Then the join is refused and no event was broadcast
	req.ErrorIs(err, errors.ErrCounterNotFound)
	req.Empty(sink.ConnectedUserEvent)
}

func Test_Scenario_Fifty_Concurrent_Joins_Count_Exactly_Fifty(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	eng := startEngine(t, ctx)

	counter, err := eng.counters.CreateCounter(uuid.NewString(), "load", 1)
	req.NoError(err)

	const sessions = 50
	values := make([]int64, sessions)
	sinks := make([]*grpc2.Sink, sessions)
	var wg sync.WaitGroup

	// When fifty sessions join the same counter concurrently
	for i := 0; i < sessions; i++ {
		sinks[i] = grpc2.NewSink(sessions)
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			value, err := eng.orchestrator.Join(ctx, uuid.NewString(), counter.ID, sinks[i])
			require.NoError(t, err)
			values[i] = value
		}(i)
	}
	wg.Wait()

	// Then every join observed a distinct value and nothing was lost
	sortedValues := append([]int64(nil), values...)
	sort.Slice(sortedValues, func(i, j int) bool { return sortedValues[i] < sortedValues[j] })
	for i, value := range sortedValues {
		req.Equal(int64(i+1), value)
	}

	stored, err := eng.counters.GetCounter(counter.ID)
	req.NoError(err)
	req.Equal(int64(sessions), stored.Value)

	// And the room holds all fifty members
	req.Len(eng.registry.GetSinksForRoom(domain.RoomID(counter.ID)), sessions)

	// The feed is delivered after the room sinks within one fanout pass, so
	// once it holds all fifty events every room delivery has completed too
	req.Eventually(func() bool { return len(eng.feed.Recent()) == sessions }, 2*time.Second, 10*time.Millisecond)

	// And every session was notified of its own increment; receipts only
	// carry values from the fifty committed increments
	for i := range sinks {
		received := drainSink(sinks[i])
		req.Contains(received, values[i])
		for _, value := range received {
			req.GreaterOrEqual(value, int64(1))
			req.LessOrEqual(value, int64(sessions))
		}
	}
}

// drainSink empties a session's buffered broadcasts.
func drainSink(sink *grpc2.Sink) []int64 {
	var values []int64
	for {
		select {
		case e := <-sink.ConnectedUserEvent:
			if evt, ok := e.(event.CounterIncremented); ok {
				values = append(values, evt.Value)
			}
		default:
			return values
		}
	}
}
