package runtime_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"counter-lab/domain"
	"counter-lab/domain/event"
	"counter-lab/errors"
	"counter-lab/mocks"
	"counter-lab/observability"
	"counter-lab/runtime"
	"counter-lab/runtime/workers"
)

type RecordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *RecordingSink) Consume(ctx context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *RecordingSink) Events() []event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]event.DomainEvent(nil), s.events...)
}

func newOrchestrator(t *testing.T, counters *mocks.MockICounterRepository) (*runtime.Orchestrator, *runtime.Registry) {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry()
	monitoring := observability.NewMonitoringManager(log)
	supervisor := workers.NewSupervisor(log, nil, 100*time.Millisecond)
	return runtime.NewOrchestrator(log, supervisor, registry, counters,
		monitoring, nil, 100, time.Second), registry
}

func TestOrchestrator_Join_Increments_And_Subscribes(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	counters := mocks.NewMockICounterRepository(ctrl)

	orchestrator, registry := newOrchestrator(t, counters)
	sessionID := uuid.NewString()
	roomID := uuid.NewString()
	sink := &RecordingSink{}

	// Given the counter accepts the increment
	counters.EXPECT().IncrementCounter(roomID).Return(int64(4), nil).Times(1)

	// When the session joins the counter room
	value, err := orchestrator.Join(context.Background(), sessionID, roomID, sink)

	// Then the new value comes back and the session is a room member
	req.NoError(err)
	req.Equal(int64(4), value)
	req.Contains(registry.Rooms(sessionID), domain.RoomID(roomID))
}

func TestOrchestrator_Join_Rejects_Malformed_Room(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	counters := mocks.NewMockICounterRepository(ctrl)

	orchestrator, registry := newOrchestrator(t, counters)
	sessionID := uuid.NewString()
	sink := &RecordingSink{}

	// When the session joins with a room id that is not a uuid
	_, err := orchestrator.Join(context.Background(), sessionID, "not-a-uuid", sink)

	// Then the join fails before touching the store
	req.ErrorIs(err, errors.ErrInvalidRoomID)
	req.Empty(registry.Rooms(sessionID))
}

func TestOrchestrator_Join_Unknown_Counter_Leaves_No_Membership(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	counters := mocks.NewMockICounterRepository(ctrl)

	orchestrator, registry := newOrchestrator(t, counters)
	sessionID := uuid.NewString()
	roomID := uuid.NewString()
	sink := &RecordingSink{}

	// Given no counter exists behind the room id
	counters.EXPECT().IncrementCounter(roomID).Return(int64(0), errors.ErrCounterNotFound).Times(1)

	// When the session tries to join
	_, err := orchestrator.Join(context.Background(), sessionID, roomID, sink)

	// Then the failure propagates and the registry is untouched
	req.ErrorIs(err, errors.ErrCounterNotFound)
	req.Empty(registry.Rooms(sessionID))
	req.Nil(registry.GetSinksForRoom(domain.RoomID(roomID)))
}

func TestOrchestrator_Rejoin_Increments_Again(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	counters := mocks.NewMockICounterRepository(ctrl)

	orchestrator, registry := newOrchestrator(t, counters)
	sessionID := uuid.NewString()
	roomID := uuid.NewString()
	sink := &RecordingSink{}

	// Given the store hands out consecutive values
	first := counters.EXPECT().IncrementCounter(roomID).Return(int64(4), nil)
	counters.EXPECT().IncrementCounter(roomID).Return(int64(5), nil).After(first)

	// When the same session joins the same room twice
	value1, err1 := orchestrator.Join(context.Background(), sessionID, roomID, sink)
	value2, err2 := orchestrator.Join(context.Background(), sessionID, roomID, sink)

	// Then each join advanced the counter
	req.NoError(err1)
	req.NoError(err2)
	req.Equal(int64(4), value1)
	req.Equal(int64(5), value2)

	// And the membership stayed single
	req.Len(registry.GetSinksForRoom(domain.RoomID(roomID)), 1)
}

func TestOrchestrator_Broadcast_Reaches_Every_Member(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	counters := mocks.NewMockICounterRepository(ctrl)

	orchestrator, registry := newOrchestrator(t, counters)
	roomID := uuid.NewString()
	joiner := &RecordingSink{}
	other := &RecordingSink{}

	counters.EXPECT().IncrementCounter(roomID).Return(int64(7), nil).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(orchestrator.Start(ctx))
	defer orchestrator.Stop()

	// Given two sessions in the room
	registry.Subscribe(uuid.NewString(), domain.RoomID(roomID), other)
	_, err := orchestrator.Join(ctx, uuid.NewString(), roomID, joiner)
	req.NoError(err)

	// Then both members receive the increment, the joiner included
	req.Eventually(func() bool {
		return len(joiner.Events()) == 1 && len(other.Events()) == 1
	}, time.Second, 10*time.Millisecond)

	evt, ok := joiner.Events()[0].(event.CounterIncremented)
	req.True(ok)
	req.Equal(int64(7), evt.Value)
	req.Equal(domain.RoomID(roomID), evt.Room)
}

func TestOrchestrator_Join_Canceled_Mid_Increment_Never_Registers(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	counters := mocks.NewMockICounterRepository(ctrl)

	orchestrator, registry := newOrchestrator(t, counters)
	sessionID := uuid.NewString()
	roomID := uuid.NewString()
	sink := &RecordingSink{}

	// Given an increment that is still committing when the session goes away
	entered := make(chan struct{})
	release := make(chan struct{})
	counters.EXPECT().IncrementCounter(roomID).DoAndReturn(func(string) (int64, error) {
		close(entered)
		<-release
		return 4, nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	joinErr := make(chan error, 1)
	go func() {
		_, err := orchestrator.Join(ctx, sessionID, roomID, sink)
		joinErr <- err
	}()

	// When the stream dies and disconnect runs while the join is in flight
	<-entered
	cancel()
	orchestrator.Disconnect(sessionID)
	close(release)

	// Then the join reports the cancellation instead of registering
	req.ErrorIs(<-joinErr, context.Canceled)
	req.Nil(registry.GetSinksForRoom(domain.RoomID(roomID)))
	req.Empty(registry.Rooms(sessionID))
}

func TestOrchestrator_Disconnect_Forgets_The_Session(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	counters := mocks.NewMockICounterRepository(ctrl)

	orchestrator, registry := newOrchestrator(t, counters)
	sessionID := uuid.NewString()
	roomID1 := uuid.NewString()
	roomID2 := uuid.NewString()
	sink := &RecordingSink{}

	counters.EXPECT().IncrementCounter(gomock.Any()).Return(int64(1), nil).Times(2)

	// Given a session joined two rooms
	_, err := orchestrator.Join(context.Background(), sessionID, roomID1, sink)
	req.NoError(err)
	_, err = orchestrator.Join(context.Background(), sessionID, roomID2, sink)
	req.NoError(err)

	// When the session disconnects
	orchestrator.Disconnect(sessionID)

	// Then no membership survives
	req.Empty(registry.Rooms(sessionID))
	req.Nil(registry.GetSinksForRoom(domain.RoomID(roomID1)))
	req.Nil(registry.GetSinksForRoom(domain.RoomID(roomID2)))

	// And a second disconnect is a no-op
	orchestrator.Disconnect(sessionID)
}
