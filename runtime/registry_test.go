package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"counter-lab/domain"
	"counter-lab/domain/event"
)

type Sink struct {
}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Room_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	roomID := domain.RoomID(uuid.NewString())
	sink := Sink{}

	// Given no session is connected
	// And no room exists
	req.Empty(registry.sessions)
	req.Empty(registry.roomMembers)

	// When a session subscribes a room
	registry.Subscribe(sessionID, roomID, sink)

	// Then
	req.Len(registry.sessions, 1)
	req.Equal(sink, registry.sessions[sessionID])

	req.Len(registry.roomMembers, 1)
	req.Contains(registry.roomMembers[roomID], sessionID)

	req.Len(registry.GetSinksForRoom(roomID), 1)
	req.Contains(registry.GetSinksForRoom(roomID), sink)
}

func TestRegistry_Subscribe_One_Room_Multiple_Sessions(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID1 := uuid.NewString()
	sessionID2 := uuid.NewString()
	roomID := domain.RoomID(uuid.NewString())
	sink1 := Sink{}
	sink2 := Sink{}

	// When sessions subscribe a room
	registry.Subscribe(sessionID1, roomID, sink1)
	registry.Subscribe(sessionID2, roomID, sink2)

	// Then
	req.Len(registry.sessions, 2)
	req.Len(registry.roomMembers[roomID], 2)

	req.Len(registry.GetSinksForRoom(roomID), 2)
	req.Contains(registry.GetSinksForRoom(roomID), sink1)
}

func TestRegistry_Subscribe_Twice_Is_Idempotent(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	roomID := domain.RoomID(uuid.NewString())
	sink := Sink{}

	// When a session subscribes the same room twice
	registry.Subscribe(sessionID, roomID, sink)
	registry.Subscribe(sessionID, roomID, sink)

	// Then the room still holds a single member
	req.Len(registry.sessions, 1)
	req.Len(registry.roomMembers[roomID], 1)
	req.Len(registry.GetSinksForRoom(roomID), 1)
}

func TestRegistry_UnSubscribe_One_Room_One_Session(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	roomID := domain.RoomID(uuid.NewString())
	sink := Sink{}

	// Given a session subscribes a room
	registry.Subscribe(sessionID, roomID, sink)

	// When a session unsubscribe a room
	registry.Unsubscribe(sessionID, roomID)

	// Then no session left
	// And the room doesn't exist anymore
	req.Empty(registry.sessions)
	req.Empty(registry.roomMembers)

	// And no session connected left in room
	req.Nil(registry.GetSinksForRoom(roomID))
}

func TestRegistry_UnSubscribe_One_Room_Multiple_Sessions(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID1 := uuid.NewString()
	sessionID2 := uuid.NewString()
	roomID := domain.RoomID(uuid.NewString())
	sink1 := Sink{}
	sink2 := Sink{}

	// When sessions subscribe a room
	registry.Subscribe(sessionID1, roomID, sink1)
	registry.Subscribe(sessionID2, roomID, sink2)

	// When a session unsubscribe a room
	registry.Unsubscribe(sessionID1, roomID)

	// Then only one session left
	req.Len(registry.sessions, 1)
	req.Len(registry.roomMembers[roomID], 1)

	req.Len(registry.GetSinksForRoom(roomID), 1)
	req.Contains(registry.GetSinksForRoom(roomID), sink2)
}

func TestRegistry_UnSubscribe_Unknown_Room_Is_NoOp(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID := uuid.NewString()
	roomID := domain.RoomID(uuid.NewString())
	otherRoomID := domain.RoomID(uuid.NewString())
	sink := Sink{}

	// Given a session subscribes a room
	registry.Subscribe(sessionID, roomID, sink)

	// When it unsubscribes a room it never joined
	registry.Unsubscribe(sessionID, otherRoomID)

	// Then its membership is untouched
	req.Len(registry.sessions, 1)
	req.Len(registry.roomMembers[roomID], 1)
}

func TestRegistry_UnsubscribeAll_Removes_Session_From_Every_Room(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	sessionID1 := uuid.NewString()
	sessionID2 := uuid.NewString()
	roomID1 := domain.RoomID(uuid.NewString())
	roomID2 := domain.RoomID(uuid.NewString())
	sink1 := Sink{}
	sink2 := Sink{}

	// Given a session joined two rooms, one of them shared
	registry.Subscribe(sessionID1, roomID1, sink1)
	registry.Subscribe(sessionID1, roomID2, sink1)
	registry.Subscribe(sessionID2, roomID2, sink2)

	// When the session disconnects
	registry.UnsubscribeAll(sessionID1)

	// Then it is gone from every room
	req.Empty(registry.Rooms(sessionID1))
	req.Nil(registry.GetSinksForRoom(roomID1))

	// And the shared room keeps its other member
	req.Len(registry.GetSinksForRoom(roomID2), 1)
	req.Contains(registry.GetSinksForRoom(roomID2), sink2)

	// And calling it again is harmless
	registry.UnsubscribeAll(sessionID1)
	req.Len(registry.sessions, 1)
}
