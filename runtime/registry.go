package runtime

import (
	"sync"

	"counter-lab/contract"
	"counter-lab/domain"
)

type Set map[string]struct{}

// Registry maps counter rooms to the sessions currently joined to them.
// Membership is derived solely from Subscribe/Unsubscribe/UnsubscribeAll
// calls; nothing survives a session's disconnect.
type Registry struct {
	mu           sync.RWMutex
	sessions     map[string]contract.EventSink   // map session -> Sink
	roomMembers  map[domain.RoomID]Set           // map room -> sessions
	sessionRooms map[string]map[domain.RoomID]struct{} // reverse index for UnsubscribeAll
}

func NewRegistry() *Registry {
	return &Registry{
		sessions:     make(map[string]contract.EventSink),
		roomMembers:  make(map[domain.RoomID]Set),
		sessionRooms: make(map[string]map[domain.RoomID]struct{}),
	}
}

// GetSinksForRoom retrieves all active communication channels for a specific room.
// It performs a two-step lookup:
// 1. Identifies session IDs associated with the room via roomMembers.
// 2. Resolves those IDs into actual EventSinks using the sessions map.
//
// The returned slice is a snapshot: joins and leaves racing with an in-flight
// broadcast never corrupt it, though a member joining mid-broadcast may or
// may not see that one broadcast.
// Returns nil if the room doesn't exist or has no members.
func (r *Registry) GetSinksForRoom(roomID domain.RoomID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.roomMembers[roomID]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for sessionID := range members {
		if sink, exists := r.sessions[sessionID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Subscribe registers a session's active connection and adds it to a specific room.
// Joining a room the session already belongs to has no additional effect.
// If the room does not yet exist in the registry, it is initialized on the fly.
func (r *Registry) Subscribe(sessionID string, roomID domain.RoomID, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = sink

	if _, ok := r.roomMembers[roomID]; !ok {
		r.roomMembers[roomID] = make(Set)
	}
	r.roomMembers[roomID][sessionID] = struct{}{}

	if _, ok := r.sessionRooms[sessionID]; !ok {
		r.sessionRooms[sessionID] = make(map[domain.RoomID]struct{})
	}
	r.sessionRooms[sessionID][roomID] = struct{}{}
}

// Unsubscribe removes a session from one room. Leaving a room the session
// never joined has no effect. Empty room sets are dropped entirely so the
// map does not leak over time; the room is lazily re-created on the next join.
func (r *Registry) Unsubscribe(sessionID string, roomID domain.RoomID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(sessionID, roomID)
	if rooms, ok := r.sessionRooms[sessionID]; ok && len(rooms) == 0 {
		delete(r.sessionRooms, sessionID)
		delete(r.sessions, sessionID)
	}
}

// UnsubscribeAll removes a session from every room it had joined and forgets
// its sink. Used on disconnect; safe to call for a session that never joined
// anything, and calling it twice is a no-op.
func (r *Registry) UnsubscribeAll(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for roomID := range r.sessionRooms[sessionID] {
		r.removeLocked(sessionID, roomID)
	}
	delete(r.sessionRooms, sessionID)
	delete(r.sessions, sessionID)
}

func (r *Registry) removeLocked(sessionID string, roomID domain.RoomID) {
	if members, ok := r.roomMembers[roomID]; ok {
		delete(members, sessionID)
		if len(members) == 0 {
			delete(r.roomMembers, roomID)
		}
	}
	if rooms, ok := r.sessionRooms[sessionID]; ok {
		delete(rooms, roomID)
	}
}

// Rooms returns the ids of the rooms a session currently belongs to.
func (r *Registry) Rooms(sessionID string) []domain.RoomID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var rooms []domain.RoomID
	for roomID := range r.sessionRooms[sessionID] {
		rooms = append(rooms, roomID)
	}
	return rooms
}
