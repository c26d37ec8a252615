package event

import (
	"counter-lab/domain"
	"time"
)

type DomainEvent interface {
	RoomID() domain.RoomID
}

// CounterIncremented is emitted once an increment has been committed to
// storage. Value is the post-increment value; every member of the room
// receives it, the triggering session included.
type CounterIncremented struct {
	Room  domain.RoomID
	Value int64
	At    time.Time
}

func (e CounterIncremented) RoomID() domain.RoomID {
	return e.Room
}

// CounterCreated is emitted by the admin surface when a counter is created.
type CounterCreated struct {
	Room  domain.RoomID
	Owner string
	Name  string
	At    time.Time
}

func (e CounterCreated) RoomID() domain.RoomID {
	return e.Room
}

// CounterRenamed is emitted by the admin surface when a counter's label changes.
type CounterRenamed struct {
	Room domain.RoomID
	Name string
	At   time.Time
}

func (e CounterRenamed) RoomID() domain.RoomID {
	return e.Room
}
