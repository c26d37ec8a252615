// Package domain contains core concepts of the counter system.
// No runtime, network, or storage logic should be added here.
package domain

import "time"

// RoomID identifies the broadcast channel of one counter. It is the counter's
// own id: every counter has exactly one room mirroring it.
type RoomID string

// Counter is a named, persistently stored non-negative integer owned by a
// user. Value only moves forward, through the store's atomic increment.
type Counter struct {
	ID        string
	Owner     string
	Name      string
	Number    int
	Value     int64
	CreatedAt time.Time
}

// Room returns the broadcast channel key mirroring this counter.
func (c Counter) Room() RoomID {
	return RoomID(c.ID)
}
