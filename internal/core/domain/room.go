package domain

import (
	"errors"
	"time"
)

// RoomStatus represents the occupancy state of a room.
type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomOccupied    RoomStatus = "occupied"
	RoomMaintenance RoomStatus = "maintenance"
)

// validRoomTransitions defines the allowed occupancy transitions.
var validRoomTransitions = map[RoomStatus][]RoomStatus{
	RoomAvailable:   {RoomOccupied, RoomMaintenance},
	RoomOccupied:    {RoomAvailable, RoomMaintenance},
	RoomMaintenance: {RoomAvailable},
}

var ErrRoomNotFound = errors.New("room not found")
var ErrRoomExists = errors.New("room already exists")
var ErrInvalidRoomTransition = errors.New("invalid room status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s RoomStatus) CanTransitionTo(next RoomStatus) bool {
	for _, allowed := range validRoomTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Room models a single rental unit.
type Room struct {
	ID         string     `json:"id" bson:"_id,omitempty"`
	Name       string     `json:"name" bson:"name"`
	Floor      int        `json:"floor" bson:"floor"`
	PriceVND   int64      `json:"price_vnd" bson:"price_vnd"`
	Status     RoomStatus `json:"status" bson:"status"`
	TenantName string     `json:"tenant_name,omitempty" bson:"tenant_name,omitempty"`
	CreatedAt  time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" bson:"updated_at"`
}
