package ports

import (
	"context"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

// CreateRoomInput is the service DTO for room creation.
type CreateRoomInput struct {
	Name       string
	Floor      int
	PriceVND   int64
	TenantName string
}

// UpdateRoomStatusInput changes a room's occupancy state.
type UpdateRoomStatusInput struct {
	ID         string
	Status     domain.RoomStatus
	TenantName string
}

// RoomService exposes room management to the transport layer.
type RoomService interface {
	ListRooms(ctx context.Context) ([]domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	CreateRoom(ctx context.Context, input CreateRoomInput) (*domain.Room, error)
	UpdateRoomStatus(ctx context.Context, input UpdateRoomStatusInput) (*domain.Room, error)
}
