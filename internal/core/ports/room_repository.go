package ports

import (
	"context"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
)

// RoomRepository defines the persistence interface for rooms.
type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) (*domain.Room, error)
	FindByID(ctx context.Context, id string) (*domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	UpdateStatus(ctx context.Context, id string, status domain.RoomStatus, tenantName string) error
}
