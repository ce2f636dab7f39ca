package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

// RoomService implements room management on top of the repository.
type RoomService struct {
	repo ports.RoomRepository
	log  zerolog.Logger
}

func NewRoomService(repo ports.RoomRepository, log zerolog.Logger) *RoomService {
	return &RoomService{repo: repo, log: log}
}

func (s *RoomService) ListRooms(ctx context.Context) ([]domain.Room, error) {
	rooms, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	return rooms, nil
}

func (s *RoomService) GetRoom(ctx context.Context, id string) (*domain.Room, error) {
	return s.repo.FindByID(ctx, id)
}

// CreateRoom registers a new unit. New rooms always start available; an
// initial tenant name flips them straight to occupied.
func (s *RoomService) CreateRoom(ctx context.Context, input ports.CreateRoomInput) (*domain.Room, error) {
	now := time.Now().UTC()
	room := &domain.Room{
		Name:       input.Name,
		Floor:      input.Floor,
		PriceVND:   input.PriceVND,
		Status:     domain.RoomAvailable,
		TenantName: input.TenantName,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if input.TenantName != "" {
		room.Status = domain.RoomOccupied
	}

	created, err := s.repo.Create(ctx, room)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("room", created.Name).Int("floor", created.Floor).Msg("room created")
	return created, nil
}

// UpdateRoomStatus validates the occupancy transition before persisting it.
func (s *RoomService) UpdateRoomStatus(ctx context.Context, input ports.UpdateRoomStatusInput) (*domain.Room, error) {
	room, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	if !room.Status.CanTransitionTo(input.Status) {
		return nil, fmt.Errorf("%w (from %s to %s)", domain.ErrInvalidRoomTransition, room.Status, input.Status)
	}

	tenant := input.TenantName
	if input.Status != domain.RoomOccupied {
		tenant = ""
	}

	if err := s.repo.UpdateStatus(ctx, input.ID, input.Status, tenant); err != nil {
		return nil, fmt.Errorf("update room status: %w", err)
	}

	room.Status = input.Status
	room.TenantName = tenant
	room.UpdatedAt = time.Now().UTC()
	return room, nil
}
