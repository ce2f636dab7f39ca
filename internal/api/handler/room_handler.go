package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/nhutty0402/quanly-nhatro/internal/core/domain"
	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

// RoomHandler handles HTTP requests for room management. Every route sits
// behind the session guard.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// List handles GET /rooms.
//
// @Summary      List all rooms
// @Tags         rooms
// @Produce      json
// @Success      200  {object}  roomListResponse
// @Failure      500  {object}  errorResponse
// @Router       /rooms [get]
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.service.ListRooms(c.Request().Context())
	if err != nil {
		return err
	}

	resp := roomListResponse{Rooms: make([]roomResponse, 0, len(rooms)), Count: len(rooms)}
	for _, room := range rooms {
		resp.Rooms = append(resp.Rooms, toRoomResponse(&room))
	}
	return c.JSON(http.StatusOK, resp)
}

// Get handles GET /rooms/:id.
//
// @Summary      Get a room by id
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room id"
// @Success      200  {object}  roomResponse
// @Failure      404  {object}  errorResponse
// @Router       /rooms/{id} [get]
func (h *RoomHandler) Get(c echo.Context) error {
	room, err := h.service.GetRoom(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toRoomResponse(room))
}

// Create handles POST /rooms.
//
// @Summary      Create a new room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        body  body      createRoomRequest  true  "Room details"
// @Success      201   {object}  roomResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	var req createRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	room, err := h.service.CreateRoom(c.Request().Context(), ports.CreateRoomInput{
		Name:       req.Name,
		Floor:      req.Floor,
		PriceVND:   req.PriceVND,
		TenantName: req.TenantName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toRoomResponse(room))
}

// UpdateStatus handles PATCH /rooms/:id/status.
//
// @Summary      Update a room's occupancy status
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id    path      string                   true  "Room id"
// @Param        body  body      updateRoomStatusRequest  true  "New status"
// @Success      200   {object}  roomResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /rooms/{id}/status [patch]
func (h *RoomHandler) UpdateStatus(c echo.Context) error {
	var req updateRoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	room, err := h.service.UpdateRoomStatus(c.Request().Context(), ports.UpdateRoomStatusInput{
		ID:         c.Param("id"),
		Status:     domain.RoomStatus(req.Status),
		TenantName: req.TenantName,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toRoomResponse(room))
}

func toRoomResponse(room *domain.Room) roomResponse {
	return roomResponse{
		ID:         room.ID,
		Name:       room.Name,
		Floor:      room.Floor,
		PriceVND:   room.PriceVND,
		Status:     string(room.Status),
		TenantName: room.TenantName,
		CreatedAt:  room.CreatedAt,
		UpdatedAt:  room.UpdatedAt,
	}
}
