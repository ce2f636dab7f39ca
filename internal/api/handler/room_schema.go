package handler

import "time"

type createRoomRequest struct {
	Name       string `json:"name"       validate:"required"`
	Floor      int    `json:"floor"      validate:"required,min=1"`
	PriceVND   int64  `json:"price_vnd"  validate:"required,gt=0"`
	TenantName string `json:"tenant_name"`
}

type updateRoomStatusRequest struct {
	Status     string `json:"status"      validate:"required,oneof=available occupied maintenance"`
	TenantName string `json:"tenant_name"`
}

// roomResponse is the transport representation of a room, intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type roomResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Floor      int       `json:"floor"`
	PriceVND   int64     `json:"price_vnd"`
	Status     string    `json:"status"`
	TenantName string    `json:"tenant_name,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type roomListResponse struct {
	Rooms []roomResponse `json:"rooms"`
	Count int            `json:"count"`
}
