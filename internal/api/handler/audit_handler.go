package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nhutty0402/quanly-nhatro/internal/core/ports"
)

// AuditHandler serves the authentication history for an account. Sits behind
// the session guard like every other management surface.
type AuditHandler struct {
	service ports.AuditService
}

func NewAuditHandler(service ports.AuditService) *AuditHandler {
	return &AuditHandler{service: service}
}

type authEventResponse struct {
	Phone     string    `json:"phone,omitempty"`
	Kind      string    `json:"kind"`
	Reason    string    `json:"reason,omitempty"`
	RemoteIP  string    `json:"remote_ip,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type auditListResponse struct {
	Events []authEventResponse `json:"events"`
	Count  int                 `json:"count"`
}

// Recent handles GET /audit.
//
// @Summary      Recent authentication events for an account
// @Tags         audit
// @Produce      json
// @Param        phone  query     string  true   "Phone number"
// @Param        limit  query     int     false  "Maximum entries (default 50)"
// @Success      200    {object}  auditListResponse
// @Failure      400    {object}  errorResponse
// @Router       /audit [get]
func (h *AuditHandler) Recent(c echo.Context) error {
	phone := c.QueryParam("phone")
	if phone == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "phone is required")
	}

	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	events, err := h.service.Recent(c.Request().Context(), phone, limit)
	if err != nil {
		return err
	}

	resp := auditListResponse{Events: make([]authEventResponse, 0, len(events)), Count: len(events)}
	for _, ev := range events {
		resp.Events = append(resp.Events, authEventResponse{
			Phone:     ev.Phone,
			Kind:      string(ev.Kind),
			Reason:    ev.Reason,
			RemoteIP:  ev.RemoteIP,
			Timestamp: ev.Timestamp,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
