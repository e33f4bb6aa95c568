package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bisfor/hotel-booking-backend/internal/analytics"
	"github.com/bisfor/hotel-booking-backend/internal/dashboard"
	"github.com/bisfor/hotel-booking-backend/internal/pkg/response"
)

type Handler struct {
	service dashboard.Service
}

func NewHandler(service dashboard.Service) *Handler {
	return &Handler{service: service}
}

// Stats returns the dashboard summary cards.
func (h *Handler) Stats(c *gin.Context) {
	var req StatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	st, err := h.service.Stats(c.Request.Context(), dashboard.PriceSource(req.PriceSource))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewStatsResponse(st))
}

// Rollups returns weekly and monthly booking counts and revenue for charts.
func (h *Handler) Rollups(c *gin.Context) {
	var req RollupsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters", err)
		return
	}

	r, err := h.service.Rollups(
		c.Request.Context(),
		dashboard.PriceSource(req.PriceSource),
		analytics.RevenueMode(req.Revenue),
	)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewRollupsResponse(r))
}
