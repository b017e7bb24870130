package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cargotrack/cargo-api/internal/core/ports"
)

// AnalyticsHandler serves the aggregate product snapshot.
type AnalyticsHandler struct {
	service ports.AnalyticsService
}

func NewAnalyticsHandler(service ports.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Snapshot handles GET /api/products/analytics.
//
// @Summary      Aggregate product statistics
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.ProductStats
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products/analytics [get]
func (h *AnalyticsHandler) Snapshot(c echo.Context) error {
	stats, err := h.service.Snapshot(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, stats)
}
