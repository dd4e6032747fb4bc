package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/cedarhouse/restaurant-api/internal/core/ports"
)

type AdminHandler struct {
	statsService ports.StatsService
	auditService ports.AuditService
}

func NewAdminHandler(statsService ports.StatsService, auditService ports.AuditService) *AdminHandler {
	return &AdminHandler{statsService: statsService, auditService: auditService}
}

type auditQuery struct {
	Limit int `query:"limit" validate:"min=0"`
}

// Stats returns the dashboard counters. Revenue is always zero.
//
// @Summary      Admin stats
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Stats
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /api/admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.statsService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Audit returns the most recent admin mutations.
//
// @Summary      Admin audit trail
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Max entries (default 50, max 200)"
// @Success      200    {array}   domain.AuditEntry
// @Failure      400    {object}  map[string]string
// @Router       /api/admin/audit [get]
func (h *AdminHandler) Audit(c echo.Context) error {
	var q auditQuery
	if err := bindAndValidate(c, &q, ""); err != nil {
		return err
	}

	entries, err := h.auditService.Recent(c.Request().Context(), q.Limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
