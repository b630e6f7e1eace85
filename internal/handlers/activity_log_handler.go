package handlers

import (
	"net/http"
	"strconv"

	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ActivityLogHandler exposes the admin audit trail
type ActivityLogHandler struct {
	logs repositories.ActivityLogRepository
}

func NewActivityLogHandler(logs repositories.ActivityLogRepository) *ActivityLogHandler {
	return &ActivityLogHandler{logs: logs}
}

func (h *ActivityLogHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/logs", h.ListLogs)
}

func (h *ActivityLogHandler) ListLogs(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 50
	}

	logs, total, err := h.logs.List(c.Request().Context(), int64((page-1)*limit), int64(limit))
	if err != nil {
		return storageError(err, "Log not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": logs, "total": total, "page": page, "limit": limit})
}
