package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ServiceWindowHandler serves one kind of service window (maintenance or
// schedule) under its own path.
type ServiceWindowHandler struct {
	kind                   string
	path                   string
	windowRepository       repositories.ServiceWindowRepository
	neighborhoodRepository repositories.NeighborhoodRepository
	notifier               Notifier
	logs                   repositories.ActivityLogRepository
}

func NewServiceWindowHandler(kind string, windowRepo repositories.ServiceWindowRepository, neighborhoodRepo repositories.NeighborhoodRepository, notifier Notifier, logs repositories.ActivityLogRepository) *ServiceWindowHandler {
	path := "/maintenance"
	if kind == models.WindowSchedule {
		path = "/schedules"
	}
	return &ServiceWindowHandler{
		kind:                   kind,
		path:                   path,
		windowRepository:       windowRepo,
		neighborhoodRepository: neighborhoodRepo,
		notifier:               notifier,
		logs:                   logs,
	}
}

func (h *ServiceWindowHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET(h.path, h.ListWindows)
}

func (h *ServiceWindowHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST(h.path, h.CreateWindow)
	g.DELETE(h.path+"/:id", h.DeleteWindow)
}

func (h *ServiceWindowHandler) category() string {
	if h.kind == models.WindowSchedule {
		return models.CategorySchedule
	}
	return models.CategoryMaintenance
}

func (h *ServiceWindowHandler) ListWindows(c echo.Context) error {
	neighborhoodID, err := parseNeighborhoodQuery(c)
	if err != nil {
		return err
	}
	windows, err := h.windowRepository.List(h.kind, neighborhoodID)
	if err != nil {
		return storageError(err, "Not found")
	}
	return c.JSON(http.StatusOK, windows)
}

func (h *ServiceWindowHandler) CreateWindow(c echo.Context) error {
	var req models.ServiceWindowRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	neighborhood, err := h.neighborhoodRepository.GetByID(req.NeighborhoodID)
	if err != nil {
		return storageError(err, "Neighborhood not found")
	}

	window := &models.ServiceWindow{
		Kind:           h.kind,
		NeighborhoodID: neighborhood.ID,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		Description:    req.Description,
	}
	if err := h.windowRepository.Create(window); err != nil {
		return storageError(err, "Neighborhood not found")
	}

	ctx := c.Request().Context()
	msg := windowMessage(h.kind, neighborhood.Name, req.Description, req.StartsAt, req.EndsAt)
	if _, err := h.notifier.NotifyNeighborhood(ctx, neighborhood.ID, msg, h.category()); err != nil {
		log.Printf("Error notifying %s for neighborhood %d: %v", h.kind, neighborhood.ID, err)
	}

	description := req.Description
	if description == "" {
		description = "no description"
	}
	recordActivity(c, h.logs, fmt.Sprintf("%s created for %s: %s (%s - %s)", h.kind, neighborhood.Name, truncate(description, 50),
		req.StartsAt.Format(dateLayout), req.EndsAt.Format(dateLayout)))

	return c.JSON(http.StatusCreated, window)
}

func (h *ServiceWindowHandler) DeleteWindow(c echo.Context) error {
	id, err := parseIDParam(c, "id", h.kind)
	if err != nil {
		return err
	}
	if err := h.windowRepository.Delete(h.kind, id); err != nil {
		return storageError(err, "Not found")
	}
	recordActivity(c, h.logs, fmt.Sprintf("%s %d deleted", h.kind, id))
	return c.NoContent(http.StatusNoContent)
}
