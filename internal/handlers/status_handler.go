package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// StatusHandler publishes and serves water-service states
type StatusHandler struct {
	statusRepository       repositories.ServiceStatusRepository
	neighborhoodRepository repositories.NeighborhoodRepository
	notifier               Notifier
	logs                   repositories.ActivityLogRepository
}

func NewStatusHandler(statusRepo repositories.ServiceStatusRepository, neighborhoodRepo repositories.NeighborhoodRepository, notifier Notifier, logs repositories.ActivityLogRepository) *StatusHandler {
	return &StatusHandler{
		statusRepository:       statusRepo,
		neighborhoodRepository: neighborhoodRepo,
		notifier:               notifier,
		logs:                   logs,
	}
}

func (h *StatusHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/status", h.ListStatuses)
	g.GET("/status/current", h.CurrentStatus)
}

func (h *StatusHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/status", h.CreateStatus)
}

// ListStatuses returns the status history, optionally for one neighborhood
func (h *StatusHandler) ListStatuses(c echo.Context) error {
	neighborhoodID, err := parseNeighborhoodQuery(c)
	if err != nil {
		return err
	}
	statuses, err := h.statusRepository.List(neighborhoodID)
	if err != nil {
		return storageError(err, "Status not found")
	}
	return c.JSON(http.StatusOK, statuses)
}

// CurrentStatus returns the latest state of one neighborhood
func (h *StatusHandler) CurrentStatus(c echo.Context) error {
	neighborhoodID, err := parseNeighborhoodQuery(c)
	if err != nil {
		return err
	}
	if neighborhoodID == 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "neighborhood_id is required")
	}
	status, err := h.statusRepository.Current(neighborhoodID)
	if err != nil {
		return storageError(err, "No status published for this neighborhood")
	}
	return c.JSON(http.StatusOK, status)
}

// CreateStatus records a new state and notifies the neighborhood
func (h *StatusHandler) CreateStatus(c echo.Context) error {
	var req models.ServiceStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	neighborhood, err := h.neighborhoodRepository.GetByID(req.NeighborhoodID)
	if err != nil {
		return storageError(err, "Neighborhood not found")
	}

	status := &models.ServiceStatus{NeighborhoodID: neighborhood.ID, Status: req.Status}
	if err := h.statusRepository.Create(status); err != nil {
		return storageError(err, "Neighborhood not found")
	}

	ctx := c.Request().Context()
	if _, err := h.notifier.NotifyNeighborhood(ctx, neighborhood.ID, statusMessage(req.Status, neighborhood.Name), models.CategoryStatus); err != nil {
		log.Printf("Error notifying status change for neighborhood %d: %v", neighborhood.ID, err)
	}

	recordActivity(c, h.logs, fmt.Sprintf("Water status updated: %s - %s", neighborhood.Name, req.Status))

	return c.JSON(http.StatusCreated, status)
}
