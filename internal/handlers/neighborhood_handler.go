package handlers

import (
	"fmt"
	"net/http"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/gosimple/slug"
	"github.com/labstack/echo/v4"
)

// NeighborhoodHandler manages the neighborhood catalog
type NeighborhoodHandler struct {
	neighborhoodRepository repositories.NeighborhoodRepository
	logs                   repositories.ActivityLogRepository
}

func NewNeighborhoodHandler(neighborhoodRepo repositories.NeighborhoodRepository, logs repositories.ActivityLogRepository) *NeighborhoodHandler {
	return &NeighborhoodHandler{neighborhoodRepository: neighborhoodRepo, logs: logs}
}

func (h *NeighborhoodHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/neighborhoods", h.ListNeighborhoods)
}

func (h *NeighborhoodHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/neighborhoods", h.CreateNeighborhood)
	g.PUT("/neighborhoods/:id", h.UpdateNeighborhood)
	g.DELETE("/neighborhoods/:id", h.DeleteNeighborhood)
}

func (h *NeighborhoodHandler) ListNeighborhoods(c echo.Context) error {
	neighborhoods, err := h.neighborhoodRepository.List()
	if err != nil {
		return storageError(err, "Neighborhood not found")
	}
	return c.JSON(http.StatusOK, neighborhoods)
}

func (h *NeighborhoodHandler) CreateNeighborhood(c echo.Context) error {
	var req models.NeighborhoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	neighborhood := &models.Neighborhood{Name: req.Name, Slug: slug.Make(req.Name)}
	if err := h.neighborhoodRepository.Create(neighborhood); err != nil {
		return echo.NewHTTPError(http.StatusConflict, "Neighborhood already exists")
	}

	recordActivity(c, h.logs, "Neighborhood created: "+neighborhood.Name)
	return c.JSON(http.StatusCreated, neighborhood)
}

func (h *NeighborhoodHandler) UpdateNeighborhood(c echo.Context) error {
	id, err := parseIDParam(c, "id", "neighborhood")
	if err != nil {
		return err
	}
	var req models.NeighborhoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	neighborhood, err := h.neighborhoodRepository.GetByID(id)
	if err != nil {
		return storageError(err, "Neighborhood not found")
	}
	previous := neighborhood.Name
	neighborhood.Name = req.Name
	neighborhood.Slug = slug.Make(req.Name)
	if err := h.neighborhoodRepository.Update(neighborhood); err != nil {
		return echo.NewHTTPError(http.StatusConflict, "Neighborhood already exists")
	}

	recordActivity(c, h.logs, fmt.Sprintf("Neighborhood renamed: %s -> %s", previous, neighborhood.Name))
	return c.JSON(http.StatusOK, neighborhood)
}

func (h *NeighborhoodHandler) DeleteNeighborhood(c echo.Context) error {
	id, err := parseIDParam(c, "id", "neighborhood")
	if err != nil {
		return err
	}
	if err := h.neighborhoodRepository.Delete(id); err != nil {
		return storageError(err, "Neighborhood not found")
	}
	recordActivity(c, h.logs, fmt.Sprintf("Neighborhood %d deleted", id))
	return c.NoContent(http.StatusNoContent)
}
