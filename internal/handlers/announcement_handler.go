package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// AnnouncementHandler handles neighborhood announcements
type AnnouncementHandler struct {
	announcementRepository repositories.AnnouncementRepository
	neighborhoodRepository repositories.NeighborhoodRepository
	notifier               Notifier
	logs                   repositories.ActivityLogRepository
}

func NewAnnouncementHandler(announcementRepo repositories.AnnouncementRepository, neighborhoodRepo repositories.NeighborhoodRepository, notifier Notifier, logs repositories.ActivityLogRepository) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementRepository: announcementRepo,
		neighborhoodRepository: neighborhoodRepo,
		notifier:               notifier,
		logs:                   logs,
	}
}

func (h *AnnouncementHandler) RegisterPublicRoutes(g *echo.Group) {
	g.GET("/announcements", h.ListAnnouncements)
}

func (h *AnnouncementHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/announcements", h.CreateAnnouncement)
	g.DELETE("/announcements/:id", h.DeleteAnnouncement)
}

func (h *AnnouncementHandler) ListAnnouncements(c echo.Context) error {
	neighborhoodID, err := parseNeighborhoodQuery(c)
	if err != nil {
		return err
	}
	announcements, err := h.announcementRepository.List(neighborhoodID)
	if err != nil {
		return storageError(err, "Announcement not found")
	}
	return c.JSON(http.StatusOK, announcements)
}

func (h *AnnouncementHandler) CreateAnnouncement(c echo.Context) error {
	var req models.AnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	neighborhood, err := h.neighborhoodRepository.GetByID(req.NeighborhoodID)
	if err != nil {
		return storageError(err, "Neighborhood not found")
	}

	announcement := &models.Announcement{NeighborhoodID: neighborhood.ID, Message: req.Message}
	if err := h.announcementRepository.Create(announcement); err != nil {
		return storageError(err, "Neighborhood not found")
	}

	ctx := c.Request().Context()
	msg := announcementMessage(neighborhood.Name, req.Message)
	if _, err := h.notifier.NotifyNeighborhood(ctx, neighborhood.ID, msg, models.CategoryAnnouncement); err != nil {
		log.Printf("Error notifying announcement for neighborhood %d: %v", neighborhood.ID, err)
	}

	recordActivity(c, h.logs, fmt.Sprintf("Announcement created for %s: %s", neighborhood.Name, truncate(req.Message, 50)))

	return c.JSON(http.StatusCreated, announcement)
}

func (h *AnnouncementHandler) DeleteAnnouncement(c echo.Context) error {
	id, err := parseIDParam(c, "id", "announcement")
	if err != nil {
		return err
	}
	if err := h.announcementRepository.Delete(id); err != nil {
		return storageError(err, "Announcement not found")
	}
	recordActivity(c, h.logs, fmt.Sprintf("Announcement %d deleted", id))
	return c.NoContent(http.StatusNoContent)
}
