package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// ComplaintHandler handles complaints filed by clients and their review by admins
type ComplaintHandler struct {
	complaintRepository repositories.ComplaintRepository
	userRepository      repositories.UserRepository
	notifier            Notifier
	logs                repositories.ActivityLogRepository
}

func NewComplaintHandler(complaintRepo repositories.ComplaintRepository, userRepo repositories.UserRepository, notifier Notifier, logs repositories.ActivityLogRepository) *ComplaintHandler {
	return &ComplaintHandler{
		complaintRepository: complaintRepo,
		userRepository:      userRepo,
		notifier:            notifier,
		logs:                logs,
	}
}

// RegisterClientRoutes registers routes for the complaint author
func (h *ComplaintHandler) RegisterClientRoutes(g *echo.Group) {
	g.POST("/complaints", h.CreateComplaint)
	g.GET("/complaints/mine", h.ListMyComplaints)
}

func (h *ComplaintHandler) RegisterAdminRoutes(g *echo.Group) {
	g.GET("/complaints", h.ListComplaints)
	g.GET("/complaints/:id", h.GetComplaint)
	g.PATCH("/complaints/:id", h.UpdateComplaintStatus)
	g.DELETE("/complaints/:id", h.DeleteComplaint)
}

func (h *ComplaintHandler) CreateComplaint(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}

	var req models.CreateComplaintRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return storageError(err, "User not found")
	}
	if user.NeighborhoodID == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Choose a neighborhood before filing a complaint")
	}

	complaint := &models.Complaint{
		UserID:         user.ID,
		NeighborhoodID: *user.NeighborhoodID,
		Subject:        req.Subject,
		Message:        req.Message,
		Status:         models.ComplaintPending,
	}
	if err := h.complaintRepository.Create(complaint); err != nil {
		return storageError(err, "Complaint not found")
	}
	return c.JSON(http.StatusCreated, complaint)
}

func (h *ComplaintHandler) ListMyComplaints(c echo.Context) error {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	complaints, err := h.complaintRepository.ListByUser(userID)
	if err != nil {
		return storageError(err, "Complaint not found")
	}
	return c.JSON(http.StatusOK, complaints)
}

// ListComplaints lists every complaint, optionally filtered by ?status=
func (h *ComplaintHandler) ListComplaints(c echo.Context) error {
	complaints, err := h.complaintRepository.List(c.QueryParam("status"))
	if err != nil {
		return storageError(err, "Complaint not found")
	}
	return c.JSON(http.StatusOK, complaints)
}

func (h *ComplaintHandler) GetComplaint(c echo.Context) error {
	id, err := parseIDParam(c, "id", "complaint")
	if err != nil {
		return err
	}
	complaint, err := h.complaintRepository.GetByID(id)
	if err != nil {
		return storageError(err, "Complaint not found")
	}
	return c.JSON(http.StatusOK, complaint)
}

// UpdateComplaintStatus moves a complaint to a new state and tells its author
func (h *ComplaintHandler) UpdateComplaintStatus(c echo.Context) error {
	id, err := parseIDParam(c, "id", "complaint")
	if err != nil {
		return err
	}
	var req models.UpdateComplaintStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	complaint, err := h.complaintRepository.UpdateStatus(id, req.Status)
	if err != nil {
		return storageError(err, "Complaint not found")
	}

	ctx := c.Request().Context()
	if _, err := h.notifier.NotifyUser(ctx, complaint.UserID, complaintMessage(complaint), models.CategoryComplaintStatus); err != nil {
		log.Printf("Error notifying complaint %d author: %v", complaint.ID, err)
	}

	recordActivity(c, h.logs, fmt.Sprintf("Complaint %d marked %s", complaint.ID, complaint.Status))
	return c.JSON(http.StatusOK, complaint)
}

func (h *ComplaintHandler) DeleteComplaint(c echo.Context) error {
	id, err := parseIDParam(c, "id", "complaint")
	if err != nil {
		return err
	}
	if err := h.complaintRepository.Delete(id); err != nil {
		return storageError(err, "Complaint not found")
	}
	recordActivity(c, h.logs, fmt.Sprintf("Complaint %d deleted", id))
	return c.NoContent(http.StatusNoContent)
}
