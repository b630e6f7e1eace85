package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/notify"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
)

// NotificationHandler handles notification-related HTTP requests
type NotificationHandler struct {
	inbox    *notify.Inbox
	notifier Notifier
	logs     repositories.ActivityLogRepository
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(inbox *notify.Inbox, notifier Notifier, logs repositories.ActivityLogRepository) *NotificationHandler {
	return &NotificationHandler{
		inbox:    inbox,
		notifier: notifier,
		logs:     logs,
	}
}

// RegisterNotificationRoutes registers the recipient's notification routes
func (h *NotificationHandler) RegisterNotificationRoutes(g *echo.Group) {
	g.GET("/notifications", h.GetNotifications)
	g.GET("/notifications/grouped", h.GetGroupedNotifications)
	g.GET("/notifications/unread-count", h.GetUnreadCount)
	g.PUT("/notifications/read-all", h.MarkAllAsRead)
	g.PUT("/notifications/:id/read", h.MarkAsRead)
	g.DELETE("/notifications/:id", h.DeleteNotification)
}

// RegisterAdminRoutes registers the admin "send notification" route
func (h *NotificationHandler) RegisterAdminRoutes(g *echo.Group) {
	g.POST("/notifications", h.SendNotification)
}

func notificationError(err error) error {
	switch {
	case errors.Is(err, notify.ErrUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	case errors.Is(err, repositories.ErrNotificationNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Notification not found")
	default:
		log.Printf("Notification storage error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}

// GetNotifications returns paginated notifications
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.inbox.List(c.Request().Context(), getUserIDFromContext(c), page, limit)
	if err != nil {
		return notificationError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": result})
}

// GetGroupedNotifications returns notifications grouped by time period
func (h *NotificationHandler) GetGroupedNotifications(c echo.Context) error {
	ctx := c.Request().Context()
	userID := getUserIDFromContext(c)

	grouped, err := h.inbox.Grouped(ctx, userID)
	if err != nil {
		return notificationError(err)
	}
	unreadCount, err := h.inbox.UnreadCount(ctx, userID)
	if err != nil {
		return notificationError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"notifications": grouped,
			"unread_count":  unreadCount,
		},
	})
}

// GetUnreadCount returns the unread notification count
func (h *NotificationHandler) GetUnreadCount(c echo.Context) error {
	count, err := h.inbox.UnreadCount(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return notificationError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"count": count}})
}

// MarkAsRead marks a notification as read
func (h *NotificationHandler) MarkAsRead(c echo.Context) error {
	notifID, err := parseIDParam(c, "id", "notification")
	if err != nil {
		return err
	}

	n, err := h.inbox.MarkRead(c.Request().Context(), getUserIDFromContext(c), notifID)
	if err != nil {
		return notificationError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": n})
}

// MarkAllAsRead marks all notifications as read
func (h *NotificationHandler) MarkAllAsRead(c echo.Context) error {
	updated, err := h.inbox.MarkAllRead(c.Request().Context(), getUserIDFromContext(c))
	if err != nil {
		return notificationError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "data": echo.Map{"updated": updated}})
}

// DeleteNotification removes one of the caller's notifications
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	notifID, err := parseIDParam(c, "id", "notification")
	if err != nil {
		return err
	}

	if err := h.inbox.DeleteOne(c.Request().Context(), getUserIDFromContext(c), notifID); err != nil {
		return notificationError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Notification deleted"})
}

// SendNotification fans an admin-written message out to one user, one
// neighborhood or everyone.
func (h *NotificationHandler) SendNotification(c echo.Context) error {
	var req models.SendNotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	targets := 0
	for _, set := range []bool{req.UserID != 0, req.NeighborhoodID != 0, req.Global} {
		if set {
			targets++
		}
	}
	if targets != 1 {
		return echo.NewHTTPError(http.StatusBadRequest, "Specify exactly one of user_id, neighborhood_id or global")
	}

	ctx := c.Request().Context()
	var (
		created int
		err     error
	)
	switch {
	case req.Global:
		created, err = h.notifier.NotifyGlobal(ctx, req.Message, req.Category)
	case req.NeighborhoodID != 0:
		created, err = h.notifier.NotifyNeighborhood(ctx, req.NeighborhoodID, req.Message, req.Category)
	default:
		created, err = h.notifier.NotifyUser(ctx, req.UserID, req.Message, req.Category)
	}
	if err != nil {
		log.Printf("Error sending notifications: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to send notifications")
	}

	recordActivity(c, h.logs, fmt.Sprintf("Notifications sent: %d - %s", created, truncate(req.Message, 50)))

	return c.JSON(http.StatusCreated, echo.Map{"success": true, "created": created})
}
