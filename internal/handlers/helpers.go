package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/anonto42/water-board/backend/internal/middleware"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// Notifier is the fan-out surface the admin handlers publish through
type Notifier interface {
	NotifyUser(ctx context.Context, userID uint, message, category string) (int, error)
	NotifyNeighborhood(ctx context.Context, neighborhoodID uint, message, category string) (int, error)
	NotifyGlobal(ctx context.Context, message, category string) (int, error)
}

func getUserIDFromContext(c echo.Context) uint {
	return middleware.CurrentUserID(c)
}

func parseIDParam(c echo.Context, name, label string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+label+" ID")
	}
	return uint(id), nil
}

// parseNeighborhoodQuery reads the optional neighborhood_id filter
func parseNeighborhoodQuery(c echo.Context) (uint, error) {
	raw := c.QueryParam("neighborhood_id")
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid neighborhood ID")
	}
	return uint(id), nil
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	return c.Validate(req)
}

// storageError maps a repository error to an HTTP error, hiding details of
// unexpected failures from the client.
func storageError(err error, notFound string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, mongo.ErrNoDocuments) ||
		errors.Is(err, repositories.ErrNotificationNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, notFound)
	}
	log.Printf("Storage error: %v", err)
	return echo.NewHTTPError(http.StatusInternalServerError, "Internal server error")
}

// recordActivity writes an audit entry for the acting admin. A failed write
// is logged and does not fail the request.
func recordActivity(c echo.Context, logs repositories.ActivityLogRepository, action string) {
	if logs == nil {
		return
	}
	if err := logs.Record(c.Request().Context(), getUserIDFromContext(c), action); err != nil {
		log.Printf("Error recording activity %q: %v", action, err)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
