package handlers

import (
	"fmt"
	"time"

	"github.com/anonto42/water-board/backend/internal/models"
)

const dateLayout = "2006-01-02"

func statusMessage(status, neighborhood string) string {
	switch status {
	case models.StatusActive:
		return fmt.Sprintf("Water service restored in %s", neighborhood)
	case models.StatusInactive:
		return fmt.Sprintf("Water service interrupted in %s", neighborhood)
	case models.StatusIntermittent:
		return fmt.Sprintf("Intermittent water service in %s", neighborhood)
	default:
		return fmt.Sprintf("Water service status updated in %s: %s", neighborhood, status)
	}
}

func announcementMessage(neighborhood, message string) string {
	return fmt.Sprintf("Important notice for %s: %s", neighborhood, message)
}

func windowMessage(kind, neighborhood, description string, start, end time.Time) string {
	prefix := "Maintenance scheduled in"
	if kind == models.WindowSchedule {
		prefix = "New water schedule in"
	}
	period := fmt.Sprintf("from %s to %s", start.Format(dateLayout), end.Format(dateLayout))
	if description != "" {
		return fmt.Sprintf("%s %s: %s (%s)", prefix, neighborhood, description, period)
	}
	return fmt.Sprintf("%s %s %s", prefix, neighborhood, period)
}

func newsMessage(title string) string {
	return "News: " + title
}

func complaintMessage(c *models.Complaint) string {
	return "Your complaint is now " + c.StatusLabel()
}
