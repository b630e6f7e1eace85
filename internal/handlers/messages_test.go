package handlers

import (
	"testing"
	"time"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusMessage(t *testing.T) {
	assert.Equal(t, "Water service restored in Centro", statusMessage(models.StatusActive, "Centro"))
	assert.Equal(t, "Water service interrupted in Centro", statusMessage(models.StatusInactive, "Centro"))
	assert.Equal(t, "Intermittent water service in Centro", statusMessage(models.StatusIntermittent, "Centro"))
}

func TestWindowMessage(t *testing.T) {
	start := time.Date(2026, 5, 1, 6, 0, 0, 0, time.UTC)
	end := time.Date(2026, 5, 3, 6, 0, 0, 0, time.UTC)

	assert.Equal(t, "New water schedule in Norte from 2026-05-01 to 2026-05-03",
		windowMessage(models.WindowSchedule, "Norte", "", start, end))
	assert.Equal(t, "Maintenance scheduled in Norte: Valve swap (from 2026-05-01 to 2026-05-03)",
		windowMessage(models.WindowMaintenance, "Norte", "Valve swap", start, end))
}

func TestComplaintMessage(t *testing.T) {
	c := &models.Complaint{Status: models.ComplaintInProgress}
	assert.Equal(t, "Your complaint is now In progress", complaintMessage(c))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "agua...", truncate("aguacero", 4))
}
