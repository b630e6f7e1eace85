package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplaintLifecycle_NotifiesAuthor(t *testing.T) {
	s := newTestServer(t)
	admin := s.admin(t)
	centro := testutil.SeedNeighborhood(t, s.db, "Centro")
	author := testutil.SeedUser(t, s.db, "a@example.com", centro.ID)
	neighbor := testutil.SeedUser(t, s.db, "b@example.com", centro.ID)

	rec := s.do(t, http.MethodPost, "/api/v1/complaints", `{"subject":"No water","message":"Since Monday"}`, author)
	require.Equal(t, http.StatusCreated, rec.Code)
	var complaint models.Complaint
	decode(t, rec, &complaint)
	assert.Equal(t, models.ComplaintPending, complaint.Status)
	assert.Equal(t, centro.ID, complaint.NeighborhoodID)

	rec = s.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/complaints/%d", complaint.ID), `{"status":"resolved"}`, admin)
	require.Equal(t, http.StatusOK, rec.Code)

	rows := s.inboxOf(t, author.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, "Your complaint is now Resolved", rows[0].Message)
	assert.Equal(t, models.CategoryComplaintStatus, rows[0].Category)
	assert.Empty(t, s.inboxOf(t, neighbor.ID))

	rec = s.do(t, http.MethodGet, "/api/v1/complaints/mine", "", author)
	require.Equal(t, http.StatusOK, rec.Code)
	var mine []models.Complaint
	decode(t, rec, &mine)
	require.Len(t, mine, 1)
	assert.Equal(t, models.ComplaintResolved, mine[0].Status)
}

func TestComplaint_RequiresNeighborhood(t *testing.T) {
	s := newTestServer(t)
	user := testutil.SeedUser(t, s.db, "a@example.com", 0)

	rec := s.do(t, http.MethodPost, "/api/v1/complaints", `{"subject":"No water","message":"x"}`, user)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateComplaintStatus_Unknown(t *testing.T) {
	s := newTestServer(t)
	admin := s.admin(t)

	rec := s.do(t, http.MethodPatch, "/api/v1/admin/complaints/42", `{"status":"resolved"}`, admin)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = s.do(t, http.MethodPatch, "/api/v1/admin/complaints/42", `{"status":"closed"}`, admin)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
