package validators

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type windowRequest struct {
	Name     string    `validate:"required,max=5"`
	Status   string    `validate:"omitempty,oneof=active inactive"`
	StartsAt time.Time `validate:"required"`
	EndsAt   time.Time `validate:"required,gtfield=StartsAt"`
}

func TestValidate(t *testing.T) {
	v := NewValidator()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, v.Validate(&windowRequest{Name: "ok", StartsAt: start, EndsAt: start.Add(time.Hour)}))

	err := v.Validate(&windowRequest{Name: "too long", Status: "broken", StartsAt: start, EndsAt: start})
	require.Error(t, err)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
	msg, ok := he.Message.(string)
	require.True(t, ok)
	assert.Contains(t, msg, "Name must be at most 5 characters")
	assert.Contains(t, msg, "Status must be one of: active inactive")
	assert.Contains(t, msg, "EndsAt must be after StartsAt")
}

func TestValidate_Required(t *testing.T) {
	err := NewValidator().Validate(&windowRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name is required")
}
