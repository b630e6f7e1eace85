package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, claims *models.JwtCustomClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func serve(e *echo.Echo, header string) int {
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec.Code
}

func TestJWTAuthAndRequireRole(t *testing.T) {
	e := echo.New()
	e.GET("/admin", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}, JWTAuthMiddleware("s3cret"), RequireRole(models.RoleAdmin))

	expires := jwt.NewNumericDate(time.Now().Add(time.Hour))
	admin := sign(t, "s3cret", &models.JwtCustomClaims{UserID: 1, Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expires}})
	client := sign(t, "s3cret", &models.JwtCustomClaims{UserID: 2, Role: models.RoleClient, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expires}})
	forged := sign(t, "other", &models.JwtCustomClaims{UserID: 1, Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expires}})
	anonymous := sign(t, "s3cret", &models.JwtCustomClaims{Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: expires}})
	expired := sign(t, "s3cret", &models.JwtCustomClaims{UserID: 1, Role: models.RoleAdmin, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour))}})

	assert.Equal(t, http.StatusOK, serve(e, "Bearer "+admin))
	assert.Equal(t, http.StatusForbidden, serve(e, "Bearer "+client))
	assert.Equal(t, http.StatusUnauthorized, serve(e, "Bearer "+forged))
	assert.Equal(t, http.StatusUnauthorized, serve(e, "Bearer "+anonymous))
	assert.Equal(t, http.StatusUnauthorized, serve(e, "Bearer "+expired))
	assert.Equal(t, http.StatusUnauthorized, serve(e, admin))
	assert.Equal(t, http.StatusUnauthorized, serve(e, ""))
}

func TestCurrentUserID_WithoutClaims(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Zero(t, CurrentUserID(c))

	SetClaims(c, &models.JwtCustomClaims{UserID: 9})
	assert.Equal(t, uint(9), CurrentUserID(c))
}
