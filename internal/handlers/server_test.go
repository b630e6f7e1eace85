package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/water-board/backend/internal/middleware"
	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/notify"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/anonto42/water-board/backend/internal/testutil"
	"github.com/anonto42/water-board/backend/validators"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

type testServer struct {
	e             *echo.Echo
	db            *gorm.DB
	users         *repositories.PostgresUserRepository
	neighborhoods repositories.NeighborhoodRepository
	notifications repositories.NotificationRepository
}

// newTestServer wires the relational handlers the way the router does, on
// top of an in-memory database. Activity logging is disabled.
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	db := testutil.NewTestDB(t)

	s := &testServer{
		e:             echo.New(),
		db:            db,
		users:         repositories.NewPostgresUserRepository(db),
		neighborhoods: repositories.NewPostgresNeighborhoodRepository(db),
		notifications: repositories.NewPostgresNotificationRepository(db),
	}
	s.e.Validator = validators.NewValidator()

	engine := notify.NewEngine(s.users, s.notifications, notify.WithConcurrency(1))
	inbox := notify.NewInbox(s.notifications, 0, 0)

	notificationHandler := NewNotificationHandler(inbox, engine, nil)
	statusHandler := NewStatusHandler(repositories.NewPostgresServiceStatusRepository(db), s.neighborhoods, engine, nil)
	maintenanceHandler := NewServiceWindowHandler(models.WindowMaintenance, repositories.NewPostgresServiceWindowRepository(db), s.neighborhoods, engine, nil)
	complaintHandler := NewComplaintHandler(repositories.NewPostgresComplaintRepository(db), s.users, engine, nil)
	authHandler := NewAuthHandler(s.users, s.neighborhoods, nil, testSecret)

	authHandler.RegisterAuthRoutes(s.e.Group("/api/v1/auth"))

	public := s.e.Group("/api/v1/public")
	statusHandler.RegisterPublicRoutes(public)
	maintenanceHandler.RegisterPublicRoutes(public)

	api := s.e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(testSecret))
	notificationHandler.RegisterNotificationRoutes(api)
	complaintHandler.RegisterClientRoutes(api)

	admin := api.Group("/admin", middleware.RequireRole(models.RoleAdmin))
	notificationHandler.RegisterAdminRoutes(admin)
	statusHandler.RegisterAdminRoutes(admin)
	maintenanceHandler.RegisterAdminRoutes(admin)
	complaintHandler.RegisterAdminRoutes(admin)

	return s
}

func (s *testServer) token(t *testing.T, user *models.User) string {
	t.Helper()
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (s *testServer) admin(t *testing.T) *models.User {
	t.Helper()
	u := &models.User{Name: "Admin", Email: "admin@example.com", Role: models.RoleAdmin}
	require.NoError(t, s.users.CreateUser(u))
	return u
}

// do performs a request, authenticated as user when user is not nil
func (s *testServer) do(t *testing.T, method, path, body string, user *models.User) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if user != nil {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+s.token(t, user))
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

func (s *testServer) inboxOf(t *testing.T, userID uint) []models.Notification {
	t.Helper()
	var rows []models.Notification
	require.NoError(t, s.db.Where("recipient_id = ?", userID).Order("id").Find(&rows).Error)
	return rows
}
