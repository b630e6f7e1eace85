package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserHandler handles HTTP requests related to the signed-in user
type UserHandler struct {
	userRepository         repositories.UserRepository
	neighborhoodRepository repositories.NeighborhoodRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository, neighborhoodRepo repositories.NeighborhoodRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo, neighborhoodRepository: neighborhoodRepo}
}

// RegisterProfileRoutes registers user profile-related routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/profile", h.GetProfile)
	g.PUT("/profile", h.UpdateProfile)
	g.PUT("/profile/password", h.ChangePassword)
	g.PUT("/profile/neighborhood", h.ChangeNeighborhood)
}

func (h *UserHandler) currentUser(c echo.Context) (*models.User, error) {
	userID := getUserIDFromContext(c)
	if userID == 0 {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "User not authenticated")
	}
	user, err := h.userRepository.GetUserByID(userID)
	if err != nil {
		return nil, storageError(err, "User profile not found")
	}
	return user, nil
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's name or email
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req models.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.currentUser(c)
	if err != nil {
		return err
	}

	if req.Email != "" && req.Email != user.Email {
		existing, err := h.userRepository.GetUserByEmail(req.Email)
		if err == nil && existing.ID != user.ID {
			return echo.NewHTTPError(http.StatusConflict, "Email already in use")
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return storageError(err, "User profile not found")
		}
		user.Email = req.Email
	}
	if req.Name != "" {
		user.Name = req.Name
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return storageError(err, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}

// ChangePassword replaces the password of a local account
func (h *UserHandler) ChangePassword(c echo.Context) error {
	var req models.ChangePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	if user.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Account has no local password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}
	user.Password = string(hashed)
	if err := h.userRepository.UpdateUser(user); err != nil {
		return storageError(err, "User profile not found")
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "Password updated"})
}

// ChangeNeighborhood moves the user to another neighborhood. Notifications
// already delivered stay in the inbox.
func (h *UserHandler) ChangeNeighborhood(c echo.Context) error {
	var req models.ChangeNeighborhoodRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	neighborhood, err := h.neighborhoodRepository.GetByID(req.NeighborhoodID)
	if err != nil {
		return storageError(err, "Neighborhood not found")
	}

	user, err := h.currentUser(c)
	if err != nil {
		return err
	}
	user.NeighborhoodID = &neighborhood.ID
	user.Neighborhood = neighborhood
	if err := h.userRepository.UpdateUser(user); err != nil {
		return storageError(err, "User profile not found")
	}
	return c.JSON(http.StatusOK, user)
}
