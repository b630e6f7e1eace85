package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/repositories"
	"github.com/anonto42/water-board/backend/pkg/firebase"
	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const tokenTTL = 72 * time.Hour

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	userRepository         repositories.UserRepository
	neighborhoodRepository repositories.NeighborhoodRepository
	verifier               firebase.TokenVerifier
	jwtSecret              string
}

// NewAuthHandler creates a new AuthHandler. verifier may be nil, in which
// case Firebase login is not offered.
func NewAuthHandler(userRepo repositories.UserRepository, neighborhoodRepo repositories.NeighborhoodRepository, verifier firebase.TokenVerifier, jwtSecret string) *AuthHandler {
	return &AuthHandler{
		userRepository:         userRepo,
		neighborhoodRepository: neighborhoodRepo,
		verifier:               verifier,
		jwtSecret:              jwtSecret,
	}
}

// RegisterAuthRoutes registers authentication-related routes
func (h *AuthHandler) RegisterAuthRoutes(g *echo.Group) {
	g.POST("/signup", h.Signup)
	g.POST("/signin", h.SignIn)
	if h.verifier != nil {
		g.POST("/firebase-login", h.FirebaseLogin)
	}
}

// Signup registers a client account in its neighborhood
func (h *AuthHandler) Signup(c echo.Context) error {
	var req models.CreateLocalUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.userRepository.GetUserByEmail(req.Email); err == nil {
		return echo.NewHTTPError(http.StatusConflict, "User with this email already registered")
	}

	neighborhood, err := h.neighborhoodRepository.GetByID(req.NeighborhoodID)
	if err != nil {
		return storageError(err, "Neighborhood not found")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to hash password")
	}

	user := &models.User{
		Name:           req.Name,
		Email:          req.Email,
		Password:       string(hashedPassword),
		Role:           models.RoleClient,
		NeighborhoodID: &neighborhood.ID,
	}
	if err := h.userRepository.CreateUser(user); err != nil {
		return storageError(err, "User not found")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token after signup")
	}

	return c.JSON(http.StatusCreated, echo.Map{"token": token, "user": user})
}

// SignIn authenticates with email and password
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByEmail(req.Email)
	if err != nil || user.Password == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate token")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

// FirebaseLoginRequest defines the request body for Firebase login
type FirebaseLoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// FirebaseLogin exchanges a Firebase ID token for a local JWT, creating or
// linking the account on first use.
func (h *AuthHandler) FirebaseLogin(c echo.Context) error {
	var req FirebaseLoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	identity, err := firebase.VerifyIdentity(c.Request().Context(), h.verifier, req.IDToken)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Firebase ID token")
	}

	user, err := h.userRepository.GetUserByFirebaseUID(identity.UID)
	switch {
	case err == nil:
		user.Email = identity.Email
		if identity.Name != "" {
			user.Name = identity.Name
		}
		if err := h.userRepository.UpdateUser(user); err != nil {
			return storageError(err, "User not found")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = h.linkOrCreateFirebaseUser(identity)
		if err != nil {
			return storageError(err, "User not found")
		}
	default:
		return storageError(err, "User not found")
	}

	token, err := h.generateJWT(user)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate local JWT")
	}

	return c.JSON(http.StatusOK, echo.Map{"token": token, "user": user})
}

func (h *AuthHandler) linkOrCreateFirebaseUser(identity *firebase.Identity) (*models.User, error) {
	uid := identity.UID
	user, err := h.userRepository.GetUserByEmail(identity.Email)
	if err == nil {
		user.FirebaseUID = &uid
		return user, h.userRepository.UpdateUser(user)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// Neighborhood is chosen afterwards through the profile
	user = &models.User{
		Name:        identity.Name,
		Email:       identity.Email,
		Role:        models.RoleClient,
		FirebaseUID: &uid,
	}
	if user.Name == "" {
		user.Name = identity.Email
	}
	return user, h.userRepository.CreateUser(user)
}

// generateJWT generates a JWT token for a given user
func (h *AuthHandler) generateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &models.JwtCustomClaims{
		UserID: user.ID,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	if user.NeighborhoodID != nil {
		claims.NeighborhoodID = *user.NeighborhoodID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.jwtSecret))
}
