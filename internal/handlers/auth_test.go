package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/anonto42/water-board/backend/internal/models"
	"github.com/anonto42/water-board/backend/internal/testutil"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tokenResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func TestSignupAndSignIn(t *testing.T) {
	s := newTestServer(t)
	centro := testutil.SeedNeighborhood(t, s.db, "Centro")

	body := fmt.Sprintf(`{"name":"Ana","email":"ana@example.com","password":"secret123","neighborhood_id":%d}`, centro.ID)
	rec := s.do(t, http.MethodPost, "/api/v1/auth/signup", body, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var signup tokenResponse
	decode(t, rec, &signup)
	assert.Equal(t, models.RoleClient, signup.User.Role)
	require.NotNil(t, signup.User.NeighborhoodID)
	assert.Equal(t, centro.ID, *signup.User.NeighborhoodID)
	assert.NotContains(t, rec.Body.String(), "secret123")

	claims := &models.JwtCustomClaims{}
	_, err := jwt.ParseWithClaims(signup.Token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.Equal(t, signup.User.ID, claims.UserID)
	assert.Equal(t, centro.ID, claims.NeighborhoodID)

	rec = s.do(t, http.MethodPost, "/api/v1/auth/signup", body, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/auth/signin", `{"email":"ana@example.com","password":"secret123"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = s.do(t, http.MethodPost, "/api/v1/auth/signin", `{"email":"ana@example.com","password":"wrong-pass"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSignup_UnknownNeighborhood(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/signup", `{"name":"Ana","email":"ana@example.com","password":"secret123","neighborhood_id":77}`, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFirebaseLoginDisabledWithoutVerifier(t *testing.T) {
	s := newTestServer(t)

	rec := s.do(t, http.MethodPost, "/api/v1/auth/firebase-login", `{"idToken":"x"}`, nil)
	assert.NotEqual(t, http.StatusOK, rec.Code)
}
