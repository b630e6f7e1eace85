package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// User roles
const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"size:100;not null"`
	Email          string    `json:"email" gorm:"size:255;uniqueIndex;not null"`
	Password       string    `json:"-"` // bcrypt hash
	Role           string    `json:"role" gorm:"size:20;not null;default:client;index"`
	NeighborhoodID *uint     `json:"neighborhood_id" gorm:"index"`
	FirebaseUID    *string   `json:"firebase_uid,omitempty" gorm:"uniqueIndex"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	Neighborhood *Neighborhood `json:"neighborhood,omitempty" gorm:"constraint:OnDelete:SET NULL"`
}

// IsAdmin reports whether the user may use the admin endpoints
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type CreateLocalUserRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=100"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	NeighborhoodID uint   `json:"neighborhood_id" validate:"required"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateUserRequest struct {
	Name  string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,nefield=CurrentPassword"`
}

type ChangeNeighborhoodRequest struct {
	NeighborhoodID uint `json:"neighborhood_id" validate:"required"`
}

// JwtCustomClaims are custom claims extending standard jwt.RegisteredClaims
type JwtCustomClaims struct {
	UserID         uint   `json:"user_id"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	NeighborhoodID uint   `json:"neighborhood_id,omitempty"`
	jwt.RegisteredClaims
}
