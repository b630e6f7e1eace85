package models

import "time"

// Water service states
const (
	StatusActive       = "active"
	StatusInactive     = "inactive"
	StatusIntermittent = "intermittent"
)

// ServiceStatus is one published water-service state. The newest row of a
// neighborhood is its current state.
type ServiceStatus struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	NeighborhoodID uint         `json:"neighborhood_id" gorm:"not null;index"`
	Status         string       `json:"status" gorm:"size:20;not null"`
	CreatedAt      time.Time    `json:"created_at" gorm:"index"`
	Neighborhood   Neighborhood `json:"neighborhood" gorm:"constraint:OnDelete:CASCADE"`
}

type ServiceStatusRequest struct {
	NeighborhoodID uint   `json:"neighborhood_id" validate:"required"`
	Status         string `json:"status" validate:"required,oneof=active inactive intermittent"`
}
