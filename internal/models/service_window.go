package models

import "time"

// Service window kinds
const (
	WindowMaintenance = "maintenance"
	WindowSchedule    = "schedule"
)

// ServiceWindow is a planned period for one neighborhood: a maintenance job
// or a water distribution schedule.
type ServiceWindow struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	Kind           string       `json:"kind" gorm:"size:20;not null;index"`
	NeighborhoodID uint         `json:"neighborhood_id" gorm:"not null;index"`
	StartsAt       time.Time    `json:"starts_at" gorm:"not null;index"`
	EndsAt         time.Time    `json:"ends_at" gorm:"not null"`
	Description    string       `json:"description" gorm:"size:500"`
	CreatedAt      time.Time    `json:"created_at"`
	Neighborhood   Neighborhood `json:"neighborhood" gorm:"constraint:OnDelete:CASCADE"`
}

type ServiceWindowRequest struct {
	NeighborhoodID uint      `json:"neighborhood_id" validate:"required"`
	StartsAt       time.Time `json:"starts_at" validate:"required"`
	EndsAt         time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	Description    string    `json:"description" validate:"omitempty,max=500"`
}
