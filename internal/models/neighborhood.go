package models

import "time"

// Neighborhood (barrio) groups the users of one water-service zone
type Neighborhood struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Slug      string    `json:"slug" gorm:"size:120;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type NeighborhoodRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
