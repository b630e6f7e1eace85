package models

import "time"

// Announcement is a notice published for one neighborhood (aviso)
type Announcement struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	NeighborhoodID uint         `json:"neighborhood_id" gorm:"not null;index"`
	Message        string       `json:"message" gorm:"size:500;not null"`
	CreatedAt      time.Time    `json:"created_at" gorm:"index"`
	Neighborhood   Neighborhood `json:"neighborhood" gorm:"constraint:OnDelete:CASCADE"`
}

type AnnouncementRequest struct {
	NeighborhoodID uint   `json:"neighborhood_id" validate:"required"`
	Message        string `json:"message" validate:"required,max=500"`
}
