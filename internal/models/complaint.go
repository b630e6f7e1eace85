package models

import "time"

// Complaint states
const (
	ComplaintPending    = "pending"
	ComplaintInProgress = "in_progress"
	ComplaintResolved   = "resolved"
)

type Complaint struct {
	ID             uint         `json:"id" gorm:"primaryKey"`
	UserID         uint         `json:"user_id" gorm:"not null;index"`
	NeighborhoodID uint         `json:"neighborhood_id" gorm:"not null;index"`
	Subject        string       `json:"subject" gorm:"size:150;not null"`
	Message        string       `json:"message" gorm:"type:text;not null"`
	Status         string       `json:"status" gorm:"size:20;not null;default:pending;index"`
	CreatedAt      time.Time    `json:"created_at" gorm:"index"`
	UpdatedAt      time.Time    `json:"updated_at"`
	User           User         `json:"user" gorm:"constraint:OnDelete:CASCADE"`
	Neighborhood   Neighborhood `json:"neighborhood" gorm:"constraint:OnDelete:CASCADE"`
}

// StatusLabel is the human form used in notification messages
func (c *Complaint) StatusLabel() string {
	switch c.Status {
	case ComplaintInProgress:
		return "In progress"
	case ComplaintResolved:
		return "Resolved"
	default:
		return "Pending"
	}
}

type CreateComplaintRequest struct {
	Subject string `json:"subject" validate:"required,max=150"`
	Message string `json:"message" validate:"required,max=2000"`
}

type UpdateComplaintStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress resolved"`
}
