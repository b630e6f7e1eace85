package models

import "time"

// Notification categories
const (
	CategoryGeneral         = "general"
	CategoryAnnouncement    = "announcement"
	CategoryStatus          = "status"
	CategorySchedule        = "schedule"
	CategoryMaintenance     = "maintenance"
	CategoryNews            = "news"
	CategoryComplaintStatus = "complaint-status"
)

// Notification is one inbox row owned by a single recipient (PostgreSQL).
// Only IsRead changes after creation.
type Notification struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	RecipientID uint      `json:"recipient_id" gorm:"not null;index:idx_notifications_recipient_created,priority:1;index:idx_notifications_recipient_read,priority:1"`
	Message     string    `json:"message" gorm:"type:text;not null"`
	Category    string    `json:"category" gorm:"size:30;not null;default:general"`
	IsRead      bool      `json:"is_read" gorm:"not null;default:false;index:idx_notifications_recipient_read,priority:2"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_notifications_recipient_created,priority:2"`
}

// NotificationPagination is the paging block returned with a notification list
type NotificationPagination struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	Total       int64 `json:"total"`
	UnreadCount int64 `json:"unread_count"`
	TotalPages  int   `json:"total_pages"`
}

// SendNotificationRequest is the body of the admin "send notification" endpoint.
// Exactly one of UserID, NeighborhoodID or Global selects the audience.
type SendNotificationRequest struct {
	Message        string `json:"message" validate:"required,max=1000"`
	Category       string `json:"category" validate:"omitempty,max=30"`
	UserID         uint   `json:"user_id"`
	NeighborhoodID uint   `json:"neighborhood_id"`
	Global         bool   `json:"global"`
}
