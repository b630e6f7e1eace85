package models

import "gorm.io/gorm"

// AutoMigrate creates or updates the PostgreSQL tables of every relational model
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Neighborhood{},
		&User{},
		&Notification{},
		&ServiceStatus{},
		&Announcement{},
		&ServiceWindow{},
		&Complaint{},
	)
}
