package repositories

import (
	"github.com/anonto42/water-board/backend/internal/models"
	"gorm.io/gorm"
)

// AnnouncementRepository defines the interface for announcement operations
type AnnouncementRepository interface {
	Create(announcement *models.Announcement) error
	List(neighborhoodID uint) ([]models.Announcement, error)
	Delete(id uint) error
}

type postgresAnnouncementRepository struct {
	db *gorm.DB
}

func NewPostgresAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &postgresAnnouncementRepository{db: db}
}

func (r *postgresAnnouncementRepository) Create(announcement *models.Announcement) error {
	if err := r.db.Omit("Neighborhood").Create(announcement).Error; err != nil {
		return err
	}
	return r.db.Preload("Neighborhood").First(announcement, announcement.ID).Error
}

func (r *postgresAnnouncementRepository) List(neighborhoodID uint) ([]models.Announcement, error) {
	var announcements []models.Announcement
	q := r.db.Preload("Neighborhood").Order("created_at DESC").Order("id DESC")
	if neighborhoodID != 0 {
		q = q.Where("neighborhood_id = ?", neighborhoodID)
	}
	err := q.Find(&announcements).Error
	return announcements, err
}

func (r *postgresAnnouncementRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Announcement{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
