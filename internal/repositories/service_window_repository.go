package repositories

import (
	"github.com/anonto42/water-board/backend/internal/models"
	"gorm.io/gorm"
)

// ServiceWindowRepository stores maintenance jobs and distribution schedules
type ServiceWindowRepository interface {
	Create(window *models.ServiceWindow) error
	List(kind string, neighborhoodID uint) ([]models.ServiceWindow, error)
	Delete(kind string, id uint) error
}

type postgresServiceWindowRepository struct {
	db *gorm.DB
}

func NewPostgresServiceWindowRepository(db *gorm.DB) ServiceWindowRepository {
	return &postgresServiceWindowRepository{db: db}
}

func (r *postgresServiceWindowRepository) Create(window *models.ServiceWindow) error {
	if err := r.db.Omit("Neighborhood").Create(window).Error; err != nil {
		return err
	}
	return r.db.Preload("Neighborhood").First(window, window.ID).Error
}

func (r *postgresServiceWindowRepository) List(kind string, neighborhoodID uint) ([]models.ServiceWindow, error) {
	var windows []models.ServiceWindow
	q := r.db.Preload("Neighborhood").Where("kind = ?", kind).Order("starts_at DESC")
	if neighborhoodID != 0 {
		q = q.Where("neighborhood_id = ?", neighborhoodID)
	}
	err := q.Find(&windows).Error
	return windows, err
}

func (r *postgresServiceWindowRepository) Delete(kind string, id uint) error {
	res := r.db.Where("kind = ?", kind).Delete(&models.ServiceWindow{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
