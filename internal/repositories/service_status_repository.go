package repositories

import (
	"github.com/anonto42/water-board/backend/internal/models"
	"gorm.io/gorm"
)

// ServiceStatusRepository stores published water-service states
type ServiceStatusRepository interface {
	Create(status *models.ServiceStatus) error
	List(neighborhoodID uint) ([]models.ServiceStatus, error)
	Current(neighborhoodID uint) (*models.ServiceStatus, error)
}

type postgresServiceStatusRepository struct {
	db *gorm.DB
}

func NewPostgresServiceStatusRepository(db *gorm.DB) ServiceStatusRepository {
	return &postgresServiceStatusRepository{db: db}
}

func (r *postgresServiceStatusRepository) Create(status *models.ServiceStatus) error {
	if err := r.db.Omit("Neighborhood").Create(status).Error; err != nil {
		return err
	}
	return r.db.Preload("Neighborhood").First(status, status.ID).Error
}

// List returns the status history, newest first. A zero neighborhoodID lists every neighborhood.
func (r *postgresServiceStatusRepository) List(neighborhoodID uint) ([]models.ServiceStatus, error) {
	var statuses []models.ServiceStatus
	q := r.db.Preload("Neighborhood").Order("created_at DESC").Order("id DESC")
	if neighborhoodID != 0 {
		q = q.Where("neighborhood_id = ?", neighborhoodID)
	}
	err := q.Find(&statuses).Error
	return statuses, err
}

func (r *postgresServiceStatusRepository) Current(neighborhoodID uint) (*models.ServiceStatus, error) {
	var status models.ServiceStatus
	err := r.db.Preload("Neighborhood").
		Where("neighborhood_id = ?", neighborhoodID).
		Order("created_at DESC").Order("id DESC").
		First(&status).Error
	if err != nil {
		return nil, err
	}
	return &status, nil
}
