package repositories

import (
	"github.com/anonto42/water-board/backend/internal/models"
	"gorm.io/gorm"
)

// NeighborhoodRepository defines the interface for neighborhood operations
type NeighborhoodRepository interface {
	Create(neighborhood *models.Neighborhood) error
	GetByID(id uint) (*models.Neighborhood, error)
	List() ([]models.Neighborhood, error)
	Update(neighborhood *models.Neighborhood) error
	Delete(id uint) error
}

type postgresNeighborhoodRepository struct {
	db *gorm.DB
}

func NewPostgresNeighborhoodRepository(db *gorm.DB) NeighborhoodRepository {
	return &postgresNeighborhoodRepository{db: db}
}

func (r *postgresNeighborhoodRepository) Create(neighborhood *models.Neighborhood) error {
	return r.db.Create(neighborhood).Error
}

func (r *postgresNeighborhoodRepository) GetByID(id uint) (*models.Neighborhood, error) {
	var n models.Neighborhood
	if err := r.db.First(&n, id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *postgresNeighborhoodRepository) List() ([]models.Neighborhood, error) {
	var neighborhoods []models.Neighborhood
	err := r.db.Order("name ASC").Find(&neighborhoods).Error
	return neighborhoods, err
}

func (r *postgresNeighborhoodRepository) Update(neighborhood *models.Neighborhood) error {
	return r.db.Save(neighborhood).Error
}

func (r *postgresNeighborhoodRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Neighborhood{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
