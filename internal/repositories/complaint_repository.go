package repositories

import (
	"github.com/anonto42/water-board/backend/internal/models"
	"gorm.io/gorm"
)

// ComplaintRepository defines the interface for complaint operations
type ComplaintRepository interface {
	Create(complaint *models.Complaint) error
	GetByID(id uint) (*models.Complaint, error)
	List(status string) ([]models.Complaint, error)
	ListByUser(userID uint) ([]models.Complaint, error)
	UpdateStatus(id uint, status string) (*models.Complaint, error)
	Delete(id uint) error
}

type postgresComplaintRepository struct {
	db *gorm.DB
}

func NewPostgresComplaintRepository(db *gorm.DB) ComplaintRepository {
	return &postgresComplaintRepository{db: db}
}

func (r *postgresComplaintRepository) Create(complaint *models.Complaint) error {
	return r.db.Omit("User", "Neighborhood").Create(complaint).Error
}

func (r *postgresComplaintRepository) GetByID(id uint) (*models.Complaint, error) {
	var c models.Complaint
	if err := r.db.Preload("User").Preload("Neighborhood").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *postgresComplaintRepository) List(status string) ([]models.Complaint, error) {
	var complaints []models.Complaint
	q := r.db.Preload("User").Preload("Neighborhood").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Find(&complaints).Error
	return complaints, err
}

func (r *postgresComplaintRepository) ListByUser(userID uint) ([]models.Complaint, error) {
	var complaints []models.Complaint
	err := r.db.Preload("Neighborhood").Where("user_id = ?", userID).Order("created_at DESC").Find(&complaints).Error
	return complaints, err
}

func (r *postgresComplaintRepository) UpdateStatus(id uint, status string) (*models.Complaint, error) {
	res := r.db.Model(&models.Complaint{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *postgresComplaintRepository) Delete(id uint) error {
	res := r.db.Delete(&models.Complaint{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
