package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrWorkProgressNotFound = errors.New("work progress entry not found")

type WorkProgressRepository interface {
	Create(entry *models.WorkProgress) error
	FindByID(id string) (*models.WorkProgress, error)
	FindByContract(contractID string) ([]models.WorkProgress, error)
	Update(entry *models.WorkProgress) error
}

type workProgressRepository struct {
	db *gorm.DB
}

func NewWorkProgressRepository(db *gorm.DB) WorkProgressRepository {
	return &workProgressRepository{db: db}
}

func (r *workProgressRepository) Create(entry *models.WorkProgress) error {
	return r.db.Create(entry).Error
}

func (r *workProgressRepository) FindByID(id string) (*models.WorkProgress, error) {
	var entry models.WorkProgress
	err := r.db.First(&entry, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkProgressNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *workProgressRepository) FindByContract(contractID string) ([]models.WorkProgress, error) {
	var entries []models.WorkProgress
	err := r.db.
		Where("contract_id = ?", contractID).
		Order("date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *workProgressRepository) Update(entry *models.WorkProgress) error {
	return r.db.Save(entry).Error
}
