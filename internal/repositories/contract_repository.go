package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrContractNotFound = errors.New("contract not found")

type ContractRepository interface {
	Create(contract *models.Contract) error
	FindByID(id string) (*models.Contract, error)
	FindByUser(userID string) ([]models.Contract, error)
	Update(contract *models.Contract) error
}

type contractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) Create(contract *models.Contract) error {
	return r.db.Create(contract).Error
}

func (r *contractRepository) FindByID(id string) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.Preload("Application").Preload("Application.Job").
		First(&contract, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContractNotFound
		}
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) FindByUser(userID string) ([]models.Contract, error) {
	var contracts []models.Contract
	err := r.db.
		Where("client_id = ? OR freelancer_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&contracts).Error
	return contracts, err
}

func (r *contractRepository) Update(contract *models.Contract) error {
	return r.db.Save(contract).Error
}
