package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPortfolioItemNotFound = errors.New("portfolio item not found")

type PortfolioRepository interface {
	Create(item *models.PortfolioItem) error
	FindByID(id string) (*models.PortfolioItem, error)
	FindByFreelancer(freelancerID string) ([]models.PortfolioItem, error)
	Update(item *models.PortfolioItem) error
	Delete(freelancerID, itemID string) error
}

type portfolioRepository struct {
	db *gorm.DB
}

func NewPortfolioRepository(db *gorm.DB) PortfolioRepository {
	return &portfolioRepository{db: db}
}

func (r *portfolioRepository) Create(item *models.PortfolioItem) error {
	return r.db.Create(item).Error
}

func (r *portfolioRepository) FindByID(id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPortfolioItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepository) FindByFreelancer(freelancerID string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.
		Where("freelancer_id = ?", freelancerID).
		Order("start_date DESC").
		Find(&items).Error
	return items, err
}

func (r *portfolioRepository) Update(item *models.PortfolioItem) error {
	return r.db.Save(item).Error
}

func (r *portfolioRepository) Delete(freelancerID, itemID string) error {
	result := r.db.Where("id = ? AND freelancer_id = ?", itemID, freelancerID).
		Delete(&models.PortfolioItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPortfolioItemNotFound
	}
	return nil
}
