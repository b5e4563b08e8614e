package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id string) (*models.Application, error)
	FindByJob(jobID string) ([]models.Application, error)
	FindByFreelancer(freelancerID string) ([]models.Application, error)
	HasApplied(jobID, freelancerID string) (bool, error)
	Update(application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) Create(application *models.Application) error {
	return r.db.Create(application).Error
}

func (r *applicationRepository) FindByID(id string) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Freelancer").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByJob(jobID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Freelancer").
		Where("job_id = ?", jobID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) FindByFreelancer(freelancerID string) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&applications).Error
	return applications, err
}

func (r *applicationRepository) HasApplied(jobID, freelancerID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).
		Count(&count).Error
	return count > 0, err
}

func (r *applicationRepository) Update(application *models.Application) error {
	return r.db.Save(application).Error
}
