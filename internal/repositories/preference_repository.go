package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPreferencesNotFound = errors.New("notification preferences not found")

type PreferenceRepository interface {
	FindByUserID(userID string) (*models.NotificationPreference, error)
	Create(pref *models.NotificationPreference) error
	Save(pref *models.NotificationPreference) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) FindByUserID(userID string) (*models.NotificationPreference, error) {
	var pref models.NotificationPreference
	err := r.db.First(&pref, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPreferencesNotFound
		}
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) Create(pref *models.NotificationPreference) error {
	return r.db.Create(pref).Error
}

func (r *preferenceRepository) Save(pref *models.NotificationPreference) error {
	return r.db.Save(pref).Error
}
