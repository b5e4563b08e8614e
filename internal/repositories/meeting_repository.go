package repositories

import (
	"errors"
	"time"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMeetingNotFound = errors.New("meeting not found")

type MeetingRepository interface {
	Create(meeting *models.Meeting) error
	FindByID(id string) (*models.Meeting, error)
	FindByContract(contractID string) ([]models.Meeting, error)

	// FindDueForReminder returns scheduled meetings starting inside
	// the window that have not had their reminder fired yet.
	FindDueForReminder(until time.Time) ([]models.Meeting, error)
	MarkReminderSent(meetingID string) error
	Update(meeting *models.Meeting) error
}

type meetingRepository struct {
	db *gorm.DB
}

func NewMeetingRepository(db *gorm.DB) MeetingRepository {
	return &meetingRepository{db: db}
}

func (r *meetingRepository) Create(meeting *models.Meeting) error {
	return r.db.Create(meeting).Error
}

func (r *meetingRepository) FindByID(id string) (*models.Meeting, error) {
	var meeting models.Meeting
	err := r.db.First(&meeting, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMeetingNotFound
		}
		return nil, err
	}
	return &meeting, nil
}

func (r *meetingRepository) FindByContract(contractID string) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Where("contract_id = ?", contractID).
		Order("start_time ASC").
		Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) FindDueForReminder(until time.Time) ([]models.Meeting, error) {
	var meetings []models.Meeting
	err := r.db.
		Where("status = ? AND reminder_sent = ? AND start_time BETWEEN ? AND ?",
			models.MeetingStatusScheduled, false, time.Now(), until).
		Find(&meetings).Error
	return meetings, err
}

func (r *meetingRepository) MarkReminderSent(meetingID string) error {
	return r.db.Model(&models.Meeting{}).
		Where("id = ?", meetingID).
		Update("reminder_sent", true).Error
}

func (r *meetingRepository) Update(meeting *models.Meeting) error {
	return r.db.Save(meeting).Error
}
