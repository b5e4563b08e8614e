package repositories

import (
	"errors"
	"fmt"
	"time"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrInvalidNotification  = errors.New("invalid notification data")
)

// NotificationCriteria filters a user's notification listing.
type NotificationCriteria struct {
	UnreadOnly bool
	Type       models.NotificationType
	Page       int
	PageSize   int
}

type NotificationRepository interface {
	CreateNotification(notification *models.Notification) error
	FindNotificationByID(id string) (*models.Notification, error)
	FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error)

	// MarkManyAsRead marks only rows matching both the id set and the
	// owner. Foreign or missing ids are silently ignored.
	MarkManyAsRead(userID string, notificationIDs []string) error
	MarkAllAsRead(userID string) error
	DeleteNotification(userID, notificationID string) error
	GetUnreadCount(userID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateNotification(notification *models.Notification) error {
	if err := r.validateNotification(notification); err != nil {
		return err
	}
	return r.db.Create(notification).Error
}

func (r *notificationRepository) FindNotificationByID(id string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindUserNotifications(userID string, criteria NotificationCriteria) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	query := r.db.Where("user_id = ?", userID)

	if criteria.UnreadOnly {
		query = query.Where("is_read = ?", false)
	}
	if criteria.Type != "" {
		query = query.Where("type = ?", criteria.Type)
	}

	var total int64
	if err := query.Model(&models.Notification{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := criteria.PageSize
	offset := (criteria.Page - 1) * criteria.PageSize

	err := query.Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *notificationRepository) MarkManyAsRead(userID string, notificationIDs []string) error {
	if len(notificationIDs) == 0 {
		return nil
	}

	return r.db.Model(&models.Notification{}).
		Where("id IN ? AND user_id = ?", notificationIDs, userID).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (r *notificationRepository) MarkAllAsRead(userID string) error {
	return r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (r *notificationRepository) DeleteNotification(userID, notificationID string) error {
	result := r.db.Where("id = ? AND user_id = ?", notificationID, userID).
		Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) GetUnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND is_read = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *notificationRepository) validateNotification(notification *models.Notification) error {
	if notification.UserID == "" {
		return fmt.Errorf("%w: user ID is required", ErrInvalidNotification)
	}
	if notification.Title == "" {
		return fmt.Errorf("%w: title is required", ErrInvalidNotification)
	}
	if !models.ValidNotificationTypes[notification.Type] {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidNotification, notification.Type)
	}
	if !notification.Related().Valid() {
		return fmt.Errorf("%w: malformed related reference", ErrInvalidNotification)
	}
	return nil
}
