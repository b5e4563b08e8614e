package repositories

import (
	"time"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

type MessageRepository interface {
	Create(message *models.Message) error
	FindByContract(contractID string, page, pageSize int) ([]models.Message, int64, error)

	// MarkContractRead marks everything in the contract not sent by
	// the reader as read.
	MarkContractRead(contractID, readerID string) error
	UnreadCount(contractID, readerID string) (int64, error)
}

type messageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

func (r *messageRepository) FindByContract(contractID string, page, pageSize int) ([]models.Message, int64, error) {
	var messages []models.Message
	query := r.db.Where("contract_id = ?", contractID)

	var total int64
	if err := query.Model(&models.Message{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Sender").
		Order("created_at DESC").
		Limit(pageSize).Offset((page - 1) * pageSize).
		Find(&messages).Error

	return messages, total, err
}

func (r *messageRepository) MarkContractRead(contractID, readerID string) error {
	return r.db.Model(&models.Message{}).
		Where("contract_id = ? AND sender_id <> ? AND is_read = ?", contractID, readerID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": time.Now(),
		}).Error
}

func (r *messageRepository) UnreadCount(contractID, readerID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).
		Where("contract_id = ? AND sender_id <> ? AND is_read = ?", contractID, readerID, false).
		Count(&count).Error
	return count, err
}
