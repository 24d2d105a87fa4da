package notify

import (
	"encoding/json"
	"time"

	"gorm.io/gorm"

	"github.com/gulfwash/carwash-scheduler/internal/models"
)

// Service persists notifications as rows the clients poll.
type Service struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Service {
	return &Service{db: db}
}

func (s *Service) Create(msg Message) error {
	var dataJSON string
	if msg.Data != nil {
		if b, err := json.Marshal(msg.Data); err == nil {
			dataJSON = string(b)
		}
	}

	n := models.Notification{
		UserID:  msg.UserID,
		Title:   msg.Title,
		Message: msg.Text,
		Type:    string(msg.Type),
		Data:    dataJSON,
	}

	return s.db.Create(&n).Error
}

func (s *Service) ListForUser(userID uint) ([]models.Notification, error) {
	var ns []models.Notification
	if err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ns).Error; err != nil {
		return nil, err
	}
	return ns, nil
}

func (s *Service) MarkRead(userID, id uint) error {
	now := time.Now()
	return s.db.
		Model(&models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{"is_read": true, "read_at": now}).Error
}
