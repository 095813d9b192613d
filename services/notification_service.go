package services

import (
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"

	"gorm.io/gorm"
)

// NotificationService stores reminder messages and fans them out through the
// hub.
type NotificationService struct {
	db  *gorm.DB
	hub *ProgressHub
}

func NewNotificationService(db *gorm.DB, hub *ProgressHub) *NotificationService {
	return &NotificationService{db: db, hub: hub}
}

// Emit persists a message and broadcasts it to the user's live clients.
func (s *NotificationService) Emit(userID, title, body string) error {
	msg := models.NotificationMessage{
		UserID:    userID,
		Title:     title,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.db.Create(&msg).Error; err != nil {
		return err
	}

	if s.hub != nil {
		s.hub.Notify(userID, map[string]any{
			"kind":    "reminder",
			"message": msg,
		})
	}
	return nil
}

// List returns the user's recent messages, newest first.
func (s *NotificationService) List(userID string, limit int) ([]models.NotificationMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	var msgs []models.NotificationMessage
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}
