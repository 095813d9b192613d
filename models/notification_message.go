package models

import "time"

// NotificationMessage is a delivered reminder, kept so the client can show a
// message history.
type NotificationMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;size:36" json:"user_id"`
	Title     string    `gorm:"size:120" json:"title"`
	Body      string    `gorm:"type:text" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
