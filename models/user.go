package models

import "time"

// User holds the account record. UID is the opaque identifier every other
// table is scoped by.
type User struct {
	UID          string    `gorm:"primaryKey;size:36" json:"uid"`
	Name         string    `gorm:"not null" json:"name"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Birthday     time.Time `json:"birthday"`
	// Standing default goal in milliliters, applied to new days.
	DailyGoalML float64   `gorm:"default:2000" json:"daily_goal_ml"`
	CreatedAt   time.Time `json:"created_at"`
}
