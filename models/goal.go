package models

import "time"

// Goal is the per-day target and its achievement snapshot. At most one row
// exists per (user, date); writes go through the goal service upsert.
type Goal struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     string    `gorm:"size:36;not null;uniqueIndex:idx_goals_user_date" json:"user_id"`
	Date       string    `gorm:"size:10;not null;uniqueIndex:idx_goals_user_date" json:"date"`
	TargetML   float64   `gorm:"not null" json:"target_ml"`
	AchievedML float64   `json:"achieved_ml"`
	Achieved   bool      `json:"achieved"`
	CreatedAt  time.Time `json:"created_at"`
}
