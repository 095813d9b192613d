package models

import "time"

// DailyStreak caches the goal-vs-consumed evaluation for one day. It is a
// snapshot taken at the last intake write for that date, not a live view.
type DailyStreak struct {
	UserID       string    `gorm:"primaryKey;size:36" json:"user_id"`
	Date         string    `gorm:"primaryKey;size:10" json:"date"`
	GoalML       float64   `json:"goal_ml"`
	ConsumedML   float64   `json:"consumed_ml"`
	GoalAchieved bool      `json:"goal_achieved"`
	Timestamp    time.Time `json:"timestamp"`
}
