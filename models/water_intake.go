package models

import "time"

// WaterIntake is one recorded drink. Date is the local calendar day of
// Timestamp, kept denormalized as "2006-01-02" so daily sums stay a plain
// GROUP BY.
type WaterIntake struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	AmountML  float64   `gorm:"not null" json:"amount_ml"`
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Date      string    `gorm:"index;size:10;not null" json:"date"`
}

// DailyIntake is the grouped view: total amount per calendar day.
type DailyIntake struct {
	Date    string  `json:"date"`
	TotalML float64 `json:"total_ml"`
}
