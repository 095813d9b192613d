package models

import "time"

// ConsumptionLog is a typed drink entry. DrinkName and Color are snapshots
// taken at write time: editing or deleting the drink type later must not
// rewrite history, so DrinkTypeID is a soft reference only.
type ConsumptionLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      string    `gorm:"index;size:36;not null" json:"user_id"`
	DrinkTypeID uint      `json:"drink_type_id"`
	DrinkName   string    `gorm:"not null" json:"drink_name"`
	AmountML    float64   `gorm:"not null" json:"amount_ml"`
	Timestamp   time.Time `gorm:"not null" json:"timestamp"`
	Date        string    `gorm:"index;size:10;not null" json:"date"`
	Color       string    `gorm:"size:9;default:#29B6F6" json:"color"`
}
