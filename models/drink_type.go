package models

// DrinkType is a beverage category, either predefined or user-created.
type DrinkType struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	UserID          string  `gorm:"index;size:36;not null" json:"user_id"`
	Name            string  `gorm:"not null" json:"name"`
	Color           string  `gorm:"size:9" json:"color"`
	IconName        string  `gorm:"size:32" json:"icon_name"`
	DefaultAmountML float64 `json:"default_amount_ml"`
	IsCustom        bool    `json:"is_custom"`
}

// PredefinedDrinkTypes returns the catalog seeded once per user.
func PredefinedDrinkTypes(userID string) []DrinkType {
	return []DrinkType{
		{UserID: userID, Name: "Water", Color: "#29B6F6", IconName: "ic_water", DefaultAmountML: 250},
		{UserID: userID, Name: "Tea", Color: "#66BB6A", IconName: "ic_tea", DefaultAmountML: 200},
		{UserID: userID, Name: "Coffee", Color: "#8D6E63", IconName: "ic_coffee", DefaultAmountML: 150},
		{UserID: userID, Name: "Orange Juice", Color: "#FF9800", IconName: "ic_juice", DefaultAmountML: 200},
		{UserID: userID, Name: "Smoothie", Color: "#E91E63", IconName: "ic_smoothie", DefaultAmountML: 300},
		{UserID: userID, Name: "Milk", Color: "#FFFFFF", IconName: "ic_milk", DefaultAmountML: 250},
	}
}
