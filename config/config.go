package config

import (
	"log"
	"os"

	"github.com/Mourad-Gh-code/HydrationTime/models"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	dsn := os.Getenv("DATABASE_PATH")
	if dsn == "" {
		dsn = "hydration.db"
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	if err := Migrate(DB); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// Migrate creates or updates the schema. The store is a local cache, not a
// system of record, so a destructive rebuild on version bumps is acceptable.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.WaterIntake{},
		&models.DrinkType{},
		&models.ConsumptionLog{},
		&models.Goal{},
		&models.UserPreferences{},
		&models.DailyStreak{},
		&models.NotificationMessage{},
	)
}
