package services

import (
	"testing"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/config"
	"github.com/Mourad-Gh-code/HydrationTime/models"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive and shared
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, goalML float64) string {
	t.Helper()

	uid := uuid.NewString()
	user := models.User{
		UID:          uid,
		Name:         "Test User",
		Email:        uid + "@example.com",
		PasswordHash: "x",
		Birthday:     time.Date(1990, 5, 12, 0, 0, 0, 0, time.Local),
		DailyGoalML:  goalML,
	}
	require.NoError(t, db.Create(&user).Error)

	seed := models.PredefinedDrinkTypes(uid)
	require.NoError(t, db.Create(&seed).Error)
	return uid
}

func at(date string, hour int) time.Time {
	d, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		panic(err)
	}
	return d.Add(time.Duration(hour) * time.Hour)
}
