package services

import (
	"errors"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"

	"gorm.io/gorm"
)

type PreferencesService struct {
	db *gorm.DB
}

func NewPreferencesService(db *gorm.DB) *PreferencesService {
	return &PreferencesService{db: db}
}

// Get returns the user's settings, creating the row with defaults on first
// access.
func (s *PreferencesService) Get(userID string) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	err := s.db.Where("user_id = ?", userID).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		prefs = models.DefaultPreferences(userID)
		if err := s.db.Create(&prefs).Error; err != nil {
			return nil, err
		}
		return &prefs, nil
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

// PreferencesInput carries a partial settings update; nil fields are left
// unchanged.
type PreferencesInput struct {
	DarkMode                    *bool    `json:"dark_mode"`
	Language                    *string  `json:"language"`
	DailyGoalML                 *float64 `json:"daily_goal_ml"`
	NotificationsEnabled        *bool    `json:"notifications_enabled"`
	NotificationIntervalMinutes *int     `json:"notification_interval_minutes"`
	StartTime                   *string  `json:"start_time"`
	EndTime                     *string  `json:"end_time"`
	WeekStartDay                *int     `json:"week_start_day"`
}

var supportedLanguages = map[string]bool{"en": true, "fr": true, "ar": true}

// Update applies a partial settings change.
func (s *PreferencesService) Update(userID string, input PreferencesInput) (*models.UserPreferences, error) {
	prefs, err := s.Get(userID)
	if err != nil {
		return nil, err
	}

	if input.DarkMode != nil {
		prefs.DarkMode = *input.DarkMode
	}
	if input.Language != nil {
		if !supportedLanguages[*input.Language] {
			return nil, validationErr("unsupported language %q", *input.Language)
		}
		prefs.Language = *input.Language
	}
	if input.DailyGoalML != nil {
		if *input.DailyGoalML <= 0 {
			return nil, validationErr("daily goal must be positive")
		}
		prefs.DailyGoalML = *input.DailyGoalML
	}
	if input.NotificationsEnabled != nil {
		prefs.NotificationsEnabled = *input.NotificationsEnabled
	}
	if input.NotificationIntervalMinutes != nil {
		if *input.NotificationIntervalMinutes <= 0 {
			return nil, validationErr("notification interval must be positive")
		}
		prefs.NotificationIntervalMinutes = *input.NotificationIntervalMinutes
	}
	if input.StartTime != nil {
		if _, err := time.Parse("15:04", *input.StartTime); err != nil {
			return nil, validationErr("invalid start time, expected HH:MM")
		}
		prefs.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		if _, err := time.Parse("15:04", *input.EndTime); err != nil {
			return nil, validationErr("invalid end time, expected HH:MM")
		}
		prefs.EndTime = *input.EndTime
	}
	if input.WeekStartDay != nil {
		if *input.WeekStartDay < 1 || *input.WeekStartDay > 7 {
			return nil, validationErr("week start day must be 1..7")
		}
		prefs.WeekStartDay = *input.WeekStartDay
	}

	if err := s.db.Save(prefs).Error; err != nil {
		return nil, err
	}
	return prefs, nil
}

// SetNotificationsEnabled flips the reminder toggle.
func (s *PreferencesService) SetNotificationsEnabled(userID string, enabled bool) error {
	if _, err := s.Get(userID); err != nil {
		return err
	}
	return s.db.Model(&models.UserPreferences{}).
		Where("user_id = ?", userID).
		Update("notifications_enabled", enabled).Error
}
