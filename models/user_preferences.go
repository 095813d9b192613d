package models

// UserPreferences is the per-user settings singleton, created lazily with
// defaults on first access.
type UserPreferences struct {
	UserID                      string  `gorm:"primaryKey;size:36" json:"user_id"`
	DarkMode                    bool    `json:"dark_mode"`
	Language                    string  `gorm:"size:5;default:en" json:"language"` // "en" | "fr" | "ar"
	DailyGoalML                 float64 `gorm:"default:2000" json:"daily_goal_ml"`
	NotificationsEnabled        bool    `gorm:"default:true" json:"notifications_enabled"`
	NotificationIntervalMinutes int     `gorm:"default:60" json:"notification_interval_minutes"`
	StartTime                   string  `gorm:"size:5;default:08:00" json:"start_time"`
	EndTime                     string  `gorm:"size:5;default:22:00" json:"end_time"`
	WeekStartDay                int     `gorm:"default:1" json:"week_start_day"` // 1 = Monday, 7 = Sunday
}

// DefaultPreferences returns the settings a fresh account starts with.
func DefaultPreferences(userID string) UserPreferences {
	return UserPreferences{
		UserID:                      userID,
		DarkMode:                    false,
		Language:                    "en",
		DailyGoalML:                 2000,
		NotificationsEnabled:        true,
		NotificationIntervalMinutes: 60,
		StartTime:                   "08:00",
		EndTime:                     "22:00",
		WeekStartDay:                1,
	}
}
