package services

import (
	"errors"

	"github.com/Mourad-Gh-code/HydrationTime/models"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type StreakService struct {
	db *gorm.DB
}

func NewStreakService(db *gorm.DB) *StreakService {
	return &StreakService{db: db}
}

// upsertTx writes the day's snapshot, replacing an existing row for the same
// (user, date) key.
func (s *StreakService) upsertTx(tx *gorm.DB, streak models.DailyStreak) error {
	return tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "date"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"goal_ml", "consumed_ml", "goal_achieved", "timestamp"}),
	}).Create(&streak).Error
}

// Upsert replaces the snapshot for (user, date).
func (s *StreakService) Upsert(streak models.DailyStreak) error {
	return s.upsertTx(s.db, streak)
}

// ByDate returns the snapshot for one day, or nil when none was written.
func (s *StreakService) ByDate(userID, date string) (*models.DailyStreak, error) {
	var streak models.DailyStreak
	err := s.db.Where("user_id = ? AND date = ?", userID, date).First(&streak).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &streak, nil
}

// Range returns snapshots within [from, to] inclusive, newest first.
func (s *StreakService) Range(userID, from, to string) ([]models.DailyStreak, error) {
	var streaks []models.DailyStreak
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date DESC").
		Find(&streaks).Error
	return streaks, err
}

// AchievedCount counts the days in [from, to] whose goal was met.
func (s *StreakService) AchievedCount(userID, from, to string) (int64, error) {
	var count int64
	err := s.db.Model(&models.DailyStreak{}).
		Where("user_id = ? AND goal_achieved = ? AND date BETWEEN ? AND ?", userID, true, from, to).
		Count(&count).Error
	return count, err
}

// CurrentStreak counts consecutive achieved days ending today, or ending
// yesterday when today's goal is still open.
func (s *StreakService) CurrentStreak(userID string) (int, error) {
	achieved, err := s.achievedDateSet(userID)
	if err != nil {
		return 0, err
	}

	day := utils.TodayDate()
	if !achieved[day] {
		// today may still be in progress; a run ending yesterday still counts
		day = utils.DateDaysAgo(1)
	}
	anchor, err := utils.ParseDate(day)
	if err != nil {
		return 0, err
	}

	streak := 0
	for achieved[anchor.Format(utils.DateLayout)] {
		streak++
		anchor = anchor.AddDate(0, 0, -1)
	}
	return streak, nil
}

// LongestStreak returns the longest consecutive achieved run in [from, to].
func (s *StreakService) LongestStreak(userID, from, to string) (int, error) {
	var streaks []models.DailyStreak
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&streaks).Error
	if err != nil {
		return 0, err
	}

	longest, run := 0, 0
	var prev string
	for _, st := range streaks {
		if !st.GoalAchieved {
			run = 0
			prev = ""
			continue
		}
		if prev != "" && nextDate(prev) == st.Date {
			run++
		} else {
			run = 1
		}
		prev = st.Date
		if run > longest {
			longest = run
		}
	}
	return longest, nil
}

func nextDate(date string) string {
	t, err := utils.ParseDate(date)
	if err != nil {
		return ""
	}
	return t.AddDate(0, 0, 1).Format(utils.DateLayout)
}

func (s *StreakService) achievedDateSet(userID string) (map[string]bool, error) {
	var dates []string
	err := s.db.Model(&models.DailyStreak{}).
		Where("user_id = ? AND goal_achieved = ?", userID, true).
		Pluck("date", &dates).Error
	if err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d] = true
	}
	return set, nil
}
