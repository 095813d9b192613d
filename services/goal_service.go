package services

import (
	"errors"
	"sync"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"gorm.io/gorm"
)

// ProgressSnapshot is the derived dashboard state for one day.
type ProgressSnapshot struct {
	Date       string  `json:"date"`
	ConsumedML float64 `json:"consumed_ml"`
	GoalML     float64 `json:"goal_ml"`
	Percent    float64 `json:"percent"`
	Achieved   bool    `json:"achieved"`
}

// GoalService owns goal upserts and the streak snapshots derived from them.
// Read-modify-write sequences for the same (user, date) run under a keyed
// mutex so overlapping writes cannot interleave.
type GoalService struct {
	db      *gorm.DB
	streaks *StreakService

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewGoalService(db *gorm.DB, streaks *StreakService) *GoalService {
	return &GoalService{db: db, streaks: streaks, locks: make(map[string]*sync.Mutex)}
}

// lockFor returns the mutex serializing writes for one (user, date) key.
// Entries are never evicted; the map is bounded by the distinct user-days
// written during the process lifetime.
func (s *GoalService) lockFor(userID, date string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := userID + "|" + date
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func intakeTotal(tx *gorm.DB, userID, date string) (float64, error) {
	var total float64
	err := tx.Model(&models.WaterIntake{}).
		Where("user_id = ? AND date = ?", userID, date).
		Select("COALESCE(SUM(amount_ml), 0)").
		Scan(&total).Error
	return total, err
}

// SetGoalAndUpdateDefault upserts the goal for a date and also moves the
// user's standing default goal to the new target. The coupling is this named
// operation, nothing else touches the default.
func (s *GoalService) SetGoalAndUpdateDefault(userID string, targetML float64, date string) (*models.Goal, error) {
	return s.upsert(userID, targetML, date, true)
}

// SetGoalForDate upserts the goal for a single date without changing the
// standing default.
func (s *GoalService) SetGoalForDate(userID string, targetML float64, date string) (*models.Goal, error) {
	return s.upsert(userID, targetML, date, false)
}

func (s *GoalService) upsert(userID string, targetML float64, date string, updateDefault bool) (*models.Goal, error) {
	if userID == "" {
		return nil, validationErr("user id is required")
	}
	if targetML <= 0 {
		return nil, validationErr("goal target must be positive")
	}
	if _, err := utils.ParseDate(date); err != nil {
		return nil, validationErr("%v", err)
	}

	l := s.lockFor(userID, date)
	l.Lock()
	defer l.Unlock()

	var goal models.Goal
	err := s.db.Transaction(func(tx *gorm.DB) error {
		consumed, err := intakeTotal(tx, userID, date)
		if err != nil {
			return err
		}
		achieved := consumed >= targetML

		err = tx.Where("user_id = ? AND date = ?", userID, date).First(&goal).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			goal = models.Goal{
				UserID:     userID,
				Date:       date,
				TargetML:   targetML,
				AchievedML: consumed,
				Achieved:   achieved,
			}
			if err := tx.Create(&goal).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			goal.TargetML = targetML
			goal.AchievedML = consumed
			goal.Achieved = achieved
			if err := tx.Save(&goal).Error; err != nil {
				return err
			}
		}

		if err := s.streaks.upsertTx(tx, models.DailyStreak{
			UserID:       userID,
			Date:         date,
			GoalML:       targetML,
			ConsumedML:   consumed,
			GoalAchieved: achieved,
			Timestamp:    time.Now(),
		}); err != nil {
			return err
		}

		if updateDefault {
			return tx.Model(&models.User{}).
				Where("uid = ?", userID).
				Update("daily_goal_ml", targetML).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &goal, nil
}

// RefreshGoalProgress re-evaluates achievement for one date after intake
// changed, updates the goal row if one exists, and rewrites the streak
// snapshot. Other dates are never touched.
func (s *GoalService) RefreshGoalProgress(userID, date string) (*ProgressSnapshot, error) {
	l := s.lockFor(userID, date)
	l.Lock()
	defer l.Unlock()

	var snap ProgressSnapshot
	err := s.db.Transaction(func(tx *gorm.DB) error {
		consumed, err := intakeTotal(tx, userID, date)
		if err != nil {
			return err
		}

		target, err := s.targetFor(tx, userID, date)
		if err != nil {
			return err
		}
		achieved := consumed >= target

		var goal models.Goal
		err = tx.Where("user_id = ? AND date = ?", userID, date).First(&goal).Error
		if err == nil {
			goal.AchievedML = consumed
			goal.Achieved = achieved
			if err := tx.Save(&goal).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := s.streaks.upsertTx(tx, models.DailyStreak{
			UserID:       userID,
			Date:         date,
			GoalML:       target,
			ConsumedML:   consumed,
			GoalAchieved: achieved,
			Timestamp:    time.Now(),
		}); err != nil {
			return err
		}

		snap = buildSnapshot(date, consumed, target)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &snap, nil
}

// targetFor resolves the effective goal for a date: the day's goal row if one
// exists, else the user's standing default.
func (s *GoalService) targetFor(tx *gorm.DB, userID, date string) (float64, error) {
	var goal models.Goal
	err := tx.Where("user_id = ? AND date = ?", userID, date).First(&goal).Error
	if err == nil {
		return goal.TargetML, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	var user models.User
	if err := tx.Where("uid = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 2000, nil
		}
		return 0, err
	}
	if user.DailyGoalML <= 0 {
		return 2000, nil
	}
	return user.DailyGoalML, nil
}

// TodayProgress returns today's goal (synthesized from the default when no
// row exists yet) together with the derived snapshot.
func (s *GoalService) TodayProgress(userID string) (*models.Goal, *ProgressSnapshot, error) {
	return s.ProgressByDate(userID, utils.TodayDate())
}

// ProgressByDate is TodayProgress for an arbitrary date. A missing goal or an
// empty day resolves to zeros, never an error.
func (s *GoalService) ProgressByDate(userID, date string) (*models.Goal, *ProgressSnapshot, error) {
	target, err := s.targetFor(s.db, userID, date)
	if err != nil {
		return nil, nil, err
	}
	consumed, err := intakeTotal(s.db, userID, date)
	if err != nil {
		return nil, nil, err
	}

	var goal models.Goal
	err = s.db.Where("user_id = ? AND date = ?", userID, date).First(&goal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		goal = models.Goal{UserID: userID, Date: date, TargetML: target, AchievedML: consumed, Achieved: consumed >= target}
	} else if err != nil {
		return nil, nil, err
	}

	snap := buildSnapshot(date, consumed, target)
	return &goal, &snap, nil
}

// History returns the user's goal rows, most recent first.
func (s *GoalService) History(userID string) ([]models.Goal, error) {
	var goals []models.Goal
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func buildSnapshot(date string, consumed, target float64) ProgressSnapshot {
	pct := 0.0
	if target > 0 {
		pct = consumed / target
		if pct > 1 {
			pct = 1
		}
	}
	return ProgressSnapshot{
		Date:       date,
		ConsumedML: consumed,
		GoalML:     target,
		Percent:    pct,
		Achieved:   target > 0 && consumed >= target,
	}
}
