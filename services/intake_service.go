package services

import (
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"gorm.io/gorm"
)

// IntakeService records drinks and keeps the derived day state in sync. Every
// write re-evaluates the goal/streak for the affected date and publishes the
// fresh snapshot to the hub.
type IntakeService struct {
	db    *gorm.DB
	goals *GoalService
	hub   *ProgressHub
}

func NewIntakeService(db *gorm.DB, goals *GoalService, hub *ProgressHub) *IntakeService {
	return &IntakeService{db: db, goals: goals, hub: hub}
}

// AddWaterIntake logs a plain water entry.
func (s *IntakeService) AddWaterIntake(userID string, amountML float64, at time.Time) (*models.WaterIntake, error) {
	if userID == "" {
		return nil, validationErr("user id is required")
	}
	if amountML <= 0 {
		return nil, validationErr("amount must be positive")
	}
	if at.IsZero() {
		at = time.Now()
	}

	intake := models.WaterIntake{
		UserID:    userID,
		AmountML:  amountML,
		Timestamp: at,
		Date:      utils.DateOf(at),
	}
	if err := s.db.Create(&intake).Error; err != nil {
		return nil, err
	}

	if err := s.refreshAndPublish(userID, intake.Date); err != nil {
		return nil, err
	}
	return &intake, nil
}

// LogDrink records a typed entry. The drink's name and color are copied into
// the log so later edits to the type never rewrite history, and a matching
// water-intake row is written so the entry counts toward the daily goal.
func (s *IntakeService) LogDrink(userID string, drinkTypeID uint, amountML float64, at time.Time) (*models.ConsumptionLog, error) {
	if userID == "" {
		return nil, validationErr("user id is required")
	}

	var dt models.DrinkType
	if err := s.db.Where("id = ? AND user_id = ?", drinkTypeID, userID).First(&dt).Error; err != nil {
		return nil, validationErr("drink type not found")
	}
	if amountML <= 0 {
		amountML = dt.DefaultAmountML
	}
	if amountML <= 0 {
		return nil, validationErr("amount must be positive")
	}
	if at.IsZero() {
		at = time.Now()
	}

	logEntry := models.ConsumptionLog{
		UserID:      userID,
		DrinkTypeID: dt.ID,
		DrinkName:   dt.Name,
		AmountML:    amountML,
		Timestamp:   at,
		Date:        utils.DateOf(at),
		Color:       dt.Color,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&logEntry).Error; err != nil {
			return err
		}
		intake := models.WaterIntake{
			UserID:    userID,
			AmountML:  amountML,
			Timestamp: at,
			Date:      logEntry.Date,
		}
		return tx.Create(&intake).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.refreshAndPublish(userID, logEntry.Date); err != nil {
		return nil, err
	}
	return &logEntry, nil
}

func (s *IntakeService) refreshAndPublish(userID, date string) error {
	snap, err := s.goals.RefreshGoalProgress(userID, date)
	if err != nil {
		return err
	}
	if s.hub != nil {
		s.hub.PublishProgress(userID, snap)
	}
	return nil
}

// ListIntakes returns every intake for the user, most recent first.
func (s *IntakeService) ListIntakes(userID string) ([]models.WaterIntake, error) {
	var intakes []models.WaterIntake
	err := s.db.
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&intakes).Error
	return intakes, err
}

// IntakesByDate returns one day's intakes, most recent first.
func (s *IntakeService) IntakesByDate(userID, date string) ([]models.WaterIntake, error) {
	var intakes []models.WaterIntake
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("timestamp DESC").
		Find(&intakes).Error
	return intakes, err
}

// TotalByDate sums one day's intake. An empty day is 0, not an error.
func (s *IntakeService) TotalByDate(userID, date string) (float64, error) {
	return intakeTotal(s.db, userID, date)
}

// DailyTotalsSince returns per-day sums from startDate onward, oldest first.
// Days with no intake are absent; callers zero-fill for presentation.
func (s *IntakeService) DailyTotalsSince(userID, startDate string) ([]models.DailyIntake, error) {
	var totals []models.DailyIntake
	err := s.db.Model(&models.WaterIntake{}).
		Select("date, SUM(amount_ml) AS total_ml").
		Where("user_id = ? AND date >= ?", userID, startDate).
		Group("date").
		Order("date ASC").
		Scan(&totals).Error
	return totals, err
}

// DeleteIntake removes one entry, enforcing ownership, then re-derives the
// affected day.
func (s *IntakeService) DeleteIntake(userID string, id uint) error {
	var intake models.WaterIntake
	if err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&intake).Error; err != nil {
		return validationErr("intake not found")
	}
	if err := s.db.Delete(&intake).Error; err != nil {
		return err
	}
	return s.refreshAndPublish(userID, intake.Date)
}

// DeleteLogsByDate clears one day's typed entries. The paired water-intake
// rows are kept, so the day's hydration total and goal state do not change.
func (s *IntakeService) DeleteLogsByDate(userID, date string) error {
	if _, err := utils.ParseDate(date); err != nil {
		return validationErr("%v", err)
	}
	return s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&models.ConsumptionLog{}).Error
}

// LogsInRange returns typed entries within [from, to] inclusive, newest first.
func (s *IntakeService) LogsInRange(userID, from, to string) ([]models.ConsumptionLog, error) {
	var logs []models.ConsumptionLog
	err := s.db.
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("timestamp DESC").
		Find(&logs).Error
	return logs, err
}

// LogsByDate returns one day's typed entries, newest first.
func (s *IntakeService) LogsByDate(userID, date string) ([]models.ConsumptionLog, error) {
	return s.LogsInRange(userID, date, date)
}

// LoggedDates returns the distinct days with at least one typed entry in
// [from, to], newest first.
func (s *IntakeService) LoggedDates(userID, from, to string) ([]string, error) {
	var dates []string
	err := s.db.Model(&models.ConsumptionLog{}).
		Distinct("date").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date DESC").
		Pluck("date", &dates).Error
	return dates, err
}
