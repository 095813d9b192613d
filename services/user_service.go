package services

import (
	"errors"

	"github.com/Mourad-Gh-code/HydrationTime/models"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetProfile returns the profile view for the given uid.
func (s *UserService) GetProfile(userID string) (map[string]interface{}, error) {
	var user models.User
	if err := s.db.Where("uid = ?", userID).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}

	age := 0
	if !user.Birthday.IsZero() {
		age = utils.CalculateAge(user.Birthday)
	}

	return map[string]interface{}{
		"uid":           user.UID,
		"name":          user.Name,
		"email":         user.Email,
		"birthday":      user.Birthday.Format(utils.DateLayout),
		"age":           age,
		"daily_goal_ml": user.DailyGoalML,
		"created_at":    user.CreatedAt,
	}, nil
}

// ProfileInput carries a partial profile update.
type ProfileInput struct {
	Name     string `json:"name"`
	Birthday string `json:"birthday"` // YYYY-MM-DD
}

// UpdateProfile applies non-empty fields.
func (s *UserService) UpdateProfile(userID string, input ProfileInput) error {
	var user models.User
	if err := s.db.Where("uid = ?", userID).First(&user).Error; err != nil {
		return errors.New("user not found")
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Birthday != "" {
		birthday, err := utils.ParseDate(input.Birthday)
		if err != nil {
			return validationErr("%v", err)
		}
		if !utils.IsValidAge(birthday) {
			return validationErr("you must be at least %d years old", utils.MinAge)
		}
		user.Birthday = birthday
	}

	return s.db.Save(&user).Error
}

// FindByUID loads the account record.
func (s *UserService) FindByUID(userID string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("uid = ?", userID).First(&user).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

// DeleteAccount removes the user and every row they own, in one transaction.
// Rows belonging to other users are never touched.
func (s *UserService) DeleteAccount(userID string) error {
	if userID == "" {
		return validationErr("user id is required")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		scoped := []interface{}{
			&models.WaterIntake{},
			&models.ConsumptionLog{},
			&models.DrinkType{},
			&models.Goal{},
			&models.DailyStreak{},
			&models.UserPreferences{},
			&models.NotificationMessage{},
		}
		for _, m := range scoped {
			if err := tx.Where("user_id = ?", userID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Where("uid = ?", userID).Delete(&models.User{}).Error
	})
}
