package services

import (
	"errors"
	"strings"

	"github.com/Mourad-Gh-code/HydrationTime/models"

	"gorm.io/gorm"
)

type DrinkTypeService struct {
	db *gorm.DB
}

func NewDrinkTypeService(db *gorm.DB) *DrinkTypeService {
	return &DrinkTypeService{db: db}
}

// SeedDefaults inserts the predefined catalog once per user. A user who
// already has drink types keeps what they have.
func (s *DrinkTypeService) SeedDefaults(userID string) error {
	var count int64
	if err := s.db.Model(&models.DrinkType{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	seed := models.PredefinedDrinkTypes(userID)
	return s.db.Create(&seed).Error
}

// List returns the user's drink types, predefined first, then by name.
func (s *DrinkTypeService) List(userID string) ([]models.DrinkType, error) {
	var types []models.DrinkType
	err := s.db.
		Where("user_id = ?", userID).
		Order("is_custom ASC, name ASC").
		Find(&types).Error
	return types, err
}

// GetByID resolves a drink type, enforcing ownership.
func (s *DrinkTypeService) GetByID(userID string, id uint) (*models.DrinkType, error) {
	var dt models.DrinkType
	err := s.db.Where("id = ? AND user_id = ?", id, userID).First(&dt).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, validationErr("drink type not found")
		}
		return nil, err
	}
	return &dt, nil
}

func (s *DrinkTypeService) nameTaken(userID, name string, excludeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.DrinkType{}).
		Where("user_id = ? AND LOWER(name) = LOWER(?) AND id <> ?", userID, name, excludeID).
		Count(&count).Error
	return count > 0, err
}

// Create adds a custom drink type. Names are unique per user.
func (s *DrinkTypeService) Create(userID, name, color, iconName string, defaultAmountML float64) (*models.DrinkType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErr("drink name is required")
	}
	if defaultAmountML <= 0 {
		return nil, validationErr("default amount must be positive")
	}
	taken, err := s.nameTaken(userID, name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, validationErr("a drink named %q already exists", name)
	}

	dt := models.DrinkType{
		UserID:          userID,
		Name:            name,
		Color:           color,
		IconName:        iconName,
		DefaultAmountML: defaultAmountML,
		IsCustom:        true,
	}
	if err := s.db.Create(&dt).Error; err != nil {
		return nil, err
	}
	return &dt, nil
}

// Update edits a drink type in place. Historical consumption logs keep their
// name/color snapshot and are not rewritten.
func (s *DrinkTypeService) Update(userID string, id uint, name, color, iconName string, defaultAmountML float64) (*models.DrinkType, error) {
	dt, err := s.GetByID(userID, id)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		taken, err := s.nameTaken(userID, name, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, validationErr("a drink named %q already exists", name)
		}
		dt.Name = name
	}
	if color != "" {
		dt.Color = color
	}
	if iconName != "" {
		dt.IconName = iconName
	}
	if defaultAmountML > 0 {
		dt.DefaultAmountML = defaultAmountML
	}

	if err := s.db.Save(dt).Error; err != nil {
		return nil, err
	}
	return dt, nil
}

// Delete removes a drink type. Logs referencing it are untouched.
func (s *DrinkTypeService) Delete(userID string, id uint) error {
	res := s.db.Where("id = ? AND user_id = ?", id, userID).Delete(&models.DrinkType{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return validationErr("drink type not found")
	}
	return nil
}

// DeleteAllCustom removes the user's custom drinks, keeping the predefined set.
func (s *DrinkTypeService) DeleteAllCustom(userID string) error {
	return s.db.Where("user_id = ? AND is_custom = ?", userID, true).Delete(&models.DrinkType{}).Error
}
