package services

import (
	"errors"
	"strings"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService is the local identity provider: it issues opaque user
// identifiers and session tokens. The rest of the system depends only on the
// identifier.
type AuthService struct {
	db *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{db: db}
}

// Register creates the account plus its seed data (predefined drink types and
// default preferences) in one transaction, and returns the new uid.
func (s *AuthService) Register(name, email, password string, birthday time.Time) (string, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" || email == "" {
		return "", validationErr("name and email are required")
	}
	if !strings.Contains(email, "@") {
		return "", validationErr("invalid email address")
	}
	if len(password) < 6 {
		return "", validationErr("password must be at least 6 characters")
	}
	if !utils.IsValidAge(birthday) {
		return "", validationErr("you must be at least %d years old", utils.MinAge)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return "", err
	}

	uid := uuid.NewString()
	user := models.User{
		UID:          uid,
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Birthday:     birthday,
		DailyGoalML:  2000,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return validationErr("email already registered")
		}
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		seed := models.PredefinedDrinkTypes(uid)
		if err := tx.Create(&seed).Error; err != nil {
			return err
		}
		prefs := models.DefaultPreferences(uid)
		return tx.Create(&prefs).Error
	})
	if err != nil {
		return "", err
	}
	return uid, nil
}

// Authenticate checks credentials and returns a signed session token.
func (s *AuthService) Authenticate(email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("invalid email or password")
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return "", errors.New("invalid email or password")
	}

	return utils.GenerateJWT(user.UID)
}
