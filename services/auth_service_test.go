package services

import (
	"testing"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func birthday(year int) time.Time {
	return time.Date(year, 6, 15, 0, 0, 0, 0, time.Local)
}

// TestRegisterSeedsAccountData creates the user together with the predefined
// drink catalog and default preferences.
func TestRegisterSeedsAccountData(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	uid, err := svc.Register("Sam", "sam@example.com", "secret1", birthday(1990))
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	var drinkCount int64
	require.NoError(t, db.Model(&models.DrinkType{}).Where("user_id = ?", uid).Count(&drinkCount).Error)
	assert.Equal(t, int64(len(models.PredefinedDrinkTypes(uid))), drinkCount)

	var prefs models.UserPreferences
	require.NoError(t, db.Where("user_id = ?", uid).First(&prefs).Error)
	assert.Equal(t, 2000.0, prefs.DailyGoalML)
}

func TestRegisterValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	cases := []struct {
		name, email, password string
		born                  time.Time
	}{
		{"", "sam@example.com", "secret1", birthday(1990)},
		{"Sam", "", "secret1", birthday(1990)},
		{"Sam", "not-an-email", "secret1", birthday(1990)},
		{"Sam", "sam@example.com", "short", birthday(1990)},
		{"Sam", "sam@example.com", "secret1", birthday(time.Now().Year() - 10)},
	}
	for _, c := range cases {
		_, err := svc.Register(c.name, c.email, c.password, c.born)
		require.Error(t, err)
		assert.True(t, IsValidation(err))
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("Sam", "sam@example.com", "secret1", birthday(1990))
	require.NoError(t, err)

	_, err = svc.Register("Other", "SAM@example.com", "secret2", birthday(1985))
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// the failed transaction must not leave partial seed data behind
	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("Sam", "sam@example.com", "secret1", birthday(1990))
	require.NoError(t, err)

	token, err := svc.Authenticate("Sam@Example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Authenticate("sam@example.com", "wrong-pass")
	assert.Error(t, err)

	_, err = svc.Authenticate("nobody@example.com", "secret1")
	assert.Error(t, err)
}
