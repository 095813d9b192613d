package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-10")
	require.NoError(t, err)
	assert.Equal(t, 2025, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 10, d.Day())

	_, err = ParseDate("10/03/2025")
	assert.Error(t, err)
	_, err = ParseDate("2025-3-10")
	assert.Error(t, err)
}

func TestDateOfUsesLocalDay(t *testing.T) {
	at := time.Date(2025, 3, 10, 14, 30, 0, 0, time.Local)
	assert.Equal(t, "2025-03-10", DateOf(at))
}

func TestDateDaysAgo(t *testing.T) {
	assert.Equal(t, TodayDate(), DateDaysAgo(0))

	yesterday := time.Now().AddDate(0, 0, -1).Format(DateLayout)
	assert.Equal(t, yesterday, DateDaysAgo(1))
}

func TestCalculateAge(t *testing.T) {
	now := time.Now()

	// birthday earlier this year or today: age already incremented
	turned30 := now.AddDate(-30, 0, 0)
	assert.Equal(t, 30, CalculateAge(turned30))

	// birthday later this year: one year less
	notYet30 := now.AddDate(-30, 0, 10)
	assert.Equal(t, 29, CalculateAge(notYet30))
}

func TestIsValidAgeBoundary(t *testing.T) {
	now := time.Now()

	assert.True(t, IsValidAge(now.AddDate(-MinAge, 0, 0)))
	assert.False(t, IsValidAge(now.AddDate(-MinAge, 0, 10)))
	assert.False(t, IsValidAge(now.AddDate(-10, 0, 0)))
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hash)

	assert.True(t, CheckPasswordHash("secret1", hash))
	assert.False(t, CheckPasswordHash("other", hash))
}
