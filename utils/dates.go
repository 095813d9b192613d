package utils

import (
	"errors"
	"time"
)

const DateLayout = "2006-01-02"

// MinAge is the minimum age accepted at registration.
const MinAge = 18

// TodayDate returns the current local calendar day as "2006-01-02".
func TodayDate() string {
	return time.Now().Format(DateLayout)
}

// DateOf returns the local calendar day of t.
func DateOf(t time.Time) string {
	return t.In(time.Local).Format(DateLayout)
}

// DateDaysAgo returns the calendar day n days before today.
func DateDaysAgo(n int) string {
	return time.Now().AddDate(0, 0, -n).Format(DateLayout)
}

// ParseDate validates a "2006-01-02" string in the local zone.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, errors.New("invalid date format, expected YYYY-MM-DD")
	}
	return t, nil
}

// CalculateAge returns full years elapsed since birthday.
func CalculateAge(birthday time.Time) int {
	now := time.Now()
	age := now.Year() - birthday.Year()
	if now.YearDay() < birthday.YearDay() {
		age--
	}
	return age
}

// IsValidAge reports whether birthday corresponds to at least MinAge years.
func IsValidAge(birthday time.Time) bool {
	return CalculateAge(birthday) >= MinAge
}
