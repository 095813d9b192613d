package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addLog(t *testing.T, svc *IntakeService, types *DrinkTypeService, uid, name, date string, hour int, amountML float64) {
	t.Helper()
	all, err := types.List(uid)
	require.NoError(t, err)
	for _, dt := range all {
		if dt.Name == name {
			_, err := svc.LogDrink(uid, dt.ID, amountML, at(date, hour))
			require.NoError(t, err)
			return
		}
	}
	t.Fatalf("drink type %q not seeded", name)
}

func TestAvgPerLoggedDayExcludesEmptyDays(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	streaks := NewStreakService(db)
	intake := NewIntakeService(db, NewGoalService(db, streaks), nil)
	types := NewDrinkTypeService(db)
	stats := NewStatisticsService(db, streaks)

	// logs on 2 of 7 days summing to 3.0 liters
	addLog(t, intake, types, uid, "Water", "2024-02-01", 9, 1000)
	addLog(t, intake, types, uid, "Water", "2024-02-01", 18, 1000)
	addLog(t, intake, types, uid, "Water", "2024-02-04", 12, 1000)

	sum, err := stats.Summary(uid, "2024-02-01", "2024-02-07")
	require.NoError(t, err)
	assert.Equal(t, 3.0, sum.TotalLiters)
	assert.Equal(t, 2, sum.LoggedDays)
	assert.Equal(t, 1.5, sum.AvgPerLoggedDay, "empty days must not dilute the average")
}

func TestDistributionSharesSumToOne(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	streaks := NewStreakService(db)
	intake := NewIntakeService(db, NewGoalService(db, streaks), nil)
	types := NewDrinkTypeService(db)
	stats := NewStatisticsService(db, streaks)

	addLog(t, intake, types, uid, "Water", "2024-02-01", 9, 500)
	addLog(t, intake, types, uid, "Tea", "2024-02-01", 10, 300)
	addLog(t, intake, types, uid, "Coffee", "2024-02-02", 8, 200)

	sum, err := stats.Summary(uid, "2024-02-01", "2024-02-07")
	require.NoError(t, err)

	var total float64
	for _, share := range sum.Distribution {
		total += share
	}
	assert.InDelta(t, 1.0, total, 1e-9)
	assert.InDelta(t, 0.5, sum.Distribution["Water"], 1e-9)
	assert.InDelta(t, 0.3, sum.Distribution["Tea"], 1e-9)
	assert.InDelta(t, 0.2, sum.Distribution["Coffee"], 1e-9)
}

func TestMostLoggedDrinkTieBreaksAlphabetically(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	streaks := NewStreakService(db)
	intake := NewIntakeService(db, NewGoalService(db, streaks), nil)
	types := NewDrinkTypeService(db)
	stats := NewStatisticsService(db, streaks)

	addLog(t, intake, types, uid, "Tea", "2024-02-01", 9, 400)
	addLog(t, intake, types, uid, "Coffee", "2024-02-01", 10, 400)

	sum, err := stats.Summary(uid, "2024-02-01", "2024-02-07")
	require.NoError(t, err)
	assert.Equal(t, "Coffee", sum.MostLoggedDrink)
}

func TestEmptyPeriodYieldsZeroesNotError(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	streaks := NewStreakService(db)
	stats := NewStatisticsService(db, streaks)

	sum, err := stats.Summary(uid, "2024-02-01", "2024-02-07")
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum.TotalLiters)
	assert.Equal(t, 0.0, sum.AvgPerLoggedDay)
	assert.Equal(t, "", sum.MostLoggedDrink)
	assert.Empty(t, sum.Distribution)
	assert.Equal(t, 0, sum.LoggedDays)
	assert.EqualValues(t, 0, sum.AchievedDays)
}

func TestHourlyGroupsByHourAndDrink(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	streaks := NewStreakService(db)
	intake := NewIntakeService(db, NewGoalService(db, streaks), nil)
	types := NewDrinkTypeService(db)
	stats := NewStatisticsService(db, streaks)

	addLog(t, intake, types, uid, "Water", "2024-02-01", 8, 250)
	addLog(t, intake, types, uid, "Water", "2024-02-01", 8, 250)
	addLog(t, intake, types, uid, "Tea", "2024-02-01", 8, 200)
	addLog(t, intake, types, uid, "Water", "2024-02-01", 13, 500)

	rows, err := stats.Hourly(uid, "2024-02-01")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, HourlyConsumption{Hour: "08", DrinkName: "Tea", AmountML: 200}, rows[0])
	assert.Equal(t, HourlyConsumption{Hour: "08", DrinkName: "Water", AmountML: 500}, rows[1])
	assert.Equal(t, HourlyConsumption{Hour: "13", DrinkName: "Water", AmountML: 500}, rows[2])
}

func TestDailyByDrinkOrdering(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	streaks := NewStreakService(db)
	intake := NewIntakeService(db, NewGoalService(db, streaks), nil)
	types := NewDrinkTypeService(db)
	stats := NewStatisticsService(db, streaks)

	addLog(t, intake, types, uid, "Water", "2024-02-02", 9, 300)
	addLog(t, intake, types, uid, "Tea", "2024-02-01", 9, 200)
	addLog(t, intake, types, uid, "Water", "2024-02-01", 10, 400)

	rows, err := stats.DailyByDrink(uid, "2024-02-01", "2024-02-07")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "2024-02-01", rows[0].Date)
	assert.Equal(t, "Tea", rows[0].DrinkName)
	assert.Equal(t, "2024-02-01", rows[1].Date)
	assert.Equal(t, "Water", rows[1].DrinkName)
	assert.Equal(t, "2024-02-02", rows[2].Date)
}

func TestStatisticsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, 2000)
	bob := seedUser(t, db, 2000)
	streaks := NewStreakService(db)
	intake := NewIntakeService(db, NewGoalService(db, streaks), nil)
	types := NewDrinkTypeService(db)
	stats := NewStatisticsService(db, streaks)

	addLog(t, intake, types, alice, "Water", "2024-02-01", 9, 1000)

	sum, err := stats.Summary(bob, "2024-02-01", "2024-02-07")
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum.TotalLiters)
}

func TestPeriodRange(t *testing.T) {
	from, to, err := PeriodRange("weekly")
	require.NoError(t, err)
	assert.Equal(t, time.Now().AddDate(0, 0, -6).Format("2006-01-02"), from)
	assert.Equal(t, time.Now().Format("2006-01-02"), to)

	_, _, err = PeriodRange("hourly")
	assert.True(t, IsValidation(err))
}
