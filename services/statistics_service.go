package services

import (
	"math"
	"sort"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"
	"github.com/Mourad-Gh-code/HydrationTime/utils"

	"gorm.io/gorm"
)

type StatisticsService struct {
	db      *gorm.DB
	streaks *StreakService
}

func NewStatisticsService(db *gorm.DB, streaks *StreakService) *StatisticsService {
	return &StatisticsService{db: db, streaks: streaks}
}

// HourlyConsumption is one (hour, drink) bucket of a single day.
type HourlyConsumption struct {
	Hour      string  `json:"hour"` // "00".."23"
	DrinkName string  `json:"drink_name"`
	AmountML  float64 `json:"amount_ml"`
}

// DailyDrinkAmount is one (day, drink) bucket of a range.
type DailyDrinkAmount struct {
	Date      string  `json:"date"`
	DrinkName string  `json:"drink_name"`
	AmountML  float64 `json:"amount_ml"`
}

// DrinkAmount is the per-drink total over a range.
type DrinkAmount struct {
	DrinkName string  `json:"drink_name"`
	AmountML  float64 `json:"amount_ml"`
}

// StatisticsSummary is the roll-up for a reporting period.
type StatisticsSummary struct {
	From            string             `json:"from"`
	To              string             `json:"to"`
	TotalLiters     float64            `json:"total_liters"`
	AvgPerLoggedDay float64            `json:"avg_per_logged_day"`
	MostLoggedDrink string             `json:"most_logged_drink"`
	Distribution    map[string]float64 `json:"distribution"` // per-drink share of total, 0..1
	LoggedDays      int                `json:"logged_days"`
	AchievedDays    int64              `json:"achieved_days"`
}

// PeriodRange maps a preset period name onto inclusive date bounds ending
// today.
func PeriodRange(period string) (from, to string, err error) {
	to = utils.TodayDate()
	switch period {
	case "daily":
		from = to
	case "weekly":
		from = utils.DateDaysAgo(6)
	case "monthly":
		from = utils.DateDaysAgo(29)
	case "yearly":
		from = utils.DateDaysAgo(364)
	default:
		return "", "", validationErr("period must be daily, weekly, monthly or yearly")
	}
	return from, to, nil
}

// Hourly groups one day's typed entries by hour and drink. Hours with no
// entries are absent from the result.
func (s *StatisticsService) Hourly(userID, date string) ([]HourlyConsumption, error) {
	var logs []models.ConsumptionLog
	err := s.db.
		Where("user_id = ? AND date = ?", userID, date).
		Order("timestamp ASC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}

	type bucket struct{ hour, drink string }
	sums := make(map[bucket]float64)
	for _, l := range logs {
		h := l.Timestamp.In(time.Local).Format("15")
		sums[bucket{h, l.DrinkName}] += l.AmountML
	}

	out := make([]HourlyConsumption, 0, len(sums))
	for b, amount := range sums {
		out = append(out, HourlyConsumption{Hour: b.hour, DrinkName: b.drink, AmountML: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hour != out[j].Hour {
			return out[i].Hour < out[j].Hour
		}
		return out[i].DrinkName < out[j].DrinkName
	})
	return out, nil
}

// DailyByDrink sums amounts per (day, drink) within [from, to], oldest day
// first.
func (s *StatisticsService) DailyByDrink(userID, from, to string) ([]DailyDrinkAmount, error) {
	var rows []DailyDrinkAmount
	err := s.db.Model(&models.ConsumptionLog{}).
		Select("date, drink_name, SUM(amount_ml) AS amount_ml").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Group("date, drink_name").
		Order("date ASC, drink_name ASC").
		Scan(&rows).Error
	return rows, err
}

// Distribution sums amounts per drink within [from, to].
func (s *StatisticsService) Distribution(userID, from, to string) ([]DrinkAmount, error) {
	var rows []DrinkAmount
	err := s.db.Model(&models.ConsumptionLog{}).
		Select("drink_name, SUM(amount_ml) AS amount_ml").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Group("drink_name").
		Order("drink_name ASC").
		Scan(&rows).Error
	return rows, err
}

// Summary computes the period roll-up. Average-per-logged-day divides by the
// count of days that have at least one entry; empty days are excluded from
// the denominator. An empty period yields zeros, never an error.
func (s *StatisticsService) Summary(userID, from, to string) (*StatisticsSummary, error) {
	dist, err := s.Distribution(userID, from, to)
	if err != nil {
		return nil, err
	}

	var totalML float64
	for _, d := range dist {
		totalML += d.AmountML
	}

	var loggedDates []string
	err = s.db.Model(&models.ConsumptionLog{}).
		Distinct("date").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Pluck("date", &loggedDates).Error
	if err != nil {
		return nil, err
	}

	totalL := totalML / 1000
	avg := 0.0
	if len(loggedDates) > 0 {
		avg = totalL / float64(len(loggedDates))
	}

	// largest summed amount wins; exact ties resolve alphabetically since the
	// rows arrive sorted by name
	most := ""
	var best float64
	for _, d := range dist {
		if d.AmountML > best {
			best = d.AmountML
			most = d.DrinkName
		}
	}

	shares := make(map[string]float64, len(dist))
	for _, d := range dist {
		if totalML > 0 {
			shares[d.DrinkName] = d.AmountML / totalML
		} else {
			shares[d.DrinkName] = 0
		}
	}

	achieved, err := s.streaks.AchievedCount(userID, from, to)
	if err != nil {
		return nil, err
	}

	return &StatisticsSummary{
		From:            from,
		To:              to,
		TotalLiters:     round2(totalL),
		AvgPerLoggedDay: round2(avg),
		MostLoggedDrink: most,
		Distribution:    shares,
		LoggedDays:      len(loggedDates),
		AchievedDays:    achieved,
	}, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
