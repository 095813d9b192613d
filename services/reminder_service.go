package services

import (
	"sync"
	"time"

	"github.com/Mourad-Gh-code/HydrationTime/models"
)

// ReminderTime is one entry of the schedule handed to the collaborator.
type ReminderTime struct {
	Hour   int  `json:"hour"`
	Minute int  `json:"minute"`
	Active bool `json:"active"`
}

// ReminderScheduler owns actual timing and delivery. The core only computes
// the schedule and hands it over.
type ReminderScheduler interface {
	Schedule(userID string, times []ReminderTime) error
	CancelAll(userID string) error
}

// ReminderService turns the user's notification preferences into a concrete
// schedule for the collaborator.
type ReminderService struct {
	prefs     *PreferencesService
	scheduler ReminderScheduler
}

func NewReminderService(prefs *PreferencesService, scheduler ReminderScheduler) *ReminderService {
	return &ReminderService{prefs: prefs, scheduler: scheduler}
}

// BuildTimes expands the preferences into reminder slots: one every interval
// within [StartTime, EndTime] inclusive. Disabled notifications yield an
// empty schedule.
func BuildTimes(p *models.UserPreferences) ([]ReminderTime, error) {
	if !p.NotificationsEnabled {
		return nil, nil
	}
	if p.NotificationIntervalMinutes <= 0 {
		return nil, validationErr("notification interval must be positive")
	}

	start, err := time.Parse("15:04", p.StartTime)
	if err != nil {
		return nil, validationErr("invalid start time, expected HH:MM")
	}
	end, err := time.Parse("15:04", p.EndTime)
	if err != nil {
		return nil, validationErr("invalid end time, expected HH:MM")
	}
	if end.Before(start) {
		return nil, validationErr("end time must not be before start time")
	}

	var times []ReminderTime
	for t := start; !t.After(end); t = t.Add(time.Duration(p.NotificationIntervalMinutes) * time.Minute) {
		times = append(times, ReminderTime{Hour: t.Hour(), Minute: t.Minute(), Active: true})
	}
	return times, nil
}

// ScheduleForUser recomputes and replaces the user's reminders.
func (s *ReminderService) ScheduleForUser(userID string) ([]ReminderTime, error) {
	p, err := s.prefs.Get(userID)
	if err != nil {
		return nil, err
	}
	times, err := BuildTimes(p)
	if err != nil {
		return nil, err
	}

	if err := s.scheduler.CancelAll(userID); err != nil {
		return nil, err
	}
	if len(times) == 0 {
		return nil, nil
	}
	if err := s.scheduler.Schedule(userID, times); err != nil {
		return nil, err
	}
	return times, nil
}

// CancelForUser drops every pending reminder.
func (s *ReminderService) CancelForUser(userID string) error {
	return s.scheduler.CancelAll(userID)
}

// LocalScheduler is the in-process collaborator: it fires reminders through
// the notification service while the server runs. A mobile deployment would
// hand the same schedule to the platform's background scheduler instead.
type LocalScheduler struct {
	notifications *NotificationService

	mu    sync.Mutex
	stops map[string]chan struct{}
}

func NewLocalScheduler(notifications *NotificationService) *LocalScheduler {
	return &LocalScheduler{notifications: notifications, stops: make(map[string]chan struct{})}
}

func (l *LocalScheduler) Schedule(userID string, times []ReminderTime) error {
	_ = l.CancelAll(userID)

	stop := make(chan struct{})
	l.mu.Lock()
	l.stops[userID] = stop
	l.mu.Unlock()

	go l.run(userID, times, stop)
	return nil
}

func (l *LocalScheduler) CancelAll(userID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if stop, ok := l.stops[userID]; ok {
		close(stop)
		delete(l.stops, userID)
	}
	return nil
}

func (l *LocalScheduler) run(userID string, times []ReminderTime, stop chan struct{}) {
	for {
		wait := untilNext(time.Now(), times)
		select {
		case <-time.After(wait):
			_ = l.notifications.Emit(userID, "Time to hydrate!", "Drink a glass of water to stay on track with your goal.")
		case <-stop:
			return
		}
	}
}

// untilNext returns the duration until the next active slot after now,
// rolling over to the first slot tomorrow when today's are exhausted.
func untilNext(now time.Time, times []ReminderTime) time.Duration {
	var best time.Duration
	found := false
	for _, rt := range times {
		if !rt.Active {
			continue
		}
		next := time.Date(now.Year(), now.Month(), now.Day(), rt.Hour, rt.Minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		d := next.Sub(now)
		if !found || d < best {
			best = d
			found = true
		}
	}
	if !found {
		return 24 * time.Hour
	}
	return best
}
