package services

import (
	"testing"

	"github.com/Mourad-Gh-code/HydrationTime/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorderScheduler captures calls so tests can assert the handover without
// running timers.
type recorderScheduler struct {
	scheduled map[string][]ReminderTime
	cancelled []string
}

func newRecorderScheduler() *recorderScheduler {
	return &recorderScheduler{scheduled: make(map[string][]ReminderTime)}
}

func (r *recorderScheduler) Schedule(userID string, times []ReminderTime) error {
	r.scheduled[userID] = times
	return nil
}

func (r *recorderScheduler) CancelAll(userID string) error {
	r.cancelled = append(r.cancelled, userID)
	delete(r.scheduled, userID)
	return nil
}

// TestBuildTimesExpandsWindow steps through the notification window at the
// configured interval, both ends inclusive.
func TestBuildTimesExpandsWindow(t *testing.T) {
	prefs := models.DefaultPreferences("u1") // 08:00..22:00 every 60 minutes

	times, err := BuildTimes(&prefs)
	require.NoError(t, err)
	require.Len(t, times, 15)
	assert.Equal(t, ReminderTime{Hour: 8, Minute: 0, Active: true}, times[0])
	assert.Equal(t, ReminderTime{Hour: 22, Minute: 0, Active: true}, times[14])
}

func TestBuildTimesUnevenInterval(t *testing.T) {
	prefs := models.DefaultPreferences("u1")
	prefs.StartTime = "09:00"
	prefs.EndTime = "11:30"
	prefs.NotificationIntervalMinutes = 45

	times, err := BuildTimes(&prefs)
	require.NoError(t, err)
	// 09:00, 09:45, 10:30, 11:15; 12:00 falls outside the window
	require.Len(t, times, 4)
	assert.Equal(t, ReminderTime{Hour: 11, Minute: 15, Active: true}, times[3])
}

func TestBuildTimesDisabledYieldsNone(t *testing.T) {
	prefs := models.DefaultPreferences("u1")
	prefs.NotificationsEnabled = false

	times, err := BuildTimes(&prefs)
	require.NoError(t, err)
	assert.Empty(t, times)
}

func TestBuildTimesRejectsInvertedWindow(t *testing.T) {
	prefs := models.DefaultPreferences("u1")
	prefs.StartTime = "22:00"
	prefs.EndTime = "08:00"

	_, err := BuildTimes(&prefs)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

// TestScheduleForUserReplacesExisting cancels before handing over the new
// schedule, so repeat calls never stack reminders.
func TestScheduleForUserReplacesExisting(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	rec := newRecorderScheduler()
	svc := NewReminderService(NewPreferencesService(db), rec)

	times, err := svc.ScheduleForUser(uid)
	require.NoError(t, err)
	assert.Len(t, times, 15)
	assert.Equal(t, []string{uid}, rec.cancelled)
	assert.Len(t, rec.scheduled[uid], 15)

	_, err = svc.ScheduleForUser(uid)
	require.NoError(t, err)
	assert.Equal(t, []string{uid, uid}, rec.cancelled)
	assert.Len(t, rec.scheduled[uid], 15)
}

// TestScheduleForUserDisabledOnlyCancels hands nothing over when the user
// turned notifications off.
func TestScheduleForUserDisabledOnlyCancels(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	prefs := NewPreferencesService(db)
	require.NoError(t, prefs.SetNotificationsEnabled(uid, false))

	rec := newRecorderScheduler()
	svc := NewReminderService(prefs, rec)

	times, err := svc.ScheduleForUser(uid)
	require.NoError(t, err)
	assert.Empty(t, times)
	assert.Equal(t, []string{uid}, rec.cancelled)
	assert.Empty(t, rec.scheduled[uid])
}

func TestCancelForUser(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	rec := newRecorderScheduler()
	svc := NewReminderService(NewPreferencesService(db), rec)

	_, err := svc.ScheduleForUser(uid)
	require.NoError(t, err)
	require.NoError(t, svc.CancelForUser(uid))
	assert.Empty(t, rec.scheduled[uid])
}
