package services

import (
	"testing"

	"github.com/Mourad-Gh-code/HydrationTime/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSeedDefaultsIsIdempotent seeds twice and expects the catalog once.
func TestSeedDefaultsIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000) // seedUser already inserts the predefined set
	svc := NewDrinkTypeService(db)

	require.NoError(t, svc.SeedDefaults(uid))

	types, err := svc.List(uid)
	require.NoError(t, err)
	assert.Len(t, types, len(models.PredefinedDrinkTypes(uid)))
}

// TestListOrdersPredefinedFirst puts the built-in drinks before custom ones.
func TestListOrdersPredefinedFirst(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	svc := NewDrinkTypeService(db)

	_, err := svc.Create(uid, "Aloe Water", "#00AA00", "leaf", 180)
	require.NoError(t, err)

	types, err := svc.List(uid)
	require.NoError(t, err)
	require.NotEmpty(t, types)
	assert.False(t, types[0].IsCustom)
	assert.Equal(t, "Aloe Water", types[len(types)-1].Name)
	assert.True(t, types[len(types)-1].IsCustom)
}

func TestCreateRejectsDuplicateName(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	svc := NewDrinkTypeService(db)

	// case-insensitive clash with the predefined "Water"
	_, err := svc.Create(uid, "water", "#123456", "drop", 100)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	_, err = svc.Create(uid, "Kombucha", "#AA5500", "bottle", 0)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

func TestUpdateRenamesAndKeepsUniqueness(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	svc := NewDrinkTypeService(db)

	dt, err := svc.Create(uid, "Kombucha", "#AA5500", "bottle", 200)
	require.NoError(t, err)

	updated, err := svc.Update(uid, dt.ID, "Ginger Kombucha", "", "", 250)
	require.NoError(t, err)
	assert.Equal(t, "Ginger Kombucha", updated.Name)
	assert.Equal(t, "#AA5500", updated.Color)
	assert.Equal(t, 250.0, updated.DefaultAmountML)

	_, err = svc.Update(uid, dt.ID, "Tea", "", "", 0)
	require.Error(t, err)
	assert.True(t, IsValidation(err))
}

// TestDeleteKeepsLogSnapshots removes a drink type and expects its past logs
// to keep the recorded name and color.
func TestDeleteKeepsLogSnapshots(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	drinks := NewDrinkTypeService(db)
	goals := NewGoalService(db, NewStreakService(db))
	intakes := NewIntakeService(db, goals, nil)

	dt, err := drinks.Create(uid, "Kombucha", "#AA5500", "bottle", 200)
	require.NoError(t, err)

	logEntry, err := intakes.LogDrink(uid, dt.ID, 200, at("2025-03-10", 9))
	require.NoError(t, err)

	require.NoError(t, drinks.Delete(uid, dt.ID))

	var kept models.ConsumptionLog
	require.NoError(t, db.First(&kept, logEntry.ID).Error)
	assert.Equal(t, "Kombucha", kept.DrinkName)
	assert.Equal(t, "#AA5500", kept.Color)
}

func TestDeleteEnforcesOwnership(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, 2000)
	bob := seedUser(t, db, 2000)
	svc := NewDrinkTypeService(db)

	dt, err := svc.Create(alice, "Kombucha", "#AA5500", "bottle", 200)
	require.NoError(t, err)

	err = svc.Delete(bob, dt.ID)
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	got, err := svc.GetByID(alice, dt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kombucha", got.Name)
}

// TestDeleteAllCustomKeepsPredefined clears user additions only.
func TestDeleteAllCustomKeepsPredefined(t *testing.T) {
	db := newTestDB(t)
	uid := seedUser(t, db, 2000)
	svc := NewDrinkTypeService(db)

	_, err := svc.Create(uid, "Kombucha", "#AA5500", "bottle", 200)
	require.NoError(t, err)
	_, err = svc.Create(uid, "Lemonade", "#FFEE00", "glass", 250)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteAllCustom(uid))

	types, err := svc.List(uid)
	require.NoError(t, err)
	assert.Len(t, types, len(models.PredefinedDrinkTypes(uid)))
	for _, dt := range types {
		assert.False(t, dt.IsCustom)
	}
}
