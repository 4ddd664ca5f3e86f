package services

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/hydrolog/hydrolog-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedIntake(t *testing.T, db *gorm.DB, userID uuid.UUID, date string, quantity float64) models.Intake {
	t.Helper()
	intake := models.Intake{
		ID:        uuid.New(),
		UserID:    userID,
		Quantity:  quantity,
		EntryDate: date,
	}
	require.NoError(t, db.Create(&intake).Error)
	return intake
}

func TestAddDaily(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()

	intake, err := svc.AddDaily(userID, 2)
	require.NoError(t, err)
	assert.Equal(t, Today(), intake.EntryDate)
	assert.Equal(t, 2.0, intake.Quantity)
}

func TestAddDaily_DuplicateDay(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()

	_, err := svc.AddDaily(userID, 2)
	require.NoError(t, err)

	_, err = svc.AddDaily(userID, 3)
	assert.ErrorIs(t, err, ErrDuplicateEntry)

	var count int64
	db.Model(&models.Intake{}).Where("user_id = ?", userID).Count(&count)
	assert.EqualValues(t, 1, count, "store must still hold exactly one record for today")

	// a different user is free to log the same day
	_, err = svc.AddDaily(uuid.New(), 3)
	assert.NoError(t, err)
}

func TestAddDaily_InvalidQuantity(t *testing.T) {
	svc := NewIntakeService(newTestDB(t))

	_, err := svc.AddDaily(uuid.New(), math.NaN())
	assert.ErrorIs(t, err, ErrInvalidQuantity)
	_, err = svc.AddDaily(uuid.New(), math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestList_Pagination(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()

	for day := 1; day <= 7; day++ {
		seedIntake(t, db, userID, fmt.Sprintf("2024-03-%02d", day), float64(day))
	}

	intakes, page, totalPages, err := svc.List(userID, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Equal(t, 2, totalPages)
	require.Len(t, intakes, 5)
	assert.Equal(t, "2024-03-07", intakes[0].EntryDate, "newest date first")
	assert.Equal(t, "2024-03-03", intakes[4].EntryDate)

	intakes, page, totalPages, err = svc.List(userID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, page)
	assert.Equal(t, 2, totalPages)
	require.Len(t, intakes, 2)
	assert.Equal(t, "2024-03-02", intakes[0].EntryDate)
	assert.Equal(t, "2024-03-01", intakes[1].EntryDate)
}

func TestList_PageFallbacks(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()
	seedIntake(t, db, userID, "2024-03-01", 1)

	// non-positive pages are served as page 1
	intakes, page, _, err := svc.List(userID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Len(t, intakes, 1)

	intakes, page, _, err = svc.List(userID, -3)
	require.NoError(t, err)
	assert.Equal(t, 1, page)
	assert.Len(t, intakes, 1)

	// out-of-range page is empty, not an error
	intakes, _, totalPages, err := svc.List(userID, 99)
	require.NoError(t, err)
	assert.Empty(t, intakes)
	assert.Equal(t, 1, totalPages)
}

func TestList_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	alice, bob := uuid.New(), uuid.New()
	seedIntake(t, db, alice, "2024-03-01", 1)
	seedIntake(t, db, bob, "2024-03-02", 2)

	intakes, _, totalPages, err := svc.List(alice, 1)
	require.NoError(t, err)
	require.Len(t, intakes, 1)
	assert.Equal(t, alice, intakes[0].UserID)
	assert.Equal(t, 1, totalPages)
}

func TestGetForEdit(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()
	seeded := seedIntake(t, db, userID, "2024-03-01", 2)

	intake, err := svc.GetForEdit(userID, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.ID, intake.ID)

	_, err = svc.GetForEdit(userID, uuid.New())
	assert.ErrorIs(t, err, ErrIntakeNotFound)
}

func TestGetForEdit_WrongOwnerLooksNonexistent(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	alice, bob := uuid.New(), uuid.New()
	seeded := seedIntake(t, db, alice, "2024-03-01", 2)

	_, err := svc.GetForEdit(bob, seeded.ID)
	assert.ErrorIs(t, err, ErrIntakeNotFound)
}

func TestEdit(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()
	seeded := seedIntake(t, db, userID, "2024-03-01", 2)

	require.NoError(t, svc.Edit(userID, seeded.ID, 5))

	var updated models.Intake
	require.NoError(t, db.First(&updated, "id = ?", seeded.ID).Error)
	assert.Equal(t, 5.0, updated.Quantity)
	assert.Equal(t, "2024-03-01", updated.EntryDate, "date is immutable")
	assert.Equal(t, userID, updated.UserID, "owner is immutable")
}

func TestEdit_OwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	alice, bob := uuid.New(), uuid.New()
	seeded := seedIntake(t, db, alice, "2024-03-01", 2)

	err := svc.Edit(bob, seeded.ID, 99)
	assert.ErrorIs(t, err, ErrIntakeNotFound)

	var stored models.Intake
	require.NoError(t, db.First(&stored, "id = ?", seeded.ID).Error)
	assert.Equal(t, 2.0, stored.Quantity, "no cross-user mutation")
}

func TestDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()
	seeded := seedIntake(t, db, userID, "2024-03-01", 2)

	require.NoError(t, svc.Delete(userID, seeded.ID))

	err := db.First(&models.Intake{}, "id = ?", seeded.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(userID, seeded.ID), ErrIntakeNotFound)
}

func TestDelete_OwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	alice, bob := uuid.New(), uuid.New()
	seeded := seedIntake(t, db, alice, "2024-03-01", 2)

	assert.ErrorIs(t, svc.Delete(bob, seeded.ID), ErrIntakeNotFound)

	require.NoError(t, db.First(&models.Intake{}, "id = ?", seeded.ID).Error)
}

func TestDifference_SignFollowsArgumentOrder(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()
	seedIntake(t, db, userID, "2024-01-01", 10)
	seedIntake(t, db, userID, "2024-01-05", 14)

	diff, message, err := svc.Difference(userID, "2024-01-01", "2024-01-05")
	require.NoError(t, err)
	assert.Equal(t, 4.0, diff)
	assert.Equal(t, "Difference between 2024-01-05 and 2024-01-01: 4 liters", message)

	diff, _, err = svc.Difference(userID, "2024-01-05", "2024-01-01")
	require.NoError(t, err)
	assert.Equal(t, -4.0, diff)
}

func TestDifference_Failures(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	userID := uuid.New()
	seedIntake(t, db, userID, "2024-01-01", 10)

	_, _, err := svc.Difference(userID, "", "2024-01-01")
	assert.ErrorIs(t, err, ErrMissingDates)
	_, _, err = svc.Difference(userID, "2024-01-01", "")
	assert.ErrorIs(t, err, ErrMissingDates)

	_, _, err = svc.Difference(userID, "01/01/2024", "2024-01-01")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = svc.Difference(userID, "2024-01-01", "2024-01-02")
	assert.ErrorIs(t, err, ErrNoDataForDate)
}

func TestDifference_ScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewIntakeService(db)
	alice, bob := uuid.New(), uuid.New()
	seedIntake(t, db, alice, "2024-01-01", 10)
	seedIntake(t, db, alice, "2024-01-05", 14)

	_, _, err := svc.Difference(bob, "2024-01-01", "2024-01-05")
	assert.ErrorIs(t, err, ErrNoDataForDate)
}
