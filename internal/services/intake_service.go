package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/hydrolog/hydrolog-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrDuplicateEntry  = errors.New("entry for today already exists")
	ErrInvalidQuantity = errors.New("quantity must be a number")
	// ErrIntakeNotFound covers both a nonexistent id and an id owned by
	// someone else, so ownership violations never leak existence.
	ErrIntakeNotFound = errors.New("intake entry not found")
	ErrMissingDates   = errors.New("both dates are required")
	ErrInvalidDate    = errors.New("dates must be in YYYY-MM-DD format")
	ErrNoDataForDate  = errors.New("no intake found for one or both selected dates")
)

// PageSize is the fixed page size for intake listings.
const PageSize = 5

// IntakeService owns the daily-intake workflow. Every query it issues is
// scoped by the authenticated user id passed in by the caller.
type IntakeService struct {
	db *gorm.DB
}

func NewIntakeService(db *gorm.DB) *IntakeService {
	return &IntakeService{db: db}
}

// Today returns the current calendar day on the server clock, in UTC.
// UTC is the deployment policy here: the day boundary that decides the
// one-entry-per-day rule must not move with server timezone changes.
func Today() string {
	return time.Now().UTC().Format(models.DateLayout)
}

// AddDaily records today's entry for the user. The (user_id, entry_date)
// unique index is the duplicate check; a second insert for the same day
// comes back as ErrDuplicateEntry.
func (s *IntakeService) AddDaily(userID uuid.UUID, quantity float64) (*models.Intake, error) {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return nil, ErrInvalidQuantity
	}

	intake := models.Intake{
		ID:        uuid.New(),
		UserID:    userID,
		Quantity:  quantity,
		EntryDate: Today(),
	}

	if err := s.db.Create(&intake).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateEntry
		}
		return nil, fmt.Errorf("failed to create intake: %w", err)
	}

	return &intake, nil
}

// List returns one page of the user's entries, newest date first, along with
// the page actually served and the total page count. Non-positive pages are
// treated as page 1; an out-of-range page yields an empty list, not an error.
func (s *IntakeService) List(userID uuid.UUID, page int) ([]models.Intake, int, int, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := s.db.Model(&models.Intake{}).Scopes(models.OwnedBy(userID)).Count(&total).Error; err != nil {
		return nil, 0, 0, fmt.Errorf("failed to count intakes: %w", err)
	}

	var intakes []models.Intake
	err := s.db.Scopes(models.OwnedBy(userID)).
		Order("entry_date DESC").
		Offset((page - 1) * PageSize).
		Limit(PageSize).
		Find(&intakes).Error
	if err != nil {
		return nil, 0, 0, fmt.Errorf("failed to list intakes: %w", err)
	}

	totalPages := int((total + PageSize - 1) / PageSize)
	return intakes, page, totalPages, nil
}

// GetForEdit fetches one entry scoped by owner.
func (s *IntakeService) GetForEdit(userID, intakeID uuid.UUID) (*models.Intake, error) {
	var intake models.Intake
	err := s.db.Scopes(models.OwnedBy(userID)).First(&intake, "id = ?", intakeID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIntakeNotFound
		}
		return nil, fmt.Errorf("failed to fetch intake: %w", err)
	}
	return &intake, nil
}

// Edit updates the quantity of an owned entry. Date and owner are immutable.
func (s *IntakeService) Edit(userID, intakeID uuid.UUID, quantity float64) error {
	if math.IsNaN(quantity) || math.IsInf(quantity, 0) {
		return ErrInvalidQuantity
	}

	result := s.db.Model(&models.Intake{}).
		Scopes(models.OwnedBy(userID)).
		Where("id = ?", intakeID).
		Update("quantity", quantity)
	if result.Error != nil {
		return fmt.Errorf("failed to update intake: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIntakeNotFound
	}
	return nil
}

// Delete removes an owned entry.
func (s *IntakeService) Delete(userID, intakeID uuid.UUID) error {
	result := s.db.Scopes(models.OwnedBy(userID)).Delete(&models.Intake{}, "id = ?", intakeID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete intake: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrIntakeNotFound
	}
	return nil
}

// Difference returns quantity(to) - quantity(from) for the user's entries on
// the two dates. The sign follows the caller's argument order; from > to is
// allowed and simply negates the result.
func (s *IntakeService) Difference(userID uuid.UUID, from, to string) (float64, string, error) {
	if from == "" || to == "" {
		return 0, "", ErrMissingDates
	}
	if _, err := time.Parse(models.DateLayout, from); err != nil {
		return 0, "", ErrInvalidDate
	}
	if _, err := time.Parse(models.DateLayout, to); err != nil {
		return 0, "", ErrInvalidDate
	}

	fromIntake, err := s.findByDate(userID, from)
	if err != nil {
		return 0, "", err
	}
	toIntake, err := s.findByDate(userID, to)
	if err != nil {
		return 0, "", err
	}

	difference := toIntake.Quantity - fromIntake.Quantity
	message := fmt.Sprintf("Difference between %s and %s: %g liters", to, from, difference)
	return difference, message, nil
}

func (s *IntakeService) findByDate(userID uuid.UUID, date string) (*models.Intake, error) {
	var intake models.Intake
	err := s.db.Scopes(models.OwnedBy(userID)).Where("entry_date = ?", date).First(&intake).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoDataForDate
		}
		return nil, fmt.Errorf("failed to fetch intake for %s: %w", date, err)
	}
	return &intake, nil
}
