package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DateLayout is the fixed-width calendar-day format intakes are keyed by.
// String ordering of this layout matches chronological ordering, which the
// date-descending list query relies on.
const DateLayout = "2006-01-02"

// Intake is one user's intake entry for one calendar day. The composite
// unique index enforces at most one entry per (user, day) at the storage
// level; a violated insert surfaces as gorm.ErrDuplicatedKey.
type Intake struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_intakes_user_date" json:"user_id"`
	Quantity  float64   `gorm:"not null" json:"quantity"`
	EntryDate string    `gorm:"size:10;not null;uniqueIndex:idx_intakes_user_date" json:"entry_date"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `gorm:"foreignKey:UserID" json:"-"`
}

// OwnedBy returns a GORM scope restricting a query to one user's rows.
// Every intake query goes through it; cross-user access is impossible even
// with a guessed id.
func OwnedBy(userID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}
