package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/hydrolog/hydrolog-backend/internal/config"
	"github.com/hydrolog/hydrolog-backend/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database per test, migrated with the
// same unique indexes the production schema carries.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Intake{},
	))

	return db
}

func testConfig() *config.Config {
	return &config.Config{SessionExpiry: time.Hour}
}
