package services

import (
	"log/slog"
	"time"

	"github.com/hydrolog/hydrolog-backend/internal/models"
	"gorm.io/gorm"
)

// StartSessionPurge runs an hourly goroutine that deletes expired sessions.
// The gate already refuses expired sessions; this just keeps the table from
// growing without bound.
func StartSessionPurge(db *gorm.DB, done chan struct{}) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				result := db.Where("expires_at < ?", time.Now()).Delete(&models.Session{})
				if result.Error != nil {
					slog.Error("session purge failed", "error", result.Error)
				} else if result.RowsAffected > 0 {
					slog.Info("session purge completed", "deleted", result.RowsAffected)
				}
			case <-done:
				return
			}
		}
	}()
}
