package repositories

import (
	"context"
	"fmt"

	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
)

// LogRepository writes error-log rows with GORM
type LogRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new log repository
func NewLogRepository(db *gorm.DB) *LogRepository {
	return &LogRepository{db: db}
}

// Insert writes one log row
func (r *LogRepository) Insert(ctx context.Context, entry *models.LogEntry) error {
	err := r.db.WithContext(ctx).Create(entry).Error
	if err != nil {
		return fmt.Errorf("failed to insert log entry: %w", err)
	}
	return nil
}
