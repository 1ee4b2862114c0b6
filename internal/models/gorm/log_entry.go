package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LogEntry is the remote error-log row. Writes are best effort and never
// block the operation that produced them. UserID is nullable so that
// anonymous-path errors are recorded too.
type LogEntry struct {
	ID        string                 `gorm:"column:id;primaryKey;type:uuid"`
	UserID    *string                `gorm:"column:user_id;type:uuid"`
	Level     string                 `gorm:"column:level"`
	Message   string                 `gorm:"column:message"`
	Context   string                 `gorm:"column:context"`
	Metadata  map[string]interface{} `gorm:"column:metadata;serializer:json"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (LogEntry) TableName() string {
	return "logs"
}

func (e *LogEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	return nil
}
