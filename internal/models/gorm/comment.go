package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	PartyID   string    `gorm:"column:party_id;type:uuid;index"`
	UserID    string    `gorm:"column:user_id;type:uuid"`
	Content   string    `gorm:"column:content"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Author UserProfile `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (Comment) TableName() string {
	return "comment"
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
