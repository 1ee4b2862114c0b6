package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tag struct {
	ID       string  `gorm:"column:id;primaryKey;type:uuid"`
	Name     string  `gorm:"column:name;uniqueIndex"`
	Category *string `gorm:"column:category"`
}

// TableName specifies the table name for GORM
func (Tag) TableName() string {
	return "tag"
}

func (t *Tag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
