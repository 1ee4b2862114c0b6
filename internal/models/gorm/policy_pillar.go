package gorm

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PolicyPillar struct {
	ID      string `gorm:"column:id;primaryKey;type:uuid"`
	PartyID string `gorm:"column:party_id;type:uuid;index"`
	Content string `gorm:"column:content"`
}

// TableName specifies the table name for GORM
func (PolicyPillar) TableName() string {
	return "policy_pillar"
}

func (p *PolicyPillar) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
