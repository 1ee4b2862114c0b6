package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Party struct {
	ID            string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID        string    `gorm:"column:user_id;type:uuid;index"`
	Name          string    `gorm:"column:name"`
	Slogan        *string   `gorm:"column:slogan"`
	Ideology      string    `gorm:"column:ideology"`
	LogoURL       *string   `gorm:"column:logo_url"`
	FoundedAt     *string   `gorm:"column:founded_at"`
	LeaderName    *string   `gorm:"column:leader_name"`
	Location      *string   `gorm:"column:location"`
	ActivityArea  *string   `gorm:"column:activity_area"`
	Website       *string   `gorm:"column:website"`
	ContactEmail  *string   `gorm:"column:contact_email"`
	Activities    *string   `gorm:"column:activities"`
	ActivitiesURL *string   `gorm:"column:activities_url"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Owner   UserProfile   `gorm:"foreignKey:UserID"`
	Tags    []Tag         `gorm:"many2many:party_tag"`
	Roles   []PartyRole   `gorm:"foreignKey:PartyID"`
	Members []PartyMember `gorm:"foreignKey:PartyID"`
}

// TableName specifies the table name for GORM
func (Party) TableName() string {
	return "party"
}

func (p *Party) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
