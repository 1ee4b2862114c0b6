package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserProfile struct {
	ID           string    `gorm:"column:id;primaryKey;type:uuid"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Name         string    `gorm:"column:name"`
	Bio          *string   `gorm:"column:bio"`
	AvatarURL    *string   `gorm:"column:avatar_url"`
	Birthplace   *string   `gorm:"column:birthplace"`
	Birthday     *string   `gorm:"column:birthday"`
	XURL         *string   `gorm:"column:x_url"`
	WebsiteURL   *string   `gorm:"column:website_url"`
	IsPublic     bool      `gorm:"column:is_public;default:false"`
	Interests    []string  `gorm:"column:interests;serializer:json"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Memberships []PartyMember `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for GORM
func (UserProfile) TableName() string {
	return "user_profile"
}

func (u *UserProfile) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
