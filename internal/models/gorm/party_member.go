package gorm

import (
	"time"

	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PartyRole struct {
	ID          string            `gorm:"column:id;primaryKey;type:uuid"`
	PartyID     string            `gorm:"column:party_id;type:uuid;uniqueIndex:idx_party_role_key"`
	RoleKey     constants.RoleKey `gorm:"column:role_key;uniqueIndex:idx_party_role_key"`
	Name        string            `gorm:"column:name"`
	Description string            `gorm:"column:description"`
}

// TableName specifies the table name for GORM
func (PartyRole) TableName() string {
	return "party_role"
}

func (r *PartyRole) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return nil
}

// PartyMember is the one entity with a lifecycle: rows are created pending,
// move to approved (gaining a role) or rejected, and may be deleted by the
// applicant while still pending. Uniqueness of (user_id, party_id) is a DB
// constraint; the conflict on insert is the only "already applied" signal.
type PartyMember struct {
	ID          string                 `gorm:"column:id;primaryKey;type:uuid"`
	UserID      string                 `gorm:"column:user_id;type:uuid;uniqueIndex:idx_member_user_party"`
	PartyID     string                 `gorm:"column:party_id;type:uuid;uniqueIndex:idx_member_user_party"`
	PartyRoleID *string                `gorm:"column:party_role_id;type:uuid"`
	Status      constants.MemberStatus `gorm:"column:status"`
	CreatedAt   time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time              `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	User  UserProfile `gorm:"foreignKey:UserID"`
	Party Party       `gorm:"foreignKey:PartyID"`
	Role  *PartyRole  `gorm:"foreignKey:PartyRoleID"`
}

// TableName specifies the table name for GORM
func (PartyMember) TableName() string {
	return "party_member"
}

func (m *PartyMember) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}
