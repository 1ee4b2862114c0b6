package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like is a (user, party) support pair. Existence is the whole payload;
// the unique index makes repeated inserts conflict instead of duplicating.
type Like struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id;type:uuid;uniqueIndex:idx_like_user_party"`
	PartyID   string    `gorm:"column:party_id;type:uuid;uniqueIndex:idx_like_user_party"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for GORM
func (Like) TableName() string {
	return "likes"
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}
