package repositories

import (
	"context"
	"fmt"

	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LikeRepository manages support pairs with GORM
type LikeRepository struct {
	db *gorm.DB
}

// NewLikeRepository creates a new like repository
func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// InsertIfAbsent adds the support pair unless it already exists. Returns true
// when a row was inserted; false means the unique constraint ate the insert,
// i.e. the user already supported the party.
func (r *LikeRepository) InsertIfAbsent(ctx context.Context, userID, partyID string) (bool, error) {
	like := models.Like{UserID: userID, PartyID: partyID}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "party_id"}},
			DoNothing: true,
		}).
		Create(&like)

	if res.Error != nil {
		return false, fmt.Errorf("failed to insert like: %w", res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Delete removes the support pair
func (r *LikeRepository) Delete(ctx context.Context, userID, partyID string) error {
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND party_id = ?", userID, partyID).
		Delete(&models.Like{}).Error

	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

// CountByParty returns the support count for a single party
func (r *LikeRepository) CountByParty(ctx context.Context, partyID string) (int, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("party_id = ?", partyID).
		Count(&count).Error

	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return int(count), nil
}

// Exists reports whether the user supports the party
func (r *LikeRepository) Exists(ctx context.Context, userID, partyID string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.Like{}).
		Where("user_id = ? AND party_id = ?", userID, partyID).
		Count(&count).Error

	if err != nil {
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return count > 0, nil
}
