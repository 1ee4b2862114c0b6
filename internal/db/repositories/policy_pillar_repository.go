package repositories

import (
	"context"
	"errors"
	"fmt"

	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
)

var ErrPillarNotFound = errors.New("policy pillar not found")

// PolicyPillarRepository manages policy pillar rows with GORM
type PolicyPillarRepository struct {
	db *gorm.DB
}

// NewPolicyPillarRepository creates a new policy pillar repository
func NewPolicyPillarRepository(db *gorm.DB) *PolicyPillarRepository {
	return &PolicyPillarRepository{db: db}
}

// Create inserts a pillar
func (r *PolicyPillarRepository) Create(ctx context.Context, pillar *models.PolicyPillar) error {
	err := r.db.WithContext(ctx).Create(pillar).Error
	if err != nil {
		return fmt.Errorf("failed to create policy pillar: %w", err)
	}
	return nil
}

// ListByParty retrieves a party's pillars
func (r *PolicyPillarRepository) ListByParty(ctx context.Context, partyID string) ([]models.PolicyPillar, error) {
	var pillars []models.PolicyPillar

	err := r.db.WithContext(ctx).
		Where("party_id = ?", partyID).
		Find(&pillars).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch policy pillars: %w", err)
	}

	return pillars, nil
}

// UpdateContent edits a pillar scoped to its party
func (r *PolicyPillarRepository) UpdateContent(ctx context.Context, pillarID, partyID, content string) error {
	res := r.db.WithContext(ctx).
		Model(&models.PolicyPillar{}).
		Where("id = ? AND party_id = ?", pillarID, partyID).
		Update("content", content)

	if res.Error != nil {
		return fmt.Errorf("failed to update policy pillar: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPillarNotFound
	}
	return nil
}

// Delete removes a pillar scoped to its party
func (r *PolicyPillarRepository) Delete(ctx context.Context, pillarID, partyID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND party_id = ?", pillarID, partyID).
		Delete(&models.PolicyPillar{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete policy pillar: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrPillarNotFound
	}
	return nil
}
