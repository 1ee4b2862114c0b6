package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Toyowa5296/poliform/internal/constants"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
)

var ErrPartyNotFound = errors.New("party not found")

// PartyRepository manages party rows and their associations with GORM
type PartyRepository struct {
	db *gorm.DB
}

// NewPartyRepository creates a new party repository
func NewPartyRepository(db *gorm.DB) *PartyRepository {
	return &PartyRepository{db: db}
}

// CreateWithOwner inserts the party, its three role definitions, and the
// creator's approved owner membership in one transaction. Either all of it
// lands or none of it does.
func (r *PartyRepository) CreateWithOwner(ctx context.Context, party *models.Party, tagIDs []string, pillars []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(party).Error; err != nil {
			return fmt.Errorf("insert party: %w", err)
		}

		var ownerRoleID string
		for _, def := range constants.DefaultRoles {
			role := models.PartyRole{
				PartyID:     party.ID,
				RoleKey:     def.Key,
				Name:        def.Name,
				Description: def.Description,
			}
			if err := tx.Create(&role).Error; err != nil {
				return fmt.Errorf("insert role %s: %w", def.Key, err)
			}
			if def.Key == constants.RoleOwner {
				ownerRoleID = role.ID
			}
		}

		member := models.PartyMember{
			UserID:      party.UserID,
			PartyID:     party.ID,
			PartyRoleID: &ownerRoleID,
			Status:      constants.StatusApproved,
		}
		if err := tx.Create(&member).Error; err != nil {
			return fmt.Errorf("insert owner membership: %w", err)
		}

		if len(tagIDs) > 0 {
			var tags []models.Tag
			if err := tx.Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
				return fmt.Errorf("fetch tags: %w", err)
			}
			if err := tx.Model(party).Association("Tags").Append(tags); err != nil {
				return fmt.Errorf("attach tags: %w", err)
			}
		}

		for _, content := range pillars {
			pillar := models.PolicyPillar{PartyID: party.ID, Content: content}
			if err := tx.Create(&pillar).Error; err != nil {
				return fmt.Errorf("insert policy pillar: %w", err)
			}
		}

		return nil
	})
}

// GetByID retrieves a party with tags and owner preloaded
func (r *PartyRepository) GetByID(ctx context.Context, id string) (*models.Party, error) {
	var party models.Party

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Owner").
		Where("id = ?", id).
		First(&party).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPartyNotFound
		}
		return nil, fmt.Errorf("failed to fetch party: %w", err)
	}

	return &party, nil
}

// List retrieves all parties newest first, tags and owner preloaded
func (r *PartyRepository) List(ctx context.Context) ([]models.Party, error) {
	var parties []models.Party

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Owner").
		Order("created_at DESC").
		Find(&parties).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch parties: %w", err)
	}

	return parties, nil
}

// ListByOwner retrieves the parties a user created
func (r *PartyRepository) ListByOwner(ctx context.Context, userID string) ([]models.Party, error) {
	var parties []models.Party

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Owner").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&parties).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch owned parties: %w", err)
	}

	return parties, nil
}

// ListLikedBy retrieves the parties a user supports
func (r *PartyRepository) ListLikedBy(ctx context.Context, userID string) ([]models.Party, error) {
	var parties []models.Party

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Owner").
		Joins("JOIN likes ON likes.party_id = party.id").
		Where("likes.user_id = ?", userID).
		Order("party.created_at DESC").
		Find(&parties).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch liked parties: %w", err)
	}

	return parties, nil
}

// ListJoinedBy retrieves the parties where the user's membership is approved,
// excluding those the user owns
func (r *PartyRepository) ListJoinedBy(ctx context.Context, userID string) ([]models.Party, error) {
	var parties []models.Party

	err := r.db.WithContext(ctx).
		Preload("Tags").
		Preload("Owner").
		Joins("JOIN party_member ON party_member.party_id = party.id").
		Where("party_member.user_id = ? AND party_member.status = ? AND party.user_id <> ?",
			userID, constants.StatusApproved, userID).
		Order("party.created_at DESC").
		Find(&parties).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch joined parties: %w", err)
	}

	return parties, nil
}

// Update persists party field changes
func (r *PartyRepository) Update(ctx context.Context, party *models.Party) error {
	err := r.db.WithContext(ctx).Save(party).Error
	if err != nil {
		return fmt.Errorf("failed to update party: %w", err)
	}
	return nil
}

// SetLogoURL stores the public URL of a freshly uploaded logo
func (r *PartyRepository) SetLogoURL(ctx context.Context, partyID, url string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Party{}).
		Where("id = ?", partyID).
		Update("logo_url", url).Error

	if err != nil {
		return fmt.Errorf("failed to set logo url: %w", err)
	}
	return nil
}

// ReplaceTags swaps the party's tag set for the given one
func (r *PartyRepository) ReplaceTags(ctx context.Context, party *models.Party, tagIDs []string) error {
	var tags []models.Tag
	if len(tagIDs) > 0 {
		if err := r.db.WithContext(ctx).Where("id IN ?", tagIDs).Find(&tags).Error; err != nil {
			return fmt.Errorf("fetch tags: %w", err)
		}
	}

	if err := r.db.WithContext(ctx).Model(party).Association("Tags").Replace(tags); err != nil {
		return fmt.Errorf("replace tags: %w", err)
	}
	return nil
}

// Delete removes a party; dependent rows go with it via FK cascade
func (r *PartyRepository) Delete(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.Party{}).Error

	if err != nil {
		return fmt.Errorf("failed to delete party: %w", err)
	}
	return nil
}
