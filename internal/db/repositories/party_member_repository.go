package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Toyowa5296/poliform/internal/constants"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrAlreadyApplied is the insert-conflict outcome: a row for
	// (user, party) already exists in any status.
	ErrAlreadyApplied = errors.New("membership row already exists")
	// ErrNoPendingRow means the guarded update/delete matched nothing.
	ErrNoPendingRow = errors.New("no pending membership row")
	// ErrRoleNotFound means the party has no role definition for the key.
	ErrRoleNotFound = errors.New("party role not found")
)

// PartyMemberRepository manages the membership lifecycle rows with GORM
type PartyMemberRepository struct {
	db *gorm.DB
}

// NewPartyMemberRepository creates a new party member repository
func NewPartyMemberRepository(db *gorm.DB) *PartyMemberRepository {
	return &PartyMemberRepository{db: db}
}

// Apply inserts a pending application. The (user_id, party_id) unique
// constraint does the duplicate detection: a conflicting insert affects zero
// rows and is reported as ErrAlreadyApplied, with no prior existence read.
func (r *PartyMemberRepository) Apply(ctx context.Context, userID, partyID string) (*models.PartyMember, error) {
	member := models.PartyMember{
		UserID:  userID,
		PartyID: partyID,
		Status:  constants.StatusPending,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "party_id"}},
			DoNothing: true,
		}).
		Create(&member)

	if res.Error != nil {
		return nil, fmt.Errorf("failed to insert application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrAlreadyApplied
	}

	return &member, nil
}

// GetByUserAndParty retrieves the membership row for a (user, party) pair
func (r *PartyMemberRepository) GetByUserAndParty(ctx context.Context, userID, partyID string) (*models.PartyMember, error) {
	var member models.PartyMember

	err := r.db.WithContext(ctx).
		Where("user_id = ? AND party_id = ?", userID, partyID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch membership: %w", err)
	}

	return &member, nil
}

// GetRoleByKey looks up one of the party's role definition rows
func (r *PartyMemberRepository) GetRoleByKey(ctx context.Context, partyID string, key constants.RoleKey) (*models.PartyRole, error) {
	var role models.PartyRole

	err := r.db.WithContext(ctx).
		Where("party_id = ? AND role_key = ?", partyID, key).
		First(&role).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to fetch party role: %w", err)
	}

	return &role, nil
}

// Approve moves a pending row to approved and assigns the role in one update.
// The status guard keeps already-decided rows untouched.
func (r *PartyMemberRepository) Approve(ctx context.Context, userID, partyID, roleID string) error {
	res := r.db.WithContext(ctx).
		Model(&models.PartyMember{}).
		Where("user_id = ? AND party_id = ? AND status = ?", userID, partyID, constants.StatusPending).
		Updates(map[string]interface{}{
			"status":        constants.StatusApproved,
			"party_role_id": roleID,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to approve membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoPendingRow
	}
	return nil
}

// Reject moves a pending row to rejected
func (r *PartyMemberRepository) Reject(ctx context.Context, userID, partyID string) error {
	res := r.db.WithContext(ctx).
		Model(&models.PartyMember{}).
		Where("user_id = ? AND party_id = ? AND status = ?", userID, partyID, constants.StatusPending).
		Update("status", constants.StatusRejected)

	if res.Error != nil {
		return fmt.Errorf("failed to reject membership: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoPendingRow
	}
	return nil
}

// CancelPending deletes the applicant's row while it is still pending. The
// status guard is in the WHERE clause so an already-decided row survives a
// stale cancel click.
func (r *PartyMemberRepository) CancelPending(ctx context.Context, userID, partyID string) error {
	res := r.db.WithContext(ctx).
		Where("user_id = ? AND party_id = ? AND status = ?", userID, partyID, constants.StatusPending).
		Delete(&models.PartyMember{})

	if res.Error != nil {
		return fmt.Errorf("failed to cancel application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNoPendingRow
	}
	return nil
}

// ListByPartyAndStatus retrieves membership rows with applicant profiles
func (r *PartyMemberRepository) ListByPartyAndStatus(ctx context.Context, partyID string, status constants.MemberStatus) ([]models.PartyMember, error) {
	var members []models.PartyMember

	err := r.db.WithContext(ctx).
		Preload("User").
		Where("party_id = ? AND status = ?", partyID, status).
		Find(&members).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch party members: %w", err)
	}

	return members, nil
}
