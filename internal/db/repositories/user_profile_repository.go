package repositories

import (
	"context"
	"errors"
	"fmt"

	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrProfileNotFound = errors.New("user profile not found")

// UserProfileRepository manages user profile rows with GORM
type UserProfileRepository struct {
	db *gorm.DB
}

// NewUserProfileRepository creates a new user profile repository
func NewUserProfileRepository(db *gorm.DB) *UserProfileRepository {
	return &UserProfileRepository{db: db}
}

// Create inserts a new profile row. The email unique constraint is the only
// duplicate guard; callers translate the conflict into "account exists".
func (r *UserProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).
		Create(profile)
	if res.Error != nil {
		return fmt.Errorf("failed to create profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrDuplicatedKey
	}
	return nil
}

// GetByEmail retrieves a profile by email
func (r *UserProfileRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var profile models.UserProfile

	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &profile, nil
}

// GetByID retrieves a profile by id
func (r *UserProfileRepository) GetByID(ctx context.Context, id string) (*models.UserProfile, error) {
	var profile models.UserProfile

	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&profile).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	return &profile, nil
}

// Update persists the mutable profile fields wholesale, matching the
// profile-edit form which submits the full field set on save.
func (r *UserProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	err := r.db.WithContext(ctx).Save(profile).Error
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// SetAvatarURL stores the public URL of a freshly uploaded avatar
func (r *UserProfileRepository) SetAvatarURL(ctx context.Context, userID, url string) error {
	err := r.db.WithContext(ctx).
		Model(&models.UserProfile{}).
		Where("id = ?", userID).
		Update("avatar_url", url).Error

	if err != nil {
		return fmt.Errorf("failed to set avatar url: %w", err)
	}
	return nil
}
