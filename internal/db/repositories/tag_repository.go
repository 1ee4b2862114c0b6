package repositories

import (
	"context"
	"fmt"

	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
)

// TagRepository reads the tag catalog with GORM
type TagRepository struct {
	db *gorm.DB
}

// NewTagRepository creates a new tag repository
func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

// ListAll retrieves the full tag catalog ordered by category then name
func (r *TagRepository) ListAll(ctx context.Context) ([]models.Tag, error) {
	var tags []models.Tag

	err := r.db.WithContext(ctx).
		Order("category ASC, name ASC").
		Find(&tags).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tags: %w", err)
	}

	return tags, nil
}
