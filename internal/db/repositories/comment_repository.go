package repositories

import (
	"context"
	"errors"
	"fmt"

	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/gorm"
)

// ErrNotCommentAuthor means the guarded mutation matched no row: either the
// comment is gone or it belongs to someone else. Callers don't distinguish.
var ErrNotCommentAuthor = errors.New("comment not found or not owned by caller")

// CommentRepository manages comment rows with GORM
type CommentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.db.WithContext(ctx).Create(comment).Error
	if err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListByParty retrieves a party's comments newest first with authors preloaded
func (r *CommentRepository) ListByParty(ctx context.Context, partyID string) ([]models.Comment, error) {
	var comments []models.Comment

	err := r.db.WithContext(ctx).
		Preload("Author").
		Where("party_id = ?", partyID).
		Order("created_at DESC").
		Find(&comments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}

	return comments, nil
}

// UpdateContent edits a comment; the author guard is part of the WHERE clause
func (r *CommentRepository) UpdateContent(ctx context.Context, commentID, userID, content string) error {
	res := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ? AND user_id = ?", commentID, userID).
		Update("content", content)

	if res.Error != nil {
		return fmt.Errorf("failed to update comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotCommentAuthor
	}
	return nil
}

// Delete removes a comment; the author guard is part of the WHERE clause
func (r *CommentRepository) Delete(ctx context.Context, commentID, userID string) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", commentID, userID).
		Delete(&models.Comment{})

	if res.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotCommentAuthor
	}
	return nil
}
