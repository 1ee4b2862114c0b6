package services

import (
	"context"

	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
)

// CommentService manages party comments. Edits and deletes are author-only,
// enforced by the repository's guarded statements.
type CommentService struct {
	parties  *repositories.PartyRepository
	comments *repositories.CommentRepository
	users    *repositories.UserProfileRepository
}

func NewCommentService(parties *repositories.PartyRepository, comments *repositories.CommentRepository, users *repositories.UserProfileRepository) *CommentService {
	return &CommentService{
		parties:  parties,
		comments: comments,
		users:    users,
	}
}

// Create posts a comment on a party.
func (s *CommentService) Create(ctx context.Context, userID, partyID, content string) (*dtos.CommentResponse, error) {
	if _, err := s.parties.GetByID(ctx, partyID); err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:  userID,
		PartyID: partyID,
		Content: content,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}

	author, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &dtos.CommentResponse{
		ID:         comment.ID,
		Content:    comment.Content,
		UserID:     comment.UserID,
		AuthorName: author.Name,
		CreatedAt:  comment.CreatedAt,
	}, nil
}

// ListByParty returns a party's comments newest first.
func (s *CommentService) ListByParty(ctx context.Context, partyID string) ([]dtos.CommentResponse, error) {
	comments, err := s.comments.ListByParty(ctx, partyID)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, dtos.CommentResponse{
			ID:         c.ID,
			Content:    c.Content,
			UserID:     c.UserID,
			AuthorName: c.Author.Name,
			CreatedAt:  c.CreatedAt,
		})
	}
	return out, nil
}

// Update edits the caller's own comment.
func (s *CommentService) Update(ctx context.Context, userID, commentID, content string) error {
	return s.comments.UpdateContent(ctx, commentID, userID, content)
}

// Delete removes the caller's own comment.
func (s *CommentService) Delete(ctx context.Context, userID, commentID string) error {
	return s.comments.Delete(ctx, commentID, userID)
}
