package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Toyowa5296/poliform/internal/db/repositories"
)

func TestCommentAuthorGuard(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(
		repositories.NewPartyRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewUserProfileRepository(db),
	)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	author := seedUser(t, db, "author@example.com", "Author")
	stranger := seedUser(t, db, "stranger@example.com", "Stranger")
	party := seedParty(t, db, owner.ID, "Test Party")

	comment, err := svc.Create(ctx, author.ID, party.ID, "Interesting platform")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if comment.AuthorName != "Author" {
		t.Errorf("Expected author name resolved, got %q", comment.AuthorName)
	}

	if err := svc.Update(ctx, stranger.ID, comment.ID, "Vandalized"); !errors.Is(err, repositories.ErrNotCommentAuthor) {
		t.Errorf("Expected ErrNotCommentAuthor, got %v", err)
	}
	if err := svc.Delete(ctx, stranger.ID, comment.ID); !errors.Is(err, repositories.ErrNotCommentAuthor) {
		t.Errorf("Expected ErrNotCommentAuthor on delete, got %v", err)
	}

	if err := svc.Update(ctx, author.ID, comment.ID, "Edited"); err != nil {
		t.Fatalf("Author update failed: %v", err)
	}

	comments, err := svc.ListByParty(ctx, party.ID)
	if err != nil {
		t.Fatalf("ListByParty failed: %v", err)
	}
	if len(comments) != 1 || comments[0].Content != "Edited" {
		t.Errorf("Expected one edited comment, got %v", comments)
	}

	if err := svc.Delete(ctx, author.ID, comment.ID); err != nil {
		t.Fatalf("Author delete failed: %v", err)
	}
}

func TestCommentOrderNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewCommentService(
		repositories.NewPartyRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewUserProfileRepository(db),
	)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	author := seedUser(t, db, "author@example.com", "Author")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Create(ctx, author.ID, party.ID, "first"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := svc.Create(ctx, author.ID, party.ID, "second"); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	comments, err := svc.ListByParty(ctx, party.ID)
	if err != nil {
		t.Fatalf("ListByParty failed: %v", err)
	}
	if len(comments) != 2 {
		t.Fatalf("Expected 2 comments, got %d", len(comments))
	}
	if comments[0].CreatedAt.Before(comments[1].CreatedAt) {
		t.Errorf("Expected newest comment first")
	}
}
