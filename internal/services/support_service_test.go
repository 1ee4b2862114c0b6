package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Toyowa5296/poliform/internal/db/repositories"
)

func TestToggleFlipsAndRestores(t *testing.T) {
	db := newTestDB(t)
	likes := repositories.NewLikeRepository(db)
	svc := NewSupportService(repositories.NewPartyRepository(db), likes, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	supporter := seedUser(t, db, "fan@example.com", "Fan")
	party := seedParty(t, db, owner.ID, "Test Party")

	resp, err := svc.Toggle(ctx, supporter.ID, party.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if !resp.Supported || resp.SupportCount != 1 {
		t.Errorf("Expected supported with count 1, got %v / %d", resp.Supported, resp.SupportCount)
	}

	resp, err = svc.Toggle(ctx, supporter.ID, party.ID)
	if err != nil {
		t.Fatalf("Second toggle failed: %v", err)
	}
	if resp.Supported || resp.SupportCount != 0 {
		t.Errorf("Expected unsupported with count 0, got %v / %d", resp.Supported, resp.SupportCount)
	}

	// A third toggle lands back on supported, so two toggles always cancel.
	resp, err = svc.Toggle(ctx, supporter.ID, party.ID)
	if err != nil {
		t.Fatalf("Third toggle failed: %v", err)
	}
	if !resp.Supported || resp.SupportCount != 1 {
		t.Errorf("Expected supported with count 1, got %v / %d", resp.Supported, resp.SupportCount)
	}
}

func TestToggleCountsPerUser(t *testing.T) {
	db := newTestDB(t)
	likes := repositories.NewLikeRepository(db)
	svc := NewSupportService(repositories.NewPartyRepository(db), likes, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	first := seedUser(t, db, "first@example.com", "First")
	second := seedUser(t, db, "second@example.com", "Second")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Toggle(ctx, first.ID, party.ID); err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	resp, err := svc.Toggle(ctx, second.ID, party.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if resp.SupportCount != 2 {
		t.Errorf("Expected count 2, got %d", resp.SupportCount)
	}

	// First user withdrawing leaves the second user's support in place.
	resp, err = svc.Toggle(ctx, first.ID, party.ID)
	if err != nil {
		t.Fatalf("Toggle failed: %v", err)
	}
	if resp.SupportCount != 1 {
		t.Errorf("Expected count 1, got %d", resp.SupportCount)
	}

	supported, err := likes.Exists(ctx, second.ID, party.ID)
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !supported {
		t.Errorf("Expected second user's support to survive")
	}
}

func TestOwnerCannotSupportOwnParty(t *testing.T) {
	db := newTestDB(t)
	svc := NewSupportService(repositories.NewPartyRepository(db), repositories.NewLikeRepository(db), nil)

	owner := seedUser(t, db, "owner@example.com", "Owner")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Toggle(context.Background(), owner.ID, party.ID); !errors.Is(err, ErrOwnerCannotSupport) {
		t.Errorf("Expected ErrOwnerCannotSupport, got %v", err)
	}
}
