package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
)

func TestCreatePartyProvisionsRolesAndOwnerMembership(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	svc := NewPartyService(parties, nil, nil, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")

	tag := models.Tag{Name: "environment"}
	if err := db.Create(&tag).Error; err != nil {
		t.Fatalf("failed to seed tag: %v", err)
	}

	slogan := "for the planet"
	party, err := svc.Create(ctx, owner.ID, dtos.PartyCreateRequest{
		Name:          "Green Future",
		Slogan:        &slogan,
		Ideology:      "environmentalism",
		TagIDs:        []string{tag.ID},
		PolicyPillars: []string{"Carbon neutrality by 2040", ""},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// All three role definitions exist for the new party.
	for _, def := range constants.DefaultRoles {
		if _, err := members.GetRoleByKey(ctx, party.ID, def.Key); err != nil {
			t.Errorf("Expected role %s to exist: %v", def.Key, err)
		}
	}

	// The creator is an approved member holding the owner role.
	row, err := members.GetByUserAndParty(ctx, owner.ID, party.ID)
	if err != nil {
		t.Fatalf("GetByUserAndParty failed: %v", err)
	}
	if row.Status != constants.StatusApproved {
		t.Errorf("Expected approved owner membership, got %s", row.Status)
	}
	ownerRole, err := members.GetRoleByKey(ctx, party.ID, constants.RoleOwner)
	if err != nil {
		t.Fatalf("GetRoleByKey failed: %v", err)
	}
	if row.PartyRoleID == nil || *row.PartyRoleID != ownerRole.ID {
		t.Errorf("Expected owner role assigned, got %v", row.PartyRoleID)
	}

	if len(party.Tags) != 1 || party.Tags[0].Name != "environment" {
		t.Errorf("Expected tag attached, got %v", party.Tags)
	}

	// Empty pillar entries are dropped on the way in.
	pillars, err := repositories.NewPolicyPillarRepository(db).ListByParty(ctx, party.ID)
	if err != nil {
		t.Fatalf("ListByParty failed: %v", err)
	}
	if len(pillars) != 1 || pillars[0].Content != "Carbon neutrality by 2040" {
		t.Errorf("Expected one pillar, got %v", pillars)
	}
}

func TestUpdatePartyRequiresOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewPartyService(repositories.NewPartyRepository(db), nil, nil, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	stranger := seedUser(t, db, "stranger@example.com", "Stranger")
	party := seedParty(t, db, owner.ID, "Test Party")

	_, err := svc.Update(ctx, stranger.ID, party.ID, dtos.PartyUpdateRequest{Name: "Hijacked", Ideology: "none"})
	if !errors.Is(err, ErrNotOwner) {
		t.Errorf("Expected ErrNotOwner, got %v", err)
	}

	if err := svc.Delete(ctx, stranger.ID, party.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Expected ErrNotOwner on delete, got %v", err)
	}
}

func TestDeletePartyRemovesIt(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	svc := NewPartyService(parties, nil, nil, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	party := seedParty(t, db, owner.ID, "Test Party")

	if err := svc.Delete(ctx, owner.ID, party.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := parties.GetByID(ctx, party.ID); !errors.Is(err, repositories.ErrPartyNotFound) {
		t.Errorf("Expected ErrPartyNotFound, got %v", err)
	}
}
