package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/metrics"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestApplyCreatesSinglePendingRow(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	svc := NewMembershipService(parties, members, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	applicant := seedUser(t, db, "applicant@example.com", "Applicant")
	party := seedParty(t, db, owner.ID, "Test Party")

	resp, err := svc.Apply(ctx, applicant.ID, party.ID)
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if resp.Status != constants.StatusPending {
		t.Errorf("Expected pending status, got %s", resp.Status)
	}

	// Second apply must hit the unique constraint, not add a row.
	if _, err := svc.Apply(ctx, applicant.ID, party.ID); !errors.Is(err, repositories.ErrAlreadyApplied) {
		t.Errorf("Expected ErrAlreadyApplied, got %v", err)
	}

	var count int64
	db.Model(&models.PartyMember{}).
		Where("user_id = ? AND party_id = ?", applicant.ID, party.ID).
		Count(&count)
	if count != 1 {
		t.Errorf("Expected exactly 1 membership row, got %d", count)
	}
}

func TestApplyOwnPartyRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewMembershipService(repositories.NewPartyRepository(db), repositories.NewPartyMemberRepository(db), nil)

	owner := seedUser(t, db, "owner@example.com", "Owner")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Apply(context.Background(), owner.ID, party.ID); !errors.Is(err, ErrOwnerCannotApply) {
		t.Errorf("Expected ErrOwnerCannotApply, got %v", err)
	}
}

func TestApproveAssignsMemberRole(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	svc := NewMembershipService(parties, members, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	applicant := seedUser(t, db, "applicant@example.com", "Applicant")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Apply(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	resp, err := svc.Approve(ctx, owner.ID, party.ID, applicant.ID)
	if err != nil {
		t.Fatalf("Approve failed: %v", err)
	}
	if resp.Status != constants.StatusApproved {
		t.Errorf("Expected approved status, got %s", resp.Status)
	}

	memberRole, err := members.GetRoleByKey(ctx, party.ID, constants.RoleMember)
	if err != nil {
		t.Fatalf("GetRoleByKey failed: %v", err)
	}

	row, err := members.GetByUserAndParty(ctx, applicant.ID, party.ID)
	if err != nil {
		t.Fatalf("GetByUserAndParty failed: %v", err)
	}
	if row.PartyRoleID == nil || *row.PartyRoleID != memberRole.ID {
		t.Errorf("Expected member role %s assigned, got %v", memberRole.ID, row.PartyRoleID)
	}
}

func TestApproveWithoutRoleLeavesRowPending(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	svc := NewMembershipService(parties, members, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	applicant := seedUser(t, db, "applicant@example.com", "Applicant")

	// Insert the party bare, skipping role provisioning.
	party := &models.Party{UserID: owner.ID, Name: "Broken Party", Ideology: "none"}
	if err := db.Create(party).Error; err != nil {
		t.Fatalf("failed to insert party: %v", err)
	}

	if _, err := svc.Apply(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if _, err := svc.Approve(ctx, owner.ID, party.ID, applicant.ID); !errors.Is(err, repositories.ErrRoleNotFound) {
		t.Errorf("Expected ErrRoleNotFound, got %v", err)
	}

	row, err := members.GetByUserAndParty(ctx, applicant.ID, party.ID)
	if err != nil {
		t.Fatalf("GetByUserAndParty failed: %v", err)
	}
	if row.Status != constants.StatusPending {
		t.Errorf("Expected row to stay pending, got %s", row.Status)
	}
	if row.PartyRoleID != nil {
		t.Errorf("Expected no role assigned, got %v", *row.PartyRoleID)
	}
}

func TestApproveRequiresOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewMembershipService(repositories.NewPartyRepository(db), repositories.NewPartyMemberRepository(db), nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	applicant := seedUser(t, db, "applicant@example.com", "Applicant")
	stranger := seedUser(t, db, "stranger@example.com", "Stranger")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Apply(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}

	if _, err := svc.Approve(ctx, stranger.ID, party.ID, applicant.ID); !errors.Is(err, ErrNotOwner) {
		t.Errorf("Expected ErrNotOwner, got %v", err)
	}
}

func TestCancelAllowsReapply(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	svc := NewMembershipService(parties, members, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	applicant := seedUser(t, db, "applicant@example.com", "Applicant")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Apply(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if err := svc.Cancel(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	// The row is gone, so a fresh application goes through.
	if _, err := svc.Apply(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Reapply after cancel failed: %v", err)
	}
}

func TestCancelApprovedRowFails(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	svc := NewMembershipService(parties, members, nil)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	applicant := seedUser(t, db, "applicant@example.com", "Applicant")
	party := seedParty(t, db, owner.ID, "Test Party")

	if _, err := svc.Apply(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if _, err := svc.Approve(ctx, owner.ID, party.ID, applicant.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	// A stale cancel click after approval must not delete the membership.
	if err := svc.Cancel(ctx, applicant.ID, party.ID); !errors.Is(err, repositories.ErrNoPendingRow) {
		t.Errorf("Expected ErrNoPendingRow, got %v", err)
	}

	row, err := members.GetByUserAndParty(ctx, applicant.ID, party.ID)
	if err != nil {
		t.Fatalf("GetByUserAndParty failed: %v", err)
	}
	if row.Status != constants.StatusApproved {
		t.Errorf("Expected membership to survive, got %s", row.Status)
	}
}

func TestDuplicateApplicationMetricCountsOnlyConflicts(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	metricsReg := metrics.NewMetricsRegistry()
	svc := NewMembershipService(parties, members, metricsReg)
	ctx := context.Background()

	owner := seedUser(t, db, "owner@example.com", "Owner")
	applicant := seedUser(t, db, "applicant@example.com", "Applicant")
	party := seedParty(t, db, owner.ID, "Test Party")

	duplicates := func() float64 {
		return testutil.ToFloat64(metricsReg.ApplicationsTotal.WithLabelValues("duplicate"))
	}

	if _, err := svc.Apply(ctx, applicant.ID, "no-such-party"); err == nil {
		t.Fatal("Expected apply against a missing party to fail")
	}
	if got := duplicates(); got != 0 {
		t.Errorf("Expected no duplicates counted after a not-found error, got %v", got)
	}

	if _, err := svc.Apply(ctx, applicant.ID, party.ID); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if got := duplicates(); got != 0 {
		t.Errorf("Expected no duplicates counted after a first apply, got %v", got)
	}

	if _, err := svc.Apply(ctx, applicant.ID, party.ID); !errors.Is(err, repositories.ErrAlreadyApplied) {
		t.Fatalf("Expected ErrAlreadyApplied, got %v", err)
	}
	if got := duplicates(); got != 1 {
		t.Errorf("Expected exactly one duplicate counted, got %v", got)
	}
}
