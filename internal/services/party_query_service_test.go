package services

import (
	"context"
	"testing"

	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
)

func testParty(name, slogan, ideology string, tagNames ...string) models.Party {
	tags := make([]models.Tag, 0, len(tagNames))
	for _, n := range tagNames {
		tags = append(tags, models.Tag{Name: n})
	}
	return models.Party{
		Name:     name,
		Slogan:   &slogan,
		Ideology: ideology,
		Tags:     tags,
	}
}

func TestFilterPartiesTagIntersection(t *testing.T) {
	parties := []models.Party{
		testParty("Green Future", "for the planet", "environmentalism", "environment", "welfare"),
		testParty("Tech Forward", "code the state", "technocracy", "technology"),
		testParty("Common Ground", "together", "centrism", "environment", "technology"),
	}

	cases := []struct {
		name string
		tags []string
		want []string
	}{
		{"single tag", []string{"environment"}, []string{"Green Future", "Common Ground"}},
		{"all selected tags required", []string{"environment", "technology"}, []string{"Common Ground"}},
		{"unknown tag matches nothing", []string{"environment", "space"}, nil},
		{"no tags matches everything", nil, []string{"Green Future", "Tech Forward", "Common Ground"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterParties(parties, "", tc.tags)
			if len(got) != len(tc.want) {
				t.Fatalf("Expected %d parties, got %d", len(tc.want), len(got))
			}
			for i, name := range tc.want {
				if got[i].Name != name {
					t.Errorf("Expected %s at position %d, got %s", name, i, got[i].Name)
				}
			}
		})
	}
}

func TestFilterPartiesKeyword(t *testing.T) {
	parties := []models.Party{
		testParty("Green Future", "for the planet", "environmentalism"),
		testParty("Tech Forward", "code the state", "technocracy"),
	}

	cases := []struct {
		name    string
		keyword string
		want    int
	}{
		{"matches name", "Green", 1},
		{"matches slogan", "planet", 1},
		{"matches ideology", "technocracy", 1},
		{"substring across both", "e", 2},
		{"case sensitive", "green", 0},
		{"no match", "monarchy", 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterParties(parties, tc.keyword, nil)
			if len(got) != tc.want {
				t.Errorf("Expected %d matches for %q, got %d", tc.want, tc.keyword, len(got))
			}
		})
	}
}

func TestFilterPartiesKeywordAndTagsCombine(t *testing.T) {
	parties := []models.Party{
		testParty("Green Future", "for the planet", "environmentalism", "environment"),
		testParty("Green Shield", "defend nature", "conservationism", "defense"),
	}

	got := FilterParties(parties, "Green", []string{"environment"})
	if len(got) != 1 || got[0].Name != "Green Future" {
		t.Fatalf("Expected only Green Future, got %d matches", len(got))
	}
}

func TestListAttachesBatchedStats(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)

	owner := seedUser(t, db, "owner@example.com", "Owner")
	party := seedParty(t, db, owner.ID, "Test Party")

	stats := &stubStats{
		supportCounts: map[string]int{party.ID: 7},
		supportedSet:  map[string]bool{party.ID: true},
		memberCounts:  map[string]int{party.ID: 3},
		statuses:      map[string]constants.MemberStatus{party.ID: constants.StatusApproved},
	}

	svc := NewPartyQueryService(
		parties,
		repositories.NewPolicyPillarRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewPartyMemberRepository(db),
		stats,
		nil,
	)

	resp, err := svc.List(context.Background(), "viewer-id", "", nil)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 {
		t.Fatalf("Expected 1 party, got %d", resp.Total)
	}

	summary := resp.Parties[0]
	if summary.SupportCount != 7 {
		t.Errorf("Expected support count 7, got %d", summary.SupportCount)
	}
	if !summary.Supported {
		t.Errorf("Expected supported flag set")
	}
	if summary.MemberCount != 3 {
		t.Errorf("Expected member count 3, got %d", summary.MemberCount)
	}
	if summary.MemberStatus != constants.StatusApproved {
		t.Errorf("Expected approved membership, got %s", summary.MemberStatus)
	}
	if summary.OwnerName != "Owner" {
		t.Errorf("Expected owner name preloaded, got %q", summary.OwnerName)
	}
}

func TestMyPartiesBuckets(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)
	likes := repositories.NewLikeRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user@example.com", "User")
	other := seedUser(t, db, "other@example.com", "Other")

	owned := seedParty(t, db, user.ID, "Owned Party")
	liked := seedParty(t, db, other.ID, "Liked Party")
	joined := seedParty(t, db, other.ID, "Joined Party")

	if _, err := likes.InsertIfAbsent(ctx, user.ID, liked.ID); err != nil {
		t.Fatalf("failed to seed like: %v", err)
	}
	if _, err := members.Apply(ctx, user.ID, joined.ID); err != nil {
		t.Fatalf("failed to seed application: %v", err)
	}
	role, err := members.GetRoleByKey(ctx, joined.ID, constants.RoleMember)
	if err != nil {
		t.Fatalf("GetRoleByKey failed: %v", err)
	}
	if err := members.Approve(ctx, user.ID, joined.ID, role.ID); err != nil {
		t.Fatalf("Approve failed: %v", err)
	}

	svc := NewPartyQueryService(
		parties,
		repositories.NewPolicyPillarRepository(db),
		repositories.NewCommentRepository(db),
		members,
		&stubStats{},
		nil,
	)

	resp, err := svc.MyParties(ctx, user.ID)
	if err != nil {
		t.Fatalf("MyParties failed: %v", err)
	}

	if len(resp.Owned) != 1 || resp.Owned[0].ID != owned.ID {
		t.Errorf("Expected one owned party, got %d", len(resp.Owned))
	}
	if len(resp.Liked) != 1 || resp.Liked[0].ID != liked.ID {
		t.Errorf("Expected one liked party, got %d", len(resp.Liked))
	}
	if len(resp.Joined) != 1 || resp.Joined[0].ID != joined.ID {
		t.Errorf("Expected one joined party, got %d", len(resp.Joined))
	}
}

// MyParties runs its sub-list queries concurrently, so the whole group must
// see the same database regardless of which pool connection each query draws.
func TestMyPartiesConcurrentQueriesShareDatabase(t *testing.T) {
	db := newTestDB(t)
	parties := repositories.NewPartyRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "user@example.com", "User")
	seedParty(t, db, user.ID, "Owned Party")

	svc := NewPartyQueryService(
		parties,
		repositories.NewPolicyPillarRepository(db),
		repositories.NewCommentRepository(db),
		repositories.NewPartyMemberRepository(db),
		&stubStats{},
		nil,
	)

	for i := 0; i < 20; i++ {
		resp, err := svc.MyParties(ctx, user.ID)
		if err != nil {
			t.Fatalf("MyParties failed on iteration %d: %v", i, err)
		}
		if len(resp.Owned) != 1 {
			t.Fatalf("Expected one owned party on iteration %d, got %d", i, len(resp.Owned))
		}
	}
}
