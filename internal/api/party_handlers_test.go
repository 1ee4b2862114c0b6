package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Toyowa5296/poliform/internal/auth"
	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	"github.com/Toyowa5296/poliform/internal/models/dtos"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"
	"github.com/Toyowa5296/poliform/internal/services"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type noStats struct{}

func (noStats) SupportCounts(ctx context.Context, partyIDs []string) (map[string]int, error) {
	return map[string]int{}, nil
}
func (noStats) SupportedSet(ctx context.Context, userID string, partyIDs []string) (map[string]bool, error) {
	return map[string]bool{}, nil
}
func (noStats) MemberCounts(ctx context.Context, partyIDs []string) (map[string]int, error) {
	return map[string]int{}, nil
}
func (noStats) MembershipStatuses(ctx context.Context, userID string, partyIDs []string) (map[string]constants.MemberStatus, error) {
	return map[string]constants.MemberStatus{}, nil
}

// newTestDeps builds a Dependencies over in-memory sqlite, with only the
// pieces the tested handlers touch.
func newTestDeps(t *testing.T) (*Dependencies, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	// A second pool connection to a non-shared :memory: DSN would see an
	// empty database, so the fan-out paths need a single connection.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.UserProfile{},
		&models.Party{},
		&models.Tag{},
		&models.PartyRole{},
		&models.PartyMember{},
		&models.Like{},
		&models.Comment{},
		&models.PolicyPillar{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	parties := repositories.NewPartyRepository(db)
	members := repositories.NewPartyMemberRepository(db)

	deps := &Dependencies{
		Repo: &Repositories{Parties: parties, Members: members},
		Services: &Services{
			PartyQuery: services.NewPartyQueryService(
				parties,
				repositories.NewPolicyPillarRepository(db),
				repositories.NewCommentRepository(db),
				members,
				noStats{},
				nil,
			),
			Membership: services.NewMembershipService(parties, members, nil),
		},
	}
	return deps, db
}

func seedHandlerParty(t *testing.T, db *gorm.DB, owner *models.UserProfile, name string) *models.Party {
	t.Helper()

	party := &models.Party{UserID: owner.ID, Name: name, Ideology: "centrism"}
	if err := repositories.NewPartyRepository(db).CreateWithOwner(context.Background(), party, nil, nil); err != nil {
		t.Fatalf("failed to seed party: %v", err)
	}
	return party
}

func seedHandlerUser(t *testing.T, db *gorm.DB, email string) *models.UserProfile {
	t.Helper()

	user := &models.UserProfile{Email: email, PasswordHash: "x", Name: "User"}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func TestListPartiesHandlerAnonymous(t *testing.T) {
	deps, db := newTestDeps(t)
	owner := seedHandlerUser(t, db, "owner@example.com")
	seedHandlerParty(t, db, owner, "Visible Party")

	req := httptest.NewRequest("GET", "/api/v1/parties", nil)
	rr := httptest.NewRecorder()

	ListPartiesHandler(deps).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}

	var response dtos.APIResponse
	if err := json.NewDecoder(rr.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %s", response.Status)
	}
}

func TestGetPartyHandlerNotFound(t *testing.T) {
	deps, _ := newTestDeps(t)

	req := httptest.NewRequest("GET", "/api/v1/parties/missing", nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("partyID", "00000000-0000-0000-0000-000000000000")
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

	rr := httptest.NewRecorder()
	GetPartyHandler(deps).ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
}

func TestApplyHandlerDuplicateConflict(t *testing.T) {
	deps, db := newTestDeps(t)
	owner := seedHandlerUser(t, db, "owner@example.com")
	applicant := seedHandlerUser(t, db, "applicant@example.com")
	party := seedHandlerParty(t, db, owner, "Test Party")

	apply := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/v1/parties/"+party.ID+"/apply", nil)

		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("partyID", party.ID)
		ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
		ctx = auth.SetUserClaims(ctx, &auth.SessionClaims{UserUUID: applicant.ID})
		req = req.WithContext(ctx)

		rr := httptest.NewRecorder()
		ApplyHandler(deps).ServeHTTP(rr, req)
		return rr
	}

	if rr := apply(); rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d", rr.Code)
	}
	if rr := apply(); rr.Code != http.StatusConflict {
		t.Errorf("Expected status 409 on duplicate, got %d", rr.Code)
	}
}
