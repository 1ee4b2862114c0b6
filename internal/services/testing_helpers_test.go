package services

import (
	"context"
	"testing"

	"github.com/Toyowa5296/poliform/internal/constants"
	"github.com/Toyowa5296/poliform/internal/db/repositories"
	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
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
		&models.LogEntry{},
	)
	if err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}

	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, name string) *models.UserProfile {
	t.Helper()

	user := &models.UserProfile{Email: email, PasswordHash: "x", Name: name}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

// seedParty provisions a party through the same transactional path the
// creation endpoint uses, so roles and the owner membership exist.
func seedParty(t *testing.T, db *gorm.DB, ownerID, name string) *models.Party {
	t.Helper()

	party := &models.Party{UserID: ownerID, Name: name, Ideology: "centrism"}
	repo := repositories.NewPartyRepository(db)
	if err := repo.CreateWithOwner(context.Background(), party, nil, nil); err != nil {
		t.Fatalf("failed to seed party: %v", err)
	}
	return party
}

// stubStats is a canned StatsProvider for read-side tests.
type stubStats struct {
	supportCounts map[string]int
	supportedSet  map[string]bool
	memberCounts  map[string]int
	statuses      map[string]constants.MemberStatus
}

var _ repositories.StatsProvider = (*stubStats)(nil)

func (s *stubStats) SupportCounts(ctx context.Context, partyIDs []string) (map[string]int, error) {
	return s.supportCounts, nil
}

func (s *stubStats) SupportedSet(ctx context.Context, userID string, partyIDs []string) (map[string]bool, error) {
	return s.supportedSet, nil
}

func (s *stubStats) MemberCounts(ctx context.Context, partyIDs []string) (map[string]int, error) {
	return s.memberCounts, nil
}

func (s *stubStats) MembershipStatuses(ctx context.Context, userID string, partyIDs []string) (map[string]constants.MemberStatus, error) {
	return s.statuses, nil
}
