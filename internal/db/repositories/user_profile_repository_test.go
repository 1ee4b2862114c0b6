package repositories

import (
	"context"
	"errors"
	"testing"

	models "github.com/Toyowa5296/poliform/internal/models/gorm"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newProfileTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to access sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.UserProfile{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	return db
}

func TestCreateDuplicateEmail(t *testing.T) {
	repo := NewUserProfileRepository(newProfileTestDB(t))
	ctx := context.Background()

	first := &models.UserProfile{Email: "taken@example.com", PasswordHash: "x", Name: "First"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// The unique index on email is the only duplicate check.
	second := &models.UserProfile{Email: "taken@example.com", PasswordHash: "y", Name: "Second"}
	if err := repo.Create(ctx, second); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Errorf("Expected ErrDuplicatedKey, got %v", err)
	}

	found, err := repo.GetByEmail(ctx, "taken@example.com")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if found.Name != "First" {
		t.Errorf("Expected original row to survive, got %q", found.Name)
	}
}

func TestGetByEmailMissing(t *testing.T) {
	repo := NewUserProfileRepository(newProfileTestDB(t))

	if _, err := repo.GetByEmail(context.Background(), "ghost@example.com"); !errors.Is(err, ErrProfileNotFound) {
		t.Errorf("Expected ErrProfileNotFound, got %v", err)
	}
}
