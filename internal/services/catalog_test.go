package services

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/adlt1785/musicjournal-backend/internal/domain"
	"github.com/adlt1785/musicjournal-backend/internal/logger"
	"github.com/adlt1785/musicjournal-backend/internal/store"
)

func setupServices(t *testing.T) (*CatalogResolver, *JournalService, *store.DB, func()) {
	tmpFile := t.Name() + ".db"
	db, err := store.NewSQLiteDB(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open db: %v", err)
	}
	cleanup := func() {
		if cErr := db.Close(); cErr != nil {
			t.Logf("db.Close error: %v", cErr)
		}
		if rErr := os.Remove(tmpFile); rErr != nil {
			t.Logf("os.Remove error: %v", rErr)
		}
	}
	log := logger.Default()
	catalog := NewCatalogResolver(db, log)
	journal := NewJournalService(db, catalog, log)
	return catalog, journal, db, cleanup
}

func createUser(t *testing.T, db *store.DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func TestResolveOrCreate(t *testing.T) {
	catalog, _, _, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	cover := "https://covers.example.com/1.jpg"

	album, err := catalog.ResolveOrCreate(ctx, "mbid-1", "OK Computer", "Radiohead", &cover)
	if err != nil {
		t.Fatalf("ResolveOrCreate failed: %v", err)
	}
	if album.ID == "" {
		t.Fatal("Expected album ID to be set")
	}

	// Second call with different metadata resolves to the same row
	again, err := catalog.ResolveOrCreate(ctx, "mbid-1", "Renamed", "Somebody", nil)
	if err != nil {
		t.Fatalf("Second ResolveOrCreate failed: %v", err)
	}
	if again.ID != album.ID {
		t.Errorf("Expected same album ID, got %s and %s", album.ID, again.ID)
	}
	if again.Title != "OK Computer" {
		t.Errorf("Expected first title to win, got %q", again.Title)
	}
}

func TestResolveOrCreate_MissingExternalID(t *testing.T) {
	catalog, _, _, cleanup := setupServices(t)
	defer cleanup()

	_, err := catalog.ResolveOrCreate(context.Background(), "", "Title", "Artist", nil)
	if !domain.IsValidation(err) {
		t.Errorf("Expected validation error, got %v", err)
	}
}

func TestResolveOrCreate_Concurrent(t *testing.T) {
	catalog, _, _, cleanup := setupServices(t)
	defer cleanup()

	ctx := context.Background()
	const workers = 8

	ids := make(chan string, workers)
	errs := make(chan error, workers)
	for i := 0; i < workers; i++ {
		go func() {
			album, err := catalog.ResolveOrCreate(ctx, "mbid-race", "Racing Album", "Artist", nil)
			if err != nil {
				errs <- err
				return
			}
			ids <- album.ID
		}()
	}

	var first string
	for i := 0; i < workers; i++ {
		select {
		case err := <-errs:
			t.Fatalf("ResolveOrCreate failed: %v", err)
		case id := <-ids:
			if first == "" {
				first = id
			} else if id != first {
				t.Errorf("Concurrent resolves produced different IDs: %s and %s", first, id)
			}
		}
	}
}
