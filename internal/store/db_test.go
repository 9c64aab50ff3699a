package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/adlt1785/musicjournal-backend/internal/domain"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	tmpFile := t.Name() + ".db"
	db, err := NewSQLiteDB(tmpFile)
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
	return db, cleanup
}

func createTestUser(t *testing.T, db *DB, username string) *domain.User {
	t.Helper()
	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: "$2a$10$notarealhashnotarealhashnotarealhash",
		CreatedAt:    time.Now(),
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	return user
}

func createTestAlbum(t *testing.T, db *DB, externalID, title string) *domain.Album {
	t.Helper()
	album := &domain.Album{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		Title:      title,
		Artist:     "Test Artist",
	}
	if err := db.InsertAlbumIgnore(context.Background(), album); err != nil {
		t.Fatalf("InsertAlbumIgnore failed: %v", err)
	}
	return album
}

func TestDB_Users(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "alice")

	// Test GetUserByUsername
	fetched, err := db.GetUserByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected user, got nil")
	}
	if fetched.ID != user.ID {
		t.Errorf("Expected ID %s, got %s", user.ID, fetched.ID)
	}

	// Lookup is case-sensitive
	fetched, err = db.GetUserByUsername(ctx, "Alice")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if fetched != nil {
		t.Error("Expected nil for different-case username")
	}

	// Unknown user is nil, not an error
	fetched, err = db.GetUserByUsername(ctx, "nobody")
	if err != nil {
		t.Fatalf("GetUserByUsername failed: %v", err)
	}
	if fetched != nil {
		t.Error("Expected nil for unknown username")
	}

	// Test GetUserByID
	fetched, err = db.GetUserByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetUserByID failed: %v", err)
	}
	if fetched == nil || fetched.Username != "alice" {
		t.Errorf("Expected alice, got %+v", fetched)
	}
}

func TestDB_Users_DuplicateUsername(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	createTestUser(t, db, "alice")

	dup := &domain.User{
		ID:           uuid.New().String(),
		Username:     "alice",
		PasswordHash: "hash",
		CreatedAt:    time.Now(),
	}
	err := db.CreateUser(context.Background(), dup)
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("Expected ErrUsernameTaken, got %v", err)
	}
}

func TestDB_Albums_FirstWriteWins(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	first := createTestAlbum(t, db, "mbid-1", "OK Computer")

	// A second insert with the same external id is ignored
	second := &domain.Album{
		ID:         uuid.New().String(),
		ExternalID: "mbid-1",
		Title:      "A Different Title",
		Artist:     "Someone Else",
	}
	if err := db.InsertAlbumIgnore(ctx, second); err != nil {
		t.Fatalf("InsertAlbumIgnore failed: %v", err)
	}

	fetched, err := db.GetAlbumByExternalID(ctx, "mbid-1")
	if err != nil {
		t.Fatalf("GetAlbumByExternalID failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("Expected album, got nil")
	}
	if fetched.ID != first.ID {
		t.Errorf("Expected ID %s, got %s", first.ID, fetched.ID)
	}
	if fetched.Title != "OK Computer" {
		t.Errorf("Expected first title to win, got %q", fetched.Title)
	}

	// Unknown external id is nil, not an error
	fetched, err = db.GetAlbumByExternalID(ctx, "mbid-unknown")
	if err != nil {
		t.Fatalf("GetAlbumByExternalID failed: %v", err)
	}
	if fetched != nil {
		t.Error("Expected nil for unknown external id")
	}
}

func TestDB_AttachAlbum_Idempotent(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "alice")
	album := createTestAlbum(t, db, "mbid-1", "OK Computer")

	if err := db.AttachAlbum(ctx, user.ID, album.ID); err != nil {
		t.Fatalf("AttachAlbum failed: %v", err)
	}

	notes := "great record"
	if err := db.SetNotes(ctx, user.ID, album.ID, &notes); err != nil {
		t.Fatalf("SetNotes failed: %v", err)
	}

	// Second attach is a no-op and must not clobber notes
	if err := db.AttachAlbum(ctx, user.ID, album.ID); err != nil {
		t.Fatalf("Second AttachAlbum failed: %v", err)
	}

	list, err := db.ListJournaledAlbums(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListJournaledAlbums failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("Expected 1 journaled album, got %d", len(list))
	}
	if list[0].Notes == nil || *list[0].Notes != "great record" {
		t.Errorf("Expected notes to survive re-attach, got %v", list[0].Notes)
	}
}

func TestDB_SetNotes(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "alice")
	album := createTestAlbum(t, db, "mbid-1", "OK Computer")

	// Notes on a non-attached album are rejected
	notes := "not yet"
	err := db.SetNotes(ctx, user.ID, album.ID, &notes)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if err := db.AttachAlbum(ctx, user.ID, album.ID); err != nil {
		t.Fatalf("AttachAlbum failed: %v", err)
	}
	if err := db.SetNotes(ctx, user.ID, album.ID, &notes); err != nil {
		t.Fatalf("SetNotes failed: %v", err)
	}

	// nil clears the notes
	if err := db.SetNotes(ctx, user.ID, album.ID, nil); err != nil {
		t.Fatalf("SetNotes(nil) failed: %v", err)
	}
	list, err := db.ListJournaledAlbums(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListJournaledAlbums failed: %v", err)
	}
	if list[0].Notes != nil {
		t.Errorf("Expected cleared notes, got %v", *list[0].Notes)
	}
}

func TestDB_ListJournaledAlbums_Order(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "alice")
	albumA := createTestAlbum(t, db, "mbid-a", "Album A")
	albumB := createTestAlbum(t, db, "mbid-b", "Album B")

	if err := db.AttachAlbum(ctx, user.ID, albumA.ID); err != nil {
		t.Fatalf("AttachAlbum failed: %v", err)
	}
	// Ensure distinct created_at values
	time.Sleep(5 * time.Millisecond)
	if err := db.AttachAlbum(ctx, user.ID, albumB.ID); err != nil {
		t.Fatalf("AttachAlbum failed: %v", err)
	}

	list, err := db.ListJournaledAlbums(ctx, user.ID)
	if err != nil {
		t.Fatalf("ListJournaledAlbums failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 albums, got %d", len(list))
	}
	if list[0].ExternalID != "mbid-b" || list[1].ExternalID != "mbid-a" {
		t.Errorf("Expected [mbid-b, mbid-a], got [%s, %s]", list[0].ExternalID, list[1].ExternalID)
	}
}

func TestDB_UpsertRating(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "alice")
	album := createTestAlbum(t, db, "mbid-1", "OK Computer")

	rating := &domain.TrackRating{
		UserID:    user.ID,
		AlbumID:   album.ID,
		TrackID:   "t1",
		TrackName: "Airbag",
		Rating:    3,
	}
	if err := db.UpsertRating(ctx, rating); err != nil {
		t.Fatalf("UpsertRating failed: %v", err)
	}

	// Overwrite the same key
	rating.Rating = 5
	if err := db.UpsertRating(ctx, rating); err != nil {
		t.Fatalf("Second UpsertRating failed: %v", err)
	}

	ratings, err := db.ListRatings(ctx, user.ID, album.ID)
	if err != nil {
		t.Fatalf("ListRatings failed: %v", err)
	}
	if len(ratings) != 1 {
		t.Fatalf("Expected exactly 1 rating row, got %d", len(ratings))
	}
	if ratings[0].Rating != 5 {
		t.Errorf("Expected rating 5, got %d", ratings[0].Rating)
	}
	if ratings[0].TrackName != "Airbag" {
		t.Errorf("Expected track name Airbag, got %s", ratings[0].TrackName)
	}
}

func TestDB_Sessions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "alice")

	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := db.CreateSession(ctx, session); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	fetched, err := db.GetSession(ctx, session.ID)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if fetched == nil || fetched.UserID != user.ID {
		t.Fatalf("Expected session for %s, got %+v", user.ID, fetched)
	}

	// Unknown token is nil, not an error
	fetched, err = db.GetSession(ctx, "no-such-token")
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if fetched != nil {
		t.Error("Expected nil for unknown token")
	}

	// Delete is idempotent
	if err := db.DeleteSession(ctx, session.ID); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if err := db.DeleteSession(ctx, session.ID); err != nil {
		t.Errorf("Deleting absent session should not error: %v", err)
	}
}

func TestDB_DeleteExpiredSessions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	user := createTestUser(t, db, "alice")
	now := time.Now()

	expired := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now.Add(-8 * 24 * time.Hour),
		ExpiresAt: now.Add(-24 * time.Hour),
	}
	live := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
	for _, s := range []*domain.Session{expired, live} {
		if err := db.CreateSession(ctx, s); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}

	swept, err := db.DeleteExpiredSessions(ctx, now)
	if err != nil {
		t.Fatalf("DeleteExpiredSessions failed: %v", err)
	}
	if swept != 1 {
		t.Errorf("Expected 1 swept session, got %d", swept)
	}

	if s, _ := db.GetSession(ctx, live.ID); s == nil {
		t.Error("Live session should survive the sweep")
	}
	if s, _ := db.GetSession(ctx, expired.ID); s != nil {
		t.Error("Expired session should be gone")
	}
}
