package services

import (
	"context"
	"fmt"

	"github.com/adlt1785/musicjournal-backend/internal/constants"
	"github.com/adlt1785/musicjournal-backend/internal/domain"
	"github.com/adlt1785/musicjournal-backend/internal/logger"
	"github.com/adlt1785/musicjournal-backend/internal/store"
)

// JournalService manages a user's journaled albums, notes and track
// ratings. All mutations are idempotent upserts keyed on the store's
// unique constraints.
type JournalService struct {
	DB      *store.DB
	Catalog *CatalogResolver
	Logger  *logger.Logger
}

func NewJournalService(db *store.DB, catalog *CatalogResolver, log *logger.Logger) *JournalService {
	return &JournalService{
		DB:      db,
		Catalog: catalog,
		Logger:  log.WithComponent("journal"),
	}
}

// AttachAlbum idempotently records that the user journaled the album.
func (s *JournalService) AttachAlbum(ctx context.Context, userID, albumID string) error {
	return s.DB.AttachAlbum(ctx, userID, albumID)
}

// SetNotes overwrites the notes on a journaled album; nil clears them.
// The album must already be attached.
func (s *JournalService) SetNotes(ctx context.Context, userID, albumID string, notes *string) error {
	return s.DB.SetNotes(ctx, userID, albumID, notes)
}

// ListAlbums returns the user's journal, most recently journaled first.
func (s *JournalService) ListAlbums(ctx context.Context, userID string) ([]domain.JournaledAlbum, error) {
	return s.DB.ListJournaledAlbums(ctx, userID)
}

// UpsertRating validates and stores a track rating for a journaled
// album. Re-rating the same track overwrites the previous value.
func (s *JournalService) UpsertRating(ctx context.Context, userID, albumID, trackID, trackName string, rating int) error {
	if trackID == "" {
		return domain.NewValidationError("trackId", "is required")
	}
	if rating < constants.MinRating || rating > constants.MaxRating {
		return domain.NewValidationError("rating", fmt.Sprintf("must be an integer between %d and %d", constants.MinRating, constants.MaxRating))
	}

	return s.DB.UpsertRating(ctx, &domain.TrackRating{
		UserID:    userID,
		AlbumID:   albumID,
		TrackID:   trackID,
		TrackName: trackName,
		Rating:    rating,
	})
}

// GetRatings returns the user's ratings for the album with the given
// external id, keyed by track id. An external id this system has never
// seen yields an empty map: no album, no ratings.
func (s *JournalService) GetRatings(ctx context.Context, userID, externalID string) (map[string]domain.TrackRating, error) {
	ratings := map[string]domain.TrackRating{}

	album, err := s.DB.GetAlbumByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if album == nil {
		return ratings, nil
	}

	rows, err := s.DB.ListRatings(ctx, userID, album.ID)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		ratings[r.TrackID] = r
	}
	return ratings, nil
}
