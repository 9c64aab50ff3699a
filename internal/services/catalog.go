// Package services holds the core journal operations: resolving catalog
// albums and mutating per-user journal state.
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adlt1785/musicjournal-backend/internal/domain"
	"github.com/adlt1785/musicjournal-backend/internal/logger"
	"github.com/adlt1785/musicjournal-backend/internal/store"
)

// CatalogResolver maps external catalog identifiers to internal album
// rows, creating them on first sight.
type CatalogResolver struct {
	DB     *store.DB
	Logger *logger.Logger
}

func NewCatalogResolver(db *store.DB, log *logger.Logger) *CatalogResolver {
	return &CatalogResolver{
		DB:     db,
		Logger: log.WithComponent("catalog"),
	}
}

// ResolveOrCreate returns the album for the external id, inserting it on
// first reference. Metadata of an existing album is left untouched: the
// first write wins. A concurrent first reference for the same external id
// is resolved by the unique constraint plus a re-lookup, so exactly one
// row ever exists per external id.
func (r *CatalogResolver) ResolveOrCreate(ctx context.Context, externalID, title, artist string, coverURL *string) (*domain.Album, error) {
	if externalID == "" {
		return nil, domain.NewValidationError("externalId", "is required")
	}

	existing, err := r.DB.GetAlbumByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	album := &domain.Album{
		ID:         uuid.New().String(),
		ExternalID: externalID,
		Title:      title,
		Artist:     artist,
		CoverURL:   coverURL,
	}
	if err := r.DB.InsertAlbumIgnore(ctx, album); err != nil {
		return nil, err
	}

	// Re-lookup instead of trusting our insert: a racing request may have
	// won the constraint, and its row is the canonical one.
	created, err := r.DB.GetAlbumByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("album %s missing after insert", externalID)
	}
	if created.ID == album.ID {
		r.Logger.Info("album created", "album_id", created.ID, "external_id", externalID)
	}
	return created, nil
}
