package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adlt1785/musicjournal-backend/internal/domain"
)

// GetAlbumByExternalID returns the album with the given catalog key, or
// nil when no such album exists.
func (db *DB) GetAlbumByExternalID(ctx context.Context, externalID string) (*domain.Album, error) {
	query := `SELECT * FROM albums WHERE external_id = ?`

	var album domain.Album
	err := db.GetContext(ctx, &album, query, externalID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get album by external id: %w", err)
	}
	return &album, nil
}

// InsertAlbumIgnore inserts the album unless a row with the same
// external_id already exists. A concurrent insert of the same external_id
// is resolved by the unique constraint; the loser's row is simply dropped
// and the caller re-looks-up the winner.
func (db *DB) InsertAlbumIgnore(ctx context.Context, album *domain.Album) error {
	query := `INSERT INTO albums (id, external_id, title, artist, cover_url)
		VALUES (:id, :external_id, :title, :artist, :cover_url)
		ON CONFLICT(external_id) DO NOTHING`

	if _, err := db.NamedExecContext(ctx, query, album); err != nil {
		return fmt.Errorf("failed to insert album: %w", err)
	}
	return nil
}
