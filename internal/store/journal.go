package store

import (
	"context"
	"fmt"
	"time"

	"github.com/adlt1785/musicjournal-backend/internal/domain"
)

// AttachAlbum records that a user journaled an album. Attaching an
// already journaled album is a no-op; the existing row keeps its notes
// and created_at.
func (db *DB) AttachAlbum(ctx context.Context, userID, albumID string) error {
	query := `INSERT INTO user_albums (user_id, album_id, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, album_id) DO NOTHING`

	if _, err := db.ExecContext(ctx, query, userID, albumID, time.Now()); err != nil {
		return fmt.Errorf("failed to attach album: %w", err)
	}
	return nil
}

// SetNotes overwrites the notes on an existing journal row. A nil notes
// value clears them. The row must already exist; callers attach first.
func (db *DB) SetNotes(ctx context.Context, userID, albumID string, notes *string) error {
	query := `UPDATE user_albums SET notes = ? WHERE user_id = ? AND album_id = ?`

	result, err := db.ExecContext(ctx, query, notes, userID, albumID)
	if err != nil {
		return fmt.Errorf("failed to set notes: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListJournaledAlbums returns the user's journal, most recently
// journaled first.
func (db *DB) ListJournaledAlbums(ctx context.Context, userID string) ([]domain.JournaledAlbum, error) {
	query := `SELECT a.external_id, a.title, a.artist, a.cover_url, ua.notes, ua.created_at
		FROM user_albums ua
		JOIN albums a ON a.id = ua.album_id
		WHERE ua.user_id = ?
		ORDER BY ua.created_at DESC`

	albums := []domain.JournaledAlbum{}
	if err := db.SelectContext(ctx, &albums, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list journaled albums: %w", err)
	}
	return albums, nil
}

// UpsertRating inserts the rating, or overwrites rating, track name and
// updated_at when a row for (user, album, track) already exists.
func (db *DB) UpsertRating(ctx context.Context, rating *domain.TrackRating) error {
	rating.UpdatedAt = time.Now()

	query := `INSERT INTO track_ratings (user_id, album_id, track_id, track_name, rating, updated_at)
		VALUES (:user_id, :album_id, :track_id, :track_name, :rating, :updated_at)
		ON CONFLICT(user_id, album_id, track_id) DO UPDATE SET
			track_name = excluded.track_name,
			rating = excluded.rating,
			updated_at = excluded.updated_at`

	if _, err := db.NamedExecContext(ctx, query, rating); err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}

// ListRatings returns all of a user's ratings for one album.
func (db *DB) ListRatings(ctx context.Context, userID, albumID string) ([]domain.TrackRating, error) {
	query := `SELECT * FROM track_ratings WHERE user_id = ? AND album_id = ?`

	ratings := []domain.TrackRating{}
	if err := db.SelectContext(ctx, &ratings, query, userID, albumID); err != nil {
		return nil, fmt.Errorf("failed to list ratings: %w", err)
	}
	return ratings, nil
}
