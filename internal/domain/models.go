package domain

import (
	"time"
)

// User represents a registered account. PasswordHash never leaves the
// store/auth layers and is excluded from API responses.
type User struct {
	ID           string    `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Album is a catalog record shared across all users. ExternalID is the
// stable key from the outside catalog; metadata is fixed at first sight.
type Album struct {
	ID         string  `json:"id" db:"id"`
	ExternalID string  `json:"external_id" db:"external_id"`
	Title      string  `json:"title" db:"title"`
	Artist     string  `json:"artist" db:"artist"`
	CoverURL   *string `json:"cover_url,omitempty" db:"cover_url"`
}

// UserAlbum is the journal row tying a user to an album.
type UserAlbum struct {
	UserID    string    `json:"user_id" db:"user_id"`
	AlbumID   string    `json:"album_id" db:"album_id"`
	Notes     *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// JournaledAlbum is the journal listing view: album metadata joined with
// the user's notes and journaling time.
type JournaledAlbum struct {
	ExternalID string    `json:"externalId" db:"external_id"`
	Title      string    `json:"title" db:"title"`
	Artist     string    `json:"artist" db:"artist"`
	CoverURL   *string   `json:"coverUrl,omitempty" db:"cover_url"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// TrackRating is a per-user per-track rating, unique on
// (user_id, album_id, track_id).
type TrackRating struct {
	UserID    string    `json:"-" db:"user_id"`
	AlbumID   string    `json:"-" db:"album_id"`
	TrackID   string    `json:"trackId" db:"track_id"`
	TrackName string    `json:"trackName" db:"track_name"`
	Rating    int       `json:"rating" db:"rating"`
	UpdatedAt time.Time `json:"-" db:"updated_at"`
}

// Session maps an opaque token to a user. Expiry is fixed at creation,
// not sliding.
type Session struct {
	ID        string    `json:"-" db:"id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
