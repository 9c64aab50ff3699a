// Package constants contains application-wide constants to avoid magic numbers and strings.
package constants

import "time"

// Application defaults
const (
	DefaultPort      = "8080"
	DefaultDBPath    = "musicjournal.db"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Sessions
const (
	SessionCookieName    = "musicjournal_session"
	SessionTTL           = 7 * 24 * time.Hour
	SessionSweepInterval = 1 * time.Hour
)

// Password policy
const (
	MinPasswordLength = 8
	BcryptCost        = 10
)

// Ratings
const (
	MinRating = 1
	MaxRating = 5
)

// Album metadata fallbacks used when a client journals an album
// without supplying title or artist.
const (
	UnknownAlbumTitle  = "Unknown album"
	UnknownAlbumArtist = "Unknown artist"
)

// Database
const (
	UsersTable        = "users"
	AlbumsTable       = "albums"
	UserAlbumsTable   = "user_albums"
	TrackRatingsTable = "track_ratings"
	SessionsTable     = "sessions"
)
