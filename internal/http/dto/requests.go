// Package dto defines the JSON request shapes of the API and their
// field validation.
package dto

import (
	"github.com/adlt1785/musicjournal-backend/internal/constants"
	"github.com/adlt1785/musicjournal-backend/internal/domain"
)

// CredentialsRequest is the body of POST /register and POST /login.
type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *CredentialsRequest) Validate() error {
	if err := requireString("username", r.Username); err != nil {
		return err
	}
	return requireString("password", r.Password)
}

// SaveAlbumRequest is the body of POST /user/albums.
type SaveAlbumRequest struct {
	ExternalID string  `json:"externalId"`
	Title      string  `json:"title"`
	Artist     string  `json:"artist"`
	CoverURL   *string `json:"coverUrl,omitempty"`
}

func (r *SaveAlbumRequest) Validate() error {
	if err := requireString("externalId", r.ExternalID); err != nil {
		return err
	}
	if err := requireString("title", r.Title); err != nil {
		return err
	}
	return requireString("artist", r.Artist)
}

// AlbumNotesRequest is the body of POST /user/album-notes. Title and
// artist are optional; absent values fall back to the unknown-album
// placeholders.
type AlbumNotesRequest struct {
	AlbumExternalID string  `json:"albumExternalId"`
	AlbumTitle      string  `json:"albumTitle"`
	AlbumArtist     string  `json:"albumArtist"`
	CoverURL        *string `json:"coverUrl,omitempty"`
	Notes           *string `json:"notes,omitempty"`
}

func (r *AlbumNotesRequest) Validate() error {
	return requireString("albumExternalId", r.AlbumExternalID)
}

// Title returns the album title, defaulted when the client sent none.
func (r *AlbumNotesRequest) Title() string {
	if r.AlbumTitle == "" {
		return constants.UnknownAlbumTitle
	}
	return r.AlbumTitle
}

// Artist returns the album artist, defaulted when the client sent none.
func (r *AlbumNotesRequest) Artist() string {
	if r.AlbumArtist == "" {
		return constants.UnknownAlbumArtist
	}
	return r.AlbumArtist
}

// RatingRequest is the body of POST /user/ratings. Rating is decoded as
// a float so fractional values fail validation instead of JSON decoding.
type RatingRequest struct {
	AlbumExternalID string  `json:"albumExternalId"`
	AlbumTitle      string  `json:"albumTitle"`
	AlbumArtist     string  `json:"albumArtist"`
	CoverURL        *string `json:"coverUrl,omitempty"`
	TrackID         string  `json:"trackId"`
	TrackName       string  `json:"trackName"`
	Rating          float64 `json:"rating"`
}

func (r *RatingRequest) Validate() error {
	if err := requireString("albumExternalId", r.AlbumExternalID); err != nil {
		return err
	}
	if err := requireString("trackId", r.TrackID); err != nil {
		return err
	}
	if err := requireString("trackName", r.TrackName); err != nil {
		return err
	}
	return validateRating(r.Rating)
}

// Title returns the album title, defaulted when the client sent none.
func (r *RatingRequest) Title() string {
	if r.AlbumTitle == "" {
		return constants.UnknownAlbumTitle
	}
	return r.AlbumTitle
}

// Artist returns the album artist, defaulted when the client sent none.
func (r *RatingRequest) Artist() string {
	if r.AlbumArtist == "" {
		return constants.UnknownAlbumArtist
	}
	return r.AlbumArtist
}

// RatingValue returns the validated rating as an integer.
func (r *RatingRequest) RatingValue() int {
	return int(r.Rating)
}

// UserResponse is the user shape returned by /register, /login and /me.
type UserResponse struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at,omitempty"`
}

// NewUserResponse builds the API view of a user.
func NewUserResponse(user *domain.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID,
		Username: user.Username,
	}
}
