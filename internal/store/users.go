package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/adlt1785/musicjournal-backend/internal/domain"
)

// CreateUser inserts a new user row. A duplicate username surfaces as
// domain.ErrUsernameTaken; usernames match case-sensitively.
func (db *DB) CreateUser(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, username, password_hash, created_at)
		VALUES (:id, :username, :password_hash, :created_at)`

	if _, err := db.NamedExecContext(ctx, query, user); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByUsername returns the user with the given username, or nil when
// no such user exists.
func (db *DB) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `SELECT * FROM users WHERE username = ?`

	var user domain.User
	err := db.GetContext(ctx, &user, query, username)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}
	return &user, nil
}

// GetUserByID returns the user with the given id, or nil when absent.
func (db *DB) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT * FROM users WHERE id = ?`

	var user domain.User
	err := db.GetContext(ctx, &user, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}
	return &user, nil
}
