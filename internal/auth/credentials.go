// Package auth implements the credential store: registration with a
// password strength policy, bcrypt hashing and credential verification.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/adlt1785/musicjournal-backend/internal/constants"
	"github.com/adlt1785/musicjournal-backend/internal/domain"
	"github.com/adlt1785/musicjournal-backend/internal/logger"
	"github.com/adlt1785/musicjournal-backend/internal/store"
)

type CredentialStore struct {
	DB     *store.DB
	Logger *logger.Logger
}

func NewCredentialStore(db *store.DB, log *logger.Logger) *CredentialStore {
	return &CredentialStore{
		DB:     db,
		Logger: log.WithComponent("auth"),
	}
}

// Register creates a new user. It fails with a ValidationError when
// username or password is missing, with domain.ErrWeakPassword when the
// password fails the strength policy, and with domain.ErrUsernameTaken on
// a duplicate username.
func (s *CredentialStore) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" {
		return nil, domain.NewValidationError("username", "is required")
	}
	if password == "" {
		return nil, domain.NewValidationError("password", "is required")
	}
	if !StrongPassword(password) {
		return nil, domain.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), constants.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.DB.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Verify checks a username/password pair. Unknown usernames and wrong
// passwords both fail with the same domain.ErrInvalidCredentials so the
// response never reveals which usernames exist.
func (s *CredentialStore) Verify(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := s.DB.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return user, nil
}

// StrongPassword reports whether the password satisfies the policy:
// at least 8 characters with lowercase, uppercase, digit and a character
// outside [A-Za-z0-9].
func StrongPassword(password string) bool {
	if len(password) < constants.MinPasswordLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	return hasLower && hasUpper && hasDigit && hasSpecial
}
