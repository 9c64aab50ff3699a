// Package session issues and validates opaque session tokens backed by
// the sessions table, with a fixed TTL and a background expiry sweeper.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adlt1785/musicjournal-backend/internal/constants"
	"github.com/adlt1785/musicjournal-backend/internal/domain"
	"github.com/adlt1785/musicjournal-backend/internal/logger"
	"github.com/adlt1785/musicjournal-backend/internal/store"
)

type Manager struct {
	DB     *store.DB
	TTL    time.Duration
	Logger *logger.Logger
}

func NewManager(db *store.DB, log *logger.Logger) *Manager {
	return &Manager{
		DB:     db,
		TTL:    constants.SessionTTL,
		Logger: log.WithComponent("session"),
	}
}

// Start creates a session for the user and returns it. Expiry is fixed
// at creation time, not refreshed on use.
func (m *Manager) Start(ctx context.Context, userID, username string) (*domain.Session, error) {
	now := time.Now()
	session := &domain.Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(m.TTL),
	}
	if err := m.DB.CreateSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Authenticate resolves a token to its session. Unknown and expired
// tokens both return nil with no error; callers treat nil as
// unauthenticated. Expired rows are removed opportunistically, the
// sweeper catches the rest.
func (m *Manager) Authenticate(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, nil
	}

	session, err := m.DB.GetSession(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, nil
	}
	if session.Expired(time.Now()) {
		if err := m.DB.DeleteSession(ctx, token); err != nil {
			m.Logger.Warn("failed to delete expired session", "error", err)
		}
		return nil, nil
	}
	return session, nil
}

// Destroy invalidates a session. Destroying an absent session is a no-op.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return m.DB.DeleteSession(ctx, token)
}
