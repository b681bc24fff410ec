package storage

import (
	"context"
	"settleup/pkg/domain"
	"time"
)

// SessionUpdates describes the optional fields that can be changed on an
// existing session. Only non-nil fields are updated.
type SessionUpdates struct {
	Name      *string
	Date      *time.Time
	IsSettled *bool
}

// SessionCursor is the position of the last session of a page. Sessions are
// ordered by (CreatedAt, ID) so rows sharing a timestamp are not skipped.
type SessionCursor struct {
	CreatedAt time.Time
	ID        domain.SessionID
}

// UserSessions groups a page of sessions returned for a user together with an
// optional NextCursor used for pagination.
type UserSessions struct {
	// Sessions contains the current page, newest first, with players loaded.
	Sessions []domain.Session
	// NextCursor is the cursor for fetching the next page. It is nil when there
	// is no next page.
	NextCursor *SessionCursor
}

// SessionStorage defines CRUD and query operations on sessions. All lookups
// are scoped to the owning user and ignore soft-deleted sessions.
type SessionStorage interface {
	// StoreSession inserts a session and returns it as stored, with generated fields.
	StoreSession(ctx context.Context, session domain.Session) (*domain.Session, error)
	// SessionByID fetches a session of the given user with its players in
	// join order. Returns nil when not found.
	SessionByID(ctx context.Context, userID domain.UserID, ID domain.SessionID) (*domain.Session, error)
	// SessionForUpdate is SessionByID that also locks the session row until
	// the surrounding transaction ends.
	SessionForUpdate(ctx context.Context, userID domain.UserID, ID domain.SessionID) (*domain.Session, error)
	// UserSessions returns a page of sessions for a user that sort after the
	// optional cursor, limited by the given limit.
	UserSessions(ctx context.Context, userID domain.UserID, cursor *SessionCursor, limit uint) (UserSessions, error)
	// UpdateSession applies updates to a session of the given user and returns
	// the updated row (without players), or nil when not found. Setting
	// IsSettled to true bumps the settle version.
	UpdateSession(ctx context.Context,
		userID domain.UserID,
		ID domain.SessionID,
		updates SessionUpdates) (*domain.Session, error)
	// DeleteSession soft-deletes a session and returns it, or nil if it was not found.
	DeleteSession(ctx context.Context, userID domain.UserID, ID domain.SessionID) (*domain.Session, error)
	// SessionForUpdateUnscoped fetches and locks a session with its players
	// regardless of owner. It is used by background jobs. Returns nil when not found.
	SessionForUpdateUnscoped(ctx context.Context, ID domain.SessionID) (*domain.Session, error)
}
