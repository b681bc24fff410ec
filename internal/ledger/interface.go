package ledger

import (
	"context"
	"settleup/pkg/domain"
	"time"
)

// SessionUpdates lists the session fields a user may change. Nil fields are kept.
type SessionUpdates struct {
	Name *string
	Date *time.Time
}

// PlayerUpdates lists the player fields a user may change. Nil fields are kept.
type PlayerUpdates struct {
	Name     *string
	TotalIn  *int64
	TotalOut *int64
}

//go:generate mockgen -package mockledger -source=interface.go -destination=mock/mockledger.go *
type Ledger interface {
	CreateSession(ctx context.Context, userID domain.UserID, name string, date time.Time) (*domain.Session, error)
	Sessions(ctx context.Context, userID domain.UserID, cursor string, limit uint) ([]domain.Session, string, error)
	Session(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*domain.Session, error)
	UpdateSession(ctx context.Context,
		userID domain.UserID,
		sessionID domain.SessionID,
		updates SessionUpdates) (*domain.Session, error)
	DeleteSession(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) error

	AddPlayer(ctx context.Context,
		userID domain.UserID,
		sessionID domain.SessionID,
		name string,
		totalIn int64) (*domain.Player, error)
	UpdatePlayer(ctx context.Context,
		userID domain.UserID,
		sessionID domain.SessionID,
		playerID domain.PlayerID,
		updates PlayerUpdates) (*domain.Player, error)
	RemovePlayer(ctx context.Context, userID domain.UserID, sessionID domain.SessionID, playerID domain.PlayerID) error

	Preview(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*domain.Report, error)
	Settle(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*domain.Report, error)
	Unsettle(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) error
	Settlement(ctx context.Context, userID domain.UserID, sessionID domain.SessionID) (*domain.Settlement, error)

	// RecordSettlement computes and stores the settlement of a session that is
	// still settled at settleVersion. It is called by the settlement worker and
	// is not scoped to a user.
	RecordSettlement(ctx context.Context, sessionID domain.SessionID, settleVersion int64) (*domain.Settlement, error)
}
