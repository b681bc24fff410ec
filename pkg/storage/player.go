package storage

import (
	"context"
	"settleup/pkg/domain"
)

// PlayerUpdates describes the optional fields that can be changed on a
// player. Only non-nil fields are updated.
type PlayerUpdates struct {
	Name     *string
	TotalIn  *int64
	TotalOut *int64
}

// PlayerStorage defines operations on the players of a session. Callers are
// responsible for checking that the session belongs to the user.
type PlayerStorage interface {
	// StorePlayers appends players to their sessions and returns them as stored.
	StorePlayers(ctx context.Context, players ...domain.Player) ([]domain.Player, error)
	// UpdatePlayer applies updates to a player of the given session and
	// returns the updated row, or nil when not found.
	UpdatePlayer(ctx context.Context,
		sessionID domain.SessionID,
		ID domain.PlayerID,
		updates PlayerUpdates) (*domain.Player, error)
	// DeletePlayer removes a player from a session and returns it, or nil when not found.
	DeletePlayer(ctx context.Context, sessionID domain.SessionID, ID domain.PlayerID) (*domain.Player, error)
}
