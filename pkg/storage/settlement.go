package storage

import (
	"context"
	"settleup/pkg/domain"
)

// SettlementStorage persists the recorded settlement of a session. There is
// at most one settlement per session.
type SettlementStorage interface {
	// StoreSettlement inserts or replaces the settlement of its session.
	StoreSettlement(ctx context.Context, settlement domain.Settlement) (*domain.Settlement, error)
	// SettlementBySessionID returns the recorded settlement, or nil when none exists.
	SettlementBySessionID(ctx context.Context, sessionID domain.SessionID) (*domain.Settlement, error)
	// DeleteSettlement removes the recorded settlement of a session, if any.
	DeleteSettlement(ctx context.Context, sessionID domain.SessionID) error
}
