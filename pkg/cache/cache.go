// Package cache defines the read-through cache the ledger keeps recorded
// settlements in. Backends live in sub packages.
//
//go:generate mockgen -package mockcache -source=cache.go -destination=mock/mockcache.go
package cache

import (
	"context"
	"settleup/pkg/domain"
)

// SettlementCache caches recorded settlements by session. A miss is reported
// as a nil settlement and a nil error.
type SettlementCache interface {
	Get(ctx context.Context, sessionID domain.SessionID) (*domain.Settlement, error)
	Set(ctx context.Context, settlement domain.Settlement) error
	Delete(ctx context.Context, sessionID domain.SessionID) error
}

// Nop is a SettlementCache that never stores anything.
type Nop struct{}

func (Nop) Get(context.Context, domain.SessionID) (*domain.Settlement, error) { return nil, nil }

func (Nop) Set(context.Context, domain.Settlement) error { return nil }

func (Nop) Delete(context.Context, domain.SessionID) error { return nil }
