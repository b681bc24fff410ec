package postgres

import (
	"context"
	"fmt"
	"settleup/pkg/domain"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	settlementsTable = "settlements"
)

// StoreSettlement upserts the settlement of a session. A second call for the
// same session replaces the transfers and settle version and resets created_at.
func (p *PgSQL) StoreSettlement(ctx context.Context, s domain.Settlement) (*domain.Settlement, error) {
	var row PgSettlement
	if err := row.FromDomain(s); err != nil {
		return nil, err
	}

	var result PgSettlement
	if _, err := p.Builder.Insert(settlementsTable).
		Rows(row).
		OnConflict(goqu.DoUpdate("session_id", goqu.Record{
			"settle_version": goqu.L("EXCLUDED.settle_version"),
			"transfers":      goqu.L("EXCLUDED.transfers"),
			"created_at":     goqu.L("CURRENT_TIMESTAMP"),
		})).
		Returning(&PgSettlement{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store settlement into pg: %w", err)
	}

	return result.ToDomain()
}

func (p *PgSQL) SettlementBySessionID(ctx context.Context, sessionID domain.SessionID) (*domain.Settlement, error) {
	var row PgSettlement
	found, err := p.Builder.From(settlementsTable).
		Where(goqu.I("session_id").Eq(uuid.UUID(sessionID))).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch settlement from pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

func (p *PgSQL) DeleteSettlement(ctx context.Context, sessionID domain.SessionID) error {
	if _, err := p.Builder.Delete(settlementsTable).
		Where(goqu.I("session_id").Eq(uuid.UUID(sessionID))).
		Executor().ExecContext(ctx); err != nil {
		return fmt.Errorf("could not delete settlement from pg: %w", err)
	}

	return nil
}
