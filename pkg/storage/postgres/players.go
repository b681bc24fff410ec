package postgres

import (
	"context"
	"fmt"
	"settleup/pkg/domain"
	"settleup/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
)

const (
	playersTable = "players"
)

// StorePlayers inserts the players in the given order. Their positions are
// assigned by the database so the join order survives later edits.
func (p *PgSQL) StorePlayers(ctx context.Context, players ...domain.Player) ([]domain.Player, error) {
	if len(players) == 0 {
		return []domain.Player{}, nil
	}

	var result []PgPlayer
	if err := p.Builder.Insert(playersTable).
		Rows(domainPlayersToPg(players)).
		Returning(&PgPlayer{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store players into pg: %w", err)
	}

	return pgPlayersToDomain(result), nil
}

func (p *PgSQL) UpdatePlayer(ctx context.Context,
	sessionID domain.SessionID,
	ID domain.PlayerID,
	updates storage.PlayerUpdates) (*domain.Player, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.TotalIn != nil {
		rec["total_in"] = *updates.TotalIn
	}
	if updates.TotalOut != nil {
		rec["total_out"] = *updates.TotalOut
	}

	var row PgPlayer
	found, err := p.Builder.Update(playersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(ID)),
		goqu.I("session_id").Eq(uuid.UUID(sessionID)),
	).Returning(&PgPlayer{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update player in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	player := row.ToDomain()

	return &player, nil
}

func (p *PgSQL) DeletePlayer(ctx context.Context, sessionID domain.SessionID, ID domain.PlayerID) (*domain.Player, error) {
	var row PgPlayer
	found, err := p.Builder.Delete(playersTable).Where(
		goqu.I("id").Eq(uuid.UUID(ID)),
		goqu.I("session_id").Eq(uuid.UUID(sessionID)),
	).Returning(&PgPlayer{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete player in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	player := row.ToDomain()

	return &player, nil
}
