package postgres

import (
	"context"
	"fmt"
	"settleup/pkg/domain"
	"settleup/pkg/storage"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"
	"github.com/google/uuid"
)

const (
	sessionsTable = "sessions"
)

func (p *PgSQL) StoreSession(ctx context.Context, session domain.Session) (*domain.Session, error) {
	var row PgSession
	row.FromDomain(session)

	var result PgSession
	if _, err := p.Builder.Insert(sessionsTable).
		Rows(row).
		Returning(&PgSession{}).
		Executor().ScanStructContext(ctx, &result); err != nil {
		return nil, fmt.Errorf("could not store session into pg: %w", err)
	}

	stored := result.ToDomain()
	stored.Players = []domain.Player{}

	return stored, nil
}

// SessionByID returns a session owned by userID with its players, excluding
// soft-deleted rows.
func (p *PgSQL) SessionByID(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.Session, error) {
	return p.sessionByID(ctx, p.Builder.From(sessionsTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	))
}

// SessionForUpdate is SessionByID with a row lock held until the surrounding
// transaction finishes. Outside a transaction the lock is released at once.
func (p *PgSQL) SessionForUpdate(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID) (*domain.Session, error) {
	return p.sessionByID(ctx, p.Builder.From(sessionsTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).ForUpdate(exp.Wait))
}

// SessionForUpdateUnscoped locks a session regardless of the owner and
// returns it with its players.
func (p *PgSQL) SessionForUpdateUnscoped(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	return p.sessionByID(ctx, p.Builder.From(sessionsTable).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).ForUpdate(exp.Wait))
}

func (p *PgSQL) sessionByID(ctx context.Context, ds *goqu.SelectDataset) (*domain.Session, error) {
	var row PgSession
	found, err := ds.Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch session by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	session := row.ToDomain()
	players, err := p.sessionPlayers(ctx, session.ID)
	if err != nil {
		return nil, err
	}
	session.Players = players[session.ID]
	if session.Players == nil {
		session.Players = []domain.Player{}
	}

	return session, nil
}

// sessionPlayers loads the players of the given sessions in join order,
// grouped by session.
func (p *PgSQL) sessionPlayers(ctx context.Context,
	ids ...domain.SessionID) (map[domain.SessionID][]domain.Player, error) {
	if len(ids) == 0 {
		return map[domain.SessionID][]domain.Player{}, nil
	}

	raw := make([]interface{}, len(ids))
	for i, id := range ids {
		raw[i] = uuid.UUID(id)
	}

	var rows []PgPlayer
	if err := p.Builder.From(playersTable).
		Where(goqu.I("session_id").In(raw...)).
		Order(goqu.I("position").Asc()).
		Executor().ScanStructsContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("could not fetch session players from pg: %w", err)
	}

	out := make(map[domain.SessionID][]domain.Player, len(ids))
	for _, player := range pgPlayersToDomain(rows) {
		out[player.SessionID] = append(out[player.SessionID], player)
	}

	return out, nil
}

// UserSessions returns a list of sessions for a user filtered by optional cursor and limited by limit.
// Results are ordered by created_at DESC, id DESC and carry their players.
func (p *PgSQL) UserSessions(ctx context.Context,
	userID domain.UserID,
	cursor *storage.SessionCursor,
	limit uint) (storage.UserSessions, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if cursor != nil {
		w = append(w, goqu.L("(created_at, id) < (?, ?)", cursor.CreatedAt, uuid.UUID(cursor.ID)))
	}

	// fetch one extra to determine if there is a next page
	fetch := limit + 1
	ds := p.Builder.From(sessionsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgSession
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserSessions{}, fmt.Errorf("could not fetch user sessions from pg: %w", err)
	}

	// if we fetched more than the limit, there is a next page
	var nextCursor *storage.SessionCursor
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		last := trimmed[len(trimmed)-1]
		nextCursor = &storage.SessionCursor{
			CreatedAt: last.CreatedAt,
			ID:        domain.SessionID(last.ID),
		}
		rows = trimmed
	}

	sessions := make([]domain.Session, 0, len(rows))
	ids := make([]domain.SessionID, 0, len(rows))
	for i := range rows {
		sessions = append(sessions, *rows[i].ToDomain())
		ids = append(ids, domain.SessionID(rows[i].ID))
	}

	players, err := p.sessionPlayers(ctx, ids...)
	if err != nil {
		return storage.UserSessions{}, err
	}
	for i := range sessions {
		sessions[i].Players = players[sessions[i].ID]
		if sessions[i].Players == nil {
			sessions[i].Players = []domain.Player{}
		}
	}

	return storage.UserSessions{
		Sessions:   sessions,
		NextCursor: nextCursor,
	}, nil
}

// UpdateSession sets the provided fields and updated_at on a session of the
// user, returning the updated row without players.
func (p *PgSQL) UpdateSession(ctx context.Context,
	userID domain.UserID,
	id domain.SessionID,
	updates storage.SessionUpdates) (*domain.Session, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.Name != nil {
		rec["name"] = *updates.Name
	}
	if updates.Date != nil {
		rec["played_at"] = *updates.Date
	}
	if updates.IsSettled != nil {
		rec["is_settled"] = *updates.IsSettled
		if *updates.IsSettled {
			rec["settle_version"] = goqu.L("settle_version + 1")
		}
	}

	var row PgSession
	found, err := p.Builder.Update(sessionsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSession{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not update session in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// DeleteSession performs a soft delete by setting deleted_at timestamp
// for a given session id and user, returning the deleted record.
func (p *PgSQL) DeleteSession(ctx context.Context, userID domain.UserID, id domain.SessionID) (*domain.Session, error) {
	var row PgSession
	found, err := p.Builder.Update(sessionsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgSession{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not delete session in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}
