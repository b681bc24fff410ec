package postgres_test

import (
	"context"
	"settleup/pkg/domain"
	"settleup/pkg/storage"
	"testing"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_SessionLifecycle(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession(t, pg, "Friday game")
	require.NotEqual(t, domain.SessionID(uuid.Nil), s.ID)
	require.False(t, s.IsSettled)
	require.Empty(t, s.Players)

	players, err := pg.StorePlayers(ctx,
		domain.Player{SessionID: s.ID, Name: "John", TotalIn: 100, TotalOut: 250},
		domain.Player{SessionID: s.ID, Name: "Mike", TotalIn: 200, TotalOut: 50},
		domain.Player{SessionID: s.ID, Name: "Sarah", TotalIn: 100, TotalOut: 200},
	)
	require.NoError(t, err)
	require.Len(t, players, 3)
	require.Less(t, players[0].Position, players[1].Position)
	require.Less(t, players[1].Position, players[2].Position)

	got, err := pg.SessionByID(ctx, s.UserID, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Friday game", got.Name)
	require.Len(t, got.Players, 3)
	require.Equal(t, []string{"John", "Mike", "Sarah"},
		[]string{got.Players[0].Name, got.Players[1].Name, got.Players[2].Name})
	require.Equal(t, int64(400), got.TotalPot())

	// other users cannot see it
	other, err := pg.SessionByID(ctx, domain.UserID(uuid.New()), s.ID)
	require.NoError(t, err)
	require.Nil(t, other)

	// unscoped lookup ignores the owner
	err = pg.WithTx(ctx, func(tx storage.AllStorage) error {
		unscoped, err := tx.SessionForUpdateUnscoped(ctx, s.ID)
		require.NoError(t, err)
		require.NotNil(t, unscoped)
		require.Len(t, unscoped.Players, 3)
		require.Zero(t, unscoped.SettleVersion)

		return nil
	})
	require.NoError(t, err)

	name := "Saturday game"
	settled := true
	updated, err := pg.UpdateSession(ctx, s.UserID, s.ID, storage.SessionUpdates{
		Name:      &name,
		IsSettled: &settled,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, name, updated.Name)
	require.True(t, updated.IsSettled)
	require.Equal(t, int64(1), updated.SettleVersion)
	require.False(t, updated.UpdatedAt.IsZero())
	require.True(t, s.Date.Equal(updated.Date))

	// unsettling keeps the version, settling again bumps it
	settled = false
	updated, err = pg.UpdateSession(ctx, s.UserID, s.ID, storage.SessionUpdates{IsSettled: &settled})
	require.NoError(t, err)
	require.False(t, updated.IsSettled)
	require.Equal(t, int64(1), updated.SettleVersion)
	settled = true
	updated, err = pg.UpdateSession(ctx, s.UserID, s.ID, storage.SessionUpdates{IsSettled: &settled})
	require.NoError(t, err)
	require.Equal(t, int64(2), updated.SettleVersion)

	deleted, err := pg.DeleteSession(ctx, s.UserID, s.ID)
	require.NoError(t, err)
	require.NotNil(t, deleted)
	require.False(t, deleted.DeletedAt.IsZero())

	gone, err := pg.SessionByID(ctx, s.UserID, s.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	again, err := pg.DeleteSession(ctx, s.UserID, s.ID)
	require.NoError(t, err)
	require.Nil(t, again)

	missing, err := pg.UpdateSession(ctx, s.UserID, s.ID, storage.SessionUpdates{Name: &name})
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_SessionForUpdate(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession(t, pg, "Locked")

	err := pg.WithTx(ctx, func(tx storage.AllStorage) error {
		locked, err := tx.SessionForUpdate(ctx, s.UserID, s.ID)
		require.NoError(t, err)
		require.NotNil(t, locked)
		require.Equal(t, s.ID, locked.ID)

		return nil
	})
	require.NoError(t, err)

	missing, err := pg.SessionForUpdate(ctx, s.UserID, domain.SessionID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestPgSQL_UserSessions_Pagination(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	var ids []domain.SessionID
	for _, name := range []string{"one", "two", "three"} {
		s, err := pg.StoreSession(ctx, domain.Session{UserID: userID, Name: name})
		require.NoError(t, err)
		_, err = pg.StorePlayers(ctx, domain.Player{SessionID: s.ID, Name: "p-" + name, TotalIn: 10})
		require.NoError(t, err)
		ids = append(ids, s.ID)
		time.Sleep(5 * time.Millisecond)
	}

	page, err := pg.UserSessions(ctx, userID, nil, 2)
	require.NoError(t, err)
	require.Len(t, page.Sessions, 2)
	require.Equal(t, ids[2], page.Sessions[0].ID)
	require.Equal(t, ids[1], page.Sessions[1].ID)
	require.Len(t, page.Sessions[0].Players, 1)
	require.Equal(t, "p-three", page.Sessions[0].Players[0].Name)
	require.NotNil(t, page.NextCursor)

	require.Equal(t, ids[1], page.NextCursor.ID)

	next, err := pg.UserSessions(ctx, userID, page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, next.Sessions, 1)
	require.Equal(t, ids[0], next.Sessions[0].ID)
	require.Nil(t, next.NextCursor)

	none, err := pg.UserSessions(ctx, domain.UserID(uuid.New()), nil, 10)
	require.NoError(t, err)
	require.Empty(t, none.Sessions)
	require.Nil(t, none.NextCursor)
}

func TestPgSQL_UserSessions_SameCreatedAt(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	seen := map[domain.SessionID]bool{}
	for range 5 {
		s, err := pg.StoreSession(ctx, domain.Session{UserID: userID, Name: "tie"})
		require.NoError(t, err)
		seen[s.ID] = false
	}
	createdAt := time.Date(2025, time.December, 26, 20, 0, 0, 0, time.UTC)
	_, err := pg.Builder.Update("sessions").
		Set(goqu.Record{"created_at": createdAt}).
		Where(goqu.I("user_id").Eq(uuid.UUID(userID))).
		Executor().ExecContext(ctx)
	require.NoError(t, err)

	var cursor *storage.SessionCursor
	pages := 0
	for {
		page, err := pg.UserSessions(ctx, userID, cursor, 2)
		require.NoError(t, err)
		pages++
		for _, s := range page.Sessions {
			require.False(t, seen[s.ID], "session %s returned twice", s.ID)
			seen[s.ID] = true
		}
		if page.NextCursor == nil {
			break
		}
		require.True(t, createdAt.Equal(page.NextCursor.CreatedAt))
		cursor = page.NextCursor
	}

	require.Equal(t, 3, pages)
	for id, ok := range seen {
		require.True(t, ok, "session %s was skipped", id)
	}
}

func TestPgSQL_Players_UpdateAndDelete(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession(t, pg, "Edits")

	players, err := pg.StorePlayers(ctx,
		domain.Player{SessionID: s.ID, Name: "Tom", TotalIn: 150},
		domain.Player{SessionID: s.ID, Name: "Ann", TotalIn: 50, TotalOut: 200},
	)
	require.NoError(t, err)

	empty, err := pg.StorePlayers(ctx)
	require.NoError(t, err)
	require.Empty(t, empty)

	out := int64(50)
	updated, err := pg.UpdatePlayer(ctx, s.ID, players[0].ID, storage.PlayerUpdates{TotalOut: &out})
	require.NoError(t, err)
	require.NotNil(t, updated)
	require.Equal(t, "Tom", updated.Name)
	require.Equal(t, int64(150), updated.TotalIn)
	require.Equal(t, int64(50), updated.TotalOut)
	require.Equal(t, players[0].Position, updated.Position)

	// wrong session
	wrong, err := pg.UpdatePlayer(ctx, domain.SessionID(uuid.New()), players[0].ID, storage.PlayerUpdates{TotalOut: &out})
	require.NoError(t, err)
	require.Nil(t, wrong)

	removed, err := pg.DeletePlayer(ctx, s.ID, players[1].ID)
	require.NoError(t, err)
	require.NotNil(t, removed)
	require.Equal(t, "Ann", removed.Name)

	again, err := pg.DeletePlayer(ctx, s.ID, players[1].ID)
	require.NoError(t, err)
	require.Nil(t, again)

	got, err := pg.SessionByID(ctx, s.UserID, s.ID)
	require.NoError(t, err)
	require.Len(t, got.Players, 1)
	require.Equal(t, int64(-100), got.Players[0].Net())
}

func TestPgSQL_StorePlayers_RejectsNegativeAmounts(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	s := newSession(t, pg, "Checks")
	_, err := pg.StorePlayers(context.Background(), domain.Player{SessionID: s.ID, Name: "Bad", TotalIn: -1})
	require.Error(t, err)
}
