package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"settleup/pkg/domain"
	"settleup/pkg/storage"
	"settleup/pkg/storage/postgres"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Begin_SuccessAndAlreadyInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	// Success: begin from *sql.DB
	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)
	require.NotNil(t, txStorage)

	// Should be a *postgres.PgSQL with underlying *sql.Tx
	inner, ok := txStorage.(*postgres.PgSQL)
	require.True(t, ok)
	_, isTx := inner.DB.(*sql.Tx)
	require.True(t, isTx)

	// Error: begin when already in tx
	_, err = inner.Begin(ctx)
	require.ErrorIs(t, err, storage.ErrAlreadyInTx)

	require.NoError(t, inner.Rollback())
}

func TestPgSQL_Commit_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Commit(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	userID := domain.UserID(uuid.New())
	s, err := txStorage.StoreSession(ctx, domain.Session{UserID: userID, Name: "Committed"})
	require.NoError(t, err)

	// not visible outside the tx yet
	outside, err := pg.SessionByID(ctx, userID, s.ID)
	require.NoError(t, err)
	require.Nil(t, outside)

	require.NoError(t, txStorage.Commit())

	outside, err = pg.SessionByID(ctx, userID, s.ID)
	require.NoError(t, err)
	require.NotNil(t, outside)
	require.Equal(t, "Committed", outside.Name)
}

func TestPgSQL_Rollback_SuccessAndNotInTx(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	require.ErrorIs(t, pg.Rollback(), storage.ErrNotInTx)

	txStorage, err := pg.Begin(ctx)
	require.NoError(t, err)

	userID := domain.UserID(uuid.New())
	s, err := txStorage.StoreSession(ctx, domain.Session{UserID: userID, Name: "Discarded"})
	require.NoError(t, err)

	require.NoError(t, txStorage.Rollback())

	outside, err := pg.SessionByID(ctx, userID, s.ID)
	require.NoError(t, err)
	require.Nil(t, outside)
}

func TestPgSQL_WithTx_CommitAndRollback(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	var committed *domain.Session
	err := pg.WithTx(ctx, func(s storage.AllStorage) error {
		var e error
		committed, e = s.StoreSession(ctx, domain.Session{UserID: userID, Name: "Kept"})

		return e //nolint: wrapcheck
	})
	require.NoError(t, err)

	got, err := pg.SessionByID(ctx, userID, committed.ID)
	require.NoError(t, err)
	require.NotNil(t, got)

	var discarded *domain.Session
	err = pg.WithTx(ctx, func(s storage.AllStorage) error {
		discarded, _ = s.StoreSession(ctx, domain.Session{UserID: userID, Name: "Lost"})

		return errors.New("boom")
	})
	require.EqualError(t, err, "boom")
	require.NotNil(t, discarded)

	got, err = pg.SessionByID(ctx, userID, discarded.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_WithTx_RollsBackOnPanic(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	userID := domain.UserID(uuid.New())

	var stored *domain.Session
	require.PanicsWithValue(t, "boom", func() {
		_ = pg.WithTx(ctx, func(s storage.AllStorage) error {
			stored, _ = s.StoreSession(ctx, domain.Session{UserID: userID, Name: "Lost"})

			panic("boom")
		})
	})
	require.NotNil(t, stored)

	got, err := pg.SessionByID(ctx, userID, stored.ID)
	require.NoError(t, err)
	require.Nil(t, got)
}
