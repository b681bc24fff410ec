package postgres_test

import (
	"context"
	"settleup/pkg/domain"
	"settleup/pkg/settlement"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Settlements(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	s := newSession(t, pg, "Settled")

	none, err := pg.SettlementBySessionID(ctx, s.ID)
	require.NoError(t, err)
	require.Nil(t, none)

	first, err := pg.StoreSettlement(ctx, domain.Settlement{
		SessionID:     s.ID,
		SettleVersion: 1,
		Transfers: []settlement.Transfer{
			{From: "Mike", To: "John", Amount: 150},
			{From: "Tom", To: "Sarah", Amount: 100},
		},
	})
	require.NoError(t, err)
	require.Equal(t, s.ID, first.SessionID)
	require.Equal(t, int64(1), first.SettleVersion)
	require.Len(t, first.Transfers, 2)
	require.False(t, first.CreatedAt.IsZero())

	// storing again replaces the transfers
	second, err := pg.StoreSettlement(ctx, domain.Settlement{SessionID: s.ID})
	require.NoError(t, err)
	require.Empty(t, second.Transfers)
	require.NotNil(t, second.Transfers)

	got, err := pg.SettlementBySessionID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got.Transfers)

	_, err = pg.StoreSettlement(ctx, domain.Settlement{
		SessionID:     s.ID,
		SettleVersion: 3,
		Transfers:     []settlement.Transfer{{From: "Mike", To: "John", Amount: 150}},
	})
	require.NoError(t, err)
	got, err = pg.SettlementBySessionID(ctx, s.ID)
	require.NoError(t, err)
	require.Equal(t, int64(3), got.SettleVersion)
	require.Equal(t, []settlement.Transfer{{From: "Mike", To: "John", Amount: 150}}, got.Transfers)

	require.NoError(t, pg.DeleteSettlement(ctx, s.ID))
	gone, err := pg.SettlementBySessionID(ctx, s.ID)
	require.NoError(t, err)
	require.Nil(t, gone)

	// deleting a missing settlement is not an error
	require.NoError(t, pg.DeleteSettlement(ctx, s.ID))
}

func TestPgSQL_StoreSettlement_UnknownSession(t *testing.T) {
	pg, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := pg.StoreSettlement(context.Background(), domain.Settlement{SessionID: domain.SessionID(uuid.New())})
	require.Error(t, err)
}
