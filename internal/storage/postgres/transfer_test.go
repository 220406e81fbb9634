package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/service"
	"github.com/grachmannico95/transfer-engine/internal/settlement"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTransferService(store *Store) service.TransferService {
	return service.NewTransferService(
		store,
		store,
		settlement.NewSimulatedAuthority(settlement.SimulatedConfig{}),
		nil,
		service.TransferConfig{InstitutionID: "000", Timeout: 5 * time.Second},
		logger.NewNop(),
	)
}

func totalBalance(t *testing.T, store *Store, ids ...string) decimal.Decimal {
	t.Helper()
	total := decimal.Zero
	for _, id := range ids {
		account, err := store.GetAccount(context.Background(), id)
		require.NoError(t, err)
		total = total.Add(account.Balance)
	}
	return total
}

func TestSchema_MoneyScaleMatchesDomain(t *testing.T) {
	store := newTestStore(t)

	columns := map[string]string{
		"accounts":  "balance",
		"transfers": "amount",
	}
	for table, column := range columns {
		var scale int
		err := store.pool.QueryRow(context.Background(),
			`SELECT numeric_scale::int FROM information_schema.columns
			 WHERE table_schema = current_schema() AND table_name = $1 AND column_name = $2`,
			table, column,
		).Scan(&scale)
		require.NoError(t, err)
		assert.Equal(t, domain.AmountScale, scale, "%s.%s", table, column)
	}
}

func TestFundsTransfer_ConservesBalancesInPostgres(t *testing.T) {
	store := newTestStore(t)
	svc := newTransferService(store)
	ctx := context.Background()

	ownerID, ids := seedOwnerWithAccounts(t, store, 1000, 0)
	creds := &domain.Credentials{OwnerID: ownerID, Secret: "secret"}
	before := totalBalance(t, store, ids...)

	moved := decimal.Zero
	for _, raw := range []string{"0.01", "0.10", "333.33", "12.500"} {
		amount := decimal.RequireFromString(raw)
		record, err := svc.FundsTransfer(ctx, service.TransferRequest{
			Credentials:          creds,
			SourceAccountID:      ids[0],
			DestinationAccountID: ids[1],
			Amount:               amount,
		})
		require.NoError(t, err, raw)
		assert.Equal(t, domain.TransferStatusCompleted, record.Status)
		moved = moved.Add(amount)

		assert.True(t, before.Equal(totalBalance(t, store, ids...)), "total changed after %s", raw)
	}

	destination, err := store.GetAccount(ctx, ids[1])
	require.NoError(t, err)
	assert.True(t, moved.Equal(destination.Balance))

	for _, raw := range []string{"0.005", "0.001"} {
		_, err := svc.FundsTransfer(ctx, service.TransferRequest{
			Credentials:          creds,
			SourceAccountID:      ids[0],
			DestinationAccountID: ids[1],
			Amount:               decimal.RequireFromString(raw),
		})
		assert.ErrorIs(t, err, domain.ErrAmountPrecision, raw)
		assert.True(t, before.Equal(totalBalance(t, store, ids...)), "total changed after %s", raw)
	}
}

func TestReversalTransaction_ConservesBalancesInPostgres(t *testing.T) {
	store := newTestStore(t)
	svc := newTransferService(store)
	ctx := context.Background()

	ownerID, ids := seedOwnerWithAccounts(t, store, 500, 0)
	before := totalBalance(t, store, ids...)

	original, err := svc.FundsTransfer(ctx, service.TransferRequest{
		Credentials:          &domain.Credentials{OwnerID: ownerID, Secret: "secret"},
		SourceAccountID:      ids[0],
		DestinationAccountID: ids[1],
		Amount:               decimal.RequireFromString("200.25"),
	})
	require.NoError(t, err)

	reversal, err := svc.ReversalTransaction(ctx, service.ReversalRequest{
		TransferID: original.ID,
		Amount:     decimal.RequireFromString("100.05"),
		Reason:     "partial refund",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusCompleted, reversal.Status)

	assert.True(t, before.Equal(totalBalance(t, store, ids...)))

	stored, err := store.FindTransfer(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusReversed, stored.Status)

	source, err := store.GetAccount(ctx, ids[0])
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("399.80").Equal(source.Balance))
}
