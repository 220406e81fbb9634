package storage

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/security"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func seedAccount(t *testing.T, store *MemoryStore, id string, balance int64) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.GetOwner(ctx, "owner-1"); err != nil {
		require.NoError(t, store.CreateOwner(ctx, &domain.Owner{ID: "owner-1", Name: "JOHN DOE"}))
	}

	require.NoError(t, store.CreateAccount(ctx, &domain.Account{
		ID:        id,
		OwnerID:   "owner-1",
		Balance:   decimal.NewFromInt(balance),
		Status:    domain.AccountStatusActive,
		Currency:  domain.DefaultCurrency,
		CreatedAt: time.Now(),
	}))
}

func TestMemoryStore_CreateOwner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	err := store.CreateOwner(ctx, &domain.Owner{ID: "owner-1", Name: "JOHN DOE"})
	require.NoError(t, err)

	owner, err := store.GetOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "JOHN DOE", owner.Name)

	err = store.CreateOwner(ctx, &domain.Owner{ID: "owner-1"})
	assert.ErrorIs(t, err, domain.ErrOwnerExists)
}

func TestMemoryStore_GetOwner_NotFound(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.GetOwner(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStore_Authenticate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	hash, err := security.NewHasher(bcrypt.MinCost).Hash("correct-horse")
	require.NoError(t, err)
	require.NoError(t, store.CreateOwner(ctx, &domain.Owner{ID: "owner-1", SecretHash: hash}))

	ok, err := store.Authenticate(ctx, "owner-1", "correct-horse")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Authenticate(ctx, "owner-1", "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Authenticate(ctx, "unknown", "correct-horse")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_ResolveOwner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	seedAccount(t, store, "acc-a", 100)
	seedAccount(t, store, "acc-b", 200)

	profile, err := store.ResolveOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, profile.Accounts, 2)

	account, ok := profile.FindAccount("acc-b")
	require.True(t, ok)
	assert.True(t, decimal.NewFromInt(200).Equal(account.Balance))

	_, ok = profile.FindAccount("acc-z")
	assert.False(t, ok)
}

func TestMemoryStore_CreateAccount_UnknownOwner(t *testing.T) {
	store := NewMemoryStore()

	err := store.CreateAccount(context.Background(), &domain.Account{ID: "acc-a", OwnerID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestMemoryStore_GetAccount_ReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedAccount(t, store, "acc-a", 100)

	account, err := store.GetAccount(ctx, "acc-a")
	require.NoError(t, err)
	account.Balance = decimal.NewFromInt(999)

	again, err := store.GetAccount(ctx, "acc-a")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(again.Balance))

	_, err = store.GetAccount(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestMemoryStore_SaveAndFindTransfer(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := domain.NewTransferRecord("tr-1", "acc-a", "acc-b", decimal.NewFromInt(10), domain.TransferKindPIX, time.Now())
	require.NoError(t, store.SaveTransfer(ctx, record))

	found, err := store.FindTransfer(ctx, "tr-1")
	require.NoError(t, err)
	assert.Equal(t, record, found)

	_, err = store.FindTransfer(ctx, "tr-unknown")
	assert.ErrorIs(t, err, domain.ErrTransferNotFound)
}

func TestMemoryStore_FailureNotes(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.RecordFailureNote(ctx, domain.FailureNote{TransferID: "tr-1", Reason: "rejected"}))

	notes, err := store.ListFailureNotes(ctx, "tr-1")
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "rejected", notes[0].Reason)
	assert.False(t, notes[0].CreatedAt.IsZero())
}

func TestMemoryStore_IsEventProcessed(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	eventID := "event-1"

	processed, err := store.IsEventProcessed(ctx, eventID)
	require.NoError(t, err)
	assert.False(t, processed)

	err = store.MarkEventProcessed(ctx, eventID)
	require.NoError(t, err)

	processed, err = store.IsEventProcessed(ctx, eventID)
	require.NoError(t, err)
	assert.True(t, processed)
}

func TestUnitOfWork_CommitAppliesAllWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedAccount(t, store, "acc-a", 1000)
	seedAccount(t, store, "acc-b", 0)

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback(ctx)

	accounts, err := uow.LockAccounts(ctx, "acc-b", "acc-a")
	require.NoError(t, err)

	accounts["acc-a"].Balance = accounts["acc-a"].Balance.Sub(decimal.NewFromInt(300))
	accounts["acc-b"].Balance = accounts["acc-b"].Balance.Add(decimal.NewFromInt(300))
	require.NoError(t, uow.SaveAccount(ctx, accounts["acc-a"]))
	require.NoError(t, uow.SaveAccount(ctx, accounts["acc-b"]))
	require.NoError(t, uow.SaveTransfer(ctx, domain.NewTransferRecord("tr-1", "acc-a", "acc-b", decimal.NewFromInt(300), domain.TransferKindPIX, time.Now())))

	// Nothing visible before commit
	a, err := store.GetAccount(ctx, "acc-a")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(a.Balance))
	_, err = store.FindTransfer(ctx, "tr-1")
	assert.ErrorIs(t, err, domain.ErrTransferNotFound)

	require.NoError(t, uow.Commit(ctx))

	a, err = store.GetAccount(ctx, "acc-a")
	require.NoError(t, err)
	b, err := store.GetAccount(ctx, "acc-b")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(700).Equal(a.Balance))
	assert.True(t, decimal.NewFromInt(300).Equal(b.Balance))

	_, err = store.FindTransfer(ctx, "tr-1")
	assert.NoError(t, err)

	assert.ErrorIs(t, uow.Commit(ctx), domain.ErrUnitOfWorkClosed)
	assert.NoError(t, uow.Rollback(ctx))
}

func TestUnitOfWork_RollbackDiscardsWrites(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedAccount(t, store, "acc-a", 1000)

	uow, err := store.Begin(ctx)
	require.NoError(t, err)

	accounts, err := uow.LockAccounts(ctx, "acc-a")
	require.NoError(t, err)
	accounts["acc-a"].Balance = decimal.Zero
	require.NoError(t, uow.SaveAccount(ctx, accounts["acc-a"]))

	require.NoError(t, uow.Rollback(ctx))

	a, err := store.GetAccount(ctx, "acc-a")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(1000).Equal(a.Balance))

	_, err = uow.LockAccounts(ctx, "acc-a")
	assert.ErrorIs(t, err, domain.ErrUnitOfWorkClosed)
}

func TestUnitOfWork_LockAccounts_NotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback(ctx)

	_, err = uow.LockAccounts(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestUnitOfWork_LockBlocksSecondWriterUntilRelease(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedAccount(t, store, "acc-a", 1000)

	first, err := store.Begin(ctx)
	require.NoError(t, err)
	_, err = first.LockAccounts(ctx, "acc-a")
	require.NoError(t, err)

	second, err := store.Begin(ctx)
	require.NoError(t, err)
	defer second.Rollback(ctx)

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = second.LockAccounts(waitCtx, "acc-a")
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, first.Rollback(ctx))

	_, err = second.LockAccounts(ctx, "acc-a")
	assert.NoError(t, err)
}

func TestUnitOfWork_GetTransferForUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	record := domain.NewTransferRecord("tr-1", "acc-a", "acc-b", decimal.NewFromInt(10), domain.TransferKindPIX, time.Now())
	require.NoError(t, record.Complete())
	require.NoError(t, store.SaveTransfer(ctx, record))

	uow, err := store.Begin(ctx)
	require.NoError(t, err)
	defer uow.Rollback(ctx)

	found, err := uow.GetTransferForUpdate(ctx, "tr-1")
	require.NoError(t, err)
	require.NoError(t, found.MarkReversed(time.Now()))
	require.NoError(t, uow.SaveTransfer(ctx, found))

	staged, err := uow.GetTransferForUpdate(ctx, "tr-1")
	require.NoError(t, err)
	assert.Equal(t, domain.TransferStatusReversed, staged.Status)

	_, err = uow.GetTransferForUpdate(ctx, "tr-missing")
	assert.ErrorIs(t, err, domain.ErrTransferNotFound)
}

func TestUnitOfWork_Concurrency(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	seedAccount(t, store, "acc-a", 1000)
	seedAccount(t, store, "acc-b", 1000)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()

			from, to := "acc-a", "acc-b"
			if i%2 == 0 {
				from, to = to, from
			}

			uow, err := store.Begin(ctx)
			if err != nil {
				return
			}
			defer uow.Rollback(ctx)

			accounts, err := uow.LockAccounts(ctx, from, to)
			if err != nil {
				return
			}
			accounts[from].Balance = accounts[from].Balance.Sub(decimal.NewFromInt(1))
			accounts[to].Balance = accounts[to].Balance.Add(decimal.NewFromInt(1))
			_ = uow.SaveAccount(ctx, accounts[from])
			_ = uow.SaveAccount(ctx, accounts[to])
			_ = uow.Commit(ctx)
		}(i)
	}
	wg.Wait()

	a, err := store.GetAccount(ctx, "acc-a")
	require.NoError(t, err)
	b, err := store.GetAccount(ctx, "acc-b")
	require.NoError(t, err)

	assert.True(t, decimal.NewFromInt(2000).Equal(a.Balance.Add(b.Balance)))
	assert.True(t, decimal.NewFromInt(1000).Equal(a.Balance))
}
