package service

import (
	"context"
	"testing"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/security"
	"github.com/grachmannico95/transfer-engine/internal/storage"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newDirectory(t *testing.T) (DirectoryService, *storage.MemoryStore) {
	t.Helper()
	store := storage.NewMemoryStore()
	return NewDirectoryService(store, security.NewHasher(bcrypt.MinCost), logger.NewNop()), store
}

func TestDirectoryService_CreateOwner(t *testing.T) {
	svc, store := newDirectory(t)
	ctx := context.Background()

	owner, err := svc.CreateOwner(ctx, CreateOwnerInput{
		Name:   "  Maria Silva ",
		Email:  "maria@example.com",
		Secret: "hunter2",
	})

	require.NoError(t, err)
	assert.Len(t, owner.ID, 36)
	assert.Equal(t, "Maria Silva", owner.Name)
	assert.NotEqual(t, "hunter2", owner.SecretHash)

	ok, err := store.Authenticate(ctx, owner.ID, "hunter2")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestDirectoryService_CreateOwner_Invalid(t *testing.T) {
	svc, _ := newDirectory(t)
	ctx := context.Background()

	_, err := svc.CreateOwner(ctx, CreateOwnerInput{Name: " ", Secret: "x"})
	assert.ErrorIs(t, err, domain.ErrInvalidOwner)

	_, err = svc.CreateOwner(ctx, CreateOwnerInput{Name: "No Secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidOwner)
	assert.ErrorIs(t, err, security.ErrEmptySecret)
}

func TestDirectoryService_UpdateOwner(t *testing.T) {
	svc, store := newDirectory(t)
	ctx := context.Background()

	owner, err := svc.CreateOwner(ctx, CreateOwnerInput{Name: "Old", Phone: "123", Secret: "first"})
	require.NoError(t, err)

	name, secret := "New", "second"
	updated, err := svc.UpdateOwner(ctx, owner.ID, UpdateOwnerInput{Name: &name, Secret: &secret})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Name)
	assert.Equal(t, "123", updated.Phone)

	ok, err := store.Authenticate(ctx, owner.ID, "first")
	require.NoError(t, err)
	assert.False(t, ok)
	ok, err = store.Authenticate(ctx, owner.ID, "second")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = svc.UpdateOwner(ctx, "missing", UpdateOwnerInput{Name: &name})
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}

func TestDirectoryService_Accounts(t *testing.T) {
	svc, _ := newDirectory(t)
	ctx := context.Background()

	owner, err := svc.CreateOwner(ctx, CreateOwnerInput{Name: "Owner", Secret: "pw"})
	require.NoError(t, err)

	account, err := svc.CreateAccount(ctx, CreateAccountInput{OwnerID: owner.ID, InitialBalance: decimal.NewFromInt(50)})
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, account.Currency)
	assert.Equal(t, domain.AccountStatusActive, account.Status)

	found, err := svc.GetAccount(ctx, account.ID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(50).Equal(found.Balance))

	accounts, err := svc.ListAccountsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	profile, err := svc.GetOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, profile.Accounts, 1)

	_, err = svc.CreateAccount(ctx, CreateAccountInput{OwnerID: owner.ID, InitialBalance: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)

	_, err = svc.CreateAccount(ctx, CreateAccountInput{OwnerID: owner.ID, InitialBalance: decimal.RequireFromString("10.005")})
	assert.ErrorIs(t, err, domain.ErrInvalidAccount)
	assert.ErrorIs(t, err, domain.ErrAmountPrecision)

	accounts, err = svc.ListAccountsByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Len(t, accounts, 1)

	_, err = svc.CreateAccount(ctx, CreateAccountInput{OwnerID: "ghost"})
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)

	_, err = svc.ListAccountsByOwner(ctx, "ghost")
	assert.ErrorIs(t, err, domain.ErrOwnerNotFound)
}
