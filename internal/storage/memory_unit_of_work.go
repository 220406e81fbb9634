package storage

import (
	"context"
	"sort"
	"sync"

	"github.com/grachmannico95/transfer-engine/internal/domain"
)

// memoryUnitOfWork stages writes locally and applies them to the store in a
// single critical section on Commit. Rows it touches stay locked until the
// unit ends.
type memoryUnitOfWork struct {
	store     *MemoryStore
	held      map[string]bool
	accounts  map[string]*domain.Account
	transfers map[string]*domain.TransferRecord
	done      bool
}

func accountKey(id string) string  { return "account:" + id }
func transferKey(id string) string { return "transfer:" + id }

func (u *memoryUnitOfWork) lock(ctx context.Context, key string) error {
	if u.held[key] {
		return nil
	}
	if err := u.store.locks.acquire(ctx, key); err != nil {
		return err
	}
	u.held[key] = true
	return nil
}

func (u *memoryUnitOfWork) LockAccounts(ctx context.Context, accountIDs ...string) (map[string]*domain.Account, error) {
	if u.done {
		return nil, domain.ErrUnitOfWorkClosed
	}

	ids := uniqueSorted(accountIDs)
	for _, id := range ids {
		if err := u.lock(ctx, accountKey(id)); err != nil {
			return nil, err
		}
	}

	locked := make(map[string]*domain.Account, len(ids))
	for _, id := range ids {
		if staged, ok := u.accounts[id]; ok {
			c := *staged
			locked[id] = &c
			continue
		}

		account, err := u.store.GetAccount(ctx, id)
		if err != nil {
			return nil, err
		}
		locked[id] = account
	}

	return locked, nil
}

func (u *memoryUnitOfWork) SaveAccount(ctx context.Context, account *domain.Account) error {
	if u.done {
		return domain.ErrUnitOfWorkClosed
	}
	if err := u.lock(ctx, accountKey(account.ID)); err != nil {
		return err
	}

	c := *account
	u.accounts[account.ID] = &c

	return nil
}

func (u *memoryUnitOfWork) GetTransferForUpdate(ctx context.Context, transferID string) (*domain.TransferRecord, error) {
	if u.done {
		return nil, domain.ErrUnitOfWorkClosed
	}
	if err := u.lock(ctx, transferKey(transferID)); err != nil {
		return nil, err
	}

	if staged, ok := u.transfers[transferID]; ok {
		return staged.Clone(), nil
	}

	return u.store.FindTransfer(ctx, transferID)
}

func (u *memoryUnitOfWork) SaveTransfer(ctx context.Context, record *domain.TransferRecord) error {
	if u.done {
		return domain.ErrUnitOfWorkClosed
	}

	u.transfers[record.ID] = record.Clone()

	return nil
}

func (u *memoryUnitOfWork) Commit(ctx context.Context) error {
	if u.done {
		return domain.ErrUnitOfWorkClosed
	}
	defer u.release()

	if err := ctx.Err(); err != nil {
		return err
	}

	u.store.mu.Lock()
	for id, account := range u.accounts {
		u.store.accounts[id] = account
	}
	for id, record := range u.transfers {
		u.store.transfers[id] = record
	}
	u.store.mu.Unlock()

	return nil
}

func (u *memoryUnitOfWork) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.release()
	return nil
}

func (u *memoryUnitOfWork) release() {
	u.done = true
	for key := range u.held {
		u.store.locks.release(key)
	}
	u.held = nil
	u.accounts = nil
	u.transfers = nil
}

func uniqueSorted(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// keyedLocks hands out one exclusive, context-aware lock per key.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[string]chan struct{}
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[string]chan struct{})}
}

func (k *keyedLocks) slot(key string) chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()

	ch, ok := k.locks[key]
	if !ok {
		ch = make(chan struct{}, 1)
		k.locks[key] = ch
	}
	return ch
}

func (k *keyedLocks) acquire(ctx context.Context, key string) error {
	select {
	case k.slot(key) <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (k *keyedLocks) release(key string) {
	<-k.slot(key)
}
