package postgres

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/jackc/pgx/v5"
)

// unitOfWork wraps one database transaction. Row locks taken with FOR UPDATE
// are held until Commit or Rollback.
type unitOfWork struct {
	tx   pgx.Tx
	done bool
}

func (u *unitOfWork) LockAccounts(ctx context.Context, accountIDs ...string) (map[string]*domain.Account, error) {
	if u.done {
		return nil, domain.ErrUnitOfWorkClosed
	}

	ids := make([]string, 0, len(accountIDs))
	seen := make(map[string]bool, len(accountIDs))
	for _, id := range accountIDs {
		if !seen[id] {
			seen[id] = true
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	rows, err := u.tx.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE id = ANY($1)
		ORDER BY id
		FOR UPDATE`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}
	defer rows.Close()

	locked := make(map[string]*domain.Account, len(ids))
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		locked[account.ID] = account
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to lock accounts: %w", err)
	}

	for _, id := range ids {
		if _, ok := locked[id]; !ok {
			return nil, domain.ErrAccountNotFound
		}
	}

	return locked, nil
}

func (u *unitOfWork) SaveAccount(ctx context.Context, account *domain.Account) error {
	if u.done {
		return domain.ErrUnitOfWorkClosed
	}
	return saveAccount(ctx, u.tx, account)
}

func (u *unitOfWork) GetTransferForUpdate(ctx context.Context, transferID string) (*domain.TransferRecord, error) {
	if u.done {
		return nil, domain.ErrUnitOfWorkClosed
	}
	return findTransfer(ctx, u.tx, transferID, true)
}

func (u *unitOfWork) SaveTransfer(ctx context.Context, record *domain.TransferRecord) error {
	if u.done {
		return domain.ErrUnitOfWorkClosed
	}
	return saveTransfer(ctx, u.tx, record)
}

func (u *unitOfWork) Commit(ctx context.Context) error {
	if u.done {
		return domain.ErrUnitOfWorkClosed
	}
	u.done = true

	if err := u.tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (u *unitOfWork) Rollback(ctx context.Context) error {
	if u.done {
		return nil
	}
	u.done = true

	// The deadline may already have passed; the rollback itself must still run.
	err := u.tx.Rollback(context.WithoutCancel(ctx))
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return fmt.Errorf("failed to rollback: %w", err)
	}
	return nil
}
