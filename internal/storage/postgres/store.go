package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/security"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	pool   *pgxpool.Pool
	hasher *security.Hasher
}

var _ domain.Repository = (*Store)(nil)

func NewStore(pool *pgxpool.Pool, hasher *security.Hasher) *Store {
	return &Store{pool: pool, hasher: hasher}
}

const (
	ownerColumns    = `id, name, email, phone, address, secret_hash, created_at, updated_at`
	accountColumns  = `id, owner_id, balance, status, currency, account_type, created_at, updated_at`
	transferColumns = `id, source_account_id, destination_account_id, amount, kind, status,
		created_at, reversed_at, reason_for_reversal, original_transfer_id`
)

func isPgError(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// Owner directory

func (s *Store) CreateOwner(ctx context.Context, owner *domain.Owner) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO owners (`+ownerColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		owner.ID, owner.Name, owner.Email, owner.Phone, owner.Address, owner.SecretHash,
		owner.CreatedAt, owner.UpdatedAt,
	)
	if isPgError(err, pgUniqueViolation) {
		return domain.ErrOwnerExists
	}
	if err != nil {
		return fmt.Errorf("failed to create owner: %w", err)
	}
	return nil
}

func (s *Store) GetOwner(ctx context.Context, ownerID string) (*domain.Owner, error) {
	var owner domain.Owner
	err := s.pool.QueryRow(ctx, `SELECT `+ownerColumns+` FROM owners WHERE id = $1`, ownerID).Scan(
		&owner.ID, &owner.Name, &owner.Email, &owner.Phone, &owner.Address, &owner.SecretHash,
		&owner.CreatedAt, &owner.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrOwnerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get owner: %w", err)
	}
	return &owner, nil
}

func (s *Store) UpdateOwner(ctx context.Context, owner *domain.Owner) error {
	tag, err := s.pool.Exec(ctx, `
		UPDATE owners
		SET name = $2, email = $3, phone = $4, address = $5, secret_hash = $6, updated_at = $7
		WHERE id = $1`,
		owner.ID, owner.Name, owner.Email, owner.Phone, owner.Address, owner.SecretHash, owner.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update owner: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrOwnerNotFound
	}
	return nil
}

func (s *Store) Authenticate(ctx context.Context, ownerID, secret string) (bool, error) {
	var hash string
	err := s.pool.QueryRow(ctx, `SELECT secret_hash FROM owners WHERE id = $1`, ownerID).Scan(&hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load credentials: %w", err)
	}
	return s.hasher.Verify(hash, secret), nil
}

func (s *Store) ResolveOwner(ctx context.Context, ownerID string) (*domain.OwnerProfile, error) {
	owner, err := s.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	accounts, err := s.ListAccountsByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return &domain.OwnerProfile{Owner: *owner, Accounts: accounts}, nil
}

// Account store

func (s *Store) CreateAccount(ctx context.Context, account *domain.Account) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		account.ID, account.OwnerID, account.Balance, string(account.Status), account.Currency,
		account.AccountType, account.CreatedAt, account.UpdatedAt,
	)
	if isPgError(err, pgForeignKeyViolation) {
		return domain.ErrOwnerNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (s *Store) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return getAccount(ctx, s.pool, accountID)
}

func (s *Store) SaveAccount(ctx context.Context, account *domain.Account) error {
	return saveAccount(ctx, s.pool, account)
}

func (s *Store) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT `+accountColumns+` FROM accounts
		WHERE owner_id = $1
		ORDER BY created_at, id`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *account)
	}

	return accounts, rows.Err()
}

// Transaction log

func (s *Store) SaveTransfer(ctx context.Context, record *domain.TransferRecord) error {
	return saveTransfer(ctx, s.pool, record)
}

func (s *Store) FindTransfer(ctx context.Context, transferID string) (*domain.TransferRecord, error) {
	return findTransfer(ctx, s.pool, transferID, false)
}

func (s *Store) RecordFailureNote(ctx context.Context, note domain.FailureNote) error {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}

	_, err := s.pool.Exec(ctx, `
		INSERT INTO failure_notes (transfer_id, reason, created_at) VALUES ($1, $2, $3)`,
		note.TransferID, note.Reason, note.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record failure note: %w", err)
	}
	return nil
}

func (s *Store) ListFailureNotes(ctx context.Context, transferID string) ([]domain.FailureNote, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT transfer_id, reason, created_at FROM failure_notes
		WHERE transfer_id = $1
		ORDER BY id`, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to list failure notes: %w", err)
	}
	defer rows.Close()

	notes := []domain.FailureNote{}
	for rows.Next() {
		var note domain.FailureNote
		if err := rows.Scan(&note.TransferID, &note.Reason, &note.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}

	return notes, rows.Err()
}

// Audit log

func (s *Store) AppendAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO audit_entries (event_id, transfer_id, action, status, reason, occurred_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (event_id) DO NOTHING`,
		entry.EventID, entry.TransferID, string(entry.Action), string(entry.Status), entry.Reason, entry.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

func (s *Store) ListAuditEntries(ctx context.Context, transferID string) ([]domain.AuditEntry, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT event_id, transfer_id, action, status, reason, occurred_at FROM audit_entries
		WHERE transfer_id = $1
		ORDER BY occurred_at, event_id`, transferID)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.AuditEntry{}
	for rows.Next() {
		var (
			entry  domain.AuditEntry
			action string
			status string
		)
		if err := rows.Scan(&entry.EventID, &entry.TransferID, &action, &status, &entry.Reason, &entry.OccurredAt); err != nil {
			return nil, err
		}
		entry.Action = domain.AuditAction(action)
		entry.Status = domain.TransferStatus(status)
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (s *Store) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM processed_events WHERE event_id = $1)`, eventID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check processed event: %w", err)
	}
	return exists, nil
}

func (s *Store) MarkEventProcessed(ctx context.Context, eventID string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO processed_events (event_id) VALUES ($1) ON CONFLICT (event_id) DO NOTHING`, eventID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark event processed: %w", err)
	}
	return nil
}

// Unit of work

func (s *Store) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &unitOfWork{tx: tx}, nil
}

// Shared row helpers used by both the pool and a transaction.

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account domain.Account
		status  string
	)
	err := row.Scan(
		&account.ID, &account.OwnerID, &account.Balance, &status, &account.Currency,
		&account.AccountType, &account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account.Status = domain.AccountStatus(status)
	return &account, nil
}

func getAccount(ctx context.Context, q querier, accountID string) (*domain.Account, error) {
	account, err := scanAccount(q.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, accountID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrAccountNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

func saveAccount(ctx context.Context, q querier, account *domain.Account) error {
	_, err := q.Exec(ctx, `
		INSERT INTO accounts (`+accountColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET balance = EXCLUDED.balance,
		    status = EXCLUDED.status,
		    currency = EXCLUDED.currency,
		    account_type = EXCLUDED.account_type,
		    updated_at = EXCLUDED.updated_at`,
		account.ID, account.OwnerID, account.Balance, string(account.Status), account.Currency,
		account.AccountType, account.CreatedAt, account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func scanTransfer(row pgx.Row) (*domain.TransferRecord, error) {
	var (
		record domain.TransferRecord
		kind   string
		status string
	)
	err := row.Scan(
		&record.ID, &record.SourceAccountID, &record.DestinationAccountID, &record.Amount, &kind, &status,
		&record.CreatedAt, &record.ReversedAt, &record.ReasonForReversal, &record.OriginalTransferID,
	)
	if err != nil {
		return nil, err
	}
	record.Kind = domain.TransferKind(kind)
	record.Status = domain.TransferStatus(status)
	return &record, nil
}

func findTransfer(ctx context.Context, q querier, transferID string, forUpdate bool) (*domain.TransferRecord, error) {
	query := `SELECT ` + transferColumns + ` FROM transfers WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	record, err := scanTransfer(q.QueryRow(ctx, query, transferID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransferNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transfer: %w", err)
	}
	return record, nil
}

func saveTransfer(ctx context.Context, q querier, record *domain.TransferRecord) error {
	_, err := q.Exec(ctx, `
		INSERT INTO transfers (`+transferColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    reversed_at = EXCLUDED.reversed_at,
		    reason_for_reversal = EXCLUDED.reason_for_reversal`,
		record.ID, record.SourceAccountID, record.DestinationAccountID, record.Amount,
		string(record.Kind), string(record.Status), record.CreatedAt,
		record.ReversedAt, record.ReasonForReversal, record.OriginalTransferID,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer: %w", err)
	}
	return nil
}
