package domain

import "context"

type AccountStore interface {
	CreateAccount(ctx context.Context, account *Account) error
	GetAccount(ctx context.Context, accountID string) (*Account, error)
	SaveAccount(ctx context.Context, account *Account) error
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]Account, error)
}

type OwnerDirectory interface {
	CreateOwner(ctx context.Context, owner *Owner) error
	GetOwner(ctx context.Context, ownerID string) (*Owner, error)
	UpdateOwner(ctx context.Context, owner *Owner) error
	// Authenticate reports whether secret matches the owner's stored hash.
	// Unknown owners authenticate as false.
	Authenticate(ctx context.Context, ownerID, secret string) (bool, error)
	ResolveOwner(ctx context.Context, ownerID string) (*OwnerProfile, error)
}

type TransactionLog interface {
	SaveTransfer(ctx context.Context, record *TransferRecord) error
	FindTransfer(ctx context.Context, transferID string) (*TransferRecord, error)
	RecordFailureNote(ctx context.Context, note FailureNote) error
	ListFailureNotes(ctx context.Context, transferID string) ([]FailureNote, error)
}

type AuditLog interface {
	AppendAuditEntry(ctx context.Context, entry AuditEntry) error
	ListAuditEntries(ctx context.Context, transferID string) ([]AuditEntry, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}

// UnitOfWork is the atomicity boundary of one transfer attempt. Writes made
// through it become visible together on Commit and are discarded on Rollback.
// Rollback after Commit is a no-op, so callers defer it unconditionally.
type UnitOfWork interface {
	// LockAccounts loads and locks the given accounts until the unit ends.
	// Locks are taken in sorted id order.
	LockAccounts(ctx context.Context, accountIDs ...string) (map[string]*Account, error)
	SaveAccount(ctx context.Context, account *Account) error
	GetTransferForUpdate(ctx context.Context, transferID string) (*TransferRecord, error)
	SaveTransfer(ctx context.Context, record *TransferRecord) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}

// TransferStore is everything the transfer engine persists through.
type TransferStore interface {
	AccountStore
	TransactionLog
	UnitOfWorkFactory
}

type Repository interface {
	TransferStore
	OwnerDirectory
	AuditLog
}
