package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/security"
)

type MemoryStore struct {
	owners          map[string]*domain.Owner
	accounts        map[string]*domain.Account
	transfers       map[string]*domain.TransferRecord
	failureNotes    map[string][]domain.FailureNote
	auditEntries    map[string][]domain.AuditEntry
	processedEvents map[string]bool
	mu              sync.RWMutex

	locks  *keyedLocks
	hasher *security.Hasher
}

var _ domain.Repository = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		owners:          make(map[string]*domain.Owner),
		accounts:        make(map[string]*domain.Account),
		transfers:       make(map[string]*domain.TransferRecord),
		failureNotes:    make(map[string][]domain.FailureNote),
		auditEntries:    make(map[string][]domain.AuditEntry),
		processedEvents: make(map[string]bool),
		locks:           newKeyedLocks(),
		hasher:          security.NewHasher(0),
	}
}

// Owner directory

func (s *MemoryStore) CreateOwner(ctx context.Context, owner *domain.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.owners[owner.ID]; exists {
		return domain.ErrOwnerExists
	}

	c := *owner
	s.owners[owner.ID] = &c

	return nil
}

func (s *MemoryStore) GetOwner(ctx context.Context, ownerID string) (*domain.Owner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	owner, exists := s.owners[ownerID]
	if !exists {
		return nil, domain.ErrOwnerNotFound
	}

	c := *owner
	return &c, nil
}

func (s *MemoryStore) UpdateOwner(ctx context.Context, owner *domain.Owner) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.owners[owner.ID]; !exists {
		return domain.ErrOwnerNotFound
	}

	c := *owner
	s.owners[owner.ID] = &c

	return nil
}

func (s *MemoryStore) Authenticate(ctx context.Context, ownerID, secret string) (bool, error) {
	s.mu.RLock()
	owner, exists := s.owners[ownerID]
	var hash string
	if exists {
		hash = owner.SecretHash
	}
	s.mu.RUnlock()

	if !exists {
		return false, nil
	}

	return s.hasher.Verify(hash, secret), nil
}

func (s *MemoryStore) ResolveOwner(ctx context.Context, ownerID string) (*domain.OwnerProfile, error) {
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

func (s *MemoryStore) CreateAccount(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.owners[account.OwnerID]; !exists {
		return domain.ErrOwnerNotFound
	}

	c := *account
	s.accounts[account.ID] = &c

	return nil
}

func (s *MemoryStore) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, exists := s.accounts[accountID]
	if !exists {
		return nil, domain.ErrAccountNotFound
	}

	c := *account
	return &c, nil
}

func (s *MemoryStore) SaveAccount(ctx context.Context, account *domain.Account) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := *account
	s.accounts[account.ID] = &c

	return nil
}

func (s *MemoryStore) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := []domain.Account{}
	for _, account := range s.accounts {
		if account.OwnerID == ownerID {
			accounts = append(accounts, *account)
		}
	}

	sort.Slice(accounts, func(i, j int) bool {
		if accounts[i].CreatedAt.Equal(accounts[j].CreatedAt) {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreatedAt.Before(accounts[j].CreatedAt)
	})

	return accounts, nil
}

// Transaction log

func (s *MemoryStore) SaveTransfer(ctx context.Context, record *domain.TransferRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transfers[record.ID] = record.Clone()

	return nil
}

func (s *MemoryStore) FindTransfer(ctx context.Context, transferID string) (*domain.TransferRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, exists := s.transfers[transferID]
	if !exists {
		return nil, domain.ErrTransferNotFound
	}

	return record.Clone(), nil
}

func (s *MemoryStore) RecordFailureNote(ctx context.Context, note domain.FailureNote) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	s.failureNotes[note.TransferID] = append(s.failureNotes[note.TransferID], note)

	return nil
}

func (s *MemoryStore) ListFailureNotes(ctx context.Context, transferID string) ([]domain.FailureNote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]domain.FailureNote, len(s.failureNotes[transferID]))
	copy(notes, s.failureNotes[transferID])

	return notes, nil
}

// Audit log

func (s *MemoryStore) AppendAuditEntry(ctx context.Context, entry domain.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.auditEntries[entry.TransferID] {
		if existing.EventID == entry.EventID {
			return nil
		}
	}
	s.auditEntries[entry.TransferID] = append(s.auditEntries[entry.TransferID], entry)

	return nil
}

func (s *MemoryStore) ListAuditEntries(ctx context.Context, transferID string) ([]domain.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.AuditEntry, len(s.auditEntries[transferID]))
	copy(entries, s.auditEntries[transferID])

	return entries, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.processedEvents[eventID] = true

	return nil
}

// Unit of work

func (s *MemoryStore) Begin(ctx context.Context) (domain.UnitOfWork, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return &memoryUnitOfWork{
		store:     s,
		held:      make(map[string]bool),
		accounts:  make(map[string]*domain.Account),
		transfers: make(map[string]*domain.TransferRecord),
	}, nil
}
