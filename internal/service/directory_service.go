package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/security"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/shopspring/decimal"
)

type DirectoryStore interface {
	domain.OwnerDirectory
	domain.AccountStore
}

type DirectoryService interface {
	CreateOwner(ctx context.Context, input CreateOwnerInput) (*domain.Owner, error)
	GetOwner(ctx context.Context, ownerID string) (*domain.OwnerProfile, error)
	UpdateOwner(ctx context.Context, ownerID string, input UpdateOwnerInput) (*domain.Owner, error)
	CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error)
}

type CreateOwnerInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Secret  string
}

// UpdateOwnerInput changes only the fields that are set.
type UpdateOwnerInput struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Secret  *string
}

type CreateAccountInput struct {
	OwnerID        string
	InitialBalance decimal.Decimal
	Currency       string
	AccountType    string
}

type directoryService struct {
	store  DirectoryStore
	hasher *security.Hasher
	logger *logger.Logger
	now    func() time.Time
}

func NewDirectoryService(store DirectoryStore, hasher *security.Hasher, log *logger.Logger) DirectoryService {
	return &directoryService{
		store:  store,
		hasher: hasher,
		logger: log,
		now:    time.Now,
	}
}

func (s *directoryService) CreateOwner(ctx context.Context, input CreateOwnerInput) (*domain.Owner, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidOwner)
	}

	hash, err := s.hasher.Hash(input.Secret)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidOwner, err)
	}

	now := s.now()
	owner := &domain.Owner{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      strings.TrimSpace(input.Email),
		Phone:      strings.TrimSpace(input.Phone),
		Address:    strings.TrimSpace(input.Address),
		SecretHash: hash,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.CreateOwner(ctx, owner); err != nil {
		s.logger.Error(ctx, "Failed to create owner",
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Owner created",
		"owner_id", owner.ID,
	)

	return owner, nil
}

func (s *directoryService) GetOwner(ctx context.Context, ownerID string) (*domain.OwnerProfile, error) {
	return s.store.ResolveOwner(ctx, ownerID)
}

func (s *directoryService) UpdateOwner(ctx context.Context, ownerID string, input UpdateOwnerInput) (*domain.Owner, error) {
	owner, err := s.store.GetOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", domain.ErrInvalidOwner)
		}
		owner.Name = name
	}
	if input.Email != nil {
		owner.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		owner.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		owner.Address = strings.TrimSpace(*input.Address)
	}
	if input.Secret != nil {
		hash, err := s.hasher.Hash(*input.Secret)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrInvalidOwner, err)
		}
		owner.SecretHash = hash
	}
	owner.UpdatedAt = s.now()

	if err := s.store.UpdateOwner(ctx, owner); err != nil {
		s.logger.Error(ctx, "Failed to update owner",
			"owner_id", ownerID,
			"error", err,
		)
		return nil, err
	}

	return owner, nil
}

func (s *directoryService) CreateAccount(ctx context.Context, input CreateAccountInput) (*domain.Account, error) {
	if input.OwnerID == "" {
		return nil, fmt.Errorf("%w: owner_id is required", domain.ErrInvalidAccount)
	}
	if input.InitialBalance.IsNegative() {
		return nil, fmt.Errorf("%w: initial balance cannot be negative", domain.ErrInvalidAccount)
	}
	if !domain.HasMoneyScale(input.InitialBalance) {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidAccount, domain.ErrAmountPrecision)
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	now := s.now()
	account := &domain.Account{
		ID:          uuid.New().String(),
		OwnerID:     input.OwnerID,
		Balance:     input.InitialBalance,
		Status:      domain.AccountStatusActive,
		Currency:    currency,
		AccountType: input.AccountType,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.store.CreateAccount(ctx, account); err != nil {
		s.logger.Error(ctx, "Failed to create account",
			"owner_id", input.OwnerID,
			"error", err,
		)
		return nil, err
	}

	s.logger.Info(ctx, "Account created",
		"account_id", account.ID,
		"owner_id", account.OwnerID,
	)

	return account, nil
}

func (s *directoryService) GetAccount(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.store.GetAccount(ctx, accountID)
}

func (s *directoryService) ListAccountsByOwner(ctx context.Context, ownerID string) ([]domain.Account, error) {
	if _, err := s.store.GetOwner(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.store.ListAccountsByOwner(ctx, ownerID)
}
