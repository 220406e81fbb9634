package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/grachmannico95/transfer-engine/internal/eventbus"
	"github.com/grachmannico95/transfer-engine/internal/settlement"
	"github.com/grachmannico95/transfer-engine/pkg/logger"
	"github.com/shopspring/decimal"
)

type TransferService interface {
	// FundsTransfer moves Amount from the source to the destination account.
	// With Credentials set, the owner is authenticated before any other check
	// and must hold the source account.
	FundsTransfer(ctx context.Context, req TransferRequest) (*domain.TransferRecord, error)

	// Deprecated: use FundsTransfer with Credentials.
	FundsTransferByAccounts(ctx context.Context, sourceAccountID, destinationAccountID string, amount decimal.Decimal, kind domain.TransferKind) (*domain.TransferRecord, error)

	ReversalTransaction(ctx context.Context, req ReversalRequest) (*domain.TransferRecord, error)
	FindTransaction(ctx context.Context, transferID string) (*domain.TransferRecord, error)
}

type TransferRequest struct {
	Credentials          *domain.Credentials
	SourceAccountID      string
	DestinationAccountID string
	Amount               decimal.Decimal
	Kind                 domain.TransferKind
}

type ReversalRequest struct {
	TransferID string
	Amount     decimal.Decimal
	Reason     string
}

type TransferConfig struct {
	// InstitutionID identifies this institution to the settlement authority
	// as both origin and destination.
	InstitutionID string
	// CompensationDelay is held between debit and credit for non-instant kinds.
	CompensationDelay time.Duration
	// Timeout bounds one unit of work, including the delay.
	Timeout time.Duration
}

type Option func(*transferService)

func WithClock(now func() time.Time) Option {
	return func(s *transferService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(s *transferService) {
		s.newID = newID
	}
}

type transferService struct {
	store     domain.TransferStore
	owners    domain.OwnerDirectory
	authority settlement.Authority
	validator *TransferValidator
	eventBus  eventbus.EventBus
	cfg       TransferConfig
	logger    *logger.Logger
	now       func() time.Time
	newID     func() string
}

func NewTransferService(
	store domain.TransferStore,
	owners domain.OwnerDirectory,
	authority settlement.Authority,
	eventBus eventbus.EventBus,
	cfg TransferConfig,
	log *logger.Logger,
	opts ...Option,
) TransferService {
	s := &transferService{
		store:     store,
		owners:    owners,
		authority: authority,
		validator: NewTransferValidator(),
		eventBus:  eventBus,
		cfg:       cfg,
		logger:    log,
		now:       time.Now,
		newID:     func() string { return uuid.New().String() },
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *transferService) FundsTransfer(ctx context.Context, req TransferRequest) (*domain.TransferRecord, error) {
	transferID := s.newID()
	ctx = logger.WithTransferID(ctx, transferID)

	s.logger.Info(ctx, "Starting funds transfer",
		"source_account_id", req.SourceAccountID,
		"destination_account_id", req.DestinationAccountID,
		"amount", req.Amount,
		"kind", req.Kind,
	)

	record, err := s.fundsTransfer(ctx, transferID, req)
	if err != nil {
		s.registerFailure(ctx, transferID, err)
		return nil, err
	}

	s.logger.Info(ctx, "Funds transfer completed")
	s.publish(ctx, record, domain.AuditActionCompleted, "")

	return record, nil
}

func (s *transferService) FundsTransferByAccounts(ctx context.Context, sourceAccountID, destinationAccountID string, amount decimal.Decimal, kind domain.TransferKind) (*domain.TransferRecord, error) {
	return s.FundsTransfer(ctx, TransferRequest{
		SourceAccountID:      sourceAccountID,
		DestinationAccountID: destinationAccountID,
		Amount:               amount,
		Kind:                 kind,
	})
}

func (s *transferService) fundsTransfer(ctx context.Context, transferID string, req TransferRequest) (*domain.TransferRecord, error) {
	// Authentication precedes every other check.
	if req.Credentials != nil {
		if err := s.authenticate(ctx, req.Credentials); err != nil {
			return nil, err
		}
	}

	kind := req.Kind
	if kind == "" {
		kind = domain.TransferKindPIX
	}
	if kind == domain.TransferKindReversal {
		return nil, fmt.Errorf("%w: kind %q is reserved for reversals", domain.ErrValidationFailed, kind)
	}

	if err := s.validator.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if req.SourceAccountID == req.DestinationAccountID {
		return nil, domain.ErrSameAccount
	}

	if err := s.authorize(ctx, req.Amount, kind); err != nil {
		return nil, err
	}

	source, err := s.resolveSource(ctx, req)
	if err != nil {
		return nil, err
	}

	destination, err := s.store.GetAccount(ctx, req.DestinationAccountID)
	if err != nil {
		return nil, err
	}

	if err := s.validator.Validate(source, destination, req.Amount); err != nil {
		return nil, err
	}

	record := domain.NewTransferRecord(transferID, source.ID, destination.ID, req.Amount, kind, s.now())

	return s.execute(ctx, record, func(ctx context.Context, uow domain.UnitOfWork, record *domain.TransferRecord) error {
		return s.applyTransfer(ctx, uow, record, record.Kind)
	})
}

func (s *transferService) authenticate(ctx context.Context, creds *domain.Credentials) error {
	ok, err := s.owners.Authenticate(ctx, creds.OwnerID, creds.Secret)
	if err != nil {
		s.logger.Error(ctx, "Failed to authenticate owner",
			"owner_id", creds.OwnerID,
			"error", err,
		)
		return err
	}
	if !ok {
		s.logger.Warn(ctx, "Owner authentication failed",
			"owner_id", creds.OwnerID,
		)
		return domain.ErrAuthenticationFailed
	}
	return nil
}

func (s *transferService) authorize(ctx context.Context, amount decimal.Decimal, kind domain.TransferKind) error {
	resp, err := s.authority.Authorize(ctx, domain.AuthorizationRequest{
		OriginInstitution:      s.cfg.InstitutionID,
		DestinationInstitution: s.cfg.InstitutionID,
		Amount:                 amount,
		Kind:                   kind,
	})
	if err != nil {
		return err
	}
	if !resp.IsSuccess() {
		s.logger.Warn(ctx, "Transfer rejected by settlement authority",
			"code", resp.Code,
			"message", resp.Message,
		)
		return domain.NewRejectionError(resp)
	}
	return nil
}

// resolveSource tells an account the owner does not hold apart from one that
// does not exist.
func (s *transferService) resolveSource(ctx context.Context, req TransferRequest) (*domain.Account, error) {
	if req.Credentials == nil {
		return s.store.GetAccount(ctx, req.SourceAccountID)
	}

	profile, err := s.owners.ResolveOwner(ctx, req.Credentials.OwnerID)
	if err != nil {
		return nil, err
	}

	if source, ok := profile.FindAccount(req.SourceAccountID); ok {
		return source, nil
	}

	if _, err := s.store.GetAccount(ctx, req.SourceAccountID); err != nil {
		return nil, err
	}
	return nil, domain.ErrOwnershipViolation
}

func (s *transferService) ReversalTransaction(ctx context.Context, req ReversalRequest) (*domain.TransferRecord, error) {
	reversalID := s.newID()
	ctx = logger.WithTransferID(ctx, reversalID)

	s.logger.Info(ctx, "Starting reversal",
		"original_transfer_id", req.TransferID,
		"amount", req.Amount,
	)

	record, err := s.reversal(ctx, reversalID, req)
	if err != nil {
		s.registerFailure(ctx, reversalID, err)
		return nil, err
	}

	s.logger.Info(ctx, "Reversal completed",
		"original_transfer_id", req.TransferID,
	)
	s.publish(ctx, record, domain.AuditActionCompleted, req.Reason)
	s.publishEvent(ctx, eventbus.TransferEvent{
		TransferID: req.TransferID,
		Action:     domain.AuditActionReversed,
		Status:     domain.TransferStatusReversed,
		Reason:     req.Reason,
	})

	return record, nil
}

func (s *transferService) reversal(ctx context.Context, reversalID string, req ReversalRequest) (*domain.TransferRecord, error) {
	original, err := s.store.FindTransfer(ctx, req.TransferID)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateReversalAmount(original, req.Amount); err != nil {
		return nil, err
	}
	if original.Status != domain.TransferStatusCompleted {
		return nil, fmt.Errorf("%w: cannot reverse a %s transfer", domain.ErrInvalidTransition, original.Status)
	}

	record := domain.NewReversalRecord(reversalID, original, req.Amount, req.Reason, s.now())

	return s.execute(ctx, record, func(ctx context.Context, uow domain.UnitOfWork, record *domain.TransferRecord) error {
		locked, err := uow.GetTransferForUpdate(ctx, original.ID)
		if err != nil {
			return err
		}
		if locked.Status != domain.TransferStatusCompleted {
			return fmt.Errorf("%w: cannot reverse a %s transfer", domain.ErrInvalidTransition, locked.Status)
		}

		if err := s.applyTransfer(ctx, uow, record, locked.Kind); err != nil {
			return err
		}

		if err := locked.MarkReversed(s.now()); err != nil {
			return err
		}
		return uow.SaveTransfer(ctx, locked)
	})
}

func (s *transferService) FindTransaction(ctx context.Context, transferID string) (*domain.TransferRecord, error) {
	ctx = logger.WithTransferID(ctx, transferID)

	s.logger.Debug(ctx, "Finding transfer")

	record, err := s.store.FindTransfer(ctx, transferID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Error(ctx, "Failed to find transfer",
				"error", err,
			)
		}
		return nil, err
	}

	return record, nil
}
