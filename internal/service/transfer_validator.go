package service

import (
	"github.com/grachmannico95/transfer-engine/internal/domain"
	"github.com/shopspring/decimal"
)

// TransferValidator holds the pure pre-transfer checks. It reads nothing and
// mutates nothing.
type TransferValidator struct{}

func NewTransferValidator() *TransferValidator {
	return &TransferValidator{}
}

// Validate checks, in order, that the source is active, the destination is
// active and the source can cover amount.
func (v *TransferValidator) Validate(source, destination *domain.Account, amount decimal.Decimal) error {
	if !source.IsActive() {
		return domain.ErrSourceInactive
	}
	if !destination.IsActive() {
		return domain.ErrDestinationInactive
	}
	if source.Balance.LessThan(amount) {
		return domain.ErrInsufficientBalance
	}
	return nil
}

// ValidateAmount accepts positive amounts storable at domain.AmountScale.
func (v *TransferValidator) ValidateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domain.ErrNonPositiveAmount
	}
	if !domain.HasMoneyScale(amount) {
		return domain.ErrAmountPrecision
	}
	return nil
}

// ValidateReversalAmount rejects reversals larger than the original transfer.
func (v *TransferValidator) ValidateReversalAmount(original *domain.TransferRecord, amount decimal.Decimal) error {
	if err := v.ValidateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(original.Amount) {
		return domain.ErrReversalAmountExceeded
	}
	return nil
}
