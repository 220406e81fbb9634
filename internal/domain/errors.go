package domain

import (
	"errors"
	"fmt"
)

var (
	ErrAuthenticationFailed    = errors.New("authentication failed")
	ErrAuthorizationRejected   = errors.New("authorization rejected")
	ErrOwnershipViolation      = errors.New("source account does not belong to the authenticated owner")
	ErrReversalAmountExceeded  = errors.New("reversal amount exceeds the original transfer amount")
	ErrInvalidTransition       = errors.New("invalid transfer status transition")
	ErrTransferExecutionFailed = errors.New("transfer execution failed")
	ErrSettlementUnavailable   = errors.New("settlement authority unavailable")
	ErrUnitOfWorkClosed        = errors.New("unit of work already closed")
	ErrOwnerExists             = errors.New("owner already exists")
	ErrInvalidOwner            = errors.New("invalid owner")
	ErrInvalidAccount          = errors.New("invalid account")

	ErrNotFound         = errors.New("not found")
	ErrAccountNotFound  = fmt.Errorf("account %w", ErrNotFound)
	ErrTransferNotFound = fmt.Errorf("transfer %w", ErrNotFound)
	ErrOwnerNotFound    = fmt.Errorf("owner %w", ErrNotFound)

	ErrValidationFailed    = errors.New("validation failed")
	ErrSourceInactive      = fmt.Errorf("%w: source inactive", ErrValidationFailed)
	ErrDestinationInactive = fmt.Errorf("%w: destination inactive", ErrValidationFailed)
	ErrInsufficientBalance = fmt.Errorf("%w: insufficient balance", ErrValidationFailed)
	ErrInvalidAmount       = fmt.Errorf("%w: invalid amount", ErrValidationFailed)
	ErrNonPositiveAmount   = fmt.Errorf("%w: must be positive", ErrInvalidAmount)
	ErrAmountPrecision     = fmt.Errorf("%w: more than %d decimal places", ErrInvalidAmount, AmountScale)
	ErrSameAccount         = fmt.Errorf("%w: source and destination are the same account", ErrValidationFailed)
)

// RejectionError is returned when the settlement authority declines a
// transfer. Error returns the authority's message unchanged.
type RejectionError struct {
	Code    string
	Message string
}

func NewRejectionError(resp *SettlementResponse) *RejectionError {
	return &RejectionError{Code: resp.Code, Message: resp.Message}
}

func (e *RejectionError) Error() string {
	return e.Message
}

func (e *RejectionError) Unwrap() error {
	return ErrAuthorizationRejected
}
