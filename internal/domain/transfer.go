package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type TransferKind string

const (
	TransferKindPIX      TransferKind = "PIX"
	TransferKindTED      TransferKind = "TED"
	TransferKindDOC      TransferKind = "DOC"
	TransferKindReversal TransferKind = "reversal"
)

// IsInstant reports whether the kind settles on the fast lane and skips the
// compensation delay.
func (k TransferKind) IsInstant() bool {
	return k == TransferKindPIX
}

// ParseTransferKind accepts the client-facing kinds. An empty value means PIX.
func ParseTransferKind(s string) (TransferKind, error) {
	switch TransferKind(strings.ToUpper(strings.TrimSpace(s))) {
	case "":
		return TransferKindPIX, nil
	case TransferKindPIX:
		return TransferKindPIX, nil
	case TransferKindTED:
		return TransferKindTED, nil
	case TransferKindDOC:
		return TransferKindDOC, nil
	default:
		return "", fmt.Errorf("%w: unknown transfer kind %q", ErrValidationFailed, s)
	}
}

type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusFailed    TransferStatus = "failed"
	TransferStatusReversed  TransferStatus = "reversed"
)

type TransferRecord struct {
	ID                   string          `json:"id"`
	SourceAccountID      string          `json:"source_account_id"`
	DestinationAccountID string          `json:"destination_account_id"`
	Amount               decimal.Decimal `json:"amount"`
	Kind                 TransferKind    `json:"kind"`
	Status               TransferStatus  `json:"status"`
	CreatedAt            time.Time       `json:"created_at"`
	ReversedAt           *time.Time      `json:"reversed_at,omitempty"`
	ReasonForReversal    *string         `json:"reason_for_reversal,omitempty"`
	OriginalTransferID   *string         `json:"original_transfer_id,omitempty"`
}

// NewTransferRecord builds a detached pending record. Nothing is persisted.
func NewTransferRecord(id, sourceAccountID, destinationAccountID string, amount decimal.Decimal, kind TransferKind, now time.Time) *TransferRecord {
	return &TransferRecord{
		ID:                   id,
		SourceAccountID:      sourceAccountID,
		DestinationAccountID: destinationAccountID,
		Amount:               amount,
		Kind:                 kind,
		Status:               TransferStatusPending,
		CreatedAt:            now,
	}
}

// NewReversalRecord builds the pending record that undoes part or all of
// original: accounts swapped, kind reversal, reason filled in.
func NewReversalRecord(id string, original *TransferRecord, amount decimal.Decimal, reason string, now time.Time) *TransferRecord {
	record := NewTransferRecord(id, original.DestinationAccountID, original.SourceAccountID, amount, TransferKindReversal, now)
	record.ReasonForReversal = &reason
	originalID := original.ID
	record.OriginalTransferID = &originalID
	return record
}

func (t *TransferRecord) Complete() error {
	if t.Status != TransferStatusPending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, TransferStatusCompleted)
	}
	t.Status = TransferStatusCompleted
	return nil
}

func (t *TransferRecord) Fail(reason string) error {
	if t.Status != TransferStatusPending {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, TransferStatusFailed)
	}
	if strings.TrimSpace(reason) == "" {
		reason = ErrTransferExecutionFailed.Error()
	}
	t.Status = TransferStatusFailed
	t.ReasonForReversal = &reason
	return nil
}

func (t *TransferRecord) MarkReversed(at time.Time) error {
	if t.Status != TransferStatusCompleted {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.Status, TransferStatusReversed)
	}
	t.Status = TransferStatusReversed
	t.ReversedAt = &at
	return nil
}

// Clone returns a deep copy so stores never share pointers with callers.
func (t *TransferRecord) Clone() *TransferRecord {
	if t == nil {
		return nil
	}
	c := *t
	if t.ReversedAt != nil {
		v := *t.ReversedAt
		c.ReversedAt = &v
	}
	if t.ReasonForReversal != nil {
		v := *t.ReasonForReversal
		c.ReasonForReversal = &v
	}
	if t.OriginalTransferID != nil {
		v := *t.OriginalTransferID
		c.OriginalTransferID = &v
	}
	return &c
}
