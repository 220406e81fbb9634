package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPending() *TransferRecord {
	return NewTransferRecord("tr-1", "acc-a", "acc-b", decimal.NewFromInt(500), TransferKindPIX, time.Now())
}

func TestNewTransferRecord_IsPending(t *testing.T) {
	record := newPending()

	assert.Equal(t, TransferStatusPending, record.Status)
	assert.Nil(t, record.ReversedAt)
	assert.Nil(t, record.ReasonForReversal)
}

func TestTransferRecord_Complete(t *testing.T) {
	record := newPending()

	require.NoError(t, record.Complete())
	assert.Equal(t, TransferStatusCompleted, record.Status)

	err := record.Complete()
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransferRecord_Fail(t *testing.T) {
	record := newPending()

	require.NoError(t, record.Fail("storage down"))
	assert.Equal(t, TransferStatusFailed, record.Status)
	require.NotNil(t, record.ReasonForReversal)
	assert.Equal(t, "storage down", *record.ReasonForReversal)
}

func TestTransferRecord_FailAlwaysCarriesReason(t *testing.T) {
	record := newPending()

	require.NoError(t, record.Fail("  "))
	require.NotNil(t, record.ReasonForReversal)
	assert.NotEmpty(t, *record.ReasonForReversal)
}

func TestTransferRecord_StatusMonotonicity(t *testing.T) {
	failed := newPending()
	require.NoError(t, failed.Fail("boom"))
	assert.ErrorIs(t, failed.Complete(), ErrInvalidTransition)
	assert.ErrorIs(t, failed.MarkReversed(time.Now()), ErrInvalidTransition)

	pending := newPending()
	assert.ErrorIs(t, pending.MarkReversed(time.Now()), ErrInvalidTransition)

	completed := newPending()
	require.NoError(t, completed.Complete())
	assert.ErrorIs(t, completed.Fail("late"), ErrInvalidTransition)

	at := time.Now()
	require.NoError(t, completed.MarkReversed(at))
	assert.Equal(t, TransferStatusReversed, completed.Status)
	assert.Equal(t, at, *completed.ReversedAt)
	assert.ErrorIs(t, completed.MarkReversed(at), ErrInvalidTransition)
}

func TestNewReversalRecord_SwapsAccounts(t *testing.T) {
	original := newPending()
	require.NoError(t, original.Complete())

	reversal := NewReversalRecord("tr-2", original, decimal.NewFromInt(200), "customer request", time.Now())

	assert.Equal(t, "acc-b", reversal.SourceAccountID)
	assert.Equal(t, "acc-a", reversal.DestinationAccountID)
	assert.Equal(t, TransferKindReversal, reversal.Kind)
	assert.Equal(t, TransferStatusPending, reversal.Status)
	assert.Equal(t, "customer request", *reversal.ReasonForReversal)
	assert.Equal(t, "tr-1", *reversal.OriginalTransferID)
}

func TestTransferRecord_Clone(t *testing.T) {
	record := newPending()
	require.NoError(t, record.Fail("reason"))

	clone := record.Clone()
	*clone.ReasonForReversal = "changed"

	assert.Equal(t, "reason", *record.ReasonForReversal)
	assert.Nil(t, (*TransferRecord)(nil).Clone())
}

func TestParseTransferKind(t *testing.T) {
	kind, err := ParseTransferKind("")
	require.NoError(t, err)
	assert.Equal(t, TransferKindPIX, kind)

	kind, err = ParseTransferKind("ted")
	require.NoError(t, err)
	assert.Equal(t, TransferKindTED, kind)

	_, err = ParseTransferKind("reversal")
	assert.ErrorIs(t, err, ErrValidationFailed)

	assert.True(t, TransferKindPIX.IsInstant())
	assert.False(t, TransferKindDOC.IsInstant())
}

func TestRejectionError(t *testing.T) {
	err := NewRejectionError(&SettlementResponse{
		Status:  SettlementStatusError,
		Code:    "SA-901",
		Message: "amount above limit",
	})

	assert.Equal(t, "amount above limit", err.Error())
	assert.True(t, errors.Is(err, ErrAuthorizationRejected))
}

func TestErrorKinds(t *testing.T) {
	assert.ErrorIs(t, ErrAccountNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrTransferNotFound, ErrNotFound)
	assert.ErrorIs(t, ErrInsufficientBalance, ErrValidationFailed)
	assert.Equal(t, "validation failed: insufficient balance", ErrInsufficientBalance.Error())
	assert.Equal(t, "account not found", ErrAccountNotFound.Error())
}
