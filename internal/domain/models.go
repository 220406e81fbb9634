package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

const DefaultCurrency = "BRL"

// AmountScale is the number of decimal places money is stored with. Balance
// and amount columns in the Postgres schema use the same scale.
const AmountScale = 2

// HasMoneyScale reports whether d is representable at AmountScale without
// rounding. Trailing zeros beyond the scale are fine.
func HasMoneyScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(AmountScale))
}

type Account struct {
	ID          string          `json:"id"`
	OwnerID     string          `json:"owner_id"`
	Balance     decimal.Decimal `json:"balance"`
	Status      AccountStatus   `json:"status"`
	Currency    string          `json:"currency"`
	AccountType string          `json:"account_type"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}

type Owner struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	SecretHash string    `json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// OwnerProfile is an owner together with the accounts it holds. Accounts do
// not point back at the profile.
type OwnerProfile struct {
	Owner
	Accounts []Account `json:"accounts"`
}

func (p *OwnerProfile) FindAccount(accountID string) (*Account, bool) {
	for i := range p.Accounts {
		if p.Accounts[i].ID == accountID {
			account := p.Accounts[i]
			return &account, true
		}
	}
	return nil, false
}

type Credentials struct {
	OwnerID string
	Secret  string
}

type SettlementStatus string

const (
	SettlementStatusSuccess SettlementStatus = "SUCCESS"
	SettlementStatusError   SettlementStatus = "ERROR"
)

type SettlementResponse struct {
	Status        SettlementStatus `json:"status"`
	Code          string           `json:"code"`
	Timestamp     time.Time        `json:"timestamp"`
	CorrelationID string           `json:"correlation_id"`
	Message       string           `json:"message"`
}

func (r SettlementResponse) IsSuccess() bool {
	return r.Status == SettlementStatusSuccess
}

type AuthorizationRequest struct {
	OriginInstitution      string          `json:"origin_institution"`
	DestinationInstitution string          `json:"destination_institution"`
	Amount                 decimal.Decimal `json:"amount"`
	Kind                   TransferKind    `json:"kind"`
}

type FailureNote struct {
	TransferID string    `json:"transfer_id"`
	Reason     string    `json:"reason"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuditAction string

const (
	AuditActionCompleted AuditAction = "transfer.completed"
	AuditActionFailed    AuditAction = "transfer.failed"
	AuditActionReversed  AuditAction = "transfer.reversed"
)

type AuditEntry struct {
	EventID    string         `json:"event_id"`
	TransferID string         `json:"transfer_id"`
	Action     AuditAction    `json:"action"`
	Status     TransferStatus `json:"status,omitempty"`
	Reason     string         `json:"reason,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}
