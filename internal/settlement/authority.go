// Package settlement talks to the external settlement authority that
// authorizes, registers and confirms every transfer.
package settlement

import (
	"context"

	"github.com/grachmannico95/transfer-engine/internal/domain"
)

// Authority is the settlement authority contract. Calls for one transfer
// happen in the order Authorize, Notify, Confirm. A response with status
// ERROR is a business answer, not a transport failure.
type Authority interface {
	Authorize(ctx context.Context, req domain.AuthorizationRequest) (*domain.SettlementResponse, error)
	Notify(ctx context.Context, transferID string) (*domain.SettlementResponse, error)
	Confirm(ctx context.Context, transferID string) (*domain.SettlementResponse, error)
}
