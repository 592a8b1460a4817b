package payments

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/pkg/enums"
)

// ErrDeclined signals that the provider rejected an otherwise valid charge.
// Callers treat this as a clean outcome, not a system fault.
var ErrDeclined = errors.New("payment declined")

// CardDetails carries the card fields collected at the till.
type CardDetails struct {
	Number string `json:"number" validate:"required"`
	Expiry string `json:"expiry" validate:"required"`
	CVV    string `json:"cvv" validate:"required"`
}

// Details is the method-specific payment input supplied at checkout.
type Details struct {
	Method  enums.PaymentMethod `json:"method" validate:"required"`
	Phone   string              `json:"phone,omitempty"`
	Address string              `json:"address,omitempty"`
	Card    *CardDetails        `json:"card,omitempty"`
}

// ChargeRequest asks the gateway to collect the given amount.
type ChargeRequest struct {
	Amount  decimal.Decimal
	Details Details
}

// ChargeResult reports a successful charge.
type ChargeResult struct {
	Reference string
	Method    enums.PaymentMethod
}

// Gateway abstracts the payment provider so checkout can swap
// implementations without touching the order flow.
type Gateway interface {
	Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error)
}
