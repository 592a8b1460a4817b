package payments

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	mathrand "math/rand"
	"strings"
	"time"

	"github.com/kamaubrian/sokolink-backend/pkg/config"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	pkgerrors "github.com/kamaubrian/sokolink-backend/pkg/errors"
)

// Simulator is a stand-in payment provider. It validates method details,
// waits out a configurable provider latency, then approves a configurable
// share of charges.
type Simulator struct {
	successRate float64
	delay       time.Duration
	draw        func() float64
}

// SimulatorOption customizes a Simulator.
type SimulatorOption func(*Simulator)

// WithDraw overrides the randomness source. Tests inject deterministic draws.
func WithDraw(draw func() float64) SimulatorOption {
	return func(s *Simulator) {
		s.draw = draw
	}
}

// NewSimulator builds the simulated gateway from the payments configuration.
func NewSimulator(cfg config.PaymentsConfig, opts ...SimulatorOption) *Simulator {
	s := &Simulator{
		successRate: cfg.SuccessRate,
		delay:       cfg.ProviderDelay,
		draw:        mathrand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Charge implements Gateway.
func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) (*ChargeResult, error) {
	if err := ValidateDetails(req.Details); err != nil {
		return nil, err
	}
	if req.Amount.IsNegative() {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "charge amount cannot be negative")
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	if s.draw() >= s.successRate {
		return nil, ErrDeclined
	}

	reference, err := newReference(req.Details.Method)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "generate payment reference")
	}

	return &ChargeResult{
		Reference: reference,
		Method:    req.Details.Method,
	}, nil
}

func newReference(method enums.PaymentMethod) (string, error) {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	prefix := "PAY"
	switch method {
	case enums.PaymentMethodMpesa:
		prefix = "MPESA"
	case enums.PaymentMethodCard:
		prefix = "CARD"
	case enums.PaymentMethodCashOnDelivery:
		prefix = "COD"
	}
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(hex.EncodeToString(buf))), nil
}
