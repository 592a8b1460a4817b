package payments

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/pkg/config"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	pkgerrors "github.com/kamaubrian/sokolink-backend/pkg/errors"
)

func alwaysApprove() SimulatorOption {
	return WithDraw(func() float64 { return 0 })
}

func alwaysDecline() SimulatorOption {
	return WithDraw(func() float64 { return 1 })
}

func simulatorConfig() config.PaymentsConfig {
	return config.PaymentsConfig{
		SuccessRate:   0.8,
		ProviderDelay: 0,
	}
}

func TestSimulatorApprovesMpesaCharge(t *testing.T) {
	sim := NewSimulator(simulatorConfig(), alwaysApprove())

	result, err := sim.Charge(context.Background(), ChargeRequest{
		Amount: decimal.RequireFromString("1400.00"),
		Details: Details{
			Method: enums.PaymentMethodMpesa,
			Phone:  "0712345678",
		},
	})
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if !strings.HasPrefix(result.Reference, "MPESA-") {
		t.Fatalf("unexpected reference %q", result.Reference)
	}
	if result.Method != enums.PaymentMethodMpesa {
		t.Fatalf("unexpected method %s", result.Method)
	}
}

func TestSimulatorDecline(t *testing.T) {
	sim := NewSimulator(simulatorConfig(), alwaysDecline())

	_, err := sim.Charge(context.Background(), ChargeRequest{
		Amount: decimal.RequireFromString("100.00"),
		Details: Details{
			Method: enums.PaymentMethodMpesa,
			Phone:  "0712345678",
		},
	})
	if !errors.Is(err, ErrDeclined) {
		t.Fatalf("expected ErrDeclined, got %v", err)
	}
}

func TestSimulatorRejectsShortPhone(t *testing.T) {
	sim := NewSimulator(simulatorConfig(), alwaysApprove())

	_, err := sim.Charge(context.Background(), ChargeRequest{
		Amount: decimal.RequireFromString("100.00"),
		Details: Details{
			Method: enums.PaymentMethodMpesa,
			Phone:  "123",
		},
	})
	assertValidation(t, err)
}

func TestSimulatorRejectsIncompleteCard(t *testing.T) {
	sim := NewSimulator(simulatorConfig(), alwaysApprove())

	_, err := sim.Charge(context.Background(), ChargeRequest{
		Amount: decimal.RequireFromString("100.00"),
		Details: Details{
			Method: enums.PaymentMethodCard,
			Card: &CardDetails{
				Number: "4111111111111111",
				Expiry: "",
				CVV:    "",
			},
		},
	})
	assertValidation(t, err)

	appErr := pkgerrors.As(err)
	details, ok := appErr.Details().([]string)
	if !ok {
		t.Fatalf("expected string slice details, got %T", appErr.Details())
	}
	if len(details) != 2 {
		t.Fatalf("expected both missing fields reported, got %v", details)
	}
}

func TestSimulatorRejectsCashWithoutAddress(t *testing.T) {
	sim := NewSimulator(simulatorConfig(), alwaysApprove())

	_, err := sim.Charge(context.Background(), ChargeRequest{
		Amount: decimal.RequireFromString("100.00"),
		Details: Details{
			Method:  enums.PaymentMethodCashOnDelivery,
			Address: "   ",
		},
	})
	assertValidation(t, err)
}

func TestSimulatorHonorsContextDuringDelay(t *testing.T) {
	cfg := simulatorConfig()
	cfg.ProviderDelay = 5 * time.Second
	sim := NewSimulator(cfg, alwaysApprove())

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := sim.Charge(ctx, ChargeRequest{
		Amount: decimal.RequireFromString("100.00"),
		Details: Details{
			Method: enums.PaymentMethodMpesa,
			Phone:  "0712345678",
		},
	})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("charge did not abort promptly, took %s", elapsed)
	}
}

func TestValidateDetailsAcceptsTenDigitPhone(t *testing.T) {
	err := ValidateDetails(Details{
		Method: enums.PaymentMethodMpesa,
		Phone:  "0712345678",
	})
	if err != nil {
		t.Fatalf("expected valid details, got %v", err)
	}
}

func assertValidation(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if appErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", appErr.Code())
	}
}
