package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/api/middleware"
	checkoutsvc "github.com/kamaubrian/sokolink-backend/internal/checkout"
	"github.com/kamaubrian/sokolink-backend/internal/orders"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	pkgerrors "github.com/kamaubrian/sokolink-backend/pkg/errors"
)

type stubCheckoutService struct {
	order *orders.OrderDTO
	err   error

	gotUserID uuid.UUID
}

func (s *stubCheckoutService) Execute(ctx context.Context, userID uuid.UUID, req checkoutsvc.Request) (*orders.OrderDTO, error) {
	s.gotUserID = userID
	return s.order, s.err
}

func jsonBody(payload string) io.Reader {
	return bytes.NewReader([]byte(payload))
}

func authedRequest(method, target, payload string, userID uuid.UUID) *http.Request {
	var body io.Reader
	if payload != "" {
		body = jsonBody(payload)
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req.WithContext(middleware.WithUserID(req.Context(), userID.String()))
}

func TestCheckoutSuccess(t *testing.T) {
	userID := uuid.New()
	svc := &stubCheckoutService{order: &orders.OrderDTO{
		ID:            uuid.New(),
		Code:          "ORD100042",
		Status:        enums.OrderStatusProcessing,
		PaymentMethod: enums.PaymentMethodMpesa,
		PaymentStatus: enums.PaymentStatusCompleted,
		Subtotal:      decimal.RequireFromString("1300.00"),
		Total:         decimal.RequireFromString("1300.00"),
	}}
	handler := Checkout(svc, nil)

	req := authedRequest(http.MethodPost, "/api/v1/checkout", `{"payment":{"method":"mpesa","phone":"0712345678"}}`, userID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotUserID != userID {
		t.Fatalf("expected user %s got %s", userID, svc.gotUserID)
	}

	var envelope struct {
		Data orders.OrderDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Code != "ORD100042" {
		t.Fatalf("unexpected order code %s", envelope.Data.Code)
	}
}

func TestCheckoutDeclinedPaymentMapsTo402(t *testing.T) {
	svc := &stubCheckoutService{err: pkgerrors.New(pkgerrors.CodePaymentFailed, "payment was declined")}
	handler := Checkout(svc, nil)

	req := authedRequest(http.MethodPost, "/api/v1/checkout", `{"payment":{"method":"card","card":{"number":"4111111111111111","expiry":"12/27","cvv":"123"}}}`, uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusPaymentRequired {
		t.Fatalf("expected 402 got %d", resp.Code)
	}
}

func TestCheckoutRequiresUserContext(t *testing.T) {
	handler := Checkout(&stubCheckoutService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout", jsonBody(`{"payment":{"method":"mpesa","phone":"0712345678"}}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCheckoutRejectsMalformedBody(t *testing.T) {
	handler := Checkout(&stubCheckoutService{}, nil)
	req := authedRequest(http.MethodPost, "/api/v1/checkout", `{"payment":`, uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
