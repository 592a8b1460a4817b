package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/internal/cart"
)

type stubCartService struct {
	result *cart.CartDTO
	err    error

	gotProductID uuid.UUID
	gotAdd       cart.AddItemRequest
}

func (s *stubCartService) Get(ctx context.Context, userID uuid.UUID) (*cart.CartDTO, error) {
	return s.result, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, userID uuid.UUID, req cart.AddItemRequest) (*cart.CartDTO, error) {
	s.gotAdd = req
	return s.result, s.err
}

func (s *stubCartService) UpdateItem(ctx context.Context, userID, productID uuid.UUID, req cart.UpdateItemRequest) (*cart.CartDTO, error) {
	s.gotProductID = productID
	return s.result, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (*cart.CartDTO, error) {
	s.gotProductID = productID
	return s.result, s.err
}

func (s *stubCartService) Clear(ctx context.Context, userID uuid.UUID) (*cart.CartDTO, error) {
	return s.result, s.err
}

func TestCartAddItemSuccess(t *testing.T) {
	productID := uuid.New()
	svc := &stubCartService{result: &cart.CartDTO{
		ID:       uuid.New(),
		Subtotal: decimal.RequireFromString("1000.00"),
		Count:    2,
	}}
	handler := CartAddItem(svc, nil)

	req := authedRequest(http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"`+productID.String()+`","quantity":2}`, uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.gotAdd.ProductID != productID || svc.gotAdd.Quantity != 2 {
		t.Fatalf("unexpected request %+v", svc.gotAdd)
	}

	var envelope struct {
		Data cart.CartDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Count != 2 {
		t.Fatalf("unexpected cart payload %+v", envelope.Data)
	}
}

func TestCartAddItemRejectsZeroQuantity(t *testing.T) {
	handler := CartAddItem(&stubCartService{}, nil)
	req := authedRequest(http.MethodPost, "/api/v1/cart/items",
		`{"product_id":"`+uuid.NewString()+`","quantity":0}`, uuid.New())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCartFetchRequiresUserContext(t *testing.T) {
	handler := CartFetch(&stubCartService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}
