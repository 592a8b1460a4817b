package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/internal/orders"
	"github.com/kamaubrian/sokolink-backend/internal/receipt"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	"github.com/kamaubrian/sokolink-backend/pkg/pagination"
)

type stubOrdersService struct {
	list  *orders.ListResult
	order *orders.OrderDTO
	err   error

	gotOrderID uuid.UUID
	gotUserID  uuid.UUID
}

func (s *stubOrdersService) List(ctx context.Context, userID uuid.UUID, params pagination.Params) (*orders.ListResult, error) {
	s.gotUserID = userID
	return s.list, s.err
}

func (s *stubOrdersService) Get(ctx context.Context, orderID, userID uuid.UUID) (*orders.OrderDTO, error) {
	s.gotOrderID = orderID
	s.gotUserID = userID
	return s.order, s.err
}

func withURLParam(r *http.Request, key, value string) *http.Request {
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}

func TestOrderListReturnsPage(t *testing.T) {
	userID := uuid.New()
	svc := &stubOrdersService{list: &orders.ListResult{
		Orders: []orders.OrderDTO{{ID: uuid.New(), Code: "ORD100001"}},
		Meta:   pagination.Meta{Page: 1, Limit: 20, Total: 1, TotalPages: 1},
	}}
	handler := OrderList(svc, nil)

	req := authedRequest(http.MethodGet, "/api/v1/orders", "", userID)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotUserID != userID {
		t.Fatalf("expected user %s got %s", userID, svc.gotUserID)
	}

	var envelope struct {
		Data orders.ListResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Orders) != 1 || envelope.Data.Orders[0].Code != "ORD100001" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestOrderReceiptRendersText(t *testing.T) {
	userID := uuid.New()
	orderID := uuid.New()
	svc := &stubOrdersService{order: &orders.OrderDTO{
		ID:            orderID,
		Code:          "ORD100042",
		Status:        enums.OrderStatusProcessing,
		PaymentMethod: enums.PaymentMethodCashOnDelivery,
		PaymentStatus: enums.PaymentStatusPending,
		Subtotal:      decimal.RequireFromString("1300.00"),
		DeliveryFee:   decimal.RequireFromString("100.00"),
		Total:         decimal.RequireFromString("1400.00"),
		Items: []orders.ItemDTO{{
			ProductID:    uuid.New(),
			ProductName:  "Maize Flour 2kg",
			Quantity:     2,
			UnitPrice:    decimal.RequireFromString("500.00"),
			LineSubtotal: decimal.RequireFromString("1000.00"),
		}},
		CreatedAt: time.Date(2025, 9, 14, 10, 30, 0, 0, time.UTC),
	}}
	handler := OrderReceipt(svc, nil)

	req := authedRequest(http.MethodGet, "/api/v1/orders/"+orderID.String()+"/receipt", "", userID)
	req = withURLParam(req, "orderId", orderID.String())
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotOrderID != orderID {
		t.Fatalf("expected order %s got %s", orderID, svc.gotOrderID)
	}

	var envelope struct {
		Data receipt.Receipt `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Code != "ORD100042" {
		t.Fatalf("unexpected receipt code %s", envelope.Data.Code)
	}
	if !strings.Contains(envelope.Data.Text, "KSh 1400.00") {
		t.Fatalf("expected total in receipt text:\n%s", envelope.Data.Text)
	}
}

func TestOrderDetailRejectsBadID(t *testing.T) {
	handler := OrderDetail(&stubOrdersService{}, nil)
	req := authedRequest(http.MethodGet, "/api/v1/orders/nope", "", uuid.New())
	req = withURLParam(req, "orderId", "nope")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
