package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/internal/catalog"
	"github.com/kamaubrian/sokolink-backend/pkg/pagination"
)

type stubCatalogService struct {
	listResult *catalog.ListResult
	product    *catalog.ProductDTO
	categories []string
	err        error

	gotFilters catalog.ListFilters
	gotParams  pagination.Params
}

func (s *stubCatalogService) List(ctx context.Context, filters catalog.ListFilters, params pagination.Params) (*catalog.ListResult, error) {
	s.gotFilters = filters
	s.gotParams = params
	return s.listResult, s.err
}

func (s *stubCatalogService) Get(ctx context.Context, id uuid.UUID) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.categories, s.err
}

func (s *stubCatalogService) Create(ctx context.Context, req catalog.CreateProductRequest) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) Update(ctx context.Context, id uuid.UUID, req catalog.UpdateProductRequest) (*catalog.ProductDTO, error) {
	return s.product, s.err
}

func (s *stubCatalogService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.err
}

func TestProductListParsesFiltersAndPagination(t *testing.T) {
	svc := &stubCatalogService{listResult: &catalog.ListResult{
		Products: []catalog.ProductDTO{{ID: uuid.New(), Name: "Maize Flour 2kg", Price: decimal.RequireFromString("500.00")}},
		Meta:     pagination.Meta{Page: 2, Limit: 10, Total: 11, TotalPages: 2},
	}}
	handler := ProductList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?page=2&limit=10&category=groceries&min_price=100&max_price=900&q=flour", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.gotParams.Page != 2 || svc.gotParams.Limit != 10 {
		t.Fatalf("unexpected pagination %+v", svc.gotParams)
	}
	if svc.gotFilters.Category != "groceries" || svc.gotFilters.Query != "flour" {
		t.Fatalf("unexpected filters %+v", svc.gotFilters)
	}
	if svc.gotFilters.MinPrice == nil || !svc.gotFilters.MinPrice.Equal(decimal.RequireFromString("100")) {
		t.Fatalf("min price not parsed: %v", svc.gotFilters.MinPrice)
	}

	var envelope struct {
		Data catalog.ListResult `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Products) != 1 || envelope.Data.Products[0].Name != "Maize Flour 2kg" {
		t.Fatalf("unexpected payload %+v", envelope.Data)
	}
}

func TestProductListRejectsBadPriceFilter(t *testing.T) {
	handler := ProductList(&stubCatalogService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?min_price=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductDetailRejectsBadID(t *testing.T) {
	handler := ProductDetail(&stubCatalogService{}, nil)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/not-a-uuid", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestProductCreateRejectsUnknownFields(t *testing.T) {
	handler := ProductCreate(&stubCatalogService{}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/products", jsonBody(`{"name":"x","surprise":true}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}
