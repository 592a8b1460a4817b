package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kamaubrian/sokolink-backend/pkg/db/models"
	pkgerrors "github.com/kamaubrian/sokolink-backend/pkg/errors"
	"github.com/kamaubrian/sokolink-backend/pkg/pagination"
)

type stubRepo struct {
	products map[uuid.UUID]*models.Product
	listErr  error
}

func newStubRepo() *stubRepo {
	return &stubRepo{products: map[uuid.UUID]*models.Product{}}
}

func (s *stubRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if p, ok := s.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) Create(ctx context.Context, product *models.Product) (*models.Product, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	s.products[product.ID] = product
	return product, nil
}

func (s *stubRepo) Update(ctx context.Context, product *models.Product) (*models.Product, error) {
	s.products[product.ID] = product
	return product, nil
}

func (s *stubRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.products, id)
	return nil
}

func (s *stubRepo) List(ctx context.Context, filters ListFilters, params pagination.Params) ([]models.Product, int64, error) {
	if s.listErr != nil {
		return nil, 0, s.listErr
	}
	rows := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		rows = append(rows, *p)
	}
	return rows, int64(len(rows)), nil
}

func (s *stubRepo) Categories(ctx context.Context) ([]string, error) {
	return []string{"groceries"}, nil
}

func mustService(t *testing.T, repo repository) Service {
	t.Helper()
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceCreateRejectsDealAboveListPrice(t *testing.T) {
	svc := mustService(t, newStubRepo())
	deal := decimal.RequireFromString("600")

	_, err := svc.Create(context.Background(), CreateProductRequest{
		Name:        "Sugar",
		Description: "1kg bag",
		Category:    "groceries",
		Price:       decimal.RequireFromString("500"),
		DealPrice:   &deal,
	})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateRejectsNonPositivePrice(t *testing.T) {
	svc := mustService(t, newStubRepo())

	for _, price := range []decimal.Decimal{decimal.Zero, decimal.RequireFromString("-5")} {
		_, err := svc.Create(context.Background(), CreateProductRequest{
			Name:        "Sugar",
			Description: "1kg bag",
			Category:    "groceries",
			Price:       price,
		})
		assertCode(t, err, pkgerrors.CodeValidation)
	}
}

func TestServiceUpdateRejectsZeroPrice(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:        "Sugar",
		Description: "1kg bag",
		Category:    "groceries",
		Price:       decimal.RequireFromString("200"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	zero := decimal.Zero
	_, err = svc.Update(context.Background(), created.ID, UpdateProductRequest{Price: &zero})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceCreateAndGet(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:          "  Sugar 1kg  ",
		Description:   "Fine white sugar",
		Category:      "groceries",
		Price:         decimal.RequireFromString("200.00"),
		StockQuantity: 5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Sugar 1kg" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if !created.InStock {
		t.Fatal("expected product to report in stock")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Price.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("unexpected price %s", got.Price)
	}
}

func TestServiceGetNotFound(t *testing.T) {
	svc := mustService(t, newStubRepo())
	_, err := svc.Get(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func TestServiceUpdateClearsDeal(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)

	deal := decimal.RequireFromString("150")
	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:        "Sugar",
		Description: "1kg bag",
		Category:    "groceries",
		Price:       decimal.RequireFromString("200"),
		DealPrice:   &deal,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, UpdateProductRequest{ClearDeal: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DealPrice != nil {
		t.Fatalf("expected deal price cleared, got %s", updated.DealPrice)
	}
}

func TestServiceUpdateRejectsNegativeStock(t *testing.T) {
	repo := newStubRepo()
	svc := mustService(t, repo)

	created, err := svc.Create(context.Background(), CreateProductRequest{
		Name:        "Sugar",
		Description: "1kg bag",
		Category:    "groceries",
		Price:       decimal.RequireFromString("200"),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	negative := -1
	_, err = svc.Update(context.Background(), created.ID, UpdateProductRequest{StockQuantity: &negative})
	assertCode(t, err, pkgerrors.CodeValidation)
}

func TestServiceDeleteNotFound(t *testing.T) {
	svc := mustService(t, newStubRepo())
	err := svc.Delete(context.Background(), uuid.New())
	assertCode(t, err, pkgerrors.CodeNotFound)
}

func assertCode(t *testing.T, err error, want pkgerrors.Code) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil {
		t.Fatalf("expected typed error, got %v", err)
	}
	if appErr.Code() != want {
		t.Fatalf("expected code %s, got %s", want, appErr.Code())
	}
}
