package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/pkg/db/models"
	"github.com/kamaubrian/sokolink-backend/pkg/pagination"
)

// ProductDTO is the transport shape returned by catalog read paths.
type ProductDTO struct {
	ID            uuid.UUID        `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Category      string           `json:"category"`
	Price         decimal.Decimal  `json:"price"`
	DealPrice     *decimal.Decimal `json:"deal_price,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	StockQuantity int              `json:"stock_quantity"`
	InStock       bool             `json:"in_stock"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// CreateProductRequest is the payload for adding a catalog listing.
type CreateProductRequest struct {
	Name          string           `json:"name" validate:"required"`
	Description   string           `json:"description" validate:"required"`
	Category      string           `json:"category" validate:"required"`
	Price         decimal.Decimal  `json:"price" validate:"required"`
	DealPrice     *decimal.Decimal `json:"deal_price,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	StockQuantity int              `json:"stock_quantity" validate:"gte=0"`
}

// UpdateProductRequest carries partial updates; nil fields are left untouched.
type UpdateProductRequest struct {
	Name          *string          `json:"name,omitempty"`
	Description   *string          `json:"description,omitempty"`
	Category      *string          `json:"category,omitempty"`
	Price         *decimal.Decimal `json:"price,omitempty"`
	DealPrice     *decimal.Decimal `json:"deal_price,omitempty"`
	ClearDeal     bool             `json:"clear_deal,omitempty"`
	ImageURL      *string          `json:"image_url,omitempty"`
	StockQuantity *int             `json:"stock_quantity,omitempty" validate:"omitempty,gte=0"`
	IsActive      *bool            `json:"is_active,omitempty"`
}

// ListFilters narrows the catalog listing.
type ListFilters struct {
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Query    string
}

// ListResult couples a product page with its pagination metadata.
type ListResult struct {
	Products []ProductDTO    `json:"products"`
	Meta     pagination.Meta `json:"meta"`
}

// FromModel maps a persisted product onto the transport shape.
func FromModel(p *models.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Category:      p.Category,
		Price:         p.Price,
		DealPrice:     p.DealPrice,
		ImageURL:      p.ImageURL,
		StockQuantity: p.StockQuantity,
		InStock:       p.StockQuantity > 0,
		IsActive:      p.IsActive,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
