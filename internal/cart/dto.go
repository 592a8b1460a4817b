package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/pkg/db/models"
)

// AddItemRequest is the payload for adding a product to the basket.
type AddItemRequest struct {
	ProductID uuid.UUID `json:"product_id" validate:"required"`
	Quantity  int       `json:"quantity" validate:"required,gte=1"`
}

// UpdateItemRequest changes the quantity of an existing line. Quantities
// below 1 are clamped to 1 rather than rejected.
type UpdateItemRequest struct {
	Quantity int `json:"quantity"`
}

// ItemDTO is a cart line enriched with current product data.
type ItemDTO struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineSubtotal decimal.Decimal `json:"line_subtotal"`
}

// CartDTO is the transport shape for the buyer's basket.
type CartDTO struct {
	ID       uuid.UUID       `json:"id"`
	Items    []ItemDTO       `json:"items"`
	Subtotal decimal.Decimal `json:"subtotal"`
	Count    int             `json:"count"`
}

func buildCartDTO(cart *models.Cart, names map[uuid.UUID]string) *CartDTO {
	dto := &CartDTO{
		ID:       cart.ID,
		Items:    make([]ItemDTO, 0, len(cart.Items)),
		Subtotal: decimal.Zero,
	}
	for _, item := range cart.Items {
		line := item.LineSubtotal()
		dto.Items = append(dto.Items, ItemDTO{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  names[item.ProductID],
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			LineSubtotal: line,
		})
		dto.Subtotal = dto.Subtotal.Add(line)
		dto.Count += item.Quantity
	}
	return dto
}
