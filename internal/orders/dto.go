package orders

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/pkg/db/models"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	"github.com/kamaubrian/sokolink-backend/pkg/pagination"
)

// ItemDTO is a frozen order line.
type ItemDTO struct {
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Quantity     int             `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	LineSubtotal decimal.Decimal `json:"line_subtotal"`
}

// OrderDTO is the transport shape for a placed order.
type OrderDTO struct {
	ID               uuid.UUID           `json:"id"`
	Code             string              `json:"code"`
	Status           enums.OrderStatus   `json:"status"`
	PaymentMethod    enums.PaymentMethod `json:"payment_method"`
	PaymentStatus    enums.PaymentStatus `json:"payment_status"`
	PaymentReference *string             `json:"payment_reference,omitempty"`
	Subtotal         decimal.Decimal     `json:"subtotal"`
	DeliveryFee      decimal.Decimal     `json:"delivery_fee"`
	Total            decimal.Decimal     `json:"total"`
	ContactPhone     *string             `json:"contact_phone,omitempty"`
	DeliveryAddress  *string             `json:"delivery_address,omitempty"`
	Items            []ItemDTO           `json:"items"`
	CreatedAt        time.Time           `json:"created_at"`
}

// ListResult couples an order page with its pagination metadata.
type ListResult struct {
	Orders []OrderDTO      `json:"orders"`
	Meta   pagination.Meta `json:"meta"`
}

// FromModel maps a persisted order onto the transport shape.
func FromModel(o *models.Order) *OrderDTO {
	if o == nil {
		return nil
	}
	dto := &OrderDTO{
		ID:               o.ID,
		Code:             o.DisplayCode(),
		Status:           o.Status,
		PaymentMethod:    o.PaymentMethod,
		PaymentStatus:    o.PaymentStatus,
		PaymentReference: o.PaymentReference,
		Subtotal:         o.Subtotal,
		DeliveryFee:      o.DeliveryFee,
		Total:            o.Total,
		ContactPhone:     o.ContactPhone,
		DeliveryAddress:  o.DeliveryAddress,
		Items:            make([]ItemDTO, 0, len(o.Items)),
		CreatedAt:        o.CreatedAt,
	}
	for _, item := range o.Items {
		dto.Items = append(dto.Items, ItemDTO{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
			LineSubtotal: item.LineSubtotal,
		})
	}
	return dto
}
