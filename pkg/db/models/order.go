package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/pkg/enums"
)

// Order is an immutable record of a converted cart. OrderNumber comes from a
// database sequence and backs the human-facing display code.
type Order struct {
	ID               uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	OrderNumber      int64               `gorm:"column:order_number;not null;uniqueIndex;autoIncrement"`
	UserID           uuid.UUID           `gorm:"column:user_id;type:uuid;not null;index"`
	CartID           uuid.UUID           `gorm:"column:cart_id;type:uuid;not null"`
	Status           enums.OrderStatus   `gorm:"column:status;not null;default:'processing'"`
	PaymentMethod    enums.PaymentMethod `gorm:"column:payment_method;not null"`
	PaymentStatus    enums.PaymentStatus `gorm:"column:payment_status;not null;default:'pending'"`
	PaymentReference *string             `gorm:"column:payment_reference"`
	Subtotal         decimal.Decimal     `gorm:"column:subtotal;type:numeric(12,2);not null"`
	DeliveryFee      decimal.Decimal     `gorm:"column:delivery_fee;type:numeric(12,2);not null;default:0"`
	Total            decimal.Decimal     `gorm:"column:total;type:numeric(12,2);not null"`
	ContactPhone     *string             `gorm:"column:contact_phone"`
	DeliveryAddress  *string             `gorm:"column:delivery_address"`
	Items            []OrderItem         `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt        time.Time           `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt        time.Time           `gorm:"column:updated_at;autoUpdateTime"`
}

// DisplayCode renders the customer-facing order code, e.g. ORD100042.
func (o Order) DisplayCode() string {
	return fmt.Sprintf("ORD%d", o.OrderNumber)
}
