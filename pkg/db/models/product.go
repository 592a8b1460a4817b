package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog listing. Prices are Kenyan shillings stored as
// numeric(12,2); DealPrice, when set, is the price charged at the till.
type Product struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	Name          string           `gorm:"column:name;not null"`
	Description   string           `gorm:"column:description;not null"`
	Category      string           `gorm:"column:category;not null;index"`
	Price         decimal.Decimal  `gorm:"column:price;type:numeric(12,2);not null"`
	DealPrice     *decimal.Decimal `gorm:"column:deal_price;type:numeric(12,2)"`
	ImageURL      *string          `gorm:"column:image_url"`
	StockQuantity int              `gorm:"column:stock_quantity;not null;default:0"`
	IsActive      bool             `gorm:"column:is_active;not null;default:true"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

// EffectivePrice returns the deal price when one is set, otherwise the list price.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.DealPrice != nil {
		return *p.DealPrice
	}
	return p.Price
}
