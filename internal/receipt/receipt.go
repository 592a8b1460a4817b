package receipt

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/internal/orders"
)

const lineWidth = 42

// Receipt is the JSON shape returned alongside the printable text.
type Receipt struct {
	Code          string    `json:"code"`
	IssuedAt      time.Time `json:"issued_at"`
	PaymentMethod string    `json:"payment_method"`
	Text          string    `json:"text"`
}

// Render produces a printable till receipt for a placed order.
func Render(order *orders.OrderDTO) *Receipt {
	if order == nil {
		return nil
	}

	var b strings.Builder
	divider := strings.Repeat("-", lineWidth)

	center(&b, "SOKOLINK")
	center(&b, "Order Receipt")
	b.WriteString(divider + "\n")

	row(&b, "Order", order.Code)
	row(&b, "Date", order.CreatedAt.Format("02 Jan 2006 15:04"))
	b.WriteString(divider + "\n")

	for _, item := range order.Items {
		b.WriteString(item.ProductName + "\n")
		row(&b,
			fmt.Sprintf("  %d x %s", item.Quantity, money(item.UnitPrice)),
			money(item.LineSubtotal),
		)
	}
	b.WriteString(divider + "\n")

	row(&b, "Subtotal", money(order.Subtotal))
	if order.DeliveryFee.IsPositive() {
		row(&b, "Delivery fee", money(order.DeliveryFee))
	}
	row(&b, "TOTAL", money(order.Total))
	b.WriteString(divider + "\n")

	row(&b, "Paid via", order.PaymentMethod.Label())
	if order.PaymentReference != nil {
		row(&b, "Ref", *order.PaymentReference)
	}
	if order.ContactPhone != nil {
		row(&b, "Contact", *order.ContactPhone)
	}
	if order.DeliveryAddress != nil {
		b.WriteString("Deliver to:\n")
		b.WriteString("  " + *order.DeliveryAddress + "\n")
	}
	b.WriteString(divider + "\n")
	center(&b, "Asante! Karibu tena.")

	return &Receipt{
		Code:          order.Code,
		IssuedAt:      order.CreatedAt,
		PaymentMethod: order.PaymentMethod.String(),
		Text:          b.String(),
	}
}

func money(amount decimal.Decimal) string {
	return "KSh " + amount.StringFixed(2)
}

func row(b *strings.Builder, label, value string) {
	gap := lineWidth - utf8.RuneCountInString(label) - utf8.RuneCountInString(value)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(label + strings.Repeat(" ", gap) + value + "\n")
}

func center(b *strings.Builder, text string) {
	pad := (lineWidth - utf8.RuneCountInString(text)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad) + text + "\n")
}
