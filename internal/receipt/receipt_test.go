package receipt

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/kamaubrian/sokolink-backend/internal/orders"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
)

func sampleOrder() *orders.OrderDTO {
	phone := "0712345678"
	address := "14 Moi Avenue, Nairobi"
	ref := "COD-A1B2C3D4E5"
	return &orders.OrderDTO{
		ID:               uuid.New(),
		Code:             "ORD100042",
		Status:           enums.OrderStatusProcessing,
		PaymentMethod:    enums.PaymentMethodCashOnDelivery,
		PaymentStatus:    enums.PaymentStatusPending,
		PaymentReference: &ref,
		Subtotal:         decimal.RequireFromString("1300.00"),
		DeliveryFee:      decimal.RequireFromString("100.00"),
		Total:            decimal.RequireFromString("1400.00"),
		ContactPhone:     &phone,
		DeliveryAddress:  &address,
		Items: []orders.ItemDTO{
			{
				ProductID:    uuid.New(),
				ProductName:  "Maize Flour 2kg",
				Quantity:     2,
				UnitPrice:    decimal.RequireFromString("500.00"),
				LineSubtotal: decimal.RequireFromString("1000.00"),
			},
			{
				ProductID:    uuid.New(),
				ProductName:  "Cooking Oil 1L",
				Quantity:     1,
				UnitPrice:    decimal.RequireFromString("300.00"),
				LineSubtotal: decimal.RequireFromString("300.00"),
			},
		},
		CreatedAt: time.Date(2025, 9, 14, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderIncludesEverySection(t *testing.T) {
	rendered := Render(sampleOrder())
	if rendered == nil {
		t.Fatal("expected a receipt")
	}
	if rendered.Code != "ORD100042" {
		t.Fatalf("unexpected code %q", rendered.Code)
	}

	text := rendered.Text
	expectations := []string{
		"ORD100042",
		"14 Sep 2025 10:30",
		"Maize Flour 2kg",
		"2 x KSh 500.00",
		"KSh 1000.00",
		"Cooking Oil 1L",
		"Delivery fee",
		"KSh 100.00",
		"KSh 1400.00",
		"Cash on Delivery",
		"COD-A1B2C3D4E5",
		"0712345678",
		"14 Moi Avenue, Nairobi",
	}
	for _, want := range expectations {
		if !strings.Contains(text, want) {
			t.Errorf("receipt missing %q:\n%s", want, text)
		}
	}
}

func TestRenderOmitsFeeRowWhenZero(t *testing.T) {
	order := sampleOrder()
	order.PaymentMethod = enums.PaymentMethodMpesa
	order.DeliveryFee = decimal.Zero
	order.Total = order.Subtotal
	order.DeliveryAddress = nil

	text := Render(order).Text
	if strings.Contains(text, "Delivery fee") {
		t.Fatalf("fee row should be omitted:\n%s", text)
	}
	if strings.Contains(text, "Deliver to:") {
		t.Fatalf("address block should be omitted:\n%s", text)
	}
}

func TestRenderAlignsNonASCIINames(t *testing.T) {
	order := sampleOrder()
	order.Items = order.Items[:1]
	order.Items[0].ProductName = "Chai Masala Ndimu – 500g"

	text := Render(order).Text
	for _, line := range strings.Split(text, "\n") {
		if width := utf8.RuneCountInString(line); width > lineWidth {
			t.Errorf("line exceeds %d columns (%d): %q", lineWidth, width, line)
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if strings.HasSuffix(line, "KSh 1000.00") {
			if utf8.RuneCountInString(line) != lineWidth {
				t.Fatalf("amount not flush right: %q", line)
			}
			return
		}
	}
	t.Fatalf("line subtotal row not found:\n%s", text)
}

func TestRenderNilOrder(t *testing.T) {
	if Render(nil) != nil {
		t.Fatal("expected nil receipt for nil order")
	}
}
