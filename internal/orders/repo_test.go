package orders

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/kamaubrian/sokolink-backend/pkg/db/models"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	"github.com/kamaubrian/sokolink-backend/pkg/pagination"
)

func setupOrdersTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:orders_%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	ddl := `
CREATE TABLE IF NOT EXISTS orders (
  id TEXT PRIMARY KEY,
  order_number INTEGER,
  user_id TEXT NOT NULL,
  cart_id TEXT NOT NULL,
  status TEXT NOT NULL DEFAULT 'processing',
  payment_method TEXT NOT NULL,
  payment_status TEXT NOT NULL DEFAULT 'pending',
  payment_reference TEXT,
  subtotal NUMERIC NOT NULL,
  delivery_fee NUMERIC NOT NULL DEFAULT 0,
  total NUMERIC NOT NULL,
  contact_phone TEXT,
  delivery_address TEXT,
  created_at DATETIME,
  updated_at DATETIME
);
CREATE TABLE IF NOT EXISTS order_items (
  id TEXT PRIMARY KEY,
  order_id TEXT NOT NULL,
  product_id TEXT NOT NULL,
  product_name TEXT NOT NULL,
  quantity INTEGER NOT NULL,
  unit_price NUMERIC NOT NULL,
  line_subtotal NUMERIC NOT NULL,
  created_at DATETIME
);`
	require.NoError(t, conn.Exec(ddl).Error)
	return conn
}

func seedOrder(t *testing.T, repo *Repository, userID uuid.UUID, number int64, total string) *models.Order {
	t.Helper()
	amount := decimal.RequireFromString(total)
	order := &models.Order{
		ID:            uuid.New(),
		OrderNumber:   number,
		UserID:        userID,
		CartID:        uuid.New(),
		Status:        enums.OrderStatusProcessing,
		PaymentMethod: enums.PaymentMethodMpesa,
		PaymentStatus: enums.PaymentStatusCompleted,
		Subtotal:      amount,
		DeliveryFee:   decimal.Zero,
		Total:         amount,
		Items: []models.OrderItem{
			{
				ID:           uuid.New(),
				ProductID:    uuid.New(),
				ProductName:  "Sugar 1kg",
				Quantity:     1,
				UnitPrice:    amount,
				LineSubtotal: amount,
			},
		},
	}
	created, err := repo.Create(context.Background(), order)
	require.NoError(t, err)
	return created
}

func TestRepositoryCreateAndFindForUser(t *testing.T) {
	conn := setupOrdersTestDB(t)
	repo := NewRepository(conn)
	userID := uuid.New()

	order := seedOrder(t, repo, userID, 100001, "200.00")

	found, err := repo.FindByIDForUser(context.Background(), order.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, "ORD100001", found.DisplayCode())
	require.Len(t, found.Items, 1)
	assert.Equal(t, "Sugar 1kg", found.Items[0].ProductName)

	// other users must not see the order
	_, err = repo.FindByIDForUser(context.Background(), order.ID, uuid.New())
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryListByUserNewestFirst(t *testing.T) {
	conn := setupOrdersTestDB(t)
	repo := NewRepository(conn)
	userID := uuid.New()

	seedOrder(t, repo, userID, 100001, "100.00")
	seedOrder(t, repo, userID, 100002, "200.00")
	seedOrder(t, repo, uuid.New(), 100003, "300.00")

	rows, total, err := repo.ListByUser(context.Background(), userID, pagination.Params{})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, rows, 2)
	assert.EqualValues(t, 100002, rows[0].OrderNumber)
	require.Len(t, rows[0].Items, 1)
}
