package checkout

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/kamaubrian/sokolink-backend/internal/cart"
	"github.com/kamaubrian/sokolink-backend/internal/catalog"
	"github.com/kamaubrian/sokolink-backend/internal/orders"
	"github.com/kamaubrian/sokolink-backend/internal/payments"
	"github.com/kamaubrian/sokolink-backend/pkg/config"
	"github.com/kamaubrian/sokolink-backend/pkg/db"
	"github.com/kamaubrian/sokolink-backend/pkg/db/models"
	"github.com/kamaubrian/sokolink-backend/pkg/enums"
	pkgerrors "github.com/kamaubrian/sokolink-backend/pkg/errors"
	"github.com/kamaubrian/sokolink-backend/pkg/metrics"
)

// CashDeliveryFee is the flat delivery charge applied to cash orders, in KSh.
var CashDeliveryFee = decimal.NewFromInt(100)

// Request is the checkout payload.
type Request struct {
	Payment payments.Details `json:"payment" validate:"required"`
}

// Service turns the active cart into an order.
type Service interface {
	Execute(ctx context.Context, userID uuid.UUID, req Request) (*orders.OrderDTO, error)
}

type service struct {
	db       *db.Client
	gateway  payments.Gateway
	cfg      config.PaymentsConfig
	recorder *metrics.CheckoutMetrics
}

// ServiceParams bundles the dependencies required to build a checkout service.
type ServiceParams struct {
	DB             *db.Client
	Gateway        payments.Gateway
	PaymentsConfig config.PaymentsConfig
	Metrics        *metrics.CheckoutMetrics
}

// NewService constructs a checkout service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.DB == nil {
		return nil, fmt.Errorf("database client is required")
	}
	if params.Gateway == nil {
		return nil, fmt.Errorf("payment gateway is required")
	}
	return &service{
		db:       params.DB,
		gateway:  params.Gateway,
		cfg:      params.PaymentsConfig,
		recorder: params.Metrics,
	}, nil
}

func (s *service) Execute(ctx context.Context, userID uuid.UUID, req Request) (*orders.OrderDTO, error) {
	cartRepo := cart.NewRepository(s.db.DB())

	activeCart, err := cartRepo.FindActiveByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load cart")
	}
	if len(activeCart.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	if err := payments.ValidateDetails(req.Payment); err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range activeCart.Items {
		subtotal = subtotal.Add(item.LineSubtotal())
	}
	fee := decimal.Zero
	if req.Payment.Method == enums.PaymentMethodCashOnDelivery {
		fee = CashDeliveryFee
	}
	total := subtotal.Add(fee)

	// charge first so a decline leaves the cart untouched
	result, err := s.charge(ctx, total, req.Payment)
	if err != nil {
		if errors.Is(err, payments.ErrDeclined) {
			s.recorder.IncDecline(req.Payment.Method.String())
			return nil, pkgerrors.Wrap(pkgerrors.CodePaymentFailed, err, "charge declined")
		}
		return nil, err
	}

	order, err := s.persistOrder(ctx, userID, activeCart, req.Payment, result, subtotal, fee, total)
	if err != nil {
		return nil, err
	}

	s.recorder.IncOrder(req.Payment.Method.String())
	return orders.FromModel(order), nil
}

func (s *service) charge(ctx context.Context, total decimal.Decimal, details payments.Details) (*payments.ChargeResult, error) {
	if s.cfg.AttemptTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.AttemptTimeout)
		defer cancel()
	}
	return s.gateway.Charge(ctx, payments.ChargeRequest{
		Amount:  total,
		Details: details,
	})
}

func (s *service) persistOrder(
	ctx context.Context,
	userID uuid.UUID,
	activeCart *models.Cart,
	details payments.Details,
	result *payments.ChargeResult,
	subtotal, fee, total decimal.Decimal,
) (*models.Order, error) {
	paymentStatus := enums.PaymentStatusCompleted
	if details.Method == enums.PaymentMethodCashOnDelivery {
		// cash is collected at the door
		paymentStatus = enums.PaymentStatusPending
	}

	var created *models.Order
	err := s.db.WithTx(ctx, func(tx *gorm.DB) error {
		catalogRepo := catalog.NewRepository(tx)
		orderItems := make([]models.OrderItem, 0, len(activeCart.Items))

		for _, item := range activeCart.Items {
			product, err := catalogRepo.FindByID(ctx, item.ProductID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return pkgerrors.New(pkgerrors.CodeNotFound, "product no longer available").
						WithDetails(map[string]string{"product_id": item.ProductID.String()})
				}
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load product")
			}

			ok, err := catalogRepo.DecrementStock(ctx, item.ProductID, item.Quantity)
			if err != nil {
				return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "decrement stock")
			}
			if !ok {
				return pkgerrors.New(pkgerrors.CodeConflict, "insufficient stock").
					WithDetails(map[string]any{
						"product_id": item.ProductID.String(),
						"requested":  item.Quantity,
						"available":  product.StockQuantity,
					})
			}

			orderItems = append(orderItems, models.OrderItem{
				ID:           uuid.New(),
				ProductID:    item.ProductID,
				ProductName:  product.Name,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
				LineSubtotal: item.LineSubtotal(),
			})
		}

		order := &models.Order{
			ID:            uuid.New(),
			UserID:        userID,
			CartID:        activeCart.ID,
			Status:        enums.OrderStatusProcessing,
			PaymentMethod: details.Method,
			PaymentStatus: paymentStatus,
			Subtotal:      subtotal,
			DeliveryFee:   fee,
			Total:         total,
			Items:         orderItems,
		}
		if ref := result.Reference; ref != "" {
			order.PaymentReference = &ref
		}
		if phone := strings.TrimSpace(details.Phone); phone != "" {
			order.ContactPhone = &phone
		}
		if address := strings.TrimSpace(details.Address); address != "" {
			order.DeliveryAddress = &address
		}

		orderRepo := orders.NewRepository(tx)
		persisted, err := orderRepo.Create(ctx, order)
		if err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "create order")
		}

		cartRepo := cart.NewRepository(tx)
		if err := cartRepo.MarkConverted(ctx, activeCart.ID, time.Now().UTC()); err != nil {
			return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "convert cart")
		}

		created = persisted
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
