package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/restaurante-delicia/storefront/internal/cart"
	"github.com/restaurante-delicia/storefront/internal/metrics"
	"github.com/restaurante-delicia/storefront/internal/models"
	"github.com/restaurante-delicia/storefront/internal/order"
)

// CartReader provides the lines to check out
type CartReader interface {
	Snapshot() []models.CartLine
}

// Dispatcher hands a composed message to the messaging channel and returns the link used
type Dispatcher interface {
	Dispatch(ctx context.Context, message string) (string, error)
}

// OrderService composes and dispatches the order message
type OrderService struct {
	cart        CartReader
	formatter   *order.Formatter
	dispatcher  Dispatcher
	deliveryFee int64
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	cartReader CartReader,
	formatter *order.Formatter,
	dispatcher Dispatcher,
	deliveryFee int64,
	m *metrics.Metrics,
	logger *slog.Logger,
) *OrderService {
	return &OrderService{
		cart:        cartReader,
		formatter:   formatter,
		dispatcher:  dispatcher,
		deliveryFee: deliveryFee,
		metrics:     m,
		logger:      logger,
	}
}

// Checkout formats the current cart with the optional address and dispatches it.
// Returns order.ErrEmptyCart without dispatching when the cart is empty.
func (s *OrderService) Checkout(ctx context.Context, req models.OrderRequest) (*models.OrderConfirmation, error) {
	lines := s.cart.Snapshot()

	msg, err := s.formatter.Format(lines, s.deliveryFee, req.Address)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			s.metrics.CheckoutRejected.WithLabelValues("empty_cart").Inc()
		}
		return nil, err
	}

	link, err := s.dispatcher.Dispatch(ctx, msg)
	if err != nil {
		s.metrics.CheckoutRejected.WithLabelValues("dispatch_failed").Inc()
		return nil, fmt.Errorf("failed to dispatch order: %w", err)
	}

	totals := cart.ComputeTotals(lines, s.deliveryFee)
	s.metrics.OrdersDispatched.Inc()
	s.metrics.OrderTotal.Observe(float64(totals.Total))

	confirmation := &models.OrderConfirmation{
		ID:      generateOrderID(),
		Lines:   lines,
		Totals:  totals,
		Message: msg,
		Link:    link,
	}

	s.logger.InfoContext(ctx, "order dispatched",
		"order_id", confirmation.ID,
		"lines", len(lines),
		"items", totals.ItemCount,
		"total", totals.Total,
		"has_address", strings.TrimSpace(req.Address) != "",
	)

	return confirmation, nil
}

// generateOrderID generates a unique order ID using UUID
func generateOrderID() string {
	return uuid.New().String()
}
