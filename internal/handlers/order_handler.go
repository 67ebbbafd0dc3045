package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/restaurante-delicia/storefront/internal/models"
	"github.com/restaurante-delicia/storefront/internal/order"
	"github.com/restaurante-delicia/storefront/internal/service"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService *service.OrderService
	log          *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService *service.OrderService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		log:          log,
	}
}

// CreateOrder handles POST /api/order
// The body is optional; an absent address omits the address line.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		h.log.Error("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	confirmation, err := h.orderService.Checkout(r.Context(), req)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			h.log.Info("checkout rejected", "reason", err)
			WriteError(w, http.StatusUnprocessableEntity, "Cart is empty", h.log)
			return
		}

		h.log.Error("failed to create order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, confirmation, h.log)
}
