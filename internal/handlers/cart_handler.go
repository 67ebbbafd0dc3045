package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/restaurante-delicia/storefront/internal/models"
	"github.com/restaurante-delicia/storefront/internal/service"
)

// CartHandler handles cart HTTP requests for the session cart
type CartHandler struct {
	cartService *service.CartService
	log         *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(cartService *service.CartService, log *slog.Logger) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		log:         log,
	}
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, h.cartService.View(), h.log)
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode add item request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	view, err := h.cartService.AddItem(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, service.ErrInvalidProduct) {
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
			return
		}
		h.log.Error("failed to add item", "productId", req.ProductID, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, view, h.log)
}

// UpdateQuantity handles PUT /api/cart/items/{productId}
// A quantity of zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	var req models.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode quantity request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, h.cartService.SetQuantity(r.Context(), productID, req.Quantity), h.log)
}

// RemoveItem handles DELETE /api/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, ok := productIDParam(r)
	if !ok {
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.log)
		return
	}

	WriteJSON(w, http.StatusOK, h.cartService.RemoveItem(r.Context(), productID), h.log)
}
