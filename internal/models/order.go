package models

import "math"

// CartLine is one (item, quantity) pairing in the cart
type CartLine struct {
	Item     CatalogItem `json:"product"`
	Quantity int         `json:"quantity"`
}

// Subtotal returns quantity × unit price for the line, capped at math.MaxInt64
func (l CartLine) Subtotal() int64 {
	return MulCapped(int64(l.Quantity), l.Item.UnitPrice)
}

// MulCapped multiplies two non-negative amounts, saturating at math.MaxInt64.
// Negative operands yield 0.
func MulCapped(a, b int64) int64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > math.MaxInt64/b {
		return math.MaxInt64
	}
	return a * b
}

// AddCapped adds two non-negative amounts, saturating at math.MaxInt64
func AddCapped(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

// OrderTotals is derived from a cart snapshot and never stored
type OrderTotals struct {
	ItemCount   int   `json:"itemCount"`
	Subtotal    int64 `json:"subtotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Total       int64 `json:"total"`
}

// CartView is the cart as returned by the API
type CartView struct {
	Lines  []CartLine  `json:"lines"`
	Totals OrderTotals `json:"totals"`
}

// AddItemRequest represents a request to add one unit of a product
type AddItemRequest struct {
	ProductID int64 `json:"productId"`
}

// UpdateQuantityRequest represents a request to replace a line's quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// OrderRequest represents an incoming checkout request
type OrderRequest struct {
	Address string `json:"address,omitempty"`
}

// OrderConfirmation represents a dispatched order
type OrderConfirmation struct {
	ID      string      `json:"id"`
	Lines   []CartLine  `json:"lines"`
	Totals  OrderTotals `json:"totals"`
	Message string      `json:"message"`
	Link    string      `json:"link"`
}
