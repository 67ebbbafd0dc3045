// Package cart holds the session cart and the order totals derived from it.
package cart

import (
	"github.com/restaurante-delicia/storefront/internal/models"
)

// Store holds the current selection keyed by item identity.
// Lines are kept in first-insertion order.
//
// A Store is not safe for concurrent use; callers serving concurrent
// requests must serialise access.
type Store struct {
	lines []models.CartLine
}

// NewStore creates an empty cart
func NewStore() *Store {
	return &Store{
		lines: make([]models.CartLine, 0),
	}
}

// AddItem increments the line for item.ID, or appends a new line with quantity 1
func (s *Store) AddItem(item models.CatalogItem) {
	if i := s.indexOf(item.ID); i >= 0 {
		s.lines[i].Quantity++
		return
	}
	s.lines = append(s.lines, models.CartLine{Item: item, Quantity: 1})
}

// SetQuantity replaces the quantity of the line for id.
// A quantity of zero or less removes the line. Unknown ids are ignored.
func (s *Store) SetQuantity(id int64, quantity int) {
	quantity = normalizeQuantity(quantity)
	if quantity == 0 {
		s.RemoveItem(id)
		return
	}

	if i := s.indexOf(id); i >= 0 {
		s.lines[i].Quantity = quantity
	}
}

// RemoveItem deletes the line for id if present
func (s *Store) RemoveItem(id int64) {
	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
}

// Snapshot returns a copy of the current lines in insertion order
func (s *Store) Snapshot() []models.CartLine {
	snapshot := make([]models.CartLine, len(s.lines))
	copy(snapshot, s.lines)
	return snapshot
}

// Totals computes the order totals for the current cart
func (s *Store) Totals(deliveryFee int64) models.OrderTotals {
	return ComputeTotals(s.lines, deliveryFee)
}

// Len returns the number of distinct lines
func (s *Store) Len() int {
	return len(s.lines)
}

// IsEmpty reports whether the cart has no lines
func (s *Store) IsEmpty() bool {
	return len(s.lines) == 0
}

func (s *Store) indexOf(id int64) int {
	for i, line := range s.lines {
		if line.Item.ID == id {
			return i
		}
	}
	return -1
}

// normalizeQuantity floors a requested quantity at 0.
// Zero means "remove the line".
func normalizeQuantity(quantity int) int {
	if quantity < 0 {
		return 0
	}
	return quantity
}
