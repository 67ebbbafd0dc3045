package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/restaurante-delicia/storefront/internal/cart"
	"github.com/restaurante-delicia/storefront/internal/metrics"
	"github.com/restaurante-delicia/storefront/internal/models"
	"github.com/restaurante-delicia/storefront/internal/repository"
)

var (
	ErrInvalidProduct = errors.New("invalid product")
)

// ProductRepository interface for item lookup when adding to the cart
type ProductRepository interface {
	GetByID(ctx context.Context, id int64) (*models.CatalogItem, error)
}

// CartService owns the session cart.
// HTTP handlers run concurrently, so every store access goes through mu.
type CartService struct {
	mu          sync.Mutex
	store       *cart.Store
	productRepo ProductRepository
	deliveryFee int64
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewCartService creates a cart service with an empty cart
func NewCartService(productRepo ProductRepository, deliveryFee int64, m *metrics.Metrics, logger *slog.Logger) *CartService {
	return &CartService{
		store:       cart.NewStore(),
		productRepo: productRepo,
		deliveryFee: deliveryFee,
		metrics:     m,
		logger:      logger,
	}
}

// AddItem adds one unit of the catalog item with the given id
func (s *CartService) AddItem(ctx context.Context, id int64) (models.CartView, error) {
	item, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return models.CartView{}, ErrInvalidProduct
		}
		return models.CartView{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.AddItem(*item)
	s.metrics.ItemsAdded.Inc()
	s.logger.DebugContext(ctx, "item added to cart", "product_id", id, "lines", s.store.Len())

	return s.viewLocked(), nil
}

// SetQuantity replaces the quantity of a line; zero or less removes it
func (s *CartService) SetQuantity(ctx context.Context, id int64, quantity int) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.store.Len()
	s.store.SetQuantity(id, quantity)
	s.recordRemovals(before)
	s.logger.DebugContext(ctx, "cart quantity set", "product_id", id, "quantity", quantity)

	return s.viewLocked()
}

// RemoveItem deletes a line; unknown ids are ignored
func (s *CartService) RemoveItem(ctx context.Context, id int64) models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := s.store.Len()
	s.store.RemoveItem(id)
	s.recordRemovals(before)
	s.logger.DebugContext(ctx, "item removed from cart", "product_id", id)

	return s.viewLocked()
}

// View returns the current lines and totals
func (s *CartService) View() models.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.viewLocked()
}

// Snapshot returns a copy of the current lines
func (s *CartService) Snapshot() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.store.Snapshot()
}

func (s *CartService) viewLocked() models.CartView {
	totals := s.store.Totals(s.deliveryFee)
	s.metrics.CartItems.Set(float64(totals.ItemCount))

	return models.CartView{
		Lines:  s.store.Snapshot(),
		Totals: totals,
	}
}

func (s *CartService) recordRemovals(before int) {
	if removed := before - s.store.Len(); removed > 0 {
		s.metrics.ItemsRemoved.Add(float64(removed))
	}
}
