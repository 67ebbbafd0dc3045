package service

import (
	"context"

	"github.com/restaurante-delicia/storefront/internal/models"
	"github.com/restaurante-delicia/storefront/internal/repository"
)

// AllCategories is the category selector that matches every item
const AllCategories = "Todos"

// CatalogService handles business logic for the menu
type CatalogService struct {
	repo repository.CatalogRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo repository.CatalogRepository) *CatalogService {
	return &CatalogService{
		repo: repo,
	}
}

// ListItems returns all available items in catalog order
func (s *CatalogService) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	return s.repo.GetAll(ctx)
}

// GetItem returns an item by ID
func (s *CatalogService) GetItem(ctx context.Context, id int64) (*models.CatalogItem, error) {
	return s.repo.GetByID(ctx, id)
}

// Categories returns the AllCategories selector followed by every distinct
// category in order of first appearance
func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	categories := []string{AllCategories}
	seen := make(map[string]bool)
	for _, item := range items {
		if seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	return categories, nil
}

// ByCategory returns the items whose category equals selector, in catalog order.
// AllCategories or an empty selector returns every item.
func (s *CatalogService) ByCategory(ctx context.Context, selector string) ([]models.CatalogItem, error) {
	items, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if selector == "" || selector == AllCategories {
		return items, nil
	}

	filtered := make([]models.CatalogItem, 0, len(items))
	for _, item := range items {
		if item.Category == selector {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}
