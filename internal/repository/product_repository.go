package repository

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/restaurante-delicia/storefront/internal/models"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

//go:embed catalog.yaml
var staticCatalog []byte

// CatalogRepository defines the interface for catalog data access
type CatalogRepository interface {
	GetAll(ctx context.Context) ([]models.CatalogItem, error)
	GetByID(ctx context.Context, id int64) (*models.CatalogItem, error)
}

// InMemoryCatalogRepository implements CatalogRepository over a fixed item list.
// Items are never mutated after construction.
type InMemoryCatalogRepository struct {
	items []models.CatalogItem
	index map[int64]int
}

// NewInMemoryCatalogRepository creates a repository serving items in the given order
func NewInMemoryCatalogRepository(items []models.CatalogItem) *InMemoryCatalogRepository {
	r := &InMemoryCatalogRepository{
		items: make([]models.CatalogItem, len(items)),
		index: make(map[int64]int, len(items)),
	}
	copy(r.items, items)
	for i, item := range r.items {
		r.index[item.ID] = i
	}
	return r
}

// NewStaticCatalogRepository creates a repository with the compiled-in menu
func NewStaticCatalogRepository() (*InMemoryCatalogRepository, error) {
	items, err := parseStaticCatalog(staticCatalog)
	if err != nil {
		return nil, err
	}
	return NewInMemoryCatalogRepository(items), nil
}

func parseStaticCatalog(data []byte) ([]models.CatalogItem, error) {
	var doc struct {
		Items []models.CatalogItem `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode static catalog: %w", err)
	}
	if err := validateItems(doc.Items); err != nil {
		return nil, fmt.Errorf("invalid static catalog: %w", err)
	}
	return doc.Items, nil
}

// GetAll returns all items in catalog order
func (r *InMemoryCatalogRepository) GetAll(ctx context.Context) ([]models.CatalogItem, error) {
	items := make([]models.CatalogItem, len(r.items))
	copy(items, r.items)
	return items, nil
}

// GetByID returns an item by its ID
func (r *InMemoryCatalogRepository) GetByID(ctx context.Context, id int64) (*models.CatalogItem, error) {
	i, exists := r.index[id]
	if !exists {
		return nil, ErrProductNotFound
	}
	item := r.items[i]
	return &item, nil
}
