package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurante-delicia/storefront/internal/models"
)

func TestStaticCatalogRepository(t *testing.T) {
	repo, err := NewStaticCatalogRepository()
	require.NoError(t, err)

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 12)

	for i, item := range items {
		assert.Equal(t, int64(i+1), item.ID, "catalog order")
	}

	first := items[0]
	assert.Equal(t, "Hamburguesa Clásica", first.Name)
	assert.Equal(t, int64(12000), first.UnitPrice)
	assert.Equal(t, "Hamburguesas", first.Category)
	assert.Equal(t, "photo-1618160702438-9b02ab6515c9", first.ImageRef)

	item, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, "Limonada Natural", item.Name)
	assert.Equal(t, int64(5000), item.UnitPrice)
}

func TestInMemoryCatalogRepository_GetByID_NotFound(t *testing.T) {
	repo := NewInMemoryCatalogRepository(nil)

	item, err := repo.GetByID(context.Background(), 1)
	assert.Nil(t, item)
	assert.True(t, errors.Is(err, ErrProductNotFound))

	items, err := repo.GetAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestInMemoryCatalogRepository_Immutable(t *testing.T) {
	src := []models.CatalogItem{{ID: 1, Name: "a", Category: "c"}}
	repo := NewInMemoryCatalogRepository(src)
	src[0].Name = "changed"

	items, _ := repo.GetAll(context.Background())
	items[0].Name = "changed too"

	item, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "a", item.Name)
}

func TestParseStaticCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bad yaml", "items: [\n"},
		{"missing name", "items:\n  - id: 1\n    price: 10\n    category: c\n"},
		{"blank name", "items:\n  - {id: 1, name: \"   \", category: c}\n"},
		{"blank category", "items:\n  - {id: 1, name: a, category: \" \"}\n"},
		{"zero id", "items:\n  - id: 0\n    name: a\n    category: c\n"},
		{"duplicate id", "items:\n  - {id: 1, name: a, category: c}\n  - {id: 1, name: b, category: c}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseStaticCatalog([]byte(tt.doc))
			assert.Error(t, err)
		})
	}
}
