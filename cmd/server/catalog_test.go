package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurante-delicia/storefront/internal/config"
	"github.com/restaurante-delicia/storefront/pkg/logger"
)

func TestOpenCatalog(t *testing.T) {
	ctx := context.Background()

	t.Run("static menu", func(t *testing.T) {
		var buf bytes.Buffer
		repo, err := openCatalog(ctx, config.CatalogConfig{FetchTimeout: 5}, logger.NewWithWriter(&buf, "info"))
		require.NoError(t, err)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 12)
		assert.Contains(t, buf.String(), `"items":12`)
	})

	t.Run("remote failure falls back to empty menu", func(t *testing.T) {
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		var buf bytes.Buffer
		repo, err := openCatalog(ctx, config.CatalogConfig{
			URLs:         []string{srv.URL + "/menu.json"},
			FetchTimeout: 5,
		}, logger.NewWithWriter(&buf, "info"))
		require.NoError(t, err)

		items, err := repo.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.Contains(t, buf.String(), "serving an empty menu")
		assert.Contains(t, buf.String(), `"items":0`)
	})
}
