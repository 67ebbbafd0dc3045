package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/restaurante-delicia/storefront/internal/config"
	"github.com/restaurante-delicia/storefront/internal/repository"
)

// openCatalog loads the menu. A failed remote fetch leaves the storefront up
// with an empty catalog rather than refusing to start.
func openCatalog(ctx context.Context, cfg config.CatalogConfig, log *slog.Logger) (*repository.InMemoryCatalogRepository, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.FetchTimeout)*time.Second)
	defer cancel()

	catalogRepo, err := repository.LoadCatalog(fetchCtx, cfg.URLs, nil)
	if err != nil {
		log.Error("failed to load catalog, serving an empty menu", "urls", cfg.URLs, "error", err)
		catalogRepo = repository.NewInMemoryCatalogRepository(nil)
	}

	items, err := catalogRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list catalog items: %w", err)
	}
	log.Info("catalog loaded", "items", len(items), "remote", len(cfg.URLs) > 0)

	return catalogRepo, nil
}
