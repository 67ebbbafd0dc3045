package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/restaurante-delicia/storefront/internal/models"
)

var (
	ErrFetchFailed       = errors.New("catalog fetch failed")
	ErrMalformedResponse = errors.New("malformed catalog response")
)

var validate = newValidator()

// newValidator registers notblank so whitespace-only names and categories
// are rejected like empty ones
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	return v
}

// RemoteCatalogLoader downloads catalog documents over HTTP.
// Each document is a JSON array of items.
type RemoteCatalogLoader struct {
	client *http.Client
}

// fetchResult holds the result of loading a single document
type fetchResult struct {
	index int
	items []models.CatalogItem
	err   error
}

// NewRemoteCatalogLoader creates a loader; a nil client gets a 30s timeout default
func NewRemoteCatalogLoader(client *http.Client) *RemoteCatalogLoader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &RemoteCatalogLoader{client: client}
}

// LoadFromURLs fetches all documents concurrently and merges them in URL order.
// Returns error if any document fails to load or the merged catalog is invalid.
func (l *RemoteCatalogLoader) LoadFromURLs(ctx context.Context, urls []string) ([]models.CatalogItem, error) {
	if len(urls) == 0 {
		return nil, fmt.Errorf("%w: no URLs provided", ErrFetchFailed)
	}

	resultChan := make(chan fetchResult, len(urls))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(index int, docURL string) {
			defer wg.Done()

			items, err := l.loadFromURL(ctx, docURL)
			resultChan <- fetchResult{
				index: index,
				items: items,
				err:   err,
			}
		}(i, url)
	}

	go func() {
		wg.Wait()
		close(resultChan)
	}()

	// Collect results maintaining order
	results := make([]fetchResult, len(urls))
	for result := range resultChan {
		results[result.index] = result
	}

	var items []models.CatalogItem
	for i, result := range results {
		if result.err != nil {
			return nil, fmt.Errorf("failed to load catalog %d: %w", i+1, result.err)
		}
		items = append(items, result.items...)
	}

	if err := validateItems(items); err != nil {
		return nil, err
	}

	return items, nil
}

// loadFromURL downloads and decodes one catalog document
func (l *RemoteCatalogLoader) loadFromURL(ctx context.Context, url string) ([]models.CatalogItem, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", ErrFetchFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code: %d", ErrFetchFailed, resp.StatusCode)
	}

	var items []models.CatalogItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return items, nil
}

// validateItems checks field constraints and id uniqueness
func validateItems(items []models.CatalogItem) error {
	seen := make(map[int64]bool, len(items))
	for i := range items {
		if err := validate.Struct(items[i]); err != nil {
			return fmt.Errorf("%w: item %d: %w", ErrMalformedResponse, i, err)
		}
		if seen[items[i].ID] {
			return fmt.Errorf("%w: duplicate item id %d", ErrMalformedResponse, items[i].ID)
		}
		seen[items[i].ID] = true
	}
	return nil
}

// LoadCatalog returns the compiled-in menu when urls is empty, otherwise the
// merged remote catalog
func LoadCatalog(ctx context.Context, urls []string, client *http.Client) (*InMemoryCatalogRepository, error) {
	if len(urls) == 0 {
		return NewStaticCatalogRepository()
	}

	items, err := NewRemoteCatalogLoader(client).LoadFromURLs(ctx, urls)
	if err != nil {
		return nil, err
	}
	return NewInMemoryCatalogRepository(items), nil
}
