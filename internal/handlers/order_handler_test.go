package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/language"

	"github.com/restaurante-delicia/storefront/internal/dispatch"
	"github.com/restaurante-delicia/storefront/internal/metrics"
	"github.com/restaurante-delicia/storefront/internal/models"
	"github.com/restaurante-delicia/storefront/internal/order"
	"github.com/restaurante-delicia/storefront/internal/repository"
	"github.com/restaurante-delicia/storefront/internal/service"
	"github.com/restaurante-delicia/storefront/pkg/logger"
)

const testDeliveryFee = 4000

// newSessionRouter wires cart and order handlers around one session cart
func newSessionRouter(t *testing.T) (*chi.Mux, *service.CartService) {
	t.Helper()

	repo, err := repository.NewStaticCatalogRepository()
	if err != nil {
		t.Fatalf("failed to load static catalog: %v", err)
	}
	log := logger.New("error")
	m := metrics.New(prometheus.NewRegistry())

	cartService := service.NewCartService(repo, testDeliveryFee, m, log)
	orderService := service.NewOrderService(
		cartService,
		order.NewFormatter(language.Spanish),
		dispatch.NewWhatsApp("https://wa.me", "573001234567", dispatch.LogOpener(log)),
		testDeliveryFee,
		m,
		log,
	)

	cartHandler := NewCartHandler(cartService, log)
	orderHandler := NewOrderHandler(orderService, log)

	r := chi.NewRouter()
	r.Get("/api/cart", cartHandler.GetCart)
	r.Post("/api/cart/items", cartHandler.AddItem)
	r.Put("/api/cart/items/{productId}", cartHandler.UpdateQuantity)
	r.Delete("/api/cart/items/{productId}", cartHandler.RemoveItem)
	r.Post("/api/order", orderHandler.CreateOrder)
	return r, cartService
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		addProducts    []int64
		requestBody    string
		expectedStatus int
		checkResponse  func(*testing.T, *models.OrderConfirmation)
	}{
		{
			name:           "successful order",
			addProducts:    []int64{1, 1, 5},
			requestBody:    `{}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, c *models.OrderConfirmation) {
				if c.ID == "" {
					t.Error("order ID is empty")
				}
				if c.Totals.Total != 33000 {
					t.Errorf("expected total 33000, got %d", c.Totals.Total)
				}
				if !strings.Contains(c.Message, "Hamburguesa Clásica x2 - $24.000") {
					t.Errorf("message missing burger line: %q", c.Message)
				}
				if strings.Contains(c.Message, "Dirección") {
					t.Errorf("message should not carry an address: %q", c.Message)
				}
				u, err := url.Parse(c.Link)
				if err != nil {
					t.Fatalf("invalid link: %v", err)
				}
				if u.Query().Get("text") != c.Message {
					t.Error("link text does not round-trip to the message")
				}
			},
		},
		{
			name:           "order with address",
			addProducts:    []int64{7},
			requestBody:    `{"address":"Cra 15 #85-32, Bogotá"}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, c *models.OrderConfirmation) {
				if !strings.Contains(c.Message, "📍 Dirección de entrega: Cra 15 #85-32, Bogotá") {
					t.Errorf("message missing address: %q", c.Message)
				}
				if c.Totals.Total != 8000 {
					t.Errorf("expected total 8000, got %d", c.Totals.Total)
				}
			},
		},
		{
			name:           "no body",
			addProducts:    []int64{5},
			requestBody:    "",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "empty cart",
			requestBody:    `{"address":"Calle 123"}`,
			expectedStatus: http.StatusUnprocessableEntity,
		},
		{
			name:           "invalid JSON",
			addProducts:    []int64{1},
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, cartService := newSessionRouter(t)
			for _, id := range tt.addProducts {
				if _, err := cartService.AddItem(context.Background(), id); err != nil {
					t.Fatalf("failed to add product %d: %v", id, err)
				}
			}

			req := httptest.NewRequest(http.MethodPost, "/api/order", bytes.NewReader([]byte(tt.requestBody)))
			w := httptest.NewRecorder()

			r.ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d, body = %s", w.Code, tt.expectedStatus, w.Body.String())
			}

			if tt.expectedStatus == http.StatusOK && tt.checkResponse != nil {
				var confirmation models.OrderConfirmation
				if err := json.NewDecoder(w.Body).Decode(&confirmation); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				tt.checkResponse(t, &confirmation)
			}

			if tt.expectedStatus == http.StatusUnprocessableEntity {
				var response map[string]string
				if err := json.NewDecoder(w.Body).Decode(&response); err != nil {
					t.Fatalf("failed to decode error response: %v", err)
				}
				if response["error"] != "Cart is empty" {
					t.Errorf("expected 'Cart is empty', got %s", response["error"])
				}
			}
		})
	}
}
