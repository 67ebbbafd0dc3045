// Package server assembles the storefront HTTP routes.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/restaurante-delicia/storefront/internal/handlers"
	"github.com/restaurante-delicia/storefront/internal/middleware"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// Handlers groups the route handlers
type Handlers struct {
	Product *handlers.ProductHandler
	Cart    *handlers.CartHandler
	Order   *handlers.OrderHandler
}

// NewRouter creates the chi router with middleware and every storefront route
func NewRouter(h Handlers, gatherer prometheus.Gatherer, allowedOrigins []string, log *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/health", handlers.NewHealthHandler(Version, log).ServeHTTP)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Get("/product", h.Product.ListProducts)
		r.Get("/product/{productId}", h.Product.GetProduct)
		r.Get("/category", h.Product.ListCategories)

		r.Get("/cart", h.Cart.GetCart)
		r.Post("/cart/items", h.Cart.AddItem)
		r.Put("/cart/items/{productId}", h.Cart.UpdateQuantity)
		r.Delete("/cart/items/{productId}", h.Cart.RemoveItem)

		r.Post("/order", h.Order.CreateOrder)
	})

	return r
}
