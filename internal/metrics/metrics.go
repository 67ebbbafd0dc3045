// Package metrics exposes storefront counters for Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// Metrics groups the storefront collectors
type Metrics struct {
	ItemsAdded       prometheus.Counter
	ItemsRemoved     prometheus.Counter
	CartItems        prometheus.Gauge
	OrdersDispatched prometheus.Counter
	OrderTotal       prometheus.Histogram
	CheckoutRejected *prometheus.CounterVec
}

// New creates the collectors and registers them on reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ItemsAdded: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_items_added_total",
			Help:      "Units added to the cart.",
		}),
		ItemsRemoved: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_lines_removed_total",
			Help:      "Cart lines removed explicitly or by a zero quantity.",
		}),
		CartItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cart_items",
			Help:      "Units currently in the cart.",
		}),
		OrdersDispatched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_dispatched_total",
			Help:      "Order messages handed to the messaging link.",
		}),
		OrderTotal: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_total",
			Help:      "Order totals including delivery, in whole currency units.",
			Buckets:   prometheus.ExponentialBuckets(5000, 2, 8),
		}),
		CheckoutRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "checkout_rejected_total",
			Help:      "Checkout attempts that produced no message.",
		}, []string{"reason"}),
	}

	reg.MustRegister(
		m.ItemsAdded,
		m.ItemsRemoved,
		m.CartItems,
		m.OrdersDispatched,
		m.OrderTotal,
		m.CheckoutRejected,
	)

	return m
}
