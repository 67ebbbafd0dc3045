package cart

import (
	"math"

	"github.com/restaurante-delicia/storefront/internal/models"
)

// ComputeTotals derives item count, subtotal and total from lines.
// The delivery fee is only charged on a non-empty cart. Sums saturate
// instead of wrapping, so no total is ever negative.
func ComputeTotals(lines []models.CartLine, deliveryFee int64) models.OrderTotals {
	var totals models.OrderTotals
	for _, line := range lines {
		totals.ItemCount = addCount(totals.ItemCount, line.Quantity)
		totals.Subtotal = models.AddCapped(totals.Subtotal, line.Subtotal())
	}

	if len(lines) > 0 && deliveryFee > 0 {
		totals.DeliveryFee = deliveryFee
	}
	totals.Total = models.AddCapped(totals.Subtotal, totals.DeliveryFee)

	return totals
}

func addCount(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
