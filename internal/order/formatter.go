// Package order renders a cart snapshot into the message sent to the restaurant.
package order

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/restaurante-delicia/storefront/internal/cart"
	"github.com/restaurante-delicia/storefront/internal/models"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
)

const (
	greeting     = "¡Hola! 🍽️ Me gustaría hacer el siguiente pedido:"
	closing      = "¡Gracias! 😊"
	addressLabel = "📍 Dirección de entrega:"
)

// Formatter renders order messages with amounts grouped for a fixed locale
type Formatter struct {
	printer *message.Printer
}

// NewFormatter creates a formatter for the given locale tag
func NewFormatter(tag language.Tag) *Formatter {
	return &Formatter{
		printer: message.NewPrinter(tag),
	}
}

// ParseLocale parses a BCP 47 tag such as "es" or "es-CO"
func ParseLocale(locale string) (language.Tag, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", locale, err)
	}
	return tag, nil
}

// Format composes the order message for lines.
// Returns ErrEmptyCart when there is nothing to order.
func (f *Formatter) Format(lines []models.CartLine, deliveryFee int64, address string) (string, error) {
	if len(lines) == 0 {
		return "", ErrEmptyCart
	}

	totals := cart.ComputeTotals(lines, deliveryFee)

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n\n")

	for _, line := range lines {
		fmt.Fprintf(&b, "• %s x%d - %s\n", line.Item.Name, line.Quantity, f.Amount(line.Subtotal()))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", f.Amount(totals.Subtotal))
	fmt.Fprintf(&b, "Domicilio: %s\n", f.Amount(totals.DeliveryFee))
	fmt.Fprintf(&b, "💰 *Total: %s*\n", f.Amount(totals.Total))

	if address = strings.TrimSpace(address); address != "" {
		fmt.Fprintf(&b, "\n%s %s\n", addressLabel, address)
	}

	b.WriteString("\n")
	b.WriteString(closing)

	return b.String(), nil
}

// Amount renders a whole-unit price with thousands grouping, e.g. $24.000
func (f *Formatter) Amount(value int64) string {
	return "$" + f.printer.Sprint(number.Decimal(value, number.MaxFractionDigits(0)))
}
