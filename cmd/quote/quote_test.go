package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restaurante-delicia/storefront/internal/config"
	"github.com/restaurante-delicia/storefront/internal/order"
)

func testConfig() *config.Config {
	return &config.Config{
		Store: config.StoreConfig{
			DeliveryFee:   4000,
			WhatsAppPhone: "573001234567",
			WhatsAppURL:   "https://wa.me",
			Locale:        "es",
		},
	}
}

func TestQuoteCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"1", "1", "5", "--address", "Cra 15 #85-32"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	got := out.String()
	assert.Contains(t, got, "• Hamburguesa Clásica x2 - $24.000")
	assert.Contains(t, got, "• Limonada Natural x1 - $5.000")
	assert.Contains(t, got, "Subtotal: $29.000")
	assert.Contains(t, got, "Domicilio: $4.000")
	assert.Contains(t, got, "*Total: $33.000*")
	assert.Contains(t, got, "Dirección de entrega: Cra 15 #85-32")
	assert.Contains(t, got, "https://wa.me/573001234567?text=")
}

func TestQuoteCommand_LinkOnly(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"7", "--link-only", "--delivery-fee", "0"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "https://wa.me/573001234567?text="))
}

func TestRunQuote_Errors(t *testing.T) {
	opts := quoteOptions{deliveryFee: 4000, phone: "1", baseURL: "https://wa.me", locale: "es"}

	err := runQuote(context.Background(), &bytes.Buffer{}, opts, nil)
	assert.ErrorIs(t, err, order.ErrEmptyCart)

	err = runQuote(context.Background(), &bytes.Buffer{}, opts, []int64{99})
	assert.ErrorContains(t, err, "not on the menu")

	opts.locale = "not a locale!"
	err = runQuote(context.Background(), &bytes.Buffer{}, opts, []int64{1})
	assert.Error(t, err)
}

func TestQuoteCommand_InvalidID(t *testing.T) {
	cmd := newRootCmd(testConfig())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"uno"})

	assert.Error(t, cmd.ExecuteContext(context.Background()))
}
