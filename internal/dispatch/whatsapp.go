// Package dispatch turns an order message into a messaging deep link and opens it.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"
)

// Opener opens a fully formed deep link
type Opener interface {
	Open(ctx context.Context, link string) error
}

// OpenerFunc adapts a function to Opener
type OpenerFunc func(ctx context.Context, link string) error

// Open calls f(ctx, link)
func (f OpenerFunc) Open(ctx context.Context, link string) error {
	return f(ctx, link)
}

// WhatsApp builds wa.me links for a restaurant phone number
type WhatsApp struct {
	baseURL string
	phone   string
	opener  Opener
}

// NewWhatsApp creates a dispatcher. baseURL is usually https://wa.me
func NewWhatsApp(baseURL, phone string, opener Opener) *WhatsApp {
	return &WhatsApp{
		baseURL: strings.TrimRight(baseURL, "/"),
		phone:   phone,
		opener:  opener,
	}
}

// Link returns <base>/<phone>?text=<encoded message>
func (w *WhatsApp) Link(message string) string {
	return fmt.Sprintf("%s/%s?text=%s", w.baseURL, url.PathEscape(w.phone), encodeComponent(message))
}

// Dispatch builds the link for message and hands it to the opener
func (w *WhatsApp) Dispatch(ctx context.Context, message string) (string, error) {
	link := w.Link(message)
	if w.opener == nil {
		return link, nil
	}

	if err := w.opener.Open(ctx, link); err != nil {
		return "", fmt.Errorf("failed to open link: %w", err)
	}
	return link, nil
}

// componentUnescapes restores the marks encodeURIComponent leaves alone.
// Spaces become %20 so messaging apps don't render literal plus signs.
var componentUnescapes = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent percent-encodes s for use as a query value, matching
// encodeURIComponent byte for byte.
func encodeComponent(s string) string {
	return componentUnescapes.Replace(url.QueryEscape(s))
}

// LogOpener records the link; the client is expected to open it
func LogOpener(logger *slog.Logger) Opener {
	return OpenerFunc(func(ctx context.Context, link string) error {
		logger.InfoContext(ctx, "order link ready", "link_length", len(link))
		return nil
	})
}

// WriterOpener prints the link on its own line
func WriterOpener(w io.Writer) Opener {
	return OpenerFunc(func(ctx context.Context, link string) error {
		_, err := fmt.Fprintln(w, link)
		return err
	})
}
