package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/restaurante-delicia/storefront/internal/cart"
	"github.com/restaurante-delicia/storefront/internal/config"
	"github.com/restaurante-delicia/storefront/internal/dispatch"
	"github.com/restaurante-delicia/storefront/internal/order"
	"github.com/restaurante-delicia/storefront/internal/repository"
)

type quoteOptions struct {
	address     string
	deliveryFee int64
	phone       string
	baseURL     string
	locale      string
	catalogURLs []string
	linkOnly    bool
}

func newRootCmd(cfg *config.Config) *cobra.Command {
	opts := quoteOptions{
		deliveryFee: cfg.Store.DeliveryFee,
		phone:       cfg.Store.WhatsAppPhone,
		baseURL:     cfg.Store.WhatsAppURL,
		locale:      cfg.Store.Locale,
		catalogURLs: cfg.Catalog.URLs,
	}

	cmd := &cobra.Command{
		Use:   "quote PRODUCT_ID...",
		Short: "Compose an order message for the given product ids",
		Long: "Adds one unit per product id argument (repeat an id to add more), " +
			"prints the order message and the WhatsApp link that sends it.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err != nil {
					return fmt.Errorf("invalid product id %q", arg)
				}
				ids = append(ids, id)
			}
			return runQuote(cmd.Context(), cmd.OutOrStdout(), opts, ids)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.address, "address", "a", "", "delivery address appended to the message")
	flags.Int64Var(&opts.deliveryFee, "delivery-fee", opts.deliveryFee, "delivery fee in whole currency units")
	flags.StringVar(&opts.phone, "phone", opts.phone, "restaurant WhatsApp number")
	flags.StringVar(&opts.baseURL, "base-url", opts.baseURL, "messaging service base URL")
	flags.StringVar(&opts.locale, "locale", opts.locale, "locale used to group amounts")
	flags.StringSliceVar(&opts.catalogURLs, "catalog-url", opts.catalogURLs, "remote catalog document (repeatable)")
	flags.BoolVar(&opts.linkOnly, "link-only", false, "print only the link")

	return cmd
}

func runQuote(ctx context.Context, out io.Writer, opts quoteOptions, ids []int64) error {
	locale, err := order.ParseLocale(opts.locale)
	if err != nil {
		return err
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	catalog, err := repository.LoadCatalog(fetchCtx, opts.catalogURLs, &http.Client{Timeout: 30 * time.Second})
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	store := cart.NewStore()
	for _, id := range ids {
		item, err := catalog.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				return fmt.Errorf("product %d is not on the menu", id)
			}
			return err
		}
		store.AddItem(*item)
	}

	msg, err := order.NewFormatter(locale).Format(store.Snapshot(), opts.deliveryFee, opts.address)
	if err != nil {
		return err
	}

	if !opts.linkOnly {
		fmt.Fprintln(out, msg)
		fmt.Fprintln(out)
	}

	_, err = dispatch.NewWhatsApp(opts.baseURL, opts.phone, dispatch.WriterOpener(out)).Dispatch(ctx, msg)
	return err
}
