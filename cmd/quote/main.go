package main

import (
	"context"
	"fmt"
	"os"

	"github.com/restaurante-delicia/storefront/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd(cfg).ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
