// Command seed populates the products table from a menu file. It tries the
// scraped menu dump on S3 first, then the local file system, and falls back
// to the built-in static menu when neither is reachable.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/catalog"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/config"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/database"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/repository"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("seeding product catalogue")

	ctx := context.Background()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	fileLoader := catalog.NewFileLoader(logger)

	var s3Loader catalog.Loader
	if cfg.Catalog.S3Enabled {
		s3Loader, err = catalog.NewS3Loader(ctx, cfg.Catalog.S3Bucket, cfg.Catalog.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system")
			s3Loader = nil
		}
	}

	loader := catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.Catalog.S3Prefix, cfg.Catalog.S3Enabled, logger)

	products, err := loader.Load(ctx, cfg.Catalog.MenuFile)
	if err != nil {
		return fmt.Errorf("failed to load menu: %w", err)
	}

	productRepo := repository.NewProductRepository(pool, logger)
	if err := productRepo.Upsert(ctx, products); err != nil {
		return fmt.Errorf("failed to seed products: %w", err)
	}

	logger.Info().Int("product_count", len(products)).Msg("product catalogue seeded")

	return nil
}
