package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"

	"github.com/rs/zerolog"
)

// Loader loads a menu of products from a named source: a local file path or
// an object key, depending on the implementation.
type Loader interface {
	Load(ctx context.Context, path string) ([]model.Product, error)
}

// fileLoader implements Loader for reading menu files from the local file
// system. Files hold a JSON array of products and may be gzip-compressed
// (".gz" suffix) — the scraped menu dumps are stored compressed.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based menu loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "menu-loader").Logger(),
	}
}

// Load reads a menu file and returns its products.
func (l *fileLoader) Load(ctx context.Context, filePath string) ([]model.Product, error) {
	l.logger.Info().Str("file", filePath).Msg("loading menu file")

	file, err := os.Open(filePath)
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to open menu file")
		return nil, fmt.Errorf("failed to open menu file %s: %w", filePath, err)
	}
	defer file.Close()

	products, err := decodeMenu(ctx, file, strings.HasSuffix(filePath, ".gz"))
	if err != nil {
		l.logger.Error().Err(err).Str("file", filePath).Msg("failed to decode menu file")
		return nil, fmt.Errorf("failed to decode menu file %s: %w", filePath, err)
	}

	l.logger.Info().
		Str("file", filePath).
		Int("product_count", len(products)).
		Msg("menu file loaded")

	return products, nil
}

// decodeMenu decodes a JSON product array from r, unwrapping gzip first when
// compressed is set, and validates every entry.
func decodeMenu(ctx context.Context, r io.Reader, compressed bool) ([]model.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if compressed {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader: %w", err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	var products []model.Product
	if err := json.NewDecoder(r).Decode(&products); err != nil {
		return nil, fmt.Errorf("failed to decode product list: %w", err)
	}

	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: missing id", i)
		}
		if p.Name == "" {
			return nil, fmt.Errorf("product %s: missing name", p.ID)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("product %s: negative price %d", p.ID, p.Price)
		}
		if !model.ValidCategory(p.Category) {
			return nil, fmt.Errorf("product %s: unknown category %q", p.ID, p.Category)
		}
	}

	return products, nil
}
