package catalog

import (
	"compress/gzip"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() []model.Product {
	return []model.Product{
		{
			ID:          "pideh-classic",
			Name:        "Classic Pideh",
			Price:       1950,
			Category:    model.CategoryPideh,
			Ingredients: []string{"dough", "beef"},
			IsAvailable: true,
		},
		{
			ID:          "drink-cola",
			Name:        "Cola 0.5L",
			Price:       500,
			Category:    model.CategoryDrink,
			Ingredients: []string{},
			IsAvailable: true,
		},
	}
}

// createMenuFile writes products as a JSON menu file, gzipped when the
// filename ends in ".gz".
func createMenuFile(t *testing.T, filename string, products []model.Product) string {
	t.Helper()

	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, filename)

	data, err := json.Marshal(products)
	require.NoError(t, err)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	if filepath.Ext(filename) == ".gz" {
		gzipWriter := gzip.NewWriter(file)
		_, err = gzipWriter.Write(data)
		require.NoError(t, err)
		require.NoError(t, gzipWriter.Close())
	} else {
		_, err = file.Write(data)
		require.NoError(t, err)
	}

	return filePath
}

func TestFileLoader_Load_PlainJSON(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createMenuFile(t, "menu.json", testMenu())

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "pideh-classic", products[0].ID)
	assert.Equal(t, 1950, products[0].Price)
	assert.Equal(t, "drink-cola", products[1].ID)
}

func TestFileLoader_Load_Gzipped(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	filePath := createMenuFile(t, "menu.json.gz", testMenu())

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestFileLoader_Load_FileNotFound(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	_, err := loader.Load(context.Background(), "/nonexistent/menu.json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open menu file")
}

func TestFileLoader_Load_InvalidJSON(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	tmpDir := t.TempDir()
	filePath := filepath.Join(tmpDir, "menu.json")
	require.NoError(t, os.WriteFile(filePath, []byte("not json"), 0644))

	_, err := loader.Load(context.Background(), filePath)

	require.Error(t, err)
}

func TestFileLoader_Load_RejectsInvalidProducts(t *testing.T) {
	tests := []struct {
		name    string
		product model.Product
	}{
		{
			name:    "missing id",
			product: model.Product{Name: "X", Price: 100, Category: model.CategoryPideh},
		},
		{
			name:    "missing name",
			product: model.Product{ID: "x", Price: 100, Category: model.CategoryPideh},
		},
		{
			name:    "negative price",
			product: model.Product{ID: "x", Name: "X", Price: -1, Category: model.CategoryPideh},
		},
		{
			name:    "unknown category",
			product: model.Product{ID: "x", Name: "X", Price: 100, Category: "sushi"},
		},
	}

	loader := NewFileLoader(zerolog.Nop())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := createMenuFile(t, "menu.json", []model.Product{tt.product})

			_, err := loader.Load(context.Background(), filePath)
			require.Error(t, err)
		})
	}
}

func TestFileLoader_Load_CancelledContext(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createMenuFile(t, "menu.json", testMenu())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, filePath)
	require.Error(t, err)
}

func TestFallbackLoader_FileThenStatic(t *testing.T) {
	fileLoader := NewFileLoader(zerolog.Nop())
	loader := NewFallbackLoader(nil, fileLoader, "", false, zerolog.Nop())

	// Missing file falls through to the static menu
	products, err := loader.Load(context.Background(), "/nonexistent/menu.json")

	require.NoError(t, err)
	assert.Equal(t, StaticMenu(), products)
}

func TestFallbackLoader_UsesFileWhenPresent(t *testing.T) {
	fileLoader := NewFileLoader(zerolog.Nop())
	loader := NewFallbackLoader(nil, fileLoader, "", false, zerolog.Nop())

	filePath := createMenuFile(t, "menu.json", testMenu())

	products, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestStaticMenu_Valid(t *testing.T) {
	products := StaticMenu()

	require.NotEmpty(t, products)

	seen := map[string]bool{}
	for _, p := range products {
		assert.NotEmpty(t, p.ID)
		assert.NotEmpty(t, p.Name)
		assert.GreaterOrEqual(t, p.Price, 0)
		assert.True(t, model.ValidCategory(p.Category), "category %q", p.Category)
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}
}
