package repository

import (
	"context"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductFilter narrows product listings.
type ProductFilter struct {
	// Category restricts results to one category when non-empty.
	Category string

	// AvailableOnly hides products flagged unavailable.
	AvailableOnly bool
}

// ProductRepository defines the interface for product data access operations.
type ProductRepository interface {
	// GetAll retrieves products matching the filter, with pagination support.
	GetAll(ctx context.Context, filter ProductFilter, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by its ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Create inserts a new product.
	Create(ctx context.Context, product *model.Product) error

	// Update replaces an existing product's fields. Returns
	// model.ErrProductNotFound if the product does not exist.
	Update(ctx context.Context, product *model.Product) error

	// Delete removes a product. Returns model.ErrProductNotFound if the
	// product does not exist.
	Delete(ctx context.Context, id string) error

	// Upsert inserts or replaces products by id. Used by menu seeding.
	Upsert(ctx context.Context, products []model.Product) error
}

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreateOrder inserts a new order within the provided transaction.
	CreateOrder(ctx context.Context, tx pgx.Tx, order *model.Order) error

	// CreateOrderItems inserts multiple order items within the provided transaction.
	CreateOrderItems(ctx context.Context, tx pgx.Tx, items []model.OrderItem) error

	// GetByID retrieves an order by its ID along with its items.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, []model.OrderItem, error)

	// List retrieves orders, newest first, optionally filtered by status.
	List(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, error)

	// UpdateStatus changes an order's status. Returns model.ErrOrderNotFound
	// if the order does not exist.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
}
