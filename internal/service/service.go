package service

import (
	"context"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/repository"

	"github.com/google/uuid"
)

// ProductService defines operations for catalogue management.
type ProductService interface {
	// GetAll retrieves products matching the filter, with pagination.
	GetAll(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]model.Product, error)

	// GetByID retrieves a single product by ID.
	GetByID(ctx context.Context, id string) (*model.Product, error)

	// GetByIDs retrieves multiple products by their IDs.
	GetByIDs(ctx context.Context, ids []string) ([]model.Product, error)

	// Create adds a new product to the catalogue.
	Create(ctx context.Context, product *model.Product) (*model.Product, error)

	// Update replaces an existing product's fields.
	Update(ctx context.Context, product *model.Product) (*model.Product, error)

	// Delete removes a product from the catalogue.
	Delete(ctx context.Context, id string) error
}

// OrderService is the order-creation collaborator: it turns a submitted cart
// into a durable order and answers order queries.
type OrderService interface {
	// Checkout persists a checkout submission as a new order. Unit prices
	// and the total are taken from the catalogue at this moment, not from
	// the request.
	Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.OrderResponse, error)

	// GetByID retrieves an order by its ID with all items and product details.
	GetByID(ctx context.Context, id uuid.UUID) (*model.OrderResponse, error)

	// List retrieves orders, newest first, optionally filtered by status.
	List(ctx context.Context, status model.OrderStatus, limit, offset int) ([]model.Order, error)

	// UpdateStatus moves an order to a new status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.OrderStatus) error
}
