package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusPreparing  OrderStatus = "PREPARING"
	StatusDelivering OrderStatus = "DELIVERING"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusPreparing,
		StatusDelivering, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Payment methods accepted at checkout.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
)

// Order represents a customer order.
type Order struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	CustomerName  string      `json:"customerName,omitempty" db:"customer_name"`
	Status        OrderStatus `json:"status" db:"status"`
	Total         int         `json:"total" db:"total"`
	Address       string      `json:"address" db:"address"`
	Phone         string      `json:"phone" db:"phone"`
	DeliveryTime  string      `json:"deliveryTime,omitempty" db:"delivery_time"`
	PaymentMethod string      `json:"paymentMethod" db:"payment_method"`
	Notes         string      `json:"notes,omitempty" db:"notes"`
	CreatedAt     time.Time   `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time   `json:"updatedAt" db:"updated_at"`
}

// OrderItem represents a line item in an order. Price is the unit price in
// drams captured when the order was created; it never tracks later catalogue
// price changes.
type OrderItem struct {
	ID        uuid.UUID `json:"-" db:"id"`
	OrderID   uuid.UUID `json:"-" db:"order_id"`
	ProductID string    `json:"productId" db:"product_id"`
	Quantity  int       `json:"quantity" db:"quantity"`
	Price     int       `json:"price" db:"price"`
}

// CheckoutRequest is the payload submitted when a cart is checked out.
type CheckoutRequest struct {
	Items         []CheckoutItem `json:"items"`
	Total         int            `json:"total"`
	CustomerName  string         `json:"customerName,omitempty"`
	Address       string         `json:"address"`
	Phone         string         `json:"phone"`
	PaymentMethod string         `json:"paymentMethod"`
	Notes         string         `json:"notes,omitempty"`
	DeliveryTime  string         `json:"deliveryTime,omitempty"`
}

// CheckoutItem is a single cart line in a checkout request. Price is
// advisory; the server recomputes totals from the catalogue.
type CheckoutItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Price     int    `json:"price"`
}

// CheckoutDetails carries the delivery and payment fields of a checkout
// submitted against a session cart, where the items come from the cart
// itself rather than the request body.
type CheckoutDetails struct {
	CustomerName  string `json:"customerName,omitempty"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
	PaymentMethod string `json:"paymentMethod"`
	Notes         string `json:"notes,omitempty"`
	DeliveryTime  string `json:"deliveryTime,omitempty"`
}

// OrderResponse represents the response payload for an order.
type OrderResponse struct {
	ID            uuid.UUID   `json:"id"`
	Status        OrderStatus `json:"status"`
	Total         int         `json:"total"`
	Address       string      `json:"address"`
	Phone         string      `json:"phone"`
	DeliveryTime  string      `json:"deliveryTime,omitempty"`
	PaymentMethod string      `json:"paymentMethod"`
	Notes         string      `json:"notes,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	Items         []OrderItem `json:"items"`
	Products      []Product   `json:"products,omitempty"`
}

// UpdateStatusRequest is the payload for an admin status change.
type UpdateStatusRequest struct {
	Status OrderStatus `json:"status"`
}
