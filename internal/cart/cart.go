package cart

import (
	"sync"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"
)

// LineItem is a single cart line: a snapshot of the product as it was when
// added, plus a quantity. Quantity is always at least 1 for any line present
// in the cart.
type LineItem struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
}

// Cart holds the line items of one shopping session. Lines are ordered by
// insertion and unique by product id. The cart performs no I/O and none of
// its operations fail; out-of-range quantities are clamped or treated as
// removals rather than rejected.
//
// A cart has one logical writer (the session's own requests), but those
// requests may arrive on different goroutines, so mutations are guarded by a
// mutex.
type Cart struct {
	mu        sync.Mutex
	items     []LineItem
	listeners []func()
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// Add puts quantity units of product into the cart. If a line for the
// product already exists its quantity is incremented and line order is
// preserved; otherwise a new line is appended. A quantity below 1 is treated
// as 1.
func (c *Cart) Add(product model.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	found := false
	for i := range c.items {
		if c.items[i].Product.ID == product.ID {
			c.items[i].Quantity += quantity
			found = true
			break
		}
	}
	if !found {
		c.items = append(c.items, LineItem{Product: product, Quantity: quantity})
	}
	c.mu.Unlock()

	c.notify()
}

// Remove deletes the line for productID. Removing an absent product is a
// no-op; the order of remaining lines is preserved.
func (c *Cart) Remove(productID string) {
	c.mu.Lock()
	changed := c.removeLocked(productID)
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

// SetQuantity replaces the quantity of the line for productID. A quantity of
// zero or below removes the line. Setting the quantity of an absent product
// is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	c.mu.Lock()
	changed := false
	if quantity <= 0 {
		changed = c.removeLocked(productID)
	} else {
		for i := range c.items {
			if c.items[i].Product.ID == productID {
				c.items[i].Quantity = quantity
				changed = true
				break
			}
		}
	}
	c.mu.Unlock()

	if changed {
		c.notify()
	}
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.mu.Lock()
	c.items = nil
	c.mu.Unlock()

	c.notify()
}

// Items returns a copy of the cart's lines in insertion order.
func (c *Cart) Items() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]LineItem, len(c.items))
	copy(items, c.items)
	return items
}

// TotalPrice returns the cart total in drams: the sum of unit price times
// quantity over all lines. Zero for an empty cart.
func (c *Cart) TotalPrice() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

// TotalItems returns the sum of quantities over all lines. Zero for an
// empty cart.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// Len returns the number of distinct lines in the cart.
func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Subscribe registers fn to be called after every state change. Listeners
// run synchronously on the mutating goroutine, after the mutation is
// applied and the lock released.
func (c *Cart) Subscribe(fn func()) {
	c.mu.Lock()
	c.listeners = append(c.listeners, fn)
	c.mu.Unlock()
}

// CheckoutItems serializes the cart's lines into the shape consumed by the
// order-creation service.
func (c *Cart) CheckoutItems() []model.CheckoutItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]model.CheckoutItem, len(c.items))
	for i, line := range c.items {
		items[i] = model.CheckoutItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		}
	}
	return items
}

// removeLocked deletes the line for productID and reports whether a line was
// removed. Caller holds c.mu.
func (c *Cart) removeLocked(productID string) bool {
	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

func (c *Cart) notify() {
	c.mu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
