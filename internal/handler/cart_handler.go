package handler

import (
	"encoding/json"
	"net/http"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/cart"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/middleware"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles the session cart: add/remove/update/clear plus
// checkout. Each session owns exactly one cart, resolved through the
// session manager from the X-Session-ID header.
type CartHandler struct {
	carts    *cart.Manager
	products service.ProductService
	orders   service.OrderService
	logger   zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(
	carts *cart.Manager,
	products service.ProductService,
	orders service.OrderService,
	logger zerolog.Logger,
) *CartHandler {
	return &CartHandler{
		carts:    carts,
		products: products,
		orders:   orders,
		logger:   logger.With().Str("handler", "cart").Logger(),
	}
}

// cartResponse is the JSON shape of the session cart.
type cartResponse struct {
	Items      []cart.LineItem `json:"items"`
	TotalItems int             `json:"totalItems"`
	TotalPrice int             `json:"totalPrice"`
}

// addItemRequest is the payload for adding a product to the cart.
type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// setQuantityRequest is the payload for setting a line's quantity.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// sessionCart resolves the request's session cart, creating one when the
// session is new.
func (h *CartHandler) sessionCart(r *http.Request) *cart.Cart {
	_, c := h.carts.GetOrCreate(middleware.SessionID(r.Context()))
	return c
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, snapshotCart(h.sessionCart(r)))
}

// AddItem handles POST /api/cart/items requests. The product is looked up in
// the catalogue and a value snapshot of it is stored in the cart. A missing
// or non-positive quantity defaults to 1.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.products.GetByID(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	if !product.IsAvailable {
		writeError(w, http.StatusBadRequest, "product is currently unavailable", h.logger)
		return
	}

	c := h.sessionCart(r)
	c.Add(*product, req.Quantity)

	writeJSON(w, http.StatusOK, snapshotCart(c))
}

// SetQuantity handles PUT /api/cart/items/{productId} requests. A quantity
// of zero or below removes the line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/cart/items/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var req setQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c := h.sessionCart(r)
	c.SetQuantity(productID, req.Quantity)

	writeJSON(w, http.StatusOK, snapshotCart(c))
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests. Removing
// an absent product is a no-op, not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/cart/items/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	c := h.sessionCart(r)
	c.Remove(productID)

	writeJSON(w, http.StatusOK, snapshotCart(c))
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	c := h.sessionCart(r)
	c.Clear()

	writeJSON(w, http.StatusOK, snapshotCart(c))
}

// Checkout handles POST /api/checkout requests: the session cart is
// serialized into a checkout submission together with the delivery details
// from the body. The cart is cleared only after the order service confirms
// success, so a failed submission can be retried with the same lines.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var details model.CheckoutDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	c := h.sessionCart(r)

	req := &model.CheckoutRequest{
		Items:         c.CheckoutItems(),
		Total:         c.TotalPrice(),
		CustomerName:  details.CustomerName,
		Address:       details.Address,
		Phone:         details.Phone,
		PaymentMethod: details.PaymentMethod,
		Notes:         details.Notes,
		DeliveryTime:  details.DeliveryTime,
	}

	order, err := h.orders.Checkout(r.Context(), req)
	if err != nil {
		status, message := orderErrorStatus(err)
		writeError(w, status, message, h.logger)
		return
	}

	c.Clear()

	writeJSON(w, http.StatusCreated, order)
}

func snapshotCart(c *cart.Cart) cartResponse {
	return cartResponse{
		Items:      c.Items(),
		TotalItems: c.TotalItems(),
		TotalPrice: c.TotalPrice(),
	}
}
