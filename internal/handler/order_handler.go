package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// OrderHandler handles order-related HTTP requests.
type OrderHandler struct {
	service service.OrderService
	logger  zerolog.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(service service.OrderService, logger zerolog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger.With().Str("handler", "order").Logger(),
	}
}

// Create handles POST /api/orders requests carrying a full checkout payload.
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	order, err := h.service.Checkout(r.Context(), &req)
	if err != nil {
		status, message := orderErrorStatus(err)
		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, order)
}

// GetByID handles GET /api/orders/{id} requests.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	orderIDStr := pathSuffix(r.URL.Path, "/api/orders/")
	if orderIDStr == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	order, err := h.service.GetByID(r.Context(), orderID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve order", h.logger)
		return
	}

	if order == nil {
		writeError(w, http.StatusNotFound, "order not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// List handles GET /api/orders requests (admin), optionally filtered by
// status.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query()

	limit := 20
	if limitStr := query.Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0
	if offsetStr := query.Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
	}

	status := model.OrderStatus(query.Get("status"))

	orders, err := h.service.List(r.Context(), status, limit, offset)
	if err != nil {
		if err == model.ErrInvalidStatus {
			writeError(w, http.StatusBadRequest, "unknown order status", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to list orders", h.logger)
		return
	}

	if orders == nil {
		orders = []model.Order{}
	}

	writeJSON(w, http.StatusOK, orders)
}

// UpdateStatus handles PATCH /api/orders/{id}/status requests (admin).
func (h *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPatch {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	orderIDStr := strings.TrimSuffix(pathSuffix(r.URL.Path, "/api/orders/"), "/status")
	if orderIDStr == "" {
		writeError(w, http.StatusBadRequest, "order ID is required", h.logger)
		return
	}

	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid order ID format", h.logger)
		return
	}

	var req model.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), orderID, req.Status); err != nil {
		switch err {
		case model.ErrInvalidStatus:
			writeError(w, http.StatusBadRequest, "unknown order status", h.logger)
		case model.ErrOrderNotFound:
			writeError(w, http.StatusNotFound, "order not found", h.logger)
		default:
			writeError(w, http.StatusInternalServerError, "failed to update order status", h.logger)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// orderErrorStatus maps checkout errors to HTTP status codes and client
// messages.
func orderErrorStatus(err error) (int, string) {
	switch err {
	case model.ErrProductNotFound:
		return http.StatusBadRequest, "one or more products not found"
	case model.ErrProductUnavailable:
		return http.StatusBadRequest, "one or more products are currently unavailable"
	case model.ErrInvalidQuantity:
		return http.StatusBadRequest, "invalid quantity"
	case model.ErrEmptyOrder:
		return http.StatusBadRequest, "order must contain at least one item"
	}

	msg := err.Error()
	if strings.Contains(msg, "required") ||
		strings.Contains(msg, "unsupported") ||
		strings.Contains(msg, "nil") {
		return http.StatusBadRequest, msg
	}

	return http.StatusInternalServerError, "failed to create order"
}
