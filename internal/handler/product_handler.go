package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/model"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/repository"
	"github.com/SipanBabajanyan/pideh-armenia-sub000/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// GetAll handles GET /api/products requests with category filtering and
// pagination. Unavailable products are hidden unless includeUnavailable=true.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	query := r.URL.Query()

	limit := 50 // default
	if limitStr := query.Get("limit"); limitStr != "" {
		var err error
		limit, err = strconv.Atoi(limitStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return
		}
	}

	offset := 0 // default
	if offsetStr := query.Get("offset"); offsetStr != "" {
		var err error
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid offset parameter", h.logger)
			return
		}
	}

	filter := repository.ProductFilter{
		Category:      query.Get("category"),
		AvailableOnly: query.Get("includeUnavailable") != "true",
	}

	products, err := h.service.GetAll(r.Context(), filter, limit, offset)
	if err != nil {
		if err == model.ErrInvalidCategory {
			writeError(w, http.StatusBadRequest, "unknown category", h.logger)
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), productID)
	if err != nil {
		writeError(w, http.StatusNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Create handles POST /api/products requests (admin).
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	created, err := h.service.Create(r.Context(), &product)
	if err != nil {
		status := productErrorStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "failed to create product"
		}
		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

// Update handles PUT /api/products/{id} requests (admin).
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	var product model.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}
	product.ID = productID

	updated, err := h.service.Update(r.Context(), &product)
	if err != nil {
		status := productErrorStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "failed to update product"
		}
		writeError(w, status, message, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

// Delete handles DELETE /api/products/{id} requests (admin).
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	productID := pathSuffix(r.URL.Path, "/api/products/")
	if productID == "" {
		writeError(w, http.StatusBadRequest, "product ID is required", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), productID); err != nil {
		status := productErrorStatus(err)
		message := err.Error()
		if status == http.StatusInternalServerError {
			message = "failed to delete product"
		}
		writeError(w, status, message, h.logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// productErrorStatus maps product service errors to HTTP status codes.
func productErrorStatus(err error) int {
	switch err {
	case model.ErrProductNotFound:
		return http.StatusNotFound
	case model.ErrInvalidCategory, model.ErrInvalidPrice:
		return http.StatusBadRequest
	}
	if strings.Contains(err.Error(), "required") || strings.Contains(err.Error(), "nil") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// pathSuffix extracts the path segment after prefix, or "" if the path is
// not longer than the prefix.
func pathSuffix(path, prefix string) string {
	if len(path) <= len(prefix) {
		return ""
	}
	return path[len(prefix):]
}
