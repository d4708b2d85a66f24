package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON        = "INVALID_JSON"
	ErrCodeMissingField       = "MISSING_FIELD"
	ErrCodeProductNotFound    = "PRODUCT_NOT_FOUND"
	ErrCodeProductUnavailable = "PRODUCT_UNAVAILABLE"
	ErrCodeInvalidQuantity    = "INVALID_QUANTITY"
	ErrCodeInvalidCategory    = "INVALID_CATEGORY"
	ErrCodeInvalidPrice       = "INVALID_PRICE"
	ErrCodeEmptyOrder         = "EMPTY_ORDER"
	ErrCodeOrderNotFound      = "ORDER_NOT_FOUND"
	ErrCodeInvalidStatus      = "INVALID_STATUS"
	ErrCodeUnauthorised       = "UNAUTHORIZED"
	ErrCodeForbidden          = "FORBIDDEN"
	ErrCodeInternalError      = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound    = NewDomainError(ErrCodeProductNotFound, "One or more products not found")
	ErrProductUnavailable = NewDomainError(ErrCodeProductUnavailable, "One or more products are currently unavailable")
	ErrInvalidQuantity    = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInvalidCategory    = NewDomainError(ErrCodeInvalidCategory, "Unknown product category")
	ErrInvalidPrice       = NewDomainError(ErrCodeInvalidPrice, "Price must not be negative")
	ErrEmptyOrder         = NewDomainError(ErrCodeEmptyOrder, "Order must contain at least one item")
	ErrOrderNotFound      = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidStatus      = NewDomainError(ErrCodeInvalidStatus, "Unknown order status")
)
