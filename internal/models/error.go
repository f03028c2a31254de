package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Order-specific errors
	ErrOrderNotFound    = "ORDER_NOT_FOUND"
	ErrOrderInvalidData = "ORDER_INVALID_DATA"
	ErrOrderWriteFailed = "ORDER_WRITE_FAILED"

	// Catalog-specific errors
	ErrCatalogIntegrity   = "CATALOG_INTEGRITY_VIOLATION"
	ErrCatalogInvalidData = "CATALOG_INVALID_DATA"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
