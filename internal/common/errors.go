package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Stable machine-readable error codes surfaced to clients. Codes are part of
// the API contract; messages are not.
const (
	CodeTokenMissing       = "TOKEN_MISSING"
	CodeTokenInvalid       = "TOKEN_INVALID"
	CodeUserNotFound       = "USER_NOT_FOUND"
	CodeTenantNotFound     = "TENANT_NOT_FOUND"
	CodeTenantMismatch     = "TENANT_MISMATCH"
	CodeInsufficientRole   = "INSUFFICIENT_ROLE"
	CodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	CodeValidationFailed   = "VALIDATION_ERROR"
	CodeDuplicateRecord    = "DUPLICATE_RECORD"
	CodeRelationConstraint = "RELATION_CONSTRAINT"
	CodeLimitExceeded      = "LIMIT_EXCEEDED"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeNotFound           = "NOT_FOUND"
	CodeServerError        = "SERVER_ERROR"
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Message string            `json:"message"`
		Details map[string]string `json:"details,omitempty"`
	} `json:"error"`
}

// CreateErrorResponse creates a standardized error response.
func CreateErrorResponse(code string, message string, details map[string]string) *ErrorResponse {
	var resp ErrorResponse
	resp.Error.Code = code
	resp.Error.Message = message
	resp.Error.Details = details
	return &resp
}

// SendError writes an error envelope with the given HTTP status and code.
func SendError(c echo.Context, status int, code, message string) error {
	return c.JSON(status, CreateErrorResponse(code, message, nil))
}

// SendValidationError sends a field-level validation error response.
func SendValidationError(c echo.Context, field, message string) error {
	details := map[string]string{field: message}
	return c.JSON(http.StatusBadRequest, CreateErrorResponse(CodeValidationFailed, "Validation failed", details))
}

// SendNotFoundError sends a not found error response.
func SendNotFoundError(c echo.Context, resource string) error {
	return c.JSON(http.StatusNotFound, CreateErrorResponse(CodeNotFound, resource+" not found", nil))
}

// SendServerError sends a generic 5xx without leaking internals.
func SendServerError(c echo.Context, message string) error {
	return c.JSON(http.StatusInternalServerError, CreateErrorResponse(CodeServerError, message, nil))
}
