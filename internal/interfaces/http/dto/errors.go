package dto

import "net/http"

// General error codes
const (
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
)

// domainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Codes missing from the map fall back to 422: a domain error the
// handler layer does not know is still a rejected business operation,
// never a server fault.
var domainErrorHTTPStatus = map[string]int{
	"NOT_FOUND":      http.StatusNotFound,
	"ALREADY_EXISTS": http.StatusConflict,
	"UNAUTHORIZED":   http.StatusUnauthorized,
	"FORBIDDEN":      http.StatusForbidden,

	"INVALID_INPUT":            http.StatusBadRequest,
	"INVALID_PO_NO":            http.StatusBadRequest,
	"INVALID_ITEM_CODE":        http.StatusBadRequest,
	"INVALID_ITEM_NAME":        http.StatusBadRequest,
	"INVALID_BATCH_NO":         http.StatusBadRequest,
	"INVALID_ISSUE_NO":         http.StatusBadRequest,
	"INVALID_REQ_NO":           http.StatusBadRequest,
	"INVALID_INDENT_NO":        http.StatusBadRequest,
	"INVALID_QUANTITY":         http.StatusBadRequest,
	"INVALID_LINES":            http.StatusBadRequest,
	"INVALID_STATUS":           http.StatusBadRequest,
	"INVALID_TRANSACTION_TYPE": http.StatusBadRequest,
	"INVALID_EMAIL":            http.StatusBadRequest,
	"INVALID_PASSWORD":         http.StatusBadRequest,

	"EMAIL_TAKEN":         http.StatusConflict,
	"DUPLICATE_SEQUENCE":  http.StatusConflict,
	"DUPLICATE_ITEM_CODE": http.StatusConflict,

	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"ACCOUNT_LOCKED":      http.StatusForbidden,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,

	"UNKNOWN_ITEM_CODE":    http.StatusUnprocessableEntity,
	"BATCH_FULLY_CONSUMED": http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":   http.StatusUnprocessableEntity,
	"INVALID_STATE":        http.StatusUnprocessableEntity,

	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"INTERNAL_ERROR":       http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
