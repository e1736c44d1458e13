package shared

import "errors"

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
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
	ErrNotFound          = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput      = NewDomainError("VALIDATION_ERROR", "Invalid input provided")
	ErrInvalidState      = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInvalidPrice      = NewDomainError("INVALID_PRICE", "No usable price could be resolved")
	ErrDuplicateNumber   = NewDomainError("DUPLICATE_NUMBER", "Document number already exists")
	ErrDependencyFailure = NewDomainError("DEPENDENCY_FAILURE", "Downstream dependency failed")
)

// CodeOf returns the code of the nearest DomainError in err's chain,
// or an empty string when err carries no domain error.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// IsCode reports whether err carries the given domain error code
func IsCode(err error, code string) bool {
	return CodeOf(err) == code
}
