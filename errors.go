package claimflow

import (
	"errors"
	"fmt"
	"time"
)

// Error codes
const (
	ErrCodeClaimAlreadyExists   = "CLAIM_ALREADY_EXISTS"
	ErrCodeClaimAlreadyApproved = "CLAIM_ALREADY_APPROVED"
	ErrCodeUnauthorized         = "UNAUTHORIZED"
	ErrCodeInvalidIdentity      = "INVALID_IDENTITY"
	ErrCodeStorageFailure       = "STORAGE_FAILURE"
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeInsufficientFunds    = "INSUFFICIENT_FUNDS"
	ErrCodeUnsupported          = "UNSUPPORTED"
)

// ErrClaimNotFound is returned by a ClaimStore when no claim has been saved
var ErrClaimNotFound = errors.New("claim not found")

// Sentinels for errors.Is. They match any *ClaimError carrying the same code.
var (
	ErrClaimAlreadyExists   = &ClaimError{Code: ErrCodeClaimAlreadyExists, Message: "Claim already exists"}
	ErrClaimAlreadyApproved = &ClaimError{Code: ErrCodeClaimAlreadyApproved, Message: "Claim already approved"}
	ErrUnauthorized         = &ClaimError{Code: ErrCodeUnauthorized, Message: "Unauthorized"}
	ErrInvalidIdentity      = &ClaimError{Code: ErrCodeInvalidIdentity, Message: "Invalid identity"}
	ErrStorageFailure       = &ClaimError{Code: ErrCodeStorageFailure, Message: "Storage failure"}
	ErrInvalidInput         = &ClaimError{Code: ErrCodeInvalidInput, Message: "Invalid input"}
	ErrInsufficientFunds    = &ClaimError{Code: ErrCodeInsufficientFunds, Message: "Insufficient funds"}
	ErrUnsupported          = &ClaimError{Code: ErrCodeUnsupported, Message: "Unsupported operation"}
)

// ClaimError represents a failed claim command
type ClaimError struct {
	Message   string                 `json:"message"`
	Code      string                 `json:"code"`
	Method    string                 `json:"method,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
	Details   map[string]interface{} `json:"details,omitempty"`

	cause error
}

// Error implements the error interface
func (e *ClaimError) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Method != "" {
		msg = fmt.Sprintf("%s (method: %s)", msg, e.Method)
	}
	if e.cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.cause)
	}
	return msg
}

// Unwrap returns the underlying cause, if any
func (e *ClaimError) Unwrap() error {
	return e.cause
}

// Is reports whether target is a *ClaimError with the same code
func (e *ClaimError) Is(target error) bool {
	var other *ClaimError
	if !errors.As(target, &other) {
		return false
	}
	return other.Code == e.Code
}

// NewClaimError creates a new claim error
func NewClaimError(code, message string) *ClaimError {
	return &ClaimError{
		Message:   message,
		Code:      code,
		Timestamp: time.Now(),
	}
}

// NewClaimErrorWithMethod creates a new claim error with method context
func NewClaimErrorWithMethod(code, message, method string) *ClaimError {
	return &ClaimError{
		Message:   message,
		Code:      code,
		Method:    method,
		Timestamp: time.Now(),
	}
}

// WithDetails adds details to the error
func (e *ClaimError) WithDetails(details map[string]interface{}) *ClaimError {
	e.Details = details
	return e
}

// WithCause attaches the underlying error
func (e *ClaimError) WithCause(cause error) *ClaimError {
	e.cause = cause
	return e
}

// NewInvalidIdentityError wraps an identity validation failure
func NewInvalidIdentityError(method, ref string, cause error) *ClaimError {
	return NewClaimErrorWithMethod(ErrCodeInvalidIdentity, "Invalid identity", method).
		WithDetails(map[string]interface{}{"identity": ref}).
		WithCause(cause)
}

// NewStorageError wraps a persistence read or write failure
func NewStorageError(method, operation string, cause error) *ClaimError {
	return NewClaimErrorWithMethod(ErrCodeStorageFailure, "Storage failure", method).
		WithDetails(map[string]interface{}{"operation": operation}).
		WithCause(cause)
}

// NewInvalidInputError reports a malformed command
func NewInvalidInputError(message string) *ClaimError {
	return NewClaimError(ErrCodeInvalidInput, fmt.Sprintf("Invalid input: %s", message))
}

// NewInsufficientFundsError reports a payment shortfall. No current
// command produces it.
func NewInsufficientFundsError(amount uint64) *ClaimError {
	return NewClaimError(ErrCodeInsufficientFunds, fmt.Sprintf("Insufficient funds: %d", amount)).
		WithDetails(map[string]interface{}{"amount": amount})
}

// ErrorCode returns the code of the first *ClaimError in err's chain, or ""
func ErrorCode(err error) string {
	var ce *ClaimError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return ""
}

// IsNotFound reports whether err signals an absent claim
func IsNotFound(err error) bool {
	return errors.Is(err, ErrClaimNotFound)
}
