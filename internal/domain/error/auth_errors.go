package error

import "errors"

// Authentication domain errors.
var (
	// ErrMissingToken is returned when no bearer token is presented.
	ErrMissingToken = errors.New("missing authentication token")

	// ErrInvalidToken is returned when the bearer token cannot be validated.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrTokenRevoked is returned when the bearer token is on the revocation list.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrRateLimited is returned when a client exceeds its request budget.
	ErrRateLimited = errors.New("too many requests")

	// ErrDuplicateRequest is returned when an idempotency key is replayed.
	ErrDuplicateRequest = errors.New("request with this idempotency key was already processed")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-CCNNNN where CC is the error category and NNNN the specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingToken AuthErrorCode = "AUTH-010001"
	ErrCodeInvalidToken AuthErrorCode = "AUTH-010002"
	ErrCodeTokenRevoked AuthErrorCode = "AUTH-010003"

	// State errors (03XXXX)
	ErrCodeRateLimited      AuthErrorCode = "AUTH-030001"
	ErrCodeDuplicateRequest AuthErrorCode = "AUTH-030002"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *AuthError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *AuthError) ErrorCode() string {
	return string(e.Code)
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
