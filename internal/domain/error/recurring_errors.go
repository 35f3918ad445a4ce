package error

import "errors"

// Recurring expense domain errors.
var (
	// ErrRecurringExpenseNotFound is returned when a recurring expense does not exist or belongs to another user.
	ErrRecurringExpenseNotFound = errors.New("recurring expense not found")

	// ErrInvalidFrequency is returned when the frequency is not supported.
	ErrInvalidFrequency = errors.New("invalid frequency")

	// ErrChargeDayOutOfRange is returned when the charge day does not fit the frequency.
	ErrChargeDayOutOfRange = errors.New("charge day outside the domain of the frequency")

	// ErrInvalidRecurringAmount is returned when the recurring amount is not positive.
	ErrInvalidRecurringAmount = errors.New("amount must be greater than zero")

	// ErrInvalidRecurringStatus is returned when the requested status is unknown.
	ErrInvalidRecurringStatus = errors.New("invalid recurring expense status")

	// ErrRecurringCancelled is returned when changing a cancelled recurring expense.
	ErrRecurringCancelled = errors.New("recurring expense is cancelled")

	// ErrRecurringNotActive is returned when charging a paused or cancelled recurring expense.
	ErrRecurringNotActive = errors.New("recurring expense is not active")

	// ErrRecurringNameRequired is returned when a recurring expense is created without a name.
	ErrRecurringNameRequired = errors.New("recurring expense name is required")
)

// RecurringErrorCode defines error codes for recurring expense errors.
// Format: REC-CCNNNN where CC is the error category and NNNN the specific error.
type RecurringErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidFrequency       RecurringErrorCode = "REC-010001"
	ErrCodeChargeDayOutOfRange    RecurringErrorCode = "REC-010002"
	ErrCodeInvalidRecurringAmount RecurringErrorCode = "REC-010003"
	ErrCodeInvalidRecurringStatus RecurringErrorCode = "REC-010004"
	ErrCodeRecurringNameRequired  RecurringErrorCode = "REC-010005"

	// Not found errors (02XXXX)
	ErrCodeRecurringNotFound RecurringErrorCode = "REC-020001"

	// State errors (03XXXX)
	ErrCodeRecurringCancelled      RecurringErrorCode = "REC-030001"
	ErrCodeRecurringNotActive      RecurringErrorCode = "REC-030002"
	ErrCodeRecurringInvalidAccount RecurringErrorCode = "REC-030003"
)

// RecurringError represents a recurring expense error with code and message.
type RecurringError struct {
	Code    RecurringErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecurringError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecurringError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *RecurringError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *RecurringError) ErrorCode() string {
	return string(e.Code)
}

// NewRecurringError creates a new RecurringError with the given code and message.
func NewRecurringError(code RecurringErrorCode, message string, err error) *RecurringError {
	return &RecurringError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
