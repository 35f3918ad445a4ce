package error

import "errors"

// Debt domain errors.
var (
	// ErrDebtNotFound is returned when a debt does not exist or belongs to another user.
	ErrDebtNotFound = errors.New("debt not found")

	// ErrInvalidDebtAmount is returned when a debt is created with a non-positive amount.
	ErrInvalidDebtAmount = errors.New("original amount must be greater than zero")

	// ErrInvalidPaymentAmount is returned when a payment amount is not positive.
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")

	// ErrDebtAlreadyPaid is returned when paying a debt with nothing remaining.
	ErrDebtAlreadyPaid = errors.New("debt is already paid")

	// ErrInvalidPaymentAccount is returned when the paying account is inactive or not owned by the user.
	ErrInvalidPaymentAccount = errors.New("account cannot be used for this payment")

	// ErrInvalidInterestRate is returned when the interest rate is negative.
	ErrInvalidInterestRate = errors.New("interest rate cannot be negative")

	// ErrInvalidInstallmentCount is returned when the installment count is out of range.
	ErrInvalidInstallmentCount = errors.New("installment count must be between 1 and 360")

	// ErrDueDateBeforeStart is returned when the due date precedes the start date.
	ErrDueDateBeforeStart = errors.New("due date cannot be before start date")

	// ErrDebtNameRequired is returned when a debt is created without a name.
	ErrDebtNameRequired = errors.New("debt name is required")
)

// DebtErrorCode defines error codes for debt errors.
// Format: DBT-CCNNNN where CC is the error category and NNNN the specific error.
type DebtErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidDebtAmount       DebtErrorCode = "DBT-010001"
	ErrCodeInvalidDebtPayment      DebtErrorCode = "DBT-010002"
	ErrCodeInvalidInterestRate     DebtErrorCode = "DBT-010003"
	ErrCodeInvalidInstallmentCount DebtErrorCode = "DBT-010004"
	ErrCodeDebtDueDateBeforeStart  DebtErrorCode = "DBT-010005"
	ErrCodeDebtNameRequired        DebtErrorCode = "DBT-010006"

	// Not found errors (02XXXX)
	ErrCodeDebtNotFound DebtErrorCode = "DBT-020001"

	// State errors (03XXXX)
	ErrCodeDebtAlreadyPaid    DebtErrorCode = "DBT-030001"
	ErrCodeDebtInvalidAccount DebtErrorCode = "DBT-030002"
)

// DebtError represents a debt error with code and message.
type DebtError struct {
	Code    DebtErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *DebtError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *DebtError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *DebtError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *DebtError) ErrorCode() string {
	return string(e.Code)
}

// NewDebtError creates a new DebtError with the given code and message.
func NewDebtError(code DebtErrorCode, message string, err error) *DebtError {
	return &DebtError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
