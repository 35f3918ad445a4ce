package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account does not exist or belongs to another user.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountInactive is returned when an operation targets a deactivated account.
	ErrAccountInactive = errors.New("account is inactive")

	// ErrInvalidAccountType is returned when the account type is not supported.
	ErrInvalidAccountType = errors.New("invalid account type")

	// ErrAccountNameRequired is returned when an account is created without a name.
	ErrAccountNameRequired = errors.New("account name is required")

	// ErrNegativeOpeningBalance is returned when a non-credit account opens below zero.
	ErrNegativeOpeningBalance = errors.New("opening balance cannot be negative")

	// ErrOpeningBalancePrecision is returned when the opening balance has fractions of a cent.
	ErrOpeningBalancePrecision = errors.New("opening balance must be whole cents")

	// ErrInsufficientFunds is returned when an account balance cannot cover a settlement.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-CCNNNN where CC is the error category and NNNN the specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidAccountType      AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameRequired     AccountErrorCode = "ACC-010002"
	ErrCodeNegativeOpeningBalance  AccountErrorCode = "ACC-010003"
	ErrCodeAccountNameTooLong      AccountErrorCode = "ACC-010004"
	ErrCodeOpeningBalancePrecision AccountErrorCode = "ACC-010005"

	// Not found errors (02XXXX)
	ErrCodeAccountNotFound AccountErrorCode = "ACC-020001"

	// State errors (03XXXX)
	ErrCodeAccountInactive AccountErrorCode = "ACC-030001"

	// Funds errors (04XXXX)
	ErrCodeInsufficientFunds AccountErrorCode = "ACC-040001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *AccountError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *AccountError) ErrorCode() string {
	return string(e.Code)
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
