package error

import "errors"

// Loan domain errors.
var (
	// ErrLoanNotFound is returned when a loan does not exist or belongs to another user.
	ErrLoanNotFound = errors.New("loan not found")

	// ErrInvalidLoanAmount is returned when a loan is created with a non-positive amount.
	ErrInvalidLoanAmount = errors.New("original amount must be greater than zero")

	// ErrLoanAlreadyPaid is returned when receiving a payment on a fully repaid loan.
	ErrLoanAlreadyPaid = errors.New("loan is already paid")

	// ErrLoanNameRequired is returned when a loan is created without a name.
	ErrLoanNameRequired = errors.New("loan name is required")
)

// LoanErrorCode defines error codes for loan errors.
// Format: LON-CCNNNN where CC is the error category and NNNN the specific error.
type LoanErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidLoanAmount       LoanErrorCode = "LON-010001"
	ErrCodeInvalidLoanPayment      LoanErrorCode = "LON-010002"
	ErrCodeInvalidLoanInterestRate LoanErrorCode = "LON-010003"
	ErrCodeLoanDueDateBeforeStart  LoanErrorCode = "LON-010004"
	ErrCodeLoanNameRequired        LoanErrorCode = "LON-010005"

	// Not found errors (02XXXX)
	ErrCodeLoanNotFound LoanErrorCode = "LON-020001"

	// State errors (03XXXX)
	ErrCodeLoanAlreadyPaid    LoanErrorCode = "LON-030001"
	ErrCodeLoanInvalidAccount LoanErrorCode = "LON-030002"
)

// LoanError represents a loan error with code and message.
type LoanError struct {
	Code    LoanErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LoanError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LoanError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *LoanError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *LoanError) ErrorCode() string {
	return string(e.Code)
}

// NewLoanError creates a new LoanError with the given code and message.
func NewLoanError(code LoanErrorCode, message string, err error) *LoanError {
	return &LoanError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
