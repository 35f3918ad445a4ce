package error

import "errors"

// Transaction domain errors.
var (
	// ErrTransactionNotFound is returned when a transaction is not found in the system.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInvalidTransactionType is returned when the transaction type is invalid.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrTransactionTypeNotDirect is returned when a type must be recorded through its own operation.
	ErrTransactionTypeNotDirect = errors.New("transaction type must be recorded through its dedicated operation")

	// ErrInvalidTransactionAmount is returned when the transaction amount is not positive.
	ErrInvalidTransactionAmount = errors.New("invalid transaction amount")

	// ErrCategoryNotFoundForTransaction is returned when the specified category is not found.
	ErrCategoryNotFoundForTransaction = errors.New("category not found")

	// ErrSubcategoryMismatch is returned when a subcategory does not belong to the given category.
	ErrSubcategoryMismatch = errors.New("subcategory does not belong to category")

	// ErrDescriptionTooLong is returned when the transaction description exceeds the maximum length.
	ErrDescriptionTooLong = errors.New("description too long")

	// ErrNotesTooLong is returned when the transaction notes exceed the maximum length.
	ErrNotesTooLong = errors.New("notes too long")

	// ErrSameTransferAccount is returned when a transfer names the same account on both sides.
	ErrSameTransferAccount = errors.New("transfer accounts must differ")

	// ErrSettlementNotReversible is returned when deleting a pending payment settlement.
	ErrSettlementNotReversible = errors.New("pending payment settlements cannot be reversed")

	// ErrInvalidDateRange is returned when a listing range ends before it starts.
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrTooManyAttachments is returned when a transaction carries more attachments than allowed.
	ErrTooManyAttachments = errors.New("too many attachments")
)

// TransactionErrorCode defines error codes for transaction errors.
// Format: TXN-CCNNNN where CC is the error category and NNNN the specific error.
type TransactionErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType   TransactionErrorCode = "TXN-010001"
	ErrCodeInvalidTransactionAmount TransactionErrorCode = "TXN-010002"
	ErrCodeTransactionTypeNotDirect TransactionErrorCode = "TXN-010003"
	ErrCodeDescriptionTooLong       TransactionErrorCode = "TXN-010004"
	ErrCodeNotesTooLong             TransactionErrorCode = "TXN-010005"
	ErrCodeSubcategoryMismatch      TransactionErrorCode = "TXN-010006"
	ErrCodeSameTransferAccount      TransactionErrorCode = "TXN-010007"
	ErrCodeInvalidDateRange         TransactionErrorCode = "TXN-010008"
	ErrCodeTooManyAttachments       TransactionErrorCode = "TXN-010009"

	// Not found errors (02XXXX)
	ErrCodeTransactionNotFound TransactionErrorCode = "TXN-020001"
	ErrCodeTxnCategoryNotFound TransactionErrorCode = "TXN-020002"

	// State errors (03XXXX)
	ErrCodeSettlementNotReversible TransactionErrorCode = "TXN-030001"
)

// TransactionError represents a transaction error with code and message.
type TransactionError struct {
	Code    TransactionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransactionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransactionError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *TransactionError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *TransactionError) ErrorCode() string {
	return string(e.Code)
}

// NewTransactionError creates a new TransactionError with the given code and message.
func NewTransactionError(code TransactionErrorCode, message string, err error) *TransactionError {
	return &TransactionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
