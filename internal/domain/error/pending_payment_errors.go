package error

import "errors"

// Pending payment domain errors.
var (
	// ErrPendingPaymentNotFound is returned when a pending payment does not exist or belongs to another user.
	ErrPendingPaymentNotFound = errors.New("pending payment not found")

	// ErrInvalidPendingAmount is returned when the pending payment amount is not positive.
	ErrInvalidPendingAmount = errors.New("amount must be greater than zero")

	// ErrInvalidPriority is returned when the priority is not high, medium or low.
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrPendingPaymentAlreadyPaid is returned when settling a paid pending payment.
	ErrPendingPaymentAlreadyPaid = errors.New("pending payment is already paid")

	// ErrPendingPaymentCancelled is returned when settling or cancelling a cancelled pending payment.
	ErrPendingPaymentCancelled = errors.New("pending payment is cancelled")

	// ErrBothDebtAndLoan is returned when both links are supplied.
	ErrBothDebtAndLoan = errors.New("a pending payment cannot reference both a debt and a loan")

	// ErrExceedsLinkedRemaining is returned when settlement would overpay the linked entity.
	ErrExceedsLinkedRemaining = errors.New("amount exceeds the remaining amount of the linked debt or loan")

	// ErrLinkedEntityPaid is returned when the linked entity has nothing remaining.
	ErrLinkedEntityPaid = errors.New("linked debt or loan is already paid")

	// ErrPendingDescriptionRequired is returned when a pending payment is created without a description.
	ErrPendingDescriptionRequired = errors.New("description is required")
)

// PendingPaymentErrorCode defines error codes for pending payment errors.
// Format: PND-CCNNNN where CC is the error category and NNNN the specific error.
type PendingPaymentErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidPendingAmount       PendingPaymentErrorCode = "PND-010001"
	ErrCodeInvalidPriority            PendingPaymentErrorCode = "PND-010002"
	ErrCodeBothDebtAndLoan            PendingPaymentErrorCode = "PND-010003"
	ErrCodeExceedsLinkedRemaining     PendingPaymentErrorCode = "PND-010004"
	ErrCodePendingDescriptionRequired PendingPaymentErrorCode = "PND-010005"
	ErrCodePendingDescriptionTooLong  PendingPaymentErrorCode = "PND-010006"

	// Not found errors (02XXXX)
	ErrCodePendingPaymentNotFound PendingPaymentErrorCode = "PND-020001"
	ErrCodePendingLinkNotFound    PendingPaymentErrorCode = "PND-020002"

	// State errors (03XXXX)
	ErrCodePendingPaymentAlreadyPaid PendingPaymentErrorCode = "PND-030001"
	ErrCodePendingPaymentCancelled   PendingPaymentErrorCode = "PND-030002"
	ErrCodeLinkedEntityPaid          PendingPaymentErrorCode = "PND-030003"
	ErrCodePendingInvalidAccount     PendingPaymentErrorCode = "PND-030004"
)

// PendingPaymentError represents a pending payment error with code and message.
type PendingPaymentError struct {
	Code    PendingPaymentErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PendingPaymentError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PendingPaymentError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *PendingPaymentError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *PendingPaymentError) ErrorCode() string {
	return string(e.Code)
}

// NewPendingPaymentError creates a new PendingPaymentError with the given code and message.
func NewPendingPaymentError(code PendingPaymentErrorCode, message string, err error) *PendingPaymentError {
	return &PendingPaymentError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
