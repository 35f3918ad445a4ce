package error

import "errors"

// Savings goal domain errors.
var (
	// ErrGoalNotFound is returned when a goal does not exist or belongs to another user.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrInvalidTargetAmount is returned when the target amount is not positive.
	ErrInvalidTargetAmount = errors.New("target amount must be greater than zero")

	// ErrInvalidContributionAmount is returned when a contribution amount is not positive.
	ErrInvalidContributionAmount = errors.New("contribution amount must be greater than zero")

	// ErrInvalidAutoContribute is returned when the auto contribute percentage is out of range.
	ErrInvalidAutoContribute = errors.New("auto contribute percentage must be between 0 and 100")

	// ErrGoalCancelled is returned when contributing to a cancelled goal.
	ErrGoalCancelled = errors.New("goal is cancelled")

	// ErrGoalAchieved is returned when contributing to an achieved goal.
	ErrGoalAchieved = errors.New("goal is already achieved")

	// ErrInvalidGoalStatus is returned when the requested status is unknown.
	ErrInvalidGoalStatus = errors.New("invalid goal status")

	// ErrInvalidGoalTransition is returned when the requested status change is not permitted.
	ErrInvalidGoalTransition = errors.New("goal status transition not allowed")

	// ErrGoalTargetNotReached is returned when marking a goal achieved below its target.
	ErrGoalTargetNotReached = errors.New("goal target has not been reached")

	// ErrGoalNameRequired is returned when a goal is created without a name.
	ErrGoalNameRequired = errors.New("goal name is required")
)

// GoalErrorCode defines error codes for savings goal errors.
// Format: GOL-CCNNNN where CC is the error category and NNNN the specific error.
type GoalErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTargetAmount   GoalErrorCode = "GOL-010001"
	ErrCodeInvalidContribution   GoalErrorCode = "GOL-010002"
	ErrCodeInvalidAutoContribute GoalErrorCode = "GOL-010003"
	ErrCodeInvalidGoalStatus     GoalErrorCode = "GOL-010004"
	ErrCodeGoalNameRequired      GoalErrorCode = "GOL-010005"

	// Not found errors (02XXXX)
	ErrCodeGoalNotFound GoalErrorCode = "GOL-020001"

	// State errors (03XXXX)
	ErrCodeGoalCancelled         GoalErrorCode = "GOL-030001"
	ErrCodeGoalAchieved          GoalErrorCode = "GOL-030002"
	ErrCodeInvalidGoalTransition GoalErrorCode = "GOL-030003"
	ErrCodeGoalTargetNotReached  GoalErrorCode = "GOL-030004"
	ErrCodeGoalInvalidAccount    GoalErrorCode = "GOL-030005"
)

// GoalError represents a savings goal error with code and message.
type GoalError struct {
	Code    GoalErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GoalError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GoalError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *GoalError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *GoalError) ErrorCode() string {
	return string(e.Code)
}

// NewGoalError creates a new GoalError with the given code and message.
func NewGoalError(code GoalErrorCode, message string, err error) *GoalError {
	return &GoalError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
