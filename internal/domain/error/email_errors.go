package error

import "errors"

// Email delivery errors. They describe infrastructure failures and carry no Kind.
var (
	// ErrPermanentEmailFailure is returned when the provider rejects a message for good.
	ErrPermanentEmailFailure = errors.New("permanent email failure")

	// ErrTemporaryEmailFailure is returned when sending may succeed on a later attempt.
	ErrTemporaryEmailFailure = errors.New("temporary email failure")

	// ErrTemplateRenderFailed is returned when email template rendering fails.
	ErrTemplateRenderFailed = errors.New("failed to render email template")
)

// EmailErrorCode defines error codes for email errors.
type EmailErrorCode string

const (
	ErrCodePermanentEmailFailure EmailErrorCode = "EMAIL-020002"
	ErrCodeTemporaryEmailFailure EmailErrorCode = "EMAIL-020003"
	ErrCodeTemplateRenderFailed  EmailErrorCode = "EMAIL-030002"
)

// EmailError represents an email error with code and message.
type EmailError struct {
	Code    EmailErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EmailError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EmailError) Unwrap() error {
	return e.Err
}

// IsPermanent reports whether retrying the delivery is pointless.
func (e *EmailError) IsPermanent() bool {
	return e.Code == ErrCodePermanentEmailFailure || e.Code == ErrCodeTemplateRenderFailed
}

// NewEmailError creates a new EmailError with the given code and message.
func NewEmailError(code EmailErrorCode, message string, err error) *EmailError {
	return &EmailError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanentEmailFailure reports whether err is an email error that must not be retried.
func IsPermanentEmailFailure(err error) bool {
	var emailErr *EmailError
	return errors.As(err, &emailErr) && emailErr.IsPermanent()
}
