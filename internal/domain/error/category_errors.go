package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category does not exist or belongs to another user.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a category is created without a name.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidCategoryType is returned when the category type is not income or expense.
	ErrInvalidCategoryType = errors.New("invalid category type")

	// ErrParentCategoryNotFound is returned when the parent category does not exist.
	ErrParentCategoryNotFound = errors.New("parent category not found")

	// ErrNestedSubcategory is returned when the parent is itself a subcategory.
	ErrNestedSubcategory = errors.New("subcategories cannot have children")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-CCNNNN where CC is the error category and NNNN the specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong  CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidCategoryType  CategoryErrorCode = "CAT-010003"
	ErrCodeNestedSubcategory    CategoryErrorCode = "CAT-010004"

	// Not found errors (02XXXX)
	ErrCodeCategoryNotFound       CategoryErrorCode = "CAT-020001"
	ErrCodeParentCategoryNotFound CategoryErrorCode = "CAT-020002"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// Kind returns the error classification.
func (e *CategoryError) Kind() Kind {
	return kindFromCategory(string(e.Code))
}

// ErrorCode returns the error code as a string.
func (e *CategoryError) ErrorCode() string {
	return string(e.Code)
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
