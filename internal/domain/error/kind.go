// Package error defines domain-specific errors for the ledger engine.
package error

import "errors"

// Kind classifies a domain error so that callers can react to the category of a
// failure without knowing every individual code.
type Kind string

const (
	// KindValidation marks malformed or out-of-range input.
	KindValidation Kind = "validation"
	// KindNotFound marks a referenced entity that does not exist or is not owned by the caller.
	KindNotFound Kind = "not_found"
	// KindInvalidState marks an operation the entity's current state forbids.
	KindInvalidState Kind = "invalid_state"
	// KindInsufficientFunds marks a settlement the paying account cannot cover.
	KindInsufficientFunds Kind = "insufficient_funds"
	// KindUnknown is returned for errors that carry no domain classification.
	KindUnknown Kind = "unknown"
)

// Classified is implemented by every coded domain error.
type Classified interface {
	error
	Kind() Kind
	ErrorCode() string
}

// KindOf returns the Kind of the first classified error in err's chain.
func KindOf(err error) Kind {
	var classified Classified
	if errors.As(err, &classified) {
		return classified.Kind()
	}
	return KindUnknown
}

// CodeOf returns the code of the first classified error in err's chain.
func CodeOf(err error) string {
	var classified Classified
	if errors.As(err, &classified) {
		return classified.ErrorCode()
	}
	return ""
}

// kindFromCategory derives a Kind from the category digits of a code.
// Codes follow PREFIX-CCNNNN where CC is 01 validation, 02 not found,
// 03 invalid state and 04 insufficient funds.
func kindFromCategory(code string) Kind {
	for i := 0; i < len(code); i++ {
		if code[i] != '-' {
			continue
		}
		if i+3 > len(code) {
			break
		}
		switch code[i+1 : i+3] {
		case "01":
			return KindValidation
		case "02":
			return KindNotFound
		case "03":
			return KindInvalidState
		case "04":
			return KindInsufficientFunds
		}
		break
	}
	return KindUnknown
}
