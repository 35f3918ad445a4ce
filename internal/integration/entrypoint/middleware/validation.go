package middleware

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// SetupValidator configures gin's validator: JSON field names in errors, numeric
// comparison tags on decimal amounts, and the domain enum tags used by the DTOs.
func SetupValidator() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return RegisterValidations(v)
}

// enumValidations maps each custom tag to the domain check behind it.
var enumValidations = map[string]validator.Func{
	"account_type": func(fl validator.FieldLevel) bool {
		return entity.AccountType(fl.Field().String()).IsValid()
	},
	"transaction_type": func(fl validator.FieldLevel) bool {
		return entity.TransactionType(fl.Field().String()).IsDirect()
	},
	"priority": func(fl validator.FieldLevel) bool {
		return entity.Priority(fl.Field().String()).IsValid()
	},
	"frequency": func(fl validator.FieldLevel) bool {
		return valueobject.Frequency(fl.Field().String()).IsValid()
	},
}

// RegisterValidations registers the custom tags on v.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})

	for tag, fn := range enumValidations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %q validation: %w", tag, err)
		}
	}
	return nil
}

// FormatValidationErrors renders binding errors as a single details string.
func FormatValidationErrors(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	details := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		details = append(details, e.Field()+": "+getValidationMessage(e))
	}
	return strings.Join(details, "; ")
}

// getValidationMessage returns a human-readable validation message
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "min":
		return "Must be at least " + e.Param()
	case "uuid":
		return "Invalid UUID format"
	case "oneof":
		return "Must be one of: " + e.Param()
	case "gt":
		return "Must be greater than " + e.Param()
	case "gte":
		return "Must be greater than or equal to " + e.Param()
	case "lte":
		return "Must be less than or equal to " + e.Param()
	case "datetime":
		return "Must be a date in format " + e.Param()
	case "account_type":
		return "Must be one of: cash debit credit bank savings investment"
	case "transaction_type":
		return "Must be one of: income expense"
	case "priority":
		return "Must be one of: high medium low"
	case "frequency":
		return "Must be one of: weekly biweekly monthly annual"
	default:
		return "Invalid value"
	}
}
