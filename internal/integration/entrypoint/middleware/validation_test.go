package middleware

import (
	"io"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name      string          `json:"name" validate:"required,max=5"`
	Amount    decimal.Decimal `json:"amount" validate:"gt=0"`
	Type      string          `json:"type" validate:"transaction_type"`
	Account   string          `json:"account_type" validate:"account_type"`
	Priority  string          `json:"priority" validate:"priority"`
	Frequency string          `json:"frequency" validate:"frequency"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()

	v := validator.New()
	require.NoError(t, RegisterValidations(v))
	return v
}

func TestRegisterValidations_AcceptsValidRequest(t *testing.T) {
	req := sampleRequest{
		Name:      "Rent",
		Amount:    decimal.RequireFromString("0.01"),
		Type:      "expense",
		Account:   "savings",
		Priority:  "high",
		Frequency: "biweekly",
	}

	assert.NoError(t, newValidator(t).Struct(req))
}

func TestFormatValidationErrors(t *testing.T) {
	req := sampleRequest{
		Name:      "Groceries",
		Amount:    decimal.Zero,
		Type:      "transfer",
		Account:   "crypto",
		Priority:  "urgent",
		Frequency: "daily",
	}

	err := newValidator(t).Struct(req)
	require.Error(t, err)

	details := FormatValidationErrors(err)
	assert.Contains(t, details, "name: Must be at most 5 characters")
	assert.Contains(t, details, "amount: Must be greater than 0")
	assert.Contains(t, details, "type: Must be one of: income expense")
	assert.Contains(t, details, "account_type: Must be one of: cash debit credit bank savings investment")
	assert.Contains(t, details, "priority: Must be one of: high medium low")
	assert.Contains(t, details, "frequency: Must be one of: weekly biweekly monthly annual")
}

func TestFormatValidationErrors_PlainError(t *testing.T) {
	assert.Equal(t, "unexpected EOF", FormatValidationErrors(io.ErrUnexpectedEOF))
}

func TestSetupValidator_RegistersOnGinEngine(t *testing.T) {
	require.NoError(t, SetupValidator())

	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	assert.Error(t, v.Var("crypto", "account_type"))
	assert.NoError(t, v.Var("savings", "account_type"))
}

func TestRegisterValidations_ReportsRegistrationError(t *testing.T) {
	enumValidations[""] = func(validator.FieldLevel) bool { return true }
	t.Cleanup(func() { delete(enumValidations, "") })

	err := RegisterValidations(validator.New())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to register")
}
