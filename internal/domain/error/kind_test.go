package error

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantKind Kind
		wantCode string
	}{
		{
			name:     "validation",
			err:      NewTransactionError(ErrCodeInvalidTransactionAmount, "amount must be positive", ErrInvalidTransactionAmount),
			wantKind: KindValidation,
			wantCode: "TXN-010002",
		},
		{
			name:     "not found",
			err:      NewAccountError(ErrCodeAccountNotFound, "account not found", ErrAccountNotFound),
			wantKind: KindNotFound,
			wantCode: "ACC-020001",
		},
		{
			name:     "invalid state",
			err:      NewGoalError(ErrCodeGoalAchieved, "goal is achieved", ErrGoalAchieved),
			wantKind: KindInvalidState,
			wantCode: "GOL-030002",
		},
		{
			name:     "insufficient funds",
			err:      NewAccountError(ErrCodeInsufficientFunds, "balance too low", ErrInsufficientFunds),
			wantKind: KindInsufficientFunds,
			wantCode: "ACC-040001",
		},
		{
			name:     "wrapped coded error",
			err:      fmt.Errorf("failed to pay: %w", NewPendingPaymentError(ErrCodeExceedsLinkedRemaining, "too much", ErrExceedsLinkedRemaining)),
			wantKind: KindValidation,
			wantCode: "PND-010004",
		},
		{
			name:     "plain error",
			err:      errors.New("connection refused"),
			wantKind: KindUnknown,
			wantCode: "",
		},
		{
			name:     "nil",
			err:      nil,
			wantKind: KindUnknown,
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantKind, KindOf(tt.err))
			assert.Equal(t, tt.wantCode, CodeOf(tt.err))
		})
	}
}

func TestKindFromCategory(t *testing.T) {
	assert.Equal(t, KindValidation, kindFromCategory("REC-010002"))
	assert.Equal(t, KindNotFound, kindFromCategory("DBT-020001"))
	assert.Equal(t, KindInvalidState, kindFromCategory("LON-030001"))
	assert.Equal(t, KindInsufficientFunds, kindFromCategory("ACC-040001"))
	assert.Equal(t, KindUnknown, kindFromCategory("XYZ-990001"))
	assert.Equal(t, KindUnknown, kindFromCategory("nodash"))
	assert.Equal(t, KindUnknown, kindFromCategory("A-0"))
}

func TestCodedErrorsUnwrapSentinels(t *testing.T) {
	err := NewDebtError(ErrCodeDebtAlreadyPaid, "debt is already paid", ErrDebtAlreadyPaid)

	assert.True(t, errors.Is(err, ErrDebtAlreadyPaid))
	assert.Equal(t, "debt is already paid: "+ErrDebtAlreadyPaid.Error(), err.Error())
}

func TestIsPermanentEmailFailure(t *testing.T) {
	permanent := NewEmailError(ErrCodePermanentEmailFailure, "rejected", errors.New("422"))
	temporary := NewEmailError(ErrCodeTemporaryEmailFailure, "unavailable", errors.New("503"))

	assert.True(t, IsPermanentEmailFailure(fmt.Errorf("send: %w", permanent)))
	assert.False(t, IsPermanentEmailFailure(temporary))
	assert.False(t, IsPermanentEmailFailure(errors.New("boom")))
}
