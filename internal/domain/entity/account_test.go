package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAccount_ApplyAndRevertEffect(t *testing.T) {
	account := NewAccount(uuid.New(), "Checking", AccountTypeBank)

	account.ApplyEffect(BalanceEffectOf(TransactionTypeIncome), dec("150.25"))
	assert.True(t, account.Balance.Equal(dec("150.25")))

	account.ApplyEffect(BalanceEffectOf(TransactionTypeExpense), dec("50.25"))
	assert.True(t, account.Balance.Equal(dec("100")))

	account.RevertEffect(BalanceEffectOf(TransactionTypeExpense), dec("50.25"))
	assert.True(t, account.Balance.Equal(dec("150.25")))

	account.ApplyEffect(EffectNone, dec("999"))
	assert.True(t, account.Balance.Equal(dec("150.25")))
}

func TestAccount_CanCover(t *testing.T) {
	account := NewAccount(uuid.New(), "Checking", AccountTypeBank)
	account.Balance = dec("100")

	assert.True(t, account.CanCover(dec("100")))
	assert.True(t, account.CanCover(dec("99.99")))
	assert.False(t, account.CanCover(dec("100.01")))
}

func TestAccount_IsUsableBy(t *testing.T) {
	owner := uuid.New()
	account := NewAccount(owner, "Cash", AccountTypeCash)

	assert.True(t, account.IsUsableBy(owner))
	assert.False(t, account.IsUsableBy(uuid.New()))

	account.Deactivate()
	assert.False(t, account.IsUsableBy(owner))
}

func TestAccountType_IsValid(t *testing.T) {
	for _, accountType := range []AccountType{
		AccountTypeCash, AccountTypeDebit, AccountTypeCredit,
		AccountTypeBank, AccountTypeSavings, AccountTypeInvestment,
	} {
		assert.True(t, accountType.IsValid(), accountType)
	}
	assert.False(t, AccountType("crypto").IsValid())
}

func TestBalanceEffectOf(t *testing.T) {
	tests := map[TransactionType]BalanceEffect{
		TransactionTypeIncome:           EffectCredit,
		TransactionTypeLoanPayment:      EffectCredit,
		TransactionTypeExpense:          EffectDebit,
		TransactionTypeDebtPayment:      EffectDebit,
		TransactionTypeGoalContribution: EffectDebit,
		TransactionTypePendingPayment:   EffectDebit,
		TransactionTypeTransfer:         EffectDebit,
		TransactionType("refund"):       EffectNone,
	}

	for txnType, want := range tests {
		assert.Equal(t, want, BalanceEffectOf(txnType), txnType)
	}
}

func TestIsReversible(t *testing.T) {
	assert.True(t, IsReversible(TransactionTypeIncome))
	assert.True(t, IsReversible(TransactionTypeGoalContribution))
	assert.False(t, IsReversible(TransactionTypeTransfer))
	assert.False(t, IsReversible(TransactionTypePendingPayment))
	assert.False(t, IsReversible(TransactionType("refund")))
}
