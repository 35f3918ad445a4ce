package entity

// BalanceEffect is the direction in which a transaction moves its account balance.
type BalanceEffect string

const (
	EffectCredit BalanceEffect = "credit"
	EffectDebit  BalanceEffect = "debit"
	EffectNone   BalanceEffect = "none"
)

// balanceEffects maps every transaction type to the effect it has on the account it is
// recorded against. A transfer debits its source account here; the credit on the
// counterpart account is applied by the transfer operation.
var balanceEffects = map[TransactionType]BalanceEffect{
	TransactionTypeIncome:           EffectCredit,
	TransactionTypeLoanPayment:      EffectCredit,
	TransactionTypeExpense:          EffectDebit,
	TransactionTypeDebtPayment:      EffectDebit,
	TransactionTypeGoalContribution: EffectDebit,
	TransactionTypePendingPayment:   EffectDebit,
	TransactionTypeTransfer:         EffectDebit,
}

// BalanceEffectOf returns the effect a transaction type has on its account.
// Unknown types have no effect.
func BalanceEffectOf(t TransactionType) BalanceEffect {
	if effect, ok := balanceEffects[t]; ok {
		return effect
	}
	return EffectNone
}

// Inverse returns the effect that undoes e.
func (e BalanceEffect) Inverse() BalanceEffect {
	switch e {
	case EffectCredit:
		return EffectDebit
	case EffectDebit:
		return EffectCredit
	default:
		return EffectNone
	}
}

// IsReversible reports whether deleting a transaction of type t can be undone by applying
// the inverse effect to its own account. Transfers touch two accounts and settlements
// close a pending payment, so both are handled by their own operations.
func IsReversible(t TransactionType) bool {
	switch t {
	case TransactionTypeTransfer, TransactionTypePendingPayment:
		return false
	default:
		return BalanceEffectOf(t) != EffectNone
	}
}
