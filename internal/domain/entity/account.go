package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountType represents the kind of account.
type AccountType string

const (
	AccountTypeCash       AccountType = "cash"
	AccountTypeDebit      AccountType = "debit"
	AccountTypeCredit     AccountType = "credit"
	AccountTypeBank       AccountType = "bank"
	AccountTypeSavings    AccountType = "savings"
	AccountTypeInvestment AccountType = "investment"
)

// IsValid checks if the account type is supported.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeCash, AccountTypeDebit, AccountTypeCredit, AccountTypeBank, AccountTypeSavings, AccountTypeInvestment:
		return true
	}
	return false
}

// MaxAccountNameLength is the maximum length of an account name.
const MaxAccountNameLength = 100

// Account holds a running balance. The balance is only changed through ApplyEffect and
// RevertEffect, which the ledger calls while recording or reversing a transaction.
type Account struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAccount creates an active account with a zero balance.
func NewAccount(userID uuid.UUID, name string, accountType AccountType) *Account {
	now := time.Now().UTC()

	return &Account{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      accountType,
		Balance:   decimal.Zero,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyEffect moves the balance by amount in the given direction.
func (a *Account) ApplyEffect(effect BalanceEffect, amount decimal.Decimal) {
	switch effect {
	case EffectCredit:
		a.Balance = a.Balance.Add(amount)
	case EffectDebit:
		a.Balance = a.Balance.Sub(amount)
	default:
		return
	}
	a.UpdatedAt = time.Now().UTC()
}

// RevertEffect undoes a previous ApplyEffect with the same arguments.
func (a *Account) RevertEffect(effect BalanceEffect, amount decimal.Decimal) {
	a.ApplyEffect(effect.Inverse(), amount)
}

// CanCover reports whether the balance covers amount.
func (a *Account) CanCover(amount decimal.Decimal) bool {
	return a.Balance.GreaterThanOrEqual(amount)
}

// Deactivate marks the account inactive. Accounts referenced by the ledger are never removed.
func (a *Account) Deactivate() {
	a.IsActive = false
	a.UpdatedAt = time.Now().UTC()
}

// IsUsableBy reports whether userID may post to this account.
func (a *Account) IsUsableBy(userID uuid.UUID) bool {
	return a.UserID == userID && a.IsActive
}

// AccountReconciliation compares the stored balance with the balance derived from the ledger.
type AccountReconciliation struct {
	StoredBalance decimal.Decimal
	LedgerBalance decimal.Decimal
}

// InSync reports whether stored and derived balances agree.
func (r AccountReconciliation) InSync() bool {
	return r.StoredBalance.Equal(r.LedgerBalance)
}
