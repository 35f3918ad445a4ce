package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// CreateAccountRequest represents the request body for account creation.
type CreateAccountRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Type           string          `json:"type" binding:"required,account_type"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// AccountResponse represents a single account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Balance   string    `json:"balance"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ReconciliationResponse compares the stored balance with the ledger.
type ReconciliationResponse struct {
	StoredBalance string `json:"stored_balance"`
	LedgerBalance string `json:"ledger_balance"`
	InSync        bool   `json:"in_sync"`
}

// AccountDetailResponse is an account with its ledger reconciliation.
type AccountDetailResponse struct {
	AccountResponse
	Reconciliation ReconciliationResponse `json:"reconciliation"`
}

// CreateAccountResponse represents the response of account creation.
type CreateAccountResponse struct {
	Account            AccountResponse      `json:"account"`
	OpeningTransaction *TransactionResponse `json:"opening_transaction,omitempty"`
}

// AccountListResponse represents the response for listing accounts.
type AccountListResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// ToAccountResponse converts a domain Account entity to an AccountResponse DTO.
func ToAccountResponse(a *entity.Account) AccountResponse {
	return AccountResponse{
		ID:        a.ID.String(),
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   money(a.Balance),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// ToAccountDetailResponse converts an account and its reconciliation.
func ToAccountDetailResponse(a *entity.Account, r entity.AccountReconciliation) AccountDetailResponse {
	return AccountDetailResponse{
		AccountResponse: ToAccountResponse(a),
		Reconciliation: ReconciliationResponse{
			StoredBalance: money(r.StoredBalance),
			LedgerBalance: money(r.LedgerBalance),
			InSync:        r.InSync(),
		},
	}
}

// ToAccountListResponse converts a list of accounts.
func ToAccountListResponse(accounts []*entity.Account) AccountListResponse {
	response := AccountListResponse{
		Accounts: make([]AccountResponse, len(accounts)),
	}
	for i, a := range accounts {
		response.Accounts[i] = ToAccountResponse(a)
	}
	return response
}
