package ledger

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// LockAccount locks an account for the rest of the unit of work. A missing account is
// reported as a coded not-found error.
func LockAccount(ctx context.Context, repo adapter.AccountRepository, id uuid.UUID) (*entity.Account, error) {
	account, err := repo.FindByIDForUpdate(ctx, id)
	if err != nil {
		return nil, AccountLookupError(err)
	}
	return account, nil
}

// AccountLookupError converts a failed account lookup into the error returned to callers.
func AccountLookupError(err error) error {
	if errors.Is(err, domainerror.ErrAccountNotFound) {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	return fmt.Errorf("failed to find account: %w", err)
}

// RequireUsable checks that userID may post to account. Accounts of other users are
// reported as not found so that their existence is not disclosed.
func RequireUsable(account *entity.Account, userID uuid.UUID) error {
	if account.UserID != userID {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountNotFound,
			"account not found",
			domainerror.ErrAccountNotFound,
		)
	}
	if !account.IsActive {
		return domainerror.NewAccountError(
			domainerror.ErrCodeAccountInactive,
			"account is inactive",
			domainerror.ErrAccountInactive,
		)
	}
	return nil
}
