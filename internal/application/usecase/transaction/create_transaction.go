// Package transaction contains ledger use cases: recording, listing and reversing
// transactions, and transfers between accounts.
package transaction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/ledger"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/domain/valueobject"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	UserID        uuid.UUID
	AccountID     uuid.UUID
	Type          entity.TransactionType
	Amount        decimal.Decimal
	CategoryID    *uuid.UUID
	SubcategoryID *uuid.UUID
	Date          *time.Time // Optional, defaults to today
	Description   string
	Notes         string
	AttachmentIDs []string
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction    *entity.Transaction
	AccountBalance decimal.Decimal
}

// CreateTransactionUseCase records income and expenses. Every other transaction type is
// recorded by the operation of the subsystem it belongs to.
type CreateTransactionUseCase struct {
	uow          adapter.UnitOfWork
	categoryRepo adapter.CategoryRepository
	clock        adapter.Clock
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(
	uow adapter.UnitOfWork,
	categoryRepo adapter.CategoryRepository,
	clock adapter.Clock,
) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		uow:          uow,
		categoryRepo: categoryRepo,
		clock:        clock,
	}
}

// Execute validates the input, then applies the balance effect and appends the ledger row
// in one unit of work.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	// Validate transaction type
	if !input.Type.IsValid() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionType,
			"invalid transaction type",
			domainerror.ErrInvalidTransactionType,
		)
	}
	if !input.Type.IsDirect() {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTransactionTypeNotDirect,
			fmt.Sprintf("%s transactions are recorded through their own operation", input.Type),
			domainerror.ErrTransactionTypeNotDirect,
		)
	}

	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}
	if err := validateText(input.Description, input.Notes); err != nil {
		return nil, err
	}
	if len(input.AttachmentIDs) > entity.MaxAttachments {
		return nil, domainerror.NewTransactionError(
			domainerror.ErrCodeTooManyAttachments,
			fmt.Sprintf("a transaction can have at most %d attachments", entity.MaxAttachments),
			domainerror.ErrTooManyAttachments,
		)
	}

	if err := uc.validateCategories(ctx, input.UserID, input.CategoryID, input.SubcategoryID); err != nil {
		return nil, err
	}

	date := uc.clock.Now()
	if input.Date != nil {
		date = *input.Date
	}

	txn := entity.NewTransaction(input.UserID, input.AccountID, input.Type, input.Amount, date, input.Description)
	txn.CategoryID = input.CategoryID
	txn.SubcategoryID = input.SubcategoryID
	txn.Notes = input.Notes
	txn.AttachmentIDs = input.AttachmentIDs

	var balance decimal.Decimal
	err := uc.uow.Do(ctx, func(ctx context.Context, repos adapter.Repositories) error {
		account, err := ledger.LockAccount(ctx, repos.Accounts, input.AccountID)
		if err != nil {
			return err
		}
		if err := ledger.RequireUsable(account, input.UserID); err != nil {
			return err
		}

		if err := ledger.Post(ctx, repos, account, txn); err != nil {
			return err
		}
		balance = account.Balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &CreateTransactionOutput{
		Transaction:    txn,
		AccountBalance: balance,
	}, nil
}

// validateCategories checks that the category belongs to the user and that the
// subcategory, if any, is one of its children.
func (uc *CreateTransactionUseCase) validateCategories(ctx context.Context, userID uuid.UUID, categoryID, subcategoryID *uuid.UUID) error {
	if categoryID == nil {
		if subcategoryID != nil {
			return domainerror.NewTransactionError(
				domainerror.ErrCodeSubcategoryMismatch,
				"a subcategory requires its parent category",
				domainerror.ErrSubcategoryMismatch,
			)
		}
		return nil
	}

	if _, err := uc.findCategory(ctx, *categoryID, userID); err != nil {
		return err
	}

	if subcategoryID == nil {
		return nil
	}
	subcategory, err := uc.findCategory(ctx, *subcategoryID, userID)
	if err != nil {
		return err
	}
	if subcategory.ParentID == nil || *subcategory.ParentID != *categoryID {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeSubcategoryMismatch,
			"subcategory does not belong to the category",
			domainerror.ErrSubcategoryMismatch,
		)
	}
	return nil
}

func (uc *CreateTransactionUseCase) findCategory(ctx context.Context, id, userID uuid.UUID) (*entity.Category, error) {
	category, err := uc.categoryRepo.FindByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return nil, domainerror.NewTransactionError(
				domainerror.ErrCodeTxnCategoryNotFound,
				"category not found",
				domainerror.ErrCategoryNotFoundForTransaction,
			)
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return category, nil
}

func validateAmount(amount decimal.Decimal) error {
	if !valueobject.IsValidAmount(amount) {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"amount must be a positive amount of whole cents",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	return nil
}

func validateText(description, notes string) error {
	if len(description) > entity.MaxDescriptionLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeDescriptionTooLong,
			fmt.Sprintf("description must not exceed %d characters", entity.MaxDescriptionLength),
			domainerror.ErrDescriptionTooLong,
		)
	}
	if len(notes) > entity.MaxNotesLength {
		return domainerror.NewTransactionError(
			domainerror.ErrCodeNotesTooLong,
			fmt.Sprintf("notes must not exceed %d characters", entity.MaxNotesLength),
			domainerror.ErrNotesTooLong,
		)
	}
	return nil
}
