// Package category contains category-related use cases.
package category

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	UserID   uuid.UUID
	Name     string
	Type     entity.CategoryType
	ParentID *uuid.UUID // Optional, creates a subcategory
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category *entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	categoryRepo adapter.CategoryRepository
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(categoryRepo adapter.CategoryRepository) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		categoryRepo: categoryRepo,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameRequired,
			"category name is required",
			domainerror.ErrCategoryNameRequired,
		)
	}

	// Validate name length
	if len(name) > entity.MaxCategoryNameLength {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeCategoryNameTooLong,
			fmt.Sprintf("category name must not exceed %d characters", entity.MaxCategoryNameLength),
			domainerror.ErrCategoryNameTooLong,
		)
	}

	// Validate category type
	if input.Type != entity.CategoryTypeExpense && input.Type != entity.CategoryTypeIncome {
		return nil, domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			"category type must be 'expense' or 'income'",
			domainerror.ErrInvalidCategoryType,
		)
	}

	if input.ParentID != nil {
		if err := uc.validateParent(ctx, input.UserID, *input.ParentID, input.Type); err != nil {
			return nil, err
		}
	}

	category := entity.NewCategory(input.UserID, name, input.Type, input.ParentID)

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}

// validateParent checks that the parent exists, is a top-level category and has the same type.
func (uc *CreateCategoryUseCase) validateParent(ctx context.Context, userID, parentID uuid.UUID, categoryType entity.CategoryType) error {
	parent, err := uc.categoryRepo.FindByID(ctx, parentID, userID)
	if err != nil {
		if errors.Is(err, domainerror.ErrCategoryNotFound) {
			return domainerror.NewCategoryError(
				domainerror.ErrCodeParentCategoryNotFound,
				"parent category not found",
				domainerror.ErrParentCategoryNotFound,
			)
		}
		return fmt.Errorf("failed to find parent category: %w", err)
	}

	if parent.IsSubcategory() {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeNestedSubcategory,
			"subcategories cannot have children",
			domainerror.ErrNestedSubcategory,
		)
	}
	if parent.Type != categoryType {
		return domainerror.NewCategoryError(
			domainerror.ErrCodeInvalidCategoryType,
			fmt.Sprintf("subcategory type must match its parent (%s)", parent.Type),
			domainerror.ErrInvalidCategoryType,
		)
	}
	return nil
}
