package entity

import (
	"time"

	"github.com/google/uuid"
)

// CategoryType represents the type of category (expense or income).
type CategoryType string

const (
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeIncome  CategoryType = "income"
)

// MaxCategoryNameLength is the maximum length of a category name.
const MaxCategoryNameLength = 50

// Category groups transactions. A category with a ParentID is a subcategory; subcategories
// are one level deep.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	Type      CategoryType
	ParentID  *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(userID uuid.UUID, name string, categoryType CategoryType, parentID *uuid.UUID) *Category {
	now := time.Now().UTC()

	return &Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      categoryType,
		ParentID:  parentID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsSubcategory reports whether the category has a parent.
func (c *Category) IsSubcategory() bool {
	return c.ParentID != nil
}
