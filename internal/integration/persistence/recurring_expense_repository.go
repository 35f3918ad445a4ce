package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// recurringExpenseRepository implements the adapter.RecurringExpenseRepository interface.
type recurringExpenseRepository struct {
	db *gorm.DB
}

// NewRecurringExpenseRepository creates a new recurring expense repository instance.
func NewRecurringExpenseRepository(db *gorm.DB) adapter.RecurringExpenseRepository {
	return &recurringExpenseRepository{
		db: db,
	}
}

// Create creates a new recurring expense in the database.
func (r *recurringExpenseRepository) Create(ctx context.Context, expense *entity.RecurringExpense) error {
	return r.db.WithContext(ctx).Create(model.RecurringExpenseFromEntity(expense)).Error
}

// FindByID retrieves a recurring expense owned by userID.
func (r *recurringExpenseRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringExpense, error) {
	return r.findByID(r.db.WithContext(ctx), id, userID)
}

// FindByIDForUpdate retrieves a recurring expense owned by userID and locks the row.
func (r *recurringExpenseRepository) FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.RecurringExpense, error) {
	return r.findByID(forUpdate(r.db.WithContext(ctx)), id, userID)
}

func (r *recurringExpenseRepository) findByID(db *gorm.DB, id, userID uuid.UUID) (*entity.RecurringExpense, error) {
	var expenseModel model.RecurringExpenseModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&expenseModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrRecurringExpenseNotFound
		}
		return nil, result.Error
	}
	return expenseModel.ToEntity(), nil
}

// FindByUser retrieves all recurring expenses of a user ordered by next charge date.
func (r *recurringExpenseRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.RecurringExpense, error) {
	var expenseModels []model.RecurringExpenseModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("next_charge_date ASC, name ASC").
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}
	return recurringToEntities(expenseModels), nil
}

// Update persists schedule and status changes.
func (r *recurringExpenseRepository) Update(ctx context.Context, expense *entity.RecurringExpense) error {
	result := r.db.WithContext(ctx).
		Model(&model.RecurringExpenseModel{}).
		Where("id = ?", expense.ID).
		Updates(map[string]interface{}{
			"next_charge_date": expense.NextChargeDate,
			"last_charge_date": expense.LastChargeDate,
			"status":           string(expense.Status),
			"updated_at":       expense.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrRecurringExpenseNotFound
	}
	return nil
}

// FindDue retrieves active expenses whose next charge date is on or before asOf.
func (r *recurringExpenseRepository) FindDue(ctx context.Context, asOf time.Time, limit int) ([]*entity.RecurringExpense, error) {
	var expenseModels []model.RecurringExpenseModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND next_charge_date <= ?", string(entity.RecurringStatusActive), entity.TruncateToDay(asOf)).
		Order("next_charge_date ASC").
		Limit(limit).
		Find(&expenseModels).Error
	if err != nil {
		return nil, err
	}
	return recurringToEntities(expenseModels), nil
}

func recurringToEntities(expenseModels []model.RecurringExpenseModel) []*entity.RecurringExpense {
	expenses := make([]*entity.RecurringExpense, len(expenseModels))
	for i := range expenseModels {
		expenses[i] = expenseModels[i].ToEntity()
	}
	return expenses
}
