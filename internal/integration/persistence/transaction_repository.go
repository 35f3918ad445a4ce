package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction in the database.
func (r *transactionRepository) Create(ctx context.Context, transaction *entity.Transaction) error {
	return r.db.WithContext(ctx).Create(model.TransactionFromEntity(transaction)).Error
}

// FindByID retrieves a transaction owned by userID.
func (r *transactionRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Transaction, error) {
	var transactionModel model.TransactionModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&transactionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return transactionModel.ToEntity(), nil
}

// Delete soft-deletes a transaction. Soft-deleted rows are excluded from every aggregate.
func (r *transactionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.TransactionModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTransactionNotFound
	}
	return nil
}

// List retrieves transactions matching filter, newest first.
func (r *transactionRepository) List(ctx context.Context, userID uuid.UUID, filter entity.TransactionFilter) ([]*entity.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.TransactionModel{}).Where("user_id = ?", userID)

	if filter.AccountID != nil {
		query = query.Where("(account_id = ? OR counterpart_account_id = ?)", *filter.AccountID, *filter.AccountID)
	}
	if len(filter.Types) > 0 {
		types := make([]string, len(filter.Types))
		for i, t := range filter.Types {
			types[i] = string(t)
		}
		query = query.Where("type IN ?", types)
	}
	if filter.StartDate != nil {
		query = query.Where("transaction_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("transaction_date <= ?", *filter.EndDate)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}

	var transactionModels []model.TransactionModel
	err := query.
		Order("transaction_date DESC, created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&transactionModels).Error
	if err != nil {
		return nil, 0, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = transactionModels[i].ToEntity()
	}
	return transactions, total, nil
}

// SummarizeByDebt aggregates debt payments and settlements linked to a debt.
func (r *transactionRepository) SummarizeByDebt(ctx context.Context, debtID uuid.UUID) (*entity.PaymentSummary, error) {
	return r.summarize(ctx, "debt_id = ?", debtID,
		entity.TransactionTypeDebtPayment, entity.TransactionTypePendingPayment)
}

// SummarizeByLoan aggregates loan payments and settlements linked to a loan.
func (r *transactionRepository) SummarizeByLoan(ctx context.Context, loanID uuid.UUID) (*entity.PaymentSummary, error) {
	return r.summarize(ctx, "loan_id = ?", loanID,
		entity.TransactionTypeLoanPayment, entity.TransactionTypePendingPayment)
}

// SummarizeByGoal aggregates contributions to a savings goal.
func (r *transactionRepository) SummarizeByGoal(ctx context.Context, goalID uuid.UUID) (*entity.PaymentSummary, error) {
	return r.summarize(ctx, "goal_id = ?", goalID, entity.TransactionTypeGoalContribution)
}

func (r *transactionRepository) summarize(ctx context.Context, where string, id uuid.UUID, types ...entity.TransactionType) (*entity.PaymentSummary, error) {
	typeNames := make([]string, len(types))
	for i, t := range types {
		typeNames[i] = string(t)
	}

	base := r.db.WithContext(ctx).
		Model(&model.TransactionModel{}).
		Where(where, id).
		Where("type IN ?", typeNames)

	var totals struct {
		Total decimal.Decimal
		Count int64
	}
	err := base.Session(&gorm.Session{}).
		Select("COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count").
		Scan(&totals).Error
	if err != nil {
		return nil, err
	}

	summary := &entity.PaymentSummary{
		Total: totals.Total,
		Count: int(totals.Count),
	}
	if totals.Count == 0 {
		return summary, nil
	}

	// The latest row is read as a full column so the driver keeps the date type.
	var latest model.TransactionModel
	err = base.Session(&gorm.Session{}).
		Select("transaction_date").
		Order("transaction_date DESC").
		Limit(1).
		Find(&latest).Error
	if err != nil {
		return nil, err
	}
	lastDate := latest.TransactionDate
	summary.LastDate = &lastDate

	return summary, nil
}
