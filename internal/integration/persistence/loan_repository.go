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

// loanRepository implements the adapter.LoanRepository interface.
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository instance.
func NewLoanRepository(db *gorm.DB) adapter.LoanRepository {
	return &loanRepository{
		db: db,
	}
}

// Create creates a new loan in the database.
func (r *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	return r.db.WithContext(ctx).Create(model.LoanFromEntity(loan)).Error
}

// FindByID retrieves a loan owned by userID.
func (r *loanRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Loan, error) {
	return r.findByID(r.db.WithContext(ctx), id, userID)
}

// FindByIDForUpdate retrieves a loan owned by userID and locks the row.
func (r *loanRepository) FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Loan, error) {
	return r.findByID(forUpdate(r.db.WithContext(ctx)), id, userID)
}

func (r *loanRepository) findByID(db *gorm.DB, id, userID uuid.UUID) (*entity.Loan, error) {
	var loanModel model.LoanModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&loanModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrLoanNotFound
		}
		return nil, result.Error
	}
	return loanModel.ToEntity(), nil
}

// FindByUser retrieves all loans of a user, soonest due first.
func (r *loanRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Loan, error) {
	var loanModels []model.LoanModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date IS NULL, due_date ASC, created_at DESC").
		Find(&loanModels).Error
	if err != nil {
		return nil, err
	}
	return loansToEntities(loanModels), nil
}

// Update persists remaining amount and status.
func (r *loanRepository) Update(ctx context.Context, loan *entity.Loan) error {
	result := r.db.WithContext(ctx).
		Model(&model.LoanModel{}).
		Where("id = ?", loan.ID).
		Updates(map[string]interface{}{
			"remaining_amount": loan.RemainingAmount,
			"status":           string(loan.Status),
			"updated_at":       loan.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrLoanNotFound
	}
	return nil
}

// FindNewlyOverdue retrieves unpaid loans past due that are not marked overdue yet.
func (r *loanRepository) FindNewlyOverdue(ctx context.Context, asOf time.Time, limit int) ([]*entity.Loan, error) {
	var loanModels []model.LoanModel
	err := r.db.WithContext(ctx).
		Where("status IN ? AND due_date IS NOT NULL AND due_date < ?",
			[]string{string(entity.LoanStatusActive), string(entity.LoanStatusPartial)},
			entity.TruncateToDay(asOf)).
		Order("due_date ASC").
		Limit(limit).
		Find(&loanModels).Error
	if err != nil {
		return nil, err
	}
	return loansToEntities(loanModels), nil
}

func loansToEntities(loanModels []model.LoanModel) []*entity.Loan {
	loans := make([]*entity.Loan, len(loanModels))
	for i := range loanModels {
		loans[i] = loanModels[i].ToEntity()
	}
	return loans
}
