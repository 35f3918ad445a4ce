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

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create saves a debt and its installments in one transaction.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt, installments []*entity.DebtInstallment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Installments").Create(model.DebtFromEntity(debt)).Error; err != nil {
			return err
		}
		if len(installments) == 0 {
			return nil
		}

		installmentModels := make([]*model.DebtInstallmentModel, len(installments))
		for i, inst := range installments {
			installmentModels[i] = model.DebtInstallmentFromEntity(inst)
		}
		return tx.Create(&installmentModels).Error
	})
}

// FindByID retrieves a debt owned by userID.
func (r *debtRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.Debt, error) {
	return r.findByID(r.db.WithContext(ctx), id, userID)
}

// FindByIDForUpdate retrieves a debt owned by userID and locks the row.
func (r *debtRepository) FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.Debt, error) {
	return r.findByID(forUpdate(r.db.WithContext(ctx)), id, userID)
}

func (r *debtRepository) findByID(db *gorm.DB, id, userID uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindByUser retrieves all debts of a user, soonest due first.
func (r *debtRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("due_date IS NULL, due_date ASC, created_at DESC").
		Find(&debtModels).Error
	if err != nil {
		return nil, err
	}
	return debtsToEntities(debtModels), nil
}

// Update persists remaining amount and status.
func (r *debtRepository) Update(ctx context.Context, debt *entity.Debt) error {
	result := r.db.WithContext(ctx).
		Model(&model.DebtModel{}).
		Where("id = ?", debt.ID).
		Updates(map[string]interface{}{
			"remaining_amount": debt.RemainingAmount,
			"status":           string(debt.Status),
			"updated_at":       debt.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrDebtNotFound
	}
	return nil
}

// FindInstallments retrieves the installments of a debt ordered by number.
func (r *debtRepository) FindInstallments(ctx context.Context, debtID uuid.UUID) ([]*entity.DebtInstallment, error) {
	var installmentModels []model.DebtInstallmentModel
	err := r.db.WithContext(ctx).
		Where("debt_id = ?", debtID).
		Order("number ASC").
		Find(&installmentModels).Error
	if err != nil {
		return nil, err
	}

	installments := make([]*entity.DebtInstallment, len(installmentModels))
	for i := range installmentModels {
		installments[i] = installmentModels[i].ToEntity()
	}
	return installments, nil
}

// UpdateInstallments persists paid amounts of installments.
func (r *debtRepository) UpdateInstallments(ctx context.Context, installments []*entity.DebtInstallment) error {
	db := r.db.WithContext(ctx)
	for _, inst := range installments {
		err := db.Model(&model.DebtInstallmentModel{}).
			Where("id = ?", inst.ID).
			Updates(map[string]interface{}{
				"paid_amount": inst.PaidAmount,
				"paid_at":     inst.PaidAt,
			}).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// FindNewlyOverdue retrieves unpaid debts past due that are still marked active.
func (r *debtRepository) FindNewlyOverdue(ctx context.Context, asOf time.Time, limit int) ([]*entity.Debt, error) {
	var debtModels []model.DebtModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?", string(entity.DebtStatusActive), entity.TruncateToDay(asOf)).
		Order("due_date ASC").
		Limit(limit).
		Find(&debtModels).Error
	if err != nil {
		return nil, err
	}
	return debtsToEntities(debtModels), nil
}

func debtsToEntities(debtModels []model.DebtModel) []*entity.Debt {
	debts := make([]*entity.Debt, len(debtModels))
	for i := range debtModels {
		debts[i] = debtModels[i].ToEntity()
	}
	return debts
}
