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

// pendingPaymentRepository implements the adapter.PendingPaymentRepository interface.
type pendingPaymentRepository struct {
	db *gorm.DB
}

// NewPendingPaymentRepository creates a new pending payment repository instance.
func NewPendingPaymentRepository(db *gorm.DB) adapter.PendingPaymentRepository {
	return &pendingPaymentRepository{
		db: db,
	}
}

// Create creates a new pending payment in the database.
func (r *pendingPaymentRepository) Create(ctx context.Context, payment *entity.PendingPayment) error {
	return r.db.WithContext(ctx).Create(model.PendingPaymentFromEntity(payment)).Error
}

// FindByID retrieves a pending payment owned by userID.
func (r *pendingPaymentRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.PendingPayment, error) {
	return r.findByID(r.db.WithContext(ctx), id, userID)
}

// FindByIDForUpdate retrieves a pending payment owned by userID and locks the row.
func (r *pendingPaymentRepository) FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.PendingPayment, error) {
	return r.findByID(forUpdate(r.db.WithContext(ctx)), id, userID)
}

func (r *pendingPaymentRepository) findByID(db *gorm.DB, id, userID uuid.UUID) (*entity.PendingPayment, error) {
	var paymentModel model.PendingPaymentModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&paymentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrPendingPaymentNotFound
		}
		return nil, result.Error
	}
	return paymentModel.ToEntity(), nil
}

// FindByUser retrieves a user's pending payments, soonest due first.
// An empty statuses slice returns every payment.
func (r *pendingPaymentRepository) FindByUser(ctx context.Context, userID uuid.UUID, statuses []entity.PendingPaymentStatus) ([]*entity.PendingPayment, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if len(statuses) > 0 {
		values := make([]string, len(statuses))
		for i, s := range statuses {
			values[i] = string(s)
		}
		query = query.Where("status IN ?", values)
	}

	var paymentModels []model.PendingPaymentModel
	err := query.
		Order("due_date IS NULL, due_date ASC, created_at DESC").
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}
	return pendingPaymentsToEntities(paymentModels), nil
}

// Update persists status, settlement and reminder changes.
func (r *pendingPaymentRepository) Update(ctx context.Context, payment *entity.PendingPayment) error {
	result := r.db.WithContext(ctx).
		Model(&model.PendingPaymentModel{}).
		Where("id = ?", payment.ID).
		Updates(map[string]interface{}{
			"status":           string(payment.Status),
			"transaction_id":   payment.TransactionID,
			"paid_date":        payment.PaidDate,
			"reminder_sent_at": payment.ReminderSentAt,
			"updated_at":       payment.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrPendingPaymentNotFound
	}
	return nil
}

// FindNewlyOverdue retrieves payments past their due date that are still stored as pending.
func (r *pendingPaymentRepository) FindNewlyOverdue(ctx context.Context, asOf time.Time, limit int) ([]*entity.PendingPayment, error) {
	var paymentModels []model.PendingPaymentModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND due_date IS NOT NULL AND due_date < ?",
			string(entity.PendingPaymentStatusPending), entity.TruncateToDay(asOf)).
		Order("due_date ASC").
		Limit(limit).
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}
	return pendingPaymentsToEntities(paymentModels), nil
}

// FindAwaitingReminder retrieves overdue payments with a reminder address and no reminder sent.
func (r *pendingPaymentRepository) FindAwaitingReminder(ctx context.Context, limit int) ([]*entity.PendingPayment, error) {
	var paymentModels []model.PendingPaymentModel
	err := r.db.WithContext(ctx).
		Where("status = ? AND reminder_email <> '' AND reminder_sent_at IS NULL",
			string(entity.PendingPaymentStatusOverdue)).
		Order("due_date ASC").
		Limit(limit).
		Find(&paymentModels).Error
	if err != nil {
		return nil, err
	}
	return pendingPaymentsToEntities(paymentModels), nil
}

func pendingPaymentsToEntities(paymentModels []model.PendingPaymentModel) []*entity.PendingPayment {
	payments := make([]*entity.PendingPayment, len(paymentModels))
	for i := range paymentModels {
		payments[i] = paymentModels[i].ToEntity()
	}
	return payments
}
