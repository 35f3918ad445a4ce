package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// goalRepository implements the adapter.GoalRepository interface.
type goalRepository struct {
	db *gorm.DB
}

// NewGoalRepository creates a new goal repository instance.
func NewGoalRepository(db *gorm.DB) adapter.GoalRepository {
	return &goalRepository{
		db: db,
	}
}

// Create creates a new goal in the database.
func (r *goalRepository) Create(ctx context.Context, goal *entity.SavingGoal) error {
	return r.db.WithContext(ctx).Create(model.SavingGoalFromEntity(goal)).Error
}

// FindByID retrieves a goal owned by userID.
func (r *goalRepository) FindByID(ctx context.Context, id, userID uuid.UUID) (*entity.SavingGoal, error) {
	return r.findByID(r.db.WithContext(ctx), id, userID)
}

// FindByIDForUpdate retrieves a goal owned by userID and locks the row.
func (r *goalRepository) FindByIDForUpdate(ctx context.Context, id, userID uuid.UUID) (*entity.SavingGoal, error) {
	return r.findByID(forUpdate(r.db.WithContext(ctx)), id, userID)
}

func (r *goalRepository) findByID(db *gorm.DB, id, userID uuid.UUID) (*entity.SavingGoal, error) {
	var goalModel model.SavingGoalModel
	result := db.Where("id = ? AND user_id = ?", id, userID).First(&goalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGoalNotFound
		}
		return nil, result.Error
	}
	return goalModel.ToEntity(), nil
}

// FindByUser retrieves all goals of a user, newest first.
func (r *goalRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.SavingGoal, error) {
	var goalModels []model.SavingGoalModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goalModels).Error
	if err != nil {
		return nil, err
	}

	goals := make([]*entity.SavingGoal, len(goalModels))
	for i := range goalModels {
		goals[i] = goalModels[i].ToEntity()
	}
	return goals, nil
}

// Update persists amount, status and completion changes.
func (r *goalRepository) Update(ctx context.Context, goal *entity.SavingGoal) error {
	result := r.db.WithContext(ctx).
		Model(&model.SavingGoalModel{}).
		Where("id = ?", goal.ID).
		Updates(map[string]interface{}{
			"current_amount": goal.CurrentAmount,
			"status":         string(goal.Status),
			"completed_at":   goal.CompletedAt,
			"updated_at":     goal.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrGoalNotFound
	}
	return nil
}
