package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// SavingGoalModel represents the saving_goals table in the database.
type SavingGoalModel struct {
	ID                       uuid.UUID        `gorm:"type:uuid;primaryKey"`
	UserID                   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name                     string           `gorm:"type:varchar(100);not null"`
	TargetAmount             decimal.Decimal  `gorm:"type:decimal(15,2);not null"`
	CurrentAmount            decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	TargetDate               *time.Time       `gorm:"type:date"`
	Status                   string           `gorm:"type:varchar(15);not null;index"`
	AutoContributePercentage *decimal.Decimal `gorm:"type:decimal(5,2)"`
	CompletedAt              *time.Time       `gorm:"type:timestamp"`
	CreatedAt                time.Time        `gorm:"not null"`
	UpdatedAt                time.Time        `gorm:"not null"`
}

// TableName returns the table name for the SavingGoalModel.
func (SavingGoalModel) TableName() string {
	return "saving_goals"
}

// ToEntity converts a SavingGoalModel to a domain SavingGoal entity.
func (m *SavingGoalModel) ToEntity() *entity.SavingGoal {
	return &entity.SavingGoal{
		ID:                       m.ID,
		UserID:                   m.UserID,
		Name:                     m.Name,
		TargetAmount:             m.TargetAmount,
		CurrentAmount:            m.CurrentAmount,
		TargetDate:               m.TargetDate,
		Status:                   entity.GoalStatus(m.Status),
		AutoContributePercentage: m.AutoContributePercentage,
		CompletedAt:              m.CompletedAt,
		CreatedAt:                m.CreatedAt,
		UpdatedAt:                m.UpdatedAt,
	}
}

// SavingGoalFromEntity creates a SavingGoalModel from a domain SavingGoal entity.
func SavingGoalFromEntity(goal *entity.SavingGoal) *SavingGoalModel {
	return &SavingGoalModel{
		ID:                       goal.ID,
		UserID:                   goal.UserID,
		Name:                     goal.Name,
		TargetAmount:             goal.TargetAmount,
		CurrentAmount:            goal.CurrentAmount,
		TargetDate:               goal.TargetDate,
		Status:                   string(goal.Status),
		AutoContributePercentage: goal.AutoContributePercentage,
		CompletedAt:              goal.CompletedAt,
		CreatedAt:                goal.CreatedAt,
		UpdatedAt:                goal.UpdatedAt,
	}
}
