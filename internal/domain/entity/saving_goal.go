package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalStatus represents the state of a savings goal.
type GoalStatus string

const (
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusAchieved   GoalStatus = "achieved"
	GoalStatusExpired    GoalStatus = "expired"
	GoalStatusCancelled  GoalStatus = "cancelled"
)

// IsValid checks if the goal status is known.
func (s GoalStatus) IsValid() bool {
	switch s {
	case GoalStatusInProgress, GoalStatusAchieved, GoalStatusExpired, GoalStatusCancelled:
		return true
	}
	return false
}

// SavingGoal earmarks money towards a target. CurrentAmount only grows through
// contributions and CompletedAt is stamped once, the first time the target is reached.
type SavingGoal struct {
	ID                       uuid.UUID
	UserID                   uuid.UUID
	Name                     string
	TargetAmount             decimal.Decimal
	CurrentAmount            decimal.Decimal
	TargetDate               *time.Time
	Status                   GoalStatus
	AutoContributePercentage *decimal.Decimal
	CompletedAt              *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// NewSavingGoal creates an in-progress goal with nothing saved.
func NewSavingGoal(
	userID uuid.UUID,
	name string,
	targetAmount decimal.Decimal,
	targetDate *time.Time,
	autoContributePercentage *decimal.Decimal,
) *SavingGoal {
	now := time.Now().UTC()

	return &SavingGoal{
		ID:                       uuid.New(),
		UserID:                   userID,
		Name:                     name,
		TargetAmount:             targetAmount,
		CurrentAmount:            decimal.Zero,
		TargetDate:               truncateOptionalDay(targetDate),
		Status:                   GoalStatusInProgress,
		AutoContributePercentage: autoContributePercentage,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
}

// AcceptsContributions reports whether the stored status allows new contributions.
func (g *SavingGoal) AcceptsContributions() bool {
	return g.Status == GoalStatusInProgress || g.Status == GoalStatusExpired
}

// Contribute adds amount to the goal and reports whether this contribution achieved it.
// Overshooting the target is allowed.
func (g *SavingGoal) Contribute(amount decimal.Decimal, at time.Time) bool {
	g.CurrentAmount = g.CurrentAmount.Add(amount)
	g.UpdatedAt = time.Now().UTC()
	return g.markAchievedIfReached(at)
}

// Withdraw removes a previously recorded contribution from an unachieved goal.
func (g *SavingGoal) Withdraw(amount decimal.Decimal) {
	g.CurrentAmount = g.CurrentAmount.Sub(amount)
	if g.CurrentAmount.IsNegative() {
		g.CurrentAmount = decimal.Zero
	}
	g.UpdatedAt = time.Now().UTC()
}

// HasReachedTarget reports whether the saved amount covers the target.
func (g *SavingGoal) HasReachedTarget() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Progress returns the saved share of the target as a percentage, capped at 100.
func (g *SavingGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	pct := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Round(2)
	return decimal.Min(pct, decimal.NewFromInt(100))
}

// EffectiveStatus returns the status as seen at asOf. An in-progress goal whose target
// date has passed is reported as expired.
func (g *SavingGoal) EffectiveStatus(asOf time.Time) GoalStatus {
	if g.Status == GoalStatusInProgress && IsPastDue(g.TargetDate, asOf) {
		return GoalStatusExpired
	}
	return g.Status
}

// CanTransitionTo reports whether a status change may be requested directly.
// Only in_progress and cancelled are interchangeable; achieved is additionally reachable
// when the target is covered. Expired is never set by request.
func (g *SavingGoal) CanTransitionTo(next GoalStatus) bool {
	switch next {
	case GoalStatusCancelled:
		return g.Status == GoalStatusInProgress || g.Status == GoalStatusExpired
	case GoalStatusInProgress:
		return g.Status == GoalStatusCancelled
	case GoalStatusAchieved:
		return g.Status != GoalStatusCancelled
	}
	return false
}

// SetStatus applies a status change previously checked with CanTransitionTo.
func (g *SavingGoal) SetStatus(next GoalStatus, at time.Time) {
	if next == GoalStatusAchieved {
		g.markAchievedIfReached(at)
		return
	}
	g.Status = next
	g.UpdatedAt = time.Now().UTC()
}

func (g *SavingGoal) markAchievedIfReached(at time.Time) bool {
	if !g.HasReachedTarget() || g.Status == GoalStatusAchieved {
		return false
	}
	g.Status = GoalStatusAchieved
	if g.CompletedAt == nil {
		stamped := at.UTC()
		g.CompletedAt = &stamped
	}
	g.UpdatedAt = time.Now().UTC()
	return true
}
