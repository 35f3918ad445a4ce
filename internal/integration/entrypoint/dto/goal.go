package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
)

// CreateGoalRequest represents the request body for savings goal creation.
type CreateGoalRequest struct {
	Name                     string           `json:"name" binding:"required,max=100"`
	TargetAmount             decimal.Decimal  `json:"target_amount" binding:"required,gt=0"`
	TargetDate               *string          `json:"target_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	AutoContributePercentage *decimal.Decimal `json:"auto_contribute_percentage,omitempty" binding:"omitempty,gt=0,lte=100"`
}

// ContributeRequest represents the request body for a goal contribution.
type ContributeRequest struct {
	AccountID string          `json:"account_id" binding:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" binding:"required,gt=0"`
	Date      *string         `json:"date,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateGoalStatusRequest represents the request body for a goal status change.
type UpdateGoalStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=in_progress achieved cancelled expired"`
}

// GoalResponse represents a single savings goal in API responses.
type GoalResponse struct {
	ID                       string    `json:"id"`
	Name                     string    `json:"name"`
	TargetAmount             string    `json:"target_amount"`
	CurrentAmount            string    `json:"current_amount"`
	TargetDate               *string   `json:"target_date,omitempty"`
	Status                   string    `json:"status"`
	Progress                 string    `json:"progress"`
	AutoContributePercentage *string   `json:"auto_contribute_percentage,omitempty"`
	Contributions            int       `json:"contributions"`
	CompletedAt              *string   `json:"completed_at,omitempty"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ContributionResponse represents the response of a goal contribution.
type ContributionResponse struct {
	Goal           GoalResponse        `json:"goal"`
	Transaction    TransactionResponse `json:"transaction"`
	Achieved       bool                `json:"achieved"`
	AccountBalance string              `json:"account_balance"`
}

// ToGoalResponse converts a goal view to a GoalResponse DTO.
func ToGoalResponse(view *goal.GoalView) GoalResponse {
	g := view.Goal
	response := GoalResponse{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  money(g.TargetAmount),
		CurrentAmount: money(g.CurrentAmount),
		TargetDate:    formatOptionalDate(g.TargetDate),
		Status:        string(view.EffectiveStatus),
		Progress:      view.Progress.StringFixed(2),
		Contributions: view.Contributions,
		CompletedAt:   formatOptionalDate(g.CompletedAt),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
	if g.AutoContributePercentage != nil {
		pct := g.AutoContributePercentage.String()
		response.AutoContributePercentage = &pct
	}
	return response
}

// ToGoalListResponse converts a list of goal views.
func ToGoalListResponse(views []*goal.GoalView) GoalListResponse {
	response := GoalListResponse{
		Goals: make([]GoalResponse, len(views)),
	}
	for i, v := range views {
		response.Goals[i] = ToGoalResponse(v)
	}
	return response
}

// ToContributionResponse converts a ContributeToGoalOutput.
func ToContributionResponse(output *goal.ContributeToGoalOutput) ContributionResponse {
	return ContributionResponse{
		Goal:           ToGoalResponse(output.Goal),
		Transaction:    ToTransactionResponse(output.Transaction),
		Achieved:       output.Achieved,
		AccountBalance: money(output.AccountBalance),
	}
}
