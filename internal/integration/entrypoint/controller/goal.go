package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// GoalController handles savings goal endpoints.
type GoalController struct {
	createUseCase       *goal.CreateGoalUseCase
	listUseCase         *goal.ListGoalsUseCase
	getUseCase          *goal.GetGoalUseCase
	contributeUseCase   *goal.ContributeToGoalUseCase
	updateStatusUseCase *goal.UpdateGoalStatusUseCase
}

// NewGoalController creates a new goal controller instance.
func NewGoalController(
	createUseCase *goal.CreateGoalUseCase,
	listUseCase *goal.ListGoalsUseCase,
	getUseCase *goal.GetGoalUseCase,
	contributeUseCase *goal.ContributeToGoalUseCase,
	updateStatusUseCase *goal.UpdateGoalStatusUseCase,
) *GoalController {
	return &GoalController{
		createUseCase:       createUseCase,
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		contributeUseCase:   contributeUseCase,
		updateStatusUseCase: updateStatusUseCase,
	}
}

// Create handles POST /goals requests.
func (c *GoalController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateGoalRequest
	if !bindJSON(ctx, &req) {
		return
	}

	targetDate, _ := dto.ParseOptionalDate(req.TargetDate)

	output, err := c.createUseCase.Execute(ctx.Request.Context(), goal.CreateGoalInput{
		UserID:                   userID,
		Name:                     req.Name,
		TargetAmount:             req.TargetAmount,
		TargetDate:               targetDate,
		AutoContributePercentage: req.AutoContributePercentage,
	})
	if err != nil {
		respondError(ctx, err, "create goal")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGoalResponse(goal.NewGoalView(output.Goal, output.Goal.CreatedAt)))
}

// List handles GET /goals requests with an optional status filter.
func (c *GoalController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	status, ok := queryEnum(ctx, "status",
		string(entity.GoalStatusInProgress), string(entity.GoalStatusAchieved),
		string(entity.GoalStatusCancelled), string(entity.GoalStatusExpired))
	if !ok {
		return
	}

	input := goal.ListGoalsInput{UserID: userID}
	if status != "" {
		s := entity.GoalStatus(status)
		input.Status = &s
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "retrieve goals")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalListResponse(output.Goals))
}

// Get handles GET /goals/:id requests.
func (c *GoalController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(ctx, "id", "goal")
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), goal.GetGoalInput{
		UserID: userID,
		GoalID: goalID,
	})
	if err != nil {
		respondError(ctx, err, "retrieve goal")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}

// Contribute handles POST /goals/:id/contributions requests.
func (c *GoalController) Contribute(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(ctx, "id", "goal")
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	accountID, _ := uuid.Parse(req.AccountID)
	date, _ := dto.ParseOptionalDate(req.Date)

	output, err := c.contributeUseCase.Execute(ctx.Request.Context(), goal.ContributeToGoalInput{
		UserID:    userID,
		GoalID:    goalID,
		AccountID: accountID,
		Amount:    req.Amount,
		Date:      date,
	})
	if err != nil {
		respondError(ctx, err, "contribute to goal")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToContributionResponse(output))
}

// UpdateStatus handles PATCH /goals/:id/status requests.
func (c *GoalController) UpdateStatus(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	goalID, ok := parseIDParam(ctx, "id", "goal")
	if !ok {
		return
	}

	var req dto.UpdateGoalStatusRequest
	if !bindJSON(ctx, &req) {
		return
	}

	output, err := c.updateStatusUseCase.Execute(ctx.Request.Context(), goal.UpdateGoalStatusInput{
		UserID: userID,
		GoalID: goalID,
		Status: entity.GoalStatus(req.Status),
	})
	if err != nil {
		respondError(ctx, err, "update goal status")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGoalResponse(output.Goal))
}
