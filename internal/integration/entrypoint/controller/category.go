package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/dto"
)

// CategoryController handles category endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	createUseCase *category.CreateCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
	}
}

// List handles GET /categories requests.
// Supports optional query parameter: type (expense|income)
func (c *CategoryController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	categoryType, ok := queryEnum(ctx, "type", string(entity.CategoryTypeExpense), string(entity.CategoryTypeIncome))
	if !ok {
		return
	}

	input := category.ListCategoriesInput{UserID: userID}
	if categoryType != "" {
		t := entity.CategoryType(categoryType)
		input.CategoryType = &t
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		respondError(ctx, err, "retrieve categories")
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRequest
	if !bindJSON(ctx, &req) {
		return
	}

	parentID, err := dto.ParseOptionalUUID(req.ParentID)
	if err != nil {
		badRequest(ctx, "Invalid parent ID format")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), category.CreateCategoryInput{
		UserID:   userID,
		Name:     req.Name,
		Type:     entity.CategoryType(req.Type),
		ParentID: parentID,
	})
	if err != nil {
		respondError(ctx, err, "create category")
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}
