// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/usecase/expense"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
	"github.com/university-finance/backend/internal/integration/cache"
	"github.com/university-finance/backend/internal/integration/entrypoint/dto"
	"github.com/university-finance/backend/internal/integration/entrypoint/middleware"
)

// ExpenseController handles expense endpoints.
type ExpenseController struct {
	createUseCase *expense.CreateExpenseUseCase
	listUseCase   *expense.ListExpensesUseCase
	getUseCase    *expense.GetExpenseUseCase
	updateUseCase *expense.UpdateExpenseUseCase
	deleteUseCase *expense.DeleteExpenseUseCase
	responseCache *cache.ResponseCache
}

// NewExpenseController creates a new expense controller instance.
func NewExpenseController(
	createUseCase *expense.CreateExpenseUseCase,
	listUseCase *expense.ListExpensesUseCase,
	getUseCase *expense.GetExpenseUseCase,
	updateUseCase *expense.UpdateExpenseUseCase,
	deleteUseCase *expense.DeleteExpenseUseCase,
	responseCache *cache.ResponseCache,
) *ExpenseController {
	return &ExpenseController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		responseCache: responseCache,
	}
}

// List handles GET /expenses requests with envelope-level caching.
func (c *ExpenseController) List(ctx *gin.Context) {
	key := cache.ExpenseListKey(cache.ExpenseListParams{
		Page:      ctx.Query("page"),
		Limit:     ctx.Query("limit"),
		Search:    ctx.Query("search"),
		Category:  ctx.Query("category"),
		Vendor:    ctx.Query("vendor"),
		StartDate: ctx.Query("startDate"),
		EndDate:   ctx.Query("endDate"),
	})
	if envelope, ok := c.responseCache.Fetch(ctx.Request.Context(), key); ok {
		ctx.JSON(http.StatusOK, envelope)
		return
	}

	input := expense.ListExpensesInput{
		Vendor: ctx.Query("vendor"),
		Search: ctx.Query("search"),
	}

	if categoryStr := ctx.Query("category"); categoryStr != "" {
		category := entity.ExpenseCategory(categoryStr)
		if !category.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid expense category"))
			return
		}
		input.Category = &category
	}
	if startDateStr := ctx.Query("startDate"); startDateStr != "" {
		startDate, err := time.Parse("2006-01-02", startDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid startDate format. Use YYYY-MM-DD"))
			return
		}
		input.StartDate = &startDate
	}
	if endDateStr := ctx.Query("endDate"); endDateStr != "" {
		endDate, err := time.Parse("2006-01-02", endDateStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid endDate format. Use YYYY-MM-DD"))
			return
		}
		input.EndDate = &endDate
	}
	if pageStr := ctx.Query("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			input.Page = page
		}
	}
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil {
			input.Limit = limit
		}
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve expenses"))
		return
	}

	envelope := dto.Success(dto.ToExpenseListResponse(output))
	c.responseCache.Store(ctx.Request.Context(), key, envelope, cache.ListTTL)
	ctx.JSON(http.StatusOK, envelope)
}

// Create handles POST /expenses requests.
func (c *ExpenseController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	var req dto.CreateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid date format. Use YYYY-MM-DD"))
		return
	}

	input := expense.CreateExpenseInput{
		Amount:      decimal.NewFromFloat(req.Amount),
		Description: req.Description,
		Category:    entity.ExpenseCategory(req.Category),
		Vendor:      req.Vendor,
		ReceiptURL:  req.ReceiptURL,
		Date:        date,
		CreatedBy:   userID,
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Success(dto.ToExpenseResponse(created)))
}

// Get handles GET /expenses/:id requests.
func (c *ExpenseController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid expense ID format"))
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(dto.ToExpenseResponse(found)))
}

// Update handles PUT /expenses/:id requests.
func (c *ExpenseController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid expense ID format"))
		return
	}

	var req dto.UpdateExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	input := expense.UpdateExpenseInput{
		ID:          id,
		Description: req.Description,
		Vendor:      req.Vendor,
		ReceiptURL:  req.ReceiptURL,
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.Category != nil {
		category := entity.ExpenseCategory(*req.Category)
		input.Category = &category
	}
	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid date format. Use YYYY-MM-DD"))
			return
		}
		input.Date = &date
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(dto.ToExpenseResponse(updated)))
}

// Delete handles DELETE /expenses/:id requests.
func (c *ExpenseController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid expense ID format"))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.respondExpenseError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}

func (c *ExpenseController) respondExpenseError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrExpenseNotFound):
		ctx.JSON(http.StatusNotFound, dto.Fail("Expense not found"))
	case errors.Is(err, domainerror.ErrInvalidExpenseCategory):
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid expense category"))
	case errors.Is(err, domainerror.ErrInvalidExpenseAmount):
		ctx.JSON(http.StatusBadRequest, dto.Fail("Expense amount must be positive"))
	case errors.Is(err, domainerror.ErrInvalidExpenseDate):
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid expense date"))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to process expense"))
	}
}
