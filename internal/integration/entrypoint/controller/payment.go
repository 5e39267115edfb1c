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

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/application/usecase/payment"
	"github.com/university-finance/backend/internal/domain/entity"
	domainerror "github.com/university-finance/backend/internal/domain/error"
	"github.com/university-finance/backend/internal/integration/cache"
	"github.com/university-finance/backend/internal/integration/entrypoint/dto"
	"github.com/university-finance/backend/internal/integration/entrypoint/middleware"
)

// PaymentController handles payment endpoints.
type PaymentController struct {
	createUseCase *payment.CreatePaymentUseCase
	listUseCase   *payment.ListPaymentsUseCase
	getUseCase    *payment.GetPaymentUseCase
	updateUseCase *payment.UpdatePaymentUseCase
	deleteUseCase *payment.DeletePaymentUseCase
	renderer      adapter.DocumentRenderer
	responseCache *cache.ResponseCache
}

// NewPaymentController creates a new payment controller instance.
func NewPaymentController(
	createUseCase *payment.CreatePaymentUseCase,
	listUseCase *payment.ListPaymentsUseCase,
	getUseCase *payment.GetPaymentUseCase,
	updateUseCase *payment.UpdatePaymentUseCase,
	deleteUseCase *payment.DeletePaymentUseCase,
	renderer adapter.DocumentRenderer,
	responseCache *cache.ResponseCache,
) *PaymentController {
	return &PaymentController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		renderer:      renderer,
		responseCache: responseCache,
	}
}

// List handles GET /payments requests. The full response envelope is cached
// under a key derived from every recognized query parameter; a second
// identical read is served from Redis with a cached marker.
func (c *PaymentController) List(ctx *gin.Context) {
	key := cache.PaymentListKey(cache.PaymentListParams{
		Page:          ctx.Query("page"),
		Limit:         ctx.Query("limit"),
		Search:        ctx.Query("search"),
		FeeType:       ctx.Query("feeType"),
		PaymentMethod: ctx.Query("paymentMethod"),
		StudentID:     ctx.Query("studentId"),
		StartDate:     ctx.Query("startDate"),
		EndDate:       ctx.Query("endDate"),
	})
	if envelope, ok := c.responseCache.Fetch(ctx.Request.Context(), key); ok {
		ctx.JSON(http.StatusOK, envelope)
		return
	}

	input := payment.ListPaymentsInput{
		StudentID: ctx.Query("studentId"),
		Search:    ctx.Query("search"),
	}

	if feeTypeStr := ctx.Query("feeType"); feeTypeStr != "" {
		feeType := entity.FeeType(feeTypeStr)
		if !feeType.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid fee type"))
			return
		}
		input.FeeType = &feeType
	}
	if methodStr := ctx.Query("paymentMethod"); methodStr != "" {
		method := entity.PaymentMethod(methodStr)
		if !method.IsValid() {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment method"))
			return
		}
		input.PaymentMethod = &method
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
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve payments"))
		return
	}

	envelope := dto.Success(dto.ToPaymentListResponse(output))
	c.responseCache.Store(ctx.Request.Context(), key, envelope, cache.ListTTL)
	ctx.JSON(http.StatusOK, envelope)
}

// Create handles POST /payments requests.
func (c *PaymentController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.Fail("User not authenticated"))
		return
	}

	var req dto.CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	paymentDate, err := time.Parse("2006-01-02", req.PaymentDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment date format. Use YYYY-MM-DD"))
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "EGP"
	}

	input := payment.CreatePaymentInput{
		StudentID:     req.StudentID,
		StudentName:   req.StudentName,
		FeeType:       entity.FeeType(req.FeeType),
		Amount:        decimal.NewFromFloat(req.Amount),
		Currency:      currency,
		ReceiptNumber: req.ReceiptNumber,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		PaymentDate:   paymentDate,
		Notes:         req.Notes,
		CreatedBy:     userID,
	}

	created, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.Success(dto.ToPaymentResponse(created)))
}

// Get handles GET /payments/:id requests.
func (c *PaymentController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment ID format"))
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(dto.ToPaymentResponse(found)))
}

// Update handles PUT /payments/:id requests.
func (c *PaymentController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment ID format"))
		return
	}

	var req dto.UpdatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	input := payment.UpdatePaymentInput{
		ID:          id,
		StudentID:   req.StudentID,
		StudentName: req.StudentName,
		Notes:       req.Notes,
	}
	if req.FeeType != nil {
		feeType := entity.FeeType(*req.FeeType)
		input.FeeType = &feeType
	}
	if req.Amount != nil {
		amount := decimal.NewFromFloat(*req.Amount)
		input.Amount = &amount
	}
	if req.PaymentMethod != nil {
		method := entity.PaymentMethod(*req.PaymentMethod)
		input.PaymentMethod = &method
	}
	if req.PaymentDate != nil {
		paymentDate, err := time.Parse("2006-01-02", *req.PaymentDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment date format. Use YYYY-MM-DD"))
			return
		}
		input.PaymentDate = &paymentDate
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(dto.ToPaymentResponse(updated)))
}

// Delete handles DELETE /payments/:id requests.
func (c *PaymentController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment ID format"))
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), id); err != nil {
		c.respondPaymentError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(gin.H{"deleted": true}))
}

// Receipt handles GET /payments/:id/receipt requests, streaming a printable
// HTML receipt.
func (c *PaymentController) Receipt(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment ID format"))
		return
	}

	found, err := c.getUseCase.Execute(ctx.Request.Context(), id)
	if err != nil {
		c.respondPaymentError(ctx, err)
		return
	}

	document, err := c.renderer.RenderReceipt(found)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to render receipt"))
		return
	}

	ctx.Data(http.StatusOK, "text/html; charset=utf-8", document)
}

func (c *PaymentController) respondPaymentError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, domainerror.ErrPaymentNotFound):
		ctx.JSON(http.StatusNotFound, dto.Fail("Payment not found"))
	case errors.Is(err, domainerror.ErrDuplicateReceiptNumber):
		ctx.JSON(http.StatusConflict, dto.Fail("Receipt number already exists"))
	case errors.Is(err, domainerror.ErrInvalidFeeType):
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid fee type"))
	case errors.Is(err, domainerror.ErrInvalidPaymentMethod):
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment method"))
	case errors.Is(err, domainerror.ErrInvalidPaymentAmount):
		ctx.JSON(http.StatusBadRequest, dto.Fail("Payment amount must be positive"))
	case errors.Is(err, domainerror.ErrInvalidPaymentDate):
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid payment date"))
	default:
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to process payment"))
	}
}
