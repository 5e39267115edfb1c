// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/university-finance/backend/internal/application/usecase/currency"
	domainerror "github.com/university-finance/backend/internal/domain/error"
	"github.com/university-finance/backend/internal/integration/entrypoint/dto"
)

// defaultCurrency is the base currency the back office converts into.
const defaultCurrency = "USD"

// CurrencyController handles currency rate endpoints.
type CurrencyController struct {
	getLatestUseCase *currency.GetLatestRateUseCase
	updateUseCase    *currency.UpdateRateUseCase
	historyUseCase   *currency.RateHistoryUseCase
}

// NewCurrencyController creates a new currency controller instance.
func NewCurrencyController(
	getLatestUseCase *currency.GetLatestRateUseCase,
	updateUseCase *currency.UpdateRateUseCase,
	historyUseCase *currency.RateHistoryUseCase,
) *CurrencyController {
	return &CurrencyController{
		getLatestUseCase: getLatestUseCase,
		updateUseCase:    updateUseCase,
		historyUseCase:   historyUseCase,
	}
}

// GetLatest handles GET /currency/rate requests.
func (c *CurrencyController) GetLatest(ctx *gin.Context) {
	cur := ctx.DefaultQuery("currency", defaultCurrency)

	rate, err := c.getLatestUseCase.Execute(ctx.Request.Context(), cur)
	if err != nil {
		if errors.Is(err, domainerror.ErrNoActiveRate) {
			ctx.JSON(http.StatusNotFound, dto.Fail("No active currency rate configured"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve currency rate"))
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(dto.ToCurrencyRateResponse(rate)))
}

// Update handles PUT /currency/rate requests.
func (c *CurrencyController) Update(ctx *gin.Context) {
	var req dto.UpdateRateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid request body: "+err.Error()))
		return
	}

	cur := req.Currency
	if cur == "" {
		cur = defaultCurrency
	}

	updated, err := c.updateUseCase.Execute(ctx.Request.Context(), currency.UpdateRateInput{
		Currency: cur,
		Rate:     decimal.NewFromFloat(*req.Rate),
	})
	if err != nil {
		if errors.Is(err, domainerror.ErrInvalidRateValue) {
			ctx.JSON(http.StatusBadRequest, dto.Fail("Rate must be a positive number no greater than 1000"))
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to update currency rate"))
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(dto.ToCurrencyRateResponse(updated)))
}

// History handles GET /currency/history requests.
func (c *CurrencyController) History(ctx *gin.Context) {
	cur := ctx.DefaultQuery("currency", defaultCurrency)

	limit := 0
	if limitStr := ctx.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil {
			limit = parsed
		}
	}

	rates, err := c.historyUseCase.Execute(ctx.Request.Context(), cur, limit)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to retrieve rate history"))
		return
	}

	ctx.JSON(http.StatusOK, dto.Success(dto.ToCurrencyRateHistoryResponse(cur, rates)))
}
