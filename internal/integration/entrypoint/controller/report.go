// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/application/usecase/report"
	"github.com/university-finance/backend/internal/integration/cache"
	"github.com/university-finance/backend/internal/integration/entrypoint/dto"
)

// maxReportAge limits how far back a report may be requested.
const maxReportAge = 5 * 365 * 24 * time.Hour

// ReportController handles financial report endpoints.
type ReportController struct {
	dailyUseCase   *report.DailyReportUseCase
	monthlyUseCase *report.MonthlyReportUseCase
	yearlyUseCase  *report.YearlyReportUseCase
	summaryUseCase *report.FinancialSummaryUseCase
	renderer       adapter.DocumentRenderer
	responseCache  *cache.ResponseCache
	now            func() time.Time
}

// NewReportController creates a new report controller instance.
func NewReportController(
	dailyUseCase *report.DailyReportUseCase,
	monthlyUseCase *report.MonthlyReportUseCase,
	yearlyUseCase *report.YearlyReportUseCase,
	summaryUseCase *report.FinancialSummaryUseCase,
	renderer adapter.DocumentRenderer,
	responseCache *cache.ResponseCache,
) *ReportController {
	return &ReportController{
		dailyUseCase:   dailyUseCase,
		monthlyUseCase: monthlyUseCase,
		yearlyUseCase:  yearlyUseCase,
		summaryUseCase: summaryUseCase,
		renderer:       renderer,
		responseCache:  responseCache,
		now:            time.Now,
	}
}

// Daily handles GET /reports/daily?date=YYYY-MM-DD requests. The aggregator
// assumes a valid date, so format, future dates and dates older than five
// years are rejected here.
func (c *ReportController) Daily(ctx *gin.Context) {
	dateStr := ctx.Query("date")
	if dateStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("date query parameter is required"))
		return
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Invalid date format. Use YYYY-MM-DD"))
		return
	}
	now := c.now()
	if date.After(now) {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Report date cannot be in the future"))
		return
	}
	if now.Sub(date) > maxReportAge {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Report date cannot be more than 5 years in the past"))
		return
	}

	asDocument := ctx.Query("format") == "document"

	key := cache.DailyReportKey(dateStr)
	if !asDocument {
		if envelope, ok := c.responseCache.Fetch(ctx.Request.Context(), key); ok {
			ctx.JSON(http.StatusOK, envelope)
			return
		}
	}

	output, err := c.dailyUseCase.Execute(ctx.Request.Context(), report.DailyReportInput{Date: date})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to generate daily report"))
		return
	}

	response := dto.ToDailyReportResponse(output)
	if asDocument {
		c.renderDocument(ctx, "Daily Financial Report "+dateStr, response)
		return
	}

	envelope := dto.Success(response)
	c.responseCache.Store(ctx.Request.Context(), key, envelope, cache.ListTTL)
	ctx.JSON(http.StatusOK, envelope)
}

// Monthly handles GET /reports/monthly?year=YYYY&month=M requests.
func (c *ReportController) Monthly(ctx *gin.Context) {
	year, month, ok := c.parseYearMonth(ctx)
	if !ok {
		return
	}

	asDocument := ctx.Query("format") == "document"

	key := cache.MonthlyReportKey(year, month)
	if !asDocument {
		if envelope, ok := c.responseCache.Fetch(ctx.Request.Context(), key); ok {
			ctx.JSON(http.StatusOK, envelope)
			return
		}
	}

	output, err := c.monthlyUseCase.Execute(ctx.Request.Context(), report.MonthlyReportInput{
		Year:  year,
		Month: time.Month(month),
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to generate monthly report"))
		return
	}

	response := dto.ToMonthlyReportResponse(output)
	if asDocument {
		c.renderDocument(ctx, "Monthly Financial Report", response)
		return
	}

	envelope := dto.Success(response)
	c.responseCache.Store(ctx.Request.Context(), key, envelope, cache.ListTTL)
	ctx.JSON(http.StatusOK, envelope)
}

// Yearly handles GET /reports/yearly?year=YYYY requests.
func (c *ReportController) Yearly(ctx *gin.Context) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return
	}

	asDocument := ctx.Query("format") == "document"

	key := cache.YearlyReportKey(year)
	if !asDocument {
		if envelope, ok := c.responseCache.Fetch(ctx.Request.Context(), key); ok {
			ctx.JSON(http.StatusOK, envelope)
			return
		}
	}

	output, err := c.yearlyUseCase.Execute(ctx.Request.Context(), report.YearlyReportInput{Year: year})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to generate yearly report"))
		return
	}

	response := dto.ToYearlyReportResponse(output)
	if asDocument {
		c.renderDocument(ctx, "Yearly Financial Report "+strconv.Itoa(year), response)
		return
	}

	envelope := dto.Success(response)
	c.responseCache.Store(ctx.Request.Context(), key, envelope, cache.ListTTL)
	ctx.JSON(http.StatusOK, envelope)
}

// Summary handles GET /reports/summary requests.
func (c *ReportController) Summary(ctx *gin.Context) {
	key := cache.SummaryKey()
	if envelope, ok := c.responseCache.Fetch(ctx.Request.Context(), key); ok {
		ctx.JSON(http.StatusOK, envelope)
		return
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to generate financial summary"))
		return
	}

	envelope := dto.Success(dto.ToFinancialSummaryResponse(output))
	c.responseCache.Store(ctx.Request.Context(), key, envelope, cache.ListTTL)
	ctx.JSON(http.StatusOK, envelope)
}

func (c *ReportController) renderDocument(ctx *gin.Context, title string, response any) {
	document, err := c.renderer.RenderReport(title, response)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to render report document"))
		return
	}
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", document)
}

func (c *ReportController) parseYearMonth(ctx *gin.Context) (int, int, bool) {
	year, ok := c.parseYear(ctx)
	if !ok {
		return 0, 0, false
	}

	monthStr := ctx.Query("month")
	if monthStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("month query parameter is required"))
		return 0, 0, false
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		ctx.JSON(http.StatusBadRequest, dto.Fail("month must be between 1 and 12"))
		return 0, 0, false
	}

	now := c.now()
	if year == now.Year() && month > int(now.Month()) {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Report period cannot be in the future"))
		return 0, 0, false
	}

	return year, month, true
}

func (c *ReportController) parseYear(ctx *gin.Context) (int, bool) {
	yearStr := ctx.Query("year")
	if yearStr == "" {
		ctx.JSON(http.StatusBadRequest, dto.Fail("year query parameter is required"))
		return 0, false
	}
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.Fail("year must be a number"))
		return 0, false
	}

	now := c.now()
	if year > now.Year() {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Report period cannot be in the future"))
		return 0, false
	}
	if year < now.Year()-5 {
		ctx.JSON(http.StatusBadRequest, dto.Fail("Report period cannot be more than 5 years in the past"))
		return 0, false
	}

	return year, true
}
