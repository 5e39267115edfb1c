// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/university-finance/backend/internal/application/usecase/dashboard"
	"github.com/university-finance/backend/internal/integration/cache"
	"github.com/university-finance/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the dashboard report endpoint.
type DashboardController struct {
	reportUseCase *dashboard.ReportUseCase
	responseCache *cache.ResponseCache
	now           func() time.Time
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(reportUseCase *dashboard.ReportUseCase, responseCache *cache.ResponseCache) *DashboardController {
	return &DashboardController{
		reportUseCase: reportUseCase,
		responseCache: responseCache,
		now:           time.Now,
	}
}

// Report handles GET /dashboard requests. The payload is cached under a
// coarse per-day key; writes invalidate today's and yesterday's entries.
func (c *DashboardController) Report(ctx *gin.Context) {
	key := cache.DashboardKey(c.now())
	if envelope, ok := c.responseCache.Fetch(ctx.Request.Context(), key); ok {
		ctx.JSON(http.StatusOK, envelope)
		return
	}

	output, err := c.reportUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.Error("Failed to generate dashboard report"))
		return
	}

	envelope := dto.Success(dto.ToDashboardResponse(output))
	c.responseCache.Store(ctx.Request.Context(), key, envelope, cache.DashboardTTL)
	ctx.JSON(http.StatusOK, envelope)
}
