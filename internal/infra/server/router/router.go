// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/university-finance/backend/internal/domain/entity"
	"github.com/university-finance/backend/internal/integration/entrypoint/controller"
	"github.com/university-finance/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	authController      *controller.AuthController
	paymentController   *controller.PaymentController
	expenseController   *controller.ExpenseController
	reportController    *controller.ReportController
	dashboardController *controller.DashboardController
	currencyController  *controller.CurrencyController
	loginRateLimiter    *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	paymentController *controller.PaymentController,
	expenseController *controller.ExpenseController,
	reportController *controller.ReportController,
	dashboardController *controller.DashboardController,
	currencyController *controller.CurrencyController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		authController:      authController,
		paymentController:   paymentController,
		expenseController:   expenseController,
		reportController:    reportController,
		dashboardController: dashboardController,
		currencyController:  currencyController,
		loginRateLimiter:    loginRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	// API v1 group
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/register", r.authController.Register)
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
				auth.POST("/logout", r.authController.Logout)
				auth.POST("/forgot-password", r.authController.ForgotPassword)
				auth.POST("/reset-password", r.authController.ResetPassword)
			}
		}

		// Payment routes (require authentication)
		if r.paymentController != nil && r.authMiddleware != nil {
			payments := v1.Group("/payments")
			payments.Use(r.authMiddleware.Authenticate())
			{
				payments.GET("", r.paymentController.List)
				payments.POST("", r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleAccountant), r.paymentController.Create)
				payments.GET("/:id", r.paymentController.Get)
				payments.PATCH("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleAccountant), r.paymentController.Update)
				payments.DELETE("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.paymentController.Delete)
				payments.GET("/:id/receipt", r.paymentController.Receipt)
			}
		}

		// Expense routes (require authentication)
		if r.expenseController != nil && r.authMiddleware != nil {
			expenses := v1.Group("/expenses")
			expenses.Use(r.authMiddleware.Authenticate())
			{
				expenses.GET("", r.expenseController.List)
				expenses.POST("", r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleAccountant), r.expenseController.Create)
				expenses.GET("/:id", r.expenseController.Get)
				expenses.PATCH("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleAccountant), r.expenseController.Update)
				expenses.DELETE("/:id", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.expenseController.Delete)
			}
		}

		// Report routes (accountants and admins only)
		if r.reportController != nil && r.authMiddleware != nil {
			reports := v1.Group("/reports")
			reports.Use(r.authMiddleware.Authenticate())
			reports.Use(r.authMiddleware.RequireRoles(entity.UserRoleAdmin, entity.UserRoleAccountant))
			{
				reports.GET("/daily", r.reportController.Daily)
				reports.GET("/monthly", r.reportController.Monthly)
				reports.GET("/yearly", r.reportController.Yearly)
				reports.GET("/summary", r.reportController.Summary)
			}
		}

		// Dashboard route (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Report)
			}
		}

		// Currency routes (require authentication; rate updates are admin only)
		if r.currencyController != nil && r.authMiddleware != nil {
			currency := v1.Group("/currency")
			currency.Use(r.authMiddleware.Authenticate())
			{
				currency.GET("/rate", r.currencyController.GetLatest)
				currency.PUT("/rate", r.authMiddleware.RequireRoles(entity.UserRoleAdmin), r.currencyController.Update)
				currency.GET("/history", r.currencyController.History)
			}
		}
	}
}
