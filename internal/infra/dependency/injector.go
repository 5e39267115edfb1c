// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/university-finance/backend/config"
	"github.com/university-finance/backend/internal/application/adapter"
	"github.com/university-finance/backend/internal/application/usecase/auth"
	"github.com/university-finance/backend/internal/application/usecase/currency"
	"github.com/university-finance/backend/internal/application/usecase/dashboard"
	"github.com/university-finance/backend/internal/application/usecase/expense"
	"github.com/university-finance/backend/internal/application/usecase/payment"
	"github.com/university-finance/backend/internal/application/usecase/report"
	"github.com/university-finance/backend/internal/infra/rediscache"
	"github.com/university-finance/backend/internal/infra/server/router"
	"github.com/university-finance/backend/internal/integration/adapters"
	"github.com/university-finance/backend/internal/integration/cache"
	"github.com/university-finance/backend/internal/integration/email"
	"github.com/university-finance/backend/internal/integration/entrypoint/controller"
	"github.com/university-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/university-finance/backend/internal/integration/persistence"
	"github.com/university-finance/backend/internal/integration/render"
)

// usdCurrency is the settlement currency payments are converted into.
const usdCurrency = "USD"

// Injector holds all application dependencies.
type Injector struct {
	Config *config.Config
	DB     *gorm.DB
	Router *router.Router
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redis *rediscache.Connection, dbHealthChecker func() bool) (*Injector, error) {
	// Create repositories
	userRepo := persistence.NewUserRepository(db)
	tokenRepo := persistence.NewTokenRepository(db)
	paymentRepo := persistence.NewPaymentRepository(db)
	expenseRepo := persistence.NewExpenseRepository(db)
	rateRepo := persistence.NewCurrencyRateRepository(db)

	// Create caching layer
	cacheStore := cache.NewStore(redis.Client())
	responseCache := cache.NewResponseCache(cacheStore)
	invalidator := cache.NewInvalidator(cacheStore)

	// Create adapters/services
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry, tokenRepo)
	resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
	converter := currency.NewConverter(rateRepo, usdCurrency)

	renderer, err := render.NewHTMLRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create document renderer: %w", err)
	}

	// Email sending is optional. Without an API key, password reset links
	// are logged instead of mailed.
	var emailSender adapter.EmailSender
	if cfg.Email.ResendAPIKey != "" {
		resendSender, err := email.NewResendSender(cfg.Email.ResendAPIKey, cfg.Email.FromName, cfg.Email.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to create email sender: %w", err)
		}
		emailSender = resendSender
	} else {
		slog.Warn("RESEND_API_KEY not set, password reset emails disabled")
	}

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
	forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, emailSender, cfg.Email.AppBaseURL)
	resetPasswordUseCase := auth.NewResetPasswordUseCase(userRepo, passwordService, resetTokenService)

	// Create payment use cases
	createPaymentUseCase := payment.NewCreatePaymentUseCase(paymentRepo, converter, invalidator)
	listPaymentsUseCase := payment.NewListPaymentsUseCase(paymentRepo)
	getPaymentUseCase := payment.NewGetPaymentUseCase(paymentRepo)
	updatePaymentUseCase := payment.NewUpdatePaymentUseCase(paymentRepo, converter, invalidator)
	deletePaymentUseCase := payment.NewDeletePaymentUseCase(paymentRepo, invalidator)

	// Create expense use cases
	createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, invalidator)
	listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
	getExpenseUseCase := expense.NewGetExpenseUseCase(expenseRepo)
	updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, invalidator)
	deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, invalidator)

	// Create report use cases
	dailyReportUseCase := report.NewDailyReportUseCase(paymentRepo, expenseRepo)
	monthlyReportUseCase := report.NewMonthlyReportUseCase(paymentRepo, expenseRepo)
	yearlyReportUseCase := report.NewYearlyReportUseCase(paymentRepo, expenseRepo)
	financialSummaryUseCase := report.NewFinancialSummaryUseCase(paymentRepo, expenseRepo)

	// Create dashboard and currency use cases
	dashboardReportUseCase := dashboard.NewReportUseCase(paymentRepo, expenseRepo)
	getLatestRateUseCase := currency.NewGetLatestRateUseCase(rateRepo)
	updateRateUseCase := currency.NewUpdateRateUseCase(rateRepo)
	rateHistoryUseCase := currency.NewRateHistoryUseCase(rateRepo)

	// Create controllers
	healthController := controller.NewHealthController(dbHealthChecker, redis.HealthCheck)

	authController := controller.NewAuthController(
		registerUseCase,
		loginUseCase,
		refreshTokenUseCase,
		logoutUseCase,
		forgotPasswordUseCase,
		resetPasswordUseCase,
	)

	paymentController := controller.NewPaymentController(
		createPaymentUseCase,
		listPaymentsUseCase,
		getPaymentUseCase,
		updatePaymentUseCase,
		deletePaymentUseCase,
		renderer,
		responseCache,
	)

	expenseController := controller.NewExpenseController(
		createExpenseUseCase,
		listExpensesUseCase,
		getExpenseUseCase,
		updateExpenseUseCase,
		deleteExpenseUseCase,
		responseCache,
	)

	reportController := controller.NewReportController(
		dailyReportUseCase,
		monthlyReportUseCase,
		yearlyReportUseCase,
		financialSummaryUseCase,
		renderer,
		responseCache,
	)

	dashboardController := controller.NewDashboardController(dashboardReportUseCase, responseCache)

	currencyController := controller.NewCurrencyController(
		getLatestRateUseCase,
		updateRateUseCase,
		rateHistoryUseCase,
	)

	// Create middleware
	// Use higher rate limits for E2E/test environments to prevent flaky tests
	var loginRateLimiter *middleware.RateLimiter
	if cfg.Server.Environment == "e2e" || cfg.Server.Environment == "test" {
		loginRateLimiter = middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
	} else {
		loginRateLimiter = middleware.NewRateLimiter()
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		authController,
		paymentController,
		expenseController,
		reportController,
		dashboardController,
		currencyController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config: cfg,
		DB:     db,
		Router: r,
	}, nil
}
