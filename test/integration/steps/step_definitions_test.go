package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/university-finance/backend/internal/application/usecase/auth"
	"github.com/university-finance/backend/internal/application/usecase/currency"
	"github.com/university-finance/backend/internal/application/usecase/dashboard"
	"github.com/university-finance/backend/internal/application/usecase/expense"
	"github.com/university-finance/backend/internal/application/usecase/payment"
	"github.com/university-finance/backend/internal/application/usecase/report"
	"github.com/university-finance/backend/internal/infra/server/router"
	"github.com/university-finance/backend/internal/integration/adapters"
	"github.com/university-finance/backend/internal/integration/cache"
	"github.com/university-finance/backend/internal/integration/entrypoint/controller"
	"github.com/university-finance/backend/internal/integration/entrypoint/middleware"
	"github.com/university-finance/backend/internal/integration/persistence"
	"github.com/university-finance/backend/internal/integration/persistence/model"
	"github.com/university-finance/backend/internal/integration/render"
	"github.com/university-finance/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri              string
	headers          map[string]string
	client           *http.Client
	response         *response
	db               *mock.Db
	serverPort       int
	accessToken      string
	refreshToken     string
	resetToken       string
	expiredToken     string
	currentUserID    uuid.UUID
	currentPaymentID uuid.UUID
	currentExpenseID uuid.UUID
	lastCreatedID    uuid.UUID
}

type response struct {
	status int
	body   any
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("university_finance", map[string]any{
			"users":                 &model.UserModel{},
			"refresh_tokens":        &model.RefreshTokenModel{},
			"password_reset_tokens": &model.PasswordResetTokenModel{},
			"payments":              &model.PaymentModel{},
			"expenses":              &model.ExpenseModel{},
			"currency_rates":        &model.CurrencyRateModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// User setup steps
	ctx.Given(`^a user exists with email "([^"]*)"$`, test.aUserExistsWithEmail)
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^a user exists with email "([^"]*)" and role "([^"]*)"$`, test.aUserExistsWithEmailAndRole)
	ctx.Given(`^the user is logged in with valid tokens$`, test.theUserIsLoggedInWithValidTokens)
	ctx.Given(`^I am logged in as "([^"]*)" with role "([^"]*)"$`, test.iAmLoggedInAsWithRole)
	ctx.Given(`^a password reset token exists for "([^"]*)"$`, test.aPasswordResetTokenExistsFor)
	ctx.Given(`^an expired password reset token exists$`, test.anExpiredPasswordResetTokenExists)

	// Ledger setup steps
	ctx.Given(`^an active USD rate of "([^"]*)" exists$`, test.anActiveUSDRateExists)
	ctx.Given(`^a payment exists with receipt number "([^"]*)" and amount "([^"]*)"$`, test.aPaymentExistsWithReceiptNumberAndAmount)
	ctx.Given(`^a payment exists with receipt number "([^"]*)" and amount "([^"]*)" on "([^"]*)"$`, test.aPaymentExistsWithReceiptNumberAndAmountOn)
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)"$`, test.anExpenseExistsWithDescriptionAndAmount)
	ctx.Given(`^an expense exists with description "([^"]*)" and amount "([^"]*)" on "([^"]*)"$`, test.anExpenseExistsWithDescriptionAndAmountOn)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should not exist$`, test.theResponseFieldShouldNotExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.resetToken = ""
	t.expiredToken = ""
	t.currentUserID = uuid.Nil
	t.currentPaymentID = uuid.Nil
	t.currentExpenseID = uuid.Nil
	t.lastCreatedID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			paymentRepo := persistence.NewPaymentRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			rateRepo := persistence.NewCurrencyRateRepository(testDB.DbConn)

			// Create caching layer over miniredis
			cacheStore := cache.NewStore(mock.NewRedis())
			responseCache := cache.NewResponseCache(cacheStore)
			invalidator := cache.NewInvalidator(cacheStore)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour, tokenRepo)
			resetTokenService := adapters.NewPasswordResetTokenService(tokenRepo)
			converter := currency.NewConverter(rateRepo, "USD")

			renderer, err := render.NewHTMLRenderer()
			if err != nil {
				panic(err)
			}

			// Create auth use cases. No email sender: reset links are logged.
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(userRepo, tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)
			forgotPasswordUseCase := auth.NewForgotPasswordUseCase(userRepo, resetTokenService, nil, "http://localhost:3000")
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

			// Create report, dashboard and currency use cases
			dailyReportUseCase := report.NewDailyReportUseCase(paymentRepo, expenseRepo)
			monthlyReportUseCase := report.NewMonthlyReportUseCase(paymentRepo, expenseRepo)
			yearlyReportUseCase := report.NewYearlyReportUseCase(paymentRepo, expenseRepo)
			financialSummaryUseCase := report.NewFinancialSummaryUseCase(paymentRepo, expenseRepo)
			dashboardReportUseCase := dashboard.NewReportUseCase(paymentRepo, expenseRepo)
			getLatestRateUseCase := currency.NewGetLatestRateUseCase(rateRepo)
			updateRateUseCase := currency.NewUpdateRateUseCase(rateRepo)
			rateHistoryUseCase := currency.NewRateHistoryUseCase(rateRepo)

			// Create controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)

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
			loginRateLimiter := middleware.NewRateLimiterWithConfig(1000, 1*time.Minute)
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

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
			engine := r.Setup("test")

			server := &http.Server{
				Addr:    fmt.Sprintf(":%d", testServerPort),
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, "DefaultPass123!", "ACCOUNTANT")
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "ACCOUNTANT")
}

func (t *testContext) aUserExistsWithEmailAndRole(email, role string) error {
	return t.createUser(email, "DefaultPass123!", role)
}

func (t *testContext) createUser(email, password, role string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         "Test User",
		PasswordHash: hashPassword(password),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// theUserIsLoggedInWithValidTokens signs a token pair for the most recently
// created user, with the role stored on their row.
func (t *testContext) theUserIsLoggedInWithValidTokens() error {
	var user model.UserModel
	if err := t.db.DbConn.Where("id = ?", t.currentUserID).First(&user).Error; err != nil {
		return fmt.Errorf("no current user: %w", err)
	}
	return t.issueTokens(user.Email, user.Role)
}

// iAmLoggedInAsWithRole creates the user when missing and signs a token pair
// carrying the given role claim.
func (t *testContext) iAmLoggedInAsWithRole(email, role string) error {
	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", role); err != nil {
			return err
		}
	} else {
		t.currentUserID = user.ID
	}
	return t.issueTokens(email, role)
}

func (t *testContext) issueTokens(email, role string) error {
	now := time.Now().UTC()

	accessToken, err := t.signToken(email, role, "access", now, 15*time.Minute)
	if err != nil {
		return err
	}
	t.accessToken = accessToken

	refreshToken, err := t.signToken(email, role, "refresh", now, 7*24*time.Hour)
	if err != nil {
		return err
	}
	t.refreshToken = refreshToken

	// Stored so logout and refresh can see it
	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		UserID:      t.currentUserID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}
	return t.db.DbConn.Create(refreshTokenModel).Error
}

func (t *testContext) signToken(email, role, tokenType string, now time.Time, duration time.Duration) (string, error) {
	claims := adapters.CustomClaims{
		UserID:    t.currentUserID.String(),
		Email:     email,
		Role:      role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "university-finance",
			Subject:   t.currentUserID.String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWTSecret))
	if err != nil {
		return "", fmt.Errorf("failed to generate %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (t *testContext) aPasswordResetTokenExistsFor(email string) error {
	t.resetToken = fmt.Sprintf("test-reset-token-%s", uuid.New().String())

	var user model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&user).Error; err != nil {
		return fmt.Errorf("user not found: %w", err)
	}

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.resetToken,
		UserID:    user.ID,
		Email:     email,
		Used:      false,
		ExpiresAt: time.Now().Add(1 * time.Hour),
		CreatedAt: time.Now(),
	}
	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anExpiredPasswordResetTokenExists() error {
	t.expiredToken = fmt.Sprintf("expired-reset-token-%s", uuid.New().String())

	resetTokenModel := &model.PasswordResetTokenModel{
		ID:        uuid.New(),
		Token:     t.expiredToken,
		UserID:    uuid.New(),
		Email:     "expired@example.com",
		Used:      false,
		ExpiresAt: time.Now().Add(-1 * time.Hour),
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}
	return t.db.DbConn.Create(resetTokenModel).Error
}

func (t *testContext) anActiveUSDRateExists(rate string) error {
	value, err := decimal.NewFromString(rate)
	if err != nil {
		return fmt.Errorf("invalid rate %q: %w", rate, err)
	}

	now := time.Now().UTC()
	rateModel := &model.CurrencyRateModel{
		ID:        uuid.New(),
		Currency:  "USD",
		Rate:      value,
		ValidFrom: now,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return t.db.DbConn.Create(rateModel).Error
}

func (t *testContext) aPaymentExistsWithReceiptNumberAndAmount(receiptNumber, amount string) error {
	return t.aPaymentExistsWithReceiptNumberAndAmountOn(receiptNumber, amount, time.Now().Format("2006-01-02"))
}

func (t *testContext) aPaymentExistsWithReceiptNumberAndAmountOn(receiptNumber, amount, date string) error {
	date = t.replaceTokenPlaceholders(date)
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	paymentDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	paymentID := uuid.New()
	t.currentPaymentID = paymentID

	now := time.Now().UTC()
	paymentModel := &model.PaymentModel{
		ID:            paymentID,
		StudentID:     "STU-2024-001",
		StudentName:   "Ahmed Hassan",
		FeeType:       "NEW_YEAR",
		Amount:        value,
		Currency:      "EGP",
		ReceiptNumber: receiptNumber,
		PaymentMethod: "CASH",
		PaymentDate:   paymentDate,
		CreatedBy:     t.currentUserID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return t.db.DbConn.Create(paymentModel).Error
}

func (t *testContext) anExpenseExistsWithDescriptionAndAmount(description, amount string) error {
	return t.anExpenseExistsWithDescriptionAndAmountOn(description, amount, time.Now().Format("2006-01-02"))
}

func (t *testContext) anExpenseExistsWithDescriptionAndAmountOn(description, amount, date string) error {
	date = t.replaceTokenPlaceholders(date)
	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	expenseDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", date, err)
	}

	expenseID := uuid.New()
	t.currentExpenseID = expenseID

	now := time.Now().UTC()
	expenseModel := &model.ExpenseModel{
		ID:          expenseID,
		Amount:      value,
		Description: description,
		Category:    "SUPPLIES",
		Vendor:      "Cairo Office Supplies",
		Date:        expenseDate,
		CreatedBy:   t.currentUserID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(expenseModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replaceTokenPlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replaceTokenPlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replaceTokenPlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replaceTokenPlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{reset_token}}", t.resetToken)
	content = strings.ReplaceAll(content, "{{expired_reset_token}}", t.expiredToken)
	content = strings.ReplaceAll(content, "{{payment_id}}", t.currentPaymentID.String())
	content = strings.ReplaceAll(content, "{{expense_id}}", t.currentExpenseID.String())
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastCreatedID.String())
	content = strings.ReplaceAll(content, "{{today}}", time.Now().Format("2006-01-02"))
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture the created resource ID from the envelope if present
		if data, ok := responseBody["data"].(map[string]any); ok {
			if idStr, ok := data["id"].(string); ok {
				if id, err := uuid.Parse(idStr); err == nil {
					t.lastCreatedID = id
				}
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if getFieldValue(body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldNotExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if value := getFieldValue(body, field); value != nil {
		return fmt.Errorf("field '%s' should not exist but is '%v'", field, value)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
