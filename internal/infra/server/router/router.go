// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                   *gin.Engine
	healthController         *controller.HealthController
	authController           *controller.AuthController
	accountController        *controller.AccountController
	transactionController    *controller.TransactionController
	debtController           *controller.DebtController
	loanController           *controller.LoanController
	goalController           *controller.GoalController
	recurringController      *controller.RecurringExpenseController
	pendingPaymentController *controller.PendingPaymentController
	categoryController       *controller.CategoryController
	authMiddleware           *middleware.AuthMiddleware
	rateLimiter              *middleware.RateLimiter // nil disables rate limiting
	idempotency              *middleware.Idempotency
}

// Controllers groups the HTTP handlers served by the router.
type Controllers struct {
	Health         *controller.HealthController
	Auth           *controller.AuthController
	Account        *controller.AccountController
	Transaction    *controller.TransactionController
	Debt           *controller.DebtController
	Loan           *controller.LoanController
	Goal           *controller.GoalController
	Recurring      *controller.RecurringExpenseController
	PendingPayment *controller.PendingPaymentController
	Category       *controller.CategoryController
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	controllers Controllers,
	authMiddleware *middleware.AuthMiddleware,
	rateLimiter *middleware.RateLimiter,
	idempotency *middleware.Idempotency,
) *Router {
	return &Router{
		healthController:         controllers.Health,
		authController:           controllers.Auth,
		accountController:        controllers.Account,
		transactionController:    controllers.Transaction,
		debtController:           controllers.Debt,
		loanController:           controllers.Loan,
		goalController:           controllers.Goal,
		recurringController:      controllers.Recurring,
		pendingPaymentController: controllers.PendingPayment,
		categoryController:       controllers.Category,
		authMiddleware:           authMiddleware,
		rateLimiter:              rateLimiter,
		idempotency:              idempotency,
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

	// Setup routes
	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// mutation prefixes handler with the guards every state-changing route shares.
func (r *Router) mutation(handler gin.HandlerFunc) []gin.HandlerFunc {
	chain := make([]gin.HandlerFunc, 0, 3)
	if r.rateLimiter != nil {
		chain = append(chain, r.rateLimiter.Middleware())
	}
	if r.idempotency != nil {
		chain = append(chain, r.idempotency.Middleware())
	}
	return append(chain, handler)
}

// setupAPIRoutes configures the main API routes. Every route requires authentication.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())

	auth := v1.Group("/auth")
	{
		auth.POST("/logout", r.authController.Logout)
	}

	accounts := v1.Group("/accounts")
	{
		accounts.GET("", r.accountController.List)
		accounts.POST("", r.mutation(r.accountController.Create)...)
		accounts.GET("/:id", r.accountController.Get)
		accounts.DELETE("/:id", r.mutation(r.accountController.Deactivate)...)
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.POST("", r.mutation(r.transactionController.Create)...)
		transactions.DELETE("/:id", r.mutation(r.transactionController.Delete)...)
	}

	v1.POST("/transfers", r.mutation(r.transactionController.Transfer)...)

	debts := v1.Group("/debts")
	{
		debts.GET("", r.debtController.List)
		debts.POST("", r.mutation(r.debtController.Create)...)
		debts.GET("/:id", r.debtController.Get)
		debts.POST("/:id/payments", r.mutation(r.debtController.Pay)...)
	}

	loans := v1.Group("/loans")
	{
		loans.GET("", r.loanController.List)
		loans.POST("", r.mutation(r.loanController.Create)...)
		loans.GET("/:id", r.loanController.Get)
		loans.POST("/:id/payments", r.mutation(r.loanController.Pay)...)
	}

	goals := v1.Group("/goals")
	{
		goals.GET("", r.goalController.List)
		goals.POST("", r.mutation(r.goalController.Create)...)
		goals.GET("/:id", r.goalController.Get)
		goals.POST("/:id/contributions", r.mutation(r.goalController.Contribute)...)
		goals.PATCH("/:id/status", r.mutation(r.goalController.UpdateStatus)...)
	}

	recurring := v1.Group("/recurring-expenses")
	{
		recurring.GET("", r.recurringController.List)
		recurring.POST("", r.mutation(r.recurringController.Create)...)
		recurring.PATCH("/:id/status", r.mutation(r.recurringController.UpdateStatus)...)
		recurring.POST("/:id/charge", r.mutation(r.recurringController.Charge)...)
	}

	pending := v1.Group("/pending-payments")
	{
		pending.GET("", r.pendingPaymentController.List)
		pending.POST("", r.mutation(r.pendingPaymentController.Create)...)
		pending.POST("/:id/pay", r.mutation(r.pendingPaymentController.MarkPaid)...)
		pending.POST("/:id/cancel", r.mutation(r.pendingPaymentController.Cancel)...)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.mutation(r.categoryController.Create)...)
	}
}
