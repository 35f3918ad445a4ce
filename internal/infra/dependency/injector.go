// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/config"
	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/application/usecase/account"
	"github.com/finance-tracker/ledger/internal/application/usecase/auth"
	"github.com/finance-tracker/ledger/internal/application/usecase/category"
	"github.com/finance-tracker/ledger/internal/application/usecase/debt"
	"github.com/finance-tracker/ledger/internal/application/usecase/goal"
	"github.com/finance-tracker/ledger/internal/application/usecase/loan"
	"github.com/finance-tracker/ledger/internal/application/usecase/pendingpayment"
	"github.com/finance-tracker/ledger/internal/application/usecase/recurring"
	"github.com/finance-tracker/ledger/internal/application/usecase/sweep"
	"github.com/finance-tracker/ledger/internal/application/usecase/transaction"
	"github.com/finance-tracker/ledger/internal/infra/server/router"
	"github.com/finance-tracker/ledger/internal/integration/adapters"
	"github.com/finance-tracker/ledger/internal/integration/cache"
	"github.com/finance-tracker/ledger/internal/integration/email"
	"github.com/finance-tracker/ledger/internal/integration/email/templates"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/controller"
	"github.com/finance-tracker/ledger/internal/integration/entrypoint/middleware"
	"github.com/finance-tracker/ledger/internal/integration/persistence"
	"github.com/finance-tracker/ledger/internal/integration/worker"
)

// storeCleanupInterval is how often the in-memory stores purge expired keys.
const storeCleanupInterval = 10 * time.Minute

// Database is the connection repositories are built on. *db.Database implements it.
type Database interface {
	DB() *gorm.DB
	Ping(ctx context.Context) error
}

// Options overrides collaborators that are otherwise built from configuration.
type Options struct {
	Clock       adapter.Clock       // Defaults to the system clock
	EmailSender adapter.EmailSender // Defaults to Resend when an API key is configured
	Redis       *redis.Client       // Defaults to a client built from the Redis URL
}

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	Database    Database
	Router      *router.Router
	SweepWorker *worker.SweepWorker
	RateLimiter *middleware.RateLimiter // nil when rate limiting is disabled
	Redis       *redis.Client           // nil when Redis is disabled
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, database Database, opts Options) (*Injector, error) {
	gormDB := database.DB()

	clock := opts.Clock
	if clock == nil {
		clock = adapters.NewSystemClock()
	}

	// Create key stores, shared through Redis when it is configured
	redisClient := opts.Redis
	if redisClient == nil && cfg.Redis.URL != "" {
		client, err := NewRedisClient(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		redisClient = client
	}

	var idempotencyStore adapter.IdempotencyStore
	var revocationStore adapter.TokenRevocationStore
	if redisClient != nil {
		idempotencyStore = cache.NewRedisIdempotencyStore(redisClient)
		revocationStore = cache.NewRedisRevocationStore(redisClient)
	} else {
		slog.Warn("Redis is not configured, using in-memory idempotency and revocation stores")
		idempotencyStore = cache.NewMemoryIdempotencyStore(storeCleanupInterval)
		revocationStore = cache.NewMemoryRevocationStore(storeCleanupInterval)
	}

	// Create repositories
	uow := persistence.NewUnitOfWork(gormDB)
	accountRepo := persistence.NewAccountRepository(gormDB)
	transactionRepo := persistence.NewTransactionRepository(gormDB)
	debtRepo := persistence.NewDebtRepository(gormDB)
	loanRepo := persistence.NewLoanRepository(gormDB)
	goalRepo := persistence.NewGoalRepository(gormDB)
	recurringRepo := persistence.NewRecurringExpenseRepository(gormDB)
	pendingRepo := persistence.NewPendingPaymentRepository(gormDB)
	categoryRepo := persistence.NewCategoryRepository(gormDB)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, revocationStore)

	// Create account use cases
	createAccountUseCase := account.NewCreateAccountUseCase(uow, clock)
	listAccountsUseCase := account.NewListAccountsUseCase(accountRepo)
	getAccountUseCase := account.NewGetAccountUseCase(accountRepo)
	deactivateAccountUseCase := account.NewDeactivateAccountUseCase(uow)

	// Create transaction use cases
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(uow, categoryRepo, clock)
	transferUseCase := transaction.NewTransferUseCase(uow, clock)
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(uow, clock)

	// Create debt use cases
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, clock)
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo, transactionRepo, clock)
	getDebtUseCase := debt.NewGetDebtUseCase(debtRepo, transactionRepo, clock)
	payDebtUseCase := debt.NewPayDebtUseCase(uow, clock)

	// Create loan use cases
	createLoanUseCase := loan.NewCreateLoanUseCase(loanRepo, clock)
	listLoansUseCase := loan.NewListLoansUseCase(loanRepo, transactionRepo, clock)
	getLoanUseCase := loan.NewGetLoanUseCase(loanRepo, transactionRepo, clock)
	payLoanUseCase := loan.NewPayLoanUseCase(uow, clock)

	// Create goal use cases
	createGoalUseCase := goal.NewCreateGoalUseCase(goalRepo)
	listGoalsUseCase := goal.NewListGoalsUseCase(goalRepo, transactionRepo, clock)
	getGoalUseCase := goal.NewGetGoalUseCase(goalRepo, transactionRepo, clock)
	contributeToGoalUseCase := goal.NewContributeToGoalUseCase(uow, clock)
	updateGoalStatusUseCase := goal.NewUpdateGoalStatusUseCase(uow, clock)

	// Create recurring expense use cases
	createRecurringUseCase := recurring.NewCreateRecurringExpenseUseCase(recurringRepo, accountRepo, categoryRepo, clock)
	listRecurringUseCase := recurring.NewListRecurringExpensesUseCase(recurringRepo)
	updateRecurringStatusUseCase := recurring.NewUpdateRecurringStatusUseCase(uow, clock)
	chargeRecurringUseCase := recurring.NewChargeRecurringExpenseUseCase(uow)
	chargeDueExpensesUseCase := recurring.NewChargeDueExpensesUseCase(recurringRepo, uow, clock)

	// Create pending payment use cases
	createPendingUseCase := pendingpayment.NewCreatePendingPaymentUseCase(pendingRepo, debtRepo, loanRepo, clock)
	listPendingUseCase := pendingpayment.NewListPendingPaymentsUseCase(pendingRepo, clock)
	markPaidUseCase := pendingpayment.NewMarkPaidUseCase(uow, clock)
	cancelPendingUseCase := pendingpayment.NewCancelPendingPaymentUseCase(uow)

	// Create category and auth use cases
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

	// Create sweep use cases; reminders need an email sender
	refreshOverdueUseCase := sweep.NewRefreshOverdueUseCase(pendingRepo, debtRepo, loanRepo, uow, clock)
	sendRemindersUseCase, err := newSendRemindersUseCase(cfg, opts.EmailSender, pendingRepo, uow, clock)
	if err != nil {
		return nil, err
	}

	sweepWorker := worker.NewSweepWorker(
		refreshOverdueUseCase,
		chargeDueExpensesUseCase,
		sendRemindersUseCase,
		worker.SweepConfig{
			Interval:      cfg.Sweep.Interval,
			BatchSize:     cfg.Sweep.BatchSize,
			ChargeEnabled: cfg.Sweep.ChargeEnabled,
		},
	)

	// Create controllers
	controllers := router.Controllers{
		Health: controller.NewHealthController(database.Ping),
		Auth:   controller.NewAuthController(logoutUseCase),
		Account: controller.NewAccountController(
			createAccountUseCase,
			listAccountsUseCase,
			getAccountUseCase,
			deactivateAccountUseCase,
		),
		Transaction: controller.NewTransactionController(
			createTransactionUseCase,
			transferUseCase,
			listTransactionsUseCase,
			deleteTransactionUseCase,
		),
		Debt: controller.NewDebtController(
			createDebtUseCase,
			listDebtsUseCase,
			getDebtUseCase,
			payDebtUseCase,
		),
		Loan: controller.NewLoanController(
			createLoanUseCase,
			listLoansUseCase,
			getLoanUseCase,
			payLoanUseCase,
		),
		Goal: controller.NewGoalController(
			createGoalUseCase,
			listGoalsUseCase,
			getGoalUseCase,
			contributeToGoalUseCase,
			updateGoalStatusUseCase,
		),
		Recurring: controller.NewRecurringExpenseController(
			createRecurringUseCase,
			listRecurringUseCase,
			updateRecurringStatusUseCase,
			chargeRecurringUseCase,
		),
		PendingPayment: controller.NewPendingPaymentController(
			createPendingUseCase,
			listPendingUseCase,
			markPaidUseCase,
			cancelPendingUseCase,
		),
		Category: controller.NewCategoryController(
			listCategoriesUseCase,
			createCategoryUseCase,
		),
	}

	// Create middleware
	authMiddleware := middleware.NewAuthMiddleware(tokenService)
	idempotency := middleware.NewIdempotency(idempotencyStore, cfg.Idempotency.TTL)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, cfg.RateLimit.IdleTTL)
	}

	if err := middleware.SetupValidator(); err != nil {
		return nil, fmt.Errorf("failed to set up request validation: %w", err)
	}

	// Create router
	r := router.NewRouter(controllers, authMiddleware, rateLimiter, idempotency)

	return &Injector{
		Config:      cfg,
		Database:    database,
		Router:      r,
		SweepWorker: sweepWorker,
		RateLimiter: rateLimiter,
		Redis:       redisClient,
	}, nil
}

// newSendRemindersUseCase returns nil when no email sender is available.
func newSendRemindersUseCase(
	cfg *config.Config,
	sender adapter.EmailSender,
	pendingRepo adapter.PendingPaymentRepository,
	uow adapter.UnitOfWork,
	clock adapter.Clock,
) (*sweep.SendRemindersUseCase, error) {
	if sender == nil {
		if cfg.Email.ResendAPIKey == "" {
			slog.Info("Resend API key not configured, overdue reminders are disabled")
			return nil, nil
		}
		client, err := email.NewResendClientWithBaseURL(
			cfg.Email.ResendAPIKey,
			cfg.Email.ResendBaseURL,
			cfg.Email.FromName,
			cfg.Email.FromEmail,
		)
		if err != nil {
			return nil, err
		}
		sender = client
	}

	renderer, err := templates.NewRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to load email templates: %w", err)
	}

	notifier := email.NewReminderService(sender, renderer, cfg.Email.AppBaseURL)
	return sweep.NewSendRemindersUseCase(pendingRepo, notifier, uow, clock), nil
}

// NewRedisClient creates a Redis client from cfg. Explicit password and database
// settings override the ones in the URL.
func NewRedisClient(cfg *config.RedisConfig) (*redis.Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}
	return redis.NewClient(opts), nil
}
