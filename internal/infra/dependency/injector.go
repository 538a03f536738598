// Package dependency provides dependency injection for the application.
package dependency

import (
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/household-budget/backend/config"
	"github.com/household-budget/backend/internal/application/usecase/auth"
	"github.com/household-budget/backend/internal/application/usecase/bill"
	"github.com/household-budget/backend/internal/application/usecase/check"
	"github.com/household-budget/backend/internal/application/usecase/dashboard"
	"github.com/household-budget/backend/internal/application/usecase/debt"
	"github.com/household-budget/backend/internal/application/usecase/export"
	"github.com/household-budget/backend/internal/application/usecase/income"
	"github.com/household-budget/backend/internal/application/usecase/monthly"
	"github.com/household-budget/backend/internal/application/usecase/note"
	"github.com/household-budget/backend/internal/application/usecase/savingsgoal"
	"github.com/household-budget/backend/internal/application/usecase/subscription"
	"github.com/household-budget/backend/internal/infra/server/router"
	"github.com/household-budget/backend/internal/integration/adapters"
	"github.com/household-budget/backend/internal/integration/cache"
	"github.com/household-budget/backend/internal/integration/entrypoint/controller"
	"github.com/household-budget/backend/internal/integration/entrypoint/middleware"
	"github.com/household-budget/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config     *config.Config
	DB         *gorm.DB
	Router     *router.Router
	SyncWorker *check.SyncWorker
}

// HealthCheckers bundles the dependency probes exposed on /health.
type HealthCheckers struct {
	Database func() bool
	Cache    func() bool
}

// NewInjector creates a new dependency injector with all dependencies wired.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, checkers HealthCheckers) *Injector {
	logger := slog.Default()

	// Repositories
	incomeRepo := persistence.NewIncomeSourceRepository(db)
	billRepo := persistence.NewBillRepository(db)
	cardRepo := persistence.NewCreditCardRepository(db)
	loanRepo := persistence.NewLoanRepository(db)
	subRepo := persistence.NewSubscriptionRepository(db)
	noteRepo := persistence.NewBudgetNoteRepository(db)
	goalRepo := persistence.NewSavingsGoalRepository(db)
	checkRepo := persistence.NewPaidCheckRepository(db)

	// Adapters and services
	checkCache := cache.NewCheckCache(redisClient)
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry, cfg.JWT.RefreshTokenExpiry)
	clock := adapters.NewSystemClock()

	// Auth use cases
	loginUseCase := auth.NewLoginUseCase(cfg.Household.PasswordHash, cfg.Household.Name, passwordService, tokenService)
	refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)

	// Income use cases
	listIncomeUseCase := income.NewListIncomeSourcesUseCase(incomeRepo)
	updateIncomeUseCase := income.NewUpdateIncomeSourceUseCase(incomeRepo)

	// Bill use cases
	listBillsUseCase := bill.NewListBillsUseCase(billRepo)
	createBillUseCase := bill.NewCreateBillUseCase(billRepo)
	updateBillUseCase := bill.NewUpdateBillUseCase(billRepo)
	deleteBillUseCase := bill.NewDeleteBillUseCase(billRepo)

	// Debt use cases
	debtSummaryUseCase := debt.NewGetDebtSummaryUseCase(cardRepo, loanRepo)
	createCardUseCase := debt.NewCreateCreditCardUseCase(cardRepo)
	updateCardUseCase := debt.NewUpdateCreditCardUseCase(cardRepo)
	deleteCardUseCase := debt.NewDeleteCreditCardUseCase(cardRepo)
	createLoanUseCase := debt.NewCreateLoanUseCase(loanRepo)
	updateLoanUseCase := debt.NewUpdateLoanUseCase(loanRepo)
	deleteLoanUseCase := debt.NewDeleteLoanUseCase(loanRepo)

	// Subscription use cases
	listSubsUseCase := subscription.NewListSubscriptionsUseCase(subRepo)
	subSummaryUseCase := subscription.NewGetSubscriptionSummaryUseCase(subRepo)
	createSubUseCase := subscription.NewCreateSubscriptionUseCase(subRepo)
	updateSubUseCase := subscription.NewUpdateSubscriptionUseCase(subRepo)
	deleteSubUseCase := subscription.NewDeleteSubscriptionUseCase(subRepo)

	// Note use cases
	listNotesUseCase := note.NewListNotesUseCase(noteRepo)
	createNoteUseCase := note.NewCreateNoteUseCase(noteRepo)
	updateNoteUseCase := note.NewUpdateNoteUseCase(noteRepo)
	deleteNoteUseCase := note.NewDeleteNoteUseCase(noteRepo)

	// Savings goal use cases
	listGoalsUseCase := savingsgoal.NewListSavingsGoalsUseCase(goalRepo)
	createGoalUseCase := savingsgoal.NewCreateSavingsGoalUseCase(goalRepo)
	updateGoalUseCase := savingsgoal.NewUpdateSavingsGoalUseCase(goalRepo)
	deleteGoalUseCase := savingsgoal.NewDeleteSavingsGoalUseCase(goalRepo)

	// Paid-check use cases
	listChecksUseCase := check.NewListChecksUseCase(checkRepo, checkCache, logger)
	markCheckUseCase := check.NewMarkCheckUseCase(checkRepo, checkCache, logger)
	unmarkCheckUseCase := check.NewUnmarkCheckUseCase(checkRepo, checkCache, logger)
	syncWorker := check.NewSyncWorker(checkRepo, checkCache, check.SyncWorkerConfig{
		PollInterval: cfg.Sync.PollInterval,
	})

	// Plan and overview use cases
	monthPlanUseCase := monthly.NewGetMonthPlanUseCase(
		incomeRepo, billRepo, cardRepo, loanRepo, checkRepo, checkCache, clock, logger)
	overviewUseCase := dashboard.NewGetOverviewUseCase(
		incomeRepo, billRepo, cardRepo, loanRepo, subRepo, goalRepo, checkRepo, checkCache, clock, logger)

	// Export use case
	snapshotUseCase := export.NewExportSnapshotUseCase(
		incomeRepo, billRepo, cardRepo, loanRepo, subRepo, noteRepo, goalRepo, clock)

	// Controllers
	healthController := controller.NewHealthController(checkers.Database, checkers.Cache)
	authController := controller.NewAuthController(loginUseCase, refreshTokenUseCase)
	incomeController := controller.NewIncomeController(listIncomeUseCase, updateIncomeUseCase)
	billController := controller.NewBillController(listBillsUseCase, createBillUseCase, updateBillUseCase, deleteBillUseCase)
	debtController := controller.NewDebtController(
		debtSummaryUseCase,
		createCardUseCase, updateCardUseCase, deleteCardUseCase,
		createLoanUseCase, updateLoanUseCase, deleteLoanUseCase)
	subscriptionController := controller.NewSubscriptionController(
		listSubsUseCase, subSummaryUseCase, createSubUseCase, updateSubUseCase, deleteSubUseCase)
	noteController := controller.NewNoteController(listNotesUseCase, createNoteUseCase, updateNoteUseCase, deleteNoteUseCase)
	savingsGoalController := controller.NewSavingsGoalController(listGoalsUseCase, createGoalUseCase, updateGoalUseCase, deleteGoalUseCase)
	monthlyController := controller.NewMonthlyController(monthPlanUseCase)
	dashboardController := controller.NewDashboardController(overviewUseCase)
	checkController := controller.NewCheckController(listChecksUseCase, markCheckUseCase, unmarkCheckUseCase)
	exportController := controller.NewExportController(snapshotUseCase)

	// Middleware
	loginRateLimiter := middleware.NewRateLimiter(5, time.Minute)
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	r := router.NewRouter(
		healthController,
		authController,
		incomeController,
		billController,
		debtController,
		subscriptionController,
		noteController,
		savingsGoalController,
		monthlyController,
		dashboardController,
		checkController,
		exportController,
		loginRateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:     cfg,
		DB:         db,
		Router:     r,
		SyncWorker: syncWorker,
	}
}
