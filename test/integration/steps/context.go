// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

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
	"github.com/household-budget/backend/test/integration/mock"
)

const (
	testJWTSecret         = "test-jwt-secret-key-for-testing-purposes"
	testHouseholdName     = "test-household"
	testHouseholdPassword = "household-test-password"
)

// testToday is the fixed date the test server's clock reports. It falls in
// period 1 of March 2025, so date-dependent scenarios are deterministic.
var testToday = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

var serverInit sync.Once
var testDB *mock.Db
var testClock *mock.Clock
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			logger := slog.Default()

			// Repositories
			incomeRepo := persistence.NewIncomeSourceRepository(testDB.DbConn)
			billRepo := persistence.NewBillRepository(testDB.DbConn)
			cardRepo := persistence.NewCreditCardRepository(testDB.DbConn)
			loanRepo := persistence.NewLoanRepository(testDB.DbConn)
			subRepo := persistence.NewSubscriptionRepository(testDB.DbConn)
			noteRepo := persistence.NewBudgetNoteRepository(testDB.DbConn)
			goalRepo := persistence.NewSavingsGoalRepository(testDB.DbConn)
			checkRepo := persistence.NewPaidCheckRepository(testDB.DbConn)

			// Adapters and services
			checkCache := cache.NewCheckCache(mock.NewRedis())
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, 15*time.Minute, 7*24*time.Hour)
			clock := mock.NewClock(testToday)
			testClock = clock

			// Auth use cases
			loginUseCase := auth.NewLoginUseCase(
				hashPassword(testHouseholdPassword), testHouseholdName, passwordService, tokenService)
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

			// Plan and overview use cases
			monthPlanUseCase := monthly.NewGetMonthPlanUseCase(
				incomeRepo, billRepo, cardRepo, loanRepo, checkRepo, checkCache, clock, logger)
			overviewUseCase := dashboard.NewGetOverviewUseCase(
				incomeRepo, billRepo, cardRepo, loanRepo, subRepo, goalRepo, checkRepo, checkCache, clock, logger)

			// Export use case
			snapshotUseCase := export.NewExportSnapshotUseCase(
				incomeRepo, billRepo, cardRepo, loanRepo, subRepo, noteRepo, goalRepo, clock)

			// Controllers
			healthController := controller.NewHealthController(
				func() bool { return testDB != nil && testDB.DbConn != nil },
				func() bool { return true },
			)
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
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
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
