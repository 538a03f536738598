// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/household-budget/backend/internal/integration/entrypoint/controller"
	"github.com/household-budget/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                 *gin.Engine
	healthController       *controller.HealthController
	authController         *controller.AuthController
	incomeController       *controller.IncomeController
	billController         *controller.BillController
	debtController         *controller.DebtController
	subscriptionController *controller.SubscriptionController
	noteController         *controller.NoteController
	savingsGoalController  *controller.SavingsGoalController
	monthlyController      *controller.MonthlyController
	dashboardController    *controller.DashboardController
	checkController        *controller.CheckController
	exportController       *controller.ExportController
	loginRateLimiter       *middleware.RateLimiter
	authMiddleware         *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	incomeController *controller.IncomeController,
	billController *controller.BillController,
	debtController *controller.DebtController,
	subscriptionController *controller.SubscriptionController,
	noteController *controller.NoteController,
	savingsGoalController *controller.SavingsGoalController,
	monthlyController *controller.MonthlyController,
	dashboardController *controller.DashboardController,
	checkController *controller.CheckController,
	exportController *controller.ExportController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:       healthController,
		authController:         authController,
		incomeController:       incomeController,
		billController:         billController,
		debtController:         debtController,
		subscriptionController: subscriptionController,
		noteController:         noteController,
		savingsGoalController:  savingsGoalController,
		monthlyController:      monthlyController,
		dashboardController:    dashboardController,
		checkController:        checkController,
		exportController:       exportController,
		loginRateLimiter:       loginRateLimiter,
		authMiddleware:         authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
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
	v1 := r.engine.Group("/api/v1")
	{
		// Auth routes
		if r.authController != nil && r.loginRateLimiter != nil {
			auth := v1.Group("/auth")
			{
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
				auth.POST("/refresh", r.authController.RefreshToken)
			}
		}

		// Income source routes (require authentication)
		if r.incomeController != nil && r.authMiddleware != nil {
			income := v1.Group("/income-sources")
			income.Use(r.authMiddleware.Authenticate())
			{
				income.GET("", r.incomeController.List)
				income.PATCH("/:id", r.incomeController.Update)
			}
		}

		// Bill routes (require authentication)
		if r.billController != nil && r.authMiddleware != nil {
			bills := v1.Group("/bills")
			bills.Use(r.authMiddleware.Authenticate())
			{
				bills.GET("", r.billController.List)
				bills.POST("", r.billController.Create)
				bills.PATCH("/:id", r.billController.Update)
				bills.DELETE("/:id", r.billController.Delete)
			}
		}

		// Debt routes (require authentication)
		if r.debtController != nil && r.authMiddleware != nil {
			debts := v1.Group("/debts")
			debts.Use(r.authMiddleware.Authenticate())
			{
				debts.GET("", r.debtController.Summary)

				cards := debts.Group("/cards")
				{
					cards.POST("", r.debtController.CreateCard)
					cards.PATCH("/:id", r.debtController.UpdateCard)
					cards.DELETE("/:id", r.debtController.DeleteCard)
				}

				loans := debts.Group("/loans")
				{
					loans.POST("", r.debtController.CreateLoan)
					loans.PATCH("/:id", r.debtController.UpdateLoan)
					loans.DELETE("/:id", r.debtController.DeleteLoan)
				}
			}
		}

		// Subscription routes (require authentication)
		if r.subscriptionController != nil && r.authMiddleware != nil {
			subscriptions := v1.Group("/subscriptions")
			subscriptions.Use(r.authMiddleware.Authenticate())
			{
				subscriptions.GET("", r.subscriptionController.List)
				subscriptions.GET("/summary", r.subscriptionController.Summary)
				subscriptions.POST("", r.subscriptionController.Create)
				subscriptions.PATCH("/:id", r.subscriptionController.Update)
				subscriptions.DELETE("/:id", r.subscriptionController.Delete)
			}
		}

		// Budget note routes (require authentication)
		if r.noteController != nil && r.authMiddleware != nil {
			notes := v1.Group("/notes")
			notes.Use(r.authMiddleware.Authenticate())
			{
				notes.GET("", r.noteController.List)
				notes.POST("", r.noteController.Create)
				notes.PATCH("/:id", r.noteController.Update)
				notes.DELETE("/:id", r.noteController.Delete)
			}
		}

		// Savings goal routes (require authentication)
		if r.savingsGoalController != nil && r.authMiddleware != nil {
			goals := v1.Group("/savings-goals")
			goals.Use(r.authMiddleware.Authenticate())
			{
				goals.GET("", r.savingsGoalController.List)
				goals.POST("", r.savingsGoalController.Create)
				goals.PATCH("/:id", r.savingsGoalController.Update)
				goals.DELETE("/:id", r.savingsGoalController.Delete)
			}
		}

		// Month plan and paid-check routes (require authentication)
		if r.monthlyController != nil && r.authMiddleware != nil {
			months := v1.Group("/months")
			months.Use(r.authMiddleware.Authenticate())
			{
				months.GET("/:year/:month", r.monthlyController.Plan)

				if r.checkController != nil {
					checks := months.Group("/:year/:month/periods/:period/checks")
					{
						checks.GET("", r.checkController.List)
						checks.POST("", r.checkController.Mark)
						checks.DELETE("/:billKey", r.checkController.Unmark)
					}
				}
			}
		}

		// Dashboard routes (require authentication)
		if r.dashboardController != nil && r.authMiddleware != nil {
			dashboard := v1.Group("/dashboard")
			dashboard.Use(r.authMiddleware.Authenticate())
			{
				dashboard.GET("", r.dashboardController.Overview)
			}
		}

		// Export routes (require authentication)
		if r.exportController != nil && r.authMiddleware != nil {
			exports := v1.Group("/export")
			exports.Use(r.authMiddleware.Authenticate())
			{
				exports.GET("", r.exportController.Snapshot)
			}
		}
	}
}

// Engine returns the underlying Gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
