package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pukassein/pukatracker/internal/config"
	"github.com/pukassein/pukatracker/internal/database"
	"github.com/pukassein/pukatracker/internal/handlers"
	"github.com/pukassein/pukatracker/internal/logger"
	"github.com/pukassein/pukatracker/internal/middleware"
	"github.com/pukassein/pukatracker/internal/services"
	"github.com/pukassein/pukatracker/internal/validator"

	_ "github.com/pukassein/pukatracker/internal/docs" // Import swagger docs
)

// @title           Pukatracker API
// @version         1.0
// @description     Pukatracker is a personal finance backend that tracks income and expenses, recurring bills, dual-currency balances, and third-party debts.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	transactionService := services.NewTransactionService(db)
	balanceService := services.NewBalanceService(db)
	debtService := services.NewDebtService(db)
	recurringService := services.NewRecurringService(db)
	reportService := services.NewReportService(transactionService)

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	balanceHandler := handlers.NewBalanceHandler(balanceService, transactionService)
	debtHandler := handlers.NewDebtHandler(debtService)
	recurringHandler := handlers.NewRecurringHandler(recurringService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Dashboard reports
	v1.GET("/summary", reportHandler.GetSummary)
	v1.GET("/budget", reportHandler.GetBudget)
	v1.GET("/statistics", reportHandler.GetStatistics)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Balance and exchange routes
	v1.GET("/balances", balanceHandler.GetBalances)
	v1.PUT("/balances", balanceHandler.UpdateBalances)
	v1.POST("/exchange", balanceHandler.Exchange)
	v1.GET("/exchange", balanceHandler.GetExchangeHistory)

	// Debt routes
	debts := v1.Group("/debts")
	debts.GET("/:tag", debtHandler.GetDebt)
	debts.POST("/:tag/settle", debtHandler.SettleDebt)

	// Recurring payment routes
	recurring := v1.Group("/recurring")
	recurring.POST("", recurringHandler.CreatePayment)
	recurring.GET("", recurringHandler.GetPayments)
	recurring.GET("/checklist", recurringHandler.GetChecklist)
	recurring.POST("/:id/paid", recurringHandler.MarkPaid)
	recurring.DELETE("/:id/paid/:month", recurringHandler.UnmarkPaid)

	log.Infof("Starting Pukatracker backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
