// Package router wires services, handlers and middleware into the HTTP API.
package router

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/jiks2239/mytns-finance-manager-sub000/internal/docs" // Import swagger docs
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/handlers"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/middleware"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/services"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/validator"
)

// New builds the API router on db. dates decides what "today" means for the
// future-date rules and the zone plain dates are read in. allowedOrigins
// lists the browser origins granted CORS access; empty or "*" allows any.
func New(db *gorm.DB, dates *ledger.DateValidator, allowedOrigins []string) *gin.Engine {
	validator.Register()

	if dates == nil {
		dates = ledger.NewDateValidator(nil, nil)
	}

	// Initialize services
	accountService := services.NewAccountService(db)
	recipientService := services.NewRecipientService(db)
	transactionService := services.NewTransactionService(db, accountService, dates)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	recipientHandler := handlers.NewRecipientHandler(recipientService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService, dates.Location())

	router := gin.New()
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(corsMiddleware(allowedOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Account routes
	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccountByID)
	accounts.PUT("/:id", accountHandler.UpdateAccount)
	accounts.DELETE("/:id", accountHandler.DeleteAccount)
	accounts.GET("/:id/balance", accountHandler.GetAccountBalance)
	accounts.GET("/:id/transactions", transactionHandler.GetAccountTransactions)

	// Recipient routes
	recipients := v1.Group("/recipients")
	recipients.POST("", recipientHandler.CreateRecipient)
	recipients.GET("", recipientHandler.GetRecipients)
	recipients.GET("/:id", recipientHandler.GetRecipientByID)
	recipients.PUT("/:id", recipientHandler.UpdateRecipient)
	recipients.DELETE("/:id", recipientHandler.DeleteRecipient)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Transaction type rules
	types := v1.Group("/transaction-types")
	types.GET("", transactionHandler.ListTransactionTypes)
	types.GET("/:type/statuses", transactionHandler.GetStatusesForType)

	v1.POST("/maintenance/reconcile-transfers", transactionHandler.ReconcileTransfers)

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = allowedOrigins
	}
	return cors.New(cfg)
}
