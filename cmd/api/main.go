package main

import (
	"fmt"
	"os"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/config"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/database"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/router"
)

// @title           Ledger API
// @version         1.0
// @description     Bookkeeping ledger for small businesses: accounts, recipients, typed transactions with status-driven balances and account-to-account transfers.
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
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	dates := ledger.NewDateValidator(appConfig.Location(), nil)
	r := router.New(dbManager.DB(), dates, appConfig.CORSAllowedOrigins)

	log.Infow("Starting ledger server",
		"port", appConfig.Port,
		"env", appConfig.Env,
		"db_driver", appConfig.DBDriver,
		"timezone", appConfig.Timezone,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return r.Run(":" + appConfig.Port)
}
