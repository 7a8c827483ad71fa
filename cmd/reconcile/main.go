// Command reconcile re-derives every account-transfer receipt from its
// sending transaction and removes receipts whose sender is gone.
package main

import (
	"fmt"
	"os"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/config"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/database"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/services"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Reconcile error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	manager, err := database.NewManager(database.NewConfig(cfg))
	if err != nil {
		return err
	}
	defer manager.Close()

	if err := manager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := manager.DB()
	accounts := services.NewAccountService(db)
	transactions := services.NewTransactionService(db, accounts, ledger.NewDateValidator(cfg.Location(), nil))

	report, err := transactions.ReconcileTransfers()
	if err != nil {
		return err
	}

	logger.Get().Infow("Reconciliation complete",
		"senders_checked", report.SendersChecked,
		"receivers_created", report.ReceiversCreated,
		"receivers_updated", report.ReceiversUpdated,
		"receivers_deleted", report.ReceiversDeleted,
		"orphans_deleted", report.OrphansDeleted,
	)
	return nil
}
