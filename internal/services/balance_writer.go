package services

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// applyEffect moves the balance of accountID by e, refusing green debits that
// would overdraw. It must run inside the caller's database transaction.
func applyEffect(tx *gorm.DB, accountID string, e ledger.Effect) error {
	if e.IsZero() {
		return nil
	}
	return writeBalance(tx, accountID, func(balance decimal.Decimal) (decimal.Decimal, error) {
		return ledger.Apply(balance, e)
	})
}

// revertEffect undoes an effect previously applied to accountID.
func revertEffect(tx *gorm.DB, accountID string, e ledger.Effect) error {
	if e.IsZero() {
		return nil
	}
	return writeBalance(tx, accountID, func(balance decimal.Decimal) (decimal.Decimal, error) {
		return ledger.Revert(balance, e), nil
	})
}

// writeBalance is the only writer of accounts.current_balance. It reads the
// account, computes the new balance and stores it with a compare-and-swap on
// version.
func writeBalance(tx *gorm.DB, accountID string, next func(decimal.Decimal) (decimal.Decimal, error)) error {
	var account models.Account
	if err := tx.Select("id", "current_balance", "version").Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	balance, err := next(account.CurrentBalance)
	if err != nil {
		return err
	}

	res := tx.Model(&models.Account{}).
		Where("id = ? AND version = ?", account.ID, account.Version).
		Updates(map[string]interface{}{
			"current_balance": balance,
			"version":         account.Version + 1,
		})
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrConcurrentModification
	}
	return nil
}
