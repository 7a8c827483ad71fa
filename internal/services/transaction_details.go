package services

import (
	"gorm.io/gorm"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// attach copies every submitted detail pointer onto t.
func (d TransactionDetails) attach(t *models.Transaction) {
	t.CashDeposit = d.CashDeposit
	t.Cheque = d.Cheque
	t.BankTransfer = d.BankTransfer
	t.OnlineTransfer = d.OnlineTransfer
	t.UPISettlement = d.UPISettlement
	t.AccountTransfer = d.AccountTransfer
	t.BankCharge = d.BankCharge
}

// presentKinds lists the detail shapes set on t.
func presentKinds(t *models.Transaction) []models.DetailKind {
	var kinds []models.DetailKind
	if t.CashDeposit != nil {
		kinds = append(kinds, models.DetailKindCashDeposit)
	}
	if t.Cheque != nil {
		kinds = append(kinds, models.DetailKindCheque)
	}
	if t.BankTransfer != nil {
		kinds = append(kinds, models.DetailKindBankTransfer)
	}
	if t.OnlineTransfer != nil {
		kinds = append(kinds, models.DetailKindOnlineTransfer)
	}
	if t.UPISettlement != nil {
		kinds = append(kinds, models.DetailKindUPISettlement)
	}
	if t.AccountTransfer != nil {
		kinds = append(kinds, models.DetailKindAccountTransfer)
	}
	if t.BankCharge != nil {
		kinds = append(kinds, models.DetailKindBankCharge)
	}
	return kinds
}

// detailRecord returns the detail record of the shape t's type requires, or
// nil when it is not set.
func detailRecord(t *models.Transaction) interface{} {
	switch t.Type.RequiredDetailKind() {
	case models.DetailKindCashDeposit:
		if t.CashDeposit != nil {
			return t.CashDeposit
		}
	case models.DetailKindCheque:
		if t.Cheque != nil {
			return t.Cheque
		}
	case models.DetailKindBankTransfer:
		if t.BankTransfer != nil {
			return t.BankTransfer
		}
	case models.DetailKindOnlineTransfer:
		if t.OnlineTransfer != nil {
			return t.OnlineTransfer
		}
	case models.DetailKindUPISettlement:
		if t.UPISettlement != nil {
			return t.UPISettlement
		}
	case models.DetailKindAccountTransfer:
		if t.AccountTransfer != nil {
			return t.AccountTransfer
		}
	case models.DetailKindBankCharge:
		if t.BankCharge != nil {
			return t.BankCharge
		}
	}
	return nil
}

// createDetail inserts the detail record t's type requires, keyed to t.ID.
func createDetail(tx *gorm.DB, t *models.Transaction) error {
	record := detailRecord(t)
	if record == nil {
		return apperrors.ErrMissingDetailRecord
	}
	keyDetail(record, t.ID, "")
	if err := tx.Create(record).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// replaceDetail overwrites the stored detail of existing with the one carried
// by updated. A detail missing from storage is created.
func replaceDetail(tx *gorm.DB, existing, updated *models.Transaction) error {
	record := detailRecord(updated)
	if record == nil {
		return apperrors.ErrMissingDetailRecord
	}

	old := detailRecord(existing)
	if old == nil {
		keyDetail(record, updated.ID, "")
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	}
	if record == old {
		return nil
	}

	oldBase := detailBase(old)
	keyDetail(record, updated.ID, oldBase.ID)
	detailBase(record).CreatedAt = oldBase.CreatedAt
	if err := tx.Save(record).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// deleteDetails removes every detail row of transactionID.
func deleteDetails(tx *gorm.DB, transactionID string) error {
	for _, m := range []interface{}{
		&models.CashDepositDetail{},
		&models.ChequeDetail{},
		&models.BankTransferDetail{},
		&models.OnlineTransferDetail{},
		&models.UPISettlementDetail{},
		&models.AccountTransferDetail{},
		&models.BankChargeDetail{},
	} {
		if err := tx.Unscoped().Where("transaction_id = ?", transactionID).Delete(m).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}
	return nil
}

// keyDetail points record at transactionID and sets its own ID.
func keyDetail(record interface{}, transactionID, id string) {
	switch d := record.(type) {
	case *models.CashDepositDetail:
		d.TransactionID = transactionID
	case *models.ChequeDetail:
		d.TransactionID = transactionID
	case *models.BankTransferDetail:
		d.TransactionID = transactionID
	case *models.OnlineTransferDetail:
		d.TransactionID = transactionID
	case *models.UPISettlementDetail:
		d.TransactionID = transactionID
	case *models.AccountTransferDetail:
		d.TransactionID = transactionID
	case *models.BankChargeDetail:
		d.TransactionID = transactionID
	}
	detailBase(record).ID = id
}

func detailBase(record interface{}) *models.Base {
	switch d := record.(type) {
	case *models.CashDepositDetail:
		return &d.Base
	case *models.ChequeDetail:
		return &d.Base
	case *models.BankTransferDetail:
		return &d.Base
	case *models.OnlineTransferDetail:
		return &d.Base
	case *models.UPISettlementDetail:
		return &d.Base
	case *models.AccountTransferDetail:
		return &d.Base
	case *models.BankChargeDetail:
		return &d.Base
	}
	return &models.Base{}
}

// copyAccountTransferDetail returns a fresh copy of d for the receiving half
// of a transfer.
func copyAccountTransferDetail(d *models.AccountTransferDetail) *models.AccountTransferDetail {
	if d == nil {
		return &models.AccountTransferDetail{}
	}
	return &models.AccountTransferDetail{
		TransferDate: d.TransferDate,
		Reference:    d.Reference,
		Purpose:      d.Purpose,
		Notes:        d.Notes,
	}
}
