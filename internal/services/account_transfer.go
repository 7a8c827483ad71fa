package services

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// TransferReceiptPrefix starts the description of every transfer receipt.
const TransferReceiptPrefix = "[Account Transfer] from "

type fanoutAction string

const (
	fanoutNone    fanoutAction = "none"
	fanoutCreated fanoutAction = "created"
	fanoutUpdated fanoutAction = "updated"
	fanoutDeleted fanoutAction = "deleted"
)

// transferFanout keeps the receiving half of an account transfer in step with
// the sending half. All of its methods run inside the sender's database
// transaction.
type transferFanout struct {
	log *zap.SugaredLogger
}

func newTransferFanout() *transferFanout {
	return &transferFanout{log: logger.Get().Named("transfer")}
}

// receiverStatus maps a sender status onto the receipt status. ok is false
// when the sender status calls for no receipt.
func receiverStatus(sender models.TransactionStatus) (status models.TransactionStatus, ok bool) {
	switch sender {
	case models.StatusPending:
		return models.StatusPending, true
	case models.StatusTransferred:
		return models.StatusReceived, true
	}
	return "", false
}

// sync creates, updates or deletes the receipt of sender so that it matches
// the sender's current state. Running it twice has no further effect.
func (f *transferFanout) sync(tx *gorm.DB, sender *models.Transaction) (fanoutAction, error) {
	action, err := f.reconcile(tx, sender)
	if err != nil {
		f.log.Errorw("transfer receipt sync failed", "sender_id", sender.ID, "status", sender.Status, "error", err)
		return fanoutNone, syncFailed(err)
	}
	if action != fanoutNone {
		f.log.Infow("transfer receipt synced",
			"sender_id", sender.ID,
			"to_account_id", sender.ToAccountID,
			"status", sender.Status,
			"action", action,
		)
	}
	return action, nil
}

// detach deletes the receipt of a sender that is being deleted.
func (f *transferFanout) detach(tx *gorm.DB, sender *models.Transaction) error {
	receiver, err := findReceiver(tx, sender.ID)
	if err != nil {
		return syncFailed(err)
	}
	if receiver == nil {
		return nil
	}
	if err := removeReceiver(tx, receiver); err != nil {
		return syncFailed(err)
	}
	f.log.Infow("transfer receipt removed", "sender_id", sender.ID, "receiver_id", receiver.ID)
	return nil
}

func (f *transferFanout) reconcile(tx *gorm.DB, sender *models.Transaction) (fanoutAction, error) {
	receiver, err := findReceiver(tx, sender.ID)
	if err != nil {
		return fanoutNone, err
	}

	want, keep := receiverStatus(sender.Status)
	if !keep {
		if sender.Status == models.StatusCancelled && receiver != nil {
			return fanoutDeleted, removeReceiver(tx, receiver)
		}
		return fanoutNone, nil
	}

	if sender.ToAccountID == nil {
		return fanoutNone, apperrors.ErrDestinationAccountRequired
	}

	source, err := loadAccount(tx, sender.AccountID)
	if err != nil {
		return fanoutNone, err
	}

	// A new destination gets a new receipt.
	if receiver != nil && receiver.AccountID != *sender.ToAccountID {
		if err := removeReceiver(tx, receiver); err != nil {
			return fanoutNone, err
		}
		receiver = nil
	}

	if receiver == nil {
		return fanoutCreated, createReceiver(tx, sender, source, want)
	}
	if receiverMatches(receiver, sender, source, want) {
		return fanoutNone, nil
	}
	return fanoutUpdated, updateReceiver(tx, receiver, sender, source, want)
}

func createReceiver(tx *gorm.DB, sender *models.Transaction, source *models.Account, status models.TransactionStatus) error {
	shadow, err := ensureAccountRecipient(tx, source)
	if err != nil {
		return err
	}

	parentID := sender.ID
	receiver := &models.Transaction{
		AccountID:           *sender.ToAccountID,
		RecipientID:         &shadow.ID,
		ParentTransactionID: &parentID,
		Type:                models.TransactionTypeAccountTransferIn,
		Amount:              sender.Amount,
		Status:              status,
		Description:         TransferReceiptPrefix + source.Name,
		TransactionDate:     sender.TransactionDate,
		AccountTransfer:     copyAccountTransferDetail(sender.AccountTransfer),
	}

	if err := tx.Omit(clause.Associations).Create(receiver).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := createDetail(tx, receiver); err != nil {
		return err
	}
	return applyEffect(tx, receiver.AccountID, ledger.EffectOf(receiver))
}

func updateReceiver(tx *gorm.DB, receiver, sender *models.Transaction, source *models.Account, status models.TransactionStatus) error {
	if err := revertEffect(tx, receiver.AccountID, ledger.EffectOf(receiver)); err != nil {
		return err
	}

	updated := *receiver
	updated.Amount = sender.Amount
	updated.Status = status
	updated.TransactionDate = sender.TransactionDate
	updated.Description = TransferReceiptPrefix + source.Name
	updated.AccountTransfer = copyAccountTransferDetail(sender.AccountTransfer)

	if err := tx.Model(&models.Transaction{}).Where("id = ?", receiver.ID).Updates(map[string]interface{}{
		"amount":           updated.Amount,
		"status":           updated.Status,
		"transaction_date": updated.TransactionDate,
		"description":      updated.Description,
	}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if err := replaceDetail(tx, receiver, &updated); err != nil {
		return err
	}
	return applyEffect(tx, updated.AccountID, ledger.EffectOf(&updated))
}

// removeReceiver reverses a receipt's credit and deletes it.
func removeReceiver(tx *gorm.DB, receiver *models.Transaction) error {
	if err := revertEffect(tx, receiver.AccountID, ledger.EffectOf(receiver)); err != nil {
		return err
	}
	return deleteTransactionRow(tx, receiver.ID)
}

// findReceiver looks a receipt up by its parent link only.
func findReceiver(tx *gorm.DB, senderID string) (*models.Transaction, error) {
	var receiver models.Transaction
	err := tx.Preload("AccountTransfer").Where("parent_transaction_id = ?", senderID).First(&receiver).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &receiver, nil
}

func receiverMatches(receiver, sender *models.Transaction, source *models.Account, status models.TransactionStatus) bool {
	if !receiver.Amount.Equal(sender.Amount) ||
		receiver.Status != status ||
		!receiver.TransactionDate.Equal(sender.TransactionDate) ||
		receiver.Description != TransferReceiptPrefix+source.Name {
		return false
	}

	have, want := receiver.AccountTransfer, copyAccountTransferDetail(sender.AccountTransfer)
	if have == nil {
		return false
	}
	return sameDate(have.TransferDate, want.TransferDate) &&
		have.Reference == want.Reference &&
		have.Purpose == want.Purpose &&
		have.Notes == want.Notes
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// syncFailed reports a receipt failure as TRANSFER_SYNC_FAILED. Lost races
// keep their own code so callers can retry.
func syncFailed(err error) error {
	if errors.Is(err, apperrors.ErrConcurrentModification) || errors.Is(err, apperrors.ErrTransferSyncFailed) {
		return err
	}
	return apperrors.Wrap(apperrors.ErrTransferSyncFailed, err)
}

// ReconcileTransfers re-runs the fan-out for every transfer sender and
// deletes receipts whose sender no longer exists. It is safe to run
// repeatedly.
func (s *transactionService) ReconcileTransfers() (*ReconcileReport, error) {
	report := &ReconcileReport{}
	log := logger.Get().Named("reconcile")

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var senders []models.Transaction
		if err := tx.Preload("AccountTransfer").
			Where("type = ?", models.TransactionTypeAccountTransfer).
			Order("created_at ASC").
			Find(&senders).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		for i := range senders {
			action, err := s.fanout.sync(tx, &senders[i])
			if err != nil {
				return err
			}
			report.SendersChecked++
			switch action {
			case fanoutCreated:
				report.ReceiversCreated++
			case fanoutUpdated:
				report.ReceiversUpdated++
			case fanoutDeleted:
				report.ReceiversDeleted++
			}
		}

		var orphans []models.Transaction
		if err := tx.Where("parent_transaction_id IS NOT NULL").
			Where("parent_transaction_id NOT IN (?)",
				tx.Model(&models.Transaction{}).Select("id").Where("type = ?", models.TransactionTypeAccountTransfer)).
			Find(&orphans).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		for i := range orphans {
			if err := removeReceiver(tx, &orphans[i]); err != nil {
				return syncFailed(err)
			}
			log.Warnw("removed orphaned transfer receipt",
				"receiver_id", orphans[i].ID,
				"parent_transaction_id", orphans[i].ParentTransactionID,
			)
			report.OrphansDeleted++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Infow("transfer reconciliation finished",
		"senders_checked", report.SendersChecked,
		"created", report.ReceiversCreated,
		"updated", report.ReceiversUpdated,
		"deleted", report.ReceiversDeleted,
		"orphans", report.OrphansDeleted,
	)
	return report, nil
}
