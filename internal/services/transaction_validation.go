package services

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// validateDraft runs the structural, temporal, referential and state checks
// on a transaction about to be written. excludeID is the transaction being
// updated, if any. recipient is the already loaded counterparty or nil.
// Checks run in a fixed order and the first failure is returned.
func (s *transactionService) validateDraft(tx *gorm.DB, draft *models.Transaction, recipient *models.Recipient, excludeID string) error {
	if err := s.dates.ValidateTransactionDate(draft.TransactionDate, draft.Status); err != nil {
		return err
	}

	if err := requireDetail(draft); err != nil {
		return err
	}

	if draft.Type.RequiresRecipient() && (draft.RecipientID == nil || *draft.RecipientID == "") {
		return apperrors.WithMessage(apperrors.ErrRecipientRequired,
			fmt.Sprintf("A recipient is required for %s transactions", draft.Type))
	}

	if err := s.dates.Validate(draft); err != nil {
		return err
	}

	if draft.Cheque != nil {
		if err := ensureChequeNumberFree(tx, draft.Cheque.ChequeNumber, excludeID); err != nil {
			return err
		}
	}

	if draft.Type == models.TransactionTypeAccountTransfer {
		if draft.ToAccountID == nil || *draft.ToAccountID == "" {
			return apperrors.ErrDestinationAccountRequired
		}
		if *draft.ToAccountID == draft.AccountID {
			return apperrors.ErrSameAccountTransfer
		}
	}

	if recipient != nil && recipient.AccountID != nil && *recipient.AccountID != draft.AccountID {
		return apperrors.ErrRecipientAccountMismatch
	}

	if !draft.Type.AllowsStatus(draft.Status) {
		return apperrors.WithMessage(apperrors.ErrInvalidStatusForType,
			fmt.Sprintf("Status %s is not valid for %s, expected one of %s",
				draft.Status, draft.Type, joinStatuses(draft.Type.LegalStatuses())))
	}

	return nil
}

// requireDetail checks that draft carries exactly the detail shape its type
// demands.
func requireDetail(draft *models.Transaction) error {
	want := draft.Type.RequiredDetailKind()
	kinds := presentKinds(draft)
	if len(kinds) == 1 && kinds[0] == want {
		return nil
	}
	if len(kinds) == 0 {
		return apperrors.WithMessage(apperrors.ErrMissingDetailRecord,
			fmt.Sprintf("%s details are required for %s transactions", want, draft.Type))
	}
	return apperrors.WithMessage(apperrors.ErrMissingDetailRecord,
		fmt.Sprintf("%s transactions take only %s details", draft.Type, want))
}

// ensureChequeNumberFree rejects a cheque number already used by another
// transaction.
func ensureChequeNumberFree(tx *gorm.DB, number, excludeID string) error {
	q := tx.Model(&models.ChequeDetail{}).Where("cheque_number = ?", number)
	if excludeID != "" {
		q = q.Where("transaction_id <> ?", excludeID)
	}
	var count int64
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.WithMessage(apperrors.ErrDuplicateChequeNumber,
			fmt.Sprintf("Cheque number %s is already in use", number))
	}
	return nil
}

func joinStatuses(statuses []models.TransactionStatus) string {
	parts := make([]string, len(statuses))
	for i, s := range statuses {
		parts[i] = string(s)
	}
	return strings.Join(parts, ", ")
}
