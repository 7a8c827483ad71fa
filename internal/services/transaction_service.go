package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db             *gorm.DB
	accountService AccountServicer
	dates          *ledger.DateValidator
	fanout         *transferFanout
}

// NewTransactionService creates a new TransactionServicer. A nil dates
// validator evaluates "today" in UTC.
func NewTransactionService(db *gorm.DB, accountService AccountServicer, dates *ledger.DateValidator) TransactionServicer {
	if dates == nil {
		dates = ledger.NewDateValidator(time.UTC, nil)
	}
	return &transactionService{
		db:             db,
		accountService: accountService,
		dates:          dates,
		fanout:         newTransferFanout(),
	}
}

// CreateTransaction validates and records a transaction with its detail
// record, applies its balance effect and, for account transfers, creates the
// receiving half. Everything happens in one database transaction.
func (s *transactionService) CreateTransaction(input TransactionInput) (*models.Transaction, error) {
	transactionType, err := normalizeType(input.Type)
	if err != nil {
		return nil, err
	}
	if transactionType.IsSystemOnly() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidTransactionType,
			fmt.Sprintf("%s transactions are created by the system", transactionType))
	}
	if err := validateAmount(input.Amount); err != nil {
		return nil, err
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	draft := &models.Transaction{
		AccountID:   input.AccountID,
		RecipientID: nonEmpty(input.RecipientID),
		ToAccountID: nonEmpty(input.ToAccountID),
		Type:        transactionType,
		Amount:      input.Amount,
		Status:      status,
		Description: strings.TrimSpace(input.Description),
	}
	input.Details.attach(draft)
	normalizeBankCharge(draft)

	switch {
	case input.TransactionDate != nil:
		draft.TransactionDate = *input.TransactionDate
	case ledger.PrimaryDate(draft) != nil:
		draft.TransactionDate = *ledger.PrimaryDate(draft)
	default:
		draft.TransactionDate = s.dates.Now()
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := loadAccount(tx, draft.AccountID); err != nil {
			return err
		}

		recipient, err := s.resolveRecipient(tx, draft, true)
		if err != nil {
			return err
		}

		if err := s.validateDraft(tx, draft, recipient, ""); err != nil {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(draft).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := createDetail(tx, draft); err != nil {
			return err
		}
		if err := applyEffect(tx, draft.AccountID, ledger.EffectOf(draft)); err != nil {
			return err
		}

		if draft.Type == models.TransactionTypeAccountTransfer {
			if _, err := s.fanout.sync(tx, draft); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTransactionByID(draft.ID)
}

// UpdateTransaction changes the scalar fields and/or detail record of a
// transaction. The old balance effect is reversed before the new one is
// applied, so the funds check sees the balance without the old effect.
func (s *transactionService) UpdateTransaction(transactionID string, fields TransactionUpdateFields) (*models.Transaction, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := loadTransaction(tx, transactionID)
		if err != nil {
			return err
		}
		if existing.IsTransferReceipt() {
			return apperrors.ErrTransactionNotEditable
		}

		if fields.Type != nil {
			requested, err := normalizeType(*fields.Type)
			if err != nil {
				return err
			}
			if requested != existing.Type {
				return apperrors.ErrInvalidTypeChange
			}
		}

		draft := *existing
		if fields.Amount != nil {
			if err := validateAmount(*fields.Amount); err != nil {
				return err
			}
			draft.Amount = *fields.Amount
		}
		if fields.Status != nil {
			draft.Status = *fields.Status
		}
		if fields.RecipientID != nil {
			draft.RecipientID = nonEmpty(fields.RecipientID)
		}
		if fields.ToAccountID != nil {
			draft.ToAccountID = nonEmpty(fields.ToAccountID)
		}
		if fields.Description != nil {
			draft.Description = strings.TrimSpace(*fields.Description)
		}
		if fields.TransactionDate != nil {
			draft.TransactionDate = *fields.TransactionDate
		}
		if fields.Details != nil {
			fields.Details.attach(&draft)
			normalizeBankCharge(&draft)
		}

		recipient, err := s.resolveRecipient(tx, &draft, false)
		if err != nil {
			return err
		}

		if err := s.validateDraft(tx, &draft, recipient, existing.ID); err != nil {
			return err
		}

		if err := revertEffect(tx, existing.AccountID, ledger.EffectOf(existing)); err != nil {
			return err
		}

		if err := tx.Model(&models.Transaction{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
			"amount":           draft.Amount,
			"status":           draft.Status,
			"recipient_id":     draft.RecipientID,
			"to_account_id":    draft.ToAccountID,
			"description":      draft.Description,
			"transaction_date": draft.TransactionDate,
		}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := replaceDetail(tx, existing, &draft); err != nil {
			return err
		}

		if err := applyEffect(tx, draft.AccountID, ledger.EffectOf(&draft)); err != nil {
			return err
		}

		if draft.Type == models.TransactionTypeAccountTransfer {
			if _, err := s.fanout.sync(tx, &draft); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetTransactionByID(transactionID)
}

// DeleteTransaction deletes a transaction and its detail record, reverses its
// balance effect and removes the receiving half of a transfer.
func (s *transactionService) DeleteTransaction(transactionID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		existing, err := loadTransaction(tx, transactionID)
		if err != nil {
			return err
		}
		if existing.IsTransferReceipt() {
			return apperrors.ErrTransactionNotEditable
		}

		if existing.Type == models.TransactionTypeAccountTransfer {
			if err := s.fanout.detach(tx, existing); err != nil {
				return err
			}
		}

		if err := revertEffect(tx, existing.AccountID, ledger.EffectOf(existing)); err != nil {
			return err
		}
		return deleteTransactionRow(tx, existing.ID)
	})
}

// GetTransactionByID retrieves a transaction with its recipient and detail record.
func (s *transactionService) GetTransactionByID(transactionID string) (*models.Transaction, error) {
	return loadTransaction(s.db.Preload("Recipient"), transactionID)
}

// GetAccountTransactions retrieves a paginated, filtered list of transactions
// for an account. Receipts of transfers that are still pending are hidden.
func (s *transactionService) GetAccountTransactions(accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	if _, err := s.accountService.GetAccountByID(accountID); err != nil {
		return nil, err
	}

	page.Defaults()

	base := s.db.Model(&models.Transaction{}).
		Where("account_id = ?", accountID).
		Where("NOT (parent_transaction_id IS NOT NULL AND status = ?)", models.StatusPending)
	base = applyTransactionFilters(base, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := withDetails(base.Preload("Recipient")).
		Scopes(pagination.Paginate(page)).
		Order("transaction_date DESC, created_at DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetValidStatusesForType returns the legal statuses of a type, accepting
// legacy type names.
func (s *transactionService) GetValidStatusesForType(transactionType models.TransactionType) ([]models.TransactionStatus, error) {
	t, err := normalizeType(transactionType)
	if err != nil {
		return nil, err
	}
	return t.LegalStatuses(), nil
}

func applyTransactionFilters(q *gorm.DB, f TransactionFilter) *gorm.DB {
	if f.FromDate != nil {
		q = q.Where("transaction_date >= ?", *f.FromDate)
	}
	if f.ToDate != nil {
		q = q.Where("transaction_date <= ?", *f.ToDate)
	}
	if f.Type != nil {
		q = q.Where("type = ?", *f.Type)
	}
	if f.Status != nil {
		q = q.Where("status = ?", *f.Status)
	}
	if f.RecipientID != nil {
		q = q.Where("recipient_id = ?", *f.RecipientID)
	}
	return q
}

// resolveRecipient fills in system-assigned recipients and loads the
// recipient the draft points at. Cash deposits default to the owner on
// create; account transfers always address the destination's shadow.
func (s *transactionService) resolveRecipient(tx *gorm.DB, draft *models.Transaction, creating bool) (*models.Recipient, error) {
	switch draft.Type {
	case models.TransactionTypeCashDeposit:
		if creating && draft.RecipientID == nil {
			owner, err := ensureOwnerRecipient(tx)
			if err != nil {
				return nil, err
			}
			draft.RecipientID = &owner.ID
			return owner, nil
		}
	case models.TransactionTypeAccountTransfer:
		if draft.ToAccountID != nil {
			destination, err := loadAccount(tx, *draft.ToAccountID)
			if err != nil {
				if errors.Is(err, apperrors.ErrAccountNotFound) {
					return nil, apperrors.WithMessage(apperrors.ErrAccountNotFound, "Destination account not found")
				}
				return nil, err
			}
			shadow, err := ensureAccountRecipient(tx, destination)
			if err != nil {
				return nil, err
			}
			draft.RecipientID = &shadow.ID
			return shadow, nil
		}
	}

	if draft.RecipientID == nil {
		return nil, nil
	}
	return loadRecipient(tx, *draft.RecipientID)
}

// loadTransaction fetches a transaction and its detail records through db.
func loadTransaction(db *gorm.DB, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := withDetails(db).Where("id = ?", transactionID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

func withDetails(q *gorm.DB) *gorm.DB {
	for _, rel := range models.DetailPreloads {
		q = q.Preload(rel)
	}
	return q
}

// deleteTransactionRow hard deletes a transaction and its details.
func deleteTransactionRow(tx *gorm.DB, transactionID string) error {
	if err := deleteDetails(tx, transactionID); err != nil {
		return err
	}
	if err := tx.Unscoped().Where("id = ?", transactionID).Delete(&models.Transaction{}).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func normalizeType(t models.TransactionType) (models.TransactionType, error) {
	n, ok := models.NormalizeTransactionType(string(t))
	if !ok {
		return "", apperrors.WithMessage(apperrors.ErrInvalidTransactionType,
			fmt.Sprintf("Unsupported transaction type %q", t))
	}
	return n, nil
}

// normalizeBankCharge defaults the charge amount to the transaction amount.
func normalizeBankCharge(t *models.Transaction) {
	if t.BankCharge != nil && t.BankCharge.ChargeAmount.IsZero() {
		t.BankCharge.ChargeAmount = t.Amount
	}
}

func nonEmpty(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}
	if !ledger.FitsMoneyScale(amount) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("amount must have at most %d decimal places", ledger.MoneyPlaces))
	}
	return nil
}
