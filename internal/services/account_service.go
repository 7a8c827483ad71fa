package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
)

// accountService handles account-related business logic.
type accountService struct {
	db *gorm.DB
}

// NewAccountService creates a new AccountServicer.
func NewAccountService(db *gorm.DB) AccountServicer {
	return &accountService{db: db}
}

// CreateAccount opens an account with its current balance equal to the
// opening balance, and registers the account's shadow recipient.
func (s *accountService) CreateAccount(input AccountInput) (*models.Account, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account name is required")
	}

	accountType := input.Type
	if accountType == "" {
		accountType = models.AccountTypeCurrent
	}
	if !accountType.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid account type")
	}

	if !ledger.FitsMoneyScale(input.OpeningBalance) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput,
			fmt.Sprintf("opening balance must have at most %d decimal places", ledger.MoneyPlaces))
	}

	account := &models.Account{
		Name:           name,
		Type:           accountType,
		Description:    input.Description,
		BankName:       input.BankName,
		AccountNumber:  input.AccountNumber,
		OpeningBalance: input.OpeningBalance,
		CurrentBalance: input.OpeningBalance,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if _, err := ensureAccountRecipient(tx, account); err != nil {
			return err
		}
		_, err := ensureOwnerRecipient(tx)
		return err
	})
	if err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccounts retrieves a paginated list of accounts.
func (s *accountService) GetAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error) {
	page.Defaults()

	var totalItems int64
	base := s.db.Model(&models.Account{})
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var accounts []models.Account
	if err := base.Scopes(pagination.Paginate(page)).Order("name ASC").Find(&accounts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(accounts, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetAccountByID retrieves an account by ID
func (s *accountService) GetAccountByID(accountID string) (*models.Account, error) {
	return loadAccount(s.db, accountID)
}

// UpdateAccount updates the descriptive fields of an account and keeps its
// shadow recipient's name in step.
func (s *accountService) UpdateAccount(accountID string, fields AccountUpdateFields) (*models.Account, error) {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && strings.TrimSpace(*fields.Name) != "" {
		updates["name"] = strings.TrimSpace(*fields.Name)
	}
	if fields.Type != nil {
		if !fields.Type.IsValid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid account type")
		}
		updates["type"] = *fields.Type
	}
	if fields.Description != nil {
		updates["description"] = *fields.Description
	}
	if fields.BankName != nil {
		updates["bank_name"] = *fields.BankName
	}
	if fields.AccountNumber != nil {
		updates["account_number"] = *fields.AccountNumber
	}

	if len(updates) == 0 {
		return account, nil
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(account).Updates(updates).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if name, ok := updates["name"]; ok {
			if err := tx.Model(&models.Recipient{}).
				Where("linked_account_id = ? AND type = ?", account.ID, models.RecipientTypeAccount).
				Update("name", name).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload to get fresh data
	return s.GetAccountByID(accountID)
}

// DeleteAccount removes an account that no transaction references, along with
// its shadow recipient.
func (s *accountService) DeleteAccount(accountID string) error {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Transaction{}).
			Where("account_id = ? OR to_account_id = ?", account.ID, account.ID).
			Count(&count).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if count > 0 {
			return apperrors.ErrAccountHasTransactions
		}

		if err := tx.Where("linked_account_id = ? AND type = ?", account.ID, models.RecipientTypeAccount).
			Delete(&models.Recipient{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(account).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

// GetCurrentBalance returns the stored running balance of an account.
func (s *accountService) GetCurrentBalance(accountID string) (decimal.Decimal, error) {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	return account.CurrentBalance, nil
}

// VerifyBalance recomputes the balance from the opening balance and every
// green transaction on the account, and compares it with the stored value.
func (s *accountService) VerifyBalance(accountID string) (*BalanceReport, error) {
	account, err := s.GetAccountByID(accountID)
	if err != nil {
		return nil, err
	}

	var transactions []models.Transaction
	if err := s.db.Select("id", "type", "amount", "status").
		Where("account_id = ?", account.ID).
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	effects := make([]ledger.Effect, 0, len(transactions))
	for i := range transactions {
		effects = append(effects, ledger.EffectOf(&transactions[i]))
	}
	computed := ledger.Recompute(account.OpeningBalance, effects)

	return &BalanceReport{
		AccountID:       account.ID,
		OpeningBalance:  account.OpeningBalance,
		StoredBalance:   account.CurrentBalance,
		ComputedBalance: computed,
		Consistent:      computed.Equal(account.CurrentBalance),
	}, nil
}

// loadAccount fetches an account through db, which may be a transaction.
func loadAccount(db *gorm.DB, accountID string) (*models.Account, error) {
	if accountID == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "account ID is required")
	}
	var account models.Account
	if err := db.Where("id = ?", accountID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &account, nil
}
