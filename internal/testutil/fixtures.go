package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// Amount parses a decimal literal, failing the test on bad input.
func Amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()

	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

// CreateTestAccount creates a current account with a zero opening balance.
func CreateTestAccount(t *testing.T, db *gorm.DB) *models.Account {
	t.Helper()
	return CreateTestAccountWithBalance(t, db, "0")
}

// CreateTestAccountWithBalance creates a current account whose opening and
// current balances are both opening.
func CreateTestAccountWithBalance(t *testing.T, db *gorm.DB, opening string) *models.Account {
	t.Helper()

	balance := Amount(t, opening)
	account := &models.Account{
		Name:           fmt.Sprintf("Test Account %d", nextID()),
		Type:           models.AccountTypeCurrent,
		OpeningBalance: balance,
		CurrentBalance: balance,
	}
	if err := db.Create(account).Error; err != nil {
		t.Fatalf("failed to create test account: %v", err)
	}
	return account
}

// CreateTestRecipient creates a customer recipient scoped to accountID.
func CreateTestRecipient(t *testing.T, db *gorm.DB, accountID string) *models.Recipient {
	t.Helper()

	recipient := &models.Recipient{
		Name:      fmt.Sprintf("Test Recipient %d", nextID()),
		Type:      models.RecipientTypeCustomer,
		AccountID: &accountID,
	}
	if err := db.Create(recipient).Error; err != nil {
		t.Fatalf("failed to create test recipient: %v", err)
	}
	return recipient
}

// CreateTestTransaction inserts a transaction row with a minimal valid detail
// record. It writes storage directly and leaves the account balance alone.
func CreateTestTransaction(t *testing.T, db *gorm.DB, accountID string, txType models.TransactionType, status models.TransactionStatus, amount string) *models.Transaction {
	t.Helper()

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	tx := &models.Transaction{
		AccountID:       accountID,
		Type:            txType,
		Amount:          Amount(t, amount),
		Status:          status,
		Description:     fmt.Sprintf("Test Transaction %d", nextID()),
		TransactionDate: date,
	}
	if err := db.Omit(clause.Associations).Create(tx).Error; err != nil {
		t.Fatalf("failed to create test transaction: %v", err)
	}

	var detail interface{}
	switch txType.RequiredDetailKind() {
	case models.DetailKindCashDeposit:
		detail = &models.CashDepositDetail{TransactionID: tx.ID, DepositDate: &date}
	case models.DetailKindCheque:
		detail = &models.ChequeDetail{TransactionID: tx.ID, ChequeNumber: fmt.Sprintf("%06d", nextID()), IssueDate: &date, DueDate: &date}
	case models.DetailKindBankTransfer:
		detail = &models.BankTransferDetail{TransactionID: tx.ID, TransferDate: &date}
	case models.DetailKindOnlineTransfer:
		detail = &models.OnlineTransferDetail{TransactionID: tx.ID, TransferDate: &date}
	case models.DetailKindUPISettlement:
		detail = &models.UPISettlementDetail{TransactionID: tx.ID, SettlementDate: &date}
	case models.DetailKindAccountTransfer:
		detail = &models.AccountTransferDetail{TransactionID: tx.ID, TransferDate: &date}
	case models.DetailKindBankCharge:
		detail = &models.BankChargeDetail{TransactionID: tx.ID, ChargeType: models.ChargeTypeSMS, DebitDate: &date, ChargeAmount: tx.Amount}
	}
	if detail != nil {
		if err := db.Create(detail).Error; err != nil {
			t.Fatalf("failed to create test transaction detail: %v", err)
		}
	}
	return tx
}
