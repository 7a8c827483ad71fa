package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/ledger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/testutil"
)

func init() {
	logger.Init("test")
}

// fixedNow is "now" for every date rule exercised by these tests.
var fixedNow = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// day returns midnight UTC on the given day of March 2024.
func day(d int) *time.Time {
	t := time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

// testLedger bundles the services over one isolated database.
type testLedger struct {
	db           *gorm.DB
	accounts     AccountServicer
	recipients   RecipientServicer
	transactions TransactionServicer
}

func newTestLedger(t *testing.T) *testLedger {
	t.Helper()

	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })

	accounts := NewAccountService(db)
	dates := ledger.NewDateValidator(time.UTC, func() time.Time { return fixedNow })
	return &testLedger{
		db:           db,
		accounts:     accounts,
		recipients:   NewRecipientService(db),
		transactions: NewTransactionService(db, accounts, dates),
	}
}

// openAccount creates an account through the service so its shadow
// recipient exists.
func (l *testLedger) openAccount(t *testing.T, name, opening string) *models.Account {
	t.Helper()

	account, err := l.accounts.CreateAccount(AccountInput{Name: name, OpeningBalance: dec(opening)})
	testutil.AssertNoError(t, err)
	return account
}

func (l *testLedger) customer(t *testing.T, accountID string) *models.Recipient {
	t.Helper()

	recipient, err := l.recipients.CreateRecipient(RecipientInput{
		Name:      "Customer",
		Type:      models.RecipientTypeCustomer,
		AccountID: accountID,
	})
	testutil.AssertNoError(t, err)
	return recipient
}

func (l *testLedger) assertBalance(t *testing.T, accountID, want string) {
	t.Helper()

	balance, err := l.accounts.GetCurrentBalance(accountID)
	testutil.AssertNoError(t, err)
	testutil.AssertDecimal(t, balance, want)
}

// assertConsistent checks the stored balance against one recomputed from
// the account's transactions.
func (l *testLedger) assertConsistent(t *testing.T, accountID string) {
	t.Helper()

	report, err := l.accounts.VerifyBalance(accountID)
	testutil.AssertNoError(t, err)
	if !report.Consistent {
		t.Errorf("balance drift on %s: stored %s, computed %s",
			accountID, report.StoredBalance, report.ComputedBalance)
	}
}

func cashDeposit(accountID, amount string, status models.TransactionStatus, depositDate *time.Time) TransactionInput {
	return TransactionInput{
		AccountID: accountID,
		Type:      models.TransactionTypeCashDeposit,
		Amount:    dec(amount),
		Status:    status,
		Details:   TransactionDetails{CashDeposit: &models.CashDepositDetail{DepositDate: depositDate}},
	}
}

func chequeGiven(accountID, recipientID, number, amount string, status models.TransactionStatus, cheque *models.ChequeDetail) TransactionInput {
	cheque.ChequeNumber = number
	return TransactionInput{
		AccountID:   accountID,
		RecipientID: &recipientID,
		Type:        models.TransactionTypeChequeGiven,
		Amount:      dec(amount),
		Status:      status,
		Details:     TransactionDetails{Cheque: cheque},
	}
}

func accountTransfer(fromID, toID, amount string, status models.TransactionStatus) TransactionInput {
	return TransactionInput{
		AccountID:   fromID,
		ToAccountID: &toID,
		Type:        models.TransactionTypeAccountTransfer,
		Amount:      dec(amount),
		Status:      status,
		Description: "Move funds",
		Details: TransactionDetails{AccountTransfer: &models.AccountTransferDetail{
			TransferDate: day(12),
			Reference:    "REF-1",
			Purpose:      "Working capital",
		}},
	}
}
