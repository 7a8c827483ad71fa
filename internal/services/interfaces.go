package services

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
)

// AccountInput holds the fields accepted when opening an account.
type AccountInput struct {
	Name           string
	Type           models.AccountType
	Description    string
	BankName       string
	AccountNumber  string
	OpeningBalance decimal.Decimal
}

// AccountUpdateFields holds the optional fields for updating an account.
// Balances are not editable.
type AccountUpdateFields struct {
	Name          *string
	Type          *models.AccountType
	Description   *string
	BankName      *string
	AccountNumber *string
}

// BalanceReport compares the stored balance with one recomputed from the
// account's transactions.
type BalanceReport struct {
	AccountID       string          `json:"account_id"`
	OpeningBalance  decimal.Decimal `json:"opening_balance" swaggertype:"string"`
	StoredBalance   decimal.Decimal `json:"stored_balance" swaggertype:"string"`
	ComputedBalance decimal.Decimal `json:"computed_balance" swaggertype:"string"`
	Consistent      bool            `json:"consistent"`
}

// AccountServicer defines the contract for account-related business logic.
type AccountServicer interface {
	CreateAccount(input AccountInput) (*models.Account, error)
	GetAccounts(page pagination.PageRequest) (*pagination.PageResponse[models.Account], error)
	GetAccountByID(accountID string) (*models.Account, error)
	UpdateAccount(accountID string, fields AccountUpdateFields) (*models.Account, error)
	DeleteAccount(accountID string) error
	GetCurrentBalance(accountID string) (decimal.Decimal, error)
	VerifyBalance(accountID string) (*BalanceReport, error)
}

// RecipientInput holds the fields accepted when creating a recipient.
type RecipientInput struct {
	Name          string
	Type          models.RecipientType
	AccountID     string
	Phone         string
	Email         string
	BankName      string
	AccountNumber string
	IFSC          string
	Notes         string
}

// RecipientUpdateFields holds the optional fields for updating a recipient.
type RecipientUpdateFields struct {
	Name          *string
	Type          *models.RecipientType
	Phone         *string
	Email         *string
	BankName      *string
	AccountNumber *string
	IFSC          *string
	Notes         *string
}

// RecipientServicer defines the contract for recipient-related business logic.
type RecipientServicer interface {
	CreateRecipient(input RecipientInput) (*models.Recipient, error)
	GetRecipients(accountID *string, page pagination.PageRequest) (*pagination.PageResponse[models.Recipient], error)
	GetRecipientByID(recipientID string) (*models.Recipient, error)
	UpdateRecipient(recipientID string, fields RecipientUpdateFields) (*models.Recipient, error)
	DeleteRecipient(recipientID string) error
}

// TransactionDetails carries the detail record submitted with a transaction.
// Only the shape required by the transaction type may be set.
type TransactionDetails struct {
	CashDeposit     *models.CashDepositDetail
	Cheque          *models.ChequeDetail
	BankTransfer    *models.BankTransferDetail
	OnlineTransfer  *models.OnlineTransferDetail
	UPISettlement   *models.UPISettlementDetail
	AccountTransfer *models.AccountTransferDetail
	BankCharge      *models.BankChargeDetail
}

// TransactionInput is the payload for creating a transaction.
// A nil TransactionDate defaults to the detail's primary date, then to now.
type TransactionInput struct {
	AccountID       string
	RecipientID     *string
	ToAccountID     *string
	Type            models.TransactionType
	Amount          decimal.Decimal
	Status          models.TransactionStatus
	Description     string
	TransactionDate *time.Time
	Details         TransactionDetails
}

// TransactionUpdateFields holds the optional fields for updating a
// transaction. Type may be sent but must match the stored type. A non-nil
// Details replaces the stored detail record.
type TransactionUpdateFields struct {
	Type            *models.TransactionType
	Amount          *decimal.Decimal
	Status          *models.TransactionStatus
	RecipientID     *string
	ToAccountID     *string
	Description     *string
	TransactionDate *time.Time
	Details         *TransactionDetails
}

// TransactionFilter holds optional filter parameters for listing transactions.
type TransactionFilter struct {
	FromDate    *time.Time
	ToDate      *time.Time
	Type        *models.TransactionType
	Status      *models.TransactionStatus
	RecipientID *string
}

// ReconcileReport summarises a transfer reconciliation pass.
type ReconcileReport struct {
	SendersChecked   int `json:"senders_checked"`
	ReceiversCreated int `json:"receivers_created"`
	ReceiversUpdated int `json:"receivers_updated"`
	ReceiversDeleted int `json:"receivers_deleted"`
	OrphansDeleted   int `json:"orphans_deleted"`
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	CreateTransaction(input TransactionInput) (*models.Transaction, error)
	UpdateTransaction(transactionID string, fields TransactionUpdateFields) (*models.Transaction, error)
	DeleteTransaction(transactionID string) error
	GetTransactionByID(transactionID string) (*models.Transaction, error)
	GetAccountTransactions(accountID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetValidStatusesForType(transactionType models.TransactionType) ([]models.TransactionStatus, error)
	ReconcileTransfers() (*ReconcileReport, error)
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
