package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is a ledger entry on one account.
//
// Exactly one of the detail relations is populated, chosen by
// Type.RequiredDetailKind(). ParentTransactionID is set only on the
// receiving half of an account transfer.
type Transaction struct {
	Base
	AccountID           string            `gorm:"type:uuid;not null;index" json:"account_id"`
	RecipientID         *string           `gorm:"type:uuid;index" json:"recipient_id,omitempty"`
	ToAccountID         *string           `gorm:"type:uuid;index" json:"to_account_id,omitempty"`
	ParentTransactionID *string           `gorm:"type:uuid;uniqueIndex" json:"parent_transaction_id,omitempty"`
	Type                TransactionType   `gorm:"not null;index" json:"type"`
	Direction           Direction         `gorm:"-" json:"direction"`
	Amount              decimal.Decimal   `gorm:"type:decimal(18,2);not null" json:"amount" swaggertype:"string"`
	Status              TransactionStatus `gorm:"not null;index" json:"status"`
	Description         string            `json:"description"`
	TransactionDate     time.Time         `gorm:"not null;index" json:"transaction_date"`

	// Relationships
	Account   *Account   `gorm:"foreignKey:AccountID" json:"-"`
	Recipient *Recipient `gorm:"foreignKey:RecipientID" json:"recipient,omitempty"`

	// Detail records
	CashDeposit     *CashDepositDetail     `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"cash_deposit,omitempty"`
	Cheque          *ChequeDetail          `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"cheque,omitempty"`
	BankTransfer    *BankTransferDetail    `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"bank_transfer,omitempty"`
	OnlineTransfer  *OnlineTransferDetail  `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"online_transfer,omitempty"`
	UPISettlement   *UPISettlementDetail   `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"upi_settlement,omitempty"`
	AccountTransfer *AccountTransferDetail `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"account_transfer,omitempty"`
	BankCharge      *BankChargeDetail      `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE" json:"bank_charge,omitempty"`
}

// AfterFind fills the derived direction.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	t.Direction = t.Type.Direction()
	return nil
}

// BeforeSave keeps the derived direction in step with the type.
func (t *Transaction) BeforeSave(tx *gorm.DB) error {
	t.Direction = t.Type.Direction()
	return nil
}

// IsTransferReceipt reports whether t is the system-generated receiving half
// of an account transfer.
func (t *Transaction) IsTransferReceipt() bool {
	return t.ParentTransactionID != nil
}

// DetailPreloads lists the relation names of every detail record.
var DetailPreloads = []string{
	"CashDeposit",
	"Cheque",
	"BankTransfer",
	"OnlineTransfer",
	"UPISettlement",
	"AccountTransfer",
	"BankCharge",
}
