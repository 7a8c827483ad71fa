package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferMode is the rail used by a bank transfer.
type TransferMode string

const (
	TransferModeNEFT TransferMode = "NEFT"
	TransferModeIMPS TransferMode = "IMPS"
	TransferModeRTGS TransferMode = "RTGS"
	TransferModeUPI  TransferMode = "UPI"
)

// IsValid reports whether m is a known transfer mode.
func (m TransferMode) IsValid() bool {
	switch m {
	case TransferModeNEFT, TransferModeIMPS, TransferModeRTGS, TransferModeUPI:
		return true
	}
	return false
}

// ChargeType categorises a bank fee.
type ChargeType string

const (
	ChargeTypeSMS            ChargeType = "SMS_CHARGES"
	ChargeTypeATM            ChargeType = "ATM_CHARGES"
	ChargeTypeChequeBounce   ChargeType = "CHEQUE_BOUNCE"
	ChargeTypeMinBalance     ChargeType = "MIN_BALANCE_PENALTY"
	ChargeTypeService        ChargeType = "SERVICE_CHARGE"
	ChargeTypeAnnualFee      ChargeType = "ANNUAL_FEE"
	ChargeTypeTransferCharge ChargeType = "TRANSFER_CHARGES"
	ChargeTypeGST            ChargeType = "GST"
	ChargeTypeOther          ChargeType = "OTHER"
)

// IsValid reports whether c is a known charge type.
func (c ChargeType) IsValid() bool {
	switch c {
	case ChargeTypeSMS, ChargeTypeATM, ChargeTypeChequeBounce, ChargeTypeMinBalance,
		ChargeTypeService, ChargeTypeAnnualFee, ChargeTypeTransferCharge, ChargeTypeGST,
		ChargeTypeOther:
		return true
	}
	return false
}

// CashDepositDetail holds the details of a cash deposit.
type CashDepositDetail struct {
	Base
	TransactionID string     `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	DepositDate   *time.Time `json:"deposit_date,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// ChequeDetail holds the details of a received or issued cheque.
// ChequeNumber is unique across every transaction.
type ChequeDetail struct {
	Base
	TransactionID string           `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	ChequeNumber  string           `gorm:"not null;uniqueIndex" json:"cheque_number"`
	IssueDate     *time.Time       `json:"issue_date,omitempty"`
	DueDate       *time.Time       `json:"due_date,omitempty"`
	SubmittedDate *time.Time       `json:"submitted_date,omitempty"`
	ClearedDate   *time.Time       `json:"cleared_date,omitempty"`
	BounceCharge  *decimal.Decimal `gorm:"type:decimal(18,2)" json:"bounce_charge,omitempty" swaggertype:"string"`
	BankName      string           `json:"bank_name,omitempty"`
	Notes         string           `json:"notes,omitempty"`
}

// BankTransferDetail holds the details of a bank transfer in or out.
type BankTransferDetail struct {
	Base
	TransactionID   string       `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	TransferDate    *time.Time   `json:"transfer_date,omitempty"`
	SettlementDate  *time.Time   `json:"settlement_date,omitempty"`
	TransferMode    TransferMode `json:"transfer_mode,omitempty"`
	ReferenceNumber string       `json:"reference_number,omitempty"`
	Notes           string       `json:"notes,omitempty"`
}

// OnlineTransferDetail holds the details of an NEFT, IMPS, RTGS or UPI payment.
type OnlineTransferDetail struct {
	Base
	TransactionID   string     `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	TransferDate    *time.Time `json:"transfer_date,omitempty"`
	SettlementDate  *time.Time `json:"settlement_date,omitempty"`
	ReferenceNumber string     `json:"reference_number,omitempty"`
	Notes           string     `json:"notes,omitempty"`
}

// UPISettlementDetail holds the details of a UPI merchant settlement.
type UPISettlementDetail struct {
	Base
	TransactionID  string     `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	SettlementDate *time.Time `json:"settlement_date,omitempty"`
	UPIReference   string     `json:"upi_reference,omitempty"`
	BatchNumber    string     `json:"batch_number,omitempty"`
	Notes          string     `json:"notes,omitempty"`
}

// AccountTransferDetail holds the details of a transfer between two accounts.
// Both halves of a transfer carry their own copy.
type AccountTransferDetail struct {
	Base
	TransactionID string     `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	TransferDate  *time.Time `json:"transfer_date,omitempty"`
	Reference     string     `json:"reference,omitempty"`
	Purpose       string     `json:"purpose,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// BankChargeDetail holds the details of a fee debited by the bank.
type BankChargeDetail struct {
	Base
	TransactionID string          `gorm:"type:uuid;not null;uniqueIndex" json:"transaction_id"`
	ChargeType    ChargeType      `gorm:"not null" json:"charge_type"`
	DebitDate     *time.Time      `json:"debit_date,omitempty"`
	ChargeAmount  decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"charge_amount" swaggertype:"string"`
	Narration     string          `json:"narration,omitempty"`
}
