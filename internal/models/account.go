package models

import (
	"github.com/shopspring/decimal"
)

// AccountType represents the classification of an account
type AccountType string

const (
	AccountTypeCurrent AccountType = "CURRENT"
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeCash    AccountType = "CASH"
	AccountTypeCredit  AccountType = "CREDIT"
	AccountTypeOther   AccountType = "OTHER"
)

// AccountTypes lists every account classification.
var AccountTypes = []AccountType{
	AccountTypeCurrent,
	AccountTypeSavings,
	AccountTypeCash,
	AccountTypeCredit,
	AccountTypeOther,
}

// IsValid reports whether t is a known account type.
func (t AccountType) IsValid() bool {
	for _, v := range AccountTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Account represents a bank, cash or credit account.
//
// OpeningBalance is a snapshot taken at creation. CurrentBalance is the
// running total and is only written by the balance engine, guarded by
// Version.
type Account struct {
	Base
	Name           string          `gorm:"not null" json:"name"`
	Type           AccountType     `gorm:"not null" json:"type"`
	Description    string          `json:"description"`
	BankName       string          `json:"bank_name,omitempty"`
	AccountNumber  string          `json:"account_number,omitempty"`
	OpeningBalance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"opening_balance" swaggertype:"string"`
	CurrentBalance decimal.Decimal `gorm:"type:decimal(18,2);not null;default:0" json:"current_balance" swaggertype:"string"`
	Version        int64           `gorm:"not null;default:0" json:"-"`
}
