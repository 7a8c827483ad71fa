package models

// RecipientType represents the classification of a counterparty
type RecipientType string

const (
	RecipientTypeCustomer RecipientType = "CUSTOMER"
	RecipientTypeSupplier RecipientType = "SUPPLIER"
	RecipientTypeUtility  RecipientType = "UTILITY"
	RecipientTypeEmployee RecipientType = "EMPLOYEE"
	RecipientTypeBank     RecipientType = "BANK"
	RecipientTypeOther    RecipientType = "OTHER"

	// RecipientTypeAccount marks the shadow recipient kept in sync with an account.
	RecipientTypeAccount RecipientType = "ACCOUNT"
	// RecipientTypeOwner marks the single "self" recipient used for cash deposits.
	RecipientTypeOwner RecipientType = "OWNER"
)

// IsValid reports whether t is a known recipient type.
func (t RecipientType) IsValid() bool {
	switch t {
	case RecipientTypeCustomer, RecipientTypeSupplier, RecipientTypeUtility,
		RecipientTypeEmployee, RecipientTypeBank, RecipientTypeOther,
		RecipientTypeAccount, RecipientTypeOwner:
		return true
	}
	return false
}

// IsReserved reports whether recipients of this type are maintained by the
// system and hidden from pickers.
func (t RecipientType) IsReserved() bool {
	return t == RecipientTypeAccount || t == RecipientTypeOwner
}

// Recipient is a payee or payer.
//
// User-managed recipients are scoped to exactly one account through
// AccountID. Reserved recipients have no AccountID; ACCOUNT shadows point at
// the account they represent through LinkedAccountID.
type Recipient struct {
	Base
	Name            string        `gorm:"not null" json:"name"`
	Type            RecipientType `gorm:"not null;index" json:"type"`
	AccountID       *string       `gorm:"type:uuid;index" json:"account_id,omitempty"`
	LinkedAccountID *string       `gorm:"type:uuid;uniqueIndex" json:"linked_account_id,omitempty"`
	Phone           string        `json:"phone,omitempty"`
	Email           string        `json:"email,omitempty"`
	BankName        string        `json:"bank_name,omitempty"`
	AccountNumber   string        `json:"account_number,omitempty"`
	IFSC            string        `json:"ifsc,omitempty"`
	Notes           string        `json:"notes,omitempty"`

	// Relationships
	Account *Account `gorm:"foreignKey:AccountID" json:"-"`
}
