package models

import "strings"

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeCashDeposit       TransactionType = "CASH_DEPOSIT"
	TransactionTypeChequeReceived    TransactionType = "CHEQUE_RECEIVED"
	TransactionTypeChequeGiven       TransactionType = "CHEQUE_GIVEN"
	TransactionTypeBankTransferIn    TransactionType = "BANK_TRANSFER_IN"
	TransactionTypeBankTransferOut   TransactionType = "BANK_TRANSFER_OUT"
	TransactionTypeNEFT              TransactionType = "NEFT"
	TransactionTypeIMPS              TransactionType = "IMPS"
	TransactionTypeRTGS              TransactionType = "RTGS"
	TransactionTypeUPI               TransactionType = "UPI"
	TransactionTypeUPISettlement     TransactionType = "UPI_SETTLEMENT"
	TransactionTypeAccountTransfer   TransactionType = "ACCOUNT_TRANSFER"
	TransactionTypeBankCharge        TransactionType = "BANK_CHARGE"
	TransactionTypeAccountTransferIn TransactionType = "ACCOUNT_TRANSFER_IN"
)

// Direction says whether a transaction adds to or takes from its account.
type Direction string

const (
	DirectionCredit Direction = "CREDIT"
	DirectionDebit  Direction = "DEBIT"
)

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	if d == DirectionCredit {
		return DirectionDebit
	}
	return DirectionCredit
}

// DetailKind identifies which detail record a transaction type carries.
type DetailKind string

const (
	DetailKindCashDeposit     DetailKind = "cash_deposit"
	DetailKindCheque          DetailKind = "cheque"
	DetailKindBankTransfer    DetailKind = "bank_transfer"
	DetailKindOnlineTransfer  DetailKind = "online_transfer"
	DetailKindUPISettlement   DetailKind = "upi_settlement"
	DetailKindAccountTransfer DetailKind = "account_transfer"
	DetailKindBankCharge      DetailKind = "bank_charge"
)

// TypeRule is the static behaviour of one transaction type.
type TypeRule struct {
	Direction         Direction
	DetailKind        DetailKind
	Statuses          []TransactionStatus
	Completion        TransactionStatus
	RecipientRequired bool

	// SystemOnly types are generated by the ledger and never accepted from callers.
	SystemOnly bool
}

var (
	chequeReceivedStatuses = []TransactionStatus{StatusPending, StatusSubmitted, StatusCleared, StatusBounced, StatusCancelled}
	chequeGivenStatuses    = []TransactionStatus{StatusPending, StatusSubmitted, StatusCleared, StatusBounced, StatusStopped, StatusCancelled}
	bankTransferStatuses   = []TransactionStatus{StatusPending, StatusTransferred, StatusCompleted, StatusFailed, StatusCancelled}
	onlineStatuses         = []TransactionStatus{StatusPending, StatusTransferred, StatusSettled, StatusFailed, StatusCancelled}
)

var typeRules = map[TransactionType]TypeRule{
	TransactionTypeCashDeposit: {
		Direction:  DirectionCredit,
		DetailKind: DetailKindCashDeposit,
		Statuses:   []TransactionStatus{StatusPending, StatusDeposited, StatusCancelled},
		Completion: StatusDeposited,
	},
	TransactionTypeChequeReceived: {
		Direction:         DirectionCredit,
		DetailKind:        DetailKindCheque,
		Statuses:          chequeReceivedStatuses,
		Completion:        StatusCleared,
		RecipientRequired: true,
	},
	TransactionTypeChequeGiven: {
		Direction:         DirectionDebit,
		DetailKind:        DetailKindCheque,
		Statuses:          chequeGivenStatuses,
		Completion:        StatusCleared,
		RecipientRequired: true,
	},
	TransactionTypeBankTransferIn: {
		Direction:         DirectionCredit,
		DetailKind:        DetailKindBankTransfer,
		Statuses:          bankTransferStatuses,
		Completion:        StatusTransferred,
		RecipientRequired: true,
	},
	TransactionTypeBankTransferOut: {
		Direction:         DirectionDebit,
		DetailKind:        DetailKindBankTransfer,
		Statuses:          bankTransferStatuses,
		Completion:        StatusTransferred,
		RecipientRequired: true,
	},
	TransactionTypeNEFT: {Direction: DirectionDebit, DetailKind: DetailKindOnlineTransfer, Statuses: onlineStatuses, Completion: StatusTransferred, RecipientRequired: true},
	TransactionTypeIMPS: {Direction: DirectionDebit, DetailKind: DetailKindOnlineTransfer, Statuses: onlineStatuses, Completion: StatusTransferred, RecipientRequired: true},
	TransactionTypeRTGS: {Direction: DirectionDebit, DetailKind: DetailKindOnlineTransfer, Statuses: onlineStatuses, Completion: StatusTransferred, RecipientRequired: true},
	TransactionTypeUPI:  {Direction: DirectionDebit, DetailKind: DetailKindOnlineTransfer, Statuses: onlineStatuses, Completion: StatusTransferred, RecipientRequired: true},
	TransactionTypeUPISettlement: {
		Direction:  DirectionCredit,
		DetailKind: DetailKindUPISettlement,
		Statuses:   []TransactionStatus{StatusPending, StatusSettled, StatusFailed, StatusCancelled},
		Completion: StatusSettled,
	},
	TransactionTypeAccountTransfer: {
		Direction:  DirectionDebit,
		DetailKind: DetailKindAccountTransfer,
		Statuses:   []TransactionStatus{StatusPending, StatusTransferred, StatusCancelled},
		Completion: StatusTransferred,
	},
	TransactionTypeBankCharge: {
		Direction:  DirectionDebit,
		DetailKind: DetailKindBankCharge,
		Statuses:   []TransactionStatus{StatusPending, StatusDebited, StatusCancelled},
		Completion: StatusDebited,
	},
	TransactionTypeAccountTransferIn: {
		Direction:  DirectionCredit,
		DetailKind: DetailKindAccountTransfer,
		Statuses:   []TransactionStatus{StatusPending, StatusReceived, StatusCancelled},
		Completion: StatusReceived,
		SystemOnly: true,
	},
}

// transactionTypeOrder fixes the order types are listed in.
var transactionTypeOrder = []TransactionType{
	TransactionTypeCashDeposit,
	TransactionTypeChequeReceived,
	TransactionTypeChequeGiven,
	TransactionTypeBankTransferIn,
	TransactionTypeBankTransferOut,
	TransactionTypeNEFT,
	TransactionTypeIMPS,
	TransactionTypeRTGS,
	TransactionTypeUPI,
	TransactionTypeUPISettlement,
	TransactionTypeAccountTransfer,
	TransactionTypeBankCharge,
	TransactionTypeAccountTransferIn,
}

// legacyTypeAliases maps retired type names onto their canonical type.
var legacyTypeAliases = map[string]TransactionType{
	"DEPOSIT":       TransactionTypeCashDeposit,
	"CHEQUE":        TransactionTypeChequeReceived,
	"ONLINE":        TransactionTypeNEFT,
	"TRANSFER":      TransactionTypeAccountTransfer,
	"BANK_TRANSFER": TransactionTypeBankTransferOut,
}

// NormalizeTransactionType maps raw input, including legacy aliases, onto a
// canonical type. The second result is false for unknown input.
func NormalizeTransactionType(raw string) (TransactionType, bool) {
	key := strings.ToUpper(strings.TrimSpace(raw))
	if t := TransactionType(key); t.IsValid() {
		return t, true
	}
	if t, ok := legacyTypeAliases[key]; ok {
		return t, true
	}
	return "", false
}

// TransactionTypes returns every canonical type, including system-only ones.
func TransactionTypes() []TransactionType {
	out := make([]TransactionType, len(transactionTypeOrder))
	copy(out, transactionTypeOrder)
	return out
}

// Rule returns the static rule for t.
func (t TransactionType) Rule() (TypeRule, bool) {
	r, ok := typeRules[t]
	return r, ok
}

// IsValid reports whether t is a canonical type.
func (t TransactionType) IsValid() bool {
	_, ok := typeRules[t]
	return ok
}

// IsSystemOnly reports whether t can only be created by the ledger itself.
func (t TransactionType) IsSystemOnly() bool {
	return typeRules[t].SystemOnly
}

// Direction returns CREDIT or DEBIT. Unknown types report an empty direction.
func (t TransactionType) Direction() Direction {
	return typeRules[t].Direction
}

// RequiredDetailKind returns the detail shape t demands.
func (t TransactionType) RequiredDetailKind() DetailKind {
	return typeRules[t].DetailKind
}

// LegalStatuses returns the statuses t may be in, in display order.
func (t TransactionType) LegalStatuses() []TransactionStatus {
	src := typeRules[t].Statuses
	out := make([]TransactionStatus, len(src))
	copy(out, src)
	return out
}

// CompletionStatus returns the status that marks t as done.
func (t TransactionType) CompletionStatus() TransactionStatus {
	return typeRules[t].Completion
}

// RequiresRecipient reports whether t needs a counterparty.
func (t TransactionType) RequiresRecipient() bool {
	return typeRules[t].RecipientRequired
}

// AllowsStatus reports whether s is in the legal set of t.
func (t TransactionType) AllowsStatus(s TransactionStatus) bool {
	for _, v := range typeRules[t].Statuses {
		if v == s {
			return true
		}
	}
	return false
}
