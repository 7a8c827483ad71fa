package ledger

import (
	"fmt"
	"time"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// DateValidator checks detail dates for ordering and for coherence with the
// transaction status. "Today" is evaluated in loc.
type DateValidator struct {
	loc *time.Location
	now func() time.Time
}

// NewDateValidator returns a validator for loc. A nil loc means UTC and a nil
// now means time.Now.
func NewDateValidator(loc *time.Location, now func() time.Time) *DateValidator {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &DateValidator{loc: loc, now: now}
}

// Location is the zone calendar days are judged in.
func (v *DateValidator) Location() *time.Location {
	return v.loc
}

// Now returns the current instant in the validator's location.
func (v *DateValidator) Now() time.Time {
	return v.now().In(v.loc)
}

// EndOfToday returns the last instant of the current day in the validator's location.
func (v *DateValidator) EndOfToday() time.Time {
	n := v.now().In(v.loc)
	start := time.Date(n.Year(), n.Month(), n.Day(), 0, 0, 0, 0, v.loc)
	return start.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

func (v *DateValidator) inFuture(d time.Time) bool {
	return d.After(v.EndOfToday())
}

// ValidateTransactionDate rejects a completed transaction dated after today.
func (v *DateValidator) ValidateTransactionDate(date time.Time, status models.TransactionStatus) error {
	if date.IsZero() || !status.IsGreen() {
		return nil
	}
	if v.inFuture(date) {
		return apperrors.WithMessage(apperrors.ErrFutureDateNotAllowed,
			fmt.Sprintf("transaction_date cannot be in the future for status %s", status))
	}
	return nil
}

// Validate runs the date rules for the detail record t carries. A missing
// detail is not reported here.
func (v *DateValidator) Validate(t *models.Transaction) error {
	var err error
	switch t.Type.RequiredDetailKind() {
	case models.DetailKindCheque:
		if t.Cheque != nil {
			err = v.validateCheque(t.Cheque, t.Status)
		}
	case models.DetailKindBankTransfer:
		if t.BankTransfer != nil {
			err = v.validateBankTransfer(t.BankTransfer, t.Status)
		}
	case models.DetailKindOnlineTransfer:
		if t.OnlineTransfer != nil {
			err = v.validateOnlineTransfer(t.OnlineTransfer, t.Status)
		}
	case models.DetailKindUPISettlement:
		if t.UPISettlement != nil && t.UPISettlement.SettlementDate == nil {
			err = missing("settlement_date")
		}
	case models.DetailKindBankCharge:
		if t.BankCharge != nil {
			err = validateBankCharge(t.BankCharge)
		}
	}
	if err != nil {
		return err
	}

	if !t.Status.IsGreen() {
		return nil
	}
	if d := PrimaryDate(t); d != nil && v.inFuture(*d) {
		return apperrors.WithMessage(apperrors.ErrFutureDateNotAllowed,
			fmt.Sprintf("%s date cannot be in the future for status %s", t.Type.RequiredDetailKind(), t.Status))
	}
	return nil
}

// PrimaryDate returns the date that marks when t took effect, according to
// its detail record.
func PrimaryDate(t *models.Transaction) *time.Time {
	switch t.Type.RequiredDetailKind() {
	case models.DetailKindCashDeposit:
		if t.CashDeposit != nil {
			return t.CashDeposit.DepositDate
		}
	case models.DetailKindCheque:
		if t.Cheque != nil {
			if t.Cheque.ClearedDate != nil {
				return t.Cheque.ClearedDate
			}
			return t.Cheque.IssueDate
		}
	case models.DetailKindBankTransfer:
		if t.BankTransfer != nil {
			return t.BankTransfer.TransferDate
		}
	case models.DetailKindOnlineTransfer:
		if t.OnlineTransfer != nil {
			return t.OnlineTransfer.TransferDate
		}
	case models.DetailKindUPISettlement:
		if t.UPISettlement != nil {
			return t.UPISettlement.SettlementDate
		}
	case models.DetailKindAccountTransfer:
		if t.AccountTransfer != nil {
			return t.AccountTransfer.TransferDate
		}
	case models.DetailKindBankCharge:
		if t.BankCharge != nil {
			return t.BankCharge.DebitDate
		}
	}
	return nil
}

type namedDate struct {
	name string
	date *time.Time
}

// chequeSequence is issue <= due <= submitted <= cleared.
func chequeSequence(d *models.ChequeDetail) []namedDate {
	return []namedDate{
		{"issue_date", d.IssueDate},
		{"due_date", d.DueDate},
		{"submitted_date", d.SubmittedDate},
		{"cleared_date", d.ClearedDate},
	}
}

func (v *DateValidator) validateCheque(d *models.ChequeDetail, status models.TransactionStatus) error {
	if d.ChequeNumber == "" {
		return missing("cheque_number")
	}
	if d.DueDate == nil {
		return missing("due_date")
	}

	switch status {
	case models.StatusSubmitted, models.StatusStopped:
		if d.IssueDate == nil {
			return missing("issue_date")
		}
	case models.StatusCleared:
		for _, nd := range []namedDate{{"issue_date", d.IssueDate}, {"due_date", d.DueDate}, {"cleared_date", d.ClearedDate}} {
			if nd.date == nil {
				return missing(nd.name)
			}
		}
	}

	seq := chequeSequence(d)
	for i := range seq {
		if seq[i].date == nil {
			continue
		}
		for j := i + 1; j < len(seq); j++ {
			if seq[j].date == nil {
				continue
			}
			if seq[j].date.Before(*seq[i].date) {
				return outOfSequence(seq[j].name, seq[i].name)
			}
		}
	}
	return nil
}

func (v *DateValidator) validateBankTransfer(d *models.BankTransferDetail, status models.TransactionStatus) error {
	if d.TransferDate == nil {
		return missing("transfer_date")
	}
	if d.SettlementDate != nil && d.SettlementDate.Before(*d.TransferDate) {
		return outOfSequence("settlement_date", "transfer_date")
	}
	switch status {
	case models.StatusTransferred:
		if d.SettlementDate == nil {
			return missing("settlement_date")
		}
	case models.StatusPending:
		if d.SettlementDate != nil {
			return apperrors.WithMessage(apperrors.ErrDateSequenceViolation,
				"A pending transfer cannot have a settlement_date, update the status")
		}
	}
	return nil
}

func (v *DateValidator) validateOnlineTransfer(d *models.OnlineTransferDetail, status models.TransactionStatus) error {
	if d.TransferDate == nil {
		return missing("transfer_date")
	}
	switch status {
	case models.StatusTransferred, models.StatusSettled, models.StatusCancelled:
		if v.inFuture(*d.TransferDate) {
			return apperrors.WithMessage(apperrors.ErrFutureDateNotAllowed,
				fmt.Sprintf("transfer_date cannot be in the future for status %s", status))
		}
	}
	if d.SettlementDate != nil && d.SettlementDate.Before(*d.TransferDate) {
		return outOfSequence("settlement_date", "transfer_date")
	}
	return nil
}

func validateBankCharge(d *models.BankChargeDetail) error {
	if d.ChargeType == "" {
		return missing("charge_type")
	}
	if !d.ChargeType.IsValid() {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("unknown charge_type %q", d.ChargeType))
	}
	if d.DebitDate == nil {
		return missing("debit_date")
	}
	return nil
}

func missing(field string) error {
	return apperrors.WithMessage(apperrors.ErrMissingRequiredField, field+" is required")
}

func outOfSequence(later, earlier string) error {
	return apperrors.WithMessage(apperrors.ErrDateSequenceViolation,
		fmt.Sprintf("%s cannot be before %s", later, earlier))
}
