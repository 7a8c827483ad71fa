// Package ledger holds the pure rules that decide how a transaction moves an
// account balance and whether its dates are coherent with its status.
// Nothing in this package touches the database.
package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// MoneyPlaces is the number of decimal places amounts are stored with.
const MoneyPlaces = 2

// FitsMoneyScale reports whether d can be stored without rounding.
func FitsMoneyScale(d decimal.Decimal) bool {
	return d.Round(MoneyPlaces).Equal(d)
}

// Effect is the balance-relevant projection of a transaction.
type Effect struct {
	Direction models.Direction
	Amount    decimal.Decimal
	Status    models.TransactionStatus
}

// EffectOf returns the effect t has on its own account.
func EffectOf(t *models.Transaction) Effect {
	return Effect{
		Direction: t.Type.Direction(),
		Amount:    t.Amount,
		Status:    t.Status,
	}
}

// ShouldUpdateBalance reports whether a transaction in status moves money.
func ShouldUpdateBalance(status models.TransactionStatus) bool {
	return status.IsGreen()
}

// Delta returns the signed change e makes to a balance. Red statuses yield zero.
func (e Effect) Delta() decimal.Decimal {
	if !ShouldUpdateBalance(e.Status) {
		return decimal.Zero
	}
	if e.Direction == models.DirectionDebit {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Reversed returns the effect that cancels e.
func (e Effect) Reversed() Effect {
	e.Direction = e.Direction.Opposite()
	return e
}

// IsZero reports whether e leaves a balance unchanged.
func (e Effect) IsZero() bool {
	return e.Delta().IsZero()
}

// ValidateSufficientFunds rejects a green debit larger than balance.
// Credits and red statuses always pass.
func ValidateSufficientFunds(balance decimal.Decimal, e Effect) error {
	if e.Direction != models.DirectionDebit || !ShouldUpdateBalance(e.Status) {
		return nil
	}
	if e.Amount.GreaterThan(balance) {
		return apperrors.WithMessage(apperrors.ErrInsufficientBalance,
			fmt.Sprintf("Insufficient balance: %s requested, %s available", e.Amount.StringFixed(2), balance.StringFixed(2)))
	}
	return nil
}

// Apply checks funds and returns balance moved by e.
func Apply(balance decimal.Decimal, e Effect) (decimal.Decimal, error) {
	if err := ValidateSufficientFunds(balance, e); err != nil {
		return balance, err
	}
	return balance.Add(e.Delta()), nil
}

// Revert undoes a previously applied e. Reversals are never refused, so
// reverting a credit may leave the balance negative.
func Revert(balance decimal.Decimal, e Effect) decimal.Decimal {
	return balance.Add(e.Reversed().Delta())
}

// Recompute folds effects over opening and returns the balance they imply.
func Recompute(opening decimal.Decimal, effects []Effect) decimal.Decimal {
	balance := opening
	for _, e := range effects {
		balance = balance.Add(e.Delta())
	}
	return balance
}
