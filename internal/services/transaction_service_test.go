package services

import (
	"testing"
	"time"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/testutil"
)

func TestBalanceWalkthrough(t *testing.T) {
	l := newTestLedger(t)
	account := l.openAccount(t, "Main", "10000")
	supplier := l.customer(t, account.ID)

	// A completed deposit moves the balance.
	_, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "2000", models.StatusDeposited, day(2)))
	testutil.AssertNoError(t, err)
	l.assertBalance(t, account.ID, "12000")

	// A pending cheque does not.
	cheque, err := l.transactions.CreateTransaction(chequeGiven(account.ID, supplier.ID, "000451", "3000", models.StatusPending,
		&models.ChequeDetail{IssueDate: day(1), DueDate: day(5)}))
	testutil.AssertNoError(t, err)
	l.assertBalance(t, account.ID, "12000")

	// Clearing it does.
	cleared := models.StatusCleared
	_, err = l.transactions.UpdateTransaction(cheque.ID, TransactionUpdateFields{
		Status: &cleared,
		Details: &TransactionDetails{Cheque: &models.ChequeDetail{
			ChequeNumber: "000451",
			IssueDate:    day(1),
			DueDate:      day(5),
			ClearedDate:  day(10),
		}},
	})
	testutil.AssertNoError(t, err)
	l.assertBalance(t, account.ID, "9000")

	// A cleared cheque larger than the balance is refused and leaves nothing behind.
	_, err = l.transactions.CreateTransaction(chequeGiven(account.ID, supplier.ID, "000452", "50000", models.StatusCleared,
		&models.ChequeDetail{IssueDate: day(1), DueDate: day(5), ClearedDate: day(10)}))
	testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")
	l.assertBalance(t, account.ID, "9000")

	var leftovers int64
	l.db.Model(&models.ChequeDetail{}).Where("cheque_number = ?", "000452").Count(&leftovers)
	if leftovers != 0 {
		t.Errorf("expected rejected cheque to be rolled back, found %d detail rows", leftovers)
	}

	l.assertConsistent(t, account.ID)
}

func TestCreateTransaction(t *testing.T) {
	t.Run("defaults_to_pending_with_owner_recipient", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := cashDeposit(account.ID, "500", "", day(3))
		tx, err := l.transactions.CreateTransaction(input)
		testutil.AssertNoError(t, err)

		if tx.Status != models.StatusPending {
			t.Errorf("expected PENDING, got %s", tx.Status)
		}
		if tx.Direction != models.DirectionCredit {
			t.Errorf("expected CREDIT, got %s", tx.Direction)
		}
		if tx.Recipient == nil || tx.Recipient.Type != models.RecipientTypeOwner {
			t.Errorf("expected owner recipient, got %+v", tx.Recipient)
		}
		if !tx.TransactionDate.Equal(*day(3)) {
			t.Errorf("expected transaction date from deposit date, got %s", tx.TransactionDate)
		}
		if tx.CashDeposit == nil {
			t.Fatal("expected cash deposit detail")
		}
		l.assertBalance(t, account.ID, "0")
	})

	t.Run("sub_cent_amount", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		_, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "0.004", models.StatusDeposited, day(3)))
		testutil.AssertAppError(t, err, "INVALID_INPUT")

		_, err = l.transactions.CreateTransaction(cashDeposit(account.ID, "10.500", models.StatusDeposited, day(3)))
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "10.5")
	})

	t.Run("legacy_type_alias", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := cashDeposit(account.ID, "500", models.StatusDeposited, day(3))
		input.Type = "deposit"
		tx, err := l.transactions.CreateTransaction(input)
		testutil.AssertNoError(t, err)

		if tx.Type != models.TransactionTypeCashDeposit {
			t.Errorf("expected CASH_DEPOSIT, got %s", tx.Type)
		}
		l.assertBalance(t, account.ID, "500")
	})

	t.Run("unknown_type", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := cashDeposit(account.ID, "500", models.StatusPending, day(3))
		input.Type = "BARTER"
		_, err := l.transactions.CreateTransaction(input)
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("system_only_type", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		_, err := l.transactions.CreateTransaction(TransactionInput{
			AccountID: account.ID,
			Type:      models.TransactionTypeAccountTransferIn,
			Amount:    dec("10"),
			Details:   TransactionDetails{AccountTransfer: &models.AccountTransferDetail{}},
		})
		testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
	})

	t.Run("non_positive_amount", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		for _, amount := range []string{"0", "-5"} {
			_, err := l.transactions.CreateTransaction(cashDeposit(account.ID, amount, models.StatusPending, day(3)))
			testutil.AssertAppError(t, err, "INVALID_INPUT")
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		l := newTestLedger(t)

		_, err := l.transactions.CreateTransaction(cashDeposit("01890a5d-ac96-774b-bcce-b302099a8057", "5", models.StatusPending, day(3)))
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("missing_detail", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := cashDeposit(account.ID, "5", models.StatusPending, day(3))
		input.Details = TransactionDetails{}
		_, err := l.transactions.CreateTransaction(input)
		testutil.AssertAppError(t, err, "MISSING_DETAIL_RECORD")
	})

	t.Run("wrong_detail_shape", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := cashDeposit(account.ID, "5", models.StatusPending, day(3))
		input.Details = TransactionDetails{BankCharge: &models.BankChargeDetail{ChargeType: models.ChargeTypeSMS, DebitDate: day(3)}}
		_, err := l.transactions.CreateTransaction(input)
		testutil.AssertAppError(t, err, "MISSING_DETAIL_RECORD")
	})

	t.Run("recipient_required", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := chequeGiven(account.ID, "", "000001", "5", models.StatusPending, &models.ChequeDetail{DueDate: day(5)})
		input.RecipientID = nil
		_, err := l.transactions.CreateTransaction(input)
		testutil.AssertAppError(t, err, "RECIPIENT_REQUIRED")
	})

	t.Run("unknown_recipient", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := chequeGiven(account.ID, "01890a5d-ac96-774b-bcce-b302099a8057", "000001", "5", models.StatusPending, &models.ChequeDetail{DueDate: day(5)})
		_, err := l.transactions.CreateTransaction(input)
		testutil.AssertAppError(t, err, "RECIPIENT_NOT_FOUND")
	})

	t.Run("recipient_of_other_account", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")
		other := l.openAccount(t, "Other", "0")
		foreign := l.customer(t, other.ID)

		input := chequeGiven(account.ID, foreign.ID, "000001", "5", models.StatusPending, &models.ChequeDetail{DueDate: day(5)})
		_, err := l.transactions.CreateTransaction(input)
		testutil.AssertAppError(t, err, "RECIPIENT_ACCOUNT_MISMATCH")
	})

	t.Run("status_not_legal_for_type", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		_, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "5", models.StatusCleared, day(3)))
		testutil.AssertAppError(t, err, "INVALID_STATUS_FOR_TYPE")
	})

	t.Run("future_date_completed", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		_, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "5", models.StatusDeposited, day(16)))
		testutil.AssertAppError(t, err, "FUTURE_DATE_NOT_ALLOWED")
	})

	t.Run("future_date_pending", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		_, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "5", models.StatusPending, day(20)))
		testutil.AssertNoError(t, err)
	})

	t.Run("later_today_is_not_future", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		input := cashDeposit(account.ID, "5", models.StatusDeposited, day(15))
		late := day(15).Add(23 * time.Hour)
		input.TransactionDate = &late
		_, err := l.transactions.CreateTransaction(input)
		testutil.AssertNoError(t, err)
	})

	t.Run("cheque_dates_out_of_sequence", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")
		recipient := l.customer(t, account.ID)

		_, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "000001", "5", models.StatusPending,
			&models.ChequeDetail{IssueDate: day(10), DueDate: day(5)}))
		testutil.AssertAppError(t, err, "DATE_SEQUENCE_VIOLATION")
	})

	t.Run("bank_charge_amount_defaults", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "100")

		tx, err := l.transactions.CreateTransaction(TransactionInput{
			AccountID: account.ID,
			Type:      models.TransactionTypeBankCharge,
			Amount:    dec("17.70"),
			Status:    models.StatusDebited,
			Details: TransactionDetails{BankCharge: &models.BankChargeDetail{
				ChargeType: models.ChargeTypeGST,
				DebitDate:  day(14),
			}},
		})
		testutil.AssertNoError(t, err)

		testutil.AssertDecimal(t, tx.BankCharge.ChargeAmount, "17.70")
		l.assertBalance(t, account.ID, "82.30")
	})

	t.Run("debit_of_entire_balance", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "250")

		_, err := l.transactions.CreateTransaction(TransactionInput{
			AccountID: account.ID,
			Type:      models.TransactionTypeBankCharge,
			Amount:    dec("250"),
			Status:    models.StatusDebited,
			Details:   TransactionDetails{BankCharge: &models.BankChargeDetail{ChargeType: models.ChargeTypeOther, DebitDate: day(14)}},
		})
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "0")
	})
}

func TestDuplicateChequeNumber(t *testing.T) {
	l := newTestLedger(t)
	account := l.openAccount(t, "Main", "10000")
	other := l.openAccount(t, "Other", "10000")
	recipient := l.customer(t, account.ID)
	otherRecipient := l.customer(t, other.ID)

	first, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "123456", "100", models.StatusPending,
		&models.ChequeDetail{IssueDate: day(1), DueDate: day(5)}))
	testutil.AssertNoError(t, err)

	// Cheque numbers are unique across the whole ledger.
	_, err = l.transactions.CreateTransaction(chequeGiven(other.ID, otherRecipient.ID, "123456", "100", models.StatusPending,
		&models.ChequeDetail{IssueDate: day(1), DueDate: day(5)}))
	testutil.AssertAppError(t, err, "DUPLICATE_CHEQUE_NUMBER")

	// Updating a cheque keeps its own number.
	_, err = l.transactions.UpdateTransaction(first.ID, TransactionUpdateFields{
		Description: ptr("rent"),
		Details: &TransactionDetails{Cheque: &models.ChequeDetail{
			ChequeNumber: "123456",
			IssueDate:    day(1),
			DueDate:      day(6),
		}},
	})
	testutil.AssertNoError(t, err)

	second, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "654321", "100", models.StatusPending,
		&models.ChequeDetail{IssueDate: day(1), DueDate: day(5)}))
	testutil.AssertNoError(t, err)

	// But cannot take another cheque's number.
	_, err = l.transactions.UpdateTransaction(second.ID, TransactionUpdateFields{
		Details: &TransactionDetails{Cheque: &models.ChequeDetail{
			ChequeNumber: "123456",
			IssueDate:    day(1),
			DueDate:      day(5),
		}},
	})
	testutil.AssertAppError(t, err, "DUPLICATE_CHEQUE_NUMBER")
}

func TestUpdateTransaction(t *testing.T) {
	t.Run("amount_change_on_completed", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")

		tx, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "200", models.StatusDeposited, day(2)))
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "1200")

		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Amount: ptr(dec("350"))})
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "1350")
		l.assertConsistent(t, account.ID)
	})

	t.Run("sub_cent_amount", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")

		tx, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "200", models.StatusDeposited, day(2)))
		testutil.AssertNoError(t, err)

		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Amount: ptr(dec("200.125"))})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
		l.assertBalance(t, account.ID, "1200")
	})

	t.Run("funds_check_excludes_old_effect", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")
		recipient := l.customer(t, account.ID)

		tx, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "000777", "800", models.StatusCleared,
			&models.ChequeDetail{IssueDate: day(1), DueDate: day(2), ClearedDate: day(3)}))
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "200")

		// 1000 fits once the old 800 is reversed.
		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Amount: ptr(dec("1000"))})
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "0")

		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Amount: ptr(dec("1000.01"))})
		testutil.AssertAppError(t, err, "INSUFFICIENT_BALANCE")
		l.assertBalance(t, account.ID, "0")
	})

	t.Run("green_to_red_reverses", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")
		recipient := l.customer(t, account.ID)

		tx, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "000778", "300", models.StatusCleared,
			&models.ChequeDetail{IssueDate: day(1), DueDate: day(2), ClearedDate: day(3)}))
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "700")

		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Status: ptr(models.StatusBounced)})
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "1000")
		l.assertConsistent(t, account.ID)
	})

	t.Run("type_change_refused", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		tx, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "10", models.StatusPending, day(2)))
		testutil.AssertNoError(t, err)

		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Type: ptr(models.TransactionTypeUPISettlement)})
		testutil.AssertAppError(t, err, "INVALID_TYPE_CHANGE")

		// Resending the same type, even by its old name, is fine.
		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Type: ptr(models.TransactionType("DEPOSIT"))})
		testutil.AssertNoError(t, err)
	})

	t.Run("illegal_status", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		tx, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "10", models.StatusPending, day(2)))
		testutil.AssertNoError(t, err)

		_, err = l.transactions.UpdateTransaction(tx.ID, TransactionUpdateFields{Status: ptr(models.StatusSettled)})
		testutil.AssertAppError(t, err, "INVALID_STATUS_FOR_TYPE")
	})

	t.Run("not_found", func(t *testing.T) {
		l := newTestLedger(t)

		_, err := l.transactions.UpdateTransaction("01890a5d-ac96-774b-bcce-b302099a8057", TransactionUpdateFields{})
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestStatusClosure(t *testing.T) {
	l := newTestLedger(t)
	account := l.openAccount(t, "Main", "100000")
	recipient := l.customer(t, account.ID)

	// Every legal cheque status is accepted, every other status refused.
	legal := map[models.TransactionStatus]bool{}
	for _, s := range models.TransactionTypeChequeGiven.LegalStatuses() {
		legal[s] = true
	}

	n := 0
	for _, status := range []models.TransactionStatus{
		models.StatusPending, models.StatusSubmitted, models.StatusDeposited, models.StatusCleared,
		models.StatusBounced, models.StatusStopped, models.StatusTransferred, models.StatusSettled,
		models.StatusDebited, models.StatusReceived, models.StatusCompleted, models.StatusFailed,
		models.StatusCancelled,
	} {
		n++
		number := "9000" + string(rune('A'+n))
		_, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, number, "1", status,
			&models.ChequeDetail{IssueDate: day(1), DueDate: day(2), SubmittedDate: day(3), ClearedDate: day(4)}))
		if legal[status] {
			if err != nil {
				t.Errorf("status %s should be accepted: %v", status, err)
			}
			continue
		}
		testutil.AssertAppError(t, err, "INVALID_STATUS_FOR_TYPE")
	}
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("reverses_completed_effect", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")
		recipient := l.customer(t, account.ID)

		tx, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "000900", "400", models.StatusCleared,
			&models.ChequeDetail{IssueDate: day(1), DueDate: day(2), ClearedDate: day(3)}))
		testutil.AssertNoError(t, err)
		l.assertBalance(t, account.ID, "600")

		testutil.AssertNoError(t, l.transactions.DeleteTransaction(tx.ID))
		l.assertBalance(t, account.ID, "1000")

		_, err = l.transactions.GetTransactionByID(tx.ID)
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")

		var details int64
		l.db.Unscoped().Model(&models.ChequeDetail{}).Where("transaction_id = ?", tx.ID).Count(&details)
		if details != 0 {
			t.Errorf("expected cheque detail removed, found %d", details)
		}

		// The number is free again.
		_, err = l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "000900", "400", models.StatusPending,
			&models.ChequeDetail{IssueDate: day(1), DueDate: day(2)}))
		testutil.AssertNoError(t, err)
	})

	t.Run("pending_leaves_balance", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")

		tx, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "50", models.StatusPending, day(2)))
		testutil.AssertNoError(t, err)

		testutil.AssertNoError(t, l.transactions.DeleteTransaction(tx.ID))
		l.assertBalance(t, account.ID, "1000")
	})

	t.Run("not_found", func(t *testing.T) {
		l := newTestLedger(t)

		err := l.transactions.DeleteTransaction("01890a5d-ac96-774b-bcce-b302099a8057")
		testutil.AssertAppError(t, err, "TRANSACTION_NOT_FOUND")
	})
}

func TestGetAccountTransactions(t *testing.T) {
	l := newTestLedger(t)
	account := l.openAccount(t, "Main", "0")

	for i, status := range []models.TransactionStatus{models.StatusDeposited, models.StatusPending, models.StatusDeposited} {
		_, err := l.transactions.CreateTransaction(cashDeposit(account.ID, "10", status, day(i+1)))
		testutil.AssertNoError(t, err)
	}
	_, err := l.transactions.CreateTransaction(TransactionInput{
		AccountID: account.ID,
		Type:      models.TransactionTypeUPISettlement,
		Amount:    dec("99"),
		Status:    models.StatusSettled,
		Details:   TransactionDetails{UPISettlement: &models.UPISettlementDetail{SettlementDate: day(7), BatchNumber: "B-7"}},
	})
	testutil.AssertNoError(t, err)

	page := pagination.PageRequest{Page: 1, PageSize: 20}

	t.Run("newest_first", func(t *testing.T) {
		result, err := l.transactions.GetAccountTransactions(account.ID, page, TransactionFilter{})
		testutil.AssertNoError(t, err)

		if result.TotalItems != 4 {
			t.Fatalf("expected 4 transactions, got %d", result.TotalItems)
		}
		if result.Data[0].Type != models.TransactionTypeUPISettlement {
			t.Errorf("expected latest first, got %s", result.Data[0].Type)
		}
		if result.Data[0].UPISettlement == nil {
			t.Error("expected detail record preloaded")
		}
	})

	t.Run("filter_status", func(t *testing.T) {
		result, err := l.transactions.GetAccountTransactions(account.ID, page, TransactionFilter{Status: ptr(models.StatusDeposited)})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 deposited transactions, got %d", result.TotalItems)
		}
	})

	t.Run("filter_type_and_dates", func(t *testing.T) {
		result, err := l.transactions.GetAccountTransactions(account.ID, page, TransactionFilter{
			Type:     ptr(models.TransactionTypeCashDeposit),
			FromDate: day(2),
			ToDate:   day(3),
		})
		testutil.AssertNoError(t, err)
		if result.TotalItems != 2 {
			t.Errorf("expected 2 deposits between the 2nd and 3rd, got %d", result.TotalItems)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		result, err := l.transactions.GetAccountTransactions(account.ID, pagination.PageRequest{Page: 2, PageSize: 3}, TransactionFilter{})
		testutil.AssertNoError(t, err)
		if len(result.Data) != 1 || result.TotalPages != 2 {
			t.Errorf("expected 1 item on page 2 of 2, got %d items, %d pages", len(result.Data), result.TotalPages)
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		_, err := l.transactions.GetAccountTransactions("01890a5d-ac96-774b-bcce-b302099a8057", page, TransactionFilter{})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})
}

func TestGetValidStatusesForType(t *testing.T) {
	l := newTestLedger(t)

	statuses, err := l.transactions.GetValidStatusesForType(models.TransactionTypeBankCharge)
	testutil.AssertNoError(t, err)
	want := []models.TransactionStatus{models.StatusPending, models.StatusDebited, models.StatusCancelled}
	if len(statuses) != len(want) {
		t.Fatalf("expected %v, got %v", want, statuses)
	}
	for i := range want {
		if statuses[i] != want[i] {
			t.Errorf("expected %v, got %v", want, statuses)
		}
	}

	aliased, err := l.transactions.GetValidStatusesForType("cheque")
	testutil.AssertNoError(t, err)
	if len(aliased) != len(models.TransactionTypeChequeReceived.LegalStatuses()) {
		t.Errorf("expected cheque received statuses for legacy alias, got %v", aliased)
	}

	_, err = l.transactions.GetValidStatusesForType("NOPE")
	testutil.AssertAppError(t, err, "INVALID_TRANSACTION_TYPE")
}
