package services

import (
	"testing"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/testutil"
)

func TestCreateRecipient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		recipient, err := l.recipients.CreateRecipient(RecipientInput{
			Name:      " Acme Traders ",
			Type:      models.RecipientTypeSupplier,
			AccountID: account.ID,
			IFSC:      "HDFC0000123",
		})
		testutil.AssertNoError(t, err)

		if recipient.Name != "Acme Traders" {
			t.Errorf("expected trimmed name, got %q", recipient.Name)
		}
		if recipient.AccountID == nil || *recipient.AccountID != account.ID {
			t.Error("expected recipient scoped to account")
		}
	})

	t.Run("default_type", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		recipient, err := l.recipients.CreateRecipient(RecipientInput{Name: "Someone", AccountID: account.ID})
		testutil.AssertNoError(t, err)
		if recipient.Type != models.RecipientTypeOther {
			t.Errorf("expected OTHER, got %s", recipient.Type)
		}
	})

	t.Run("reserved_type", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		for _, reserved := range []models.RecipientType{models.RecipientTypeAccount, models.RecipientTypeOwner} {
			_, err := l.recipients.CreateRecipient(RecipientInput{Name: "X", Type: reserved, AccountID: account.ID})
			testutil.AssertAppError(t, err, "RESERVED_RECIPIENT")
		}
	})

	t.Run("unknown_account", func(t *testing.T) {
		l := newTestLedger(t)

		_, err := l.recipients.CreateRecipient(RecipientInput{Name: "X", AccountID: "01890a5d-ac96-774b-bcce-b302099a8057"})
		testutil.AssertAppError(t, err, "ACCOUNT_NOT_FOUND")
	})

	t.Run("empty_name", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		_, err := l.recipients.CreateRecipient(RecipientInput{AccountID: account.ID})
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})
}

func TestGetRecipients(t *testing.T) {
	l := newTestLedger(t)
	first := l.openAccount(t, "First", "0")
	second := l.openAccount(t, "Second", "0")
	l.customer(t, first.ID)
	l.customer(t, first.ID)
	l.customer(t, second.ID)

	page := pagination.PageRequest{Page: 1, PageSize: 20}

	all, err := l.recipients.GetRecipients(nil, page)
	testutil.AssertNoError(t, err)
	if all.TotalItems != 3 {
		t.Errorf("expected 3 user recipients (reserved hidden), got %d", all.TotalItems)
	}
	for _, r := range all.Data {
		if r.Type.IsReserved() {
			t.Errorf("reserved recipient %s listed", r.Name)
		}
	}

	scoped, err := l.recipients.GetRecipients(&first.ID, page)
	testutil.AssertNoError(t, err)
	if scoped.TotalItems != 2 {
		t.Errorf("expected 2 recipients for first account, got %d", scoped.TotalItems)
	}
}

func TestUpdateRecipient(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")
		recipient := l.customer(t, account.ID)

		updated, err := l.recipients.UpdateRecipient(recipient.ID, RecipientUpdateFields{
			Name:  ptr("Renamed"),
			Phone: ptr("+91 98450 00000"),
		})
		testutil.AssertNoError(t, err)
		if updated.Name != "Renamed" || updated.Phone != "+91 98450 00000" {
			t.Errorf("unexpected recipient after update: %+v", updated)
		}
	})

	t.Run("reserved_recipient", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")

		var shadow models.Recipient
		l.db.Where("linked_account_id = ?", account.ID).First(&shadow)

		_, err := l.recipients.UpdateRecipient(shadow.ID, RecipientUpdateFields{Name: ptr("Hijack")})
		testutil.AssertAppError(t, err, "RESERVED_RECIPIENT")
	})

	t.Run("to_reserved_type", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")
		recipient := l.customer(t, account.ID)

		owner := models.RecipientTypeOwner
		_, err := l.recipients.UpdateRecipient(recipient.ID, RecipientUpdateFields{Type: &owner})
		testutil.AssertAppError(t, err, "RESERVED_RECIPIENT")
	})
}

func TestDeleteRecipient(t *testing.T) {
	t.Run("unused", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "0")
		recipient := l.customer(t, account.ID)

		testutil.AssertNoError(t, l.recipients.DeleteRecipient(recipient.ID))

		_, err := l.recipients.GetRecipientByID(recipient.ID)
		testutil.AssertAppError(t, err, "RECIPIENT_NOT_FOUND")
	})

	t.Run("in_use", func(t *testing.T) {
		l := newTestLedger(t)
		account := l.openAccount(t, "Main", "1000")
		recipient := l.customer(t, account.ID)

		_, err := l.transactions.CreateTransaction(chequeGiven(account.ID, recipient.ID, "000111", "100", models.StatusPending,
			&models.ChequeDetail{IssueDate: day(1), DueDate: day(5)}))
		testutil.AssertNoError(t, err)

		err = l.recipients.DeleteRecipient(recipient.ID)
		testutil.AssertAppError(t, err, "RECIPIENT_IN_USE")
	})

	t.Run("not_found", func(t *testing.T) {
		l := newTestLedger(t)

		err := l.recipients.DeleteRecipient("01890a5d-ac96-774b-bcce-b302099a8057")
		testutil.AssertAppError(t, err, "RECIPIENT_NOT_FOUND")
	})
}
