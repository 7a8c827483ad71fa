package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/services"
)

// --- mock recipient service ---

type mockRecipientService struct {
	createRecipientFn  func(input services.RecipientInput) (*models.Recipient, error)
	getRecipientsFn    func(accountID *string, page pagination.PageRequest) (*pagination.PageResponse[models.Recipient], error)
	getRecipientByIDFn func(recipientID string) (*models.Recipient, error)
	updateRecipientFn  func(recipientID string, fields services.RecipientUpdateFields) (*models.Recipient, error)
	deleteRecipientFn  func(recipientID string) error
}

func (m *mockRecipientService) CreateRecipient(input services.RecipientInput) (*models.Recipient, error) {
	if m.createRecipientFn != nil {
		return m.createRecipientFn(input)
	}
	return &models.Recipient{}, nil
}

func (m *mockRecipientService) GetRecipients(accountID *string, page pagination.PageRequest) (*pagination.PageResponse[models.Recipient], error) {
	if m.getRecipientsFn != nil {
		return m.getRecipientsFn(accountID, page)
	}
	resp := pagination.NewPageResponse([]models.Recipient{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockRecipientService) GetRecipientByID(recipientID string) (*models.Recipient, error) {
	if m.getRecipientByIDFn != nil {
		return m.getRecipientByIDFn(recipientID)
	}
	return &models.Recipient{}, nil
}

func (m *mockRecipientService) UpdateRecipient(recipientID string, fields services.RecipientUpdateFields) (*models.Recipient, error) {
	if m.updateRecipientFn != nil {
		return m.updateRecipientFn(recipientID, fields)
	}
	return &models.Recipient{}, nil
}

func (m *mockRecipientService) DeleteRecipient(recipientID string) error {
	if m.deleteRecipientFn != nil {
		return m.deleteRecipientFn(recipientID)
	}
	return nil
}

var _ services.RecipientServicer = (*mockRecipientService)(nil)

func setupRecipientRouter(handler *RecipientHandler) *gin.Engine {
	r := gin.New()
	r.POST("/recipients", handler.CreateRecipient)
	r.GET("/recipients", handler.GetRecipients)
	r.GET("/recipients/:id", handler.GetRecipientByID)
	r.PUT("/recipients/:id", handler.UpdateRecipient)
	r.DELETE("/recipients/:id", handler.DeleteRecipient)
	return r
}

func TestRecipientHandler_CreateRecipient(t *testing.T) {
	t.Run("returns 201", func(t *testing.T) {
		var got services.RecipientInput
		svc := &mockRecipientService{
			createRecipientFn: func(input services.RecipientInput) (*models.Recipient, error) {
				got = input
				acct := input.AccountID
				return &models.Recipient{Base: models.Base{ID: recipientID}, Name: input.Name, Type: input.Type, AccountID: &acct}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupRecipientRouter(NewRecipientHandler(svc, audit))

		rec := doRequest(r, "POST", "/recipients",
			`{"name":"Acme Traders","type":"supplier","account_id":"`+accountID+`","email":"ops@acme.test"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if got.Type != models.RecipientTypeSupplier {
			t.Errorf("expected SUPPLIER, got %s", got.Type)
		}
		if got.AccountID != accountID {
			t.Errorf("expected account %s, got %s", accountID, got.AccountID)
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "CREATE_RECIPIENT" {
			t.Errorf("expected CREATE_RECIPIENT audit, got %+v", audit.entries)
		}
	})

	t.Run("returns 400 without account", func(t *testing.T) {
		r := setupRecipientRouter(NewRecipientHandler(&mockRecipientService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recipients", `{"name":"Acme"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on bad email", func(t *testing.T) {
		r := setupRecipientRouter(NewRecipientHandler(&mockRecipientService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recipients",
			`{"name":"Acme","account_id":"`+accountID+`","email":"not-an-email"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("surfaces reserved type from service", func(t *testing.T) {
		svc := &mockRecipientService{
			createRecipientFn: func(services.RecipientInput) (*models.Recipient, error) {
				return nil, apperrors.ErrReservedRecipient
			},
		}
		r := setupRecipientRouter(NewRecipientHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/recipients",
			`{"name":"Self","type":"OWNER","account_id":"`+accountID+`"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RESERVED_RECIPIENT")
	})
}

func TestRecipientHandler_GetRecipients(t *testing.T) {
	t.Run("filters by account", func(t *testing.T) {
		var got *string
		svc := &mockRecipientService{
			getRecipientsFn: func(id *string, _ pagination.PageRequest) (*pagination.PageResponse[models.Recipient], error) {
				got = id
				resp := pagination.NewPageResponse([]models.Recipient{{Name: "Acme"}}, 1, 20, 1)
				return &resp, nil
			},
		}
		r := setupRecipientRouter(NewRecipientHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/recipients?account_id="+accountID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if got == nil || *got != accountID {
			t.Errorf("expected account filter %s, got %v", accountID, got)
		}
	})

	t.Run("lists all without filter", func(t *testing.T) {
		called := false
		svc := &mockRecipientService{
			getRecipientsFn: func(id *string, _ pagination.PageRequest) (*pagination.PageResponse[models.Recipient], error) {
				called = true
				if id != nil {
					t.Errorf("expected nil filter, got %v", *id)
				}
				resp := pagination.NewPageResponse([]models.Recipient{}, 1, 20, 0)
				return &resp, nil
			},
		}
		r := setupRecipientRouter(NewRecipientHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/recipients", "")

		if rec.Code != http.StatusOK || !called {
			t.Fatalf("expected 200 and a service call, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on malformed account filter", func(t *testing.T) {
		r := setupRecipientRouter(NewRecipientHandler(&mockRecipientService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/recipients?account_id=7", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestRecipientHandler_GetRecipientByID(t *testing.T) {
	svc := &mockRecipientService{
		getRecipientByIDFn: func(string) (*models.Recipient, error) { return nil, apperrors.ErrRecipientNotFound },
	}
	r := setupRecipientRouter(NewRecipientHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/recipients/"+recipientID, "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "RECIPIENT_NOT_FOUND")
}

func TestRecipientHandler_UpdateRecipient(t *testing.T) {
	var got services.RecipientUpdateFields
	svc := &mockRecipientService{
		updateRecipientFn: func(id string, fields services.RecipientUpdateFields) (*models.Recipient, error) {
			got = fields
			return &models.Recipient{Base: models.Base{ID: id}}, nil
		},
	}
	r := setupRecipientRouter(NewRecipientHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "PUT", "/recipients/"+recipientID, `{"type":"employee","phone":"98450"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if got.Type == nil || *got.Type != models.RecipientTypeEmployee {
		t.Errorf("expected EMPLOYEE, got %v", got.Type)
	}
	if got.Phone == nil || *got.Phone != "98450" {
		t.Errorf("expected phone 98450, got %v", got.Phone)
	}
	if got.Name != nil {
		t.Error("expected name to stay nil")
	}
}

func TestRecipientHandler_DeleteRecipient(t *testing.T) {
	t.Run("returns 409 when in use", func(t *testing.T) {
		svc := &mockRecipientService{
			deleteRecipientFn: func(string) error { return apperrors.ErrRecipientInUse },
		}
		r := setupRecipientRouter(NewRecipientHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "DELETE", "/recipients/"+recipientID, "")

		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "RECIPIENT_IN_USE")
	})

	t.Run("returns 200", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupRecipientRouter(NewRecipientHandler(&mockRecipientService{}, audit))

		rec := doRequest(r, "DELETE", "/recipients/"+recipientID, "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["message"] == nil {
			t.Error("expected a message")
		}
		if len(audit.entries) != 1 || audit.entries[0].action != "DELETE_RECIPIENT" {
			t.Errorf("expected DELETE_RECIPIENT audit, got %+v", audit.entries)
		}
	})
}
