package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	transactionService services.TransactionServicer
	auditService       services.AuditServicer

	// loc places plain YYYY-MM-DD dates; nil means UTC.
	loc *time.Location
}

// NewTransactionHandler creates a new TransactionHandler. loc must be the
// location the date validator judges "today" in.
func NewTransactionHandler(transactionService services.TransactionServicer, auditService services.AuditServicer, loc *time.Location) *TransactionHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &TransactionHandler{transactionService: transactionService, auditService: auditService, loc: loc}
}

// CashDepositRequest holds cash deposit details.
type CashDepositRequest struct {
	DepositDate *string `json:"deposit_date" example:"2024-03-10"`
	Notes       string  `json:"notes" binding:"max=500"`
}

// ChequeRequest holds cheque details for CHEQUE_RECEIVED and CHEQUE_GIVEN.
type ChequeRequest struct {
	ChequeNumber  string           `json:"cheque_number" binding:"max=50"`
	IssueDate     *string          `json:"issue_date"`
	DueDate       *string          `json:"due_date"`
	SubmittedDate *string          `json:"submitted_date"`
	ClearedDate   *string          `json:"cleared_date"`
	BounceCharge  *decimal.Decimal `json:"bounce_charge" swaggertype:"string"`
	BankName      string           `json:"bank_name" binding:"max=100"`
	Notes         string           `json:"notes" binding:"max=500"`
}

// BankTransferRequest holds bank transfer details.
type BankTransferRequest struct {
	TransferDate    *string             `json:"transfer_date"`
	SettlementDate  *string             `json:"settlement_date"`
	TransferMode    models.TransferMode `json:"transfer_mode" binding:"omitempty,transfer_mode"`
	ReferenceNumber string              `json:"reference_number" binding:"max=100"`
	Notes           string              `json:"notes" binding:"max=500"`
}

// OnlineTransferRequest holds NEFT, IMPS, RTGS and UPI payment details.
type OnlineTransferRequest struct {
	TransferDate    *string `json:"transfer_date"`
	SettlementDate  *string `json:"settlement_date"`
	ReferenceNumber string  `json:"reference_number" binding:"max=100"`
	Notes           string  `json:"notes" binding:"max=500"`
}

// UPISettlementRequest holds UPI settlement details.
type UPISettlementRequest struct {
	SettlementDate *string `json:"settlement_date"`
	UPIReference   string  `json:"upi_reference" binding:"max=100"`
	BatchNumber    string  `json:"batch_number" binding:"max=100"`
	Notes          string  `json:"notes" binding:"max=500"`
}

// AccountTransferRequest holds the details of a transfer between accounts.
type AccountTransferRequest struct {
	TransferDate *string `json:"transfer_date"`
	Reference    string  `json:"reference" binding:"max=100"`
	Purpose      string  `json:"purpose" binding:"max=200"`
	Notes        string  `json:"notes" binding:"max=500"`
}

// BankChargeRequest holds bank charge details.
type BankChargeRequest struct {
	ChargeType   models.ChargeType `json:"charge_type" binding:"required,charge_type"`
	DebitDate    *string           `json:"debit_date"`
	ChargeAmount *decimal.Decimal  `json:"charge_amount" swaggertype:"string"`
	Narration    string            `json:"narration" binding:"max=500"`
}

// TransactionDetailsRequest carries the one detail record a transaction type
// requires.
type TransactionDetailsRequest struct {
	CashDeposit     *CashDepositRequest     `json:"cash_deposit"`
	Cheque          *ChequeRequest          `json:"cheque"`
	BankTransfer    *BankTransferRequest    `json:"bank_transfer"`
	OnlineTransfer  *OnlineTransferRequest  `json:"online_transfer"`
	UPISettlement   *UPISettlementRequest   `json:"upi_settlement"`
	AccountTransfer *AccountTransferRequest `json:"account_transfer"`
	BankCharge      *BankChargeRequest      `json:"bank_charge"`
}

// CreateTransactionRequest represents the request payload for creating a transaction
type CreateTransactionRequest struct {
	TransactionDetailsRequest
	AccountID       string           `json:"account_id" binding:"required,uuid"`
	RecipientID     *string          `json:"recipient_id"`
	ToAccountID     *string          `json:"to_account_id"`
	Type            string           `json:"type" binding:"required,transaction_type" example:"CHEQUE_RECEIVED"`
	Amount          *decimal.Decimal `json:"amount" binding:"required" swaggertype:"string" example:"2000.00"`
	Status          string           `json:"status" binding:"omitempty,transaction_status" example:"PENDING"`
	Description     string           `json:"description" binding:"max=500"`
	TransactionDate *string          `json:"transaction_date"`
}

// UpdateTransactionRequest represents the request payload for updating a transaction.
type UpdateTransactionRequest struct {
	TransactionDetailsRequest
	Type            *string          `json:"type" binding:"omitempty,transaction_type"`
	Amount          *decimal.Decimal `json:"amount" swaggertype:"string"`
	Status          *string          `json:"status" binding:"omitempty,transaction_status"`
	RecipientID     *string          `json:"recipient_id"`
	ToAccountID     *string          `json:"to_account_id"`
	Description     *string          `json:"description" binding:"omitempty,max=500"`
	TransactionDate *string          `json:"transaction_date"`
}

// TransactionTypeInfo describes the static rules of one transaction type.
type TransactionTypeInfo struct {
	Type              models.TransactionType     `json:"type"`
	Direction         models.Direction           `json:"direction"`
	DetailKind        models.DetailKind          `json:"detail_kind"`
	Statuses          []models.TransactionStatus `json:"statuses"`
	CompletionStatus  models.TransactionStatus   `json:"completion_status"`
	RecipientRequired bool                       `json:"recipient_required"`
	SystemOnly        bool                       `json:"system_only"`
}

// CreateTransaction handles the creation of a new transaction
// @Summary     Create a transaction
// @Description Record a transaction with its detail record. Balance-affecting statuses update the account balance; account transfers also create the receiving side.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input, validation failure or insufficient balance"
// @Failure     404 {object} ErrorResponse "Account or recipient not found"
// @Failure     409 {object} ErrorResponse "Duplicate cheque number or concurrent modification"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.TransactionInput{
		AccountID:   req.AccountID,
		Type:        models.TransactionType(req.Type),
		Amount:      *req.Amount,
		Status:      models.TransactionStatus(strings.ToUpper(req.Status)),
		Description: req.Description,
	}

	var err error
	if input.RecipientID, err = parseOptionalID("recipient_id", req.RecipientID); err != nil {
		respondWithError(c, err)
		return
	}
	if input.ToAccountID, err = parseOptionalID("to_account_id", req.ToAccountID); err != nil {
		respondWithError(c, err)
		return
	}
	if input.TransactionDate, err = parseOptionalDate("transaction_date", req.TransactionDate, h.loc); err != nil {
		respondWithError(c, err)
		return
	}
	if input.Details, err = req.TransactionDetailsRequest.toDetails(h.loc); err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.CreateTransaction(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_TRANSACTION", "transaction", transaction.ID, c.ClientIP(),
		map[string]interface{}{
			"type":       transaction.Type,
			"amount":     transaction.Amount.String(),
			"status":     transaction.Status,
			"account_id": transaction.AccountID,
		})

	c.JSON(http.StatusCreated, gin.H{"transaction": transaction})
}

// GetTransactionByID handles the retrieval of a specific transaction
// @Summary     Get transaction by ID
// @Description Get a transaction with its recipient and detail record
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Transaction details"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [get]
func (h *TransactionHandler) GetTransactionByID(c *gin.Context) {
	transactionID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, err := h.transactionService.GetTransactionByID(transactionID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// UpdateTransaction handles updating an existing transaction
// @Summary     Update transaction
// @Description Update amount, status, dates, counterparty or detail record. The type cannot change and transfer receipts cannot be edited.
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Param       id      path string                   true "Transaction ID"
// @Param       request body UpdateTransactionRequest true "Fields to update"
// @Success     200 {object} models.Transaction "Updated transaction"
// @Failure     400 {object} ErrorResponse "Invalid input or non-editable transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     409 {object} ErrorResponse "Duplicate cheque number or concurrent modification"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	txID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	fields := services.TransactionUpdateFields{
		Amount:      req.Amount,
		Description: req.Description,
	}
	if req.Type != nil {
		t := models.TransactionType(*req.Type)
		fields.Type = &t
	}
	if req.Status != nil {
		s := models.TransactionStatus(strings.ToUpper(*req.Status))
		fields.Status = &s
	}
	if fields.RecipientID, err = parseClearableID("recipient_id", req.RecipientID); err != nil {
		respondWithError(c, err)
		return
	}
	if fields.ToAccountID, err = parseClearableID("to_account_id", req.ToAccountID); err != nil {
		respondWithError(c, err)
		return
	}
	if fields.TransactionDate, err = parseOptionalDate("transaction_date", req.TransactionDate, h.loc); err != nil {
		respondWithError(c, err)
		return
	}
	if req.TransactionDetailsRequest.present() {
		details, detailErr := req.TransactionDetailsRequest.toDetails(h.loc)
		if detailErr != nil {
			respondWithError(c, detailErr)
			return
		}
		fields.Details = &details
	}

	transaction, err := h.transactionService.UpdateTransaction(txID, fields)
	if err != nil {
		respondWithError(c, err)
		return
	}

	changes := map[string]interface{}{"status": transaction.Status, "amount": transaction.Amount.String()}
	h.auditService.Log("UPDATE_TRANSACTION", "transaction", txID, c.ClientIP(), changes)

	c.JSON(http.StatusOK, gin.H{"transaction": transaction})
}

// DeleteTransaction handles deleting a transaction
// @Summary     Delete transaction
// @Description Delete a transaction, reverse its balance effect and remove the receiving side of a transfer
// @Tags        transactions
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} MessageResponse "Transaction deleted"
// @Failure     400 {object} ErrorResponse "Invalid transaction ID or transfer receipt"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	txID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.transactionService.DeleteTransaction(txID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_TRANSACTION", "transaction", txID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Transaction deleted successfully"})
}

// GetAccountTransactions handles the retrieval of transactions for a specific account
// @Summary     Get account transactions
// @Description Get a paginated list of transactions for an account, newest first. Pending transfer receipts are not listed.
// @Tags        accounts,transactions
// @Produce     json
// @Param       id           path  string true  "Account ID"
// @Param       page         query int    false "Page number (default 1)"
// @Param       page_size    query int    false "Items per page (default 20, max 100)"
// @Param       from_date    query string false "Filter by start date (RFC3339 e.g. 2024-01-01T00:00:00Z, or YYYY-MM-DD)"
// @Param       to_date      query string false "Filter by end date (RFC3339 or YYYY-MM-DD, inclusive)"
// @Param       type         query string false "Filter by transaction type"
// @Param       status       query string false "Filter by status"
// @Param       recipient_id query string false "Filter by recipient ID"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id}/transactions [get]
func (h *TransactionHandler) GetAccountTransactions(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	filter, err := parseTransactionFilter(c, h.loc)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.transactionService.GetAccountTransactions(accountID, page, filter)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func parseTransactionFilter(c *gin.Context, loc *time.Location) (services.TransactionFilter, error) {
	var filter services.TransactionFilter

	if v := c.Query("from_date"); v != "" {
		t, err := parseFlexibleTime(v, loc)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid from_date format, use RFC3339 or YYYY-MM-DD")
		}
		filter.FromDate = &t
	}

	if v := c.Query("to_date"); v != "" {
		t, err := parseFlexibleTime(v, loc)
		if err != nil {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid to_date format, use RFC3339 or YYYY-MM-DD")
		}
		// A bare date covers the whole day.
		if len(v) == len("2006-01-02") {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.ToDate = &t
	}

	if v := c.Query("type"); v != "" {
		txType, ok := models.NormalizeTransactionType(v)
		if !ok {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidTransactionType, "invalid type "+v)
		}
		filter.Type = &txType
	}

	if v := c.Query("status"); v != "" {
		status := models.TransactionStatus(strings.ToUpper(v))
		if !status.IsValid() {
			return filter, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid status "+v)
		}
		filter.Status = &status
	}

	if v := c.Query("recipient_id"); v != "" {
		id, err := parseOptionalID("recipient_id", &v)
		if err != nil {
			return filter, err
		}
		filter.RecipientID = id
	}

	return filter, nil
}

// ListTransactionTypes returns the rules of every transaction type
// @Summary     List transaction types
// @Description Direction, detail record, legal statuses and completion status of every type
// @Tags        transaction-types
// @Produce     json
// @Success     200 {array} TransactionTypeInfo "Transaction types"
// @Router      /transaction-types [get]
func (h *TransactionHandler) ListTransactionTypes(c *gin.Context) {
	types := models.TransactionTypes()
	out := make([]TransactionTypeInfo, 0, len(types))
	for _, t := range types {
		rule, _ := t.Rule()
		out = append(out, TransactionTypeInfo{
			Type:              t,
			Direction:         rule.Direction,
			DetailKind:        rule.DetailKind,
			Statuses:          t.LegalStatuses(),
			CompletionStatus:  rule.Completion,
			RecipientRequired: rule.RecipientRequired,
			SystemOnly:        rule.SystemOnly,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transaction_types": out})
}

// GetStatusesForType returns the legal statuses of one transaction type
// @Summary     Get statuses for a type
// @Description Legacy type names are accepted
// @Tags        transaction-types
// @Produce     json
// @Param       type path string true "Transaction type"
// @Success     200 {object} map[string]interface{} "Type and statuses"
// @Failure     400 {object} ErrorResponse "Unsupported transaction type"
// @Router      /transaction-types/{type}/statuses [get]
func (h *TransactionHandler) GetStatusesForType(c *gin.Context) {
	raw := c.Param("type")
	statuses, err := h.transactionService.GetValidStatusesForType(models.TransactionType(raw))
	if err != nil {
		respondWithError(c, err)
		return
	}

	txType, _ := models.NormalizeTransactionType(raw)
	c.JSON(http.StatusOK, gin.H{"type": txType, "statuses": statuses})
}

// ReconcileTransfers re-syncs every account transfer with its receiving side
// @Summary     Reconcile account transfers
// @Description Recreate missing transfer receipts, refresh stale ones and delete orphans. Safe to run repeatedly.
// @Tags        maintenance
// @Produce     json
// @Success     200 {object} services.ReconcileReport "Reconciliation report"
// @Failure     409 {object} ErrorResponse "Concurrent modification"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /maintenance/reconcile-transfers [post]
func (h *TransactionHandler) ReconcileTransfers(c *gin.Context) {
	report, err := h.transactionService.ReconcileTransfers()
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("RECONCILE_TRANSFERS", "transaction", "", c.ClientIP(),
		map[string]interface{}{
			"created": report.ReceiversCreated,
			"updated": report.ReceiversUpdated,
			"deleted": report.ReceiversDeleted,
			"orphans": report.OrphansDeleted,
			"checked": report.SendersChecked,
		})

	c.JSON(http.StatusOK, gin.H{"report": report})
}

// parseClearableID is parseOptionalID for update payloads, where an empty
// string clears the reference.
func parseClearableID(field string, v *string) (*string, error) {
	if v == nil {
		return nil, nil
	}
	if strings.TrimSpace(*v) == "" {
		empty := ""
		return &empty, nil
	}
	return parseOptionalID(field, v)
}

func (r TransactionDetailsRequest) present() bool {
	return r.CashDeposit != nil || r.Cheque != nil || r.BankTransfer != nil ||
		r.OnlineTransfer != nil || r.UPISettlement != nil || r.AccountTransfer != nil ||
		r.BankCharge != nil
}

// toDetails converts the submitted detail payloads into detail records.
func (r TransactionDetailsRequest) toDetails(loc *time.Location) (services.TransactionDetails, error) {
	var d services.TransactionDetails
	var err error

	if p := r.CashDeposit; p != nil {
		rec := &models.CashDepositDetail{Notes: p.Notes}
		if rec.DepositDate, err = parseOptionalDate("deposit_date", p.DepositDate, loc); err != nil {
			return d, err
		}
		d.CashDeposit = rec
	}

	if p := r.Cheque; p != nil {
		rec := &models.ChequeDetail{
			ChequeNumber: strings.TrimSpace(p.ChequeNumber),
			BounceCharge: p.BounceCharge,
			BankName:     p.BankName,
			Notes:        p.Notes,
		}
		if rec.IssueDate, err = parseOptionalDate("issue_date", p.IssueDate, loc); err != nil {
			return d, err
		}
		if rec.DueDate, err = parseOptionalDate("due_date", p.DueDate, loc); err != nil {
			return d, err
		}
		if rec.SubmittedDate, err = parseOptionalDate("submitted_date", p.SubmittedDate, loc); err != nil {
			return d, err
		}
		if rec.ClearedDate, err = parseOptionalDate("cleared_date", p.ClearedDate, loc); err != nil {
			return d, err
		}
		d.Cheque = rec
	}

	if p := r.BankTransfer; p != nil {
		rec := &models.BankTransferDetail{
			TransferMode:    models.TransferMode(strings.ToUpper(string(p.TransferMode))),
			ReferenceNumber: p.ReferenceNumber,
			Notes:           p.Notes,
		}
		if rec.TransferDate, err = parseOptionalDate("transfer_date", p.TransferDate, loc); err != nil {
			return d, err
		}
		if rec.SettlementDate, err = parseOptionalDate("settlement_date", p.SettlementDate, loc); err != nil {
			return d, err
		}
		d.BankTransfer = rec
	}

	if p := r.OnlineTransfer; p != nil {
		rec := &models.OnlineTransferDetail{ReferenceNumber: p.ReferenceNumber, Notes: p.Notes}
		if rec.TransferDate, err = parseOptionalDate("transfer_date", p.TransferDate, loc); err != nil {
			return d, err
		}
		if rec.SettlementDate, err = parseOptionalDate("settlement_date", p.SettlementDate, loc); err != nil {
			return d, err
		}
		d.OnlineTransfer = rec
	}

	if p := r.UPISettlement; p != nil {
		rec := &models.UPISettlementDetail{UPIReference: p.UPIReference, BatchNumber: p.BatchNumber, Notes: p.Notes}
		if rec.SettlementDate, err = parseOptionalDate("settlement_date", p.SettlementDate, loc); err != nil {
			return d, err
		}
		d.UPISettlement = rec
	}

	if p := r.AccountTransfer; p != nil {
		rec := &models.AccountTransferDetail{Reference: p.Reference, Purpose: p.Purpose, Notes: p.Notes}
		if rec.TransferDate, err = parseOptionalDate("transfer_date", p.TransferDate, loc); err != nil {
			return d, err
		}
		d.AccountTransfer = rec
	}

	if p := r.BankCharge; p != nil {
		rec := &models.BankChargeDetail{
			ChargeType: models.ChargeType(strings.ToUpper(string(p.ChargeType))),
			Narration:  p.Narration,
		}
		if p.ChargeAmount != nil {
			rec.ChargeAmount = *p.ChargeAmount
		}
		if rec.DebitDate, err = parseOptionalDate("debit_date", p.DebitDate, loc); err != nil {
			return d, err
		}
		d.BankCharge = rec
	}

	return d, nil
}
