package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/services"
)

// AccountHandler handles account-related requests.
type AccountHandler struct {
	accountService services.AccountServicer
	auditService   services.AuditServicer
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService services.AccountServicer, auditService services.AuditServicer) *AccountHandler {
	return &AccountHandler{accountService: accountService, auditService: auditService}
}

// CreateAccountRequest represents the request payload for opening an account
type CreateAccountRequest struct {
	Name           string             `json:"name" binding:"required,min=1,max=100"`
	Type           models.AccountType `json:"type" binding:"omitempty,account_type"`
	Description    string             `json:"description" binding:"max=500"`
	BankName       string             `json:"bank_name" binding:"max=100"`
	AccountNumber  string             `json:"account_number" binding:"max=50"`
	OpeningBalance *decimal.Decimal   `json:"opening_balance" swaggertype:"string" example:"10000.00"`
}

// UpdateAccountRequest represents the request payload for updating an account.
// Balances cannot be changed here.
type UpdateAccountRequest struct {
	Name          *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Type          *models.AccountType `json:"type" binding:"omitempty,account_type"`
	Description   *string             `json:"description" binding:"omitempty,max=500"`
	BankName      *string             `json:"bank_name" binding:"omitempty,max=100"`
	AccountNumber *string             `json:"account_number" binding:"omitempty,max=50"`
}

// BalanceResponse carries the stored balance and its recomputed check.
type BalanceResponse struct {
	AccountID      string                  `json:"account_id"`
	CurrentBalance decimal.Decimal         `json:"current_balance" swaggertype:"string"`
	Verification   *services.BalanceReport `json:"verification"`
}

// CreateAccount handles opening a new account
// @Summary     Create an account
// @Description Open a bank, cash or credit account with an optional opening balance
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       request body CreateAccountRequest true "Account details"
// @Success     201 {object} models.Account "Account created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [post]
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	input := services.AccountInput{
		Name:          req.Name,
		Type:          models.AccountType(strings.ToUpper(string(req.Type))),
		Description:   req.Description,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	}
	if req.OpeningBalance != nil {
		input.OpeningBalance = *req.OpeningBalance
	}

	account, err := h.accountService.CreateAccount(input)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_ACCOUNT", "account", account.ID, c.ClientIP(),
		map[string]interface{}{"name": account.Name, "type": account.Type, "opening_balance": account.OpeningBalance.String()})

	c.JSON(http.StatusCreated, gin.H{"account": account})
}

// GetAccounts handles listing accounts
// @Summary     List accounts
// @Description Get a paginated list of accounts
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Account] "Paginated accounts"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts [get]
func (h *AccountHandler) GetAccounts(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.accountService.GetAccounts(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAccountByID handles the retrieval of a specific account
// @Summary     Get account by ID
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} models.Account "Account details"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [get]
func (h *AccountHandler) GetAccountByID(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	account, err := h.accountService.GetAccountByID(accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// UpdateAccount handles updating an account's descriptive fields.
// @Summary     Update account
// @Description Update the name, type or bank details of an account. Balances are maintained by transactions only.
// @Tags        accounts
// @Accept      json
// @Produce     json
// @Param       id      path string               true "Account ID"
// @Param       request body UpdateAccountRequest true "Updated account details"
// @Success     200 {object} models.Account "Updated account"
// @Failure     400 {object} ErrorResponse "Invalid input or account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [put]
func (h *AccountHandler) UpdateAccount(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.Type != nil {
		t := models.AccountType(strings.ToUpper(string(*req.Type)))
		req.Type = &t
	}

	account, err := h.accountService.UpdateAccount(accountID, services.AccountUpdateFields{
		Name:          req.Name,
		Type:          req.Type,
		Description:   req.Description,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_ACCOUNT", "account", accountID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"account": account})
}

// DeleteAccount handles deleting an account without transactions
// @Summary     Delete account
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} MessageResponse "Account deleted"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     409 {object} ErrorResponse "Account has transactions"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id} [delete]
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.accountService.DeleteAccount(accountID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_ACCOUNT", "account", accountID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Account deleted successfully"})
}

// GetAccountBalance returns the stored balance together with a recomputation
// from the account's transactions.
// @Summary     Get account balance
// @Tags        accounts
// @Produce     json
// @Param       id path string true "Account ID"
// @Success     200 {object} BalanceResponse "Current balance"
// @Failure     400 {object} ErrorResponse "Invalid account ID"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /accounts/{id}/balance [get]
func (h *AccountHandler) GetAccountBalance(c *gin.Context) {
	accountID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	balance, err := h.accountService.GetCurrentBalance(accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	report, err := h.accountService.VerifyBalance(accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, BalanceResponse{
		AccountID:      accountID,
		CurrentBalance: balance,
		Verification:   report,
	})
}
