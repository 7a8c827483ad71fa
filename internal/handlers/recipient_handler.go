package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/services"
)

// RecipientHandler handles recipient-related requests.
type RecipientHandler struct {
	recipientService services.RecipientServicer
	auditService     services.AuditServicer
}

// NewRecipientHandler creates a new RecipientHandler.
func NewRecipientHandler(recipientService services.RecipientServicer, auditService services.AuditServicer) *RecipientHandler {
	return &RecipientHandler{recipientService: recipientService, auditService: auditService}
}

// CreateRecipientRequest represents the request payload for creating a recipient
type CreateRecipientRequest struct {
	Name          string               `json:"name" binding:"required,min=1,max=100"`
	Type          models.RecipientType `json:"type" binding:"omitempty,recipient_type"`
	AccountID     string               `json:"account_id" binding:"required,uuid"`
	Phone         string               `json:"phone" binding:"max=20"`
	Email         string               `json:"email" binding:"omitempty,email"`
	BankName      string               `json:"bank_name" binding:"max=100"`
	AccountNumber string               `json:"account_number" binding:"max=50"`
	IFSC          string               `json:"ifsc" binding:"max=20"`
	Notes         string               `json:"notes" binding:"max=500"`
}

// UpdateRecipientRequest represents the request payload for updating a recipient.
type UpdateRecipientRequest struct {
	Name          *string               `json:"name" binding:"omitempty,min=1,max=100"`
	Type          *models.RecipientType `json:"type" binding:"omitempty,recipient_type"`
	Phone         *string               `json:"phone" binding:"omitempty,max=20"`
	Email         *string               `json:"email" binding:"omitempty,email"`
	BankName      *string               `json:"bank_name" binding:"omitempty,max=100"`
	AccountNumber *string               `json:"account_number" binding:"omitempty,max=50"`
	IFSC          *string               `json:"ifsc" binding:"omitempty,max=20"`
	Notes         *string               `json:"notes" binding:"omitempty,max=500"`
}

// CreateRecipient handles the creation of a payee or payer
// @Summary     Create a recipient
// @Description Create a counterparty scoped to one account. ACCOUNT and OWNER recipients are managed by the system.
// @Tags        recipients
// @Accept      json
// @Produce     json
// @Param       request body CreateRecipientRequest true "Recipient details"
// @Success     201 {object} models.Recipient "Recipient created"
// @Failure     400 {object} ErrorResponse "Invalid input or reserved type"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients [post]
func (h *RecipientHandler) CreateRecipient(c *gin.Context) {
	var req CreateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	recipient, err := h.recipientService.CreateRecipient(services.RecipientInput{
		Name:          req.Name,
		Type:          models.RecipientType(strings.ToUpper(string(req.Type))),
		AccountID:     req.AccountID,
		Phone:         req.Phone,
		Email:         req.Email,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		Notes:         req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_RECIPIENT", "recipient", recipient.ID, c.ClientIP(),
		map[string]interface{}{"name": recipient.Name, "type": recipient.Type, "account_id": req.AccountID})

	c.JSON(http.StatusCreated, gin.H{"recipient": recipient})
}

// GetRecipients handles listing recipients
// @Summary     List recipients
// @Description Get a paginated list of user-managed recipients, optionally for one account
// @Tags        recipients
// @Produce     json
// @Param       account_id query string false "Filter by account ID"
// @Param       page       query int    false "Page number (default 1)"
// @Param       page_size  query int    false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Recipient] "Paginated recipients"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients [get]
func (h *RecipientHandler) GetRecipients(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	raw := c.Query("account_id")
	accountID, err := parseOptionalID("account_id", &raw)
	if err != nil {
		respondWithError(c, err)
		return
	}

	result, err := h.recipientService.GetRecipients(accountID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecipientByID handles the retrieval of a specific recipient
// @Summary     Get recipient by ID
// @Tags        recipients
// @Produce     json
// @Param       id path string true "Recipient ID"
// @Success     200 {object} models.Recipient "Recipient details"
// @Failure     400 {object} ErrorResponse "Invalid recipient ID"
// @Failure     404 {object} ErrorResponse "Recipient not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients/{id} [get]
func (h *RecipientHandler) GetRecipientByID(c *gin.Context) {
	recipientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	recipient, err := h.recipientService.GetRecipientByID(recipientID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"recipient": recipient})
}

// UpdateRecipient handles updating a recipient
// @Summary     Update recipient
// @Tags        recipients
// @Accept      json
// @Produce     json
// @Param       id      path string                 true "Recipient ID"
// @Param       request body UpdateRecipientRequest true "Fields to update"
// @Success     200 {object} models.Recipient "Updated recipient"
// @Failure     400 {object} ErrorResponse "Invalid input or reserved recipient"
// @Failure     404 {object} ErrorResponse "Recipient not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients/{id} [put]
func (h *RecipientHandler) UpdateRecipient(c *gin.Context) {
	recipientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if req.Type != nil {
		t := models.RecipientType(strings.ToUpper(string(*req.Type)))
		req.Type = &t
	}

	recipient, err := h.recipientService.UpdateRecipient(recipientID, services.RecipientUpdateFields{
		Name:          req.Name,
		Type:          req.Type,
		Phone:         req.Phone,
		Email:         req.Email,
		BankName:      req.BankName,
		AccountNumber: req.AccountNumber,
		IFSC:          req.IFSC,
		Notes:         req.Notes,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_RECIPIENT", "recipient", recipientID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, gin.H{"recipient": recipient})
}

// DeleteRecipient handles deleting a recipient with no transactions
// @Summary     Delete recipient
// @Tags        recipients
// @Produce     json
// @Param       id path string true "Recipient ID"
// @Success     200 {object} MessageResponse "Recipient deleted"
// @Failure     400 {object} ErrorResponse "Invalid recipient ID or reserved recipient"
// @Failure     404 {object} ErrorResponse "Recipient not found"
// @Failure     409 {object} ErrorResponse "Recipient in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /recipients/{id} [delete]
func (h *RecipientHandler) DeleteRecipient(c *gin.Context) {
	recipientID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.recipientService.DeleteRecipient(recipientID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_RECIPIENT", "recipient", recipientID, c.ClientIP(), nil)

	c.JSON(http.StatusOK, MessageResponse{Message: "Recipient deleted successfully"})
}
