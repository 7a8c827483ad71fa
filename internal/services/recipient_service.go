package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "github.com/jiks2239/mytns-finance-manager-sub000/internal/errors"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/pagination"
)

// ownerRecipientName is the display name of the single OWNER recipient.
const ownerRecipientName = "Self"

// recipientService handles recipient-related business logic.
type recipientService struct {
	db *gorm.DB
}

// NewRecipientService creates a new RecipientServicer.
func NewRecipientService(db *gorm.DB) RecipientServicer {
	return &recipientService{db: db}
}

// CreateRecipient creates a counterparty scoped to one account.
func (s *recipientService) CreateRecipient(input RecipientInput) (*models.Recipient, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "recipient name is required")
	}

	recipientType := input.Type
	if recipientType == "" {
		recipientType = models.RecipientTypeOther
	}
	if !recipientType.IsValid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid recipient type")
	}
	if recipientType.IsReserved() {
		return nil, apperrors.ErrReservedRecipient
	}

	// The owning account must exist
	if _, err := loadAccount(s.db, input.AccountID); err != nil {
		return nil, err
	}

	accountID := input.AccountID
	recipient := &models.Recipient{
		Name:          name,
		Type:          recipientType,
		AccountID:     &accountID,
		Phone:         input.Phone,
		Email:         input.Email,
		BankName:      input.BankName,
		AccountNumber: input.AccountNumber,
		IFSC:          input.IFSC,
		Notes:         input.Notes,
	}

	if err := s.db.Create(recipient).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return recipient, nil
}

// GetRecipients retrieves a paginated list of user-managed recipients,
// optionally narrowed to one account. Reserved recipients are never listed.
func (s *recipientService) GetRecipients(accountID *string, page pagination.PageRequest) (*pagination.PageResponse[models.Recipient], error) {
	page.Defaults()

	base := s.db.Model(&models.Recipient{}).
		Where("type NOT IN ?", []models.RecipientType{models.RecipientTypeAccount, models.RecipientTypeOwner})
	if accountID != nil && *accountID != "" {
		base = base.Where("account_id = ?", *accountID)
	}

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var recipients []models.Recipient
	if err := base.Scopes(pagination.Paginate(page)).Order("name ASC").Find(&recipients).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(recipients, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetRecipientByID retrieves a recipient by ID
func (s *recipientService) GetRecipientByID(recipientID string) (*models.Recipient, error) {
	return loadRecipient(s.db, recipientID)
}

// UpdateRecipient updates a user-managed recipient.
func (s *recipientService) UpdateRecipient(recipientID string, fields RecipientUpdateFields) (*models.Recipient, error) {
	recipient, err := s.GetRecipientByID(recipientID)
	if err != nil {
		return nil, err
	}
	if recipient.Type.IsReserved() {
		return nil, apperrors.ErrReservedRecipient
	}

	updates := make(map[string]interface{})
	if fields.Name != nil && strings.TrimSpace(*fields.Name) != "" {
		updates["name"] = strings.TrimSpace(*fields.Name)
	}
	if fields.Type != nil {
		if !fields.Type.IsValid() {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid recipient type")
		}
		if fields.Type.IsReserved() {
			return nil, apperrors.ErrReservedRecipient
		}
		updates["type"] = *fields.Type
	}
	if fields.Phone != nil {
		updates["phone"] = *fields.Phone
	}
	if fields.Email != nil {
		updates["email"] = *fields.Email
	}
	if fields.BankName != nil {
		updates["bank_name"] = *fields.BankName
	}
	if fields.AccountNumber != nil {
		updates["account_number"] = *fields.AccountNumber
	}
	if fields.IFSC != nil {
		updates["ifsc"] = *fields.IFSC
	}
	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}

	if len(updates) > 0 {
		if err := s.db.Model(recipient).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := s.db.Where("id = ?", recipient.ID).First(recipient).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return recipient, nil
}

// DeleteRecipient deletes a user-managed recipient that no transaction uses.
func (s *recipientService) DeleteRecipient(recipientID string) error {
	recipient, err := s.GetRecipientByID(recipientID)
	if err != nil {
		return err
	}
	if recipient.Type.IsReserved() {
		return apperrors.ErrReservedRecipient
	}

	var count int64
	if err := s.db.Model(&models.Transaction{}).Where("recipient_id = ?", recipient.ID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return apperrors.ErrRecipientInUse
	}

	if err := s.db.Delete(recipient).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

func loadRecipient(db *gorm.DB, recipientID string) (*models.Recipient, error) {
	var recipient models.Recipient
	if err := db.Where("id = ?", recipientID).First(&recipient).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRecipientNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &recipient, nil
}

// ensureAccountRecipient returns the ACCOUNT shadow of account, creating it
// when missing.
func ensureAccountRecipient(tx *gorm.DB, account *models.Account) (*models.Recipient, error) {
	var shadow models.Recipient
	err := tx.Where("linked_account_id = ? AND type = ?", account.ID, models.RecipientTypeAccount).First(&shadow).Error
	if err == nil {
		return &shadow, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	linked := account.ID
	shadow = models.Recipient{
		Name:            account.Name,
		Type:            models.RecipientTypeAccount,
		LinkedAccountID: &linked,
	}
	if err := tx.Create(&shadow).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &shadow, nil
}

// ensureOwnerRecipient returns the single OWNER recipient, creating it on
// first use.
func ensureOwnerRecipient(tx *gorm.DB) (*models.Recipient, error) {
	var owner models.Recipient
	err := tx.Where("type = ?", models.RecipientTypeOwner).Order("created_at ASC").First(&owner).Error
	if err == nil {
		return &owner, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	owner = models.Recipient{Name: ownerRecipientName, Type: models.RecipientTypeOwner}
	if err := tx.Create(&owner).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &owner, nil
}
