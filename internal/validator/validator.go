// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the ledger's tags on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("transaction_type", validateTransactionType)
	_ = v.RegisterValidation("transaction_status", validateTransactionStatus)
	_ = v.RegisterValidation("account_type", validateAccountType)
	_ = v.RegisterValidation("recipient_type", validateRecipientType)
	_ = v.RegisterValidation("charge_type", validateChargeType)
	_ = v.RegisterValidation("transfer_mode", validateTransferMode)
}

// validateTransactionType accepts canonical and legacy type names in any case.
func validateTransactionType(fl validator.FieldLevel) bool {
	_, ok := models.NormalizeTransactionType(fl.Field().String())
	return ok
}

func validateTransactionStatus(fl validator.FieldLevel) bool {
	return models.TransactionStatus(upper(fl)).IsValid()
}

func validateAccountType(fl validator.FieldLevel) bool {
	return models.AccountType(upper(fl)).IsValid()
}

func validateRecipientType(fl validator.FieldLevel) bool {
	return models.RecipientType(upper(fl)).IsValid()
}

func validateChargeType(fl validator.FieldLevel) bool {
	return models.ChargeType(upper(fl)).IsValid()
}

func validateTransferMode(fl validator.FieldLevel) bool {
	return models.TransferMode(upper(fl)).IsValid()
}

func upper(fl validator.FieldLevel) string {
	return strings.ToUpper(strings.TrimSpace(fl.Field().String()))
}
