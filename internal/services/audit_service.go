package services

import (
	"encoding/json"

	"gorm.io/gorm"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/logger"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
)

// auditService handles audit log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records a write against a ledger resource. Failures are logged and
// swallowed; the write being audited has already committed.
func (s *auditService) Log(action, resourceType, resourceID, ipAddress string, changes map[string]interface{}) {
	var changesJSON string
	if changes != nil {
		data, err := json.Marshal(changes)
		if err != nil {
			logger.Get().Errorw("failed to marshal audit log changes", "error", err, "action", action)
			changesJSON = "{}"
		} else {
			changesJSON = string(data)
		}
	}

	entry := &models.AuditLog{
		Action:       action,
		ResourceType: resourceType,
		ResourceID:   optionalID(resourceID),
		IPAddress:    ipAddress,
		Changes:      changesJSON,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create audit log entry",
			"error", err,
			"action", action,
			"resource_type", resourceType,
			"resource_id", resourceID,
		)
	}
}

func optionalID(id string) *string {
	if id == "" {
		return nil
	}
	return &id
}
