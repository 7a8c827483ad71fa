package models

// AuditLog records mutating operations on ledger resources. ResourceID is
// nil for operations that span many resources.
type AuditLog struct {
	Base
	Action       string  `gorm:"not null;index" json:"action"`
	ResourceType string  `gorm:"not null" json:"resource_type"`
	ResourceID   *string `gorm:"type:uuid;index" json:"resource_id,omitempty"`
	IPAddress    string  `json:"ip_address"`
	Changes      string  `json:"changes,omitempty"`
}
