package services

import (
	"testing"

	"github.com/jiks2239/mytns-finance-manager-sub000/internal/models"
	"github.com/jiks2239/mytns-finance-manager-sub000/internal/testutil"
)

func TestAuditService_Log(t *testing.T) {
	db := testutil.SetupTestDB(t)
	t.Cleanup(func() { testutil.TeardownTestDB(t, db) })
	svc := NewAuditService(db)

	const resourceID = "0190a6c4-1f2e-7a10-8b3c-777777777777"

	t.Run("records changes as JSON", func(t *testing.T) {
		svc.Log("CREATE_ACCOUNT", "account", resourceID, "10.0.0.1", map[string]interface{}{"name": "Main"})

		var entry models.AuditLog
		if err := db.Where("action = ?", "CREATE_ACCOUNT").First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry, got %v", err)
		}
		if entry.ResourceID == nil || *entry.ResourceID != resourceID {
			t.Errorf("expected resource %s, got %v", resourceID, entry.ResourceID)
		}
		if entry.Changes != `{"name":"Main"}` {
			t.Errorf("unexpected changes %s", entry.Changes)
		}
		if entry.IPAddress != "10.0.0.1" {
			t.Errorf("expected ip 10.0.0.1, got %s", entry.IPAddress)
		}
	})

	t.Run("stores no resource for bulk operations", func(t *testing.T) {
		svc.Log("RECONCILE_TRANSFERS", "transaction", "", "10.0.0.1", nil)

		var entry models.AuditLog
		if err := db.Where("action = ?", "RECONCILE_TRANSFERS").First(&entry).Error; err != nil {
			t.Fatalf("expected audit entry, got %v", err)
		}
		if entry.ResourceID != nil {
			t.Errorf("expected nil resource, got %s", *entry.ResourceID)
		}
		if entry.Changes != "" {
			t.Errorf("expected empty changes, got %s", entry.Changes)
		}
	})
}
