package models

import (
	"time"

	"github.com/google/uuid"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLog represents a user action log entry
type ActivityLog struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID      `json:"tenant_id" gorm:"type:uuid;not null;index:idx_activity_tenant_date,sort:desc"`
	UserID       uuid.UUID      `json:"user_id" gorm:"type:uuid;not null;index"`
	UserEmail    string         `json:"user_email" gorm:"not null"`
	Action       string         `json:"action" gorm:"not null;index"`        // created_preset, used_preset, etc.
	ResourceType string         `json:"resource_type" gorm:"not null;index"` // preset
	ResourceID   string         `json:"resource_id" gorm:"index"`
	ResourceName string         `json:"resource_name"`
	Payload      datatypes.JSON `json:"payload" gorm:"type:jsonb"` // request body snapshot for mutations
	Status       string         `json:"status" gorm:"not null"`    // success, failed
	ErrorMessage string         `json:"error_message"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	CreatedAt    time.Time      `json:"created_at" gorm:"autoCreateTime;index:idx_activity_tenant_date,sort:desc"`
}

// BeforeCreate hook - auto-generate UUID v7
func (al *ActivityLog) BeforeCreate(tx *gorm.DB) error {
	if al.ID == uuid.Nil {
		al.ID = uuid.Must(uuid.NewV7())
	}
	if al.Status == "" {
		al.Status = StatusSuccess
	}
	return nil
}

// TableName specifies the table name
func (ActivityLog) TableName() string {
	return "activity_logs"
}

// ════════════════════════════════════════════════════════════
// Action Constants
// ════════════════════════════════════════════════════════════

const (
	ActionCreatePreset = "created_preset"
	ActionUsePreset    = "used_preset"

	ResourceTypePreset = "preset"

	StatusSuccess = "success"
	StatusFailed  = "failed"
)
