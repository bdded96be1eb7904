package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ═══════════════════════════════════════════════════════════
// JSONB Type Definitions
// ═══════════════════════════════════════════════════════════

// FilterConfigMap holds the structured filter expression as stored in the
// filter_config JSONB column. Shape is client-defined; the only key this
// service interprets is "logic" ("AND"/"OR").
type FilterConfigMap map[string]any

// Logic returns the combination operator declared by the config, or "AND"
// when the config does not carry one.
func (f FilterConfigMap) Logic() string {
	if logic, ok := f["logic"].(string); ok && logic != "" {
		return logic
	}
	return "AND"
}

func (f *FilterConfigMap) Scan(value interface{}) error {
	if value == nil {
		*f = make(FilterConfigMap)
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, f)
	case string:
		return json.Unmarshal([]byte(v), f)
	default:
		return errors.New("failed to scan FilterConfigMap")
	}
}

func (f FilterConfigMap) Value() (driver.Value, error) {
	if f == nil {
		return json.Marshal(FilterConfigMap{})
	}
	return json.Marshal(f)
}

// ═══════════════════════════════════════════════════════════
// Main FilterPreset Model (GORM)
// ═══════════════════════════════════════════════════════════

type FilterPreset struct {
	ID           uuid.UUID       `json:"id" gorm:"type:uuid;primaryKey"`
	TenantID     uuid.UUID       `json:"tenantId" gorm:"type:uuid;not null;uniqueIndex:idx_presets_owner_name;index:idx_presets_tenant_entity"`
	EntityType   string          `json:"entityType" gorm:"type:varchar(50);not null;default:'users';index:idx_presets_tenant_entity"`
	Name         string          `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_presets_owner_name"`
	Description  string          `json:"description"`
	FilterConfig FilterConfigMap `json:"filterConfig" gorm:"type:jsonb;not null;default:'{}'"`
	FilterLogic  string          `json:"filterLogic" gorm:"type:varchar(8);not null;default:'AND'"`
	IsPublic     bool            `json:"isPublic" gorm:"default:false;index"`
	IsDefault    bool            `json:"isDefault" gorm:"default:false"`
	Icon         *string         `json:"icon,omitempty" gorm:"type:varchar(50)"`
	Color        *string         `json:"color,omitempty" gorm:"type:varchar(20)"`
	UsageCount   int             `json:"usageCount" gorm:"default:0"`
	LastUsedAt   *time.Time      `json:"lastUsedAt,omitempty"`
	CreatedBy    uuid.UUID       `json:"createdBy" gorm:"type:uuid;not null;uniqueIndex:idx_presets_owner_name"`
	Creator      *User           `json:"creator,omitempty" gorm:"foreignKey:CreatedBy;references:ID"`
	CreatedAt    time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BeforeCreate hook - auto-generate UUID v7
func (fp *FilterPreset) BeforeCreate(tx *gorm.DB) error {
	if fp.ID == uuid.Nil {
		fp.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

// TableName specifies the table name
func (FilterPreset) TableName() string {
	return "filter_presets"
}

// ═══════════════════════════════════════════════════════════
// Request Models
// ═══════════════════════════════════════════════════════════

type CreatePresetRequest struct {
	Name         string          `json:"name" example:"Active enterprise accounts"`
	Description  string          `json:"description" example:"Accounts on enterprise plans, active in the last 30 days"`
	EntityType   string          `json:"entityType" example:"users"`
	FilterConfig FilterConfigMap `json:"filterConfig"`
	IsPublic     bool            `json:"isPublic" example:"false"`
	Icon         *string         `json:"icon,omitempty" example:"funnel"`
	Color        *string         `json:"color,omitempty" example:"#2563eb"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

type PresetStatsResponse struct {
	TotalPresets  int            `json:"total_presets"`
	PublicPresets int            `json:"public_presets"`
	ByEntityType  map[string]int `json:"by_entity_type"`
	TopPresets    []TopPreset    `json:"top_presets"`
}

type TopPreset struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	EntityType string    `json:"entity_type"`
	UsageCount int       `json:"usage_count"`
}
