package preset_cache

import (
	"sync"
	"time"

	"github.com/Vantage-CRM/vantage-crm-backend/models"
)

const TTL = 2 * time.Minute

// ── Public preset list cache ─────────────────────────────────────────────────
// Caches the PublicOnly list per (tenant, entityType). Owner-scoped lists are
// never cached: they vary per caller.

type listEntry struct {
	presets   []models.FilterPreset
	fetchedAt time.Time
}

var (
	listMu    sync.RWMutex
	listCache = make(map[string]*listEntry)
)

func key(tenantID, entityType string) string {
	return tenantID + ":" + entityType
}

func GetPublicList(tenantID, entityType string) ([]models.FilterPreset, bool) {
	listMu.RLock()
	defer listMu.RUnlock()
	entry, exists := listCache[key(tenantID, entityType)]
	if exists && time.Since(entry.fetchedAt) < TTL {
		return entry.presets, true
	}
	return nil, false
}

func SetPublicList(tenantID, entityType string, presets []models.FilterPreset) {
	listMu.Lock()
	defer listMu.Unlock()
	listCache[key(tenantID, entityType)] = &listEntry{
		presets:   presets,
		fetchedAt: time.Now(),
	}
}

// ── Invalidate a tenant (call on any preset create or usage bump) ────────────

func InvalidateTenant(tenantID string) {
	listMu.Lock()
	defer listMu.Unlock()
	prefix := tenantID + ":"
	for k := range listCache {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			delete(listCache, k)
		}
	}
}
