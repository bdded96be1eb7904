package preset_cache_test

import (
	"testing"

	preset_cache "github.com/Vantage-CRM/vantage-crm-backend/cache"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublicListCache(t *testing.T) {
	tenant := uuid.NewString()
	other := uuid.NewString()

	_, ok := preset_cache.GetPublicList(tenant, "users")
	assert.False(t, ok, "cold cache should miss")

	presets := []models.FilterPreset{{Name: "shared"}}
	preset_cache.SetPublicList(tenant, "users", presets)

	got, ok := preset_cache.GetPublicList(tenant, "users")
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "shared", got[0].Name)

	// Entity types are cached independently
	_, ok = preset_cache.GetPublicList(tenant, "deals")
	assert.False(t, ok)

	// Tenants are cached independently
	_, ok = preset_cache.GetPublicList(other, "users")
	assert.False(t, ok)
}

func TestInvalidateTenant(t *testing.T) {
	tenant := uuid.NewString()
	other := uuid.NewString()

	preset_cache.SetPublicList(tenant, "users", []models.FilterPreset{{Name: "a"}})
	preset_cache.SetPublicList(tenant, "deals", []models.FilterPreset{{Name: "b"}})
	preset_cache.SetPublicList(other, "users", []models.FilterPreset{{Name: "c"}})

	preset_cache.InvalidateTenant(tenant)

	_, ok := preset_cache.GetPublicList(tenant, "users")
	assert.False(t, ok)
	_, ok = preset_cache.GetPublicList(tenant, "deals")
	assert.False(t, ok)

	// Other tenants keep their entries
	_, ok = preset_cache.GetPublicList(other, "users")
	assert.True(t, ok)
}
