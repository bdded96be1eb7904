package models_test

import (
	"testing"

	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterConfigLogic(t *testing.T) {
	assert.Equal(t, "AND", models.FilterConfigMap{}.Logic())
	assert.Equal(t, "AND", models.FilterConfigMap{"conditions": []any{}}.Logic())
	assert.Equal(t, "OR", models.FilterConfigMap{"logic": "OR"}.Logic())
	assert.Equal(t, "AND", models.FilterConfigMap{"logic": ""}.Logic())
	// non-string logic values fall back rather than panic
	assert.Equal(t, "AND", models.FilterConfigMap{"logic": 42}.Logic())
}

func TestFilterConfigScan(t *testing.T) {
	var fromBytes models.FilterConfigMap
	require.NoError(t, fromBytes.Scan([]byte(`{"logic":"OR","conditions":[]}`)))
	assert.Equal(t, "OR", fromBytes.Logic())

	// Some drivers hand back text columns as string
	var fromString models.FilterConfigMap
	require.NoError(t, fromString.Scan(`{"logic":"AND"}`))
	assert.Equal(t, "AND", fromString.Logic())

	var fromNil models.FilterConfigMap
	require.NoError(t, fromNil.Scan(nil))
	assert.NotNil(t, fromNil)
	assert.Empty(t, fromNil)

	var bad models.FilterConfigMap
	assert.Error(t, bad.Scan(12345))
}
