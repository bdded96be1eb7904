package preset_controller

import (
	"log"
	"net/http"

	"github.com/Vantage-CRM/vantage-crm-backend/config"
	"github.com/Vantage-CRM/vantage-crm-backend/middleware"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/gin-gonic/gin"
)

// GetPresetStats godoc
// @Summary Get preset stats for the caller's tenant
// @Description Aggregate counts: total, public, per entity type, top used
// @Tags Presets
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.PresetStatsResponse}
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/presets/stats [get]
func GetPresetStats(c *gin.Context) {
	tenantID, tenantOK := middleware.GetTenantIDFromContext(c)
	if _, userOK := middleware.GetUserIDFromContext(c); !tenantOK || !userOK {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats := models.PresetStatsResponse{
		ByEntityType: make(map[string]int),
		TopPresets:   make([]models.TopPreset, 0),
	}

	// ================================
	// Totals
	// ================================
	totalsQuery := `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE is_public)
		FROM filter_presets
		WHERE tenant_id = $1
	`
	if err := config.CrmDB.QueryRow(ctx, totalsQuery, tenantID.String()).
		Scan(&stats.TotalPresets, &stats.PublicPresets); err != nil {
		log.Printf("[presets.stats] ERROR totals err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch preset stats"))
		return
	}

	// ================================
	// Per entity type
	// ================================
	byTypeQuery := `
		SELECT entity_type, COUNT(*)
		FROM filter_presets
		WHERE tenant_id = $1
		GROUP BY entity_type
	`
	rows, err := config.CrmDB.Query(ctx, byTypeQuery, tenantID.String())
	if err != nil {
		log.Printf("[presets.stats] ERROR by-type err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch preset stats"))
		return
	}
	defer rows.Close()
	for rows.Next() {
		var entityType string
		var count int
		if err := rows.Scan(&entityType, &count); err != nil {
			log.Printf("[presets.stats] ERROR by-type scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch preset stats"))
			return
		}
		stats.ByEntityType[entityType] = count
	}

	// ================================
	// Top used presets
	// ================================
	topQuery := `
		SELECT id, name, entity_type, usage_count
		FROM filter_presets
		WHERE tenant_id = $1 AND usage_count > 0
		ORDER BY usage_count DESC, created_at DESC
		LIMIT 5
	`
	topRows, err := config.CrmDB.Query(ctx, topQuery, tenantID.String())
	if err != nil {
		log.Printf("[presets.stats] ERROR top err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch preset stats"))
		return
	}
	defer topRows.Close()
	for topRows.Next() {
		var top models.TopPreset
		if err := topRows.Scan(&top.ID, &top.Name, &top.EntityType, &top.UsageCount); err != nil {
			log.Printf("[presets.stats] ERROR top scan err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch preset stats"))
			return
		}
		stats.TopPresets = append(stats.TopPresets, top)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preset stats fetched successfully", stats))
}
