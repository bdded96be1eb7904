package preset_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	preset_cache "github.com/Vantage-CRM/vantage-crm-backend/cache"
	"github.com/Vantage-CRM/vantage-crm-backend/config"
	"github.com/Vantage-CRM/vantage-crm-backend/middleware"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TrackPresetUsage godoc
// @Summary Record a preset application
// @Description Bump usage_count and last_used_at for a preset the caller can see
// @Tags Presets
// @Produce json
// @Param id path string true "Preset ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/presets/{id}/use [post]
func TrackPresetUsage(c *gin.Context) {
	// Set up front so failed attempts are logged under the right action too
	c.Set("activityAction", models.ActionUsePreset)

	tenantID, tenantOK := middleware.GetTenantIDFromContext(c)
	userID, userOK := middleware.GetUserIDFromContext(c)
	if !tenantOK || !userOK {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	presetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid preset id"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Only presets the caller could list are usable: own or tenant-public.
	// Anything else reads as not-found so cross-tenant ids leak nothing.
	var preset models.FilterPreset
	if err := config.CrmGorm.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", presetID, tenantID).
		Where("is_public = ? OR created_by = ?", true, userID).
		First(&preset).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Preset not found"))
			return
		}
		log.Printf("[presets.use] lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record preset usage"))
		return
	}

	now := time.Now().UTC()
	if err := config.CrmGorm.WithContext(ctx).
		Model(&models.FilterPreset{}).
		Where("id = ?", preset.ID).
		UpdateColumns(map[string]any{
			"usage_count":  gorm.Expr("usage_count + 1"),
			"last_used_at": now,
		}).Error; err != nil {
		log.Printf("[presets.use] usage update failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to record preset usage"))
		return
	}

	// For the activity log
	c.Set("activityResourceID", preset.ID)
	c.Set("activityResourceName", preset.Name)

	// Usage changes public-list ordering
	if preset.IsPublic {
		preset_cache.InvalidateTenant(tenantID.String())
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preset usage recorded", gin.H{
		"id":           preset.ID,
		"usage_count":  preset.UsageCount + 1,
		"last_used_at": now,
	}))
}
