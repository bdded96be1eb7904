package preset_controller

import (
	"errors"
	"log"
	"net/http"
	"strings"

	preset_cache "github.com/Vantage-CRM/vantage-crm-backend/cache"
	"github.com/Vantage-CRM/vantage-crm-backend/config"
	"github.com/Vantage-CRM/vantage-crm-backend/middleware"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreatePreset godoc
// @Summary Create a filter preset
// @Description Create a named preset for the caller's tenant; name is unique per owner
// @Tags Presets
// @Accept json
// @Produce json
// @Param preset body models.CreatePresetRequest true "Preset details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/presets [post]
func CreatePreset(c *gin.Context) {
	// Step 1: Caller identity - no identity, no write
	tenantID, tenantOK := middleware.GetTenantIDFromContext(c)
	userID, userOK := middleware.GetUserIDFromContext(c)
	if !tenantOK || !userOK {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	// Step 2: Parse JSON request
	var req models.CreatePresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 3: Validate required fields
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Preset name is required"))
		return
	}
	if req.FilterConfig == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Filter config is required"))
		return
	}
	if req.EntityType == "" {
		req.EntityType = DefaultEntityType
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 4: Friendly duplicate check. The unique index on
	// (tenant_id, created_by, name) is what actually guarantees this against
	// concurrent creates; the pre-check just gives the common case a clean path.
	var existing models.FilterPreset
	err := config.CrmGorm.WithContext(ctx).
		Select("id").
		Where("tenant_id = ? AND created_by = ? AND name = ?", tenantID, userID, req.Name).
		First(&existing).Error
	if err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A preset with this name already exists"))
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("[presets.create] duplicate check failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create preset"))
		return
	}

	// Step 5: Build the preset (UUID v7 assigned in BeforeCreate hook)
	preset := models.FilterPreset{
		TenantID:     tenantID,
		EntityType:   req.EntityType,
		Name:         req.Name,
		Description:  req.Description,
		FilterConfig: req.FilterConfig,
		FilterLogic:  req.FilterConfig.Logic(),
		IsPublic:     req.IsPublic,
		Icon:         req.Icon,
		Color:        req.Color,
		CreatedBy:    userID,
	}

	// Step 6: Save to database
	if err := config.CrmGorm.WithContext(ctx).Create(&preset).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race with an identical create
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A preset with this name already exists"))
			return
		}
		log.Printf("[presets.create] insert failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create preset"))
		return
	}

	// Step 7: Load creator relationship for response
	if err := config.CrmGorm.WithContext(ctx).
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, image")
		}).
		First(&preset, "id = ?", preset.ID).Error; err != nil {
		log.Printf("[presets.create] failed to reload preset: %v", err)
		// Preset is created, just missing relationship - still return success
	}

	// For the activity log
	c.Set("activityResourceID", preset.ID)
	c.Set("activityResourceName", preset.Name)
	c.Set("activityPayload", map[string]any{
		"entityType": preset.EntityType,
		"isPublic":   preset.IsPublic,
		"logic":      preset.FilterLogic,
	})

	// Public lists for this tenant may now be stale
	if preset.IsPublic {
		preset_cache.InvalidateTenant(tenantID.String())
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Preset created successfully", preset))
}
