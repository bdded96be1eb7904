package preset_controller

import (
	"log"
	"net/http"

	preset_cache "github.com/Vantage-CRM/vantage-crm-backend/cache"
	"github.com/Vantage-CRM/vantage-crm-backend/config"
	"github.com/Vantage-CRM/vantage-crm-backend/middleware"
	"github.com/Vantage-CRM/vantage-crm-backend/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DefaultEntityType is used when a request does not name an entity type.
const DefaultEntityType = "users"

// VisibilityScope is the closed set of query variants for listing presets.
// Exactly one applies per request.
type VisibilityScope int

const (
	// ScopePublicOnly: presets shared with the whole tenant.
	ScopePublicOnly VisibilityScope = iota
	// ScopePublicOrOwned: shared presets plus the caller's own.
	ScopePublicOrOwned
	// ScopeOwnedOnly: the caller's own presets.
	ScopeOwnedOnly
)

// ResolveScope picks the visibility scope from the query flags.
// isPublic wins over includeShared; includeShared defaults to true.
func ResolveScope(isPublic, includeShared bool) VisibilityScope {
	if isPublic {
		return ScopePublicOnly
	}
	if includeShared {
		return ScopePublicOrOwned
	}
	return ScopeOwnedOnly
}

// applyScope narrows a tenant+entity query to the requested visibility.
func applyScope(query *gorm.DB, scope VisibilityScope, userID uuid.UUID) *gorm.DB {
	switch scope {
	case ScopePublicOnly:
		return query.Where("is_public = ?", true)
	case ScopePublicOrOwned:
		return query.Where("is_public = ? OR created_by = ?", true, userID)
	default:
		return query.Where("created_by = ?", userID)
	}
}

// GetPresets godoc
// @Summary List filter presets
// @Description List presets for the caller's tenant, honoring visibility flags
// @Tags Presets
// @Produce json
// @Param entityType query string false "Entity type" default(users)
// @Param isPublic query string false "Only tenant-public presets" Enums(true)
// @Param includeShared query string false "Set to false to see only own presets"
// @Success 200 {object} models.ApiResponse
// @Failure 401 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /api/v1/presets [get]
func GetPresets(c *gin.Context) {
	// Step 1: Caller identity - no identity, no query
	tenantID, tenantOK := middleware.GetTenantIDFromContext(c)
	userID, userOK := middleware.GetUserIDFromContext(c)
	if !tenantOK || !userOK {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	// Step 2: Parse visibility flags
	entityType := c.DefaultQuery("entityType", DefaultEntityType)
	isPublic := c.Query("isPublic") == "true"
	includeShared := c.Query("includeShared") != "false"

	scope := ResolveScope(isPublic, includeShared)

	// Step 3: Public-only lists are identical for every caller in the tenant,
	// so they can come from cache
	if scope == ScopePublicOnly {
		if presets, ok := preset_cache.GetPublicList(tenantID.String(), entityType); ok {
			c.JSON(http.StatusOK, models.SuccessResponse(c, "Presets fetched successfully", presets))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 4: Build and run the query
	presets := make([]models.FilterPreset, 0)
	query := config.CrmGorm.WithContext(ctx).
		Where("tenant_id = ? AND entity_type = ?", tenantID, entityType)
	query = applyScope(query, scope, userID)

	if err := query.
		Order("is_default DESC").
		Order("usage_count DESC").
		Order("created_at DESC").
		Preload("Creator", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name, image")
		}).
		Find(&presets).Error; err != nil {
		log.Printf("[presets.list] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch presets"))
		return
	}

	if scope == ScopePublicOnly {
		preset_cache.SetPublicList(tenantID.String(), entityType, presets)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Presets fetched successfully", presets))
}
