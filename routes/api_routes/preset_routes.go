package api_routes

import (
	"github.com/Vantage-CRM/vantage-crm-backend/controllers/preset_controller"
	"github.com/Vantage-CRM/vantage-crm-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupPresetRoutes(rg *gin.RouterGroup) {
	presets := rg.Group("/presets")

	// Every preset route is tenant-scoped, so everything sits behind auth
	presets.Use(middleware.AuthMiddleware())

	// ════════════════════════════════════════════════════════════
	// Read Routes
	// ════════════════════════════════════════════════════════════
	presets.GET("", preset_controller.GetPresets)
	presets.GET("/stats", preset_controller.GetPresetStats)

	// ════════════════════════════════════════════════════════════
	// Mutation Routes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := presets.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		// Create
		protected.POST("", preset_controller.CreatePreset)

		// Usage tracking
		protected.POST("/:id/use", preset_controller.TrackPresetUsage)
	}
}
